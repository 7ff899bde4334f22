package main

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"github.com/christophe-duc/lazydialog/pkg/app"
	"github.com/christophe-duc/lazydialog/pkg/config"
	"github.com/christophe-duc/lazydialog/pkg/utils"
	"github.com/fatih/color"
	"github.com/go-errors/errors"
	"github.com/integrii/flaggy"
	"github.com/jesseduffield/yaml"
)

var (
	commit      string
	version     = "unversioned"
	date        string
	buildSource = "unknown"

	configFlag    = false
	debuggingFlag = false
	request       app.Request
)

type subcommand struct {
	name        string
	description string
	file        bool
	message     bool
	positional  bool
}

var subcommands = []subcommand{
	{name: app.PickFileCommand, description: "Pick a single file", file: true},
	{name: app.PickFilesCommand, description: "Pick several files", file: true},
	{name: app.PickFolderCommand, description: "Pick a single folder", file: true},
	{name: app.PickFoldersCommand, description: "Pick several folders", file: true},
	{name: app.SaveFileCommand, description: "Choose where to save a file", file: true},
	{name: app.MessageCommand, description: "Show a message box", message: true},
	{name: app.ReadCommand, description: "Read a file as a picked file handle would", positional: true},
}

func main() {
	info := fmt.Sprintf(
		"%s\nDate: %s\nBuildSource: %s\nCommit: %s\nOS: %s\nArch: %s",
		version,
		date,
		buildSource,
		commit,
		runtime.GOOS,
		runtime.GOARCH,
	)

	flaggy.SetName("lazydialog")
	flaggy.SetDescription("Native file pickers and message boxes for your shell scripts")
	flaggy.DefaultParser.AdditionalHelpPrepend = "https://github.com/christophe-duc/lazydialog"

	flaggy.Bool(&configFlag, "c", "config", "Print the current default config")
	flaggy.Bool(&debuggingFlag, "d", "debug", "Log to development.log in the config directory")
	flaggy.SetVersion(info)

	parsers := make([]*flaggy.Subcommand, len(subcommands))
	for i, sc := range subcommands {
		parsers[i] = newSubcommand(sc)
		flaggy.AttachSubcommand(parsers[i], 1)
	}

	flaggy.Parse()

	if configFlag {
		var buf bytes.Buffer
		encoder := yaml.NewEncoder(&buf)
		err := encoder.Encode(config.GetDefaultConfig())
		if err != nil {
			log.Fatal(err.Error())
		}
		fmt.Printf("%v\n", buf.String())
		os.Exit(0)
	}

	for i, parser := range parsers {
		if parser.Used {
			request.Command = subcommands[i].name
		}
	}
	if request.Command == "" {
		flaggy.ShowHelpAndExit("")
	}

	appConfig, err := config.NewAppConfig("lazydialog", version, commit, date, buildSource, debuggingFlag, "")
	if err != nil {
		log.Fatal(err.Error())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	app, err := app.NewApp(appConfig)
	if err == nil {
		err = app.Run(ctx, request)
		if closeErr := app.Close(); err == nil {
			err = closeErr
		}
	}

	if err != nil {
		handleError(app, err)
	}
}

func handleError(a *app.App, err error) {
	if errors.Is(err, app.ErrCancelled) {
		a.Log.Debug(a.Tr.Cancelled)
		os.Exit(1)
	}

	if a.Tr == nil {
		log.Fatal(err.Error())
	}

	if errMessage, known := a.KnownError(err); known {
		log.Println(utils.ColoredString(a.Tr.ErrorTitle+": "+errMessage, color.FgRed))
		os.Exit(1)
	}

	newErr := errors.Wrap(err, 0)
	stackTrace := newErr.ErrorStack()
	a.Log.Error(stackTrace)

	log.Fatal(fmt.Sprintf("%s\n\n%s", a.Tr.ErrorOccurred, stackTrace))
}

func newSubcommand(sc subcommand) *flaggy.Subcommand {
	parser := flaggy.NewSubcommand(sc.name)
	parser.Description = sc.description

	switch {
	case sc.file:
		parser.String(&request.Title, "t", "title", "Window title")
		parser.String(&request.Directory, "", "dir", "Directory the dialog starts in")
		parser.String(&request.FileName, "n", "name", "File name the dialog starts with")
		parser.StringSlice(&request.Filters, "f", "filter", "Only offer matching files, given as Name:ext1,ext2")
		parser.Bool(&request.Async, "a", "async", "Show the dialog from a background task")
		parser.Bool(&request.Copy, "", "copy", "Copy the picked paths to the clipboard")
		parser.Bool(&request.Open, "o", "open", "Open the picked paths with the default program")
		parser.Bool(&request.Long, "l", "long", "Print a table with the name and type of every path")
	case sc.message:
		parser.String(&request.Title, "t", "title", "Window title")
		parser.String(&request.Description, "m", "description", "Text shown in the message box")
		parser.String(&request.Level, "", "level", "One of Info, Warning or Error")
		parser.String(&request.Buttons, "b", "buttons", "One of Ok, OkCancel or YesNo")
		parser.Bool(&request.Async, "a", "async", "Show the message box from a background task")
	case sc.positional:
		parser.AddPositionalValue(&request.Path, "path", 1, true, "File to read")
		parser.Bool(&request.Long, "l", "long", "Print the size of the file instead of its contents")
	}

	return parser
}
