package app

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/christophe-duc/lazydialog/pkg/commands"
	"github.com/christophe-duc/lazydialog/pkg/config"
	"github.com/christophe-duc/lazydialog/pkg/dialog"
	"github.com/christophe-duc/lazydialog/pkg/i18n"
	"github.com/christophe-duc/lazydialog/pkg/log"
	"github.com/christophe-duc/lazydialog/pkg/native"
	"github.com/christophe-duc/lazydialog/pkg/utils"
	"github.com/go-errors/errors"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
)

// The commands lazydialog understands
const (
	PickFileCommand    = "pick-file"
	PickFilesCommand   = "pick-files"
	PickFolderCommand  = "pick-folder"
	PickFoldersCommand = "pick-folders"
	SaveFileCommand    = "save-file"
	MessageCommand     = "message"
	ReadCommand        = "read"
)

// ErrCancelled is returned by Run when the user cancelled the dialog or
// answered no
var ErrCancelled = errors.New("cancelled")

// Request is one invocation of lazydialog, as given on the command line
type Request struct {
	Command string

	Title     string
	Directory string
	FileName  string
	// Filters look like "Name:ext1,ext2"
	Filters []string
	Async   bool

	Level       string
	Buttons     string
	Description string

	Copy bool
	Open bool
	Long bool

	// Path is the file read by the read command
	Path string
}

// App struct
type App struct {
	closers []func() error

	Config    *config.AppConfig
	Log       *logrus.Entry
	OSCommand *commands.OSCommand
	Runtime   *dialog.Runtime
	Tr        *i18n.TranslationSet
	Out       io.Writer

	writeClipboard       func(string) error
	clipboardUnsupported bool
}

// NewApp bootstrap a new application
func NewApp(config *config.AppConfig) (*App, error) {
	app := &App{
		closers:              []func() error{},
		Config:               config,
		Out:                  os.Stdout,
		writeClipboard:       clipboard.WriteAll,
		clipboardUnsupported: clipboard.Unsupported,
	}
	var err error
	app.Log = log.NewLogger(config)
	app.Tr, err = i18n.NewTranslationSetFromConfig(app.Log, config.UserConfig.Gui.Language)
	if err != nil {
		return app, err
	}

	if err := config.UserConfig.Validate(); err != nil {
		return app, err
	}

	backend, err := native.NewBackend(config.UserConfig.Dialog.Backend, app.Tr.Labels())
	if err != nil {
		return app, err
	}

	app.setup(backend)
	return app, nil
}

// setup wires everything that hangs off the dialog backend
func (app *App) setup(backend native.Backend) {
	app.Runtime = dialog.NewRuntime(app.Log, backend, app.Tr)
	app.OSCommand = commands.NewOSCommand(app.Log, app.Config)

	previous := dialog.SetPanicReporter(func(recovered interface{}, stack []byte) {
		app.Log.WithField("panic", fmt.Sprint(recovered)).Error(string(stack))
	})

	app.closers = append(app.closers,
		func() error { return app.Runtime.Close(app.Config.UserConfig.Dialog.CloseTimeout) },
		func() error {
			dialog.SetPanicReporter(previous)
			return nil
		},
	)
}

// Run shows the dialog described by req and prints its outcome
func (app *App) Run(ctx context.Context, req Request) error {
	app.Log.WithField("command", req.Command).Debug("running")

	switch req.Command {
	case PickFileCommand, PickFilesCommand, PickFolderCommand, PickFoldersCommand, SaveFileCommand:
		return app.runFileDialog(ctx, req)
	case MessageCommand:
		return app.runMessageDialog(ctx, req)
	case ReadCommand:
		return app.runRead(ctx, req)
	}

	return errors.New(app.Tr.UnknownCommandError)
}

func (app *App) Close() error {
	return utils.CloseMany(app.closers)
}

// ParseFilter parses a filter given as "Name:ext1,ext2"
func (app *App) ParseFilter(value string) (config.FilterConfig, error) {
	name, list, found := strings.Cut(value, ":")
	extensions := lo.Map(strings.Split(list, ","), func(extension string, _ int) string {
		return strings.TrimPrefix(strings.TrimSpace(extension), ".")
	})
	extensions = lo.Filter(extensions, func(extension string, _ int) bool {
		return extension != ""
	})
	if !found || strings.TrimSpace(name) == "" || len(extensions) == 0 {
		return config.FilterConfig{}, errors.Errorf("%s: '%s'", app.Tr.InvalidFilterError, value)
	}
	return config.FilterConfig{Name: strings.TrimSpace(name), Extensions: extensions}, nil
}

func (app *App) filters(req Request) ([]config.FilterConfig, error) {
	filters := make([]config.FilterConfig, 0, len(req.Filters))
	for _, value := range req.Filters {
		filter, err := app.ParseFilter(value)
		if err != nil {
			return nil, err
		}
		filters = append(filters, filter)
	}
	return append(filters, app.Config.UserConfig.Dialog.Filters...), nil
}

// configureFileDialog applies the request, falling back to the user config,
// to a blocking or background file dialog
func configureFileDialog[D any](
	req Request,
	defaults config.DialogConfig,
	filters []config.FilterConfig,
	addFilter func(string, ...string) (D, error),
	setDirectory func(string) (D, error),
	setFileName func(string) (D, error),
	setTitle func(string) (D, error),
) error {
	for _, filter := range filters {
		if _, err := addFilter(filter.Name, filter.Extensions...); err != nil {
			return err
		}
	}

	values := []struct {
		set   func(string) (D, error)
		value string
	}{
		{setDirectory, lo.Ternary(req.Directory != "", req.Directory, defaults.Directory)},
		{setFileName, req.FileName},
		{setTitle, lo.Ternary(req.Title != "", req.Title, defaults.Title)},
	}
	for _, v := range values {
		if v.value == "" {
			continue
		}
		if _, err := v.set(v.value); err != nil {
			return err
		}
	}
	return nil
}

func (app *App) runFileDialog(ctx context.Context, req Request) error {
	filters, err := app.filters(req)
	if err != nil {
		return err
	}
	defaults := app.Config.UserConfig.Dialog

	var paths []string
	var ok bool
	if req.Async {
		d := app.Runtime.NewAsyncFileDialog()
		if err := configureFileDialog(req, defaults, filters, d.AddFilter, d.SetDirectory, d.SetFileName, d.SetTitle); err != nil {
			return err
		}
		paths, ok, err = app.awaitHandles(ctx, req.Command, d)
	} else {
		d := app.Runtime.NewFileDialog()
		if err := configureFileDialog(req, defaults, filters, d.AddFilter, d.SetDirectory, d.SetFileName, d.SetTitle); err != nil {
			return err
		}
		paths, ok, err = pickBlocking(req.Command, d)
	}
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}

	return app.output(paths, req)
}

func pickBlocking(command string, d *dialog.FileDialog) ([]string, bool, error) {
	single := func(path string, ok bool, err error) ([]string, bool, error) {
		if !ok || err != nil {
			return nil, ok, err
		}
		return []string{path}, true, nil
	}

	switch command {
	case PickFileCommand:
		return single(d.PickFile())
	case PickFilesCommand:
		return d.PickFiles()
	case PickFolderCommand:
		return single(d.PickFolder())
	case PickFoldersCommand:
		return d.PickFolders()
	}
	return single(d.SaveFile())
}

func (app *App) awaitHandles(ctx context.Context, command string, d *dialog.AsyncFileDialog) ([]string, bool, error) {
	var handles []*dialog.FileHandle
	var err error

	single := func(future *dialog.Future[*dialog.FileHandle]) {
		var handle *dialog.FileHandle
		handle, err = future.Await(ctx)
		if handle != nil {
			handles = []*dialog.FileHandle{handle}
		}
	}

	switch command {
	case PickFileCommand:
		single(d.PickFile())
	case PickFilesCommand:
		handles, err = d.PickFiles().Await(ctx)
	case PickFolderCommand:
		single(d.PickFolder())
	case PickFoldersCommand:
		handles, err = d.PickFolders().Await(ctx)
	default:
		single(d.SaveFile())
	}
	if err != nil || handles == nil {
		return nil, false, err
	}

	paths := make([]string, len(handles))
	for i, handle := range handles {
		if paths[i], err = handle.Path(); err != nil {
			return nil, false, err
		}
	}
	return paths, true, nil
}

// output prints the picked paths and hands them on as requested
func (app *App) output(paths []string, req Request) error {
	if req.Long {
		rows := [][]string{{app.Tr.FileNameColumn, app.Tr.TypeColumn, app.Tr.PathColumn}}
		for _, path := range paths {
			rows = append(rows, []string{
				app.Runtime.WrapFileHandle(path).FileName(),
				app.OSCommand.FileType(path),
				path,
			})
		}
		table, err := utils.RenderTable(rows)
		if err != nil {
			return err
		}
		fmt.Fprintln(app.Out, table)
	} else {
		for _, path := range paths {
			fmt.Fprintln(app.Out, path)
		}
	}

	if req.Copy {
		if app.clipboardUnsupported {
			app.Log.Warn(app.Tr.ClipboardUnsupported)
		} else if err := app.writeClipboard(strings.Join(paths, "\n")); err != nil {
			return err
		}
	}

	if req.Open {
		for _, path := range paths {
			if err := app.OSCommand.OpenFile(path); err != nil {
				return err
			}
		}
	}

	return nil
}

// configureMessageDialog applies the request, falling back to the user
// config, to a blocking or background message box
func configureMessageDialog[D any](
	req Request,
	defaults config.MessageConfig,
	setLevel func(dialog.MessageLevel) (D, error),
	setButtons func(dialog.MessageButtons) (D, error),
	setTitle func(string) (D, error),
	setDescription func(string) (D, error),
) error {
	level := lo.Ternary(req.Level != "", req.Level, defaults.Level)
	if _, err := setLevel(dialog.MessageLevel(level)); err != nil {
		return err
	}

	buttons := lo.Ternary(req.Buttons != "", req.Buttons, defaults.Buttons)
	if _, err := setButtons(dialog.MessageButtons(buttons)); err != nil {
		return err
	}

	if _, err := setTitle(lo.Ternary(req.Title != "", req.Title, defaults.Title)); err != nil {
		return err
	}

	_, err := setDescription(utils.NormalizeLinefeeds(req.Description))
	return err
}

func (app *App) runMessageDialog(ctx context.Context, req Request) error {
	defaults := app.Config.UserConfig.Message

	var confirmed bool
	var err error
	if req.Async {
		d := app.Runtime.NewAsyncMessageDialog()
		if err := configureMessageDialog(req, defaults, d.SetLevel, d.SetButtons, d.SetTitle, d.SetDescription); err != nil {
			return err
		}
		confirmed, err = d.Show().Await(ctx)
	} else {
		d := app.Runtime.NewMessageDialog()
		if err := configureMessageDialog(req, defaults, d.SetLevel, d.SetButtons, d.SetTitle, d.SetDescription); err != nil {
			return err
		}
		confirmed, err = d.Show()
	}
	if err != nil {
		return err
	}

	fmt.Fprintln(app.Out, lo.Ternary(confirmed, app.Tr.Confirmed, app.Tr.Declined))
	if !confirmed {
		return ErrCancelled
	}
	return nil
}

func (app *App) runRead(ctx context.Context, req Request) error {
	handle := app.Runtime.WrapFileHandle(req.Path)

	before := time.Now()
	data, err := handle.ReadContext(ctx)
	if err != nil {
		return err
	}
	app.Log.WithField("size", utils.FormatBinaryBytes(len(data))).Debugf("read %s in %s", handle, time.Since(before))

	if req.Long {
		table, err := utils.RenderTable([][]string{
			{app.Tr.FileNameColumn, app.Tr.SizeColumn, app.Tr.PathColumn},
			{handle.FileName(), utils.FormatBinaryBytes(len(data)), handle.String()},
		})
		if err != nil {
			return err
		}
		fmt.Fprintln(app.Out, table)
		return nil
	}

	_, err = app.Out.Write(data)
	return err
}

type errorMapping struct {
	code       dialog.ErrorCode
	newMessage string
}

// KnownError takes an error and tells us whether it's an error that we know about where we can print a nicely formatted version of it rather than panicking with a stack trace
func (app *App) KnownError(err error) (string, bool) {
	mappings := []errorMapping{
		{code: dialog.InvalidEncoding, newMessage: app.Tr.InvalidEncodingError},
		{code: dialog.InvalidArgument, newMessage: err.Error()},
		{code: dialog.AlreadyConsumed, newMessage: app.Tr.AlreadyConsumedError},
	}

	for _, mapping := range mappings {
		if dialog.HasErrorCode(err, mapping.code) {
			return mapping.newMessage, true
		}
	}

	if strings.HasPrefix(err.Error(), app.Tr.InvalidFilterError) || strings.HasPrefix(err.Error(), app.Tr.UnknownCommandError) {
		return err.Error(), true
	}

	return "", false
}
