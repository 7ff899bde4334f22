package native

import (
	"path/filepath"
	"strings"

	"github.com/go-errors/errors"
	"github.com/ncruces/zenity"
	"github.com/samber/lo"
)

// ZenityBackend renders dialogs with the platform's own dialogs on Windows
// and macOS, and with zenity/kdialog/matedialog on other unixes
type ZenityBackend struct {
	labels Labels
}

func NewZenityBackend(labels Labels) *ZenityBackend {
	return &ZenityBackend{labels: labels}
}

func (b *ZenityBackend) PickFile(opts FileOptions) (Path, bool, error) {
	return zenitySingle(zenity.SelectFile(fileOptions(opts)...))
}

func (b *ZenityBackend) PickFiles(opts FileOptions) ([]Path, bool, error) {
	return zenityMultiple(zenity.SelectFileMultiple(fileOptions(opts)...))
}

func (b *ZenityBackend) PickFolder(opts FileOptions) (Path, bool, error) {
	return zenitySingle(zenity.SelectFile(append(fileOptions(opts), zenity.Directory())...))
}

func (b *ZenityBackend) PickFolders(opts FileOptions) ([]Path, bool, error) {
	return zenityMultiple(zenity.SelectFileMultiple(append(fileOptions(opts), zenity.Directory())...))
}

func (b *ZenityBackend) SaveFile(opts FileOptions) (Path, bool, error) {
	return zenitySingle(zenity.SelectFileSave(append(fileOptions(opts), zenity.ConfirmOverwrite())...))
}

func (b *ZenityBackend) ShowMessage(opts MessageOptions) (bool, error) {
	ok, cancel := b.labels.forButtons(opts.Buttons)

	options := []zenity.Option{
		zenity.Icon(levelIcon(opts.Level)),
		zenity.OKLabel(ok),
	}
	if opts.Title != "" {
		options = append(options, zenity.Title(opts.Title))
	}

	var err error
	if opts.Buttons.HasCancel() {
		options = append(options, zenity.CancelLabel(cancel))
		err = zenity.Question(opts.Description, options...)
	} else {
		err = levelMessage(opts.Level)(opts.Description, options...)
	}

	if errors.Is(err, zenity.ErrCanceled) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func fileOptions(opts FileOptions) []zenity.Option {
	options := []zenity.Option{}
	if opts.Title != "" {
		options = append(options, zenity.Title(opts.Title))
	}
	if start := startPath(opts.Directory, opts.FileName); start != "" {
		options = append(options, zenity.Filename(start))
	}
	if len(opts.Filters) > 0 {
		options = append(options, zenity.FileFilters(lo.Map(opts.Filters, func(filter Filter, _ int) zenity.FileFilter {
			return zenity.FileFilter{
				Name: filter.Name,
				Patterns: lo.Map(filter.Extensions, func(ext string, _ int) string {
					return "*." + strings.TrimPrefix(ext, ".")
				}),
			}
		})))
	}
	return options
}

// startPath combines a starting directory and file name into the single path
// zenity expects. A directory on its own keeps a trailing separator so it is
// not mistaken for a file name.
func startPath(dir, name string) string {
	switch {
	case dir == "":
		return name
	case name == "":
		if strings.HasSuffix(dir, string(filepath.Separator)) {
			return dir
		}
		return dir + string(filepath.Separator)
	default:
		return filepath.Join(dir, name)
	}
}

func levelIcon(level Level) zenity.DialogIcon {
	switch level {
	case LevelWarning:
		return zenity.WarningIcon
	case LevelError:
		return zenity.ErrorIcon
	default:
		return zenity.InfoIcon
	}
}

func levelMessage(level Level) func(string, ...zenity.Option) error {
	switch level {
	case LevelWarning:
		return zenity.Warning
	case LevelError:
		return zenity.Error
	default:
		return zenity.Info
	}
}

func zenitySingle(path string, err error) (Path, bool, error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return Path(path), true, nil
}

func zenityMultiple(paths []string, err error) ([]Path, bool, error) {
	if errors.Is(err, zenity.ErrCanceled) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return lo.Map(paths, func(path string, _ int) Path { return Path(path) }), true, nil
}
