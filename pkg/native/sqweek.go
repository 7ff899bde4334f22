//go:build sqweek
// +build sqweek

package native

import (
	"github.com/go-errors/errors"
	"github.com/sqweek/dialog"
)

func init() {
	RegisterBackend("sqweek", func(Labels) Backend {
		return &SqweekBackend{}
	})
}

// SqweekBackend renders dialogs through GTK on linux and the native APIs on
// Windows and macOS. It needs cgo. It can only pick one file or folder at a
// time, so the multiple-selection methods return at most one path, and it
// has no warning box, so warnings are shown as info boxes. Button captions
// are decided by the toolkit.
type SqweekBackend struct{}

func (b *SqweekBackend) PickFile(opts FileOptions) (Path, bool, error) {
	return sqweekSingle(fileBuilder(opts).Load())
}

func (b *SqweekBackend) PickFiles(opts FileOptions) ([]Path, bool, error) {
	return sqweekMultiple(b.PickFile(opts))
}

func (b *SqweekBackend) PickFolder(opts FileOptions) (Path, bool, error) {
	builder := dialog.Directory()
	if opts.Title != "" {
		builder = builder.Title(opts.Title)
	}
	if opts.Directory != "" {
		builder = builder.SetStartDir(opts.Directory)
	}
	return sqweekSingle(builder.Browse())
}

func (b *SqweekBackend) PickFolders(opts FileOptions) ([]Path, bool, error) {
	return sqweekMultiple(b.PickFolder(opts))
}

func (b *SqweekBackend) SaveFile(opts FileOptions) (Path, bool, error) {
	return sqweekSingle(fileBuilder(opts).Save())
}

func (b *SqweekBackend) ShowMessage(opts MessageOptions) (bool, error) {
	builder := dialog.Message("%s", opts.Description)
	if opts.Title != "" {
		builder = builder.Title(opts.Title)
	}

	if opts.Buttons.HasCancel() {
		return builder.YesNo(), nil
	}

	if opts.Level == LevelError {
		builder.Error()
	} else {
		builder.Info()
	}
	return true, nil
}

func fileBuilder(opts FileOptions) *dialog.FileBuilder {
	builder := dialog.File()
	if opts.Title != "" {
		builder = builder.Title(opts.Title)
	}
	for _, filter := range opts.Filters {
		builder = builder.Filter(filter.Name, filter.Extensions...)
	}
	if opts.Directory != "" {
		builder = builder.SetStartDir(opts.Directory)
	}
	if opts.FileName != "" {
		builder = builder.SetStartFile(opts.FileName)
	}
	return builder
}

func sqweekSingle(path string, err error) (Path, bool, error) {
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return Path(path), true, nil
}

func sqweekMultiple(path Path, ok bool, err error) ([]Path, bool, error) {
	if !ok || err != nil {
		return nil, ok, err
	}
	return []Path{path}, true, nil
}
