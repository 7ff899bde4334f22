package native

import (
	"sort"

	"github.com/go-errors/errors"
	"github.com/samber/lo"
)

// Backend renders dialogs. Every method blocks until the dialog is dismissed.
// A cancelled dialog is reported with ok == false and a nil error; errors are
// reserved for the backend itself failing.
type Backend interface {
	PickFile(opts FileOptions) (path Path, ok bool, err error)
	PickFiles(opts FileOptions) (paths []Path, ok bool, err error)
	PickFolder(opts FileOptions) (path Path, ok bool, err error)
	PickFolders(opts FileOptions) (paths []Path, ok bool, err error)
	SaveFile(opts FileOptions) (path Path, ok bool, err error)
	ShowMessage(opts MessageOptions) (confirmed bool, err error)
}

// Labels are the captions a backend puts on stock buttons, where it supports
// changing them
type Labels struct {
	OK     string
	Cancel string
	Yes    string
	No     string
}

// DefaultLabels returns the english captions
func DefaultLabels() Labels {
	return Labels{OK: "OK", Cancel: "Cancel", Yes: "Yes", No: "No"}
}

// forButtons returns the affirmative and negative captions for b
func (l Labels) forButtons(b Buttons) (string, string) {
	ok, cancel := l.OK, l.Cancel
	if b.Preset == ButtonsYesNo {
		ok, cancel = l.Yes, l.No
	}
	if b.OKLabel != "" {
		ok = b.OKLabel
	}
	if b.CancelLabel != "" {
		cancel = b.CancelLabel
	}
	return ok, cancel
}

// BackendFactory builds a backend using the given button captions
type BackendFactory func(labels Labels) Backend

var backends = map[string]BackendFactory{
	"zenity": func(labels Labels) Backend {
		return NewZenityBackend(labels)
	},
	"scripted": func(Labels) Backend {
		return NewScriptedBackend()
	},
}

// RegisterBackend makes a backend available to NewBackend. It is meant to be
// called from init functions.
func RegisterBackend(name string, factory BackendFactory) {
	backends[name] = factory
}

// NewBackend returns the backend registered under name
func NewBackend(name string, labels Labels) (Backend, error) {
	factory, ok := backends[name]
	if !ok {
		return nil, errors.Errorf("unsupported dialog backend '%s'. Must be one of: %v", name, BackendNames())
	}
	return factory(labels), nil
}

// BackendNames returns the names of all registered backends, sorted
func BackendNames() []string {
	names := lo.Keys(backends)
	sort.Strings(names)
	return names
}
