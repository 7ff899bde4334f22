package dialog

import (
	"github.com/christophe-duc/lazydialog/pkg/native"
)

// fileState is shared by the blocking and the background file dialogs
type fileState struct {
	runtime *Runtime
	state   *slot[native.FileDialog]
}

func (r *Runtime) newFileState() fileState {
	return fileState{
		runtime: r,
		state:   newSlot(native.NewFileDialog(r.Backend)),
	}
}

func (s fileState) configure(fn func(native.FileDialog) native.FileDialog) error {
	if !s.state.update(fn) {
		return s.runtime.alreadyConsumed()
	}
	return nil
}

func (s fileState) take() (native.FileDialog, error) {
	dialog, ok := s.state.take()
	if !ok {
		return dialog, s.runtime.alreadyConsumed()
	}
	return dialog, nil
}

func (s fileState) addFilter(name string, extensions []string) error {
	return s.configure(func(d native.FileDialog) native.FileDialog {
		return d.AddFilter(name, extensions)
	})
}

func (s fileState) setDirectory(dir string) error {
	return s.configure(func(d native.FileDialog) native.FileDialog {
		return d.SetDirectory(dir)
	})
}

func (s fileState) setFileName(name string) error {
	return s.configure(func(d native.FileDialog) native.FileDialog {
		return d.SetFileName(name)
	})
}

func (s fileState) setTitle(title string) error {
	return s.configure(func(d native.FileDialog) native.FileDialog {
		return d.SetTitle(title)
	})
}

// FileDialog opens and saves files, blocking the caller until the user is
// done. It can show one dialog only: after any of the Pick or Save methods has
// been called every further call fails with AlreadyConsumed.
type FileDialog struct {
	fileState
}

// NewFileDialog returns a file dialog using the default runtime
func NewFileDialog() *FileDialog {
	return Default().NewFileDialog()
}

func (r *Runtime) NewFileDialog() *FileDialog {
	return &FileDialog{fileState: r.newFileState()}
}

// AddFilter adds a filter offering only files with the given extensions.
// Extensions are given without the leading dot, e.g. AddFilter("Text", "txt").
func (d *FileDialog) AddFilter(name string, extensions ...string) (*FileDialog, error) {
	if err := d.addFilter(name, extensions); err != nil {
		return nil, err
	}
	return d, nil
}

// SetDirectory sets the directory the dialog starts in
func (d *FileDialog) SetDirectory(dir string) (*FileDialog, error) {
	if err := d.setDirectory(dir); err != nil {
		return nil, err
	}
	return d, nil
}

// SetFileName sets the file name the dialog is pre-filled with
func (d *FileDialog) SetFileName(name string) (*FileDialog, error) {
	if err := d.setFileName(name); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *FileDialog) SetTitle(title string) (*FileDialog, error) {
	if err := d.setTitle(title); err != nil {
		return nil, err
	}
	return d, nil
}

// PickFile asks for a single existing file. ok is false if the user cancelled.
func (d *FileDialog) PickFile() (path string, ok bool, err error) {
	dialog, err := d.take()
	if err != nil {
		return "", false, err
	}
	picked, ok, err := dialog.PickFile()
	return d.runtime.singleText("PickFile", picked, ok, err)
}

// PickFiles asks for one or more existing files
func (d *FileDialog) PickFiles() (paths []string, ok bool, err error) {
	dialog, err := d.take()
	if err != nil {
		return nil, false, err
	}
	picked, ok, err := dialog.PickFiles()
	return d.runtime.multipleText("PickFiles", picked, ok, err)
}

func (d *FileDialog) PickFolder() (path string, ok bool, err error) {
	dialog, err := d.take()
	if err != nil {
		return "", false, err
	}
	picked, ok, err := dialog.PickFolder()
	return d.runtime.singleText("PickFolder", picked, ok, err)
}

func (d *FileDialog) PickFolders() (paths []string, ok bool, err error) {
	dialog, err := d.take()
	if err != nil {
		return nil, false, err
	}
	picked, ok, err := dialog.PickFolders()
	return d.runtime.multipleText("PickFolders", picked, ok, err)
}

// SaveFile asks where to save a file. Nothing is written to the chosen path.
func (d *FileDialog) SaveFile() (path string, ok bool, err error) {
	dialog, err := d.take()
	if err != nil {
		return "", false, err
	}
	picked, ok, err := dialog.SaveFile()
	return d.runtime.singleText("SaveFile", picked, ok, err)
}
