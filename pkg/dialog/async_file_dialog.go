package dialog

// AsyncFileDialog is the background counterpart of FileDialog. Its Pick and
// Save methods return straight away with a Future; the dialog itself runs on
// its own goroutine, with panics in the native layer turned into NativePanic
// errors. Like FileDialog it shows a single dialog: the second Pick or Save
// call fails with AlreadyConsumed even while the first dialog is still open.
type AsyncFileDialog struct {
	fileState
}

// NewAsyncFileDialog returns a background file dialog using the default runtime
func NewAsyncFileDialog() *AsyncFileDialog {
	return Default().NewAsyncFileDialog()
}

func (r *Runtime) NewAsyncFileDialog() *AsyncFileDialog {
	return &AsyncFileDialog{fileState: r.newFileState()}
}

// AddFilter adds a filter offering only files with the given extensions,
// given without the leading dot
func (d *AsyncFileDialog) AddFilter(name string, extensions ...string) (*AsyncFileDialog, error) {
	if err := d.addFilter(name, extensions); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AsyncFileDialog) SetDirectory(dir string) (*AsyncFileDialog, error) {
	if err := d.setDirectory(dir); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AsyncFileDialog) SetFileName(name string) (*AsyncFileDialog, error) {
	if err := d.setFileName(name); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AsyncFileDialog) SetTitle(title string) (*AsyncFileDialog, error) {
	if err := d.setTitle(title); err != nil {
		return nil, err
	}
	return d, nil
}

// PickFile resolves to the chosen file, or to a nil handle if the user
// cancelled
func (d *AsyncFileDialog) PickFile() *Future[*FileHandle] {
	dialog, err := d.take()
	if err != nil {
		return rejected[*FileHandle](err)
	}
	return spawn(d.runtime, "PickFile", func() (*FileHandle, error) {
		picked, ok, err := dialog.PickFile()
		return d.runtime.singleHandle("PickFile", picked, ok, err)
	})
}

// PickFiles resolves to the chosen files, or to nil if the user cancelled
func (d *AsyncFileDialog) PickFiles() *Future[[]*FileHandle] {
	dialog, err := d.take()
	if err != nil {
		return rejected[[]*FileHandle](err)
	}
	return spawn(d.runtime, "PickFiles", func() ([]*FileHandle, error) {
		picked, ok, err := dialog.PickFiles()
		return d.runtime.multipleHandles("PickFiles", picked, ok, err)
	})
}

func (d *AsyncFileDialog) PickFolder() *Future[*FileHandle] {
	dialog, err := d.take()
	if err != nil {
		return rejected[*FileHandle](err)
	}
	return spawn(d.runtime, "PickFolder", func() (*FileHandle, error) {
		picked, ok, err := dialog.PickFolder()
		return d.runtime.singleHandle("PickFolder", picked, ok, err)
	})
}

func (d *AsyncFileDialog) PickFolders() *Future[[]*FileHandle] {
	dialog, err := d.take()
	if err != nil {
		return rejected[[]*FileHandle](err)
	}
	return spawn(d.runtime, "PickFolders", func() ([]*FileHandle, error) {
		picked, ok, err := dialog.PickFolders()
		return d.runtime.multipleHandles("PickFolders", picked, ok, err)
	})
}

// SaveFile resolves to a handle for the path the user chose to save to. The
// file is not created, so reading the handle may fail.
func (d *AsyncFileDialog) SaveFile() *Future[*FileHandle] {
	dialog, err := d.take()
	if err != nil {
		return rejected[*FileHandle](err)
	}
	return spawn(d.runtime, "SaveFile", func() (*FileHandle, error) {
		picked, ok, err := dialog.SaveFile()
		return d.runtime.singleHandle("SaveFile", picked, ok, err)
	})
}
