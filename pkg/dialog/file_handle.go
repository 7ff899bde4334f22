package dialog

import (
	"context"

	"github.com/christophe-duc/lazydialog/pkg/native"
)

// FileHandle refers to a file the user picked. It is only a path: no file is
// kept open, and every Read reads the file afresh.
type FileHandle struct {
	runtime *Runtime
	handle  native.FileHandle
}

// WrapFileHandle makes a handle for path, using the default runtime. The file
// system is not touched.
func WrapFileHandle(path string) *FileHandle {
	return Default().WrapFileHandle(path)
}

func (r *Runtime) WrapFileHandle(path string) *FileHandle {
	return r.wrapHandle(native.Path(path))
}

func (r *Runtime) wrapHandle(path native.Path) *FileHandle {
	return &FileHandle{runtime: r, handle: native.WrapHandle(path)}
}

// FileName returns the last element of the path, following the rules of the
// dialog backend rather than those of path/filepath. The two can disagree,
// e.g. on trailing "." elements; callers who need consistent results should
// split the value returned by Path themselves.
func (h *FileHandle) FileName() string {
	return h.handle.FileName()
}

// Path returns the full path, or an InvalidEncoding error if it is not valid
// UTF-8
func (h *FileHandle) Path() (string, error) {
	return h.runtime.pathText(h.handle.Path())
}

// Read reads the whole file in the background. Reading a directory, or
// anything else the backend cannot read, fails with NativePanic.
//
// Reads take turns with background dialogs: while an AsyncFileDialog or
// AsyncMessageDialog is showing, the read starts only once it is dismissed.
func (h *FileHandle) Read() *Future[[]byte] {
	if _, err := h.Path(); err != nil {
		return rejected[[]byte](err)
	}
	handle := h.handle
	return spawn(h.runtime, "Read", func() ([]byte, error) {
		return handle.Read(), nil
	})
}

// ReadContext reads the file and waits for the result, giving up when ctx is
// done
func (h *FileHandle) ReadContext(ctx context.Context) ([]byte, error) {
	return h.Read().Await(ctx)
}

func (h *FileHandle) String() string {
	return string(h.handle.Path())
}
