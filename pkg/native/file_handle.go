package native

import "os"

// FileHandle refers to a path picked by the user. It holds no open file.
type FileHandle struct {
	path Path
}

// WrapHandle makes a handle for p without touching the file system
func WrapHandle(p Path) FileHandle {
	return FileHandle{path: p}
}

func (h FileHandle) Path() Path {
	return h.path
}

// FileName returns the last element of the path, or the empty string when the
// path has none (a root, or a path ending in "..").
func (h FileHandle) FileName() string {
	return fileName(string(h.path))
}

// Read returns the contents of the file. It panics when the file cannot be
// read, which includes the handle naming a directory.
func (h FileHandle) Read() []byte {
	data, err := os.ReadFile(string(h.path))
	if err != nil {
		panic(err)
	}
	return data
}
