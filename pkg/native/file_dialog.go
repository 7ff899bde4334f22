package native

// Filter restricts the files a file dialog offers to the given extensions.
// Extensions are given without the leading dot.
type Filter struct {
	Name       string
	Extensions []string
}

// FileOptions is the configuration a backend renders a file dialog with
type FileOptions struct {
	Filters   []Filter
	Directory string
	FileName  string
	Title     string
}

// FileDialog is an immutable file dialog description. Every setter returns a
// new value and leaves the receiver untouched, so a FileDialog can be handed
// around freely; running it is done with one of the Pick/Save methods.
type FileDialog struct {
	backend Backend
	opts    FileOptions
}

// NewFileDialog returns an unconfigured file dialog rendered by backend
func NewFileDialog(backend Backend) FileDialog {
	return FileDialog{backend: backend}
}

func (d FileDialog) AddFilter(name string, extensions []string) FileDialog {
	filters := make([]Filter, len(d.opts.Filters), len(d.opts.Filters)+1)
	copy(filters, d.opts.Filters)
	d.opts.Filters = append(filters, Filter{
		Name:       name,
		Extensions: append([]string(nil), extensions...),
	})
	return d
}

// SetDirectory sets the directory the dialog starts in
func (d FileDialog) SetDirectory(dir string) FileDialog {
	d.opts.Directory = dir
	return d
}

// SetFileName sets the file name the dialog is pre-filled with
func (d FileDialog) SetFileName(name string) FileDialog {
	d.opts.FileName = name
	return d
}

func (d FileDialog) SetTitle(title string) FileDialog {
	d.opts.Title = title
	return d
}

// Options returns a copy of the accumulated configuration
func (d FileDialog) Options() FileOptions {
	return copyFileOptions(d.opts)
}

// PickFile shows an open dialog for a single file. ok is false when the user
// cancelled.
func (d FileDialog) PickFile() (Path, bool, error) {
	return d.backend.PickFile(d.Options())
}

func (d FileDialog) PickFiles() ([]Path, bool, error) {
	return d.backend.PickFiles(d.Options())
}

func (d FileDialog) PickFolder() (Path, bool, error) {
	return d.backend.PickFolder(d.Options())
}

func (d FileDialog) PickFolders() ([]Path, bool, error) {
	return d.backend.PickFolders(d.Options())
}

// SaveFile shows a save dialog. The chosen file is not created.
func (d FileDialog) SaveFile() (Path, bool, error) {
	return d.backend.SaveFile(d.Options())
}

func copyFileOptions(opts FileOptions) FileOptions {
	if opts.Filters == nil {
		return opts
	}
	filters := make([]Filter, len(opts.Filters))
	for i, filter := range opts.Filters {
		filters[i] = Filter{
			Name:       filter.Name,
			Extensions: append([]string(nil), filter.Extensions...),
		}
	}
	opts.Filters = filters
	return opts
}
