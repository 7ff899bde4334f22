package native

// MessageOptions is the configuration a backend renders a message box with
type MessageOptions struct {
	Level       Level
	Title       string
	Description string
	Buttons     Buttons
}

// MessageDialog is an immutable message box description. It defaults to an
// info level box with a single OK button and no text.
type MessageDialog struct {
	backend Backend
	opts    MessageOptions
}

func NewMessageDialog(backend Backend) MessageDialog {
	return MessageDialog{
		backend: backend,
		opts: MessageOptions{
			Level:   LevelInfo,
			Buttons: PresetButtons(ButtonsOk),
		},
	}
}

func (d MessageDialog) SetLevel(level Level) MessageDialog {
	d.opts.Level = level
	return d
}

func (d MessageDialog) SetTitle(title string) MessageDialog {
	d.opts.Title = title
	return d
}

func (d MessageDialog) SetDescription(description string) MessageDialog {
	d.opts.Description = description
	return d
}

func (d MessageDialog) SetButtons(buttons Buttons) MessageDialog {
	d.opts.Buttons = buttons
	return d
}

func (d MessageDialog) Options() MessageOptions {
	return d.opts
}

// Show blocks until the box is dismissed. It returns true only when the
// affirmative button was pressed; closing the window counts as a refusal.
func (d MessageDialog) Show() (bool, error) {
	return d.backend.ShowMessage(d.opts)
}
