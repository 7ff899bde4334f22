package dialog

// AsyncMessageDialog is the background counterpart of MessageDialog
type AsyncMessageDialog struct {
	messageState
}

func NewAsyncMessageDialog() *AsyncMessageDialog {
	return Default().NewAsyncMessageDialog()
}

func (r *Runtime) NewAsyncMessageDialog() *AsyncMessageDialog {
	return &AsyncMessageDialog{messageState: r.newMessageState()}
}

func (d *AsyncMessageDialog) SetLevel(level MessageLevel) (*AsyncMessageDialog, error) {
	if err := d.setLevel(level); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AsyncMessageDialog) SetTitle(title string) (*AsyncMessageDialog, error) {
	if err := d.setTitle(title); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AsyncMessageDialog) SetDescription(description string) (*AsyncMessageDialog, error) {
	if err := d.setDescription(description); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *AsyncMessageDialog) SetButtons(buttons MessageButtons) (*AsyncMessageDialog, error) {
	if err := d.setButtons(buttons); err != nil {
		return nil, err
	}
	return d, nil
}

// Show displays the box in the background. The future resolves to true only
// if the user pressed OK or Yes.
func (d *AsyncMessageDialog) Show() *Future[bool] {
	dialog, err := d.take()
	if err != nil {
		return rejected[bool](err)
	}
	return spawn(d.runtime, "Show", func() (bool, error) {
		return d.confirmed(dialog.Show())
	})
}
