package dialog

import (
	"github.com/christophe-duc/lazydialog/pkg/native"
)

// messageState is shared by the blocking and the background message dialogs
type messageState struct {
	runtime *Runtime
	state   *slot[native.MessageDialog]
}

func (r *Runtime) newMessageState() messageState {
	return messageState{
		runtime: r,
		state:   newSlot(native.NewMessageDialog(r.Backend)),
	}
}

func (s messageState) configure(fn func(native.MessageDialog) native.MessageDialog) error {
	if !s.state.update(fn) {
		return s.runtime.alreadyConsumed()
	}
	return nil
}

func (s messageState) take() (native.MessageDialog, error) {
	dialog, ok := s.state.take()
	if !ok {
		return dialog, s.runtime.alreadyConsumed()
	}
	return dialog, nil
}

// invalid reports a bad argument, unless the dialog is used up already
func (s messageState) invalid(message string, value string) error {
	if !s.state.isFilled() {
		return s.runtime.alreadyConsumed()
	}
	return s.runtime.invalidTag(message, value)
}

func (s messageState) setLevel(level MessageLevel) error {
	nativeLevel, ok := level.toNative()
	if !ok {
		return s.invalid(s.runtime.Tr.InvalidLevelError, string(level))
	}
	return s.configure(func(d native.MessageDialog) native.MessageDialog {
		return d.SetLevel(nativeLevel)
	})
}

func (s messageState) setTitle(title string) error {
	return s.configure(func(d native.MessageDialog) native.MessageDialog {
		return d.SetTitle(title)
	})
}

func (s messageState) setDescription(description string) error {
	return s.configure(func(d native.MessageDialog) native.MessageDialog {
		return d.SetDescription(description)
	})
}

func (s messageState) setButtons(buttons MessageButtons) error {
	nativeButtons, ok := buttons.toNative()
	if !ok {
		return s.invalid(s.runtime.Tr.InvalidButtonsError, string(buttons))
	}
	return s.configure(func(d native.MessageDialog) native.MessageDialog {
		return d.SetButtons(nativeButtons)
	})
}

// confirmed translates the outcome of a shown message box
func (s messageState) confirmed(confirmed bool, err error) (bool, error) {
	if err != nil {
		return false, s.runtime.backendError("Show", err)
	}
	return confirmed, nil
}

// MessageDialog shows a message box and blocks until it is dismissed. Like
// FileDialog it can be shown only once.
type MessageDialog struct {
	messageState
}

// NewMessageDialog returns an info message box with an OK button, using the
// default runtime
func NewMessageDialog() *MessageDialog {
	return Default().NewMessageDialog()
}

func (r *Runtime) NewMessageDialog() *MessageDialog {
	return &MessageDialog{messageState: r.newMessageState()}
}

// SetLevel sets the icon of the box. Levels other than LevelInfo,
// LevelWarning and LevelError are rejected with InvalidArgument.
func (d *MessageDialog) SetLevel(level MessageLevel) (*MessageDialog, error) {
	if err := d.setLevel(level); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *MessageDialog) SetTitle(title string) (*MessageDialog, error) {
	if err := d.setTitle(title); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *MessageDialog) SetDescription(description string) (*MessageDialog, error) {
	if err := d.setDescription(description); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *MessageDialog) SetButtons(buttons MessageButtons) (*MessageDialog, error) {
	if err := d.setButtons(buttons); err != nil {
		return nil, err
	}
	return d, nil
}

// Show displays the box. It returns true only if the user pressed OK or Yes;
// Cancel, No and closing the window all return false.
func (d *MessageDialog) Show() (bool, error) {
	dialog, err := d.take()
	if err != nil {
		return false, err
	}
	return d.confirmed(dialog.Show())
}
