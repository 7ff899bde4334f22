package dialog

import (
	"github.com/christophe-duc/lazydialog/pkg/native"
	"github.com/samber/lo"
)

// MessageLevel determines the icon shown in a message dialog. Defaults to
// LevelInfo.
type MessageLevel string

const (
	LevelInfo    MessageLevel = "Info"
	LevelWarning MessageLevel = "Warning"
	LevelError   MessageLevel = "Error"
)

// MessageButtons selects the buttons of a message dialog. Defaults to
// ButtonsOk. The backends can also show custom captions; that is not exposed
// here.
type MessageButtons string

const (
	ButtonsOk       MessageButtons = "Ok"
	ButtonsOkCancel MessageButtons = "OkCancel"
	ButtonsYesNo    MessageButtons = "YesNo"
)

type levelEntry struct {
	tag    MessageLevel
	native native.Level
}

type buttonsEntry struct {
	tag    MessageButtons
	native native.ButtonPreset
}

var messageLevels = [...]levelEntry{
	{LevelInfo, native.LevelInfo},
	{LevelWarning, native.LevelWarning},
	{LevelError, native.LevelError},
}

var messageButtons = [...]buttonsEntry{
	{ButtonsOk, native.ButtonsOk},
	{ButtonsOkCancel, native.ButtonsOkCancel},
	{ButtonsYesNo, native.ButtonsYesNo},
}

// Both tables must cover the native enumerations exactly. Adding a variant on
// either side without the other breaks the build here.
var (
	_ [len(messageLevels) - int(native.NumLevels)]struct{}
	_ [int(native.NumLevels) - len(messageLevels)]struct{}
	_ [len(messageButtons) - int(native.NumPresetButtons)]struct{}
	_ [int(native.NumPresetButtons) - len(messageButtons)]struct{}
)

// MessageLevels returns every level, in declaration order
func MessageLevels() []MessageLevel {
	return lo.Map(messageLevels[:], func(entry levelEntry, _ int) MessageLevel {
		return entry.tag
	})
}

// AllMessageButtons returns every button set, in declaration order
func AllMessageButtons() []MessageButtons {
	return lo.Map(messageButtons[:], func(entry buttonsEntry, _ int) MessageButtons {
		return entry.tag
	})
}

// ParseMessageLevel accepts exactly the tags "Info", "Warning" and "Error".
// Errors are worded by the default runtime.
func ParseMessageLevel(tag string) (MessageLevel, error) {
	return Default().ParseMessageLevel(tag)
}

// ParseMessageButtons accepts exactly the tags "Ok", "OkCancel" and "YesNo".
// Errors are worded by the default runtime.
func ParseMessageButtons(tag string) (MessageButtons, error) {
	return Default().ParseMessageButtons(tag)
}

func (r *Runtime) ParseMessageLevel(tag string) (MessageLevel, error) {
	level := MessageLevel(tag)
	if _, ok := level.toNative(); !ok {
		return "", r.invalidTag(r.Tr.InvalidLevelError, tag)
	}
	return level, nil
}

func (r *Runtime) ParseMessageButtons(tag string) (MessageButtons, error) {
	buttons := MessageButtons(tag)
	if _, ok := buttons.toNative(); !ok {
		return "", r.invalidTag(r.Tr.InvalidButtonsError, tag)
	}
	return buttons, nil
}

// invalidTag is the error for a level or button tag that does not exist
func (r *Runtime) invalidTag(message string, tag string) error {
	return newError(InvalidArgument, message+" '"+tag+"'", nil)
}

func (l MessageLevel) String() string {
	return string(l)
}

func (b MessageButtons) String() string {
	return string(b)
}

func (l MessageLevel) toNative() (native.Level, bool) {
	for _, entry := range messageLevels {
		if entry.tag == l {
			return entry.native, true
		}
	}
	return 0, false
}

func (b MessageButtons) toNative() (native.Buttons, bool) {
	for _, entry := range messageButtons {
		if entry.tag == b {
			return native.PresetButtons(entry.native), true
		}
	}
	return native.Buttons{}, false
}

func messageLevelFromNative(level native.Level) (MessageLevel, bool) {
	for _, entry := range messageLevels {
		if entry.native == level {
			return entry.tag, true
		}
	}
	return "", false
}

// messageButtonsFromNative maps a stock button set back to its tag. Sets with
// custom captions have no tag.
func messageButtonsFromNative(buttons native.Buttons) (MessageButtons, bool) {
	if buttons.IsCustom() {
		return "", false
	}
	for _, entry := range messageButtons {
		if entry.native == buttons.Preset {
			return entry.tag, true
		}
	}
	return "", false
}
