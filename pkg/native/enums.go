package native

// Level determines the icon of a message dialog and possibly other
// platform-specific defaults.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError

	// NumLevels is the number of levels. It is not a level itself.
	NumLevels
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// ButtonPreset is one of the stock button sets of a message dialog
type ButtonPreset int

const (
	ButtonsOk ButtonPreset = iota
	ButtonsOkCancel
	ButtonsYesNo

	// NumPresetButtons is the number of presets. It is not a preset itself.
	NumPresetButtons
)

func (b ButtonPreset) String() string {
	switch b {
	case ButtonsOk:
		return "ok"
	case ButtonsOkCancel:
		return "ok-cancel"
	case ButtonsYesNo:
		return "yes-no"
	}
	return "unknown"
}

// Buttons is the button set of a message dialog. The zero value is a single
// OK button. When OKLabel or CancelLabel are set they replace the labels the
// backend would otherwise pick for the preset.
type Buttons struct {
	Preset      ButtonPreset
	OKLabel     string
	CancelLabel string
}

// PresetButtons returns the stock button set for p
func PresetButtons(p ButtonPreset) Buttons {
	return Buttons{Preset: p}
}

// CustomButtons returns a button set with custom labels. An empty cancel label
// yields a single button.
func CustomButtons(ok, cancel string) Buttons {
	if cancel == "" {
		return Buttons{Preset: ButtonsOk, OKLabel: ok}
	}
	return Buttons{Preset: ButtonsOkCancel, OKLabel: ok, CancelLabel: cancel}
}

// IsCustom reports whether any label has been overridden
func (b Buttons) IsCustom() bool {
	return b.OKLabel != "" || b.CancelLabel != ""
}

// HasCancel reports whether the set has a negative button
func (b Buttons) HasCancel() bool {
	return b.Preset != ButtonsOk
}
