package fynewin

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"

	"squ1d/pkg/platform"
)

// shortcuts are the modified keys fyne only reports through shortcuts.
var shortcuts = []struct {
	name fyne.KeyName
	mod  fyne.KeyModifier
}{
	{fyne.KeyT, fyne.KeyModifierControl},
	{fyne.KeyW, fyne.KeyModifierControl},
	{fyne.KeyL, fyne.KeyModifierControl},
	{fyne.KeyLeft, fyne.KeyModifierAlt},
	{fyne.KeyRight, fyne.KeyModifierAlt},
}

func mapKey(name fyne.KeyName) platform.Key {
	switch name {
	case fyne.KeyEscape:
		return platform.KeyEscape
	case fyne.KeyReturn:
		return platform.KeyReturn
	case fyne.KeyEnter:
		return platform.KeyEnter
	case fyne.KeyBackspace:
		return platform.KeyBackspace
	case fyne.KeyTab:
		return platform.KeyTab
	case fyne.KeyLeft:
		return platform.KeyLeft
	case fyne.KeyRight:
		return platform.KeyRight
	case fyne.KeyF5:
		return platform.KeyF5
	}
	if len(name) == 1 && name[0] >= 'A' && name[0] <= 'Z' {
		return platform.Key(name)
	}
	return platform.KeyUnknown
}

func mapModifier(m fyne.KeyModifier) platform.Modifier {
	var mod platform.Modifier
	if m&fyne.KeyModifierShift != 0 {
		mod |= platform.ModShift
	}
	if m&fyne.KeyModifierControl != 0 {
		mod |= platform.ModControl
	}
	if m&fyne.KeyModifierAlt != 0 {
		mod |= platform.ModAlt
	}
	if m&fyne.KeyModifierSuper != 0 {
		mod |= platform.ModSuper
	}
	return mod
}

func mapButton(b desktop.MouseButton) platform.MouseButton {
	switch {
	case b&desktop.MouseButtonSecondary != 0:
		return platform.MouseRight
	case b&desktop.MouseButtonTertiary != 0:
		return platform.MouseMiddle
	default:
		return platform.MouseLeft
	}
}
