package core

// Theme holds the styles the painter draws with.
type Theme struct {
	Text      Style
	Gutter    Style
	Separator Style
	Selection Style
	Error     Style
	Status    Style
	StatusErr Style
	Help      Style
}

// DefaultTheme returns the stock az colors: cyan line numbers, black on
// white selection, white on blue status bar and red errors.
func DefaultTheme() Theme {
	statusBG := MustHex("#1f4e9c")
	errFG := MustHex("#e5484d")
	return Theme{
		Text:      DefaultStyle(),
		Gutter:    NewStyle(MustHex("#2bb5c8")).Bold(),
		Separator: NewStyle(MustHex("#2bb5c8").Blend(statusBG, 0.5)),
		Selection: Style{Foreground: MustHex("#000"), Background: MustHex("#e8e8e8")},
		Error:     NewStyle(errFG).Underline(),
		Status:    Style{Foreground: MustHex("#fff"), Background: statusBG}.Bold(),
		StatusErr: Style{Foreground: errFG.Blend(MustHex("#fff"), 0.3), Background: statusBG}.Bold(),
		Help:      DefaultStyle(),
	}
}

// WithColors overrides theme colors by name from hex strings. Recognized
// names are "gutter", "selection", "status" and "error"; unknown names are
// reported.
func (t Theme) WithColors(colors map[string]string) (Theme, error) {
	for name, hex := range colors {
		c, err := ColorFromHex(hex)
		if err != nil {
			return t, err
		}
		switch name {
		case "gutter":
			t.Gutter = t.Gutter.WithForeground(c)
		case "selection":
			t.Selection = t.Selection.WithBackground(c)
		case "status":
			t.Status = t.Status.WithBackground(c)
			t.StatusErr = t.StatusErr.WithBackground(c)
		case "error":
			t.Error = t.Error.WithForeground(c)
			t.StatusErr = t.StatusErr.WithForeground(c)
		default:
			return t, &UnknownColorError{Name: name}
		}
	}
	return t, nil
}

// UnknownColorError reports a theme color name that does not exist.
type UnknownColorError struct {
	Name string
}

func (e *UnknownColorError) Error() string {
	return "unknown theme color: " + e.Name
}
