package banner

import (
	errorvalues "github.com/limbo/ascent/internal/error_values"
)

// Theme colors are CSS hex values.
type Theme struct {
	Name   string `json:"name"`
	From   string `json:"from"`
	To     string `json:"to"`
	Accent string `json:"accent"`
	Text   string `json:"text"`
}

const DefaultTheme = "midnight"

var themes = []Theme{
	{Name: "midnight", From: "#0f172a", To: "#1e293b", Accent: "#f59e0b", Text: "#f8fafc"},
	{Name: "sunrise", From: "#f97316", To: "#ec4899", Accent: "#fde68a", Text: "#ffffff"},
	{Name: "forest", From: "#064e3b", To: "#065f46", Accent: "#34d399", Text: "#ecfdf5"},
	{Name: "ocean", From: "#0c4a6e", To: "#0369a1", Accent: "#38bdf8", Text: "#f0f9ff"},
	{Name: "paper", From: "#fafaf9", To: "#e7e5e4", Accent: "#dc2626", Text: "#1c1917"},
}

func Themes() []Theme {
	out := make([]Theme, len(themes))
	copy(out, themes)
	return out
}

func ThemeByName(name string) (Theme, error) {
	if name == "" {
		name = DefaultTheme
	}
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	return Theme{}, errorvalues.ErrUnknownTheme
}

// KnownTheme is used to validate the stored user preference.
func KnownTheme(name string) bool {
	_, err := ThemeByName(name)
	return err == nil && name != ""
}
