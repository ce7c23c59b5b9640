package expensewise

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Theme selects the presentation theme persisted in the user settings.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// ParseTheme parses a Theme from its string form.
func ParseTheme(str string) (Theme, error) {
	switch Theme(str) {
	case ThemeDark, ThemeLight:
		return Theme(str), nil
	}
	return "", fmt.Errorf("invalid theme %q (want %q or %q)", str, ThemeDark, ThemeLight)
}

// Settings holds per-user preferences, persisted as a small JSON document
// next to the tabular collections.
type Settings struct {
	Theme Theme `json:"theme"`
}

func defaultSettings() Settings {
	return Settings{Theme: ThemeDark}
}

// decodeSettings reads the settings document at path. Any failure, a missing
// file included, falls back to the defaults.
func decodeSettings(path string) Settings {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("default-settings file=%q: %v", path, err)
		}
		return defaultSettings()
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("default-settings file=%q: %v", path, err)
		return defaultSettings()
	}
	if _, err := ParseTheme(string(s.Theme)); err != nil {
		log.Printf("default-settings file=%q: %v", path, err)
		s.Theme = ThemeDark
	}
	return s
}

// encodeSettings writes the settings document to path, indented so the file
// stays hand-editable.
func encodeSettings(path string, s Settings) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("persist error: cannot marshal settings: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("persist error: cannot write %q: %w", path, err)
	}
	return nil
}
