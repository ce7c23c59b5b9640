package expensewise

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDecodeSettingsDefaults(t *testing.T) {
	dir := t.TempDir()
	testCases := []struct {
		name    string
		content string // empty means no file
		want    Theme
	}{
		{name: "missing file", want: ThemeDark},
		{name: "garbage", content: "{not json", want: ThemeDark},
		{name: "unknown theme", content: `{"theme":"sepia"}`, want: ThemeDark},
		{name: "light", content: `{"theme":"light"}`, want: ThemeLight},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.name+".json")
			if tc.content != "" {
				if err := os.WriteFile(path, []byte(tc.content), 0o644); err != nil {
					t.Fatal(err)
				}
			}
			if got := decodeSettings(path); got.Theme != tc.want {
				t.Errorf("theme = %q, want %q", got.Theme, tc.want)
			}
		})
	}
}

func TestSettingsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	if err := encodeSettings(path, Settings{Theme: ThemeLight}); err != nil {
		t.Fatal(err)
	}
	if got := decodeSettings(path); got.Theme != ThemeLight {
		t.Errorf("theme = %q, want light", got.Theme)
	}
}
