package ui

import (
	"strings"
	"testing"
)

func TestFormatHelpersKeepMessage(t *testing.T) {
	t.Cleanup(func() { SetTheme("auto") })

	for _, theme := range []string{"auto", "light", "dark", "unknown"} {
		t.Run(theme, func(t *testing.T) {
			SetTheme(theme)

			tests := map[string]string{
				"success":  FormatSuccess("saved"),
				"error":    FormatError("saved"),
				"info":     FormatInfo("saved"),
				"warning":  FormatWarning("saved"),
				"download": FormatDownload("saved"),
				"muted":    FormatMuted("saved"),
				"title":    FormatTitle("saved"),
			}
			for name, out := range tests {
				if !strings.Contains(out, "saved") {
					t.Errorf("%s: message lost in %q", name, out)
				}
			}
		})
	}
}

func TestFormatBool(t *testing.T) {
	if FormatBool(true) != IconSuccess {
		t.Errorf("FormatBool(true) = %q", FormatBool(true))
	}
	if FormatBool(false) != IconAbsent {
		t.Errorf("FormatBool(false) = %q", FormatBool(false))
	}
}

func TestRenderKeyValue(t *testing.T) {
	out := RenderKeyValue("Version", "dev")
	if !strings.Contains(out, "Version") || !strings.HasSuffix(out, ": dev") {
		t.Errorf("unexpected output %q", out)
	}
}
