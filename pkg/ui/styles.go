package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// palette holds the colours for one background type
type palette struct {
	ok, fail, warn, note, muted, brand lipgloss.TerminalColor
}

var (
	// ANSI colours follow the terminal's own scheme
	ansiPalette = palette{
		ok:    lipgloss.ANSIColor(2),
		fail:  lipgloss.ANSIColor(1),
		warn:  lipgloss.ANSIColor(3),
		note:  lipgloss.ANSIColor(6),
		muted: lipgloss.ANSIColor(8),
		brand: lipgloss.ANSIColor(4),
	}
	lightPalette = palette{
		ok:    lipgloss.Color("#1a7f37"),
		fail:  lipgloss.Color("#cf222e"),
		warn:  lipgloss.Color("#9a6700"),
		note:  lipgloss.Color("#0969da"),
		muted: lipgloss.Color("#6e7781"),
		brand: lipgloss.Color("#8250df"),
	}
	darkPalette = palette{
		ok:    lipgloss.Color("#3fb950"),
		fail:  lipgloss.Color("#f85149"),
		warn:  lipgloss.Color("#d29922"),
		note:  lipgloss.Color("#58a6ff"),
		muted: lipgloss.Color("#8b949e"),
		brand: lipgloss.Color("#bc8cff"),
	}
)

var (
	StyleMuted lipgloss.Style
	StyleTitle lipgloss.Style
	StyleBold  = lipgloss.NewStyle().Bold(true)

	styleOK, styleFail, styleWarn, styleNote, styleBrand lipgloss.Style
	styleHeader, styleRule                               lipgloss.Style

	IconSuccess  = "✔"
	IconError    = "✘"
	IconInfo     = "ℹ"
	IconWarning  = "⚠"
	IconDownload = "⬇"
	IconAbsent   = "·"
)

func init() {
	SetTheme("auto")
}

// SetTheme switches colours: "light" and "dark" use fixed hex colours,
// anything else follows the terminal's ANSI palette.
func SetTheme(theme string) {
	p := ansiPalette
	switch theme {
	case "light":
		lipgloss.SetHasDarkBackground(false)
		p = lightPalette
	case "dark":
		lipgloss.SetHasDarkBackground(true)
		p = darkPalette
	}

	styleOK = lipgloss.NewStyle().Foreground(p.ok).Bold(true)
	styleFail = lipgloss.NewStyle().Foreground(p.fail).Bold(true)
	styleWarn = lipgloss.NewStyle().Foreground(p.warn).Bold(true)
	styleNote = lipgloss.NewStyle().Foreground(p.note)
	styleBrand = lipgloss.NewStyle().Foreground(p.brand).Bold(true)
	StyleMuted = lipgloss.NewStyle().Foreground(p.muted)
	StyleTitle = styleBrand.Underline(true)

	styleHeader = styleBrand
	styleRule = StyleMuted
}

func FormatSuccess(msg string) string { return styleOK.Render(IconSuccess + " " + msg) }

func FormatError(msg string) string { return styleFail.Render(IconError + " " + msg) }

func FormatInfo(msg string) string { return styleNote.Render(IconInfo + " " + msg) }

func FormatWarning(msg string) string { return styleWarn.Render(IconWarning + " " + msg) }

// FormatDownload marks a line about network transfers
func FormatDownload(msg string) string { return styleBrand.Render(IconDownload + " " + msg) }

func FormatTitle(title string) string { return StyleTitle.Render(title) }

func FormatMuted(text string) string { return StyleMuted.Render(text) }

// FormatBool renders a presence flag as a check or a dot
func FormatBool(ok bool) string {
	if ok {
		return IconSuccess
	}
	return IconAbsent
}

// RenderKeyValue renders "key: value" with the key highlighted
func RenderKeyValue(key, value string) string {
	return styleNote.Render(key) + ": " + value
}
