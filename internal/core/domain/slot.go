package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Fixed dimensions of every background image
const (
	Width  = 1920
	Height = 1080
)

// Slot is one of the fixed background-image purposes of the site
type Slot string

const (
	SlotHome     Slot = "home"
	SlotInsights Slot = "insights"
	SlotStart    Slot = "start"
	SlotPrivacy  Slot = "privacy"
	SlotTerms    Slot = "terms"
	SlotThankYou Slot = "thank_you"
)

var (
	ErrUnknownSlot = errors.New("unknown background slot")
	ErrNotFound    = errors.New("background image not found")
	ErrNotImage    = errors.New("payload is not an image")
	ErrTooSmall    = errors.New("payload is too small to be an image")
)

var allSlots = []Slot{
	SlotHome,
	SlotInsights,
	SlotStart,
	SlotPrivacy,
	SlotTerms,
	SlotThankYou,
}

// pageAliases maps page keys that share another page's background
var pageAliases = map[string]Slot{
	"blog": SlotInsights,
}

// Slots returns every slot in display order
func Slots() []Slot {
	out := make([]Slot, len(allSlots))
	copy(out, allSlots)
	return out
}

// Filename returns the expected image filename
// "thank_you" -> "thank_you_bg_1920x1080.jpg"
func (s Slot) Filename() string {
	return fmt.Sprintf("%s_bg_%dx%d.jpg", string(s), Width, Height)
}

// Valid reports whether s is part of the fixed enumeration
func (s Slot) Valid() bool {
	for _, slot := range allSlots {
		if slot == s {
			return true
		}
	}
	return false
}

func (s Slot) String() string {
	return string(s)
}

// Filenames returns the expected filename of every slot in display order
func Filenames() []string {
	names := make([]string, 0, len(allSlots))
	for _, s := range allSlots {
		names = append(names, s.Filename())
	}
	return names
}

// ParseSlot maps a logical page key to its slot.
// Keys are matched case-insensitively; "thank-you" is accepted for "thank_you".
func ParseSlot(page string) (Slot, error) {
	key := strings.ToLower(strings.TrimSpace(page))
	key = strings.ReplaceAll(key, "-", "_")

	if alias, ok := pageAliases[key]; ok {
		return alias, nil
	}

	s := Slot(key)
	if !s.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownSlot, page)
	}
	return s, nil
}
