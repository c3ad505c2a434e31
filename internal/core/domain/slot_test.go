package domain

import (
	"errors"
	"testing"
)

func TestSlot_Filename(t *testing.T) {
	tests := []struct {
		slot     Slot
		expected string
	}{
		{SlotHome, "home_bg_1920x1080.jpg"},
		{SlotInsights, "insights_bg_1920x1080.jpg"},
		{SlotStart, "start_bg_1920x1080.jpg"},
		{SlotPrivacy, "privacy_bg_1920x1080.jpg"},
		{SlotTerms, "terms_bg_1920x1080.jpg"},
		{SlotThankYou, "thank_you_bg_1920x1080.jpg"},
	}

	for _, tt := range tests {
		t.Run(string(tt.slot), func(t *testing.T) {
			if got := tt.slot.Filename(); got != tt.expected {
				t.Errorf("Filename() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestSlots_FixedEnumeration(t *testing.T) {
	slots := Slots()
	if len(slots) != 6 {
		t.Fatalf("expected 6 slots, got %d", len(slots))
	}

	// Returned slice must be a copy
	slots[0] = "mutated"
	if Slots()[0] != SlotHome {
		t.Error("Slots() exposed internal state")
	}
}

func TestFilenames_MatchSlots(t *testing.T) {
	names := Filenames()
	slots := Slots()

	if len(names) != len(slots) {
		t.Fatalf("expected %d filenames, got %d", len(slots), len(names))
	}
	for i, s := range slots {
		if names[i] != string(s)+"_bg_1920x1080.jpg" {
			t.Errorf("Filenames()[%d] = %q", i, names[i])
		}
	}
}

func TestParseSlot(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		want    Slot
		wantErr bool
	}{
		{"home", "home", SlotHome, false},
		{"thank_you", "thank_you", SlotThankYou, false},
		{"hyphenated", "thank-you", SlotThankYou, false},
		{"uppercase", "Privacy", SlotPrivacy, false},
		{"whitespace", "  terms ", SlotTerms, false},
		{"blog alias", "blog", SlotInsights, false},
		{"unknown", "contact", "", true},
		{"empty", "", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlot(tt.page)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownSlot) {
					t.Fatalf("expected ErrUnknownSlot, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseSlot(%q) = %q, want %q", tt.page, got, tt.want)
			}
		})
	}
}

func TestSlot_Valid(t *testing.T) {
	for _, s := range Slots() {
		if !s.Valid() {
			t.Errorf("%q should be valid", s)
		}
	}
	if Slot("blog").Valid() {
		t.Error("alias must not be a slot of its own")
	}
}
