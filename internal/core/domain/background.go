package domain

// Origin identifies which search directory held a file
type Origin string

const (
	OriginPreferred Origin = "preferred"
	OriginFallback  Origin = "fallback"
)

// Background is a successfully resolved slot
type Background struct {
	Slot     Slot
	Filename string
	Origin   Origin
	Path     string // Absolute path on disk
	URL      string // Public URL, e.g. /static/img/home_bg_1920x1080.jpg
}

// SlotStatus describes where a slot's file currently lives
type SlotStatus struct {
	Slot         Slot
	Filename     string
	InPreferred  bool
	InFallback   bool
	Size         int64  // Size of the file the resolver would serve
	URL          string // Empty when the slot cannot be resolved
	ResolvedFrom Origin
}

// Present reports whether the slot resolves to a file
func (s SlotStatus) Present() bool {
	return s.InPreferred || s.InFallback
}
