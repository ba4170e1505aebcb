package ui

// AppMode is the top-level screen the app shows.
type AppMode int

const (
	ModeDashboard AppMode = iota
	ModeHistory
)

func (m AppMode) String() string {
	switch m {
	case ModeDashboard:
		return "Dashboard"
	case ModeHistory:
		return "History"
	default:
		return "Unknown"
	}
}
