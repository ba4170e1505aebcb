package state

import "fmt"

// Tab is one of the mutually exclusive display modes of the main area.
type Tab int

const (
	TabOverview Tab = iota
	TabUsers
	TabReferrals
	TabActivity

	tabCount = iota
)

// Tabs returns every tab in display order.
func Tabs() []Tab {
	return []Tab{TabOverview, TabUsers, TabReferrals, TabActivity}
}

// Valid reports whether t is one of the four tabs.
func (t Tab) Valid() bool { return t >= 0 && t < tabCount }

func (t Tab) String() string {
	switch t {
	case TabOverview:
		return "overview"
	case TabUsers:
		return "users"
	case TabReferrals:
		return "referrals"
	case TabActivity:
		return "activity"
	default:
		return fmt.Sprintf("Tab(%d)", int(t))
	}
}

// Label is the caption shown in the tab selector.
func (t Tab) Label() string {
	switch t {
	case TabOverview:
		return "📊 Обзор"
	case TabUsers:
		return "👥 Пользователи"
	case TabReferrals:
		return "🎁 Рефералы"
	case TabActivity:
		return "📈 Активность"
	default:
		return t.String()
	}
}

// ParseTab maps an identifier such as "users" to its Tab.
func ParseTab(s string) (Tab, error) {
	for _, t := range Tabs() {
		if t.String() == s {
			return t, nil
		}
	}
	return TabOverview, fmt.Errorf("unknown tab %q (want overview, users, referrals or activity)", s)
}

// Router holds the active tab. The zero value selects TabOverview.
type Router struct {
	active Tab
}

// Active returns the selected tab.
func (r *Router) Active() Tab { return r.active }

// Select makes t the active tab and reports whether it changed. The set of
// tabs is closed, so an invalid value is a programming error and panics.
func (r *Router) Select(t Tab) bool {
	if !t.Valid() {
		panic(fmt.Sprintf("state: select of invalid tab %d", int(t)))
	}
	if r.active == t {
		return false
	}
	r.active = t
	return true
}

// Next returns the tab after the active one, wrapping around.
func (r *Router) Next() Tab {
	return Tab((int(r.active) + 1) % tabCount)
}

// Prev returns the tab before the active one, wrapping around.
func (r *Router) Prev() Tab {
	return Tab((int(r.active) + tabCount - 1) % tabCount)
}
