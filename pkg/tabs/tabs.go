// Package tabs keeps the ordered set of open tabs and tracks which one is active.
package tabs

import "squ1d/pkg/gfx"

// PlaceholderTitle is shown for a tab whose page has not finished rendering.
const PlaceholderTitle = "Loading..."

// DefaultTitle is the title of the tab a Manager starts with.
const DefaultTitle = "New Tab"

// Tab is one open page. Content holds the last rendered page and is empty
// while a render is pending.
type Tab struct {
	URL     string
	Title   string
	Active  bool
	Content gfx.Bitmap
}

// Manager owns the tabs in display order. Tabs are referred to by index;
// a *Tab returned by the manager is only valid until the next CreateTab or
// CloseTab.
type Manager struct {
	tabs   []Tab
	active int
}

// NewManager returns a manager holding a single active tab on homeURL.
func NewManager(homeURL string) *Manager {
	return &Manager{
		tabs:   []Tab{{URL: homeURL, Title: DefaultTitle, Active: true}},
		active: 0,
	}
}

// CreateTab appends an inactive tab on url and returns its index.
func (m *Manager) CreateTab(url string) int {
	m.tabs = append(m.tabs, Tab{URL: url, Title: PlaceholderTitle})
	if len(m.tabs) == 1 {
		m.active = 0
		m.tabs[0].Active = true
	}
	return len(m.tabs) - 1
}

// SwitchTab makes the tab at index active. Out-of-range indices are ignored.
func (m *Manager) SwitchTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}
	if m.active >= 0 && m.active < len(m.tabs) {
		m.tabs[m.active].Active = false
	}
	m.active = index
	m.tabs[index].Active = true
}

// CloseTab removes the tab at index. When the active tab is closed its
// previous neighbour, or else the next one, becomes active first.
// Out-of-range indices are ignored.
func (m *Manager) CloseTab(index int) {
	if index < 0 || index >= len(m.tabs) {
		return
	}

	if index == m.active {
		switch {
		case index > 0:
			m.SwitchTab(index - 1)
		case index+1 < len(m.tabs):
			m.SwitchTab(index + 1)
		}
	}

	m.tabs = append(m.tabs[:index], m.tabs[index+1:]...)

	switch {
	case len(m.tabs) == 0:
		m.active = -1
	case m.active > index:
		m.active--
	}
	if m.active >= len(m.tabs) {
		m.active = len(m.tabs) - 1
	}
}

// ActiveTab returns the active tab, or nil when no tabs remain.
func (m *Manager) ActiveTab() *Tab {
	if m.active < 0 || m.active >= len(m.tabs) {
		return nil
	}
	return &m.tabs[m.active]
}

// ActiveIndex returns the index of the active tab, or -1 when no tabs remain.
func (m *Manager) ActiveIndex() int {
	if len(m.tabs) == 0 {
		return -1
	}
	return m.active
}

// Tab returns the tab at index, or nil when out of range.
func (m *Manager) Tab(index int) *Tab {
	if index < 0 || index >= len(m.tabs) {
		return nil
	}
	return &m.tabs[index]
}

// Count returns the number of open tabs.
func (m *Manager) Count() int {
	return len(m.tabs)
}

// Tabs returns a copy of the tabs in display order.
func (m *Manager) Tabs() []Tab {
	out := make([]Tab, len(m.tabs))
	copy(out, m.tabs)
	return out
}
