// Package history tracks per-window navigation and keeps a persistent visit log.
package history

// History is a linear list of visited URLs with a cursor. Navigating always
// appends and moves the cursor to the end; the entries ahead of the cursor
// are kept when navigating after Back.
type History struct {
	entries  []string
	position int
}

// New returns an empty history.
func New() *History {
	return &History{position: -1}
}

// Push appends url and moves the cursor onto it.
func (h *History) Push(url string) {
	h.entries = append(h.entries, url)
	h.position = len(h.entries) - 1
}

// Back moves the cursor one entry back and returns the URL there.
// It reports false when already at the first entry.
func (h *History) Back() (string, bool) {
	if h.position <= 0 {
		return "", false
	}
	h.position--
	return h.entries[h.position], true
}

// Forward moves the cursor one entry forward and returns the URL there.
// It reports false when already at the last entry.
func (h *History) Forward() (string, bool) {
	if h.position < 0 || h.position >= len(h.entries)-1 {
		return "", false
	}
	h.position++
	return h.entries[h.position], true
}

// CanGoBack reports whether Back would move the cursor.
func (h *History) CanGoBack() bool {
	return h.position > 0
}

// CanGoForward reports whether Forward would move the cursor.
func (h *History) CanGoForward() bool {
	return h.position >= 0 && h.position < len(h.entries)-1
}

// Current returns the URL under the cursor, or "" when empty.
func (h *History) Current() string {
	if h.position < 0 || h.position >= len(h.entries) {
		return ""
	}
	return h.entries[h.position]
}

// Position returns the cursor index, or -1 when empty.
func (h *History) Position() int {
	return h.position
}

// Len returns the number of entries.
func (h *History) Len() int {
	return len(h.entries)
}

// Entries returns a copy of all entries, oldest first.
func (h *History) Entries() []string {
	out := make([]string, len(h.entries))
	copy(out, h.entries)
	return out
}
