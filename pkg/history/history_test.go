package history

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEmptyHistory(t *testing.T) {
	h := New()
	assert.Equal(t, "", h.Current())
	assert.Equal(t, -1, h.Position())
	assert.False(t, h.CanGoBack())
	assert.False(t, h.CanGoForward())

	_, ok := h.Back()
	assert.False(t, ok)
	_, ok = h.Forward()
	assert.False(t, ok)
	assert.Empty(t, h.Entries())
}

func TestBackKeepsForwardEntries(t *testing.T) {
	h := New()
	h.Push("A")
	h.Push("B")

	url, ok := h.Back()
	assert.True(t, ok)
	assert.Equal(t, "A", url)
	assert.Equal(t, "A", h.Current())
	assert.Equal(t, 0, h.Position())
	assert.Equal(t, []string{"A", "B"}, h.Entries())
}

func TestBackForward(t *testing.T) {
	h := New()
	for _, u := range []string{"a", "b", "c"} {
		h.Push(u)
	}

	h.Back()
	h.Back()
	_, ok := h.Back()
	assert.False(t, ok)
	assert.Equal(t, "a", h.Current())

	url, ok := h.Forward()
	assert.True(t, ok)
	assert.Equal(t, "b", url)
	h.Forward()
	_, ok = h.Forward()
	assert.False(t, ok)
	assert.Equal(t, 2, h.Position())
}

func TestPushAfterBackAppends(t *testing.T) {
	h := New()
	h.Push("a")
	h.Push("b")
	h.Back()
	h.Push("c")

	assert.Equal(t, []string{"a", "b", "c"}, h.Entries())
	assert.Equal(t, 2, h.Position())
	assert.False(t, h.CanGoForward())
}
