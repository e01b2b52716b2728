package tabs

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"squ1d/pkg/gfx"
)

func activeCount(m *Manager) int {
	n := 0
	for _, t := range m.Tabs() {
		if t.Active {
			n++
		}
	}
	return n
}

func TestNewManager(t *testing.T) {
	m := NewManager("https://google.com")
	require.Equal(t, 1, m.Count())
	tab := m.ActiveTab()
	require.NotNil(t, tab)
	assert.Equal(t, "https://google.com", tab.URL)
	assert.Equal(t, DefaultTitle, tab.Title)
	assert.True(t, tab.Active)
	assert.True(t, tab.Content.Empty())
}

func TestCreateTab(t *testing.T) {
	m := NewManager("home")
	idx := m.CreateTab("https://example.com")
	assert.Equal(t, 1, idx)

	tab := m.Tab(idx)
	require.NotNil(t, tab)
	assert.Equal(t, PlaceholderTitle, tab.Title)
	assert.False(t, tab.Active)
	assert.Equal(t, 0, m.ActiveIndex())
}

func TestSwitchTab(t *testing.T) {
	m := NewManager("a")
	m.CreateTab("b")
	m.CreateTab("c")

	m.SwitchTab(2)
	assert.Equal(t, 2, m.ActiveIndex())
	assert.Equal(t, "c", m.ActiveTab().URL)
	assert.Equal(t, 1, activeCount(m))

	m.SwitchTab(7)
	m.SwitchTab(-1)
	assert.Equal(t, 2, m.ActiveIndex())
}

func TestCloseTab(t *testing.T) {
	tests := []struct {
		name       string
		active     int
		close      int
		wantActive string
		wantCount  int
	}{
		{"active prefers previous", 1, 1, "a", 2},
		{"active first falls to next", 0, 0, "b", 2},
		{"active last", 2, 2, "b", 2},
		{"inactive before active", 2, 0, "c", 2},
		{"inactive after active", 0, 2, "a", 2},
		{"out of range", 1, 3, "b", 3},
		{"negative", 1, -1, "b", 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewManager("a")
			m.CreateTab("b")
			m.CreateTab("c")
			m.SwitchTab(tt.active)

			m.CloseTab(tt.close)
			assert.Equal(t, tt.wantCount, m.Count())
			require.NotNil(t, m.ActiveTab())
			assert.Equal(t, tt.wantActive, m.ActiveTab().URL)
			assert.Equal(t, 1, activeCount(m))
		})
	}
}

func TestCloseLastTab(t *testing.T) {
	m := NewManager("a")
	m.CloseTab(0)

	assert.Equal(t, 0, m.Count())
	assert.Nil(t, m.ActiveTab())
	assert.Equal(t, -1, m.ActiveIndex())

	m.CloseTab(0)
	m.SwitchTab(0)
	assert.Nil(t, m.ActiveTab())

	idx := m.CreateTab("b")
	assert.Equal(t, 0, idx)
	require.NotNil(t, m.ActiveTab())
	assert.Equal(t, "b", m.ActiveTab().URL)
}

func TestActiveTabMutatesInPlace(t *testing.T) {
	m := NewManager("a")
	tab := m.ActiveTab()
	tab.Title = "A"
	tab.Content = gfx.SolidBitmap(2, 2, gfx.Red)

	assert.Equal(t, "A", m.Tab(0).Title)
	assert.False(t, m.Tab(0).Content.Empty())
}

func TestSingleActiveTabInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	m := NewManager("home")

	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			m.CreateTab("t")
		case 1:
			m.SwitchTab(rng.Intn(m.Count()+2) - 1)
		case 2:
			m.CloseTab(rng.Intn(m.Count()+2) - 1)
		}

		if m.Count() == 0 {
			require.Equal(t, -1, m.ActiveIndex())
			require.Nil(t, m.ActiveTab())
			continue
		}
		require.Equal(t, 1, activeCount(m), "step %d", i)
		require.True(t, m.ActiveTab().Active, "step %d", i)
	}
}
