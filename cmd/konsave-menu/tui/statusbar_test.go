package tui

import (
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestStatusBar_Defaults(t *testing.T) {
	s := NewStatusBar()
	assert.Equal(t, "Ready", s.Status())
	assert.Contains(t, s.View(), "Ready")
	assert.Contains(t, s.View(), "0 profiles")
}

func TestStatusBar_Update(t *testing.T) {
	s := NewStatusBar()

	s.Update("Renamed 'a' to 'b' successfully.", 1)
	assert.Equal(t, "Renamed 'a' to 'b' successfully.", s.Status())
	assert.Contains(t, s.View(), "1 profile")

	s.Update("", 3)
	assert.Equal(t, "Renamed 'a' to 'b' successfully.", s.Status(), "empty status keeps the previous one")

	s.Update("first\nsecond", 3)
	assert.Equal(t, "first", s.Status())
}

func TestStatusBar_FitsWidth(t *testing.T) {
	s := NewStatusBar()
	s.SetWidth(30)
	s.Update("a very long status line that cannot possibly fit in thirty cells", 2)

	view := s.View()
	assert.Equal(t, 30, ansi.StringWidth(view))
	assert.Contains(t, view, "2 profiles")
}

func TestStatusBar_Clear(t *testing.T) {
	s := NewStatusBar()
	s.Update("Done!", 2)
	s.Clear()

	assert.Empty(t, s.Status())
	assert.NotContains(t, s.View(), "Done!")
	assert.Contains(t, s.View(), "2 profiles")
}
