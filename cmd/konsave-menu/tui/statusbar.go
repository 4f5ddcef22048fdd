package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// StatusBar renders the bottom row: the last action status on the left and the
// profile count on the right.
type StatusBar struct {
	status string
	count  int
	width  int
}

// NewStatusBar creates a status bar with default values.
func NewStatusBar() StatusBar {
	return StatusBar{status: "Ready"}
}

// SetWidth sets the available width for rendering.
func (s *StatusBar) SetWidth(w int) {
	s.width = w
}

// Update refreshes the status text and profile count. An empty status keeps
// the previous one.
func (s *StatusBar) Update(status string, count int) {
	if status != "" {
		s.status = firstLine(status)
	}
	s.count = count
}

// Clear empties the status text.
func (s *StatusBar) Clear() {
	s.status = ""
}

// Status returns the current status text.
func (s StatusBar) Status() string {
	return s.status
}

// View renders the status bar.
func (s StatusBar) View() string {
	noun := "profiles"
	if s.count == 1 {
		noun = "profile"
	}
	right := StatusBarCountStyle.Render(fmt.Sprintf("%d", s.count)) + " " + noun

	left := s.status
	rightWidth := ansi.StringWidth(right)
	availableWidth := s.width - 2 // StatusBarStyle padding
	if s.width > 0 {
		if maxLeft := availableWidth - rightWidth - 1; maxLeft > 0 {
			left = ansi.Truncate(left, maxLeft, "…")
		}
	}

	gap := availableWidth - ansi.StringWidth(left) - rightWidth
	if gap < 1 {
		gap = 1
	}

	content := left + strings.Repeat(" ", gap) + right
	if s.width <= 0 {
		return StatusBarStyle.Render(content)
	}
	return StatusBarStyle.Width(s.width).Render(content)
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
