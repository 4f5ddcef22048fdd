package main

import (
	"errors"
	"testing"

	"github.com/ruminaider/konsave-menu/cmd/konsave-menu/tui"
	"github.com/ruminaider/konsave-menu/internal/actions"
	"github.com/ruminaider/konsave-menu/internal/profiles"
	"github.com/stretchr/testify/assert"
)

func TestStatusLine(t *testing.T) {
	tests := []struct {
		name string
		out  actions.Outcome
		want string
	}{
		{"cancelled", actions.Outcome{Cancelled: true}, "Cancelled."},
		{"status", actions.Outcome{Status: "Profile saved successfully!"}, "Profile saved successfully!"},
		{"failed command keeps its status", actions.Outcome{Status: "Command failed", Err: errors.New("boom")}, "Command failed"},
		{"validation", actions.Outcome{Err: actions.ErrNoProfile}, "Aborted: no profile selected"},
		{"empty", actions.Outcome{}, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, statusLine(tt.out))
		})
	}
}

func TestSaveRequest(t *testing.T) {
	l := profiles.NewListing([]string{"Gaming", "Work"})

	assert.Equal(t,
		actions.Request{ID: actions.Save, Selected: "Work"},
		saveRequest(l, "Work"), "existing name overwrites")
	assert.Equal(t,
		actions.Request{ID: actions.Save, Selected: profiles.NewProfileLabel, Input: "Laptop"},
		saveRequest(l, "Laptop"))
	assert.Equal(t,
		actions.Request{ID: actions.Save, Selected: profiles.NewProfileLabel},
		saveRequest(l, ""), "no name prompts")
}

func TestMenuKeysCoverEveryAction(t *testing.T) {
	// Every action must be reachable from the profile list.
	keys := map[string]bool{}
	for _, k := range []string{"s", "i", "e", "l", "d", "r", "o", "R"} {
		m := tui.NewProfilesModel(profiles.NewListing([]string{"Work"}))
		m.Focus("Work")
		updated, _ := m.Update(keyRunes(k))
		keys[string(updated.(tui.ProfilesModel).Selected.Action)] = true
	}
	for _, id := range actions.All() {
		assert.True(t, keys[string(id)], "action %q has no key", id)
	}
}
