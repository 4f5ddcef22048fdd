package profiles_test

import (
	"testing"

	"github.com/ruminaider/konsave-menu/internal/profiles"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseList(t *testing.T) {
	t.Run("header and two profiles", func(t *testing.T) {
		got := profiles.ParseList("id   name\n1    Gaming\n2    Work\n", "konsave")
		assert.Equal(t, []string{"Gaming", "Work"}, got)
	})

	t.Run("banner and blank lines skipped", func(t *testing.T) {
		out := "Konsave: Profile list\n\nID  NAME\n1   Desk\n\n"
		assert.Equal(t, []string{"Desk"}, profiles.ParseList(out, "konsave"))
	})

	t.Run("name keeps inner spaces", func(t *testing.T) {
		out := "ID NAME\n1\t  My Laptop Setup  \n"
		assert.Equal(t, []string{"My Laptop Setup"}, profiles.ParseList(out, "konsave"))
	})

	t.Run("single token lines skipped", func(t *testing.T) {
		out := "ID NAME\n1\n2 Work\n"
		assert.Equal(t, []string{"Work"}, profiles.ParseList(out, "konsave"))
	})

	t.Run("duplicates preserved in order", func(t *testing.T) {
		out := "1 Work\n2 Home\n3 Work\n"
		assert.Equal(t, []string{"Work", "Home", "Work"}, profiles.ParseList(out, "konsave"))
	})

	t.Run("header match is case-insensitive", func(t *testing.T) {
		assert.Empty(t, profiles.ParseList("Id    Name\n", "konsave"))
	})

	t.Run("no parsable lines", func(t *testing.T) {
		assert.Empty(t, profiles.ParseList("Konsave: No profiles found!\n", "konsave"))
		assert.Empty(t, profiles.ParseList("", "konsave"))
	})
}

func TestNewListing(t *testing.T) {
	t.Run("with names", func(t *testing.T) {
		l := profiles.NewListing([]string{"Gaming", "Work"})
		require.Len(t, l.Entries, 3)
		assert.Equal(t, profiles.NewProfileLabel, l.Entries[0].Label)
		assert.Equal(t, profiles.KindNew, l.Entries[0].Kind)
		assert.Equal(t, "Gaming", l.Entries[1].Label)
		assert.Equal(t, profiles.KindProfile, l.Entries[2].Kind)
		for _, e := range l.Entries {
			assert.True(t, e.Selectable())
		}
	})

	t.Run("empty falls back to one placeholder", func(t *testing.T) {
		l := profiles.NewListing(nil)

		var placeholders []profiles.Entry
		for _, e := range l.Entries {
			if e.Kind == profiles.KindPlaceholder {
				placeholders = append(placeholders, e)
			}
		}
		require.Len(t, placeholders, 1)
		assert.False(t, placeholders[0].Selectable())
		assert.False(t, profiles.IsReal(placeholders[0].Label))
		assert.Empty(t, l.Names)
	})
}

func TestListing_Contains(t *testing.T) {
	l := profiles.NewListing([]string{"Work"})
	assert.True(t, l.Contains("Work"))
	assert.False(t, l.Contains("work"))
	assert.False(t, l.Contains(profiles.NewProfileLabel))
}

func TestIsReal(t *testing.T) {
	assert.True(t, profiles.IsReal("Work"))
	assert.False(t, profiles.IsReal(""))
	assert.False(t, profiles.IsReal("   "))
	assert.False(t, profiles.IsReal(profiles.NewProfileLabel))
	assert.False(t, profiles.IsReal(profiles.NoProfilesLabel))
}
