package profiles

import (
	"strings"
	"unicode"
)

// Reserved labels shown in the profile list. Neither is a real profile.
const (
	NewProfileLabel = "(New Profile)"
	NoProfilesLabel = "No Profiles Found"
)

// EntryKind classifies a row of the rendered profile list.
type EntryKind int

const (
	KindNew         EntryKind = iota // "create new" row
	KindProfile                      // a profile reported by the tool
	KindPlaceholder                  // shown when no profiles were found
)

// Entry is one row of the rendered profile list.
type Entry struct {
	Label string
	Kind  EntryKind
}

// Selectable reports whether the row can hold the cursor.
func (e Entry) Selectable() bool {
	return e.Kind != KindPlaceholder
}

// Listing is the view state rebuilt on every refresh.
type Listing struct {
	Names   []string
	Entries []Entry
}

// NewListing builds the rendered rows for names: the "create new" row first,
// then one row per name, or the placeholder when names is empty.
func NewListing(names []string) Listing {
	entries := make([]Entry, 0, len(names)+1)
	entries = append(entries, Entry{Label: NewProfileLabel, Kind: KindNew})
	for _, n := range names {
		entries = append(entries, Entry{Label: n, Kind: KindProfile})
	}
	if len(names) == 0 {
		entries = append(entries, Entry{Label: NoProfilesLabel, Kind: KindPlaceholder})
	}
	return Listing{Names: names, Entries: entries}
}

// Contains reports whether name is one of the listed profiles.
func (l Listing) Contains(name string) bool {
	for _, n := range l.Names {
		if n == name {
			return true
		}
	}
	return false
}

// IsReal reports whether a selection names an actual profile rather than
// being empty or one of the reserved labels.
func IsReal(name string) bool {
	return strings.TrimSpace(name) != "" &&
		name != NewProfileLabel &&
		name != NoProfilesLabel
}

// ParseList extracts profile names from the tool's listing output. Blank
// lines, the "id" header and any banner line mentioning toolName are skipped.
// The name is everything after the first run of whitespace. Order is kept and
// duplicates are not removed.
func ParseList(output, toolName string) []string {
	tool := strings.ToLower(toolName)
	var names []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if strings.HasPrefix(lower, "id") {
			continue
		}
		if tool != "" && strings.Contains(lower, tool) {
			continue
		}
		i := strings.IndexFunc(line, unicode.IsSpace)
		if i < 0 {
			continue
		}
		name := strings.TrimLeftFunc(line[i:], unicode.IsSpace)
		if name == "" {
			continue
		}
		names = append(names, name)
	}
	return names
}
