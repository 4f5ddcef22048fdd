package tui

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/ruminaider/konsave-menu/internal/actions"
	"github.com/ruminaider/konsave-menu/internal/profiles"
)

// StatusTimeout is how long an action's status stays in the status bar.
const StatusTimeout = 2 * time.Second

type clearStatusMsg struct{}

// Selection is the result of pressing an action key.
type Selection struct {
	Action  actions.ID
	Profile string // label under the cursor, possibly a reserved label
}

// ProfilesModel is the Bubble Tea model for the profile list.
type ProfilesModel struct {
	listing   profiles.Listing
	cursor    int
	keys      keyMap
	help      help.Model
	statusBar StatusBar
	transient bool // status came from an action and is cleared after StatusTimeout
	width     int
	height    int
	Version   string
	Quitting  bool
	Selected  Selection // set when an action key is pressed
}

// NewProfilesModel creates a model showing l with the cursor on the first row.
func NewProfilesModel(l profiles.Listing) ProfilesModel {
	h := help.New()
	h.Styles.ShortKey = helpKeyStyle
	h.Styles.ShortDesc = helpDescStyle
	h.Styles.ShortSeparator = helpSepStyle
	h.Styles.FullKey = helpKeyStyle
	h.Styles.FullDesc = helpDescStyle
	h.Styles.FullSeparator = helpSepStyle

	m := ProfilesModel{
		listing:   l,
		keys:      newKeyMap(),
		help:      h,
		statusBar: NewStatusBar(),
	}
	m.statusBar.Update("", len(l.Names))
	m.syncKeys()
	return m
}

// SetStatus shows status until StatusTimeout after the program starts. An
// empty status keeps the default text.
func (m *ProfilesModel) SetStatus(status string) {
	m.statusBar.Update(status, len(m.listing.Names))
	m.transient = status != ""
}

// Focus moves the cursor to the row labelled name. Unknown names leave the
// cursor where it is.
func (m *ProfilesModel) Focus(name string) {
	for i, e := range m.listing.Entries {
		if e.Label == name && e.Selectable() {
			m.cursor = i
			m.syncKeys()
			return
		}
	}
}

// Current returns the label under the cursor, or "" when nothing selectable
// is shown.
func (m ProfilesModel) Current() string {
	if m.cursor < 0 || m.cursor >= len(m.listing.Entries) {
		return ""
	}
	e := m.listing.Entries[m.cursor]
	if !e.Selectable() {
		return ""
	}
	return e.Label
}

func (m ProfilesModel) Init() tea.Cmd {
	if !m.transient {
		return nil
	}
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

func (m ProfilesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case clearStatusMsg:
		m.statusBar.Clear()
		m.transient = false
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.statusBar.SetWidth(m.innerWidth())
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.Quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Up):
			m.move(-1)

		case key.Matches(msg, m.keys.Down):
			m.move(1)

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll

		case key.Matches(msg, m.keys.Enter):
			if profiles.IsReal(m.Current()) {
				return m.choose(actions.Load)
			}
			if m.Current() == profiles.NewProfileLabel {
				return m.choose(actions.Save)
			}

		case key.Matches(msg, m.keys.Save):
			return m.choose(actions.Save)
		case key.Matches(msg, m.keys.Import):
			return m.choose(actions.Import)
		case key.Matches(msg, m.keys.Export):
			return m.choose(actions.Export)
		case key.Matches(msg, m.keys.Load):
			return m.choose(actions.Load)
		case key.Matches(msg, m.keys.Delete):
			return m.choose(actions.Delete)
		case key.Matches(msg, m.keys.Rename):
			return m.choose(actions.Rename)
		case key.Matches(msg, m.keys.OpenFolder):
			return m.choose(actions.OpenFolder)
		case key.Matches(msg, m.keys.Refresh):
			return m.choose(actions.Refresh)
		}
	}

	return m, nil
}

func (m ProfilesModel) choose(id actions.ID) (tea.Model, tea.Cmd) {
	m.Selected = Selection{Action: id, Profile: m.Current()}
	return m, tea.Quit
}

// move steps the cursor by delta, skipping rows that cannot hold it. The
// cursor stays put when there is nothing selectable in that direction.
func (m *ProfilesModel) move(delta int) {
	for i := m.cursor + delta; i >= 0 && i < len(m.listing.Entries); i += delta {
		if m.listing.Entries[i].Selectable() {
			m.cursor = i
			break
		}
	}
	m.syncKeys()
}

func (m *ProfilesModel) syncKeys() {
	m.keys.setProfileActions(profiles.IsReal(m.Current()))
}

func (m ProfilesModel) innerWidth() int {
	if m.width <= 0 {
		return 0
	}
	// frame padding
	return min(m.width-2, 60) - 4
}

func (m ProfilesModel) View() string {
	if m.Quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(TitleStyle.Render("konsave-menu"))
	if m.Version != "" {
		b.WriteString(" " + SubtleStyle.Render(m.Version))
	}
	b.WriteString("\n\n")

	for i, e := range m.listing.Entries {
		cursor := "  "
		style := ProfileRowStyle
		switch e.Kind {
		case profiles.KindNew:
			style = NewRowStyle
		case profiles.KindPlaceholder:
			style = PlaceholderStyle
		}
		if i == m.cursor && e.Selectable() {
			cursor = "> "
			style = CursorRowStyle
		}
		b.WriteString(cursor + style.Render(e.Label) + "\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.View())
	b.WriteString("\n\n")
	b.WriteString(m.help.View(m.keys))

	content := b.String()
	if m.width > 0 {
		content = FrameStyle.Width(min(m.width-2, 60)).Render(content)
	}
	return content
}
