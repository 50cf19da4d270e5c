// Package tui is the interactive smokefree interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smokefree/internal/config"
	"github.com/julianstephens/smokefree/internal/coping"
	"github.com/julianstephens/smokefree/internal/logger"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/tracker"
	"github.com/julianstephens/smokefree/internal/tui/forms"
)

type Tab int

const (
	TabDashboard Tab = iota
	TabCalendar
	TabStats
	TabHealth
	TabBadges
	TabCoping
)

var tabNames = []string{"Dashboard", "Calendar", "Stats", "Health", "Badges", "Coping"}

func (t Tab) String() string { return tabNames[t] }

type formKind int

const (
	formNone formKind = iota
	formOnboarding
	formSlipUp
	formProfile
)

// refreshInterval drives time-based unlocks while the TUI stays open.
const refreshInterval = time.Minute

type tickMsg time.Time

type techniqueItem struct {
	coping.Technique
}

func (i techniqueItem) Title() string       { return i.Technique.Title }
func (i techniqueItem) Description() string { return i.Duration + " · " + i.Technique.Description }
func (i techniqueItem) FilterValue() string { return i.Technique.Title }

type Model struct {
	svc     *tracker.Service
	display config.DisplayConfig
	keys    KeyMap
	help    help.Model
	styles  Styles

	tab   Tab
	views tracker.Views

	calYear  int
	calMonth time.Month

	form          *huh.Form
	formKind      formKind
	profileValues *forms.ProfileValues
	slipValues    *forms.SlipUpValues

	copingList list.Model
	session    *coping.Session
	viewport   viewport.Model

	showWhy  bool
	status   string
	err      error
	width    int
	height   int
	quitting bool
}

func NewModel(svc *tracker.Service, display config.DisplayConfig) Model {
	techniques := coping.All()
	items := make([]list.Item, 0, len(techniques))
	for _, t := range techniques {
		items = append(items, techniqueItem{t})
	}
	copingList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	copingList.Title = "Coping techniques"
	copingList.SetShowHelp(false)
	copingList.SetFilteringEnabled(false)

	now := svc.Now()
	m := Model{
		svc:        svc,
		display:    display,
		keys:       DefaultKeyMap(),
		help:       help.New(),
		styles:     NewStyles(svc.State().DarkMode),
		calYear:    now.Year(),
		calMonth:   now.Month(),
		copingList: copingList,
		viewport:   viewport.New(0, 0),
	}

	if !svc.SetupComplete() {
		m.startOnboarding()
	} else {
		m.refresh()
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Slip, m.keys.Conquer, m.keys.Why, m.keys.Quit, m.keys.Help}
	switch m.tab {
	case TabCalendar:
		keys = append(keys, m.keys.Left, m.keys.Right)
	case TabCoping:
		keys = append(keys, m.keys.Enter)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	global := []key.Binding{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help}
	actions := []key.Binding{m.keys.Slip, m.keys.Conquer, m.keys.Why, m.keys.Theme, m.keys.Edit}
	navigation := []key.Binding{m.keys.Left, m.keys.Right, m.keys.Enter, m.keys.Back}
	return [][]key.Binding{global, actions, navigation}
}

func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{tick()}
	if m.form != nil {
		cmds = append(cmds, m.form.Init())
	}
	return tea.Batch(cmds...)
}

func tick() tea.Cmd {
	return tea.Tick(refreshInterval, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// refresh re-derives every view from the tracker against one clock reading.
func (m *Model) refresh() {
	views, err := m.svc.Snapshot()
	if err != nil {
		m.err = err
		return
	}
	m.views = views
	m.styles = NewStyles(views.DarkMode)
}

func (m *Model) startOnboarding() {
	today := m.svc.Now()
	var p models.Profile
	if st := m.svc.State(); st.Profile != nil {
		p = *st.Profile
	}
	v := forms.FromProfile(p, today)
	m.profileValues = &v
	m.form = forms.NewProfileForm(m.profileValues, today)
	m.formKind = formOnboarding
}

func (m *Model) startProfileEdit() tea.Cmd {
	p, err := m.svc.Profile()
	if err != nil {
		m.err = err
		return nil
	}
	today := m.svc.Now()
	v := forms.FromProfile(p, today)
	m.profileValues = &v
	m.form = forms.NewProfileForm(m.profileValues, today)
	m.formKind = formProfile
	return m.form.Init()
}

func (m *Model) startSlipUp() tea.Cmd {
	v := forms.DefaultSlipUpValues()
	m.slipValues = &v
	m.form = forms.NewSlipUpForm(m.slipValues)
	m.formKind = formSlipUp
	return m.form.Init()
}

func (m *Model) closeForm() {
	m.form = nil
	m.formKind = formNone
	m.profileValues = nil
	m.slipValues = nil
}

func (m *Model) setError(err error) {
	logger.Error("TUI action failed", "error", err)
	m.err = err
	m.status = ""
}
