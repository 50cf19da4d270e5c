package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/julianstephens/smokefree/internal/constants"
	"github.com/julianstephens/smokefree/internal/coping"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/utils"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.copingList.SetSize(msg.Width-4, msg.Height-8)
		m.viewport.Width, m.viewport.Height = msg.Width-4, msg.Height-8
		return m, nil

	case tickMsg:
		if m.svc.SetupComplete() {
			unlocked, err := m.svc.Evaluate()
			if err != nil {
				m.setError(err)
			} else if len(unlocked) > 0 {
				m.status = unlockedStatus(unlocked)
			}
			m.refresh()
		}
		return m, tick()
	}

	if m.form != nil {
		return m.updateForm(msg)
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.tab == TabCoping && m.session == nil {
			var cmd tea.Cmd
			m.copingList, cmd = m.copingList.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(keyMsg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(keyMsg, m.keys.Tab):
		m.switchTab(1)
		return m, nil
	case key.Matches(keyMsg, m.keys.ShiftTab):
		m.switchTab(-1)
		return m, nil
	case key.Matches(keyMsg, m.keys.Slip):
		return m, m.startSlipUp()
	case key.Matches(keyMsg, m.keys.Conquer):
		m.conquer()
		return m, nil
	case key.Matches(keyMsg, m.keys.Why):
		m.showWhy = !m.showWhy
		return m, nil
	case key.Matches(keyMsg, m.keys.Theme):
		m.toggleTheme()
		return m, nil
	case key.Matches(keyMsg, m.keys.Edit):
		return m, m.startProfileEdit()
	}

	switch m.tab {
	case TabCalendar:
		m.updateCalendar(keyMsg)
	case TabCoping:
		return m.updateCoping(keyMsg)
	case TabStats, TabHealth:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(keyMsg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) switchTab(delta int) {
	n := len(tabNames)
	m.tab = Tab((int(m.tab) + delta + n) % n)
	m.session = nil
	m.viewport.GotoTop()
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && keyMsg.Type == tea.KeyEsc {
		if m.formKind == formOnboarding {
			m.quitting = true
			return m, tea.Quit
		}
		m.closeForm()
		m.status = "Cancelled."
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		m.applyForm()
		m.closeForm()
		m.refresh()
		return m, nil
	case huh.StateAborted:
		if m.formKind == formOnboarding {
			m.quitting = true
			return m, tea.Quit
		}
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) applyForm() {
	m.err = nil
	switch m.formKind {
	case formOnboarding, formProfile:
		p, err := m.profileValues.ToProfile()
		if err != nil {
			m.setError(err)
			return
		}
		var unlocked []models.Achievement
		if m.formKind == formOnboarding {
			unlocked, err = m.svc.Onboard(p)
		} else {
			unlocked, err = m.svc.UpdateProfile(p)
		}
		if err != nil {
			m.setError(err)
			return
		}
		m.status = "Profile saved."
		if len(unlocked) > 0 {
			m.status = unlockedStatus(unlocked)
		}

	case formSlipUp:
		_, unlocked, err := m.svc.LogSlipUp(m.slipValues.Location, m.slipValues.Strength)
		if err != nil {
			m.setError(err)
			return
		}
		m.status = constants.SlipUpMessage
		if len(unlocked) > 0 {
			m.status += " " + unlockedStatus(unlocked)
		}
	}
}

func (m *Model) conquer() {
	m.err = nil
	_, unlocked, err := m.svc.ConquerCraving()
	if err != nil {
		m.setError(err)
		return
	}
	m.status = fmt.Sprintf("💪 Craving conquered! +%d points", constants.ConquestPoints)
	if len(unlocked) > 0 {
		m.status += " " + unlockedStatus(unlocked)
	}
	m.refresh()
}

func (m *Model) toggleTheme() {
	dark := !m.svc.State().DarkMode
	if err := m.svc.SetDarkMode(dark); err != nil {
		m.setError(err)
		return
	}
	m.styles = NewStyles(dark)
	m.views.DarkMode = dark
}

func (m *Model) updateCalendar(msg tea.KeyMsg) {
	switch {
	case key.Matches(msg, m.keys.Left):
		m.calYear, m.calMonth = utils.ShiftMonth(m.calYear, m.calMonth, -1)
	case key.Matches(msg, m.keys.Right):
		m.calYear, m.calMonth = utils.ShiftMonth(m.calYear, m.calMonth, 1)
	}
}

func (m Model) updateCoping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.session != nil {
		switch {
		case key.Matches(msg, m.keys.Back):
			m.session = nil
		case key.Matches(msg, m.keys.Left):
			m.session.Prev()
		case key.Matches(msg, m.keys.Right), key.Matches(msg, m.keys.Enter):
			if !m.session.Next() && key.Matches(msg, m.keys.Enter) {
				m.status = fmt.Sprintf("Finished %s. Well done.", m.session.Technique.Title)
				m.session = nil
			}
		}
		return m, nil
	}

	if key.Matches(msg, m.keys.Enter) {
		if item, ok := m.copingList.SelectedItem().(techniqueItem); ok {
			m.session = coping.NewSession(item.Technique)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.copingList, cmd = m.copingList.Update(msg)
	return m, cmd
}

func unlockedStatus(unlocked []models.Achievement) string {
	names := make([]string, 0, len(unlocked))
	for _, a := range unlocked {
		names = append(names, a.Icon+" "+a.Name)
	}
	return "Achievement unlocked: " + strings.Join(names, ", ")
}
