package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/smokefree/internal/engine"
	"github.com/julianstephens/smokefree/internal/models"
	"github.com/julianstephens/smokefree/internal/utils"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.form != nil {
		title := "Log a slip-up"
		switch m.formKind {
		case formOnboarding:
			title = "Welcome to smokefree"
		case formProfile:
			title = "Edit profile"
		}
		return m.styles.Doc.Render(m.styles.Title.Render(title) + "\n\n" + m.form.View())
	}

	var b strings.Builder
	b.WriteString(m.renderTabs())
	b.WriteString("\n\n")

	if m.showWhy && m.views.Profile.MyWhy != "" {
		b.WriteString(m.styles.Box.Render(m.styles.Title.Render("❤️  My why") + "\n" + m.views.Profile.MyWhy))
		b.WriteString("\n\n")
	}

	switch m.tab {
	case TabDashboard:
		b.WriteString(m.renderDashboard())
	case TabCalendar:
		b.WriteString(m.renderCalendar())
	case TabStats:
		b.WriteString(m.scrolled(m.renderStats()))
	case TabHealth:
		b.WriteString(m.scrolled(m.renderHealth()))
	case TabBadges:
		b.WriteString(m.renderBadges())
	case TabCoping:
		b.WriteString(m.renderCoping())
	}

	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(m.styles.Danger.Render("Error: "+m.err.Error()) + "\n")
	} else if m.status != "" {
		b.WriteString(m.styles.Warning.Render(m.status) + "\n")
	}
	b.WriteString(m.help.View(m))

	return m.styles.Doc.Render(b.String())
}

// scrolled puts long content in the viewport once the window size is known.
func (m Model) scrolled(content string) string {
	if m.viewport.Height <= 0 {
		return content
	}
	vp := m.viewport
	vp.SetContent(content)
	return vp.View()
}

func (m Model) renderTabs() string {
	tabs := make([]string, 0, len(tabNames))
	for i, name := range tabNames {
		if Tab(i) == m.tab {
			tabs = append(tabs, m.styles.ActiveTab.Render(name))
		} else {
			tabs = append(tabs, m.styles.InactiveTab.Render(name))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) row(label, value string) string {
	return m.styles.Label.Render(label) + m.styles.Value.Render(value) + "\n"
}

func (m Model) renderDashboard() string {
	d := m.views.Dashboard
	currency := m.display.Currency

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("🚭 Smoke-free for %s days", utils.FormatCount(d.DaysSinceQuit))))
	b.WriteString("\n\n")
	b.WriteString(m.row("Current streak", utils.FormatStreak(d.StreakHours)))

	level := string(d.Level)
	if next := engine.NextLevel(d.Level); next != "" {
		level = fmt.Sprintf("%s  %s %s to %s", d.Level, progressBar(d.LevelProgress, 20), utils.FormatPercent(d.LevelProgress), next)
	}
	b.WriteString(m.row("Level", level))
	b.WriteString(m.row("Cigarettes avoided", utils.FormatCount(d.CigarettesAvoided)))
	b.WriteString(m.row("Money saved", utils.FormatMoney(currency, d.MoneySaved)))
	b.WriteString(m.row("Quit points", fmt.Sprintf("%s (%s conquered)", utils.FormatCount(d.QuitPoints), utils.FormatCount(d.ConquestCount))))
	b.WriteString(m.row("Slip-ups", utils.FormatCount(d.SlipUpCount)))
	if d.SlipUpCount > 0 {
		b.WriteString(m.row("Last slip-up", utils.FormatSince(d.LastSlipUp, m.views.Now)))
	}

	if next, ok := engine.NextMilestone(m.views.Elapsed.ExactHoursSinceLastSlipUp); ok {
		b.WriteString("\n")
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("Next: %s, %s", next.Label, next.Description)))
		b.WriteString("\n")
		b.WriteString(progressBar(next.Progress, 30) + " " + utils.FormatPercent(next.Progress))
	}
	return b.String()
}

func (m Model) renderCalendar() string {
	cal, err := m.svc.Calendar(m.calYear, m.calMonth)
	if err != nil {
		return m.styles.Danger.Render(err.Error())
	}

	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("%s %d", cal.Month, cal.Year)))
	b.WriteString("\n")
	for _, wd := range []string{"Su", "Mo", "Tu", "We", "Th", "Fr", "Sa"} {
		b.WriteString(m.styles.Neutral.Render(wd))
	}
	b.WriteString("\n")

	col := 0
	for i := 0; i < cal.LeadingBlanks; i++ {
		b.WriteString(m.styles.Neutral.Render(""))
		col++
	}
	for _, d := range cal.Days {
		b.WriteString(m.dayCell(d))
		col++
		if col == 7 {
			b.WriteString("\n")
			col = 0
		}
	}
	if col != 0 {
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.styles.Success.Render("■ clean") + "  " + m.styles.Danger.Render("■ slip-up") + "  " + m.styles.Muted.Render("■ not tracked"))
	b.WriteString("\n\n")
	b.WriteString(m.row("Days tracked", fmt.Sprint(cal.DaysTracked)))
	b.WriteString(m.row("Clean days", fmt.Sprint(cal.CleanDays)))
	b.WriteString(m.row("Days with slip-ups", fmt.Sprint(cal.LapsedDays)))
	b.WriteString(m.row("Success rate", utils.FormatPercent(cal.SuccessRate)))
	return b.String()
}

func (m Model) dayCell(d engine.CalendarDay) string {
	style := m.styles.Neutral
	switch {
	case d.IsFuture || !d.IsAfterQuit:
	case d.Category == engine.DayLapsed:
		style = m.styles.Lapsed
	case d.Category == engine.DayClean:
		style = m.styles.Clean
	}
	if d.IsToday {
		style = style.Inherit(m.styles.Today)
	}
	return style.Render(fmt.Sprint(d.Date.Day()))
}

func (m Model) renderStats() string {
	st := m.views.Statistics
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("📊 Last 30 days"))
	b.WriteString("\n\n")
	b.WriteString(m.row("Average slip-ups/day", fmt.Sprintf("%.2f", st.AverageDailySlipUps)))
	b.WriteString(m.row("Reduction", utils.FormatPercent(st.ReductionRate)))
	b.WriteString(m.row("Cravings conquered", utils.FormatCount(st.TotalConquests)))
	b.WriteString("\n")

	maxCount := 1
	for _, d := range st.Daily {
		maxCount = max(maxCount, d.SlipUps, d.Conquests)
	}
	for _, d := range st.Daily {
		fmt.Fprintf(&b, "%s %s %s\n",
			m.styles.Muted.Render(d.Date.Format("Jan 02")),
			m.styles.Danger.Render(strings.Repeat("▇", d.SlipUps*10/maxCount)),
			m.styles.Success.Render(strings.Repeat("▇", d.Conquests*10/maxCount)))
	}

	if len(st.Locations) > 0 {
		b.WriteString("\n" + m.styles.Title.Render("Where slip-ups happen") + "\n")
		for _, l := range st.Locations {
			b.WriteString(m.row(l.Location, fmt.Sprint(l.Count)))
		}
	}
	if st.TotalSlipUps > 0 {
		b.WriteString("\n" + m.styles.Title.Render("Craving strength") + "\n")
		for _, s := range st.CravingStrengths {
			b.WriteString(m.row(fmt.Sprintf("Strength %d", s.Strength), fmt.Sprint(s.Count)))
		}
	}
	return b.String()
}

func (m Model) renderHealth() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("🫁 Health recovery"))
	b.WriteString("\n\n")
	for _, ms := range m.views.Milestones {
		switch ms.State {
		case engine.MilestoneCompleted:
			b.WriteString(m.styles.Success.Render("✓ "+ms.Label) + "  " + ms.Description + "\n")
		case engine.MilestoneNext:
			b.WriteString(m.styles.Value.Render("→ "+ms.Label) + "  " + ms.Description + "\n")
			b.WriteString("    " + progressBar(ms.Progress, 30) + " " + utils.FormatPercent(ms.Progress) + "\n")
		default:
			b.WriteString(m.styles.Muted.Render("· "+ms.Label+"  "+ms.Description) + "\n")
		}
	}
	return b.String()
}

func (m Model) renderBadges() string {
	achievements := m.views.Achievements
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(fmt.Sprintf("🏅 %d/%d unlocked (%s)",
		models.UnlockedCount(achievements), len(achievements), utils.FormatPercent(engine.CompletionPercent(achievements)))))
	b.WriteString("\n\n")
	for _, a := range achievements {
		if a.Unlocked {
			b.WriteString(fmt.Sprintf("%s %s  %s\n", a.Icon, m.styles.Value.Render(a.Name), m.styles.Muted.Render(a.Description)))
			continue
		}
		b.WriteString(m.styles.Muted.Render(fmt.Sprintf("🔒 %s  %s", a.Name, a.Description)) + "\n")
	}
	return b.String()
}

func (m Model) renderCoping() string {
	if m.session == nil {
		return m.copingList.View()
	}
	s := m.session
	var b strings.Builder
	b.WriteString(m.styles.Title.Render(s.Technique.Title))
	b.WriteString(m.styles.Muted.Render(fmt.Sprintf("  step %d of %d", s.Step()+1, len(s.Technique.Instructions))))
	b.WriteString("\n\n")
	b.WriteString(m.styles.Box.Render(s.Current()))
	b.WriteString("\n\n")
	hint := "→ next step"
	if s.Done() {
		hint = "enter to finish"
	}
	b.WriteString(m.styles.Muted.Render(hint + " · ← previous · esc back"))
	return b.String()
}

func progressBar(percent float64, width int) string {
	filled := int(percent / 100 * float64(width))
	filled = min(max(filled, 0), width)
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
