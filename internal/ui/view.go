package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"vpet/internal/pet"
)

var gameStyles = struct {
	title   lipgloss.Style
	status  lipgloss.Style
	menu    lipgloss.Style
	menuBox lipgloss.Style
	stats   lipgloss.Style
	bubble  lipgloss.Style
	dialog  lipgloss.Style
	log     lipgloss.Style
}{
	title: lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FF75B5")).
		Padding(0, 1),

	status: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	stats: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")).
		Width(40),

	menu: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FF75B5")),

	menuBox: lipgloss.NewStyle().
		Padding(0, 2),

	bubble: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FFD700")).
		Padding(0, 1),

	dialog: lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(lipgloss.Color("#FFD700")).
		Padding(0, 2).
		Width(44),

	log: lipgloss.NewStyle().
		Foreground(lipgloss.Color("#AAAAAA")),
}

// View implements tea.Model
func (m Model) View() string {
	if m.Quitting {
		return "Thanks for playing!\n"
	}
	if !m.Pet.Alive() {
		return m.deadView()
	}

	snap := m.Pet.Snapshot()
	title := gameStyles.title.Render(pet.GetStatus(snap) + " " + snap.Name + " " + pet.GetStatus(snap))

	sections := []string{
		title,
		"",
		m.renderStats(),
		"",
		m.renderStatus(),
	}

	if complaint := m.Pet.Complaint(); complaint != "" && !snap.Asleep {
		sections = append(sections, "", gameStyles.bubble.Render(complaint))
	}

	if m.PendingBox != nil {
		sections = append(sections, "", m.renderBoxDialog())
	} else {
		sections = append(sections, "", m.renderMenu())
	}

	if len(m.Log) > 0 {
		sections = append(sections, "", m.renderLog())
	}

	helpText := "Use arrows to move • enter to select • f/p/c/s/t/m shortcuts • 1-3 set mood • q to quit"
	if m.PendingBox != nil {
		helpText = "y to open • n to leave it • q to quit"
	}
	sections = append(sections, "", gameStyles.status.Render(helpText))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderStatus() string {
	return gameStyles.status.Render(fmt.Sprintf("Status: %s", pet.GetStatusWithLabel(m.Pet.Snapshot())))
}

func (m Model) renderMenu() string {
	var menuItems []string

	for i, choice := range menuOptions {
		cursor := " "
		if m.Choice == i {
			cursor = ">"
		}
		menuItems = append(menuItems, gameStyles.menu.Render(fmt.Sprintf("%s %s", cursor, choice)))
	}

	return gameStyles.menuBox.Render(strings.Join(menuItems, "\n"))
}

func (m Model) renderBoxDialog() string {
	box := m.PendingBox
	return gameStyles.dialog.Render(lipgloss.JoinVertical(lipgloss.Left,
		gameStyles.title.Render("🎁 Mystery Box Found"),
		"",
		box.Name(),
		box.Description(),
		"",
		"Do you want to open it?",
	))
}

func (m Model) renderLog() string {
	return gameStyles.log.Render(strings.Join(m.Log, "\n"))
}

func (m Model) deadView() string {
	sections := []string{
		gameStyles.title.Render(pet.StatusEmojiDead + " " + m.Pet.Name() + " " + pet.StatusEmojiDead),
		"",
		gameStyles.status.Render(m.Pet.Name() + " has passed away due to neglect"),
		gameStyles.status.Render("It will be remembered forever."),
	}
	if len(m.Log) > 0 {
		sections = append(sections, "", m.renderLog())
	}
	sections = append(sections, "", gameStyles.status.Render("Press q to exit"))
	return lipgloss.JoinVertical(lipgloss.Center, sections...)
}
