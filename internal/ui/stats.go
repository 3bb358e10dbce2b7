package ui

import (
	"fmt"
	"strings"

	"vpet/internal/pet"
)

// makeBar draws value in [0, 100] as five cells
func makeBar(value int) string {
	filled := value / 20
	var bar strings.Builder
	for i := 0; i < 5; i++ {
		if i < filled {
			bar.WriteString("█")
		} else {
			bar.WriteString("░")
		}
	}
	return bar.String()
}

func (m Model) renderStats() string {
	snap := m.Pet.Snapshot()
	h := snap.Health

	awake := "Awake"
	if snap.Asleep {
		awake = "Asleep"
	}

	stats := []struct {
		name, value string
	}{
		{"Mood", snap.Mood.String()},
		{"Hunger", fmt.Sprintf("[%s] %3d%%", makeBar(h.Hunger()), h.Hunger())},
		{"Hygiene", fmt.Sprintf("[%s] %3d%%", makeBar(h.Hygiene()), h.Hygiene())},
		{"Social", fmt.Sprintf("[%s] %3d%%", makeBar(h.Social()), h.Social())},
		{"Sleep", fmt.Sprintf("[%s] %3d%%", makeBar(h.Sleep()), h.Sleep())},
		{"State", awake},
		{"Neglect", fmt.Sprintf("%d steps", snap.StepsSinceInteraction)},
	}

	var lines []string
	for _, stat := range stats {
		lines = append(lines, fmt.Sprintf("%-10s %s", stat.name+":", stat.value))
	}

	return gameStyles.stats.Render(strings.Join(lines, "\n"))
}

// HealthLine is the one-line health summary shown outside the full view.
func HealthLine(h pet.HealthState) string {
	return fmt.Sprintf("Hunger: %d, Hygiene: %d, Social: %d, Sleep: %d",
		h.Hunger(), h.Hygiene(), h.Social(), h.Sleep())
}
