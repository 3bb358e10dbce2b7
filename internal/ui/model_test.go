package ui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vpet/internal/mystery"
	"vpet/internal/pet"
)

// fixedSource always returns v modulo n.
type fixedSource int

func (s fixedSource) Intn(n int) int { return int(s) % n }

func newTestModel(opts ...pet.Option) Model {
	return NewModel(pet.New("Buddy", opts...), mystery.NewSystem(fixedSource(0)))
}

func press(t *testing.T, m Model, key string) Model {
	t.Helper()
	var msg tea.KeyMsg
	switch key {
	case "enter":
		msg = tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		msg = tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		msg = tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		msg = tea.KeyMsg{Type: tea.KeyDown}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	next, _ := m.Update(msg)
	return next.(Model)
}

func lastMessage(m Model) string {
	if len(m.Log) == 0 {
		return ""
	}
	return m.Log[len(m.Log)-1]
}

func TestActionShortcuts(t *testing.T) {
	tests := []struct {
		key     string
		message string
		check   func(t *testing.T, h pet.HealthState)
	}{
		{"f", "Fed Buddy", func(t *testing.T, h pet.HealthState) { assert.Equal(t, 40, h.Hunger()) }},
		{"p", "Played with Buddy", func(t *testing.T, h pet.HealthState) { assert.Equal(t, 60, h.Social()) }},
		{"c", "Cleaned Buddy", func(t *testing.T, h pet.HealthState) { assert.Equal(t, 60, h.Hygiene()) }},
		{"s", "Buddy is now sleeping", func(t *testing.T, h pet.HealthState) { assert.Equal(t, 60, h.Sleep()) }},
		{"t", "Time passed", func(t *testing.T, h pet.HealthState) { assert.Equal(t, 55, h.Hunger()) }},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			m := press(t, newTestModel(), tt.key)
			assert.Equal(t, tt.message, lastMessage(m))
			tt.check(t, m.Pet.Health())
		})
	}
}

func TestMenuNavigation(t *testing.T) {
	m := newTestModel()
	m = press(t, m, "up")
	assert.Equal(t, 0, m.Choice, "cursor stops at the top")

	m = press(t, m, "down")
	m = press(t, m, "down")
	assert.Equal(t, choiceClean, m.Choice)

	m = press(t, m, "enter")
	assert.Equal(t, "Cleaned Buddy", lastMessage(m))

	for i := 0; i < 10; i++ {
		m = press(t, m, "down")
	}
	assert.Equal(t, choiceQuit, m.Choice, "cursor stops at the bottom")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, next.(Model).Quitting)
	assert.NotNil(t, cmd)
}

func TestSleepingPetGuard(t *testing.T) {
	m := press(t, newTestModel(), "s")
	before := m.Pet.Snapshot()

	m = press(t, m, "f")
	assert.Equal(t, "Buddy is sleeping. Wake them up first!", lastMessage(m))
	assert.Equal(t, before, m.Pet.Snapshot())

	m = press(t, m, "m")
	assert.Nil(t, m.PendingBox, "no box is offered to a sleeping pet")

	m = press(t, m, "s")
	assert.Equal(t, "Buddy woke up", lastMessage(m))
	assert.False(t, m.Pet.Asleep())
}

func TestMysteryBoxOpen(t *testing.T) {
	m := press(t, newTestModel(), "m")
	require.NotNil(t, m.PendingBox)
	assert.Equal(t, "Common Mystery Box", m.PendingBox.Name())

	m = press(t, m, "f")
	assert.NotNil(t, m.PendingBox, "other keys wait for an answer")
	assert.Equal(t, 50, m.Pet.Health().Hunger())

	m = press(t, m, "y")
	assert.Nil(t, m.PendingBox)
	assert.Equal(t, "Found a small snack! (-5 hunger)", lastMessage(m))
	assert.Equal(t, 45, m.Pet.Health().Hunger())
}

func TestMysteryBoxOpenRecomputesMood(t *testing.T) {
	// Snack takes hunger from 72 to 67, out of the sad band.
	m := newTestModel(pet.WithHealth(pet.NewHealthState(72, 50, 50, 50)))
	m.Pet.SetMood(pet.MoodSad)

	m = press(t, m, "m")
	m = press(t, m, "y")

	assert.Equal(t, pet.MoodNeutral, m.Pet.Mood())
}

func TestTimeStandsStillDuringBoxOffer(t *testing.T) {
	m := NewModel(pet.New("Buddy", pet.WithHealth(pet.NewHealthState(95, 5, 5, 5))),
		mystery.NewSystem(fixedSource(0)), WithStepInterval(time.Second))
	m = press(t, m, "m")
	require.NotNil(t, m.PendingBox)

	next, cmd := m.Update(tickMsg(time.Now()))
	m = next.(Model)
	assert.True(t, m.Pet.Alive())
	assert.Equal(t, 95, m.Pet.Health().Hunger())
	assert.NotNil(t, m.PendingBox)
	assert.NotNil(t, cmd, "ticks keep coming")

	m = press(t, m, "y")
	assert.Equal(t, 90, m.Pet.Health().Hunger())
}

func TestPendingBoxIsDroppedWhenPetDies(t *testing.T) {
	m := newTestModel(pet.WithHealth(pet.NewHealthState(95, 5, 5, 5)))
	m = press(t, m, "m")
	require.NotNil(t, m.PendingBox)

	m.Pet.Step()
	require.False(t, m.Pet.Alive())
	dead := m.Pet.Snapshot()

	m = press(t, m, "y")
	assert.Nil(t, m.PendingBox)
	assert.Equal(t, dead, m.Pet.Snapshot(), "a dead pet never opens a box")
	assert.NotContains(t, m.Log, "Found a small snack! (-5 hunger)")
}

func TestMysteryBoxDecline(t *testing.T) {
	m := press(t, newTestModel(), "m")
	m = press(t, m, "n")

	assert.Nil(t, m.PendingBox)
	assert.Equal(t, "You decided not to open the mystery box.", lastMessage(m))
	assert.Equal(t, 50, m.Pet.Health().Hunger())
}

func TestDebugMoodKeys(t *testing.T) {
	m := press(t, newTestModel(), "1")
	assert.Equal(t, pet.MoodHappy, m.Pet.Mood())

	m = press(t, m, "3")
	assert.Equal(t, pet.MoodSad, m.Pet.Mood())

	m = press(t, m, "2")
	assert.Equal(t, pet.MoodNeutral, m.Pet.Mood())
	assert.Equal(t, "Mood set to NEUTRAL", lastMessage(m))
}

func TestDeathIsReportedOnce(t *testing.T) {
	m := newTestModel(pet.WithHealth(pet.NewHealthState(95, 5, 5, 5)))

	m = press(t, m, "t")
	require.False(t, m.Pet.Alive())
	assert.Equal(t, "Buddy has passed away due to neglect", lastMessage(m))
	logged := len(m.Log)

	m = press(t, m, "t")
	m = press(t, m, "f")
	assert.Len(t, m.Log, logged, "a dead pet ignores further input")
	assert.Contains(t, m.View(), "has passed away due to neglect")
}

func TestLogIsBounded(t *testing.T) {
	m := newTestModel()
	for i := 0; i < MaxLogEntries+5; i++ {
		m = press(t, m, "c")
	}
	assert.Len(t, m.Log, MaxLogEntries)
}

func TestTickStepsPet(t *testing.T) {
	m := NewModel(pet.New(""), mystery.NewSystem(fixedSource(0)), WithStepInterval(time.Second))
	require.NotNil(t, m.Init())

	next, cmd := m.Update(tickMsg(time.Now()))
	assert.Equal(t, 55, next.(Model).Pet.Health().Hunger())
	assert.NotNil(t, cmd, "ticks keep coming")
}

func TestManualSteppingHasNoTick(t *testing.T) {
	m := newTestModel()
	assert.Nil(t, m.Init())
}

func TestView(t *testing.T) {
	m := newTestModel(pet.WithHealth(pet.NewHealthState(80, 50, 50, 50)))
	view := m.View()

	assert.Contains(t, view, "Buddy")
	assert.Contains(t, view, "Hunger:")
	assert.Contains(t, view, "I'm starving!")
	assert.Contains(t, view, "Mystery Box")

	m = press(t, m, "m")
	assert.Contains(t, m.View(), "Do you want to open it?")

	m.Quitting = true
	assert.Equal(t, "Thanks for playing!\n", m.View())
}

func TestMakeBar(t *testing.T) {
	assert.Equal(t, "░░░░░", makeBar(0))
	assert.Equal(t, "██░░░", makeBar(50))
	assert.Equal(t, "█████", makeBar(100))
	assert.Equal(t, 5, len([]rune(makeBar(73))))
}

func TestHealthLine(t *testing.T) {
	line := HealthLine(pet.NewHealthState(1, 2, 3, 4))
	assert.True(t, strings.HasPrefix(line, "Hunger: 1"))
	assert.Contains(t, line, "Sleep: 4")
}
