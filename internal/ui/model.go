package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"vpet/internal/mystery"
	"vpet/internal/pet"
)

// MaxLogEntries is how many activity messages the view keeps.
const MaxLogEntries = 8

// Menu entries in display order.
const (
	choiceFeed = iota
	choicePlay
	choiceClean
	choiceSleep
	choiceStep
	choiceBox
	choiceQuit
)

var menuOptions = []string{"Feed", "Play", "Clean", "Sleep", "Step", "Mystery Box", "Quit"}

// Model represents the game state
type Model struct {
	Pet        *pet.Pet
	Boxes      *mystery.System
	Choice     int
	Quitting   bool
	PendingBox *mystery.Box
	Log        []string

	deathReported bool
	stepInterval  time.Duration
	logger        *zap.Logger
}

// Option configures a Model.
type Option func(*Model)

// WithStepInterval makes time pass on its own every d. Zero disables it.
func WithStepInterval(d time.Duration) Option {
	return func(m *Model) { m.stepInterval = d }
}

// WithLogger sets the logger for user-level events.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

type tickMsg time.Time

// NewModel creates a new game model around p
func NewModel(p *pet.Pet, boxes *mystery.System, opts ...Option) Model {
	m := Model{
		Pet:    p,
		Boxes:  boxes,
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	if m.stepInterval <= 0 {
		return nil
	}
	return tea.Tick(m.stepInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		// A box offer blocks everything but an answer
		if m.PendingBox != nil {
			switch msg.String() {
			case "ctrl+c", "q":
				m.Quitting = true
				return m, tea.Quit
			case "y", "enter":
				m.openBox()
			case "n", "esc":
				m.declineBox()
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			m.Quitting = true
			return m, tea.Quit
		case "up", "k":
			if m.Choice > 0 {
				m.Choice--
			}
		case "down", "j":
			if m.Choice < len(menuOptions)-1 {
				m.Choice++
			}
		case "enter", " ":
			if m.Choice == choiceQuit {
				m.Quitting = true
				return m, tea.Quit
			}
			m.choose(m.Choice)
		case "f":
			m.choose(choiceFeed)
		case "p":
			m.choose(choicePlay)
		case "c":
			m.choose(choiceClean)
		case "s":
			m.choose(choiceSleep)
		case "t":
			m.choose(choiceStep)
		case "m":
			m.choose(choiceBox)
		case "1":
			m.setMood(pet.MoodHappy)
		case "2":
			m.setMood(pet.MoodNeutral)
		case "3":
			m.setMood(pet.MoodSad)
		}

	case tickMsg:
		// Time stands still while a box offer waits for an answer
		if m.Pet.Alive() && m.PendingBox == nil {
			m.step()
		}
		return m, m.tick()
	}

	return m, nil
}

func (m *Model) choose(choice int) {
	switch choice {
	case choiceFeed:
		m.act(pet.ActionFeed)
	case choicePlay:
		m.act(pet.ActionPlay)
	case choiceClean:
		m.act(pet.ActionClean)
	case choiceSleep:
		m.act(pet.ActionSleep)
	case choiceStep:
		m.step()
	case choiceBox:
		m.offerBox()
	}
}

func (m *Model) addMessage(msg string) {
	m.Log = append(m.Log, msg)
	if len(m.Log) > MaxLogEntries {
		m.Log = m.Log[len(m.Log)-MaxLogEntries:]
	}
}

func (m *Model) sleepingMessage() string {
	return m.Pet.Name() + " is sleeping. Wake them up first!"
}

func (m *Model) act(a pet.Action) {
	if !m.Pet.Alive() {
		return
	}
	name := m.Pet.Name()
	if m.Pet.Asleep() && a != pet.ActionSleep {
		m.addMessage(m.sleepingMessage())
		return
	}

	m.Pet.Interact(a)

	switch a {
	case pet.ActionFeed:
		m.addMessage("Fed " + name)
	case pet.ActionPlay:
		m.addMessage("Played with " + name)
	case pet.ActionClean:
		m.addMessage("Cleaned " + name)
	case pet.ActionSleep:
		if m.Pet.Asleep() {
			m.addMessage(name + " is now sleeping")
		} else {
			m.addMessage(name + " woke up")
		}
	}
	m.checkPetStatus()
}

func (m *Model) step() {
	if !m.Pet.Alive() {
		return
	}
	m.Pet.Step()
	m.addMessage("Time passed")
	m.checkPetStatus()
}

func (m *Model) offerBox() {
	if !m.Pet.Alive() {
		return
	}
	if m.Pet.Asleep() {
		m.addMessage(m.sleepingMessage())
		return
	}
	m.PendingBox = m.Boxes.GenerateRandomBox()
}

func (m *Model) openBox() {
	box := m.PendingBox
	m.PendingBox = nil
	if !m.Pet.Alive() {
		return
	}

	result := box.Open(m.Pet)
	m.Pet.RecomputeMood()
	m.logger.Info("opened mystery box",
		zap.String("pet", m.Pet.Name()),
		zap.Stringer("tier", box.Tier()),
		zap.String("result", result),
	)
	m.addMessage(result)
	m.checkPetStatus()
}

func (m *Model) declineBox() {
	m.PendingBox = nil
	m.addMessage("You decided not to open the mystery box.")
}

func (m *Model) setMood(mood pet.Mood) {
	if !m.Pet.Alive() {
		return
	}
	m.Pet.SetMood(mood)
	m.addMessage("Mood set to " + mood.String())
}

func (m *Model) checkPetStatus() {
	if m.Pet.Alive() || m.deathReported {
		return
	}
	m.deathReported = true
	m.PendingBox = nil
	m.addMessage(m.Pet.Name() + " has passed away due to neglect")
	m.logger.Info("game over", zap.String("pet", m.Pet.Name()))
}
