package pet

// GetStatus returns the status emoji for the pet
func GetStatus(s Snapshot) string {
	switch {
	case !s.Alive:
		return StatusEmojiDead
	case s.Asleep:
		return StatusEmojiSleeping
	}

	switch s.Mood {
	case MoodHappy:
		return StatusEmojiHappy
	case MoodSad:
		return StatusEmojiSad
	default:
		return StatusEmojiNeutral
	}
}

// GetStatusWithLabel returns status with text labels for the UI
func GetStatusWithLabel(s Snapshot) string {
	status := GetStatus(s)

	switch status {
	case StatusEmojiDead:
		return status + " Dead"
	case StatusEmojiSleeping:
		if s.Mood == MoodSad {
			return status + " Sleeping (needs care)"
		}
		return status + " Sleeping"
	case StatusEmojiHappy:
		return status + " Happy"
	case StatusEmojiSad:
		return status + " Sad"
	default:
		return status + " Neutral"
	}
}

// Complaint returns what the pet says about its most pressing need, or ""
// when nothing is wrong.
func (p *Pet) Complaint() string {
	if !p.alive {
		return ""
	}

	h := p.health
	switch {
	case h.hunger > HighStatThreshold:
		return "I'm starving!"
	case h.hygiene < LowStatThreshold:
		return "I need a bath!"
	case h.social < LowStatThreshold:
		return "I'm feeling lonely..."
	case h.sleep < LowStatThreshold:
		return "*yawn* I'm tired..."
	default:
		return ""
	}
}
