package resource

import "github.com/milk9111/towerdefense/ecs/component"

// Session tracks one run from Start Game until the app returns to the menu.
type Session struct {
	Lives         int
	StartLives    int
	Kills         int
	Leaks         int
	SelectedTower string
	// Seeded is set once the initial towers for this session exist.
	Seeded bool
}

func NewSession(lives int) *Session {
	return &Session{Lives: lives, StartLives: lives}
}

// Reset restores a fresh session, keeping the selected tower.
func (s *Session) Reset() {
	s.Lives = s.StartLives
	s.Kills = 0
	s.Leaks = 0
	s.Seeded = false
}

var SessionResource = component.NewResource[Session]()
