package system

import (
	"github.com/milk9111/towerdefense/ecs"
	"github.com/milk9111/towerdefense/ecs/event"
	"go.uber.org/zap"
)

// SoundPlayer plays a named effect at a linear volume.
type SoundPlayer interface {
	Play(name string, volume float64) error
}

// SoundSystem plays every PlaySound event delivered this frame.
type SoundSystem struct {
	player SoundPlayer
	log    *zap.Logger
}

func NewSoundSystem(player SoundPlayer, log *zap.Logger) *SoundSystem {
	return &SoundSystem{player: player, log: log}
}

func (s *SoundSystem) Update(w *ecs.World) {
	if s.player == nil {
		return
	}
	for _, evt := range ecs.Read(w, event.PlaySoundEvent) {
		if err := s.player.Play(evt.Name, evt.Volume); err != nil {
			s.log.Warn("play sound", zap.String("sound", evt.Name), zap.Error(err))
		}
	}
}
