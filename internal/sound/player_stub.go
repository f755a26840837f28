//go:build !ebiten

package sound

import (
	"github.com/pkg/errors"

	"pixel-wall/internal/wall"
)

// Player is a silent placeholder for headless builds.
type Player struct{}

// NewPlayer returns a silent player.
func NewPlayer(float64) *Player { return &Player{} }

// Initialize reports that audio needs the ebiten build tag.
func (p *Player) Initialize() error {
	return errors.New("sound.Player requires building with the 'ebiten' tag")
}

// Toggled is a no-op in headless builds.
func (p *Player) Toggled(wall.Cell, wall.State) {}

// Close is a no-op in headless builds.
func (p *Player) Close() {}
