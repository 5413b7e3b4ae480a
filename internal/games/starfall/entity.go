// Package starfall implements the arcade shooter simulation: a ship dodges and
// shoots falling squares while a ledger tracks score and the all-time best.
//
// The package is pure logic. Frontends call Session.Step once per frame with
// the elapsed time and the current play-area size, then draw from Snapshot.
package starfall

import (
	"fmt"

	"github.com/vovakirdan/starfall/internal/core"
)

// Entity is the shared shape of the player, projectiles and enemies.
// Direction of travel is fixed by role: projectiles rise, enemies fall,
// the player follows input.
type Entity struct {
	X, Y     float32 // Center in world units
	Size     float32 // Side of the square hitbox
	Speed    float32 // World units per second
	Collided bool    // Set once, on the frame a terminating hit is found
}

// newEntity builds a live entity. Non-positive sizes and NaN coordinates are
// programmer errors and panic.
func newEntity(x, y, size, speed float32) Entity {
	if !(size > 0) {
		panic(fmt.Sprintf("starfall: entity size must be positive, got %v", size))
	}
	if core.IsNaN32(x) || core.IsNaN32(y) || core.IsNaN32(speed) {
		panic(fmt.Sprintf("starfall: entity at (%v, %v) speed %v has NaN fields", x, y, speed))
	}
	return Entity{X: x, Y: y, Size: size, Speed: speed}
}

// Box returns the entity's hitbox.
func (e Entity) Box() core.Box {
	return core.CenteredSquare(e.X, e.Y, e.Size)
}

// Overlaps reports whether two entities' hitboxes intersect.
func (e Entity) Overlaps(other Entity) bool {
	return e.Box().Overlaps(other.Box())
}
