package starfall

import "github.com/vovakirdan/starfall/internal/core"

// movePlayer applies held directions for dt seconds, then clamps the player
// inside the play area using its own half-size as the margin. Clamping runs
// every frame so a shrinking window pulls the ship back in.
func movePlayer(p *Entity, in core.InputFrame, dt, width, height float32) {
	step := p.Speed * dt

	if in.IsHeld(core.ActionRight) {
		p.X += step
	}
	if in.IsHeld(core.ActionLeft) {
		p.X -= step
	}
	if in.IsHeld(core.ActionDown) {
		p.Y += step
	}
	if in.IsHeld(core.ActionUp) {
		p.Y -= step
	}

	half := p.Size / 2
	p.X = core.Clamp32(p.X, half, width-half)
	p.Y = core.Clamp32(p.Y, half, height-half)
}

// rise moves projectiles up the screen.
func rise(list []Entity, dt float32) {
	for i := range list {
		list[i].Y -= list[i].Speed * dt
	}
}

// fall moves enemies down the screen.
func fall(list []Entity, dt float32) {
	for i := range list {
		list[i].Y += list[i].Speed * dt
	}
}
