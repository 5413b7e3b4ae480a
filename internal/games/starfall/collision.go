package starfall

import "math"

// hit is one projectile/enemy match found by resolveHits.
type hit struct {
	enemy  Entity
	points int
}

// resolveHits pairs live projectiles with live enemies whose boxes overlap.
// Both sides of a match are marked collided and skipped for the rest of the
// pass, so no entity is credited twice in one frame. A projectile over two
// overlapping enemies destroys only the first one matched.
func resolveHits(projectiles, enemies []Entity) []hit {
	var hits []hit
	for i := range enemies {
		enemy := &enemies[i]
		if enemy.Collided {
			continue
		}
		for j := range projectiles {
			shot := &projectiles[j]
			if shot.Collided || !shot.Overlaps(*enemy) {
				continue
			}
			enemy.Collided = true
			shot.Collided = true
			hits = append(hits, hit{enemy: *enemy, points: pointsFor(*enemy)})
			break
		}
	}
	return hits
}

// pointsFor is the score for destroying an enemy: its size, rounded.
func pointsFor(enemy Entity) int {
	return int(math.Round(float64(enemy.Size)))
}

// playerHit reports whether any enemy overlaps the player.
// It neither marks nor scores anything.
func playerHit(player Entity, enemies []Entity) bool {
	for _, e := range enemies {
		if player.Overlaps(e) {
			return true
		}
	}
	return false
}
