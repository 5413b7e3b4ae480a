package starfall

// sweep removes dead entities in two passes: first those that left the play
// area, then those marked collided. Survivor order is not preserved.
func sweep(projectiles, enemies []Entity, enemyBound float32) ([]Entity, []Entity) {
	projectiles = removeWhere(projectiles, func(e *Entity) bool {
		return e.Y <= -e.Size/2
	})
	projectiles = removeWhere(projectiles, isCollided)

	enemies = removeWhere(enemies, func(e *Entity) bool {
		return e.Y >= enemyBound+e.Size
	})
	enemies = removeWhere(enemies, isCollided)

	return projectiles, enemies
}

func isCollided(e *Entity) bool {
	return e.Collided
}

// removeWhere swap-removes every entity matching dead.
func removeWhere(list []Entity, dead func(*Entity) bool) []Entity {
	for i := 0; i < len(list); {
		if dead(&list[i]) {
			last := len(list) - 1
			list[i] = list[last]
			list = list[:last]
			continue
		}
		i++
	}
	return list
}
