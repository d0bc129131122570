package ecs

import "github.com/younwookim/platformer/internal/domain/collision"

// UpdateVelocities integrates acceleration into velocity: v += a*dt
func UpdateVelocities(w *World, dt float64) {
	for _, id := range sortedIDs(w.Velocity) {
		acc, ok := w.Acceleration[id]
		if !ok {
			continue
		}
		vel := w.Velocity[id]
		vel.Vector = vel.Add(acc.Mult(dt))
		w.Velocity[id] = vel
	}
}

// UpdatePositions integrates velocity into position: p += v*dt.
// Must run after UpdateVelocities with the same dt (semi-implicit Euler).
func UpdatePositions(w *World, dt float64) {
	for _, id := range sortedIDs(w.Position) {
		vel, ok := w.Velocity[id]
		if !ok {
			continue
		}
		pos := w.Position[id]
		pos.Vector = pos.Add(vel.Mult(dt))
		w.Position[id] = pos
	}
}

// CheckCollisions tests every hurtbox against every hitbox and appends
// accepted collisions to the hurtbox owner's buffer. Entities are visited in
// ascending ID order, so buffer order is stable across runs.
func CheckCollisions(w *World) {
	hitIDs := sortedIDs(w.Hitbox)

	for _, hurtID := range sortedIDs(w.Hurtbox) {
		buf, ok := w.Collisions[hurtID]
		if !ok {
			continue
		}
		hurtPos, ok := w.Position[hurtID]
		if !ok {
			continue
		}
		hurt := w.Hurtbox[hurtID]

		for _, hitID := range hitIDs {
			if hitID == hurtID {
				continue
			}
			hitPos, ok := w.Position[hitID]
			if !ok {
				continue
			}

			data, ok := detect(hurt, hurtPos, w.Hitbox[hitID], hitPos)
			if !ok {
				continue
			}
			data.Other = hitID
			buf.Push(data)
		}
	}
}

// detect dispatches on the shape pair, then filters by collider roles.
func detect(hurt Hurtbox, hurtPos Position, hit Hitbox, hitPos Position) (CollisionData, bool) {
	switch hurt.Shape.Kind {
	case ShapeRect:
		switch hit.Shape.Kind {
		case ShapeRect:
			return rectHitsRect(hurt, hurtPos, hit, hitPos)
		case ShapeRay:
			// Rays only probe.
			return CollisionData{}, false
		}
	case ShapeRay:
		switch hit.Shape.Kind {
		case ShapeRect:
			return rayHitsRect(hurt, hurtPos, hit, hitPos)
		case ShapeRay:
			return CollisionData{}, false
		}
	}
	// Zero-value or unknown kinds never collide.
	return CollisionData{}, false
}

func rectHitsRect(hurt Hurtbox, hurtPos Position, hit Hitbox, hitPos Position) (CollisionData, bool) {
	if hurt.ColliderType != ColliderPlayer || hit.ColliderType != ColliderGround {
		return CollisionData{}, false
	}

	side, ok := collision.CollideBoxes(hurtPos.Vector, hurt.Shape.Vector, hitPos.Vector, hit.Shape.Vector)
	if !ok {
		return CollisionData{}, false
	}
	return CollisionData{
		Side: side,
		Type: PlayerHitsGround{GroundPos: hitPos.Vector, GroundSize: hit.Shape.Vector},
	}, true
}

func rayHitsRect(hurt Hurtbox, hurtPos Position, hit Hitbox, hitPos Position) (CollisionData, bool) {
	if hurt.ColliderType != ColliderPlayerRay || hit.ColliderType != ColliderGround {
		return CollisionData{}, false
	}

	side, ok := collision.CollideRayBox(hurtPos.Vector, hurt.Shape.Vector, hitPos.Vector, hit.Shape.Vector)
	if !ok {
		return CollisionData{}, false
	}
	return CollisionData{
		Side: side,
		Type: PlayerRayHitsGround{GroundPos: hitPos.Vector, GroundSize: hit.Shape.Vector},
	}, true
}

// HandlePlayerCollidesGround lands players whose buffer changed this tick.
// Each Top hit on a ground zeroes vertical velocity and acceleration and snaps
// the player to rest exactly on the ground's top face. Later entries win.
func HandlePlayerCollidesGround(w *World) {
	for _, id := range sortedIDs(w.IsPlayer) {
		buf, ok := w.Collisions[id]
		if !ok || !buf.Changed() {
			continue
		}
		size, ok := w.PlayerSize(id)
		if !ok {
			continue
		}

		pos := w.Position[id]
		vel := w.Velocity[id]
		acc := w.Acceleration[id]
		landed := false

		for _, c := range buf.Entries() {
			if _, isGround := w.IsGround[c.Other]; !isGround {
				continue
			}
			hit, ok := c.Type.(PlayerHitsGround)
			if !ok || c.Side != collision.SideTop {
				continue
			}
			vel.Y = 0
			acc.Y = 0
			pos.Y = hit.GroundPos.Y + hit.GroundSize.Y/2 + size.Y/2
			landed = true
		}

		if landed {
			w.Position[id] = pos
			w.Velocity[id] = vel
			w.Acceleration[id] = acc
		}
	}
}

// ClearCollisions empties every collision buffer. Runs once at the end of every tick.
func ClearCollisions(w *World) {
	for _, id := range sortedIDs(w.Collisions) {
		w.Collisions[id].Clear()
	}
}
