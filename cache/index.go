package cache

// Fixed slots.
const (
	Viewport     = 0
	ThievesEye   = 1
	DamageMedium = 2
	DamageSmall  = 3
)

const (
	firstWallOrnament = 4
	firstDoorOrnament = 68
	firstDoorButton   = 102
	firstObject       = 104
	firstProjectile   = 282
	firstExplosion    = 438

	// FirstCreature is where the per-type creature variants start. Their
	// layout depends on which sprites each creature type has.
	FirstCreature = 495
)

// WallOrnament is the slot of a wall ornament at one of the four far
// depth views (0: D3 side, 1: D3 front, 2: D2 side, 3: D2 front).
func WallOrnament(ornament, depthView int) int {
	return firstWallOrnament + ornament<<2 + depthView
}

// DoorOrnament is the slot of a door ornament; d2 selects the nearer of
// the two scaled sizes.
func DoorOrnament(ornament int, d2 bool) int {
	i := firstDoorOrnament + ornament*2
	if d2 {
		i++
	}
	return i
}

// DoorButton is the slot of a scaled door button; d2 selects the nearer
// size.
func DoorButton(ordinal int, d2 bool) int {
	i := firstDoorButton + ordinal*2
	if d2 {
		i++
	}
	return i
}

// Object is the slot of an object variant. rel is the object's first
// derived offset; variant is 0/1 for D3/D2, +2 flipped, +4 alcove.
func Object(rel, variant int) int {
	return firstObject + rel + variant
}

// Projectile is the slot of a projectile at one of its six scales.
func Projectile(rel, bitmapDelta, scaleIndex int) int {
	return firstProjectile + rel + bitmapDelta*6 + scaleIndex
}

// Explosion is the slot of an explosion aspect at an even scale in
// [4, 32).
func Explosion(aspect, scale int) int {
	return aspect*14 + scale/2 + firstExplosion - 2
}
