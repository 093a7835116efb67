package render

import "github.com/32bitkid/dm/blit"

// Op is the kind of thing an Event drew.
type Op int

const (
	OpCeiling Op = iota
	OpFloor
	OpWall
	OpWallOrnament
	OpInscription
	OpPortrait
	OpFloorOrnament
	OpFootprints
	OpPit
	OpCeilingPit
	OpStairs
	OpDoorFrame
	OpDoor
	OpDoorButton
	OpDoorOrnament
	OpField
	OpObject
	OpCreature
	OpProjectile
	OpExplosion
	OpThievesEye
)

func (op Op) String() string {
	switch op {
	case OpCeiling:
		return "Op(Ceiling)"
	case OpFloor:
		return "Op(Floor)"
	case OpWall:
		return "Op(Wall)"
	case OpWallOrnament:
		return "Op(WallOrnament)"
	case OpInscription:
		return "Op(Inscription)"
	case OpPortrait:
		return "Op(Portrait)"
	case OpFloorOrnament:
		return "Op(FloorOrnament)"
	case OpFootprints:
		return "Op(Footprints)"
	case OpPit:
		return "Op(Pit)"
	case OpCeilingPit:
		return "Op(CeilingPit)"
	case OpStairs:
		return "Op(Stairs)"
	case OpDoorFrame:
		return "Op(DoorFrame)"
	case OpDoor:
		return "Op(Door)"
	case OpDoorButton:
		return "Op(DoorButton)"
	case OpDoorOrnament:
		return "Op(DoorOrnament)"
	case OpField:
		return "Op(Field)"
	case OpObject:
		return "Op(Object)"
	case OpCreature:
		return "Op(Creature)"
	case OpProjectile:
		return "Op(Projectile)"
	case OpExplosion:
		return "Op(Explosion)"
	case OpThievesEye:
		return "Op(ThievesEye)"
	}
	return "Op(UNKNOWN)"
}

// Event records one bitmap drawn into the viewport. Index is the
// graphics item the bitmap comes from. OpDoorOrnament events are drawn
// into the door bitmap before the door itself is drawn.
type Event struct {
	Op    Op
	View  ViewSquare
	Index int
	Box   blit.Box
}
