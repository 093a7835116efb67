// Package dungeon describes what the dungeon view renderer asks of the map
// and entity layers, and provides Grid, a small in-memory dungeon that
// satisfies those interfaces.
package dungeon

// Direction is the way the party faces. Moving north decreases y.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

func (d Direction) String() string {
	switch d & 3 {
	case North:
		return "Direction(North)"
	case East:
		return "Direction(East)"
	case South:
		return "Direction(South)"
	}
	return "Direction(West)"
}

func (d Direction) Right() Direction { return (d + 1) & 3 }
func (d Direction) Left() Direction  { return (d + 3) & 3 }
func (d Direction) Back() Direction  { return (d + 2) & 3 }

var (
	stepEast  = [4]int{0, 1, 0, -1}
	stepNorth = [4]int{-1, 0, 1, 0}
)

// Move returns the coordinates reached from (x, y) by walking forward
// then right, relative to facing d. Negative counts walk back or left.
func Move(d Direction, forward, right, x, y int) (int, int) {
	d &= 3
	x += stepEast[d] * forward
	y += stepNorth[d] * forward
	d = d.Right()
	x += stepEast[d] * right
	y += stepNorth[d] * right
	return x, y
}

// Element is what a square looks like from the party's position. Doors and
// stairs have a front and a side variant depending on the facing.
type Element int

const (
	Wall       Element = 0
	Corridor   Element = 1
	Pit        Element = 2
	Stairs     Element = 3
	Door       Element = 4
	Teleporter Element = 5
	FakeWall   Element = 6

	DoorSide    Element = 16
	DoorFront   Element = 17
	StairsSide  Element = 18
	StairsFront Element = 19
)

func (e Element) String() string {
	switch e {
	case Wall:
		return "Element(Wall)"
	case Corridor:
		return "Element(Corridor)"
	case Pit:
		return "Element(Pit)"
	case Stairs:
		return "Element(Stairs)"
	case Door:
		return "Element(Door)"
	case Teleporter:
		return "Element(Teleporter)"
	case FakeWall:
		return "Element(FakeWall)"
	case DoorSide:
		return "Element(DoorSide)"
	case DoorFront:
		return "Element(DoorFront)"
	case StairsSide:
		return "Element(StairsSide)"
	case StairsFront:
		return "Element(StairsFront)"
	}
	return "Element(UNKNOWN)"
}

// DoorState is how far a door is closed.
type DoorState int

const (
	DoorOpen DoorState = iota
	DoorClosedOneFourth
	DoorClosedHalf
	DoorClosedThreeFourth
	DoorClosed
	DoorDestroyed
)

// SquareAspect is what the renderer needs to know about one view square.
// Ornament fields are map-local ordinals; zero means none.
type SquareAspect struct {
	Element    Element
	FirstThing Thing

	// Wall
	RightWallOrnament int
	FrontWallOrnament int
	LeftWallOrnament  int
	Inscription       Thing
	Portrait          int

	// Corridor, pit, teleporter, door and stairs side
	FloorOrnament int
	Footprints    bool

	// DoorFront
	DoorState DoorState
	Door      Thing

	StairsUp          bool
	PitInvisible      bool
	TeleporterVisible bool
}

// Object is an item lying on the floor.
type Object struct {
	// Aspect indexes the object aspect table.
	Aspect int
}

// Projectile is a flying object or spell. Aspect is an object aspect
// index when not negative, or -(projectile aspect + 1).
type Projectile struct {
	Aspect        int
	KineticEnergy int
	Direction     Direction
}

func ProjectileAspect(index int) int { return -(index + 1) }

// Explosion types.
const (
	ExplosionFireball      = 0
	ExplosionSlime         = 1
	ExplosionLightningBolt = 2
	ExplosionHarmNonMatter = 3
	ExplosionOpenDoor      = 4
	ExplosionPoisonBolt    = 6
	ExplosionPoisonCloud   = 7
	ExplosionSmoke         = 40
	ExplosionFluxcage      = 50
	ExplosionRebirthStep1  = 100
	ExplosionRebirthStep2  = 101
)

type Explosion struct {
	Type     int
	Attack   int
	Centered bool
}

// Creature sizes.
const (
	SizeQuarter = 0
	SizeHalf    = 1
	SizeFull    = 2
)

// Creature graphic flags.
const (
	// GraphicAdditional counts the extra front graphics, each cached as a
	// native-size, D3 and D2 triple.
	GraphicAdditional     = 0x0003
	GraphicFlipNonAttack  = 0x0004
	GraphicSide           = 0x0008
	GraphicBack           = 0x0010
	GraphicAttack         = 0x0020
	GraphicSpecialD2Front = 0x0080
	GraphicSpecialD2Flip  = 0x0100
)

// CreatureInfo is the static description of a creature type.
type CreatureInfo struct {
	Size    int
	Graphic uint16
}

// Group is a set of up to four creatures of one type standing on a square.
type Group struct {
	Type      int
	Creatures int
	Active    int
}

// SingleCentered marks a group whose only creature stands in the middle of
// its square.
const SingleCentered = 255

// ActiveGroup is the per-frame state of a group near the party. Cells and
// Directions pack two bits per creature.
type ActiveGroup struct {
	Cells      int
	Directions int
	Aspects    [4]byte
}

// Creature aspect bits.
const (
	AspectFlip   = 0x40
	AspectAttack = 0x80
)

// CreatureCell is the cell of creature i, or SingleCentered.
func (a ActiveGroup) CreatureCell(i int) int {
	if a.Cells == SingleCentered {
		return SingleCentered
	}
	return (a.Cells >> (i << 1)) & 3
}

func (a ActiveGroup) CreatureDirection(i int) Direction {
	return Direction(a.Directions>>(i<<1)) & 3
}

// DoorInfo describes one door. Type picks one of the two door sets of the
// map and Ornament is a map-local ordinal.
type DoorInfo struct {
	Type     int
	Ornament int
	Button   bool
	Vertical bool
}

// Text codes in an inscription.
const (
	TextLineBreak = 0x80
	TextEnd       = 0x81
)

// Map is the map layer seen from the renderer.
type Map interface {
	SquareAspect(dir Direction, x, y int) SquareAspect
	RelativeSquareType(dir Direction, forward, right, x, y int) Element
	// FirstThing is the first thing on a square that can be drawn.
	FirstThing(x, y int) Thing
	// OpenPitAbove reports whether the square above (x, y) on the
	// previous level is an open pit.
	OpenPitAbove(x, y int) bool
}

// Things is the entity layer seen from the renderer.
type Things interface {
	NextThing(Thing) Thing
	Object(Thing) Object
	Projectile(Thing) Projectile
	Explosion(Thing) Explosion
	Group(Thing) Group
	ActiveGroup(Group) ActiveGroup
	CreatureInfo(creatureType int) CreatureInfo
	// CreatureOrdinalInCell is one plus the index of the creature of g
	// standing in cell, or zero.
	CreatureOrdinalInCell(g Group, cell int) int
	Door(Thing) DoorInfo
	// Text is an inscription as glyph codes separated by TextLineBreak
	// and ended by TextEnd.
	Text(Thing) []byte
}

type Party interface {
	ThievesEye() bool
	AtEntrance() bool
}

// Level is the per-map graphics description: which sets and ornaments
// the map uses. Ornament lists map map-local ordinals (index+1) to global
// ornament numbers.
type Level struct {
	WallSet        int
	FloorSet       int
	DoorSets       [2]int
	DoorAnimated   [2]bool
	WallOrnaments  []int
	FloorOrnaments []int
	DoorOrnaments  []int
	CreatureTypes  []int
	// InscriptionOrnament is the map-local index of the wall ornament
	// that shows text, or -1.
	InscriptionOrnament int
}
