package dungeon

// Square is one cell of a Grid map.
type Square struct {
	Element Element

	// WallOrnaments holds, per direction, the ornament ordinal on the face
	// of a wall pointing that way.
	WallOrnaments [4]int
	Inscription   Thing
	Portrait      int

	FloorOrnament int
	Footprints    bool

	// AlongNorthSouth orients doors and stairs: their front is seen when
	// facing north or south.
	AlongNorthSouth bool
	DoorState       DoorState
	Door            Thing
	StairsUp        bool

	PitInvisible      bool
	TeleporterVisible bool

	Things []Thing
}

// Grid is an in-memory map with its things. It implements Map, Things and
// Party.
type Grid struct {
	Width, Height int
	Squares       []Square

	Objects     []Object
	Projectiles []Projectile
	Explosions  []Explosion
	Groups      []Group
	Active      []ActiveGroup
	Doors       []DoorInfo
	Texts       [][]byte
	Creatures   map[int]CreatureInfo

	PitsAbove map[[2]int]bool

	Eye      bool
	Entrance bool

	next map[Thing]Thing
}

func NewGrid(width, height int) *Grid {
	g := &Grid{
		Width:     width,
		Height:    height,
		Squares:   make([]Square, width*height),
		Creatures: make(map[int]CreatureInfo),
		PitsAbove: make(map[[2]int]bool),
		next:      make(map[Thing]Thing),
	}
	for i := range g.Squares {
		g.Squares[i].Element = Corridor
		g.Squares[i].Inscription = None
		g.Squares[i].Door = None
	}
	return g
}

// Square returns the square at (x, y), or nil outside the map.
func (g *Grid) Square(x, y int) *Square {
	if x < 0 || y < 0 || x >= g.Width || y >= g.Height {
		return nil
	}
	return &g.Squares[y*g.Width+x]
}

// Set changes the element of a square.
func (g *Grid) Set(x, y int, e Element) *Square {
	s := g.Square(x, y)
	if s != nil {
		s.Element = e
	}
	return s
}

func (g *Grid) link(s *Square) {
	for i, t := range s.Things {
		if i+1 < len(s.Things) {
			g.next[t] = s.Things[i+1]
		} else {
			g.next[t] = EndOfList
		}
	}
}

func (g *Grid) add(x, y int, t Thing) Thing {
	s := g.Square(x, y)
	if s == nil {
		return t
	}
	s.Things = append(s.Things, t)
	g.link(s)
	return t
}

// AddObject puts an object of the given aspect in a cell of (x, y).
func (g *Grid) AddObject(x, y, cell, aspect int) Thing {
	g.Objects = append(g.Objects, Object{Aspect: aspect})
	return g.add(x, y, NewThing(cell, TypeJunk, len(g.Objects)-1))
}

func (g *Grid) AddProjectile(x, y, cell int, p Projectile) Thing {
	g.Projectiles = append(g.Projectiles, p)
	return g.add(x, y, NewThing(cell, TypeProjectile, len(g.Projectiles)-1))
}

func (g *Grid) AddExplosion(x, y, cell int, e Explosion) Thing {
	g.Explosions = append(g.Explosions, e)
	return g.add(x, y, NewThing(cell, TypeExplosion, len(g.Explosions)-1))
}

// AddGroup puts a creature group on (x, y) with its active state.
func (g *Grid) AddGroup(x, y int, grp Group, active ActiveGroup) Thing {
	grp.Active = len(g.Active)
	g.Active = append(g.Active, active)
	g.Groups = append(g.Groups, grp)
	return g.add(x, y, NewThing(0, TypeGroup, len(g.Groups)-1))
}

// AddDoor makes (x, y) a door square.
func (g *Grid) AddDoor(x, y int, d DoorInfo, state DoorState) Thing {
	g.Doors = append(g.Doors, d)
	t := NewThing(0, TypeDoor, len(g.Doors)-1)
	if s := g.Set(x, y, Door); s != nil {
		s.Door = t
		s.DoorState = state
		s.AlongNorthSouth = d.Vertical
	}
	return t
}

// AddText stores inscription lines and returns their thing.
func (g *Grid) AddText(lines ...string) Thing {
	g.Texts = append(g.Texts, EncodeInscription(lines...))
	return NewThing(0, TypeText, len(g.Texts)-1)
}

// EncodeInscription turns text lines into inscription glyph codes. Letters
// map to 0–25 and a space to 26; other characters are kept modulo 36.
func EncodeInscription(lines ...string) []byte {
	var out []byte
	for i, l := range lines {
		if i > 0 {
			out = append(out, TextLineBreak)
		}
		for _, r := range l {
			switch {
			case r >= 'A' && r <= 'Z':
				out = append(out, byte(r-'A'))
			case r >= 'a' && r <= 'z':
				out = append(out, byte(r-'a'))
			case r == ' ':
				out = append(out, 26)
			default:
				out = append(out, byte(r)%36)
			}
		}
	}
	return append(out, TextEnd)
}

func (g *Grid) SquareAspect(dir Direction, x, y int) SquareAspect {
	a := SquareAspect{Element: Wall, FirstThing: EndOfList, Inscription: None, Door: None}
	s := g.Square(x, y)
	if s == nil {
		return a
	}
	a.FirstThing = g.FirstThing(x, y)
	switch s.Element {
	case Wall, FakeWall:
		a.Element = Wall
		a.RightWallOrnament = s.WallOrnaments[dir.Right()]
		a.FrontWallOrnament = s.WallOrnaments[dir.Back()]
		a.LeftWallOrnament = s.WallOrnaments[dir.Left()]
		a.Inscription = s.Inscription
		a.Portrait = s.Portrait
		return a
	case Door:
		a.Element = DoorSide
		if s.AlongNorthSouth == (dir&1 == 0) {
			a.Element = DoorFront
			a.DoorState = s.DoorState
			a.Door = s.Door
		}
	case Stairs:
		a.Element = StairsSide
		if s.AlongNorthSouth == (dir&1 == 0) {
			a.Element = StairsFront
		}
		a.StairsUp = s.StairsUp
	case Pit:
		a.Element = Pit
		a.PitInvisible = s.PitInvisible
	case Teleporter:
		a.Element = Teleporter
		a.TeleporterVisible = s.TeleporterVisible
	default:
		a.Element = Corridor
	}
	a.FloorOrnament = s.FloorOrnament
	a.Footprints = s.Footprints
	return a
}

func (g *Grid) RelativeSquareType(dir Direction, forward, right, x, y int) Element {
	x, y = Move(dir, forward, right, x, y)
	s := g.Square(x, y)
	if s == nil {
		return Wall
	}
	return s.Element
}

func (g *Grid) FirstThing(x, y int) Thing {
	s := g.Square(x, y)
	if s == nil || len(s.Things) == 0 {
		return EndOfList
	}
	return s.Things[0]
}

func (g *Grid) OpenPitAbove(x, y int) bool {
	return g.PitsAbove[[2]int{x, y}]
}

func (g *Grid) NextThing(t Thing) Thing {
	if n, ok := g.next[t]; ok {
		return n
	}
	return EndOfList
}

func (g *Grid) Object(t Thing) Object             { return g.Objects[t.Index()] }
func (g *Grid) Projectile(t Thing) Projectile     { return g.Projectiles[t.Index()] }
func (g *Grid) Explosion(t Thing) Explosion       { return g.Explosions[t.Index()] }
func (g *Grid) Group(t Thing) Group               { return g.Groups[t.Index()] }
func (g *Grid) ActiveGroup(grp Group) ActiveGroup { return g.Active[grp.Active] }
func (g *Grid) Door(t Thing) DoorInfo             { return g.Doors[t.Index()] }
func (g *Grid) CreatureInfo(typ int) CreatureInfo { return g.Creatures[typ] }
func (g *Grid) ThievesEye() bool                  { return g.Eye }
func (g *Grid) AtEntrance() bool                  { return g.Entrance }

func (g *Grid) Text(t Thing) []byte {
	if t.End() || t.Index() >= len(g.Texts) {
		return []byte{TextEnd}
	}
	return g.Texts[t.Index()]
}

// CreatureOrdinalInCell finds the creature of grp standing in cell. Half
// square creatures occupy a cell and its clockwise neighbour.
func (g *Grid) CreatureOrdinalInCell(grp Group, cell int) int {
	active := g.ActiveGroup(grp)
	if active.Cells == SingleCentered {
		return 1
	}
	half := g.CreatureInfo(grp.Type).Size == SizeHalf
	if half && active.Directions&1 == cell&1 {
		cell = (cell + 3) & 3
	}
	for i := grp.Creatures - 1; i >= 0; i-- {
		c := active.CreatureCell(i)
		if c == cell || (half && c == (cell+1)&3) {
			return i + 1
		}
	}
	return 0
}
