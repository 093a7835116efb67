package render

import (
	"reflect"
	"testing"

	"github.com/32bitkid/dm/blit"
	"github.com/32bitkid/dm/dungeon"
	"github.com/32bitkid/dm/screen"
)

// fakeNatives makes up a patterned bitmap of the expected size for every
// item asked for.
type fakeNatives map[int]*blit.Bitmap

func (f fakeNatives) Native(index int) *blit.Bitmap {
	if b, ok := f[index]; ok {
		return b
	}
	w, h, ok := NativeSize(index)
	if !ok {
		w, h = 16, 16
	}
	b := blit.New(w, h)
	for k := range b.Pix {
		b.Pix[k] = byte(1 + (index+k)%9)
	}
	f[index] = b
	return b
}

var testLevel = dungeon.Level{
	DoorSets:            [2]int{0, 1},
	InscriptionOrnament: -1,
}

// Party stands at (2, 4) facing north; the square ahead is (2, 3).
const partyX, partyY = 2, 4

func newScene(t *testing.T, level dungeon.Level, options ...Options) (*dungeon.Grid, *Context, *[]Event) {
	t.Helper()
	return newSceneWith(t, fakeNatives{}, level, options...)
}

func newSceneWith(t *testing.T, gfx fakeNatives, level dungeon.Level, options ...Options) (*dungeon.Grid, *Context, *[]Event) {
	t.Helper()
	g := dungeon.NewGrid(5, 6)
	events := new([]Event)
	options = append([]Options{{
		Trace: func(e Event) { *events = append(*events, e) },
	}}, options...)
	c := New(gfx, g, g, g, options...)
	if err := c.LoadLevel(level); err != nil {
		t.Fatal(err)
	}
	return g, c, events
}

// coinFlips is a Random that answers from a fixed list, then zero.
type coinFlips []int

func (f *coinFlips) Intn(n int) int {
	if len(*f) == 0 {
		return 0
	}
	v := (*f)[0]
	*f = (*f)[1:]
	return v % n
}

func opsOf(events []Event) []Op {
	ops := make([]Op, len(events))
	for i, e := range events {
		ops[i] = e.Op
	}
	return ops
}

func eventsAt(events []Event, view ViewSquare) []Event {
	var out []Event
	for _, e := range events {
		if e.View == view {
			out = append(out, e)
		}
	}
	return out
}

func TestCellOrdinals(t *testing.T) {
	tests := []struct {
		order    int
		cells    []int
		doorPass int
	}{
		{orderAlcove, nil, 0},
		{orderFrontLeft, []int{0}, 0},
		{orderLeftColumnFirst, []int{0, 1, 3, 2}, 0},
		{orderDoorPass1FrontLeftFrontRight, []int{0, 1}, 1},
		{orderDoorPass2BackLeftBackRight, []int{3, 2}, 2},
		{orderDoorFront, nil, 1},
	}
	for _, tt := range tests {
		cells, pass := cellOrdinals(tt.order)
		if !reflect.DeepEqual(cells, tt.cells) || pass != tt.doorPass {
			t.Errorf("%#04x: expected(%v, %d) != actual(%v, %d)", tt.order, tt.cells, tt.doorPass, cells, pass)
		}
	}
}

func TestNextPileShift(t *testing.T) {
	tests := []struct {
		pile     int
		alcove   bool
		expected int
	}{
		{0, false, 1},
		{15, false, 0},
		{8, false, 9},
		{12, true, 13},
		{13, true, 2},
	}
	for _, tt := range tests {
		if actual := nextPileShift(tt.pile, tt.alcove); actual != tt.expected {
			t.Errorf("%d alcove=%v: expected(%d) != actual(%d)", tt.pile, tt.alcove, tt.expected, actual)
		}
	}
}

func TestInscriptionLines(t *testing.T) {
	lines := inscriptionLines(dungeon.EncodeInscription("AB", "C"))
	expected := [][]byte{{0, 1}, {2}}
	if !reflect.DeepEqual(lines, expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, lines)
	}

	lines = inscriptionLines([]byte{3, 4})
	if len(lines) != 1 || len(lines[0]) != 2 {
		t.Fatalf("expected one unterminated line, got %v", lines)
	}
}

func TestNativeSize(t *testing.T) {
	tests := []struct {
		index int
		w, h  int
		ok    bool
	}{
		{nativeHoleInWall, 96, 95, true},
		{nativeFirstFieldMask, 96, 51, true},
		{nativeFirstObject, 48, 27, true},
		{nativeFirstCreature, 112, 84, true},
		{nativeFirstExplosionPat, 48, 32, true},
		{0, 0, 0, false},
	}
	for _, tt := range tests {
		w, h, ok := NativeSize(tt.index)
		if w != tt.w || h != tt.h || ok != tt.ok {
			t.Errorf("item %d: expected(%d×%d %v) != actual(%d×%d %v)", tt.index, tt.w, tt.h, tt.ok, w, h, ok)
		}
	}
}

func TestWallAhead(t *testing.T) {
	g, c, events := newScene(t, testLevel)
	g.Set(partyX, partyY-1, dungeon.Wall)
	c.DrawDungeon(dungeon.North, partyX, partyY)

	if f := c.Facing(); f.SquareAhead != dungeon.Wall || f.Alcove {
		t.Fatalf("unexpected facing %+v", f)
	}
	at := eventsAt(*events, D1C)
	if len(at) != 1 {
		t.Fatalf("expected(1) != actual(%d): %v", len(at), at)
	}
	if at[0].Op != OpWall || at[0].Index != nativeFirstWallSet+wallD1 {
		t.Fatalf("expected wall item %d, got %+v", nativeFirstWallSet+wallD1, at[0])
	}
	if b := c.ClickableBoxes()[viewCellFrontLeft]; b.X1 != 255 {
		t.Fatalf("expected no clickable box, got %+v", b)
	}
}

func TestProjectileOnPartySquare(t *testing.T) {
	const aspect = 3 // scales with kinetic energy
	item := nativeFirstProjectile + projectileAspects[aspect].firstNative

	tests := []struct {
		name   string
		energy int
		box    blit.Box
	}{
		{"full energy is native size", 255, blit.Box{X1: 35, X2: 98, Y1: 40, Y2: 54}},
		{"spent energy shrinks", 100, blit.Box{X1: 55, X2: 78, Y1: 45, Y2: 49}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, events := newScene(t, testLevel)
			g.AddProjectile(partyX, partyY, 0, dungeon.Projectile{
				Aspect:        dungeon.ProjectileAspect(aspect),
				KineticEnergy: tt.energy,
				Direction:     dungeon.North,
			})
			c.DrawDungeon(dungeon.North, partyX, partyY)

			at := eventsAt(*events, D0C)
			if len(at) != 1 || at[0].Op != OpProjectile {
				t.Fatalf("expected one projectile, got %v", at)
			}
			if at[0].Index != item {
				t.Errorf("expected(%d) != actual(%d)", item, at[0].Index)
			}
			if at[0].Box != tt.box {
				t.Errorf("expected(%+v) != actual(%+v)", tt.box, at[0].Box)
			}
		})
	}
}

func TestQuarterCreatureAhead(t *testing.T) {
	const typ = 2
	g, c, events := newScene(t, testLevel)
	g.Creatures[typ] = dungeon.CreatureInfo{Size: dungeon.SizeQuarter, Graphic: dungeon.GraphicSide}
	g.AddGroup(partyX, partyY-1, dungeon.Group{Type: typ, Creatures: 1}, dungeon.ActiveGroup{})
	c.DrawDungeon(dungeon.North, partyX, partyY)

	var creatures []Event
	for _, e := range eventsAt(*events, D1C) {
		if e.Op == OpCreature {
			creatures = append(creatures, e)
		}
	}
	if len(creatures) != 1 {
		t.Fatalf("expected(1) != actual(%d)", len(creatures))
	}
	expected := blit.Box{X1: 60, X2: 107, Y1: 56, Y2: 103}
	if creatures[0].Box != expected {
		t.Fatalf("expected(%+v) != actual(%+v)", expected, creatures[0].Box)
	}
	if creatures[0].Index != nativeFirstCreature+creatureAspects[typ].firstNative {
		t.Fatalf("expected front sprite, got item %d", creatures[0].Index)
	}
}

func TestObjectOnPartySquareIsGrabbable(t *testing.T) {
	g, c, _ := newScene(t, testLevel)
	thing := g.AddObject(partyX, partyY, 1, 0)
	c.DrawDungeon(dungeon.North, partyX, partyY)

	if top := c.PileTop(viewCellFrontRight); top != thing {
		t.Fatalf("expected(%v) != actual(%v)", thing, top)
	}
	if b := c.ClickableBoxes()[viewCellFrontRight]; b.X1 == 255 {
		t.Fatal("expected a clickable box")
	}
	if top := c.PileTop(viewCellFrontLeft); top != dungeon.None {
		t.Fatalf("expected(%v) != actual(%v)", dungeon.None, top)
	}
}

func TestPresentSwitchesPalettes(t *testing.T) {
	_, c, _ := newScene(t, testLevel)
	s := c.Screen()

	c.Present(PaletteDungeon)
	if !c.DungeonPaletteEnabled() || s.Middle != c.Level().Palette[0] {
		t.Fatal("expected dungeon palette in the viewport band")
	}
	if s.TopBottom != screen.DefaultPalettes.MousePointer {
		t.Fatal("expected the pointer palette in the top and bottom bands")
	}

	c.Present(PaletteAsBefore)
	if !c.DungeonPaletteEnabled() {
		t.Fatal("expected the dungeon palette to be kept")
	}

	c.Present(PaletteOff)
	if c.DungeonPaletteEnabled() || s.Middle != screen.DefaultPalettes.MousePointer {
		t.Fatal("expected the pointer palette in the viewport band")
	}

	c.SetPaletteIndex(9)
	if c.PaletteIndex() != screen.PaletteIndexDarkest {
		t.Fatalf("expected(%d) != actual(%d)", screen.PaletteIndexDarkest, c.PaletteIndex())
	}
	c.Present(PaletteDungeon)
	if s.Middle != c.Level().Palette[screen.PaletteIndexDarkest] {
		t.Fatal("expected the darkest palette after a refresh")
	}
}

func TestLoadLevelReplacesCreatureColors(t *testing.T) {
	level := testLevel
	level.CreatureTypes = []int{1}
	_, c, _ := newScene(t, level)
	lvl := c.Level()

	repl10 := screen.CreatureReplacements[1]
	repl9 := screen.CreatureReplacements[8]
	for i := range lvl.Palette {
		if lvl.Palette[i][10] != repl10.RGB[i] {
			t.Errorf("light %d colour 10: expected(%#03x) != actual(%#03x)", i, repl10.RGB[i], lvl.Palette[i][10])
		}
		if lvl.Palette[i][9] != repl9.RGB[i] {
			t.Errorf("light %d colour 9: expected(%#03x) != actual(%#03x)", i, repl9.RGB[i], lvl.Palette[i][9])
		}
	}
	if lvl.creatureD2[10] != repl10.D2 || lvl.creatureD3[10] != repl10.D3 {
		t.Errorf("expected shrunk remaps to follow the replacement")
	}
}

func TestLoadLevelRejectsOrnaments(t *testing.T) {
	g := dungeon.NewGrid(1, 1)
	c := New(fakeNatives{}, g, g, g)

	level := testLevel
	level.WallOrnaments = make([]int, maxMapWallOrnaments+1)
	if err := c.LoadLevel(level); err == nil {
		t.Fatal("expected too many wall ornaments to fail")
	}

	level = testLevel
	level.DoorOrnaments = []int{doorOrnamentCount}
	if err := c.LoadLevel(level); err == nil {
		t.Fatal("expected an unknown door ornament to fail")
	}
}

func TestMaskedFill(t *testing.T) {
	src := blit.New(16, 1)
	for k := range src.Pix {
		src.Pix[k] = byte(k%14 + 1)
	}
	src.Pix[5] = 0xF
	mask := blit.New(4, 4)
	for y := 0; y < 4; y++ {
		for x := 1; x < 4; x++ {
			mask.Set(x, y, 1)
		}
	}

	dst := blit.New(4, 4)
	maskedFill(src, dst, mask, 0, dst.Bounds(), 0, 0, 0x0F)
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			expected := src.Pix[(y*4+x)%16]
			if x == 0 || expected == 0xF {
				expected = 0
			}
			if actual := dst.At(x, y); actual != expected {
				t.Errorf("(%d,%d): expected(%d) != actual(%d)", x, y, expected, actual)
			}
		}
	}

	dst = blit.New(4, 4)
	maskedFill(src, dst, mask, 0, dst.Bounds(), 0, 0, fieldDoNotUseMask|0x0F)
	if dst.At(0, 0) != src.Pix[0] {
		t.Fatal("expected the mask to be ignored")
	}
}

func TestDoorFrontPasses(t *testing.T) {
	level := testLevel
	level.FloorOrnaments = []int{0}
	g, c, events := newScene(t, level)
	g.AddDoor(partyX, partyY-1, dungeon.DoorInfo{Vertical: true}, dungeon.DoorDestroyed)
	g.Square(partyX, partyY-1).FloorOrnament = 1
	g.AddObject(partyX, partyY-1, viewCellFrontLeft, 0)
	g.AddObject(partyX, partyY-1, viewCellBackLeft, 0)
	c.DrawDungeon(dungeon.North, partyX, partyY)

	at := eventsAt(*events, D1C)
	expected := []Op{
		OpFloorOrnament,
		OpObject,
		OpDoorFrame, OpDoorFrame, OpDoorFrame,
		OpDoorOrnament,
		OpDoor,
		OpObject,
	}
	if !reflect.DeepEqual(opsOf(at), expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, opsOf(at))
	}
	if at[5].Index != nativeDoorMaskDestroyed {
		t.Errorf("expected(%d) != actual(%d)", nativeDoorMaskDestroyed, at[5].Index)
	}
	if at[6].Box != doorFramesD1C.closed.Box {
		t.Errorf("expected the whole door, got %+v", at[6].Box)
	}
	// The far cells are drawn behind the door, the near ones over it.
	if at[1].Box.Y2 >= at[7].Box.Y2 {
		t.Errorf("expected the far object first: %+v %+v", at[1].Box, at[7].Box)
	}
	if f := c.Facing(); f.SquareAhead != dungeon.DoorFront {
		t.Errorf("expected(%v) != actual(%v)", dungeon.DoorFront, f.SquareAhead)
	}
}

func TestPitOnRightLaneIsMirrored(t *testing.T) {
	f := frameFloorPitD1R
	pit := blit.New(f.SrcByteWidth<<1, f.SrcHeight)
	for k := range pit.Pix {
		pit.Pix[k] = byte(1 + k%9)
	}
	g, c, events := newSceneWith(t, fakeNatives{nativeFloorPitD1L: pit}, testLevel)
	g.Set(partyX+1, partyY-1, dungeon.Pit)
	c.DrawDungeon(dungeon.North, partyX, partyY)

	at := eventsAt(*events, D1R)
	if len(at) != 1 || at[0].Op != OpPit || at[0].Index != nativeFloorPitD1L || at[0].Box != f.Box {
		t.Fatalf("expected one pit through %+v, got %v", f.Box, at)
	}
	vp := c.Viewport()
	for x := f.Box.X1; x <= f.Box.X2; x++ {
		expected := pit.At(pit.Width-1-(f.SrcX+x-f.Box.X1), f.SrcY)
		if actual := vp.At(x, f.Box.Y1); actual != expected {
			t.Fatalf("x=%d: expected(%d) != actual(%d)", x, expected, actual)
		}
	}
}

func TestFloorOrnamentOverPit(t *testing.T) {
	level := testLevel
	level.FloorOrnaments = []int{0}
	g, c, events := newScene(t, level)
	g.Set(partyX, partyY-1, dungeon.Pit).FloorOrnament = 1
	c.DrawDungeon(dungeon.North, partyX, partyY)

	expected := []Op{OpPit, OpFloorOrnament}
	if actual := opsOf(eventsAt(*events, D1C)); !reflect.DeepEqual(actual, expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, actual)
	}
}

// halfSizeType places its creatures with the half cell coordinates.
const halfSizeType = 5

func creatureEvents(events []Event, view ViewSquare) []Event {
	var out []Event
	for _, e := range eventsAt(events, view) {
		if e.Op == OpCreature {
			out = append(out, e)
		}
	}
	return out
}

func TestHalfSizeCreatures(t *testing.T) {
	item := nativeFirstCreature + creatureAspects[halfSizeType].firstNative
	tests := []struct {
		name     string
		group    dungeon.Group
		active   dungeon.ActiveGroup
		expected []blit.Box
	}{
		{
			"pair side by side, right first",
			dungeon.Group{Type: halfSizeType, Creatures: 2},
			// Creature 0 in cell 0, creature 1 in cell 1, both facing south.
			dungeon.ActiveGroup{Cells: 0<<0 | 1<<2, Directions: 2<<0 | 2<<2},
			[]blit.Box{
				{X1: 119, X2: 166, Y1: 71, Y2: 119},
				{X1: 58, X2: 105, Y1: 71, Y2: 119},
			},
		},
		{
			"single creature in the middle",
			dungeon.Group{Type: halfSizeType, Creatures: 1},
			dungeon.ActiveGroup{Cells: dungeon.SingleCentered, Directions: 2},
			[]blit.Box{
				{X1: 88, X2: 135, Y1: 71, Y2: 119},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, events := newScene(t, testLevel)
			g.Creatures[halfSizeType] = dungeon.CreatureInfo{Size: dungeon.SizeHalf}
			g.AddGroup(partyX, partyY-1, tt.group, tt.active)
			c.DrawDungeon(dungeon.North, partyX, partyY)

			creatures := creatureEvents(*events, D1C)
			if len(creatures) != len(tt.expected) {
				t.Fatalf("expected(%d) != actual(%d)", len(tt.expected), len(creatures))
			}
			for i, e := range creatures {
				if e.Box != tt.expected[i] {
					t.Errorf("%d: expected(%+v) != actual(%+v)", i, tt.expected[i], e.Box)
				}
				if e.Index != item {
					t.Errorf("%d: expected(%d) != actual(%d)", i, item, e.Index)
				}
			}
		})
	}
}

func TestExplosionAhead(t *testing.T) {
	g, c, events := newScene(t, testLevel, Options{Random: &coinFlips{}})
	g.AddObject(partyX, partyY-1, viewCellFrontLeft, 0)
	g.AddExplosion(partyX, partyY-1, 0, dungeon.Explosion{Type: dungeon.ExplosionFireball, Attack: 120, Centered: true})
	c.DrawDungeon(dungeon.North, partyX, partyY)

	at := eventsAt(*events, D1C)
	if len(at) != 2 || at[0].Op != OpObject || at[1].Op != OpExplosion {
		t.Fatalf("expected an object then an explosion, got %v", opsOf(at))
	}
	// Attack 120 at D1C scales the 160×111 fireball by 14/32.
	expected := blit.Box{X1: 77, X2: 146, Y1: 34, Y2: 81}
	if at[1].Box != expected {
		t.Errorf("expected(%+v) != actual(%+v)", expected, at[1].Box)
	}
	if at[1].Index != nativeFirstExplosion+explosionAspectFire {
		t.Errorf("expected(%d) != actual(%d)", nativeFirstExplosion+explosionAspectFire, at[1].Index)
	}
}

func TestExplosionOnPartySquareFillsViewport(t *testing.T) {
	tests := []struct {
		name      string
		explosion dungeon.Explosion
		pattern   int
	}{
		{"weak fireball", dungeon.Explosion{Type: dungeon.ExplosionFireball, Attack: 20}, 0},
		{"fireball", dungeon.Explosion{Type: dungeon.ExplosionFireball, Attack: 120}, 1},
		{"strong fireball", dungeon.Explosion{Type: dungeon.ExplosionFireball, Attack: 200}, 2},
		{"smoke", dungeon.Explosion{Type: dungeon.ExplosionSmoke}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, events := newScene(t, testLevel, Options{Random: &coinFlips{}})
			g.AddExplosion(partyX, partyY, 0, tt.explosion)
			c.DrawDungeon(dungeon.North, partyX, partyY)

			at := eventsAt(*events, D0C)
			if len(at) != 1 || at[0].Op != OpExplosion {
				t.Fatalf("expected one explosion, got %v", opsOf(at))
			}
			if item := nativeFirstExplosionPat + tt.pattern; at[0].Index != item {
				t.Errorf("expected(%d) != actual(%d)", item, at[0].Index)
			}
			if at[0].Box != boxExplosionPatternD0C {
				t.Errorf("expected(%+v) != actual(%+v)", boxExplosionPatternD0C, at[0].Box)
			}
		})
	}
}

func TestFluxcageDrawnLast(t *testing.T) {
	field := nativeFirstField + fieldAspects[D1C].nativeRel + 1
	tests := []struct {
		name     string
		hide     bool
		expected []Op
	}{
		{"shown", false, []Op{OpExplosion, OpField}},
		{"hidden", true, []Op{OpExplosion}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, c, events := newScene(t, testLevel, Options{Random: &coinFlips{}, HideFluxcages: tt.hide})
			g.AddExplosion(partyX, partyY-1, 0, dungeon.Explosion{Type: dungeon.ExplosionFluxcage})
			g.AddExplosion(partyX, partyY-1, 0, dungeon.Explosion{Type: dungeon.ExplosionFireball, Attack: 60, Centered: true})
			c.DrawDungeon(dungeon.North, partyX, partyY)

			at := eventsAt(*events, D1C)
			if actual := opsOf(at); !reflect.DeepEqual(actual, tt.expected) {
				t.Fatalf("expected(%v) != actual(%v)", tt.expected, actual)
			}
			if last := at[len(at)-1]; last.Op == OpField {
				if last.Index != field || last.Box != frameWalls[D1C].Box {
					t.Errorf("expected field %d over %+v, got %+v", field, frameWalls[D1C].Box, last)
				}
			}
		})
	}
}

func TestExplosionCutByLeftEdge(t *testing.T) {
	// 24 pixels wide but only 20 in use: 4 pixels of padding.
	const bw, h, x, y = 10, 10, 5, 60
	bmp := blit.New(24, h)
	for py := 0; py < h; py++ {
		for px := 0; px < bmp.Width; px++ {
			bmp.Set(px, py, byte(1+px%9))
		}
	}

	tests := []struct {
		name     string
		faithful bool
		flips    coinFlips
		// column of the unflipped bitmap seen at the left edge
		column int
	}{
		{"flipped", false, coinFlips{0, 1}, 23 - 8},
		{"flipped, faithful", true, coinFlips{0, 1}, 23 - 4},
		{"unflipped", false, coinFlips{0, 0}, 4},
		{"unflipped, faithful", true, coinFlips{0, 0}, 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flips := tt.flips
			_, c, events := newScene(t, testLevel, Options{Random: &flips, FaithfulCropBugs: tt.faithful})
			c.drawExplosion(&entityPass{view: D1L}, nativeFirstExplosion, bmp, bw, h, x, y)

			if len(*events) != 1 {
				t.Fatalf("expected(1) != actual(%d)", len(*events))
			}
			box := (*events)[0].Box
			if expected := (blit.Box{X1: 0, X2: 15, Y1: 56, Y2: 65}); box != expected {
				t.Fatalf("expected(%+v) != actual(%+v)", expected, box)
			}
			expected := bmp.At(tt.column, 0)
			if actual := c.Viewport().At(0, box.Y1); actual != expected {
				t.Errorf("expected(%d) != actual(%d)", expected, actual)
			}
		})
	}
}

func TestPitsBesideParty(t *testing.T) {
	g, c, events := newScene(t, testLevel)
	g.Set(partyX-1, partyY, dungeon.Pit)
	g.Set(partyX+1, partyY, dungeon.Pit)
	c.DrawDungeon(dungeon.North, partyX, partyY)

	if at := eventsAt(*events, D0L); len(at) != 0 {
		t.Errorf("expected nothing at D0L, got %v", opsOf(at))
	}
	at := eventsAt(*events, D0R)
	if len(at) != 1 || at[0].Op != OpPit || at[0].Index != nativeFloorPitD0L {
		t.Fatalf("expected the mirrored left pit at D0R, got %v", at)
	}
}
