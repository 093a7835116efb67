package dungeon

import (
	"bytes"
	"testing"
)

func TestThingPacking(t *testing.T) {
	th := NewThing(3, TypeExplosion, 1000)
	if th.Cell() != 3 || th.Type() != TypeExplosion || th.Index() != 1000 {
		t.Fatalf("expected(3 %v 1000) != actual(%d %v %d)", TypeExplosion, th.Cell(), th.Type(), th.Index())
	}
	if !EndOfList.End() || !None.End() || th.End() {
		t.Fatalf("end markers misclassified")
	}
	if !TypeJunk.IsObject() || TypeGroup.IsObject() {
		t.Fatalf("object types misclassified")
	}
}

func TestMove(t *testing.T) {
	cases := []struct {
		dir            Direction
		forward, right int
		x, y           int
	}{
		{North, 1, 0, 5, 4},
		{North, 0, 1, 6, 5},
		{East, 3, -1, 8, 4},
		{South, 2, 1, 4, 7},
		{West, 1, 1, 4, 4},
	}
	for i, c := range cases {
		x, y := Move(c.dir, c.forward, c.right, 5, 5)
		if x != c.x || y != c.y {
			t.Fatalf("%d: expected(%d,%d) != actual(%d,%d)", i, c.x, c.y, x, y)
		}
	}
}

func TestGridAspects(t *testing.T) {
	g := NewGrid(4, 4)
	w := g.Set(1, 0, Wall)
	w.WallOrnaments[South] = 3
	w.WallOrnaments[East] = 5

	a := g.SquareAspect(North, 1, 0)
	if a.Element != Wall || a.FrontWallOrnament != 3 || a.RightWallOrnament != 5 {
		t.Fatalf("unexpected wall aspect %+v", a)
	}

	g.AddDoor(1, 1, DoorInfo{Vertical: true}, DoorClosed)
	if e := g.SquareAspect(North, 1, 1).Element; e != DoorFront {
		t.Fatalf("expected(%v) != actual(%v)", DoorFront, e)
	}
	if e := g.SquareAspect(East, 1, 1).Element; e != DoorSide {
		t.Fatalf("expected(%v) != actual(%v)", DoorSide, e)
	}
	if e := g.RelativeSquareType(North, 1, 0, 1, 2); e != Door {
		t.Fatalf("expected(%v) != actual(%v)", Door, e)
	}
	if e := g.RelativeSquareType(West, 1, 0, 0, 0); e != Wall {
		t.Fatalf("outside the map: expected(%v) != actual(%v)", Wall, e)
	}
}

func TestGridThingList(t *testing.T) {
	g := NewGrid(2, 2)
	a := g.AddObject(0, 0, 1, 4)
	b := g.AddProjectile(0, 0, 2, Projectile{Aspect: ProjectileAspect(3), KineticEnergy: 255})
	c := g.AddExplosion(0, 0, 3, Explosion{Type: ExplosionFireball})

	var seen []Thing
	for th := g.FirstThing(0, 0); !th.End(); th = g.NextThing(th) {
		seen = append(seen, th)
	}
	if len(seen) != 3 || seen[0] != a || seen[1] != b || seen[2] != c {
		t.Fatalf("unexpected thing list %v", seen)
	}
	if g.Projectile(b).Aspect != -4 {
		t.Fatalf("expected(-4) != actual(%d)", g.Projectile(b).Aspect)
	}
}

func TestCreatureOrdinalInCell(t *testing.T) {
	g := NewGrid(1, 1)
	g.Creatures[1] = CreatureInfo{Size: SizeQuarter}
	th := g.AddGroup(0, 0, Group{Type: 1, Creatures: 3}, ActiveGroup{Cells: 0 | 2<<2 | 3<<4})
	grp := g.Group(th)

	cases := []struct{ cell, ordinal int }{{0, 1}, {1, 0}, {2, 2}, {3, 3}}
	for _, c := range cases {
		if o := g.CreatureOrdinalInCell(grp, c.cell); o != c.ordinal {
			t.Fatalf("cell %d: expected(%d) != actual(%d)", c.cell, c.ordinal, o)
		}
	}

	single := g.Group(g.AddGroup(0, 0, Group{Type: 1, Creatures: 1}, ActiveGroup{Cells: SingleCentered}))
	if o := g.CreatureOrdinalInCell(single, 2); o != 1 {
		t.Fatalf("expected(1) != actual(%d)", o)
	}
}

func TestEncodeInscription(t *testing.T) {
	expected := []byte{7, 8, TextLineBreak, 0, 26, 1, TextEnd}
	if actual := EncodeInscription("HI", "a b"); !bytes.Equal(actual, expected) {
		t.Fatalf("expected(%v) != actual(%v)", expected, actual)
	}
}
