package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/32bitkid/dm"
	"github.com/32bitkid/dm/dungeon"
	"github.com/32bitkid/dm/render"
	"go.uber.org/zap"
)

func TestParseScene(t *testing.T) {
	sc, err := parseScene(strings.NewReader(demoScene))
	if err != nil {
		t.Fatal(err)
	}
	if sc.x != 4 || sc.y != 6 || sc.dir != dungeon.North {
		t.Fatalf("unexpected party at (%d,%d) %v", sc.x, sc.y, sc.dir)
	}

	tests := []struct {
		x, y int
		e    dungeon.Element
	}{
		{0, 0, dungeon.Wall},
		{4, 2, dungeon.Door},
		{2, 4, dungeon.Pit},
		{6, 4, dungeon.Teleporter},
		{2, 6, dungeon.Stairs},
		{1, 1, dungeon.Wall},
		{3, 1, dungeon.Corridor},
	}
	for _, tt := range tests {
		if e := sc.grid.Square(tt.x, tt.y).Element; e != tt.e {
			t.Errorf("(%d,%d): expected(%v) != actual(%v)", tt.x, tt.y, tt.e, e)
		}
	}
	if sc.grid.Square(1, 1).WallOrnaments[dungeon.South] != sceneAlcove {
		t.Error("expected an alcove")
	}
	if sc.grid.FirstThing(3, 1).End() {
		t.Error("expected objects")
	}
}

func TestParseSceneErrors(t *testing.T) {
	for _, s := range []string{"", "###\n#.#\n###", "#?@#"} {
		if _, err := parseScene(strings.NewReader(s)); err == nil {
			t.Errorf("%q: expected an error", s)
		}
	}
}

func TestSceneStep(t *testing.T) {
	sc, err := parseScene(strings.NewReader("#####\n#.#.#\n#.@.#\n#####"))
	if err != nil {
		t.Fatal(err)
	}
	if sc.step(1, 0) {
		t.Fatal("walked into a wall")
	}
	if !sc.step(0, -1) || sc.x != 1 || sc.y != 2 {
		t.Fatalf("expected a step left to (1,2), at (%d,%d)", sc.x, sc.y)
	}
	sc.turn(true)
	if sc.dir != dungeon.East || !sc.step(1, 0) || sc.x != 2 {
		t.Fatalf("expected a step east to (2,2), at (%d,%d) %v", sc.x, sc.y, sc.dir)
	}
}

func writeSynthetic(t *testing.T) string {
	t.Helper()
	payloads, err := syntheticItems()
	if err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	if err := dm.WriteGraphics(&buf, payloads); err != nil {
		t.Fatal(err)
	}
	fn := filepath.Join(t.TempDir(), "graphics.dat")
	if err := os.WriteFile(fn, buf.Bytes(), 0o644); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestSyntheticGraphicsMatchRenderer(t *testing.T) {
	gfx, err := (&dm.Root{Path: writeSynthetic(t)}).Load()
	if err != nil {
		t.Fatal(err)
	}
	for _, i := range []int{41, 77, 360, 446} {
		w, h, _ := render.NativeSize(i)
		if b := gfx.Native(i); b.Width != w || b.Height != h {
			t.Errorf("item %d: expected(%dx%d) != actual(%dx%d)", i, w, h, b.Width, b.Height)
		}
	}
}

func TestStatsWalkEverySquare(t *testing.T) {
	var events []render.Event
	sf := sceneFlags{graphics: writeSynthetic(t)}
	s, err := sf.open(zap.NewNop(), func(e render.Event) { events = append(events, e) })
	if err != nil {
		t.Fatal(err)
	}

	st := collectStats(s, &events)
	open := 0
	for _, sq := range s.scene.grid.Squares {
		if sq.Element != dungeon.Wall {
			open++
		}
	}
	if st.frames != open*4 {
		t.Fatalf("expected(%d) != actual(%d)", open*4, st.frames)
	}
	if st.byOp[render.OpWall] == 0 || st.byOp[render.OpCreature] == 0 || st.byOp[render.OpDoor] == 0 {
		t.Errorf("expected walls, creatures and doors: %v", st.byOp)
	}
	if st.cached == 0 {
		t.Error("expected derived bitmaps to be cached")
	}

	var buf bytes.Buffer
	if err := st.print(&buf, 4, 10); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "bitmaps drawn per frame") {
		t.Errorf("unexpected output %q", buf.String())
	}
}
