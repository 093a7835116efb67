package cache

import (
	"bytes"
	"testing"

	"github.com/32bitkid/dm/blit"
)

func TestGetAfterPut(t *testing.T) {
	d := New()
	b := &blit.Bitmap{Width: 2, Height: 2, Pix: []byte{1, 2, 3, 4}}
	d.Put(42, b)

	got, ok := d.Get(42)
	if !ok || !d.Has(42) {
		t.Fatal("expected slot 42 to be populated")
	}
	if !bytes.Equal(got.Pix, []byte{1, 2, 3, 4}) {
		t.Fatalf("expected(%v) != actual(%v)", b.Pix, got.Pix)
	}

	d.Release(42)
	if _, ok := d.Get(42); ok || d.Has(42) {
		t.Fatal("expected slot 42 to be empty after release")
	}
}

func TestLoad(t *testing.T) {
	for _, cold := range []bool{false, true} {
		d := New(Options{AlwaysCold: cold})
		builds := 0
		build := func() *blit.Bitmap {
			builds++
			return blit.New(8, 1)
		}
		d.Load(Viewport, build)
		d.Load(Viewport, build)

		expected := 1
		if cold {
			expected = 2
		}
		if builds != expected {
			t.Errorf("cold=%v: expected(%d) != actual(%d)", cold, expected, builds)
		}
		if d.Len() != 1 {
			t.Errorf("cold=%v: expected(1) != actual(%d)", cold, d.Len())
		}
	}
}

func TestReset(t *testing.T) {
	d := New()
	for i := 0; i < Slots; i += 7 {
		d.Put(i, blit.New(1, 1))
	}
	d.Reset()
	if d.Len() != 0 {
		t.Fatalf("expected(0) != actual(%d)", d.Len())
	}
}

func TestOutOfRangePanics(t *testing.T) {
	for _, i := range []int{-1, Slots} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%d: expected panic", i)
				}
			}()
			New().Get(i)
		}()
	}
}

func TestIndexLayout(t *testing.T) {
	cases := []struct{ actual, expected int }{
		{WallOrnament(0, 0), 4},
		{WallOrnament(15, 3), 67},
		{DoorOrnament(0, false), 68},
		{DoorOrnament(16, true), 101},
		{DoorButton(0, false), 102},
		{DoorButton(0, true), 103},
		{Object(0, 0), 104},
		{Projectile(0, 0, 0), 282},
		{Projectile(10, 2, 5), 309},
		{Explosion(0, 4), 438},
		{Explosion(3, 30), 493},
	}
	for i, c := range cases {
		if c.actual != c.expected {
			t.Errorf("%d: expected(%d) != actual(%d)", i, c.expected, c.actual)
		}
	}
}
