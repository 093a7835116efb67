// Package cache memoizes the scaled, flipped and recoloured variants of
// native bitmaps in a fixed table of numbered slots.
package cache

import (
	"github.com/32bitkid/dm/blit"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Slots is the size of the derived bitmap table.
const Slots = 730

type Options struct {
	// AlwaysCold makes Has report every slot as empty, so callers
	// recompute each variant on every frame. Get and Put still work.
	AlwaysCold bool

	Logger *zap.Logger
}

type Derived struct {
	slots      [Slots]*blit.Bitmap
	alwaysCold bool
	log        *zap.Logger
}

func New(options ...Options) *Derived {
	d := &Derived{log: zap.NewNop()}
	for _, o := range options {
		d.alwaysCold = d.alwaysCold || o.AlwaysCold
		if o.Logger != nil {
			d.log = o.Logger
		}
	}
	return d
}

func check(index int) {
	if index < 0 || index >= Slots {
		panic(errors.Errorf("derived bitmap index %d out of range [0,%d)", index, Slots))
	}
}

// Has reports whether slot index holds a bitmap.
func (d *Derived) Has(index int) bool {
	check(index)
	if d.alwaysCold {
		return false
	}
	return d.slots[index] != nil
}

func (d *Derived) Get(index int) (*blit.Bitmap, bool) {
	check(index)
	b := d.slots[index]
	return b, b != nil
}

func (d *Derived) Put(index int, b *blit.Bitmap) {
	check(index)
	d.slots[index] = b
	d.log.Debug("derived bitmap stored",
		zap.Int("index", index),
		zap.Int("width", b.Width),
		zap.Int("height", b.Height),
	)
}

// Release empties slot index.
func (d *Derived) Release(index int) {
	check(index)
	d.slots[index] = nil
}

// Reset empties every slot.
func (d *Derived) Reset() {
	for i := range d.slots {
		d.slots[i] = nil
	}
}

// Len counts populated slots.
func (d *Derived) Len() int {
	n := 0
	for _, b := range d.slots {
		if b != nil {
			n++
		}
	}
	return n
}

// Load returns the bitmap in slot index, calling build and storing its
// result when the slot is empty or the cache is cold.
func (d *Derived) Load(index int, build func() *blit.Bitmap) *blit.Bitmap {
	if d.Has(index) {
		return d.slots[index]
	}
	b := build()
	d.Put(index, b)
	return b
}
