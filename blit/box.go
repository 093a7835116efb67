package blit

// Box is a rectangle with inclusive edges on all four sides.
type Box struct {
	X1, X2 int
	Y1, Y2 int
}

func (b Box) Width() int  { return b.X2 - b.X1 + 1 }
func (b Box) Height() int { return b.Y2 - b.Y1 + 1 }

func (b Box) Empty() bool { return b.X2 < b.X1 || b.Y2 < b.Y1 }

func (b Box) Contains(x, y int) bool {
	return x >= b.X1 && x <= b.X2 && y >= b.Y1 && y <= b.Y2
}

// Union returns the smallest box holding both b and o.
func (b Box) Union(o Box) Box {
	if b.Empty() {
		return o
	}
	if o.Empty() {
		return b
	}
	return Box{
		X1: min(b.X1, o.X1),
		X2: max(b.X2, o.X2),
		Y1: min(b.Y1, o.Y1),
		Y2: max(b.Y2, o.Y2),
	}
}

// Clip returns the intersection of b and o.
func (b Box) Clip(o Box) Box {
	return Box{
		X1: max(b.X1, o.X1),
		X2: min(b.X2, o.X2),
		Y1: max(b.Y1, o.Y1),
		Y2: min(b.Y2, o.Y2),
	}
}
