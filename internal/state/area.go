package state

// Area represents a rectangular region of the canvas.
type Area struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

// AreaOf spans the two points in any order.
func AreaOf(a, b Point) Area {
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Area{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// AreaAround is a width x height area centred on c.
func AreaAround(c Point, width, height float32) Area {
	return Area{X: c.X - width/2, Y: c.Y - height/2, Width: width, Height: height}
}

func (a Area) Contains(p Point) bool {
	return p.X >= a.X && p.X <= a.X+a.Width &&
		p.Y >= a.Y && p.Y <= a.Y+a.Height
}

func (a Area) Overlaps(b Area) bool {
	return !(a.X+a.Width < b.X || b.X+b.Width < a.X ||
		a.Y+a.Height < b.Y || b.Y+b.Height < a.Y)
}

// Inset shrinks the area by d on every side; negative d grows it.
func (a Area) Inset(d float32) Area {
	return Area{X: a.X + d, Y: a.Y + d, Width: a.Width - 2*d, Height: a.Height - 2*d}
}

func (a Area) Center() Point {
	return Point{X: a.X + a.Width/2, Y: a.Y + a.Height/2}
}
