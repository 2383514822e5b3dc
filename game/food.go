package game

import (
	"golang.org/x/exp/rand"
)

// Food is a single grid aligned cell. Relocation does not avoid the snake, so
// food can land under the body.
type Food struct {
	pos        Point
	resolution int
	width      int
	height     int
	rng        *rand.Rand
}

func NewFood(width, height, resolution int, rng *rand.Rand) *Food {
	f := &Food{
		resolution: resolution,
		width:      width,
		height:     height,
		rng:        rng,
	}
	f.Relocate()
	return f
}

// Relocate picks an independent uniformly random multiple of the resolution
// in [0, dimension) for each axis.
func (f *Food) Relocate() {
	f.pos = Point{
		X: f.randomCell(f.width),
		Y: f.randomCell(f.height),
	}
}

func (f *Food) randomCell(dimension int) int {
	cells := (dimension + f.resolution - 1) / f.resolution
	return f.rng.Intn(cells) * f.resolution
}

func (f *Food) Position() Point {
	return f.pos
}

// Place moves the food to p without any grid check.
func (f *Food) Place(p Point) {
	f.pos = p
}

func (f *Food) Resolution() int {
	return f.resolution
}
