// Package shape holds the shape hierarchy used as the input of the
// abstract class to interface refactoring.
package shape

import (
	"fmt"
	"io"
	"os"
)

// DefaultCoord is the initial value of both coordinates of every shape.
const DefaultCoord = 12

// Shape is implemented by every concrete shape.
type Shape interface {
	Area()
	Center() []int
}

// Test declares the center capability on its own. No shape in this package
// is declared against it.
type Test interface {
	Center() []int
}

// Base carries the state shared by all shapes.
type Base struct {
	X int
	Y int
}

// NewBase returns a Base with both coordinates set to DefaultCoord.
func NewBase() Base {
	return Base{X: DefaultCoord, Y: DefaultCoord}
}

// Circle is the only concrete Shape.
type Circle struct {
	Base
	out io.Writer
}

// NewCircle returns a circle printing to out, or to stdout when out is nil.
func NewCircle(out io.Writer) *Circle {
	return &Circle{Base: NewBase(), out: out}
}

// Area writes "area".
func (c *Circle) Area() {
	w := c.out
	if w == nil {
		w = os.Stdout
	}
	fmt.Fprint(w, "area")
}

// Center always returns the origin, whatever X and Y hold.
func (c *Circle) Center() []int {
	return []int{0, 0}
}
