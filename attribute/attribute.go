// Package attribute defines the closed attribute enumerations a puzzle is built from
package attribute

import "fmt"

// Shape of a token glyph
type Shape uint8

const (
	ShapeCircle Shape = iota
	ShapeSquare
	ShapeTriangle
)

// Color of a token glyph
type Color uint8

const (
	ColorYellow Color = iota
	ColorBlue
	ColorPurple
)

// Size of a token glyph
type Size uint8

const (
	SizeSmall Size = iota
	SizeMedium
	SizeLarge
)

// Cardinality is the number of values in every attribute domain
const Cardinality = 3

// Shapes lists every shape in declaration order
var Shapes = [Cardinality]Shape{ShapeCircle, ShapeSquare, ShapeTriangle}

// Colors lists every color in declaration order
var Colors = [Cardinality]Color{ColorYellow, ColorBlue, ColorPurple}

// Sizes lists every size in declaration order
var Sizes = [Cardinality]Size{SizeSmall, SizeMedium, SizeLarge}

func (s Shape) String() string {
	switch s {
	case ShapeCircle:
		return "circle"
	case ShapeSquare:
		return "square"
	case ShapeTriangle:
		return "triangle"
	}
	return fmt.Sprintf("shape(%d)", uint8(s))
}

func (c Color) String() string {
	switch c {
	case ColorYellow:
		return "yellow"
	case ColorBlue:
		return "blue"
	case ColorPurple:
		return "purple"
	}
	return fmt.Sprintf("color(%d)", uint8(c))
}

func (s Size) String() string {
	switch s {
	case SizeSmall:
		return "small"
	case SizeMedium:
		return "medium"
	case SizeLarge:
		return "large"
	}
	return fmt.Sprintf("size(%d)", uint8(s))
}

// Target is one value from each attribute domain
// Comparable with ==, equality is component-wise
type Target struct {
	Shape Shape
	Color Color
	Size  Size
}

func (t Target) String() string {
	return t.Size.String() + " " + t.Color.String() + " " + t.Shape.String()
}
