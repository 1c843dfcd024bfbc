package render

// Cell is one terminal cell: a rune drawn in Fg over Bg
// Rune 0 renders as a space
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
}

// Marker runes for shapes too small to rasterize at terminal resolution
const (
	RuneStroke   = '·'
	RuneCircle   = '●'
	RuneSquare   = '■'
	RuneTriangle = '▲'
)

// DefaultBgRGB is the frame clear color
var DefaultBgRGB = RGBWhite

var emptyCell = Cell{Rune: 0, Fg: RGBBlack, Bg: DefaultBgRGB}
