package pages

import (
	"fmt"
	"math"
	"strings"
)

// A4 sheet size in points.
const (
	A4Width  = 595.27563
	A4Height = 841.8898
)

const (
	maxPagesPerSheet = 100000
	maxRows          = 300
	maxCols          = 300
)

// Rect is an axis aligned rectangle, origin lower-left, in points.
type Rect struct {
	X, Y, Width, Height float64
}

// Grid is the rows x cols arrangement of source pages on one sheet.
type Grid struct {
	Rows, Cols int
}

// PerSheet is the number of source pages one sheet holds.
func (g Grid) PerSheet() int { return g.Rows * g.Cols }

// ResolveGrid validates an N-up request. In DEFAULT mode pagesPerSheet
// must be 2, 3 (laid out in one row) or a perfect square. CUSTOM mode
// takes rows and cols directly.
func ResolveGrid(mode string, pagesPerSheet, rows, cols int) (Grid, error) {
	var g Grid
	switch strings.ToUpper(strings.TrimSpace(mode)) {
	case "", "DEFAULT":
		root := int(math.Sqrt(float64(pagesPerSheet)))
		switch {
		case pagesPerSheet == 2 || pagesPerSheet == 3:
			g = Grid{Rows: 1, Cols: pagesPerSheet}
		case pagesPerSheet > 0 && root*root == pagesPerSheet:
			g = Grid{Rows: root, Cols: root}
		default:
			return Grid{}, fmt.Errorf("%w: pagesPerSheet must be 2, 3 or a perfect square, got %d", ErrInvalidArgument, pagesPerSheet)
		}
	case "CUSTOM":
		if rows <= 0 || cols <= 0 {
			return Grid{}, fmt.Errorf("%w: rows and cols must be strictly positive", ErrInvalidArgument)
		}
		g = Grid{Rows: rows, Cols: cols}
	default:
		return Grid{}, fmt.Errorf("%w: mode must be DEFAULT or CUSTOM, got %q", ErrInvalidArgument, mode)
	}

	switch {
	case g.PerSheet() > maxPagesPerSheet:
		return Grid{}, fmt.Errorf("%w: pagesPerSheet must be less than %d", ErrInvalidArgument, maxPagesPerSheet)
	case g.Cols > maxCols:
		return Grid{}, fmt.Errorf("%w: cols must be less than %d", ErrInvalidArgument, maxCols)
	case g.Rows > maxRows:
		return Grid{}, fmt.Errorf("%w: rows must be less than %d", ErrInvalidArgument, maxRows)
	}
	return g, nil
}

// Order is the direction in which cells of a sheet are filled.
type Order string

const (
	LeftRightTopDown Order = "LR_TD"
	RightLeftTopDown Order = "RL_TD"
	TopDownLeftRight Order = "TD_LR"
	TopDownRightLeft Order = "TD_RL"
)

// ParseOrder accepts the order names case-insensitively; empty means LR_TD.
func ParseOrder(s string) (Order, error) {
	switch o := Order(strings.ToUpper(strings.TrimSpace(s))); o {
	case "":
		return LeftRightTopDown, nil
	case LeftRightTopDown, RightLeftTopDown, TopDownLeftRight, TopDownRightLeft:
		return o, nil
	}
	return "", fmt.Errorf("%w: pageOrder must be one of LR_TD, RL_TD, TD_LR, TD_RL, got %q", ErrInvalidArgument, s)
}

// Cell maps a slot on the sheet to its row and column. Row 0 is the top.
func (g Grid) Cell(slot int, o Order) (row, col int) {
	switch o {
	case RightLeftTopDown:
		return slot / g.Cols, g.Cols - 1 - slot%g.Cols
	case TopDownLeftRight:
		return slot % g.Rows, slot / g.Rows
	case TopDownRightLeft:
		return slot % g.Rows, g.Cols - 1 - slot/g.Rows
	default:
		return slot / g.Cols, slot % g.Cols
	}
}

// Layout places source pages onto sheets.
type Layout struct {
	Grid
	Order  Order
	SheetW float64
	SheetH float64
}

// NewLayout builds an A4 layout; landscape swaps the sheet sides.
func NewLayout(g Grid, o Order, orientation string) (Layout, error) {
	l := Layout{Grid: g, Order: o, SheetW: A4Width, SheetH: A4Height}
	switch strings.ToUpper(strings.TrimSpace(orientation)) {
	case "", "PORTRAIT":
	case "LANDSCAPE":
		l.SheetW, l.SheetH = A4Height, A4Width
	default:
		return Layout{}, fmt.Errorf("%w: orientation must be PORTRAIT or LANDSCAPE, got %q", ErrInvalidArgument, orientation)
	}
	return l, nil
}

// Sheets is the number of sheets needed for total source pages.
func (l Layout) Sheets(total int) int {
	per := l.PerSheet()
	return (total + per - 1) / per
}

// Placement is where one source page lands on its sheet.
type Placement struct {
	Sheet int     // 0-based sheet index
	Scale float64 // uniform scale applied to the source page
	X, Y  float64 // lower-left corner of the scaled page
	Cell  Rect
}

// Place positions the 0-based source page i of size srcW x srcH. The page
// is scaled uniformly to fit its cell and centered inside it.
func (l Layout) Place(i int, srcW, srcH float64) Placement {
	per := l.PerSheet()
	row, col := l.Cell(i%per, l.Order)
	cw := l.SheetW / float64(l.Cols)
	ch := l.SheetH / float64(l.Rows)

	scale := math.Min(cw/srcW, ch/srcH)
	return Placement{
		Sheet: i / per,
		Scale: scale,
		X:     float64(col)*cw + (cw-srcW*scale)/2,
		Y:     l.SheetH - (float64(row+1)*ch - (ch-srcH*scale)/2),
		Cell: Rect{
			X:      float64(col) * cw,
			Y:      l.SheetH - float64(row+1)*ch,
			Width:  cw,
			Height: ch,
		},
	}
}
