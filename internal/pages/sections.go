package pages

import (
	"fmt"
	"math"
	"strings"
)

const maxDivisions = 100

// Sections cuts box into (horizontal+1) rows and (vertical+1) columns.
// The result is ordered top-left first, left to right, then downwards.
func Sections(box Rect, horizontal, vertical int) ([]Rect, error) {
	if horizontal < 0 || vertical < 0 {
		return nil, fmt.Errorf("%w: divisions must not be negative", ErrInvalidArgument)
	}
	if horizontal > maxDivisions || vertical > maxDivisions {
		return nil, fmt.Errorf("%w: divisions must be at most %d", ErrInvalidArgument, maxDivisions)
	}
	rows, cols := horizontal+1, vertical+1
	w := box.Width / float64(cols)
	h := box.Height / float64(rows)

	out := make([]Rect, 0, rows*cols)
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			out = append(out, Rect{
				X:      box.X + float64(c)*w,
				Y:      box.Y + box.Height - float64(r+1)*h,
				Width:  w,
				Height: h,
			})
		}
	}
	return out, nil
}

// PageSizes are the named target sizes for scaling, in points.
var PageSizes = map[string][2]float64{
	"A0":      {2383.937, 3370.3938},
	"A1":      {1683.7795, 2383.937},
	"A2":      {1190.5513, 1683.7795},
	"A3":      {841.8898, 1190.5513},
	"A4":      {A4Width, A4Height},
	"A5":      {419.52756, 595.27563},
	"A6":      {297.63782, 419.52756},
	"LETTER":  {612, 792},
	"LEGAL":   {612, 1008},
	"TABLOID": {792, 1224},
}

// PageSize looks up a named size; "KEEP" reports ok with a zero size.
func PageSize(name string) (w, h float64, keep bool, err error) {
	name = strings.ToUpper(strings.TrimSpace(name))
	if name == "KEEP" {
		return 0, 0, true, nil
	}
	sz, ok := PageSizes[name]
	if !ok {
		return 0, 0, false, fmt.Errorf("%w: unknown page size %q", ErrInvalidArgument, name)
	}
	return sz[0], sz[1], false, nil
}

// Fit returns the uniform scale and offset that center a srcW x srcH
// page on a dstW x dstH page.
func Fit(srcW, srcH, dstW, dstH float64) (scale, dx, dy float64) {
	scale = math.Min(dstW/srcW, dstH/srcH)
	dx = (dstW - srcW*scale) / 2
	dy = (dstH - srcH*scale) / 2
	return scale, dx, dy
}
