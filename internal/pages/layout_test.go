package pages

import (
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var approx = cmpopts.EquateApprox(0, 1e-9)

func TestResolveGrid(t *testing.T) {
	tests := []struct {
		mode            string
		per, rows, cols int
		want            Grid
	}{
		{"DEFAULT", 2, 0, 0, Grid{Rows: 1, Cols: 2}},
		{"", 3, 0, 0, Grid{Rows: 1, Cols: 3}},
		{"default", 4, 0, 0, Grid{Rows: 2, Cols: 2}},
		{"DEFAULT", 16, 0, 0, Grid{Rows: 4, Cols: 4}},
		{"CUSTOM", 0, 2, 3, Grid{Rows: 2, Cols: 3}},
	}
	for _, tt := range tests {
		got, err := ResolveGrid(tt.mode, tt.per, tt.rows, tt.cols)
		if err != nil {
			t.Fatalf("ResolveGrid(%q, %d, %d, %d): %v", tt.mode, tt.per, tt.rows, tt.cols, err)
		}
		if got != tt.want {
			t.Errorf("ResolveGrid(%q, %d, %d, %d) = %+v, want %+v", tt.mode, tt.per, tt.rows, tt.cols, got, tt.want)
		}
	}
}

func TestResolveGridErrors(t *testing.T) {
	tests := []struct {
		name            string
		mode            string
		per, rows, cols int
	}{
		{"not square", "DEFAULT", 6, 0, 0},
		{"zero", "DEFAULT", 0, 0, 0},
		{"custom zero rows", "CUSTOM", 0, 0, 3},
		{"too many rows", "CUSTOM", 0, 301, 1},
		{"too many cols", "CUSTOM", 0, 1, 301},
		{"too many pages", "DEFAULT", 317 * 317, 0, 0},
		{"unknown mode", "SPIRAL", 4, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ResolveGrid(tt.mode, tt.per, tt.rows, tt.cols); !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("error = %v, want ErrInvalidArgument", err)
			}
		})
	}
}

func TestGridCell(t *testing.T) {
	g := Grid{Rows: 2, Cols: 3}
	tests := []struct {
		order    Order
		slot     int
		row, col int
	}{
		{LeftRightTopDown, 1, 0, 1},
		{LeftRightTopDown, 4, 1, 1},
		{RightLeftTopDown, 0, 0, 2},
		{RightLeftTopDown, 5, 1, 0},
		{TopDownLeftRight, 1, 1, 0},
		{TopDownLeftRight, 2, 0, 1},
		{TopDownRightLeft, 0, 0, 2},
		{TopDownRightLeft, 3, 1, 1},
	}
	for _, tt := range tests {
		row, col := g.Cell(tt.slot, tt.order)
		if row != tt.row || col != tt.col {
			t.Errorf("Cell(%d, %s) = (%d, %d), want (%d, %d)", tt.slot, tt.order, row, col, tt.row, tt.col)
		}
	}
}

func TestParseOrder(t *testing.T) {
	if o, err := ParseOrder(""); err != nil || o != LeftRightTopDown {
		t.Errorf("ParseOrder(\"\") = %q, %v", o, err)
	}
	if o, err := ParseOrder("td_rl"); err != nil || o != TopDownRightLeft {
		t.Errorf("ParseOrder(td_rl) = %q, %v", o, err)
	}
	if _, err := ParseOrder("DIAGONAL"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ParseOrder(DIAGONAL) error = %v, want ErrInvalidArgument", err)
	}
}

func TestLayoutPlace(t *testing.T) {
	l, err := NewLayout(Grid{Rows: 2, Cols: 2}, LeftRightTopDown, "PORTRAIT")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	cw, ch := A4Width/2, A4Height/2

	got := l.Place(0, A4Width, A4Height)
	want := Placement{Sheet: 0, Scale: 0.5, X: 0, Y: ch, Cell: Rect{X: 0, Y: ch, Width: cw, Height: ch}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Place(0) mismatch (-want +got):\n%s", diff)
	}

	got = l.Place(7, A4Width, A4Height)
	want = Placement{Sheet: 1, Scale: 0.5, X: cw, Y: 0, Cell: Rect{X: cw, Y: 0, Width: cw, Height: ch}}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Place(7) mismatch (-want +got):\n%s", diff)
	}

	// A wide page is limited by the cell width and centered vertically.
	got = l.Place(0, 2*cw, ch/2)
	if math.Abs(got.Scale-0.5) > 1e-9 {
		t.Errorf("wide page scale = %v, want 0.5", got.Scale)
	}
	wantY := A4Height - (ch - (ch-ch/4)/2)
	if math.Abs(got.Y-wantY) > 1e-9 || math.Abs(got.X) > 1e-9 {
		t.Errorf("wide page origin = (%v, %v), want (0, %v)", got.X, got.Y, wantY)
	}

	if n := l.Sheets(5); n != 2 {
		t.Errorf("Sheets(5) = %d, want 2", n)
	}
}

func TestNewLayoutOrientation(t *testing.T) {
	l, err := NewLayout(Grid{Rows: 1, Cols: 2}, LeftRightTopDown, "landscape")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	if l.SheetW != A4Height || l.SheetH != A4Width {
		t.Errorf("landscape sheet = %vx%v, want %vx%v", l.SheetW, l.SheetH, A4Height, A4Width)
	}
	if _, err := NewLayout(Grid{Rows: 1, Cols: 2}, LeftRightTopDown, "SIDEWAYS"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("bad orientation error = %v, want ErrInvalidArgument", err)
	}
}

func TestSections(t *testing.T) {
	got, err := Sections(Rect{X: 0, Y: 0, Width: 100, Height: 200}, 1, 1)
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	want := []Rect{
		{X: 0, Y: 100, Width: 50, Height: 100},
		{X: 50, Y: 100, Width: 50, Height: 100},
		{X: 0, Y: 0, Width: 50, Height: 100},
		{X: 50, Y: 0, Width: 50, Height: 100},
	}
	if diff := cmp.Diff(want, got, approx); diff != "" {
		t.Errorf("Sections mismatch (-want +got):\n%s", diff)
	}

	got, err = Sections(Rect{X: 10, Y: 20, Width: 90, Height: 30}, 0, 2)
	if err != nil {
		t.Fatalf("Sections: %v", err)
	}
	if len(got) != 3 || got[2].X != 70 || got[2].Y != 20 {
		t.Errorf("Sections with offset box = %+v", got)
	}

	if _, err := Sections(Rect{Width: 1, Height: 1}, -1, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative divisions error = %v, want ErrInvalidArgument", err)
	}
}

func TestFitAndPageSize(t *testing.T) {
	scale, dx, dy := Fit(100, 200, 200, 200)
	if scale != 1 || dx != 50 || dy != 0 {
		t.Errorf("Fit = (%v, %v, %v), want (1, 50, 0)", scale, dx, dy)
	}

	w, h, keep, err := PageSize("letter")
	if err != nil || keep || w != 612 || h != 792 {
		t.Errorf("PageSize(letter) = %v, %v, %v, %v", w, h, keep, err)
	}
	if _, _, keep, err := PageSize("KEEP"); err != nil || !keep {
		t.Errorf("PageSize(KEEP) keep = %v, err = %v", keep, err)
	}
	if _, _, _, err := PageSize("B7"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("PageSize(B7) error = %v, want ErrInvalidArgument", err)
	}
}
