package pdf

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"
	"testing"

	"go-pdftools/internal/pages"
	"go-pdftools/internal/testpdf"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

func reader(b []byte) io.ReadSeeker { return bytes.NewReader(b) }

func inspect(t *testing.T, b []byte) *Info {
	t.Helper()
	info, err := Inspect(reader(b), Options{})
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	return info
}

// sized returns a document whose page i is (i+1)*100 points square, so
// page order can be read back from the page dimensions.
func sized(n int) []byte {
	pp := make([]testpdf.Page, n)
	for i := range pp {
		pp[i] = testpdf.Page{Width: float64(i+1) * 100, Height: float64(i+1) * 100}
	}
	return testpdf.Build(testpdf.Doc{Pages: pp})
}

func widths(info *Info) []float64 {
	out := make([]float64, len(info.Dimensions))
	for i, d := range info.Dimensions {
		out[i] = d.Width
	}
	return out
}

var within = cmpopts.EquateApprox(0, 0.01)

func TestRead(t *testing.T) {
	doc, err := Read(reader(testpdf.A4(3)), Options{})
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if doc.PageCount() != 3 {
		t.Errorf("PageCount = %d, want 3", doc.PageCount())
	}
	if _, err := Read(reader([]byte("%PDF-1.7 not really")), Options{}); !errors.Is(err, ErrInvalidPDF) {
		t.Errorf("Read of a broken file: %v, want ErrInvalidPDF", err)
	}
}

func TestEncryptedInput(t *testing.T) {
	locked, err := testpdf.Encrypt(testpdf.A4(3), "secret")
	if err != nil {
		t.Fatalf("Encrypt: %v", err)
	}

	if _, err := Inspect(reader(locked), Options{}); !errors.Is(err, pdfcpu.ErrWrongPassword) {
		t.Errorf("Inspect without password: %v, want ErrWrongPassword", err)
	}
	if _, err := Inspect(reader(locked), Options{Password: "wrong"}); !errors.Is(err, pdfcpu.ErrWrongPassword) {
		t.Errorf("Inspect with a wrong password: %v, want ErrWrongPassword", err)
	}

	opts := Options{Password: "secret"}
	info, err := Inspect(reader(locked), opts)
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if info.PageCount != 3 {
		t.Errorf("PageCount = %d, want 3", info.PageCount)
	}
	if !info.Security.IsEncrypted || info.Security.KeyLength != 256 {
		t.Errorf("Security = %+v, want AES-256", info.Security)
	}

	out, err := SelectPages(reader(locked), []int{2, 0}, opts)
	if err != nil {
		t.Fatalf("SelectPages: %v", err)
	}
	doc, err := Read(reader(out), Options{})
	if err != nil {
		t.Fatalf("Read of the selection: %v", err)
	}
	if doc.PageCount() != 2 {
		t.Errorf("PageCount = %d, want 2", doc.PageCount())
	}
}

func TestReadAll(t *testing.T) {
	srcs := []Source{
		{Name: "a.pdf", R: reader(testpdf.A4(1))},
		{Name: "broken.pdf", R: reader([]byte("garbage"))},
		{Name: "c.pdf", R: reader(testpdf.A4(2))},
	}
	docs, invalid := ReadAll(context.Background(), srcs, Options{})
	if diff := cmp.Diff([]int{1}, invalid); diff != "" {
		t.Errorf("invalid mismatch (-want +got):\n%s", diff)
	}
	if docs[1] != nil || docs[0].PageCount() != 1 || docs[2].PageCount() != 2 {
		t.Errorf("unexpected documents: %+v", docs)
	}
}

func TestMerge(t *testing.T) {
	srcs := []Source{
		{Name: "first.pdf", R: reader(sized(2))},
		{Name: "second.pdf", R: reader(sized(1))},
	}

	t.Run("plain", func(t *testing.T) {
		out, err := Merge(srcs, nil, MergeOptions{})
		if err != nil {
			t.Fatalf("Merge: %v", err)
		}
		if diff := cmp.Diff([]float64{100, 200, 100}, widths(inspect(t, out)), within); diff != "" {
			t.Errorf("page order mismatch (-want +got):\n%s", diff)
		}
		if hasOutlines(t, out) {
			t.Error("merged document without TOC has outlines")
		}
	})

	t.Run("table of contents", func(t *testing.T) {
		out, err := Merge(srcs, []int{2, 1}, MergeOptions{GenerateTOC: true})
		if err != nil {
			t.Fatalf("Merge: %v", err)
		}
		if n := inspect(t, out).PageCount; n != 3 {
			t.Errorf("PageCount = %d, want 3", n)
		}
		if !hasOutlines(t, out) {
			t.Error("merged document with TOC has no outlines")
		}
	})

	t.Run("no files", func(t *testing.T) {
		if _, err := Merge(nil, nil, MergeOptions{}); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("error = %v, want ErrInvalidArgument", err)
		}
	})
}

func hasOutlines(t *testing.T, b []byte) bool {
	t.Helper()
	ctx, err := readContext(reader(b), Options{})
	if err != nil {
		t.Fatalf("readContext: %v", err)
	}
	root, err := ctx.Catalog()
	if err != nil {
		t.Fatalf("Catalog: %v", err)
	}
	_, found := root.Find("Outlines")
	return found
}

func TestSelectPages(t *testing.T) {
	out, err := SelectPages(reader(sized(3)), []int{2, 0, 0}, Options{})
	if err != nil {
		t.Fatalf("SelectPages: %v", err)
	}
	if diff := cmp.Diff([]float64{300, 100, 100}, widths(inspect(t, out)), within); diff != "" {
		t.Errorf("page order mismatch (-want +got):\n%s", diff)
	}

	if _, err := SelectPages(reader(sized(3)), nil, Options{}); !errors.Is(err, ErrNoPages) {
		t.Errorf("empty selection error = %v, want ErrNoPages", err)
	}
	if _, err := SelectPages(reader(sized(3)), []int{3}, Options{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("out of range error = %v, want ErrInvalidArgument", err)
	}
}

func TestSplit(t *testing.T) {
	parts, err := Split(reader(sized(3)), [][]int{{0}, {1, 2}}, Options{})
	if err != nil {
		t.Fatalf("Split: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("got %d parts, want 2", len(parts))
	}
	if diff := cmp.Diff([]float64{200, 300}, widths(inspect(t, parts[1])), within); diff != "" {
		t.Errorf("second part mismatch (-want +got):\n%s", diff)
	}
}

func TestRotate(t *testing.T) {
	out, err := Rotate(reader(testpdf.A4(2)), 90, []int{1}, Options{})
	if err != nil {
		t.Fatalf("Rotate: %v", err)
	}
	ctx, err := readContext(reader(out), Options{})
	if err != nil {
		t.Fatalf("readContext: %v", err)
	}
	for pageNr, want := range map[int]int{1: 0, 2: 90} {
		_, _, inh, err := ctx.PageDict(pageNr, false)
		if err != nil {
			t.Fatalf("PageDict(%d): %v", pageNr, err)
		}
		if inh.Rotate != want {
			t.Errorf("page %d rotation = %d, want %d", pageNr, inh.Rotate, want)
		}
	}

	if _, err := Rotate(reader(testpdf.A4(1)), 45, nil, Options{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("45 degree error = %v, want ErrInvalidArgument", err)
	}
	same, err := Rotate(reader(testpdf.A4(1)), 360, nil, Options{})
	if err != nil {
		t.Fatalf("Rotate 360: %v", err)
	}
	if !bytes.Equal(same, testpdf.A4(1)) {
		t.Error("full turn changed the document")
	}
}

func TestCrop(t *testing.T) {
	out, err := Crop(reader(testpdf.A4(2)), pages.Rect{X: 50, Y: 60, Width: 200, Height: 100}, Options{})
	if err != nil {
		t.Fatalf("Crop: %v", err)
	}
	want := []Dimension{{200, 100}, {200, 100}}
	if diff := cmp.Diff(want, inspect(t, out).Dimensions, within); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}

	if _, err := Crop(reader(testpdf.A4(1)), pages.Rect{Width: 0, Height: 10}, Options{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("zero width error = %v, want ErrInvalidArgument", err)
	}
}

func TestScale(t *testing.T) {
	out, err := Scale(reader(sized(2)), "A4", 0, Options{})
	if err != nil {
		t.Fatalf("Scale: %v", err)
	}
	want := []Dimension{{pages.A4Width, pages.A4Height}, {pages.A4Width, pages.A4Height}}
	if diff := cmp.Diff(want, inspect(t, out).Dimensions, within); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}

	kept, err := Scale(reader(sized(1)), "KEEP", 0.5, Options{})
	if err != nil {
		t.Fatalf("Scale KEEP: %v", err)
	}
	if diff := cmp.Diff([]Dimension{{100, 100}}, inspect(t, kept).Dimensions, within); diff != "" {
		t.Errorf("KEEP dimensions mismatch (-want +got):\n%s", diff)
	}

	if _, err := Scale(reader(sized(1)), "KEEP", 0, Options{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("KEEP without factor error = %v, want ErrInvalidArgument", err)
	}
	if _, err := Scale(reader(sized(1)), "B9", 1, Options{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("unknown size error = %v, want ErrInvalidArgument", err)
	}
}

func TestMultiPageLayout(t *testing.T) {
	grid, err := pages.ResolveGrid("DEFAULT", 4, 0, 0)
	if err != nil {
		t.Fatalf("ResolveGrid: %v", err)
	}
	l, err := pages.NewLayout(grid, pages.LeftRightTopDown, "LANDSCAPE")
	if err != nil {
		t.Fatalf("NewLayout: %v", err)
	}
	src := testpdf.Build(testpdf.Doc{Pages: []testpdf.Page{
		{Width: 595.28, Height: 841.89},
		{Width: 595.28, Height: 841.89, Rotate: 90},
		{Width: 300, Height: 300},
		{Width: 595.28, Height: 841.89, Annots: []string{"Text"}},
		{Width: 595.28, Height: 841.89},
	}})
	out, err := MultiPageLayout(reader(src), l, true, Options{})
	if err != nil {
		t.Fatalf("MultiPageLayout: %v", err)
	}
	info := inspect(t, out)
	want := []Dimension{{pages.A4Height, pages.A4Width}, {pages.A4Height, pages.A4Width}}
	if diff := cmp.Diff(want, info.Dimensions, within); diff != "" {
		t.Errorf("sheet dimensions mismatch (-want +got):\n%s", diff)
	}
	if info.Annotations.AnnotationsCount != 0 {
		t.Errorf("sheets carry %d annotations, want 0", info.Annotations.AnnotationsCount)
	}
}

func TestSplitSections(t *testing.T) {
	parts, err := SplitSections(reader(sized(2)), 1, 1, false, Options{})
	if err != nil {
		t.Fatalf("SplitSections: %v", err)
	}
	if len(parts) != 8 {
		t.Fatalf("got %d sections, want 8", len(parts))
	}
	if diff := cmp.Diff([]Dimension{{100, 100}}, inspect(t, parts[4]).Dimensions, within); diff != "" {
		t.Errorf("section of the second page mismatch (-want +got):\n%s", diff)
	}

	merged, err := SplitSections(reader(sized(1)), 0, 2, true, Options{})
	if err != nil {
		t.Fatalf("SplitSections merge: %v", err)
	}
	if len(merged) != 1 {
		t.Fatalf("got %d documents, want 1", len(merged))
	}
	info := inspect(t, merged[0])
	if info.PageCount != 3 {
		t.Fatalf("PageCount = %d, want 3", info.PageCount)
	}
	if w := info.Dimensions[0].Width; math.Abs(w-100.0/3) > 0.01 {
		t.Errorf("section width = %v, want %v", w, 100.0/3)
	}
}

func TestOverlay(t *testing.T) {
	overlay := testpdf.Build(testpdf.Doc{Pages: testpdf.Pages(2, 595.28, 841.89)})
	for _, fg := range []bool{true, false} {
		out, err := Overlay(reader(testpdf.A4(3)), []io.ReadSeeker{reader(overlay)}, OverlayOptions{
			Mode:       pages.SequentialOverlay,
			Foreground: fg,
		})
		if err != nil {
			t.Fatalf("Overlay(foreground=%v): %v", fg, err)
		}
		if n := inspect(t, out).PageCount; n != 3 {
			t.Errorf("PageCount = %d, want 3", n)
		}
	}

	_, err := Overlay(reader(testpdf.A4(3)), []io.ReadSeeker{reader(overlay)}, OverlayOptions{
		Mode:   pages.FixedRepeatOverlay,
		Counts: []int{1, 2},
	})
	if !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("count mismatch error = %v, want ErrInvalidArgument", err)
	}
}

func TestStampImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 10))
	for x := 0; x < 20; x++ {
		img.Set(x, 5, color.Black)
	}
	path := filepath.Join(t.TempDir(), "stamp.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("encode image: %v", err)
	}
	f.Close()

	out, err := StampImage(reader(testpdf.A4(2)), path, 2, 100, 100, 1, Options{})
	if err != nil {
		t.Fatalf("StampImage: %v", err)
	}
	if n := inspect(t, out).PageCount; n != 2 {
		t.Errorf("PageCount = %d, want 2", n)
	}

	if _, err := StampImage(reader(testpdf.A4(2)), path, 3, 0, 0, 1, Options{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("page out of range error = %v, want ErrInvalidArgument", err)
	}
}

func TestInspect(t *testing.T) {
	src := testpdf.Build(testpdf.Doc{
		Title:     "Quarterly Report",
		Author:    "Finance",
		TextField: "name",
		Pages: []testpdf.Page{
			{Width: 612, Height: 792, Annots: []string{"Text", "Square"}},
			{Width: 300, Height: 400, Annots: []string{"Text"}},
		},
	})
	info := inspect(t, src)

	if info.PageCount != 2 {
		t.Errorf("PageCount = %d, want 2", info.PageCount)
	}
	if info.FileSize != int64(len(src)) {
		t.Errorf("FileSize = %d, want %d", info.FileSize, len(src))
	}
	if info.Properties.Title != "Quarterly Report" || info.Properties.Author != "Finance" {
		t.Errorf("Properties = %+v", info.Properties)
	}
	if diff := cmp.Diff([]Dimension{{612, 792}, {300, 400}}, info.Dimensions, within); diff != "" {
		t.Errorf("dimensions mismatch (-want +got):\n%s", diff)
	}
	if info.Form.FieldCount != 1 || info.Form.HasXFA || info.Form.IsSignaturesExist {
		t.Errorf("Form = %+v, want one plain field", info.Form)
	}
	want := map[string]int{"Text": 2, "Square": 1, "Widget": 1}
	if diff := cmp.Diff(want, info.Annotations.AnnotationTypes); diff != "" {
		t.Errorf("annotation types mismatch (-want +got):\n%s", diff)
	}
	if info.Annotations.AnnotationsCount != 4 {
		t.Errorf("AnnotationsCount = %d, want 4", info.Annotations.AnnotationsCount)
	}
	if diff := cmp.Diff(FontInfo{FontCount: 1, Fonts: []string{"F1"}}, info.Fonts); diff != "" {
		t.Errorf("fonts mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(SecurityInfo{}, info.Security); diff != "" {
		t.Errorf("security mismatch (-want +got):\n%s", diff)
	}
}
