package pdf

import (
	"bytes"
	"fmt"
	"io"

	"go-pdftools/internal/pages"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const borderWidth = 1.5

// Crop sets the MediaBox and CropBox of every page to r, in default user
// space. Content outside r stays in the file but is no longer shown.
func Crop(rs io.ReadSeeker, r pages.Rect, opts Options) ([]byte, error) {
	if r.Width <= 0 || r.Height <= 0 {
		return nil, fmt.Errorf("%w: crop width and height must be positive", ErrInvalidArgument)
	}
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}
	box := types.RectForWidthAndHeight(r.X, r.Y, r.Width, r.Height)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		d, _, _, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return nil, err
		}
		d["MediaBox"] = box.Array()
		d["CropBox"] = box.Array()
	}
	return writeContext(ctx)
}

// Scale resizes every page to the named page size and fits its content,
// centered, with a uniform scale. For "KEEP" the page size is unchanged
// and the content is scaled by factor around the page center.
func Scale(rs io.ReadSeeker, size string, factor float64, opts Options) ([]byte, error) {
	tw, th, keep, err := pages.PageSize(size)
	if err != nil {
		return nil, err
	}
	if keep && factor <= 0 {
		return nil, fmt.Errorf("%w: scale factor must be positive", ErrInvalidArgument)
	}
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}

	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		d, _, inh, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return nil, err
		}
		box, err := pageBox(inh, pageNr)
		if err != nil {
			return nil, err
		}
		content, err := ctx.PageContent(d, pageNr)
		if err != nil {
			return nil, err
		}

		sw, sh := box.Width(), box.Height()
		dw, dh := tw, th
		if keep {
			dw, dh = sw, sh
		} else if inh.Rotate%180 != 0 {
			// the page is shown sideways, so fit against the turned target
			dw, dh = th, tw
		}

		var scale, dx, dy float64
		if keep {
			scale = factor
			dx, dy = (dw-sw*factor)/2, (dh-sh*factor)/2
		} else {
			scale, dx, dy = pages.Fit(sw, sh, dw, dh)
		}

		var buf bytes.Buffer
		fmt.Fprintf(&buf, "q %.5f 0 0 %.5f %.5f %.5f cm 1 0 0 1 %.5f %.5f cm ", scale, scale, dx, dy, -box.LL.X, -box.LL.Y)
		buf.Write(content)
		buf.WriteString(" Q ")
		if err := replaceContent(ctx, d, buf.Bytes()); err != nil {
			return nil, err
		}

		target := types.RectForWidthAndHeight(0, 0, dw, dh)
		d["MediaBox"] = target.Array()
		d.Delete("CropBox")
	}
	return writeContext(ctx)
}

// MultiPageLayout places several source pages on each sheet as laid out
// by l, optionally framing every cell.
func MultiPageLayout(rs io.ReadSeeker, l pages.Layout, borders bool, opts Options) ([]byte, error) {
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}

	type form struct {
		ref  types.IndirectRef
		w, h float64
	}
	forms := make([]form, ctx.PageCount)
	// Every form is built before the first page dict gets rewritten.
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		ref, w, h, err := pageAsForm(ctx, pageNr)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNr, err)
		}
		forms[pageNr-1] = form{ref: *ref, w: w, h: h}
	}

	sheets := l.Sheets(ctx.PageCount)
	contents := make([]bytes.Buffer, sheets)
	xobjects := make([]types.Dict, sheets)
	for i := range xobjects {
		xobjects[i] = types.Dict{}
	}

	for i, f := range forms {
		p := l.Place(i, f.w, f.h)
		name := fmt.Sprintf("Pg%d", i+1)
		xobjects[p.Sheet][name] = f.ref

		buf := &contents[p.Sheet]
		fmt.Fprintf(buf, "q %.5f 0 0 %.5f %.5f %.5f cm /%s Do Q\n", p.Scale, p.Scale, p.X, p.Y, name)
		if borders {
			fmt.Fprintf(buf, "q %.1f w 0 G %.5f %.5f %.5f %.5f re S Q\n", borderWidth, p.Cell.X, p.Cell.Y, p.Cell.Width, p.Cell.Height)
		}
	}

	sheet := types.RectForWidthAndHeight(0, 0, l.SheetW, l.SheetH)
	keep := make([]int, sheets)
	for s := 0; s < sheets; s++ {
		pageNr := s + 1
		d, _, _, err := ctx.PageDict(pageNr, false)
		if err != nil {
			return nil, err
		}
		if err := replaceContent(ctx, d, contents[s].Bytes()); err != nil {
			return nil, err
		}
		d["MediaBox"] = sheet.Array()
		d["Resources"] = types.Dict{"XObject": xobjects[s]}
		d["Rotate"] = types.Integer(0)
		for _, k := range []string{"CropBox", "BleedBox", "TrimBox", "ArtBox", "Annots"} {
			d.Delete(k)
		}
		keep[s] = pageNr
	}

	dst, err := pdfcpu.ExtractPages(ctx, keep, false)
	if err != nil {
		return nil, err
	}
	return writeContext(dst)
}

// pageAsForm copies a page into a form XObject whose bounding box starts
// at the origin and has the page's visible size after rotation.
func pageAsForm(ctx *model.Context, pageNr int) (*types.IndirectRef, float64, float64, error) {
	d, _, inh, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, 0, 0, err
	}
	box, err := pageBox(inh, pageNr)
	if err != nil {
		return nil, 0, 0, err
	}
	content, err := ctx.PageContent(d, pageNr)
	if err != nil {
		return nil, 0, 0, err
	}

	w, h := box.Width(), box.Height()
	var buf bytes.Buffer
	if inh.Rotate != 0 {
		buf.Write(model.ContentBytesForPageRotation(inh.Rotate, w, h))
		if inh.Rotate%180 != 0 {
			w, h = h, w
		}
	}
	fmt.Fprintf(&buf, "1 0 0 1 %.5f %.5f cm ", -box.LL.X, -box.LL.Y)
	buf.Write(content)

	sd, err := ctx.NewStreamDictForBuf(buf.Bytes())
	if err != nil {
		return nil, 0, 0, err
	}
	sd.Insert("Type", types.Name("XObject"))
	sd.Insert("Subtype", types.Name("Form"))
	sd.Insert("BBox", types.RectForWidthAndHeight(0, 0, w, h).Array())
	if inh.Resources != nil {
		sd.Insert("Resources", inh.Resources)
	}
	if err := sd.Encode(); err != nil {
		return nil, 0, 0, err
	}
	ref, err := ctx.IndRefForNewObject(*sd)
	if err != nil {
		return nil, 0, 0, err
	}
	return ref, w, h, nil
}

// SplitSections cuts every page into (horizontal+1) x (vertical+1)
// sections, each becoming a page of its own. With merge the sections come
// back as one document, otherwise as one document per section.
func SplitSections(rs io.ReadSeeker, horizontal, vertical int, merge bool, opts Options) ([][]byte, error) {
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}

	type form struct {
		ref      types.IndirectRef
		sections []pages.Rect
	}
	forms := make([]form, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		ref, w, h, err := pageAsForm(ctx, pageNr)
		if err != nil {
			return nil, fmt.Errorf("page %d: %w", pageNr, err)
		}
		rects, err := pages.Sections(pages.Rect{Width: w, Height: h}, horizontal, vertical)
		if err != nil {
			return nil, err
		}
		forms[pageNr-1] = form{ref: *ref, sections: rects}
	}

	var segments [][]byte
	for i, f := range forms {
		for _, r := range f.sections {
			seg, err := sectionPage(ctx, i+1, f.ref, r)
			if err != nil {
				return nil, fmt.Errorf("page %d: %w", i+1, err)
			}
			segments = append(segments, seg)
		}
	}

	if !merge || len(segments) == 1 {
		return segments, nil
	}
	readers := make([]io.ReadSeeker, len(segments))
	for i, seg := range segments {
		readers[i] = bytes.NewReader(seg)
	}
	var out bytes.Buffer
	if err := pdfapi.MergeRaw(readers, &out, false, model.NewDefaultConfiguration()); err != nil {
		return nil, fmt.Errorf("merge sections: %w", err)
	}
	return [][]byte{out.Bytes()}, nil
}

// sectionPage points page pageNr at the part r of the page form and
// writes that page as a document of its own. The page dict is rewritten
// on every call, so the form must be built beforehand.
func sectionPage(ctx *model.Context, pageNr int, formRef types.IndirectRef, r pages.Rect) ([]byte, error) {
	d, _, _, err := ctx.PageDict(pageNr, false)
	if err != nil {
		return nil, err
	}
	content := fmt.Sprintf("q 1 0 0 1 %.5f %.5f cm /Sec Do Q\n", -r.X, -r.Y)
	if err := replaceContent(ctx, d, []byte(content)); err != nil {
		return nil, err
	}
	d["MediaBox"] = types.RectForWidthAndHeight(0, 0, r.Width, r.Height).Array()
	d["Resources"] = types.Dict{"XObject": types.Dict{"Sec": formRef}}
	d["Rotate"] = types.Integer(0)
	for _, k := range []string{"CropBox", "BleedBox", "TrimBox", "ArtBox", "Annots"} {
		d.Delete(k)
	}

	dst, err := pdfcpu.ExtractPages(ctx, []int{pageNr}, false)
	if err != nil {
		return nil, err
	}
	return writeContext(dst)
}
