// Package pdf implements the document operations behind the API on top of
// pdfcpu: merging, page selection, splitting, rotation, geometry changes,
// overlays, image stamps and document inspection.
//
// Inputs are io.ReadSeekers and outputs are complete PDF files as bytes.
// Page indices coming from package pages are 0-based; pdfcpu page numbers
// are 1-based and conversion happens at the call into pdfcpu.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path/filepath"
	"runtime"
	"strings"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
	"golang.org/x/sync/errgroup"
)

// Source is a named input document.
type Source struct {
	Name string
	R    io.ReadSeeker
}

// ReadAll parses every source concurrently. docs[i] is nil for sources
// that failed; invalid lists their indexes in ascending order.
func ReadAll(ctx context.Context, srcs []Source, opts Options) (docs []*Document, invalid []int) {
	docs = make([]*Document, len(srcs))
	errs := make([]error, len(srcs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, src := range srcs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}
			docs[i], errs[i] = Read(src.R, opts)
			return nil
		})
	}
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			docs[i] = nil
			invalid = append(invalid, i)
		}
	}
	return docs, invalid
}

// MergeOptions controls Merge.
type MergeOptions struct {
	Options
	// GenerateTOC adds one bookmark per source, titled with the source
	// name without extension, pointing at its first page.
	GenerateTOC bool
}

// Merge concatenates srcs in order. pageCounts holds the page count of
// each source and is only needed for GenerateTOC. Without a table of
// contents the result carries no bookmarks.
func Merge(srcs []Source, pageCounts []int, opts MergeOptions) ([]byte, error) {
	if len(srcs) == 0 {
		return nil, fmt.Errorf("%w: no files to merge", ErrInvalidArgument)
	}
	readers := make([]io.ReadSeeker, len(srcs))
	for i, src := range srcs {
		if _, err := src.R.Seek(0, io.SeekStart); err != nil {
			return nil, err
		}
		readers[i] = src.R
	}

	conf := opts.config()
	var merged bytes.Buffer
	if err := pdfapi.MergeRaw(readers, &merged, false, conf); err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	if !opts.GenerateTOC {
		return stripOutlines(merged.Bytes())
	}

	if len(pageCounts) != len(srcs) {
		return nil, fmt.Errorf("%w: need page counts for all %d files", ErrInvalidArgument, len(srcs))
	}
	bms := make([]pdfcpu.Bookmark, 0, len(srcs))
	from := 1
	for i, src := range srcs {
		bms = append(bms, pdfcpu.Bookmark{
			Title:    strings.TrimSuffix(src.Name, filepath.Ext(src.Name)),
			PageFrom: from,
		})
		from += pageCounts[i]
	}
	var out bytes.Buffer
	if err := pdfapi.AddBookmarks(bytes.NewReader(merged.Bytes()), &out, bms, true, conf); err != nil {
		return nil, fmt.Errorf("add bookmarks: %w", err)
	}
	return out.Bytes(), nil
}

// stripOutlines drops the document outline from a merged file.
func stripOutlines(b []byte) ([]byte, error) {
	ctx, err := readContext(bytes.NewReader(b), Options{})
	if err != nil {
		return nil, err
	}
	root, err := ctx.Catalog()
	if err != nil {
		return nil, err
	}
	if _, found := root.Find("Outlines"); !found {
		return b, nil
	}
	root.Delete("Outlines")
	return writeContext(ctx)
}

// StampImage places the image at imagePath on the 1-based page pageNr.
// x and y are the lower-left corner in points (72 points = 1 inch) and
// scale is relative to the image's own size.
func StampImage(rs io.ReadSeeker, imagePath string, pageNr int, x, y, scale float64, opts Options) ([]byte, error) {
	doc, err := Read(rs, opts)
	if err != nil {
		return nil, err
	}
	if pageNr < 1 || pageNr > doc.PageCount() {
		return nil, fmt.Errorf("%w: page %d out of range 1-%d", ErrInvalidArgument, pageNr, doc.PageCount())
	}
	if scale <= 0 {
		scale = 1
	}

	desc := fmt.Sprintf("scalefactor:%.2f abs, pos:bl, rot:0, op:1", scale)
	wm, err := pdfapi.ImageWatermark(imagePath, desc, true, false, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("parse image stamp: %w", err)
	}
	wm.Dx = x
	wm.Dy = y

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := pdfapi.AddWatermarks(rs, &out, []string{fmt.Sprintf("%d", pageNr)}, wm, opts.config()); err != nil {
		return nil, fmt.Errorf("apply image stamp: %w", err)
	}
	return out.Bytes(), nil
}
