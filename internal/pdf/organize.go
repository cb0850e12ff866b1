package pdf

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"go-pdftools/internal/pages"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// SelectPages builds a document from the 0-based pages in order, which
// may repeat pages.
func SelectPages(rs io.ReadSeeker, order []int, opts Options) ([]byte, error) {
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}
	return extract(ctx, order)
}

// Split returns one document per chunk of 0-based pages.
func Split(rs io.ReadSeeker, chunks [][]int, opts Options) ([][]byte, error) {
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}
	out := make([][]byte, 0, len(chunks))
	for i, chunk := range chunks {
		b, err := extract(ctx, chunk)
		if err != nil {
			return nil, fmt.Errorf("split part %d: %w", i+1, err)
		}
		out = append(out, b)
	}
	return out, nil
}

func extract(ctx *model.Context, order []int) ([]byte, error) {
	if len(order) == 0 {
		return nil, fmt.Errorf("%w: no pages selected", ErrNoPages)
	}
	for _, p := range order {
		if p < 0 || p >= ctx.PageCount {
			return nil, fmt.Errorf("%w: page %d out of range 1-%d", ErrInvalidArgument, p+1, ctx.PageCount)
		}
	}
	dst, err := pdfcpu.ExtractPages(ctx, pages.OneBased(order), false)
	if err != nil {
		return nil, err
	}
	return writeContext(dst)
}

// Rotate turns the given 0-based pages (all pages when empty) clockwise
// by angle degrees, which must be a multiple of 90.
func Rotate(rs io.ReadSeeker, angle int, selected []int, opts Options) ([]byte, error) {
	if angle%90 != 0 {
		return nil, fmt.Errorf("%w: angle must be a multiple of 90, got %d", ErrInvalidArgument, angle)
	}
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}
	angle = ((angle % 360) + 360) % 360
	if angle == 0 {
		return rewind(rs)
	}

	var sel []string
	for _, p := range selected {
		if p < 0 || p >= ctx.PageCount {
			return nil, fmt.Errorf("%w: page %d out of range 1-%d", ErrInvalidArgument, p+1, ctx.PageCount)
		}
		sel = append(sel, strconv.Itoa(p+1))
	}

	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := pdfapi.Rotate(rs, &out, angle, sel, opts.config()); err != nil {
		return nil, fmt.Errorf("rotate: %w", err)
	}
	return out.Bytes(), nil
}
