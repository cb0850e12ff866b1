package pdf

import (
	"fmt"
	"io"
	"strings"

	"go-pdftools/internal/pages"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// ChapterOptions controls SplitChapters.
type ChapterOptions struct {
	Options
	// Level is the deepest outline level that starts a chapter, 0 being
	// the top level.
	Level           int
	AllowDuplicates bool
	// IncludeMetadata copies the document information into every part.
	IncludeMetadata bool
}

// Part is one document produced by SplitChapters.
type Part struct {
	Title string
	PDF   []byte
}

// SplitChapters splits a document at its bookmarks.
func SplitChapters(rs io.ReadSeeker, opts ChapterOptions) ([]Part, error) {
	if opts.Level < 0 {
		return nil, fmt.Errorf("%w: bookmark level must not be negative", ErrInvalidArgument)
	}
	ctx, err := readContext(rs, opts.Options)
	if err != nil {
		return nil, err
	}
	bms, err := pdfcpu.Bookmarks(ctx)
	if err != nil {
		return nil, fmt.Errorf("read bookmarks: %w", err)
	}
	chapters, err := pages.Chapters(outlineMarks(bms, 0, opts.Level, nil), ctx.PageCount, opts.AllowDuplicates)
	if err != nil {
		return nil, err
	}

	parts := make([]Part, 0, len(chapters))
	for _, c := range chapters {
		dst, err := pdfcpu.ExtractPages(ctx, pages.OneBased(c.Pages), false)
		if err != nil {
			return nil, fmt.Errorf("chapter %q: %w", c.Title, err)
		}
		if opts.IncludeMetadata {
			if err := copyInfo(ctx, dst); err != nil {
				return nil, err
			}
		}
		b, err := writeContext(dst)
		if err != nil {
			return nil, err
		}
		parts = append(parts, Part{Title: c.Title, PDF: b})
	}
	return parts, nil
}

// outlineMarks flattens the outline down to maxLevel in reading order.
// Entries without a target page are skipped.
func outlineMarks(bms []pdfcpu.Bookmark, level, maxLevel int, out []pages.Mark) []pages.Mark {
	for _, bm := range bms {
		if bm.PageFrom > 0 {
			out = append(out, pages.Mark{Title: strings.ReplaceAll(bm.Title, "/", ""), Page: bm.PageFrom - 1})
		}
		if level < maxLevel {
			out = outlineMarks(bm.Kids, level+1, maxLevel, out)
		}
	}
	return out
}

func copyInfo(src, dst *model.Context) error {
	d := types.NewDict()
	for _, kv := range [][2]string{
		{"Title", src.Title},
		{"Author", src.Author},
		{"Subject", src.Subject},
		{"Keywords", src.Keywords},
		{"Creator", src.Creator},
	} {
		if kv[1] != "" {
			d.InsertString(kv[0], kv[1])
		}
	}
	ir, err := dst.IndRefForNewObject(d)
	if err != nil {
		return err
	}
	dst.Info = ir
	return nil
}
