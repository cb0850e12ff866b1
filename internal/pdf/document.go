package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"go-pdftools/internal/pages"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

var (
	// ErrInvalidArgument marks requests that can never succeed as given.
	ErrInvalidArgument = pages.ErrInvalidArgument
	// ErrNoPages is returned for documents, or selections, without pages.
	ErrNoPages = errors.New("document has no pages")
	// ErrInvalidPDF wraps parse and validation failures of an input file.
	ErrInvalidPDF = errors.New("invalid PDF")
)

// Options apply to reading every input document.
type Options struct {
	// Password opens encrypted input; it is used as user and owner password.
	Password string
}

func (o Options) config() *model.Configuration {
	conf := model.NewDefaultConfiguration()
	if o.Password != "" {
		conf.UserPW = o.Password
		conf.OwnerPW = o.Password
	}
	return conf
}

// Document is a parsed and validated PDF.
type Document struct {
	ctx *model.Context
}

// Read parses rs and makes sure it has at least one page.
func Read(rs io.ReadSeeker, opts Options) (*Document, error) {
	ctx, err := readContext(rs, opts)
	if err != nil {
		return nil, err
	}
	return &Document{ctx: ctx}, nil
}

// PageCount is the number of pages in d.
func (d *Document) PageCount() int { return d.ctx.PageCount }

// Title is the document information title, if any.
func (d *Document) Title() string { return d.ctx.Title }

func readContext(rs io.ReadSeeker, opts Options) (*model.Context, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	ctx, err := pdfapi.ReadValidateAndOptimize(rs, opts.config())
	if errors.Is(err, pdfcpu.ErrWrongPassword) {
		return nil, err
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPDF, err)
	}
	if err := ctx.EnsurePageCount(); err != nil {
		return nil, err
	}
	if ctx.PageCount == 0 {
		return nil, ErrNoPages
	}
	return ctx, nil
}

func writeContext(ctx *model.Context) ([]byte, error) {
	var out bytes.Buffer
	if err := pdfapi.WriteContext(ctx, &out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// pageBox is the visible box of a page: its CropBox, else its MediaBox.
func pageBox(inh *model.InheritedPageAttrs, pageNr int) (*types.Rectangle, error) {
	box := inh.CropBox
	if box == nil {
		box = inh.MediaBox
	}
	if box == nil {
		return nil, fmt.Errorf("page %d has no MediaBox", pageNr)
	}
	return box, nil
}

// replaceContent gives the page dict a fresh content stream.
func replaceContent(ctx *model.Context, pageDict types.Dict, content []byte) error {
	sd, err := ctx.NewStreamDictForBuf(content)
	if err != nil {
		return err
	}
	if err := sd.Encode(); err != nil {
		return err
	}
	ref, err := ctx.IndRefForNewObject(*sd)
	if err != nil {
		return err
	}
	pageDict["Contents"] = *ref
	return nil
}

func rewind(rs io.ReadSeeker) ([]byte, error) {
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(rs)
}
