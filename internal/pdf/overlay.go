package pdf

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"go-pdftools/internal/pages"

	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

const overlayDesc = "scalefactor:1 abs, pos:bl, rot:0, op:1"

// OverlayOptions controls Overlay.
type OverlayOptions struct {
	Options
	Mode   pages.OverlayMode
	Counts []int
	// Foreground stamps overlays on top of the base content; otherwise
	// they go underneath it.
	Foreground bool
}

// Overlay stamps pages of the overlay documents onto base, one overlay
// page per base page as planned by pages.OverlayPlan.
func Overlay(base io.ReadSeeker, overlays []io.ReadSeeker, opts OverlayOptions) ([]byte, error) {
	baseCtx, err := readContext(base, opts.Options)
	if err != nil {
		return nil, err
	}

	// pdfcpu reads stamp pages from files, so overlays are spooled to disk.
	dir, err := os.MkdirTemp("", "overlay-*")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(dir)

	counts := make([]int, len(overlays))
	paths := make([]string, len(overlays))
	for i, o := range overlays {
		ctx, err := readContext(o, opts.Options)
		if err != nil {
			return nil, fmt.Errorf("overlay file %d: %w", i+1, err)
		}
		counts[i] = ctx.PageCount
		b, err := writeContext(ctx)
		if err != nil {
			return nil, err
		}
		paths[i] = filepath.Join(dir, fmt.Sprintf("overlay-%d.pdf", i))
		if err := os.WriteFile(paths[i], b, 0600); err != nil {
			return nil, err
		}
	}

	plan, err := pages.OverlayPlan(opts.Mode, baseCtx.PageCount, counts, opts.Counts)
	if err != nil {
		return nil, err
	}

	// one stamping pass per distinct overlay page
	var sources []pages.OverlaySource
	targets := map[pages.OverlaySource][]string{}
	for i, src := range plan {
		if _, seen := targets[src]; !seen {
			sources = append(sources, src)
		}
		targets[src] = append(targets[src], strconv.Itoa(i+1))
	}

	cur, err := rewind(base)
	if err != nil {
		return nil, err
	}
	conf := opts.config()
	for _, src := range sources {
		file := fmt.Sprintf("%s:%d", paths[src.File], src.Page+1)
		wm, err := pdfapi.PDFWatermark(file, overlayDesc, opts.Foreground, false, types.POINTS)
		if err != nil {
			return nil, fmt.Errorf("overlay page %d of file %d: %w", src.Page+1, src.File+1, err)
		}
		var out bytes.Buffer
		if err := pdfapi.AddWatermarks(bytes.NewReader(cur), &out, targets[src], wm, conf); err != nil {
			return nil, fmt.Errorf("overlay page %d of file %d: %w", src.Page+1, src.File+1, err)
		}
		cur = out.Bytes()
	}
	return cur, nil
}
