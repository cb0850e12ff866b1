package pages

import (
	"fmt"
	"strings"
)

// OverlayMode decides which overlay page goes onto which base page.
type OverlayMode string

const (
	SequentialOverlay  OverlayMode = "SequentialOverlay"
	InterleavedOverlay OverlayMode = "InterleavedOverlay"
	FixedRepeatOverlay OverlayMode = "FixedRepeatOverlay"
)

// OverlaySource names one page of one overlay file, both 0-based.
type OverlaySource struct {
	File int
	Page int
}

// OverlayPlan assigns overlay pages to base pages. overlayPages holds the
// page count of each overlay file. Entry i of the result belongs to base
// page i; base pages past the end of the result get no overlay.
func OverlayPlan(mode OverlayMode, basePages int, overlayPages, counts []int) ([]OverlaySource, error) {
	if len(overlayPages) == 0 {
		return nil, fmt.Errorf("%w: at least one overlay file is required", ErrInvalidArgument)
	}
	for i, n := range overlayPages {
		if n < 1 {
			return nil, fmt.Errorf("%w: overlay file %d has no pages", ErrInvalidArgument, i)
		}
	}

	plan := make([]OverlaySource, 0, basePages)
	switch OverlayMode(strings.TrimSpace(string(mode))) {
	case SequentialOverlay, "":
		var all []OverlaySource
		for f, n := range overlayPages {
			for p := 0; p < n; p++ {
				all = append(all, OverlaySource{File: f, Page: p})
			}
		}
		for i := 0; i < basePages; i++ {
			plan = append(plan, all[i%len(all)])
		}

	case InterleavedOverlay:
		k := len(overlayPages)
		for i := 0; i < basePages; i++ {
			f := i % k
			plan = append(plan, OverlaySource{File: f, Page: (i / k) % overlayPages[f]})
		}

	case FixedRepeatOverlay:
		if len(counts) != len(overlayPages) {
			return nil, fmt.Errorf("%w: need one count per overlay file, got %d for %d files", ErrInvalidArgument, len(counts), len(overlayPages))
		}
		for f, c := range counts {
			if c < 0 {
				return nil, fmt.Errorf("%w: count for overlay file %d is negative", ErrInvalidArgument, f)
			}
			for j := 0; j < c && len(plan) < basePages; j++ {
				plan = append(plan, OverlaySource{File: f, Page: j % overlayPages[f]})
			}
		}

	default:
		return nil, fmt.Errorf("%w: unsupported overlay mode %q", ErrInvalidArgument, mode)
	}
	return plan, nil
}
