package pages

import (
	"fmt"
	"slices"
)

// SplitAfter cuts a document after each of the given 0-based pages. The
// last chunk always runs to the end of the document. Split points outside
// the document are ignored.
func SplitAfter(total int, at []int) [][]int {
	points := make([]int, 0, len(at)+1)
	for _, p := range at {
		if p >= 0 && p < total-1 {
			points = append(points, p)
		}
	}
	slices.Sort(points)
	points = slices.Compact(points)
	if total > 0 {
		points = append(points, total-1)
	}

	var chunks [][]int
	start := 0
	for _, end := range points {
		chunks = append(chunks, span(start, end+1))
		start = end + 1
	}
	return chunks
}

// ChunkByCount splits a document into documents of perDoc pages each.
func ChunkByCount(total, perDoc int) ([][]int, error) {
	if perDoc < 1 {
		return nil, fmt.Errorf("%w: pages per document must be positive, got %d", ErrInvalidArgument, perDoc)
	}
	var chunks [][]int
	for start := 0; start < total; start += perDoc {
		chunks = append(chunks, span(start, min(start+perDoc, total)))
	}
	return chunks, nil
}

// ChunkIntoDocs splits a document into docs documents of near equal size.
// The first total%docs documents carry one extra page. No document is
// ever empty, so fewer than docs chunks come back for short documents.
func ChunkIntoDocs(total, docs int) ([][]int, error) {
	if docs < 1 {
		return nil, fmt.Errorf("%w: document count must be positive, got %d", ErrInvalidArgument, docs)
	}
	docs = min(docs, total)
	if docs == 0 {
		return nil, nil
	}
	per, extra := total/docs, total%docs
	chunks := make([][]int, 0, docs)
	start := 0
	for i := 0; i < docs; i++ {
		n := per
		if i < extra {
			n++
		}
		chunks = append(chunks, span(start, start+n))
		start += n
	}
	return chunks, nil
}
