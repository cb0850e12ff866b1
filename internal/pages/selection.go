// Package pages holds the page-index algorithms behind the PDF endpoints:
// selection expressions, rearrangement permutations, split chunking,
// N-up placement, section geometry and overlay assignment.
//
// Nothing here touches a document. Functions work on page counts and
// return page indices, 0-based unless a function says otherwise.
package pages

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidArgument is wrapped by every validation failure in this package.
var ErrInvalidArgument = errors.New("invalid argument")

// ParsePageList turns a comma separated page selection into page indices.
//
// Each part is "all", a single page ("3"), a range ("2-5", or "4-" for
// the rest of the document) or an n-function ("2n+1", "n(n-1)"). Pages
// outside 1..total and malformed parts are dropped. Order and duplicates
// are kept. An empty selection means the first page.
func ParsePageList(expr string, total int, oneBased bool) []int {
	offset := 0
	if oneBased {
		offset = 1
	}
	if strings.TrimSpace(expr) == "" {
		return []int{offset}
	}

	var out []int
	for _, part := range strings.Split(expr, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		for _, p := range parsePart(part, total) {
			out = append(out, p-1+offset)
		}
	}
	return out
}

// parsePart returns the 1-based pages selected by a single part.
func parsePart(part string, total int) []int {
	if strings.EqualFold(part, "all") {
		all := make([]int, total)
		for i := range all {
			all[i] = i + 1
		}
		return all
	}

	if strings.Contains(part, "n") {
		f, err := parseNFunc(part)
		if err != nil {
			return nil
		}
		return f.Values(total)
	}

	if from, to, ok := strings.Cut(part, "-"); ok {
		start, err := strconv.Atoi(strings.TrimSpace(from))
		if err != nil {
			return nil
		}
		end := total
		if to = strings.TrimSpace(to); to != "" {
			if end, err = strconv.Atoi(to); err != nil {
				return nil
			}
		}
		var out []int
		for i := start; i <= end; i++ {
			if i >= 1 && i <= total {
				out = append(out, i)
			}
		}
		return out
	}

	n, err := strconv.Atoi(part)
	if err != nil || n < 1 || n > total {
		return nil
	}
	return []int{n}
}

// RemovePages returns the 0-based indices of the pages that survive
// removing the given 0-based indices, in document order.
func RemovePages(total int, remove []int) []int {
	drop := make(map[int]bool, len(remove))
	for _, r := range remove {
		drop[r] = true
	}
	keep := make([]int, 0, total)
	for i := 0; i < total; i++ {
		if !drop[i] {
			keep = append(keep, i)
		}
	}
	return keep
}

// OneBased converts 0-based indices into page numbers.
func OneBased(indices []int) []int {
	out := make([]int, len(indices))
	for i, v := range indices {
		out[i] = v + 1
	}
	return out
}
