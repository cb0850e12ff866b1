package pages

import (
	"fmt"
	"strconv"
	"strings"
)

// Mode names a page rearrangement.
type Mode string

const (
	Custom                Mode = "CUSTOM"
	ReverseOrder          Mode = "REVERSE_ORDER"
	DuplexSort            Mode = "DUPLEX_SORT"
	BookletSort           Mode = "BOOKLET_SORT"
	SideStitchBookletSort Mode = "SIDE_STITCH_BOOKLET_SORT"
	OddEvenSplit          Mode = "ODD_EVEN_SPLIT"
	OddEvenMerge          Mode = "ODD_EVEN_MERGE"
	RemoveFirst           Mode = "REMOVE_FIRST"
	RemoveLast            Mode = "REMOVE_LAST"
	RemoveFirstAndLast    Mode = "REMOVE_FIRST_AND_LAST"
	Duplicate             Mode = "DUPLICATE"
)

// Rearrange returns the new page order for a document of total pages.
// custom is the page selection for CUSTOM and the repeat count for
// DUPLICATE; other modes ignore it. An empty mode means CUSTOM.
func Rearrange(mode Mode, total int, custom string) ([]int, error) {
	if total < 0 {
		return nil, fmt.Errorf("%w: negative page count", ErrInvalidArgument)
	}
	switch Mode(strings.ToUpper(string(mode))) {
	case Custom, "":
		return ParsePageList(custom, total, false), nil
	case ReverseOrder:
		return reverseOrder(total), nil
	case DuplexSort:
		return duplexSort(total), nil
	case BookletSort:
		return bookletSort(total), nil
	case SideStitchBookletSort:
		return sideStitchBookletSort(total), nil
	case OddEvenSplit:
		return oddEvenSplit(total), nil
	case OddEvenMerge:
		return oddEvenMerge(total), nil
	case RemoveFirst:
		return span(1, total), nil
	case RemoveLast:
		return span(0, total-1), nil
	case RemoveFirstAndLast:
		return span(1, total-1), nil
	case Duplicate:
		times := 2
		if s := strings.TrimSpace(custom); s != "" {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				return nil, fmt.Errorf("%w: duplicate count %q", ErrInvalidArgument, custom)
			}
			times = n
		}
		return duplicate(total, times), nil
	}
	return nil, fmt.Errorf("%w: unsupported mode %q", ErrInvalidArgument, mode)
}

// span returns from..to-1, or nothing when the range is empty.
func span(from, to int) []int {
	if to <= from {
		return []int{}
	}
	out := make([]int, 0, to-from)
	for i := from; i < to; i++ {
		out = append(out, i)
	}
	return out
}

func reverseOrder(total int) []int {
	out := make([]int, total)
	for i := range out {
		out[i] = total - 1 - i
	}
	return out
}

// duplexSort reorders a stack scanned fronts first and backs in reverse:
// 1, n, 2, n-1, ...
func duplexSort(total int) []int {
	out := make([]int, 0, total)
	half := (total + 1) / 2
	for i := 1; i <= half; i++ {
		out = append(out, i-1)
		if i <= total-half {
			out = append(out, total-i)
		}
	}
	return out
}

func bookletSort(total int) []int {
	out := make([]int, 0, total)
	for i := 0; i < total/2; i++ {
		out = append(out, i, total-1-i)
	}
	if total%2 == 1 {
		out = append(out, total/2)
	}
	return out
}

// sideStitchBookletSort orders each group of four as 4,1,2,3. Short final
// groups repeat the last page.
func sideStitchBookletSort(total int) []int {
	if total == 0 {
		return []int{}
	}
	last := total - 1
	out := make([]int, 0, (total+3)/4*4)
	for g := 0; g < (total+3)/4; g++ {
		begin := g * 4
		out = append(out,
			min(begin+3, last),
			min(begin, last),
			min(begin+1, last),
			min(begin+2, last),
		)
	}
	return out
}

func oddEvenSplit(total int) []int {
	out := make([]int, 0, total)
	for i := 0; i < total; i += 2 {
		out = append(out, i)
	}
	for i := 1; i < total; i += 2 {
		out = append(out, i)
	}
	return out
}

// oddEvenMerge interleaves the first half (odd pages) with the second
// half (even pages) of a document built by appending two scans.
func oddEvenMerge(total int) []int {
	out := make([]int, 0, total)
	odd := (total + 1) / 2
	for i := 1; i <= odd; i++ {
		out = append(out, i-1)
		if odd+i <= total {
			out = append(out, odd+i-1)
		}
	}
	return out
}

func duplicate(total, times int) []int {
	out := make([]int, 0, total*times)
	for i := 0; i < total; i++ {
		for j := 0; j < times; j++ {
			out = append(out, i)
		}
	}
	return out
}
