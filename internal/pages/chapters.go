package pages

import (
	"fmt"
	"strings"
)

const maxChapterTitle = 255

// Mark is an outline entry pointing at a 0-based page.
type Mark struct {
	Title string
	Page  int
}

// Chapter is a titled run of 0-based pages.
type Chapter struct {
	Title string
	Pages []int
}

// Chapters turns outline entries, in outline order, into chapters. Each
// chapter runs until the page the next entry points at, the last one to
// the end of the document. An entry that starts on the same page as the
// next one becomes a one-page chapter with allowDuplicates. Otherwise its
// title is prepended to the next chapter that has pages of its own.
func Chapters(marks []Mark, total int, allowDuplicates bool) ([]Chapter, error) {
	if len(marks) == 0 {
		return nil, fmt.Errorf("%w: no bookmarks to split at", ErrInvalidArgument)
	}
	for _, m := range marks {
		if m.Page < 0 || m.Page >= total {
			return nil, fmt.Errorf("%w: bookmark %q points at page %d of %d", ErrInvalidArgument, m.Title, m.Page+1, total)
		}
	}

	var chapters []Chapter
	var pending []string
	for i, m := range marks {
		end := total
		if i+1 < len(marks) {
			end = marks[i+1].Page
		}
		if end <= m.Page {
			if allowDuplicates {
				chapters = append(chapters, Chapter{Title: m.Title, Pages: []int{m.Page}})
			} else {
				pending = append(pending, m.Title)
			}
			continue
		}
		title := m.Title
		if len(pending) > 0 {
			title = chapterTitle(append(pending, title))
			pending = nil
		}
		chapters = append(chapters, Chapter{Title: title, Pages: span(m.Page, end)})
	}
	return chapters, nil
}

func chapterTitle(parts []string) string {
	title := strings.Join(parts, " ")
	if r := []rune(title); len(r) > maxChapterTitle {
		title = string(r[:maxChapterTitle-3]) + "..."
	}
	return title
}
