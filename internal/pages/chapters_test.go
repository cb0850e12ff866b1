package pages

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChapters(t *testing.T) {
	marks := []Mark{{"Intro", 0}, {"Part 1", 1}, {"1.1", 1}, {"1.2", 3}, {"Index", 5}}
	tests := []struct {
		name       string
		duplicates bool
		want       []Chapter
	}{
		{"folded", false, []Chapter{
			{"Intro", []int{0}},
			{"Part 1 1.1", []int{1, 2}},
			{"1.2", []int{3, 4}},
			{"Index", []int{5, 6}},
		}},
		{"duplicates", true, []Chapter{
			{"Intro", []int{0}},
			{"Part 1", []int{1}},
			{"1.1", []int{1, 2}},
			{"1.2", []int{3, 4}},
			{"Index", []int{5, 6}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Chapters(marks, 7, tt.duplicates)
			if err != nil {
				t.Fatalf("Chapters: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Chapters mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChaptersLongFoldedTitle(t *testing.T) {
	long := strings.Repeat("a", 200)
	got, err := Chapters([]Mark{{long, 0}, {long, 0}, {"end", 0}}, 2, false)
	if err != nil {
		t.Fatalf("Chapters: %v", err)
	}
	if len(got) != 1 || len([]rune(got[0].Title)) != maxChapterTitle || !strings.HasSuffix(got[0].Title, "...") {
		t.Errorf("folded title = %q", got)
	}
}

func TestChaptersErrors(t *testing.T) {
	for name, marks := range map[string][]Mark{
		"no marks":     nil,
		"out of range": {{"late", 4}},
	} {
		if _, err := Chapters(marks, 3, false); !errors.Is(err, ErrInvalidArgument) {
			t.Errorf("%s: err = %v, want ErrInvalidArgument", name, err)
		}
	}
}
