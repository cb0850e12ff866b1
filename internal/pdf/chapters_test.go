package pdf

import (
	"bytes"
	"errors"
	"testing"

	"go-pdftools/internal/testpdf"

	"github.com/google/go-cmp/cmp"
	pdfapi "github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
)

// book is a six page document, page i being (i+1)*100 points wide, with
// a two level outline.
func book(t *testing.T) []byte {
	t.Helper()
	pp := make([]testpdf.Page, 6)
	for i := range pp {
		pp[i] = testpdf.Page{Width: float64(i+1) * 100, Height: 100}
	}
	doc := testpdf.Build(testpdf.Doc{Title: "Book", Author: "Ann", Pages: pp})
	bms := []pdfcpu.Bookmark{
		{Title: "Intro", PageFrom: 1},
		{Title: "Part 1", PageFrom: 2, Kids: []pdfcpu.Bookmark{
			{Title: "1.1", PageFrom: 2},
			{Title: "1/2", PageFrom: 4},
		}},
		{Title: "Index", PageFrom: 6},
	}
	var out bytes.Buffer
	if err := pdfapi.AddBookmarks(bytes.NewReader(doc), &out, bms, true, nil); err != nil {
		t.Fatalf("AddBookmarks: %v", err)
	}
	return out.Bytes()
}

func TestSplitChapters(t *testing.T) {
	tests := []struct {
		name       string
		opts       ChapterOptions
		wantTitles []string
		wantWidths [][]float64
	}{
		{
			name:       "top level",
			wantTitles: []string{"Intro", "Part 1", "Index"},
			wantWidths: [][]float64{{100}, {200, 300, 400, 500}, {600}},
		},
		{
			name:       "nested",
			opts:       ChapterOptions{Level: 1},
			wantTitles: []string{"Intro", "Part 1 1.1", "12", "Index"},
			wantWidths: [][]float64{{100}, {200, 300}, {400, 500}, {600}},
		},
		{
			name:       "nested with duplicates",
			opts:       ChapterOptions{Level: 1, AllowDuplicates: true},
			wantTitles: []string{"Intro", "Part 1", "1.1", "12", "Index"},
			wantWidths: [][]float64{{100}, {200}, {200, 300}, {400, 500}, {600}},
		},
	}
	doc := book(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts, err := SplitChapters(reader(doc), tt.opts)
			if err != nil {
				t.Fatalf("SplitChapters: %v", err)
			}
			var titles []string
			var got [][]float64
			for _, p := range parts {
				titles = append(titles, p.Title)
				got = append(got, widths(inspect(t, p.PDF)))
			}
			if diff := cmp.Diff(tt.wantTitles, titles); diff != "" {
				t.Errorf("titles mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantWidths, got, within); diff != "" {
				t.Errorf("chapter pages mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSplitChaptersMetadata(t *testing.T) {
	doc := book(t)
	for _, include := range []bool{false, true} {
		parts, err := SplitChapters(reader(doc), ChapterOptions{IncludeMetadata: include})
		if err != nil {
			t.Fatalf("SplitChapters: %v", err)
		}
		props := inspect(t, parts[1].PDF).Properties
		want := Properties{}
		if include {
			want = Properties{Title: "Book", Author: "Ann"}
		}
		if props.Title != want.Title || props.Author != want.Author {
			t.Errorf("includeMetadata=%v: title %q author %q, want %q %q", include, props.Title, props.Author, want.Title, want.Author)
		}
	}
}

func TestSplitChaptersErrors(t *testing.T) {
	if _, err := SplitChapters(reader(testpdf.A4(2)), ChapterOptions{}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("document without bookmarks: %v, want ErrInvalidArgument", err)
	}
	if _, err := SplitChapters(reader(book(t)), ChapterOptions{Level: -1}); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("negative level: %v, want ErrInvalidArgument", err)
	}
}
