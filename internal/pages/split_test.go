package pages

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitAfter(t *testing.T) {
	tests := []struct {
		name  string
		total int
		at    []int
		want  [][]int
	}{
		{"two points", 6, []int{1, 3}, [][]int{{0, 1}, {2, 3}, {4, 5}}},
		{"unsorted duplicates", 5, []int{4, 9, 1, 1}, [][]int{{0, 1}, {2, 3, 4}}},
		{"no points", 3, nil, [][]int{{0, 1, 2}}},
		{"every page", 3, []int{0, 1, 2}, [][]int{{0}, {1}, {2}}},
		{"empty document", 0, []int{0}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, SplitAfter(tt.total, tt.at)); diff != "" {
				t.Errorf("SplitAfter mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChunkByCount(t *testing.T) {
	got, err := ChunkByCount(5, 2)
	if err != nil {
		t.Fatalf("ChunkByCount: %v", err)
	}
	if diff := cmp.Diff([][]int{{0, 1}, {2, 3}, {4}}, got); diff != "" {
		t.Errorf("ChunkByCount mismatch (-want +got):\n%s", diff)
	}
	if _, err := ChunkByCount(5, 0); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ChunkByCount(5, 0) error = %v, want ErrInvalidArgument", err)
	}
}

func TestChunkIntoDocs(t *testing.T) {
	got, err := ChunkIntoDocs(7, 3)
	if err != nil {
		t.Fatalf("ChunkIntoDocs: %v", err)
	}
	if diff := cmp.Diff([][]int{{0, 1, 2}, {3, 4}, {5, 6}}, got); diff != "" {
		t.Errorf("ChunkIntoDocs(7, 3) mismatch (-want +got):\n%s", diff)
	}

	got, err = ChunkIntoDocs(2, 5)
	if err != nil {
		t.Fatalf("ChunkIntoDocs: %v", err)
	}
	if diff := cmp.Diff([][]int{{0}, {1}}, got); diff != "" {
		t.Errorf("ChunkIntoDocs(2, 5) mismatch (-want +got):\n%s", diff)
	}

	if _, err := ChunkIntoDocs(2, -1); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("ChunkIntoDocs(2, -1) error = %v, want ErrInvalidArgument", err)
	}
}
