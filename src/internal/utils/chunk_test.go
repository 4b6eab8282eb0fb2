package utils

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestChunk(t *testing.T) {
	tests := []struct {
		name     string
		items    []int
		size     int
		expected [][]int
	}{
		{"empty", nil, 3, [][]int{}},
		{"smaller than size", []int{1, 2}, 3, [][]int{{1, 2}}},
		{"exact multiple", []int{1, 2, 3, 4}, 2, [][]int{{1, 2}, {3, 4}}},
		{"remainder", []int{1, 2, 3, 4, 5}, 2, [][]int{{1, 2}, {3, 4}, {5}}},
		{"size one", []int{1, 2, 3}, 1, [][]int{{1}, {2}, {3}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.expected, Chunk(tt.items, tt.size)); diff != "" {
				t.Errorf("Chunk() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestChunk_Properties(t *testing.T) {
	for _, n := range []int{0, 1, 999, 1000, 1001, 2500} {
		for _, size := range []int{1, 7, 1000} {
			t.Run(fmt.Sprintf("n=%d/size=%d", n, size), func(t *testing.T) {
				items := make([]int, n)
				for i := range items {
					items[i] = i
				}

				chunks := Chunk(items, size)

				if want := (n + size - 1) / size; len(chunks) != want {
					t.Fatalf("Expected %d chunks, got %d", want, len(chunks))
				}

				var joined []int
				for i, c := range chunks {
					if i < len(chunks)-1 && len(c) != size {
						t.Errorf("Chunk %d has %d items, want %d", i, len(c), size)
					}
					if len(c) < 1 || len(c) > size {
						t.Errorf("Chunk %d has invalid size %d", i, len(c))
					}
					joined = append(joined, c...)
				}
				if n > 0 {
					if diff := cmp.Diff(items, joined); diff != "" {
						t.Errorf("Concatenated chunks differ from input (-want +got):\n%s", diff)
					}
				}
			})
		}
	}
}

func TestChunk_AppendDoesNotLeak(t *testing.T) {
	items := []string{"a", "b", "c"}
	chunks := Chunk(items, 2)
	_ = append(chunks[0], "x")

	if items[2] != "c" {
		t.Errorf("Appending to a chunk modified the input: %v", items)
	}
}

func TestChunk_InvalidSize(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("Expected panic for zero size")
		}
	}()
	Chunk([]int{1}, 0)
}
