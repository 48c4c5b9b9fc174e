package batch

import (
	"reflect"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name  string
		input []string
		size  int
		want  [][]string
	}{
		{
			name:  "empty input",
			input: nil,
			size:  3,
			want:  nil,
		},
		{
			name:  "exact multiple",
			input: []string{"a", "b", "c", "d"},
			size:  2,
			want:  [][]string{{"a", "b"}, {"c", "d"}},
		},
		{
			name:  "short last batch",
			input: []string{"a", "b", "c", "d", "e"},
			size:  2,
			want:  [][]string{{"a", "b"}, {"c", "d"}, {"e"}},
		},
		{
			name:  "size larger than input",
			input: []string{"a", "b"},
			size:  10,
			want:  [][]string{{"a", "b"}},
		},
		{
			name:  "size one",
			input: []string{"a", "b", "c"},
			size:  1,
			want:  [][]string{{"a"}, {"b"}, {"c"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got [][]string
			for b := range Split(tt.input, tt.size) {
				got = append(got, b)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Split() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSplit_ConcatenationProperty(t *testing.T) {
	for n := 0; n <= 25; n++ {
		items := make([]int, n)
		for i := range items {
			items[i] = i
		}
		for size := 1; size <= 7; size++ {
			var joined []int
			batches := 0
			for b := range Split(items, size) {
				batches++
				if batches < Count(n, size) && len(b) != size {
					t.Errorf("n=%d size=%d: batch %d has length %d", n, size, batches, len(b))
				}
				joined = append(joined, b...)
			}
			if batches != Count(n, size) {
				t.Errorf("n=%d size=%d: got %d batches, Count says %d", n, size, batches, Count(n, size))
			}
			if len(joined) != n {
				t.Fatalf("n=%d size=%d: joined length %d", n, size, len(joined))
			}
			for i, v := range joined {
				if v != i {
					t.Fatalf("n=%d size=%d: joined[%d] = %d", n, size, i, v)
				}
			}
		}
	}
}

func TestSplit_EarlyBreak(t *testing.T) {
	seen := 0
	for range Split([]int{1, 2, 3, 4, 5}, 2) {
		seen++
		break
	}
	if seen != 1 {
		t.Errorf("expected iteration to stop after one batch, got %d", seen)
	}
}

func TestSplit_NonPositiveSizePanics(t *testing.T) {
	for _, size := range []int{0, -1} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("Split with size %d did not panic", size)
				}
			}()
			Split([]int{1}, size)
		}()
	}
}

func TestCount(t *testing.T) {
	tests := []struct {
		n, size, want int
	}{
		{0, 5, 0},
		{1, 5, 1},
		{5, 5, 1},
		{6, 5, 2},
		{10, 3, 4},
		{3, 0, 0},
	}

	for _, tt := range tests {
		if got := Count(tt.n, tt.size); got != tt.want {
			t.Errorf("Count(%d, %d) = %d, want %d", tt.n, tt.size, got, tt.want)
		}
	}
}
