package schedule

import (
	"testing"
	"time"
)

// день с фиксированной базой, чтобы тесты не зависели от текущего времени
func day(n int) time.Time {
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	return base.AddDate(0, 0, n)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd int
		want                       bool
	}{
		{
			name:   "touching endpoints do not overlap",
			aStart: 0, aEnd: 5, bStart: 5, bEnd: 10,
			want: false,
		},
		{
			name:   "partial overlap",
			aStart: 0, aEnd: 5, bStart: 4, bEnd: 10,
			want: true,
		},
		{
			name:   "containment",
			aStart: 0, aEnd: 10, bStart: 3, bEnd: 4,
			want: true,
		},
		{
			name:   "disjoint",
			aStart: 0, aEnd: 2, bStart: 5, bEnd: 7,
			want: false,
		},
		{
			name:   "identical intervals",
			aStart: 1, aEnd: 4, bStart: 1, bEnd: 4,
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(day(tt.aStart), day(tt.aEnd), day(tt.bStart), day(tt.bEnd))
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}

			// симметрия: Overlaps(A,B) == Overlaps(B,A)
			reversed := Overlaps(day(tt.bStart), day(tt.bEnd), day(tt.aStart), day(tt.aEnd))
			if reversed != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", reversed, tt.want)
			}
		})
	}
}

func TestMergeIntervals(t *testing.T) {
	tests := []struct {
		name  string
		input [][2]int
		want  [][2]int
	}{
		{
			name:  "empty input",
			input: nil,
			want:  nil,
		},
		{
			name:  "overlapping pair folds",
			input: [][2]int{{1, 3}, {2, 5}, {8, 9}},
			want:  [][2]int{{1, 5}, {8, 9}},
		},
		{
			name:  "adjacent intervals fold",
			input: [][2]int{{1, 3}, {3, 5}},
			want:  [][2]int{{1, 5}},
		},
		{
			name:  "unsorted input gets sorted first",
			input: [][2]int{{8, 9}, {1, 3}, {2, 5}},
			want:  [][2]int{{1, 5}, {8, 9}},
		},
		{
			name:  "contained interval disappears",
			input: [][2]int{{1, 10}, {2, 3}},
			want:  [][2]int{{1, 10}},
		},
		{
			name:  "single interval unchanged",
			input: [][2]int{{4, 6}},
			want:  [][2]int{{4, 6}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var input []Interval
			for _, iv := range tt.input {
				input = append(input, Interval{Start: day(iv[0]), End: day(iv[1])})
			}

			got := MergeIntervals(input)

			if len(got) != len(tt.want) {
				t.Fatalf("MergeIntervals() returned %d intervals, want %d", len(got), len(tt.want))
			}
			for i, iv := range tt.want {
				if !got[i].Start.Equal(day(iv[0])) || !got[i].End.Equal(day(iv[1])) {
					t.Errorf("MergeIntervals()[%d] = [%v, %v), want [%v, %v)",
						i, got[i].Start, got[i].End, day(iv[0]), day(iv[1]))
				}
			}
		})
	}
}
