package calories

import (
	"context"
	"reflect"
	"testing"
)

const sample = `1000
2000
3000

4000

5000
6000

7000
8000
9000

10000
`

func TestTotals(t *testing.T) {
	got, err := Totals(sample)
	if err != nil {
		t.Fatalf("Totals() error = %v", err)
	}

	want := []int{6000, 4000, 11000, 24000, 10000}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Totals() = %v, want %v", got, want)
	}
}

func TestTopSum(t *testing.T) {
	totals := []int{6000, 4000, 11000, 24000, 10000}

	tests := []struct {
		n    int
		want int
	}{
		{1, 24000},
		{3, 45000},
		{10, 55000},
	}

	for _, tt := range tests {
		if got := TopSum(totals, tt.n); got != tt.want {
			t.Errorf("TopSum(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSolve(t *testing.T) {
	got, err := Solve(context.Background(), sample)
	if err != nil {
		t.Fatalf("Solve() error = %v", err)
	}

	if got.PartOne != "24000" || got.PartTwo != "45000" {
		t.Errorf("Solve() = %+v, want 24000 / 45000", got)
	}
}

func TestSolveBadLine(t *testing.T) {
	if _, err := Solve(context.Background(), "100\nabc\n"); err == nil {
		t.Error("Solve() with non-numeric line succeeded")
	}
}
