package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	testCases := []struct {
		name     string
		total    int
		pageSize int
		want     int
	}{
		{"empty catalog", 0, 9, 0},
		{"exactly one page", 9, 9, 1},
		{"one item over", 10, 9, 2},
		{"twenty items", 20, 9, 3},
		{"zero page size", 10, 0, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TotalPages(tc.total, tc.pageSize))
		})
	}
}

func TestGoToPage(t *testing.T) {
	testCases := []struct {
		name      string
		requested int
		want      int
		ok        bool
	}{
		{"below range", 0, 2, false},
		{"above range", 6, 2, false},
		{"first", 1, 1, true},
		{"in range", 3, 3, true},
		{"last", 5, 5, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := GoToPage(2, tc.requested, 5)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.ok, ok)
		})
	}
}

func TestVisiblePageNumbers(t *testing.T) {
	testCases := []struct {
		name    string
		current int
		total   int
		want    []int
	}{
		{"fewer pages than window", 1, 3, []int{1, 2, 3}},
		{"pages equal window", 4, 5, []int{1, 2, 3, 4, 5}},
		{"start", 1, 10, []int{1, 2, 3, 4, 5}},
		{"near start", 3, 10, []int{1, 2, 3, 4, 5}},
		{"centred", 5, 10, []int{3, 4, 5, 6, 7}},
		{"near end", 8, 10, []int{6, 7, 8, 9, 10}},
		{"end", 10, 10, []int{6, 7, 8, 9, 10}},
		{"no pages", 1, 0, []int{}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, VisiblePageNumbers(tc.current, tc.total, WindowSize))
		})
	}
}

func TestOffset(t *testing.T) {
	assert.Equal(t, 0, Offset(1, 9))
	assert.Equal(t, 18, Offset(3, 9))
	assert.Equal(t, 0, Offset(0, 9))
}

func TestPageState(t *testing.T) {
	s := NewPageState(PageSize)
	assert.Equal(t, 1, s.CurrentPage)
	assert.Equal(t, 0, s.TotalPages())

	s.TotalItems = 20
	assert.Equal(t, 3, s.TotalPages())
	assert.False(t, s.HasPrev())
	assert.True(t, s.HasNext())

	assert.True(t, s.GoTo(3))
	assert.Equal(t, 18, s.Offset())
	assert.False(t, s.HasNext())

	assert.False(t, s.GoTo(4))
	assert.Equal(t, 3, s.CurrentPage)
	assert.Equal(t, []int{1, 2, 3}, s.Window())
}
