package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSscan(t *testing.T) {
	tests := []struct {
		name   string
		format string
		ok     bool
		n      int
	}{
		{"checkerboard2", "checkerboard%d", true, 2},
		{"rows3", "rows%d", true, 3},
		{"cols12", "cols%d", true, 12},
		{"rows2x", "rows%d", false, 0},
		{"checkerboard9junk", "checkerboard%d", false, 0},
		{"rows 2", "rows%d", false, 0},
		{"rows", "rows%d", false, 0},
		{"cols2", "rows%d", false, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var n int
			ok := sscan(tc.name, tc.format, &n)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.n, n)
			}
		})
	}
}

func TestEqValues(t *testing.T) {
	vals, err := eqValues("1, 2,3,4,5,6,7,8,34")
	assert.NoError(t, err)
	assert.Equal(t, uint8(34), vals[8])

	_, err = eqValues("1,2,3")
	assert.Error(t, err)

	_, err = eqValues("1,2,3,4,5,6,7,8,35")
	assert.Error(t, err)
}
