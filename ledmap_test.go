package inputmodule

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestLedRegister(t *testing.T) {
	tests := []struct {
		sw, cs   int
		register uint8
		page     uint8
	}{
		{1, 1, 0x00, 0},
		{2, 1, 0x1E, 0},
		{6, 30, 179, 0},
		{7, 1, 0x00, 1},
		{9, 30, 89, 1},
		{1, 31, 0x5A, 1},
		{1, 34, 0x5D, 1},
		{2, 31, 0x63, 1},
		{9, 34, 165, 1},
	}
	for _, tc := range tests {
		reg, page := LedRegister(tc.sw, tc.cs)
		assert.Equal(t, tc.register, reg, "sw %d cs %d", tc.sw, tc.cs)
		assert.Equal(t, tc.page, page, "sw %d cs %d", tc.sw, tc.cs)
	}
}

func TestLedTable(t *testing.T) {
	leds := LedTable()
	require.Len(t, leds, NumLEDs)

	ids := map[int]bool{}
	registers := map[[2]uint8]bool{}
	for i, l := range leds {
		assert.GreaterOrEqual(t, l.ID, 1)
		assert.LessOrEqual(t, l.ID, NumLEDs)
		assert.False(t, ids[l.ID], "duplicate id %d", l.ID)
		ids[l.ID] = true

		key := [2]uint8{l.Page, l.Register}
		assert.False(t, registers[key], "duplicate register %v", key)
		registers[key] = true

		// sorted by y, then x
		assert.Equal(t, i%Width+1, l.X)
		assert.Equal(t, i/Width+1, l.Y)
	}
}

func TestLedTableZones(t *testing.T) {
	byPos := map[[2]int]int{}
	for _, l := range LedTable() {
		byPos[[2]int{l.X, l.Y}] = l.ID
	}
	assert.Equal(t, 1, byPos[[2]int{1, 1}])
	assert.Equal(t, 9, byPos[[2]int{9, 1}])
	assert.Equal(t, 10, byPos[[2]int{1, 2}])
	assert.Equal(t, 37, byPos[[2]int{1, 5}])
	assert.Equal(t, 38, byPos[[2]int{1, 6}])
	assert.Equal(t, 41, byPos[[2]int{2, 5}])
	assert.Equal(t, 145, byPos[[2]int{1, 17}])
	assert.Equal(t, 289, byPos[[2]int{1, 33}])
	assert.Equal(t, NumLEDs, byPos[[2]int{9, 34}])
}

func TestWriteLedTableRust(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedTable(&buf, LedTableRust))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, NumLEDs)
	assert.Equal(t, "(0x00, 0), // x:1, y:1, sw:1, cs:1, id:1", lines[0])
	assert.Equal(t, "(0x1e, 0), // x:2, y:1, sw:2, cs:1, id:2", lines[1])
	assert.Equal(t, "(0xa5, 1), // x:9, y:34, sw:9, cs:34, id:306", lines[NumLEDs-1])
}

func TestWriteLedTableYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteLedTable(&buf, LedTableYAML))

	var leds []LedAddress
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &leds))
	assert.Equal(t, LedTable(), leds)
}

func TestWriteLedTableFormat(t *testing.T) {
	err := WriteLedTable(&bytes.Buffer{}, LedTableFormat("csv"))
	assert.ErrorIs(t, err, ErrUnrecognizedValue)
}
