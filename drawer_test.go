package inputmodule

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatrixDrawer(t *testing.T) {
	m, port := newTestMatrix(t)
	d := NewMatrixDrawer(m)
	assert.Equal(t, image.Rect(0, 0, Width, Height), d.Bounds())
	assert.Equal(t, color.GrayModel, d.ColorModel())

	white := image.NewUniform(color.White)
	require.NoError(t, d.Draw(image.Rect(0, 0, 1, 2), white, image.Point{}))

	frames := port.Frames()
	require.Len(t, frames, Width+1)
	// column 0 has the two white pixels, the others stay dark
	assert.Equal(t, []byte{0, 0xFF, 0xFF, 0}, frames[0][3:7])
	assert.Equal(t, byte(0), frames[1][4])

	port.Reset()
	require.NoError(t, d.Draw(image.Rect(20, 0, 30, 10), white, image.Point{}))
	assert.Empty(t, port.Frames(), "draws outside of the matrix are dropped")

	require.NoError(t, d.Halt())
	assert.Equal(t, [][]byte{{0x32, 0xAC, 0x03, 0x01}}, port.Frames())
}

func TestB1Drawer(t *testing.T) {
	c, port := newTestConn(t)
	d := NewB1Drawer(NewB1Display(c))
	assert.Equal(t, image.Rect(0, 0, B1Width, B1Height), d.Bounds())

	black := image.NewUniform(color.Black)
	require.NoError(t, d.Draw(image.Rect(0, 0, 1, 8), black, image.Point{}))

	frames := port.Frames()
	require.Len(t, frames, B1Width+1)
	assert.Equal(t, byte(0xFF), frames[0][5])
	assert.Equal(t, byte(0x00), frames[0][6])
	assert.Equal(t, byte(0x00), frames[1][5])

	port.Reset()
	require.NoError(t, d.Halt())
	assert.Equal(t, [][]byte{{0x32, 0xAC, 0x14, 0x00}}, port.Frames())
}
