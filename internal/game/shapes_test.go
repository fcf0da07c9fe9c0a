// internal/game/shapes_test.go
package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogIsComplete(t *testing.T) {
	require.Len(t, figureTypes, 25)
	for _, ft := range figureTypes {
		shape, ok := figureShapes[ft]
		require.True(t, ok, "missing shape for %s", ft)
		assert.NotEmpty(t, shape)
		assert.NotEmpty(t, ft.DisplayName(), "missing name for %s", ft)
	}
}

func TestRotateCounterclockwise(t *testing.T) {
	// 2x3 L strip: the rightmost column becomes the top row.
	s := Shape{
		{1, 0, 0},
		{1, 1, 1},
	}
	want := Shape{
		{0, 1},
		{0, 1},
		{1, 1},
	}
	assert.Equal(t, want, rotate(s))
}

func TestRotationsOfReturnsToStart(t *testing.T) {
	s := figureShapes["fig04"]
	rots := rotationsOf(s)
	require.Len(t, rots, 4)
	assert.Equal(t, s, rots[0])
	assert.Equal(t, s, rotate(rots[3]))
}

func TestCellCount(t *testing.T) {
	assert.Equal(t, 4, cellCount(figureShapes["fige02"]))
	assert.Equal(t, 5, cellCount(figureShapes["fig17"]))
	for _, ft := range easyFigureTypes {
		assert.Equal(t, 4, cellCount(figureShapes[ft]), "easy figure %s", ft)
	}
	for _, ft := range normalFigureTypes {
		assert.Equal(t, 5, cellCount(figureShapes[ft]), "normal figure %s", ft)
	}
}
