package detector

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSolidPNG(t *testing.T, dir, name string, c color.Color) string {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 64, 64))
	for y := 0; y < 64; y++ {
		for x := 0; x < 64; x++ {
			img.Set(x, y, c)
		}
	}
	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, img))
	return path
}

func TestCompareMissingFileGivesNeutralScore(t *testing.T) {
	dir := t.TempDir()
	existing := writeSolidPNG(t, dir, "a.png", color.White)

	assert.Equal(t, NeutralScore, Compare(existing, filepath.Join(dir, "missing.png")))
	assert.Equal(t, NeutralScore, Compare(filepath.Join(dir, "missing.png"), existing))
}

func TestCompareCorruptFileGivesNeutralScore(t *testing.T) {
	dir := t.TempDir()
	good := writeSolidPNG(t, dir, "a.png", color.White)
	bad := filepath.Join(dir, "bad.png")
	require.NoError(t, os.WriteFile(bad, []byte("definitely not an image"), 0644))

	assert.Equal(t, NeutralScore, Compare(good, bad))
}

func TestCompareIdenticalImages(t *testing.T) {
	dir := t.TempDir()
	a := writeSolidPNG(t, dir, "a.png", color.RGBA{R: 120, G: 80, B: 200, A: 255})
	b := writeSolidPNG(t, dir, "b.png", color.RGBA{R: 120, G: 80, B: 200, A: 255})

	assert.InDelta(t, 1.0, Compare(a, b), 0.01)
}

func TestCompareOppositeImagesScoreLow(t *testing.T) {
	dir := t.TempDir()
	white := writeSolidPNG(t, dir, "white.png", color.White)
	black := writeSolidPNG(t, dir, "black.png", color.Black)

	score := Compare(white, black)
	assert.GreaterOrEqual(t, score, 0.0)
	assert.Less(t, score, 0.1)
}
