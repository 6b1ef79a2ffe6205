package texture

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/Faultbox/luxo/internal/engine/gfx"
	"github.com/Faultbox/luxo/internal/engine/gfx/gfxtest"
)

var (
	red  = color.RGBA{255, 0, 0, 255}
	blue = color.RGBA{0, 0, 255, 255}
)

// twoRows returns a 2x2 image with a red top row and a blue bottom row.
func twoRows() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for x := 0; x < 2; x++ {
		img.SetRGBA(x, 0, red)
		img.SetRGBA(x, 1, blue)
	}
	return img
}

func writePNG(t *testing.T, dir string, img image.Image) string {
	t.Helper()
	path := filepath.Join(dir, "ball.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, img))
	require.NoError(t, f.Close())
	return path
}

func TestFallbackIsWhite(t *testing.T) {
	ctx := gfxtest.New()
	tex := Fallback(ctx)

	assert.True(t, tex.Fallback)
	assert.Equal(t, 1, tex.Width)
	assert.Equal(t, 1, tex.Height)

	white := [4]uint8{255, 255, 255, 255}
	for _, uv := range [][2]float32{{0, 0}, {0.5, 0.5}, {0.99, 0.01}, {3.25, -1.5}} {
		assert.Equal(t, white, ctx.Sample(tex.ID, uv[0], uv[1]), "uv %v", uv)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	ctx := gfxtest.New()
	tex := Load(ctx, filepath.Join(t.TempDir(), "nope.png"), zaptest.NewLogger(t))

	assert.True(t, tex.Fallback)
	assert.Equal(t, [4]uint8{255, 255, 255, 255}, ctx.Sample(tex.ID, 0.3, 0.7))
}

func TestDecodeErrors(t *testing.T) {
	dir := t.TempDir()
	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0644))
	badTGA := filepath.Join(dir, "short.tga")
	require.NoError(t, os.WriteFile(badTGA, []byte{0, 0, 2}, 0644))

	for _, path := range []string{"", filepath.Join(dir, "missing.jpg"), garbage, badTGA} {
		_, err := Decode(path)
		assert.ErrorIs(t, err, ErrMissingImage, path)
	}
}

func TestLoadUploadsFlippedWithMipmaps(t *testing.T) {
	ctx := gfxtest.New()
	path := writePNG(t, t.TempDir(), twoRows())

	tex := Load(ctx, path, zaptest.NewLogger(t))
	require.False(t, tex.Fallback)
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 2, tex.Height)

	up := ctx.Textures[tex.ID]
	require.NotNil(t, up)
	assert.True(t, up.Mipmapped)
	assert.Equal(t, gfx.Sampling{
		Wrap:      gfx.WrapRepeat,
		MinFilter: gfx.FilterLinearMipmapLinear,
		MagFilter: gfx.FilterLinear,
	}, up.Sampling)

	// v = 0 is the bottom of the picture.
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, ctx.Sample(tex.ID, 0.5, 0.1))
	assert.Equal(t, [4]uint8{255, 0, 0, 255}, ctx.Sample(tex.ID, 0.5, 0.9))
}

func TestFromImageOffsetBounds(t *testing.T) {
	ctx := gfxtest.New()
	img := twoRows().SubImage(image.Rect(0, 1, 2, 2))

	tex := FromImage(ctx, img)
	assert.Equal(t, 2, tex.Width)
	assert.Equal(t, 1, tex.Height)
	assert.Equal(t, [4]uint8{0, 0, 255, 255}, ctx.Sample(tex.ID, 0.5, 0.5))
	assert.Len(t, ctx.Textures[tex.ID].Pix, 8)
}

func TestBind(t *testing.T) {
	ctx := gfxtest.New()
	tex := Fallback(ctx)

	tex.Bind(ctx, 0)
	ctx.DrawIndexedTriangles(3)
	require.Len(t, ctx.Draws, 1)
	assert.Equal(t, tex.ID, ctx.Draws[0].Texture)
}
