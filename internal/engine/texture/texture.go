// Package texture decodes images and uploads them as GPU textures.
package texture

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	"go.uber.org/zap"

	// Extra formats for image.Decode beyond the png/jpeg that imgio registers.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/webp"

	"github.com/Faultbox/luxo/internal/engine/gfx"
)

// ErrMissingImage is returned when a texture image is absent or cannot be decoded.
var ErrMissingImage = errors.New("missing texture image")

// Texture is an uploaded 2D texture.
type Texture struct {
	ID     uint32
	Width  int
	Height int

	// Fallback is set when the texture is the 1x1 white placeholder.
	Fallback bool
}

// Bind makes the texture current on the given unit.
func (t *Texture) Bind(ctx gfx.Context, unit uint32) {
	ctx.ActiveTexture(unit)
	ctx.BindTexture(t.ID)
}

// Decode reads an image file. TGA files are decoded here; every other format
// goes through image.Decode.
func Decode(path string) (image.Image, error) {
	if path == "" {
		return nil, fmt.Errorf("%w: no path", ErrMissingImage)
	}

	if strings.EqualFold(filepath.Ext(path), ".tga") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrMissingImage, err)
		}
		img, err := decodeTGA(data)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrMissingImage, path, err)
		}
		return img, nil
	}

	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingImage, path, err)
	}
	return img, nil
}

// Load decodes the image at path and uploads it. When the image is missing
// or unreadable a warning is logged and the white fallback is returned, so
// the caller always gets a usable texture.
func Load(ctx gfx.Context, path string, log *zap.Logger) *Texture {
	img, err := Decode(path)
	if err != nil {
		log.Warn("using fallback texture", zap.String("path", path), zap.Error(err))
		return Fallback(ctx)
	}

	t := FromImage(ctx, img)
	log.Info("texture loaded",
		zap.String("path", path),
		zap.Int("width", t.Width),
		zap.Int("height", t.Height))
	return t
}

// FromImage uploads an image with mipmaps, repeat wrapping and trilinear
// minification. Rows are flipped so that v = 0 samples the bottom of the image.
func FromImage(ctx gfx.Context, img image.Image) *Texture {
	flipped := transform.FlipV(img)
	b := flipped.Bounds()

	t := &Texture{
		ID:     ctx.CreateTexture(),
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	ctx.BindTexture(t.ID)
	ctx.TexImageRGBA(int32(t.Width), int32(t.Height), flipped.Pix)
	ctx.GenerateMipmap()
	ctx.SetSampling(gfx.Sampling{
		Wrap:      gfx.WrapRepeat,
		MinFilter: gfx.FilterLinearMipmapLinear,
		MagFilter: gfx.FilterLinear,
	})
	ctx.BindTexture(0)
	return t
}

// Fallback uploads a single opaque white texel.
func Fallback(ctx gfx.Context) *Texture {
	t := &Texture{
		ID:       ctx.CreateTexture(),
		Width:    1,
		Height:   1,
		Fallback: true,
	}
	ctx.BindTexture(t.ID)
	ctx.TexImageRGBA(1, 1, []uint8{255, 255, 255, 255})
	ctx.SetSampling(gfx.Sampling{
		Wrap:      gfx.WrapRepeat,
		MinFilter: gfx.FilterNearest,
		MagFilter: gfx.FilterNearest,
	})
	ctx.BindTexture(0)
	return t
}
