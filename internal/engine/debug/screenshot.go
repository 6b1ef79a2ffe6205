// Package debug provides developer aids for the viewer.
package debug

import (
	"errors"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"

	"github.com/Faultbox/luxo/internal/engine/gfx"
)

// ErrPixelSize is returned when pixel data does not match the image size.
var ErrPixelSize = errors.New("pixel data size mismatch")

// Screenshots writes framebuffer captures as timestamped PNG files.
type Screenshots struct {
	dir    string
	prefix string
	now    func() time.Time
}

// NewScreenshots returns a capturer writing prefix_<timestamp>.png into dir.
// An empty dir means the working directory.
func NewScreenshots(dir, prefix string) *Screenshots {
	return &Screenshots{dir: dir, prefix: prefix, now: time.Now}
}

// Filename returns the next unused file name. Captures within the same
// second get a numeric suffix.
func (s *Screenshots) Filename() string {
	base := s.prefix + "_" + s.now().Format("2006-01-02_15-04-05")
	name := filepath.Join(s.dir, base+".png")
	for i := 1; fileExists(name); i++ {
		name = filepath.Join(s.dir, base+"_"+strconv.Itoa(i)+".png")
	}
	return name
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Capture reads the framebuffer and saves it.
func (s *Screenshots) Capture(ctx gfx.Context, width, height int) (string, error) {
	return s.FromPixels(ctx.ReadPixels(0, 0, int32(width), int32(height)), width, height)
}

// FromPixels saves bottom-up RGBA pixels as read from the framebuffer.
func (s *Screenshots) FromPixels(pixels []byte, width, height int) (string, error) {
	if width <= 0 || height <= 0 || len(pixels) != width*height*4 {
		return "", fmt.Errorf("%w: %dx%d with %d bytes", ErrPixelSize, width, height, len(pixels))
	}

	img := &image.RGBA{
		Pix:    pixels,
		Stride: width * 4,
		Rect:   image.Rect(0, 0, width, height),
	}
	return s.Save(transform.FlipV(img))
}

// Save writes an image that is already top row first.
func (s *Screenshots) Save(img image.Image) (string, error) {
	if s.dir != "" {
		if err := os.MkdirAll(s.dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	name := s.Filename()
	if err := imgio.Save(name, img, imgio.PNGEncoder()); err != nil {
		return "", fmt.Errorf("saving %s: %w", name, err)
	}
	return name, nil
}
