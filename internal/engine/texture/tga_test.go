package texture

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tgaHeader(kind byte, w, h int, bpp byte, topDown bool) []byte {
	hdr := make([]byte, tgaHeaderSize)
	hdr[2] = kind
	hdr[12], hdr[13] = byte(w), byte(w>>8)
	hdr[14], hdr[15] = byte(h), byte(h>>8)
	hdr[16] = bpp
	if topDown {
		hdr[17] = 0x20
	}
	return hdr
}

func TestDecodeTGAUncompressed(t *testing.T) {
	tests := []struct {
		name    string
		topDown bool
		top     color.RGBA
	}{
		// Bottom-up files store the bottom row first.
		{"bottom-up", false, color.RGBA{0, 0, 255, 255}},
		{"top-down", true, color.RGBA{255, 0, 0, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := tgaHeader(tgaTrueColor, 1, 2, 24, tt.topDown)
			data = append(data,
				0, 0, 255, // red, BGR
				255, 0, 0, // blue
			)

			img, err := decodeTGA(data)
			require.NoError(t, err)
			assert.Equal(t, tt.top, img.RGBAAt(0, 0))
		})
	}
}

func TestDecodeTGARLE(t *testing.T) {
	data := tgaHeader(tgaTrueColorRLE, 3, 1, 32, true)
	data = append(data,
		0x81, 0, 255, 0, 128, // run of 2 green pixels
		0x00, 255, 255, 255, 255, // 1 raw white pixel
	)

	img, err := decodeTGA(data)
	require.NoError(t, err)
	assert.Equal(t, color.RGBA{0, 255, 0, 128}, img.RGBAAt(0, 0))
	assert.Equal(t, color.RGBA{0, 255, 0, 128}, img.RGBAAt(1, 0))
	assert.Equal(t, color.RGBA{255, 255, 255, 255}, img.RGBAAt(2, 0))
}

func TestDecodeTGARejects(t *testing.T) {
	colorMapped := tgaHeader(tgaTrueColor, 1, 1, 24, false)
	colorMapped[1] = 1

	tests := map[string][]byte{
		"short header":  {0, 0, 2},
		"color mapped":  colorMapped,
		"grayscale":     tgaHeader(3, 1, 1, 8, false),
		"16 bit":        tgaHeader(tgaTrueColor, 1, 1, 16, false),
		"truncated":     append(tgaHeader(tgaTrueColor, 2, 2, 24, false), 1, 2, 3),
		"rle truncated": append(tgaHeader(tgaTrueColorRLE, 4, 1, 24, false), 0x83, 1),
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := decodeTGA(data)
			assert.Error(t, err)
		})
	}
}

func TestDecodeDispatchesTGA(t *testing.T) {
	data := tgaHeader(tgaTrueColor, 1, 1, 24, false)
	data = append(data, 10, 20, 30)
	path := filepath.Join(t.TempDir(), "swatch.TGA")
	require.NoError(t, os.WriteFile(path, data, 0644))

	img, err := Decode(path)
	require.NoError(t, err)
	r, g, b, _ := img.At(0, 0).RGBA()
	assert.Equal(t, []uint32{30, 20, 10}, []uint32{r >> 8, g >> 8, b >> 8})
}
