package texture

import (
	"errors"
	"fmt"
	"image"
)

// TGA image types.
const (
	tgaTrueColor    = 2
	tgaTrueColorRLE = 10
)

const tgaHeaderSize = 18

var errTGATruncated = errors.New("tga: truncated pixel data")

// decodeTGA decodes uncompressed and RLE true-color TGA images (24 or 32 bpp).
// image.Decode cannot sniff TGA, so Decode dispatches on the file extension.
func decodeTGA(data []byte) (*image.RGBA, error) {
	if len(data) < tgaHeaderSize {
		return nil, errors.New("tga: header too short")
	}

	colorMapType, kind := data[1], data[2]
	width := int(data[12]) | int(data[13])<<8
	height := int(data[14]) | int(data[15])<<8
	bpp := int(data[16])
	topDown := data[17]&0x20 != 0

	switch {
	case colorMapType != 0:
		return nil, errors.New("tga: color-mapped images not supported")
	case kind != tgaTrueColor && kind != tgaTrueColorRLE:
		return nil, fmt.Errorf("tga: unsupported image type %d", kind)
	case bpp != 24 && bpp != 32:
		return nil, fmt.Errorf("tga: unsupported bit depth %d", bpp)
	}

	start := tgaHeaderSize + int(data[0])
	if start > len(data) {
		return nil, errTGATruncated
	}

	r := tgaReader{
		img:     image.NewRGBA(image.Rect(0, 0, width, height)),
		src:     data[start:],
		stride:  bpp / 8,
		topDown: topDown,
	}
	var err error
	if kind == tgaTrueColor {
		err = r.raw(width * height)
	} else {
		err = r.rle()
	}
	if err != nil {
		return nil, err
	}
	return r.img, nil
}

// tgaReader writes BGR(A) source pixels into img in file order, flipping
// bottom-up files so that row 0 is the top of the picture.
type tgaReader struct {
	img     *image.RGBA
	src     []byte
	stride  int
	topDown bool
	next    int // next destination pixel
}

func (r *tgaReader) pixel() ([4]byte, error) {
	if len(r.src) < r.stride {
		return [4]byte{}, errTGATruncated
	}
	p := [4]byte{r.src[2], r.src[1], r.src[0], 255}
	if r.stride == 4 {
		p[3] = r.src[3]
	}
	r.src = r.src[r.stride:]
	return p, nil
}

func (r *tgaReader) put(p [4]byte) {
	w := r.img.Rect.Dx()
	x, y := r.next%w, r.next/w
	if !r.topDown {
		y = r.img.Rect.Dy() - 1 - y
	}
	copy(r.img.Pix[r.img.PixOffset(x, y):], p[:])
	r.next++
}

func (r *tgaReader) total() int { return r.img.Rect.Dx() * r.img.Rect.Dy() }

func (r *tgaReader) raw(n int) error {
	for i := 0; i < n && r.next < r.total(); i++ {
		p, err := r.pixel()
		if err != nil {
			return err
		}
		r.put(p)
	}
	return nil
}

func (r *tgaReader) rle() error {
	for r.next < r.total() {
		if len(r.src) == 0 {
			return errTGATruncated
		}
		header := r.src[0]
		r.src = r.src[1:]
		count := int(header&0x7f) + 1

		if header&0x80 == 0 {
			if err := r.raw(count); err != nil {
				return err
			}
			continue
		}

		p, err := r.pixel()
		if err != nil {
			return err
		}
		for i := 0; i < count && r.next < r.total(); i++ {
			r.put(p)
		}
	}
	return nil
}
