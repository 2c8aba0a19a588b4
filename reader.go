// ◄◄◄ microbmp/reader.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// BMP file decoder
//

package microbmp

import "fmt"
import "io"
import "os"

type decoder struct {
	r       io.Reader
	img     *Image
	topDown bool
}

// Decode reads a BMP image from r. Any validation, truncation or bounds
// failure aborts the whole decode; no partially populated image is ever
// returned.
func Decode(r io.Reader) (*Image, error) {
	d := &decoder{r: r, img: new(Image)}

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	d.img.Header = *h

	if h.Depth <= 8 {
		count := int(h.PaletteCount)
		if count == 0 {
			count = 1 << h.Depth
		}
		if count > 10000 {
			return nil, ValidationError(fmt.Sprintf("palette size %d", count))
		}
		d.img.Palette, err = readPalette(r, count)
		if err != nil {
			return nil, err
		}
	}

	// The sign of the height only encodes row order.
	if h.Height < 0 {
		d.topDown = true
		d.img.Header.Height = -h.Height
	}

	if err := d.img.recalc(); err != nil {
		return nil, err
	}

	if d.img.Header.Compression == bI_RGB {
		err = d.readRows()
	} else {
		err = d.decodeRLE()
	}
	if err != nil {
		return nil, err
	}
	return d.img, nil
}

// readRows fills the plane from uncompressed pixel data: one padded row
// at a time, bottom-up unless the header asked for top-down order.
func (d *decoder) readRows() error {
	img := d.img
	width := int(img.Header.Width)
	height := int(img.Header.Height)
	depth := int(img.Header.Depth)

	buf := make([]byte, img.paddedRowSize)
	for row := 0; row < height; row++ {
		y := height - row - 1
		if d.topDown {
			y = row
		}
		if err := readFull(d.r, buf, "pixel row"); err != nil {
			return err
		}
		if depth <= 8 {
			for x := 0; x < width; x++ {
				packIndex(img.Pix.data, y*width+x, depth, unpackIndex(buf, x, depth))
			}
		} else {
			for x := 0; x < width; x++ {
				// Stored B,G,R; held R,G,B.
				o := (y*width + x) * 3
				img.Pix.data[o+0] = buf[x*3+2]
				img.Pix.data[o+1] = buf[x*3+1]
				img.Pix.data[o+2] = buf[x*3+0]
			}
		}
	}
	return nil
}

// Config reports the shape of a BMP image without its pixels.
type Config struct {
	Width  int
	Height int
	Depth  int
}

// DecodeConfig returns the dimensions and color depth of the BMP image
// without decoding the pixel data.
func DecodeConfig(r io.Reader) (Config, error) {
	h, err := readHeader(r)
	if err != nil {
		return Config{}, err
	}
	height := int(h.Height)
	if height < 0 {
		height = -height
	}
	return Config{Width: int(h.Width), Height: height, Depth: int(h.Depth)}, nil
}

// Load reads a BMP image from the named file.
func Load(path string) (*Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Decode(f)
}
