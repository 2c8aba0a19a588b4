// ◄◄◄ microbmp/pixels.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// Pixel storage and sub-byte bit-packing arithmetic
//

package microbmp

import "fmt"

// sizeFromWidth returns the unpadded byte length of width pixels at the
// given depth.
func sizeFromWidth(width, depth int) int {
	return (width*depth + 7) / 8
}

// paddedSize rounds a row byte length up to a multiple of 4, as the pixel
// array format requires.
func paddedSize(size int) int {
	return (size + 3) / 4 * 4
}

// unpackIndex extracts the i-th depth-bit value from buf. Values are
// packed most significant bits first, so the leftmost pixel occupies the
// high bits of its byte. One formula covers depths 1, 2, 4 and 8.
func unpackIndex(buf []byte, i, depth int) int {
	ppb := 8 / depth
	shift := uint(8 - depth*(i%ppb+1))
	mask := 1<<uint(depth) - 1
	return int(buf[i/ppb]>>shift) & mask
}

// packIndex stores v as the i-th depth-bit value in buf, clearing the
// slot first. v is masked to depth bits.
func packIndex(buf []byte, i, depth, v int) {
	ppb := 8 / depth
	shift := uint(8 - depth*(i%ppb+1))
	mask := 1<<uint(depth) - 1
	buf[i/ppb] &^= byte(mask) << shift
	buf[i/ppb] |= byte(v&mask) << shift
}

// PixelPlane stores the pixels of one image. For depths up to 8 each
// pixel is a palette index packed at depth bits per pixel over the flat
// pixel index y*width+x; for depth 24 each pixel is an R,G,B triple.
// Coordinate (0,0) is the top-left pixel regardless of the row order the
// pixels had on disk.
type PixelPlane struct {
	width  int
	height int
	depth  int
	data   []byte
}

func newPixelPlane(width, height, depth int) *PixelPlane {
	p := &PixelPlane{width: width, height: height, depth: depth}
	if depth <= 8 {
		ppb := 8 / depth
		p.data = make([]byte, (width*height+ppb-1)/ppb)
	} else {
		p.data = make([]byte, width*height*3)
	}
	return p
}

// Width returns the image width in pixels.
func (p *PixelPlane) Width() int { return p.width }

// Height returns the image height in pixels.
func (p *PixelPlane) Height() int { return p.height }

// Depth returns the color depth in bits per pixel.
func (p *PixelPlane) Depth() int { return p.depth }

func (p *PixelPlane) checkCoords(x, y int) error {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return BoundsError(fmt.Sprintf("pixel (%d,%d) outside %dx%d", x, y, p.width, p.height))
	}
	return nil
}

// GetIndex returns the palette index of pixel (x,y). The plane must have
// an indexed depth.
func (p *PixelPlane) GetIndex(x, y int) (int, error) {
	if p.depth > 8 {
		return 0, ValidationError(fmt.Sprintf("no palette indexes in a %d-bit image", p.depth))
	}
	if err := p.checkCoords(x, y); err != nil {
		return 0, err
	}
	return unpackIndex(p.data, y*p.width+x, p.depth), nil
}

// SetIndex stores a palette index at pixel (x,y). The value is kept to
// depth bits; reduction modulo the palette length happens at encode time.
func (p *PixelPlane) SetIndex(x, y, v int) error {
	if p.depth > 8 {
		return ValidationError(fmt.Sprintf("no palette indexes in a %d-bit image", p.depth))
	}
	if err := p.checkCoords(x, y); err != nil {
		return err
	}
	packIndex(p.data, y*p.width+x, p.depth, v)
	return nil
}

// GetRGB returns the color of pixel (x,y) of a 24-bit plane.
func (p *PixelPlane) GetRGB(x, y int) (RGB, error) {
	if p.depth <= 8 {
		return RGB{}, ValidationError(fmt.Sprintf("no direct color in a %d-bit image", p.depth))
	}
	if err := p.checkCoords(x, y); err != nil {
		return RGB{}, err
	}
	o := (y*p.width + x) * 3
	return RGB{R: p.data[o], G: p.data[o+1], B: p.data[o+2]}, nil
}

// SetRGB stores the color of pixel (x,y) of a 24-bit plane.
func (p *PixelPlane) SetRGB(x, y int, c RGB) error {
	if p.depth <= 8 {
		return ValidationError(fmt.Sprintf("no direct color in a %d-bit image", p.depth))
	}
	if err := p.checkCoords(x, y); err != nil {
		return err
	}
	o := (y*p.width + x) * 3
	p.data[o] = c.R
	p.data[o+1] = c.G
	p.data[o+2] = c.B
	return nil
}

// GetChannel returns one channel of pixel (x,y): 0 for red, 1 for green,
// 2 for blue.
func (p *PixelPlane) GetChannel(x, y, c int) (uint8, error) {
	if p.depth <= 8 {
		return 0, ValidationError(fmt.Sprintf("no direct color in a %d-bit image", p.depth))
	}
	if c < 0 || c > 2 {
		return 0, BoundsError(fmt.Sprintf("channel %d", c))
	}
	if err := p.checkCoords(x, y); err != nil {
		return 0, err
	}
	return p.data[(y*p.width+x)*3+c], nil
}

// SetChannel stores one channel of pixel (x,y).
func (p *PixelPlane) SetChannel(x, y, c int, v uint8) error {
	if p.depth <= 8 {
		return ValidationError(fmt.Sprintf("no direct color in a %d-bit image", p.depth))
	}
	if c < 0 || c > 2 {
		return BoundsError(fmt.Sprintf("channel %d", c))
	}
	if err := p.checkCoords(x, y); err != nil {
		return err
	}
	p.data[(y*p.width+x)*3+c] = v
	return nil
}
