// ◄◄◄ microbmp/rle.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// BI_RLE8 / BI_RLE4 decompression
//

package microbmp

import "io"

// rleDecoder expands a BI_RLE8 or BI_RLE4 stream into the pixel plane.
// The cursor walks the image in bottom-up scan order; compressed images
// are never top-down.
type rleDecoder struct {
	r    io.Reader
	img  *Image
	x, y int
}

func (d *decoder) decodeRLE() error {
	rle := &rleDecoder{
		r:   d.r,
		img: d.img,
		y:   int(d.img.Header.Height) - 1,
	}
	return rle.run()
}

// put writes one pixel at the cursor and advances it. A cursor outside
// the plane is a fatal decode failure rather than a silent skip.
func (rle *rleDecoder) put(v int) error {
	if err := rle.img.Pix.SetIndex(rle.x, rle.y, v); err != nil {
		return err
	}
	rle.x++
	return nil
}

// run consumes 2-byte records until the end-of-bitmap record. Dispatch on
// the first byte a:
//
//	a>0        encoded run: a pixels unpacked from the single pattern byte b
//	a=0, b=0   end of line
//	a=0, b=1   end of bitmap
//	a=0, b=2   delta: two more bytes move the cursor by (+dx,-dy)
//	a=0, b>=3  absolute run: b literal pixels, padded to an even byte count
//
// A stream that ends before the end-of-bitmap record is a truncation
// error. A well formed stream needs at most one record per pixel plus one
// end-of-line per row and the terminator; a stream still running past
// that bound is rejected.
func (rle *rleDecoder) run() error {
	depth := int(rle.img.Header.Depth)
	ppb := 8 / depth
	width := int(rle.img.Header.Width)
	height := int(rle.img.Header.Height)
	maxRecords := width*height + height + 1

	var rec [2]byte
	for n := 0; n < maxRecords; n++ {
		if err := readFull(rle.r, rec[:], "RLE record"); err != nil {
			return err
		}
		a, b := rec[0], rec[1]
		switch {
		case a > 0:
			// The pattern byte repeats, so pixel i takes slot i%ppb.
			pattern := [1]byte{b}
			for i := 0; i < int(a); i++ {
				if err := rle.put(unpackIndex(pattern[:], i%ppb, depth)); err != nil {
					return err
				}
			}
		case b == 0:
			rle.x = 0
			rle.y--
		case b == 1:
			return nil
		case b == 2:
			var delta [2]byte
			if err := readFull(rle.r, delta[:], "RLE delta"); err != nil {
				return err
			}
			rle.x += int(delta[0])
			rle.y -= int(delta[1])
		default:
			count := int(b)
			buf := make([]byte, (sizeFromWidth(count, depth)+1)/2*2)
			if err := readFull(rle.r, buf, "RLE absolute run"); err != nil {
				return err
			}
			for i := 0; i < count; i++ {
				if err := rle.put(unpackIndex(buf, i, depth)); err != nil {
					return err
				}
			}
		}
	}
	return ValidationError("RLE stream does not terminate")
}
