// ◄◄◄ microbmp/writer.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// BMP file encoder
//

package microbmp

import "io"
import "os"

// EncoderOptions stores options that can be passed to EncodeWithOptions().
// Create an EncoderOptions object with new().
type EncoderOptions struct {
	densitySet   bool
	xDens, yDens int
	shortHeader  bool
}

// SetDensity sets the density to write to the output image's metadata, in
// pixels per metre.
func (opts *EncoderOptions) SetDensity(xDens, yDens int) {
	opts.densitySet = true
	opts.xDens = xDens
	opts.yDens = yDens
}

// ForceShortHeader makes the encoder emit a plain 40-byte DIB header,
// dropping any opaque extension bytes carried over from a decoded file.
func (opts *EncoderOptions) ForceShortHeader(force bool) {
	opts.shortHeader = force
}

type encoder struct {
	w       io.Writer
	img     *Image
	opts    *EncoderOptions
	written int
}

func (e *encoder) write(p []byte) error {
	n, err := e.w.Write(p)
	e.written += n
	return err
}

// writeRows emits the pixel array bottom-up, each row zero padded to a
// multiple of 4 bytes. Indexed pixel values are reduced modulo the
// palette length so an out-of-range in-memory index never reaches the
// file; 24-bit triples are reordered R,G,B to B,G,R.
func (e *encoder) writeRows() error {
	img := e.img
	width := int(img.Header.Width)
	height := int(img.Header.Height)
	depth := int(img.Header.Depth)
	nPal := len(img.Palette)

	rowBuf := make([]byte, img.paddedRowSize)
	for row := 0; row < height; row++ {
		y := height - row - 1 // the bottom row comes first
		if depth <= 8 {
			for i := range rowBuf {
				rowBuf[i] = 0
			}
			for x := 0; x < width; x++ {
				v := unpackIndex(img.Pix.data, y*width+x, depth) % nPal
				packIndex(rowBuf, x, depth, v)
			}
		} else {
			for x := 0; x < width; x++ {
				o := (y*width + x) * 3
				rowBuf[x*3+0] = img.Pix.data[o+2]
				rowBuf[x*3+1] = img.Pix.data[o+1]
				rowBuf[x*3+2] = img.Pix.data[o+0]
			}
		}
		if err := e.write(rowBuf); err != nil {
			return err
		}
	}
	return nil
}

// EncodeWithOptions writes img to w in BMP format, using the options
// recorded in opts, and returns the number of bytes written. opts may be
// nil, in which case it behaves the same as Encode. Output is always
// uncompressed, whatever compression the image was decoded from.
func EncodeWithOptions(w io.Writer, img *Image, opts *EncoderOptions) (int, error) {
	e := &encoder{w: w, img: img}
	if opts != nil {
		e.opts = opts
	} else {
		e.opts = new(EncoderOptions)
	}

	if e.opts.shortHeader {
		img.Header.Extra = nil
	}
	if e.opts.densitySet {
		img.Header.XDensity = int32(e.opts.xDens)
		img.Header.YDensity = int32(e.opts.yDens)
	}
	img.Header.Compression = bI_RGB

	if err := img.recalc(); err != nil {
		return e.written, err
	}
	img.Header.Important = img.Header.PaletteCount

	n, err := img.Header.writeTo(w)
	e.written += n
	if err != nil {
		return e.written, err
	}

	if len(img.Palette) > 0 {
		n, err = writePalette(w, img.Palette)
		e.written += n
		if err != nil {
			return e.written, err
		}
	}

	if err := e.writeRows(); err != nil {
		return e.written, err
	}
	return e.written, nil
}

// Encode writes img to w in BMP format and returns the number of bytes
// written.
func Encode(w io.Writer, img *Image) (int, error) {
	return EncodeWithOptions(w, img, nil)
}

// Save writes the image to the named file and returns the number of bytes
// written.
func (img *Image) Save(path string) (int, error) {
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return Encode(f, img)
}
