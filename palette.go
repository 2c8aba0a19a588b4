// ◄◄◄ microbmp/palette.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// Color palette for indexed depths
//

package microbmp

import "io"

// RGB is one color, as stored in a palette entry or a 24-bit pixel.
type RGB struct {
	R, G, B uint8
}

// Palette is the ordered color table of an indexed image. Entries may
// repeat colors; no ordering beyond file order is imposed.
type Palette []RGB

// defaultPalette builds the black-and-white or grayscale palette used
// when no explicit palette is given: 2^depth entries ramping evenly from
// black to white.
func defaultPalette(depth int) Palette {
	n := 1 << uint(depth)
	pal := make(Palette, n)
	for i := range pal {
		s := uint8(255 * i / (n - 1))
		pal[i] = RGB{s, s, s}
	}
	return pal
}

// readPalette consumes count 4-byte entries from r. On disk the order is
// B,G,R,reserved; in memory it is R,G,B.
func readPalette(r io.Reader, count int) (Palette, error) {
	buf := make([]byte, 4*count)
	if err := readFull(r, buf, "palette"); err != nil {
		return nil, err
	}
	pal := make(Palette, count)
	for i := range pal {
		pal[i] = RGB{R: buf[4*i+2], G: buf[4*i+1], B: buf[4*i+0]}
	}
	return pal, nil
}

// writePalette emits each entry as B,G,R,0.
func writePalette(w io.Writer, pal Palette) (int, error) {
	buf := make([]byte, 4*len(pal))
	for i, c := range pal {
		buf[4*i+0] = c.B
		buf[4*i+1] = c.G
		buf[4*i+2] = c.R
	}
	return w.Write(buf)
}
