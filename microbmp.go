// ◄◄◄ microbmp/microbmp.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// Shared constants, error kinds and byte-order helpers
//

// Package microbmp implements a BMP image decoder and encoder for color
// depths 1, 2, 4, 8 and 24. Decoding handles uncompressed (BI_RGB) pixel
// data as well as BI_RLE8 and BI_RLE4 run-length compression; encoding is
// always uncompressed.
package microbmp

import "io"

const (
	bI_RGB  = 0
	bI_RLE8 = 1
	bI_RLE4 = 2
)

const (
	fileHeaderLen = 14
	infoHeaderLen = 40

	// 72 DPI expressed in pixels per metre.
	defaultDensity = 2835
)

// A ValidationError reports a malformed or unsupported header field, or an
// illegal combination of fields.
type ValidationError string

func (e ValidationError) Error() string { return "microbmp: invalid format: " + string(e) }

// A TruncationError reports that the input ended before the expected
// number of bytes could be read.
type TruncationError string

func (e TruncationError) Error() string { return "microbmp: truncated input: " + string(e) }

// A BoundsError reports a pixel access outside the image dimensions,
// including an RLE stream whose cursor runs past the pixel plane.
type BoundsError string

func (e BoundsError) Error() string { return "microbmp: out of bounds: " + string(e) }

func getWORD(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8
}
func getDWORD(b []byte) uint32 {
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func setWORD(b []byte, n uint16) {
	b[0] = byte(n)
	b[1] = byte(n >> 8)
}

func setDWORD(b []byte, n uint32) {
	b[0] = byte(n)
	b[1] = byte(n >> 8)
	b[2] = byte(n >> 16)
	b[3] = byte(n >> 24)
}

// readFull fills buf from r, converting an early EOF into a
// TruncationError naming the structure being read.
func readFull(r io.Reader, buf []byte, what string) error {
	if _, err := io.ReadFull(r, buf); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return TruncationError(what)
		}
		return err
	}
	return nil
}
