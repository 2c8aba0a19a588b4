// ◄◄◄ microbmp/header.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// BMP file header and DIB header parsing and serialization
//

package microbmp

import "fmt"
import "io"

// Header holds the BITMAPFILEHEADER and BITMAPINFOHEADER fields of a BMP
// file. The "BM" magic is checked on parse and emitted on serialize; it is
// not stored. Reserved fields are carried through untouched.
type Header struct {
	FileSize  uint32
	Reserved1 [2]byte
	Reserved2 [2]byte
	PixOffset uint32 // offset of the pixel array from the start of the file

	DIBLen       uint32 // 40 plus the length of Extra
	Width        int32
	Height       int32 // negative in a parsed header means top-down rows
	Planes       uint16
	Depth        uint16
	Compression  uint32
	RawSize      uint32 // pixel array byte size; only meaningful when compressed
	XDensity     int32  // pixels per metre
	YDensity     int32
	PaletteCount uint32
	Important    uint32

	// Extra holds any DIB header bytes past the standard 40. They are not
	// interpreted, only preserved so a round trip is byte exact.
	Extra []byte
}

// readHeader parses the 14-byte file header and the full DIB header from
// r, validating the structural invariants that do not depend on derived
// fields.
func readHeader(r io.Reader) (*Header, error) {
	var fh [fileHeaderLen + 4]byte

	// File header plus the DIB length field.
	if err := readFull(r, fh[:], "file header"); err != nil {
		return nil, err
	}
	if fh[0] != 0x42 || fh[1] != 0x4d {
		return nil, ValidationError("not a BMP file")
	}

	h := new(Header)
	h.FileSize = getDWORD(fh[2:6])
	copy(h.Reserved1[:], fh[6:8])
	copy(h.Reserved2[:], fh[8:10])
	h.PixOffset = getDWORD(fh[10:14])

	h.DIBLen = getDWORD(fh[14:18])
	if h.DIBLen < infoHeaderLen || h.DIBLen > 1<<16 {
		return nil, ValidationError(fmt.Sprintf("DIB header size %d", h.DIBLen))
	}

	d := make([]byte, h.DIBLen-4)
	if err := readFull(r, d, "DIB header"); err != nil {
		return nil, err
	}
	h.Width = int32(getDWORD(d[0:4]))
	h.Height = int32(getDWORD(d[4:8]))
	h.Planes = uint16(getWORD(d[8:10]))
	h.Depth = uint16(getWORD(d[10:12]))
	h.Compression = getDWORD(d[12:16])
	h.RawSize = getDWORD(d[16:20])
	h.XDensity = int32(getDWORD(d[20:24]))
	h.YDensity = int32(getDWORD(d[24:28]))
	h.PaletteCount = getDWORD(d[28:32])
	h.Important = getDWORD(d[32:36])
	if h.DIBLen > infoHeaderLen {
		h.Extra = append([]byte(nil), d[36:]...)
	}

	if err := h.validate(); err != nil {
		return nil, err
	}
	return h, nil
}

// validate checks the header fields that must hold regardless of the
// pixel data. Failures are reported, never coerced.
func (h *Header) validate() error {
	if h.Planes != 1 {
		return ValidationError(fmt.Sprintf("plane count %d", h.Planes))
	}
	switch h.Depth {
	case 1, 2, 4, 8, 24:
	default:
		return ValidationError(fmt.Sprintf("color depth %d", h.Depth))
	}
	// Legal pairings: any depth uncompressed, 8-bit RLE8, 4-bit RLE4.
	switch {
	case h.Compression == bI_RGB:
	case h.Compression == bI_RLE8 && h.Depth == 8:
	case h.Compression == bI_RLE4 && h.Depth == 4:
	default:
		return ValidationError(fmt.Sprintf("depth %d with compression %d", h.Depth, h.Compression))
	}
	return nil
}

// writeTo serializes the file header and DIB header, including any opaque
// extension bytes. It trusts DIBLen to equal 40+len(Extra), which recalc
// maintains.
func (h *Header) writeTo(w io.Writer) (int, error) {
	buf := make([]byte, fileHeaderLen+int(h.DIBLen))
	buf[0] = 0x42 // 'B'
	buf[1] = 0x4d // 'M'
	setDWORD(buf[2:6], h.FileSize)
	copy(buf[6:8], h.Reserved1[:])
	copy(buf[8:10], h.Reserved2[:])
	setDWORD(buf[10:14], h.PixOffset)

	d := buf[fileHeaderLen:]
	setDWORD(d[0:4], h.DIBLen)
	setDWORD(d[4:8], uint32(h.Width))
	setDWORD(d[8:12], uint32(h.Height))
	setWORD(d[12:14], h.Planes)
	setWORD(d[14:16], h.Depth)
	setDWORD(d[16:20], h.Compression)
	setDWORD(d[20:24], h.RawSize)
	setDWORD(d[24:28], uint32(h.XDensity))
	setDWORD(d[28:32], uint32(h.YDensity))
	setDWORD(d[32:36], h.PaletteCount)
	setDWORD(d[36:40], h.Important)
	copy(d[40:], h.Extra)

	return w.Write(buf)
}
