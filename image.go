// ◄◄◄ microbmp/image.go ►►►
// Use of this code is governed by an MIT-style license that can
// be found in the readme.md file.
//
// The Image type: header, palette and pixel plane
//

package microbmp

import "fmt"

// Image is one BMP image. It is the sole owner of its header, palette and
// pixel plane; decoding or encoding one Image never touches another, so
// independent images can be processed in parallel without coordination.
type Image struct {
	Header  Header
	Palette Palette
	Pix     *PixelPlane

	rowSize       int
	paddedRowSize int
}

// New creates a width-by-height image of the given depth with a zero
// filled pixel plane. For indexed depths pal may be nil, which selects
// the default grayscale palette; for 24-bit depth the palette is unused.
func New(width, height, depth int, pal Palette) (*Image, error) {
	img := &Image{
		Header: Header{
			DIBLen:   infoHeaderLen,
			Width:    int32(width),
			Height:   int32(height),
			Planes:   1,
			Depth:    uint16(depth),
			XDensity: defaultDensity,
			YDensity: defaultDensity,
		},
		Palette: pal,
	}
	if err := img.recalc(); err != nil {
		return nil, err
	}
	return img, nil
}

// recalc validates the header and recomputes every derived field: palette
// count, DIB length, pixel array offset, row sizes, raw pixel size and
// total file size. A plane of the right shape is allocated if one is not
// already present. It runs on construction, after a header is parsed, and
// before anything is written.
func (img *Image) recalc() error {
	h := &img.Header

	if err := h.validate(); err != nil {
		return err
	}
	if h.Width < 1 {
		return ValidationError(fmt.Sprintf("width %d", h.Width))
	}
	if h.Height < 1 {
		return ValidationError(fmt.Sprintf("height %d", h.Height))
	}
	// Keep width*height*4 well inside a 32-bit int.
	if h.Width > 46340 || h.Height > 46340 || int64(h.Width)*int64(h.Height) >= 0x20000000 {
		return ValidationError("dimensions too large")
	}

	depth := int(h.Depth)
	if depth <= 8 {
		if len(img.Palette) == 0 {
			img.Palette = defaultPalette(depth)
		}
		h.PaletteCount = uint32(len(img.Palette))
	} else {
		img.Palette = nil
		h.PaletteCount = 0
	}

	if img.Pix == nil || img.Pix.width != int(h.Width) ||
		img.Pix.height != int(h.Height) || img.Pix.depth != depth {
		img.Pix = newPixelPlane(int(h.Width), int(h.Height), depth)
	}

	h.DIBLen = infoHeaderLen + uint32(len(h.Extra))
	img.rowSize = sizeFromWidth(int(h.Width), depth)
	img.paddedRowSize = paddedSize(img.rowSize)
	h.PixOffset = fileHeaderLen + h.DIBLen + 4*h.PaletteCount
	if h.Compression == bI_RGB {
		h.RawSize = uint32(img.paddedRowSize * int(h.Height))
		h.FileSize = h.PixOffset + h.RawSize
	}
	return nil
}
