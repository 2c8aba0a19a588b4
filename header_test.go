// ◄◄◄ microbmp/header_test.go ►►►
//
// Tests for file header and DIB header parsing and serialization

package microbmp

import "bytes"
import "testing"

// headerBytes builds a well formed 2x2 24-bit header, optionally with an
// opaque DIB extension, for tests to mutate.
func headerBytes(extra []byte) []byte {
	dibLen := infoHeaderLen + len(extra)
	offset := fileHeaderLen + dibLen
	b := make([]byte, offset)
	b[0] = 'B'
	b[1] = 'M'
	setDWORD(b[2:6], uint32(offset+16))
	setDWORD(b[10:14], uint32(offset))
	setDWORD(b[14:18], uint32(dibLen))
	setDWORD(b[18:22], 2)  // width
	setDWORD(b[22:26], 2)  // height
	setWORD(b[26:28], 1)   // planes
	setWORD(b[28:30], 24)  // depth
	setDWORD(b[30:34], 0)  // compression
	setDWORD(b[34:38], 16) // raw size: two 8-byte rows
	setDWORD(b[38:42], 2835)
	setDWORD(b[42:46], 2835)
	copy(b[54:], extra)
	return b
}

func TestReadHeader(t *testing.T) {
	h, err := readHeader(bytes.NewReader(headerBytes(nil)))
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.FileSize != 70 || h.PixOffset != 54 || h.DIBLen != 40 {
		t.Errorf("file fields: size %d, offset %d, DIB len %d", h.FileSize, h.PixOffset, h.DIBLen)
	}
	if h.Width != 2 || h.Height != 2 || h.Planes != 1 || h.Depth != 24 {
		t.Errorf("shape fields: %dx%d, planes %d, depth %d", h.Width, h.Height, h.Planes, h.Depth)
	}
	if h.Compression != 0 || h.RawSize != 16 {
		t.Errorf("pixel fields: compression %d, raw size %d", h.Compression, h.RawSize)
	}
	if h.XDensity != 2835 || h.YDensity != 2835 {
		t.Errorf("density: %d x %d", h.XDensity, h.YDensity)
	}
	if h.Extra != nil {
		t.Errorf("unexpected DIB extension %v", h.Extra)
	}
}

func TestReadHeaderValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b []byte)
	}{
		{"bad magic", func(b []byte) { b[0] = 'A' }},
		{"OS/2 header size", func(b []byte) { setDWORD(b[14:18], 12) }},
		{"plane count 2", func(b []byte) { setWORD(b[26:28], 2) }},
		{"depth 3", func(b []byte) { setWORD(b[28:30], 3) }},
		{"depth 16", func(b []byte) { setWORD(b[28:30], 16) }},
		{"RLE8 with depth 24", func(b []byte) { setDWORD(b[30:34], 1) }},
		{"RLE4 with depth 8", func(b []byte) {
			setWORD(b[28:30], 8)
			setDWORD(b[30:34], 2)
		}},
		{"RLE8 with depth 4", func(b []byte) {
			setWORD(b[28:30], 4)
			setDWORD(b[30:34], 1)
		}},
	}
	for _, tc := range tests {
		b := headerBytes(nil)
		tc.mutate(b)
		_, err := readHeader(bytes.NewReader(b))
		if err == nil {
			t.Errorf("%s: no error", tc.name)
			continue
		}
		if _, ok := err.(ValidationError); !ok {
			t.Errorf("%s: got %T (%v), want ValidationError", tc.name, err, err)
		}
	}
}

func TestReadHeaderTruncated(t *testing.T) {
	b := headerBytes(nil)
	for _, n := range []int{0, 5, 17, 30, 53} {
		_, err := readHeader(bytes.NewReader(b[:n]))
		if _, ok := err.(TruncationError); !ok {
			t.Errorf("%d bytes: got %T (%v), want TruncationError", n, err, err)
		}
	}
}

func TestHeaderRoundTrip(t *testing.T) {
	b := headerBytes(nil)
	h, err := readHeader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	var buf bytes.Buffer
	n, err := h.writeTo(&buf)
	if err != nil {
		t.Fatalf("writeTo: %v", err)
	}
	if n != len(b) || !bytes.Equal(buf.Bytes(), b) {
		t.Errorf("serialized header differs from source\n got %x\nwant %x", buf.Bytes(), b)
	}
}

func TestHeaderExtensionPreserved(t *testing.T) {
	extra := []byte{0xde, 0xad, 0xbe, 0xef, 1, 2, 3, 4}
	b := headerBytes(extra)
	h, err := readHeader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.DIBLen != 48 || !bytes.Equal(h.Extra, extra) {
		t.Fatalf("DIB len %d, extra %x", h.DIBLen, h.Extra)
	}
	var buf bytes.Buffer
	if _, err := h.writeTo(&buf); err != nil {
		t.Fatalf("writeTo: %v", err)
	}
	if !bytes.Equal(buf.Bytes(), b) {
		t.Errorf("extension not byte exact on round trip\n got %x\nwant %x", buf.Bytes(), b)
	}
}

func TestHeaderReservedPassthrough(t *testing.T) {
	b := headerBytes(nil)
	b[6], b[7], b[8], b[9] = 0x12, 0x34, 0x56, 0x78
	h, err := readHeader(bytes.NewReader(b))
	if err != nil {
		t.Fatalf("readHeader: %v", err)
	}
	if h.Reserved1 != [2]byte{0x12, 0x34} || h.Reserved2 != [2]byte{0x56, 0x78} {
		t.Fatalf("reserved fields %x %x", h.Reserved1, h.Reserved2)
	}
	var buf bytes.Buffer
	if _, err := h.writeTo(&buf); err != nil {
		t.Fatalf("writeTo: %v", err)
	}
	if !bytes.Equal(buf.Bytes()[6:10], b[6:10]) {
		t.Errorf("reserved bytes rewritten: %x", buf.Bytes()[6:10])
	}
}
