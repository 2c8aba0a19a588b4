// ◄◄◄ microbmp/palette_test.go ►►►
//
// Tests for the color palette

package microbmp

import "bytes"
import "testing"

func TestDefaultPalette(t *testing.T) {
	tests := []struct {
		depth int
		count int
		step  int
	}{
		{1, 2, 255},
		{2, 4, 85},
		{4, 16, 17},
		{8, 256, 1},
	}
	for _, tc := range tests {
		pal := defaultPalette(tc.depth)
		if len(pal) != tc.count {
			t.Errorf("depth %d: %d entries, want %d", tc.depth, len(pal), tc.count)
			continue
		}
		for i, c := range pal {
			s := uint8(i * tc.step)
			if c != (RGB{s, s, s}) {
				t.Errorf("depth %d entry %d = %+v, want gray %d", tc.depth, i, c, s)
			}
		}
	}
}

func TestPaletteReadWrite(t *testing.T) {
	pal := Palette{{1, 2, 3}, {4, 5, 6}}
	var buf bytes.Buffer
	n, err := writePalette(&buf, pal)
	if err != nil {
		t.Fatalf("writePalette: %v", err)
	}
	if n != 8 {
		t.Fatalf("wrote %d bytes, want 8", n)
	}
	// On disk: B,G,R,0 per entry.
	want := []byte{3, 2, 1, 0, 6, 5, 4, 0}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("disk layout %v, want %v", buf.Bytes(), want)
	}

	got, err := readPalette(bytes.NewReader(buf.Bytes()), 2)
	if err != nil {
		t.Fatalf("readPalette: %v", err)
	}
	if len(got) != 2 || got[0] != pal[0] || got[1] != pal[1] {
		t.Errorf("round trip %+v, want %+v", got, pal)
	}
}

func TestPaletteTruncated(t *testing.T) {
	_, err := readPalette(bytes.NewReader([]byte{1, 2, 3}), 2)
	if _, ok := err.(TruncationError); !ok {
		t.Errorf("got %T (%v), want TruncationError", err, err)
	}
}
