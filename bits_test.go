package powmem

import (
	"bytes"
	"math/rand"
	"testing"
)

func TestShiftIn(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		bit     uint8
		want    []byte
		wantOut uint8
	}{
		{"zero into empty", []byte{0, 0}, 0, []byte{0, 0}, 0},
		{"one into empty", []byte{0, 0}, 1, []byte{1, 0}, 0},
		{"non-zero counts as one", []byte{0}, 2, []byte{1}, 0},
		{"carry to next byte", []byte{0x80, 0}, 0, []byte{0, 1}, 0},
		{"carry out of last byte", []byte{0, 0x80}, 1, []byte{1, 0}, 1},
		{"full chain", []byte{0xff, 0xff}, 0, []byte{0xfe, 0xff}, 1},
		{"empty buffer", []byte{}, 1, []byte{}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.buf...)
			out := ShiftIn(buf, tt.bit)
			if out != tt.wantOut {
				t.Errorf("ShiftIn() = %d, want %d", out, tt.wantOut)
			}
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("buffer = %08b, want %08b", buf, tt.want)
			}
		})
	}
}

func TestShiftOut(t *testing.T) {
	tests := []struct {
		name    string
		buf     []byte
		bit     uint8
		want    []byte
		wantOut uint8
	}{
		{"zero from empty", []byte{0, 0}, 0, []byte{0, 0}, 0},
		{"pops position zero", []byte{1, 0}, 0, []byte{0, 0}, 1},
		{"inserts at the top", []byte{0, 0}, 1, []byte{0, 0x80}, 0},
		{"carry to previous byte", []byte{0, 1}, 0, []byte{0x80, 0}, 0},
		{"full chain", []byte{0xff, 0xff}, 0, []byte{0xff, 0x7f}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.buf...)
			out := ShiftOut(buf, tt.bit)
			if out != tt.wantOut {
				t.Errorf("ShiftOut() = %d, want %d", out, tt.wantOut)
			}
			if !bytes.Equal(buf, tt.want) {
				t.Errorf("buffer = %08b, want %08b", buf, tt.want)
			}
		})
	}
}

// TestShiftInverse checks that shifting L*8 bits in and the same number out
// returns the sequence reversed: both shifts work on position 0, so the last
// bit in is the first one out.
func TestShiftInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for l := 1; l <= 8; l++ {
		buf := make([]byte, l)
		seq := make([]uint8, l*8)
		for i := range seq {
			seq[i] = uint8(rng.Intn(2))
			ShiftIn(buf, seq[i])
		}
		got := make([]uint8, len(seq))
		for i := range got {
			got[len(got)-1-i] = ShiftOut(buf, 0)
		}
		if !bytes.Equal(got, seq) {
			t.Errorf("len %d: got %v, want %v", l, got, seq)
		}
		if !bytes.Equal(buf, make([]byte, l)) {
			t.Errorf("len %d: buffer not drained: %x", l, buf)
		}
	}
}

// TestShiftRestoresContent checks that ShiftOut undoes ShiftIn on existing
// content when the bits pushed out are fed back in.
func TestShiftRestoresContent(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	orig := make([]byte, 5)
	rng.Read(orig)
	buf := append([]byte(nil), orig...)

	var spilled []uint8
	for i := 0; i < 13; i++ {
		spilled = append(spilled, ShiftIn(buf, uint8(rng.Intn(2))))
	}
	for i := len(spilled) - 1; i >= 0; i-- {
		ShiftOut(buf, spilled[i])
	}
	if !bytes.Equal(buf, orig) {
		t.Errorf("buffer = %x, want %x", buf, orig)
	}
}

func TestRoundByte(t *testing.T) {
	tests := []struct{ bits, want int }{
		{0, 0}, {1, 1}, {7, 1}, {8, 1}, {9, 2}, {15, 2}, {16, 2}, {19, 3}, {21, 3}, {24, 3}, {40, 5}, {-3, 0},
	}
	for _, tt := range tests {
		if got := RoundByte(tt.bits); got != tt.want {
			t.Errorf("RoundByte(%d) = %d, want %d", tt.bits, got, tt.want)
		}
	}
}

func TestBinString(t *testing.T) {
	got := BinString([]byte{0x01, 0x80}, 9)
	want := "10000 0000|0 00000 1"
	if got != want {
		t.Errorf("BinString() = %q, want %q", got, want)
	}
	if got := BinString(nil, 0); got != "" {
		t.Errorf("BinString(nil) = %q, want empty", got)
	}
}
