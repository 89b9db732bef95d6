package powmem

import "strings"

// A bit buffer is a byte slice treated as one chain of latched 8-bit shift
// registers. Position p lives in byte p/8 at bit p%8, so position 0 is the
// least significant bit of the first byte.

// ShiftIn shifts every bit of buf one position up, inserting bit at
// position 0. Each byte hands its top bit to the next byte as carry.
// It returns the bit pushed out of the last byte. Any non-zero bit
// counts as 1.
func ShiftIn(buf []byte, bit uint8) uint8 {
	var c uint8
	if bit != 0 {
		c = 1
	}
	for i := range buf {
		nc := buf[i] >> 7
		buf[i] = buf[i]<<1 | c
		c = nc
	}
	return c
}

// ShiftOut is the inverse of ShiftIn: every bit moves one position down,
// bit is inserted at the highest position and the bit that was at
// position 0 is returned.
func ShiftOut(buf []byte, bit uint8) uint8 {
	var c uint8
	if bit != 0 {
		c = 0x80
	}
	for i := len(buf) - 1; i >= 0; i-- {
		nc := (buf[i] & 1) << 7
		buf[i] = c | buf[i]>>1
		c = nc
	}
	return c >> 7
}

// RoundByte returns the number of bytes needed to hold n bits.
func RoundByte(n int) int {
	if n <= 0 {
		return 0
	}
	return (n + 7) >> 3
}

// BinString renders buf in position order, grouped in quintets so geohash
// characters line up. A '|' marks position limit when limit > 0.
func BinString(buf []byte, limit int) string {
	var sb strings.Builder
	for p := 0; p < len(buf)*8; p++ {
		if p != 0 && p%5 == 0 {
			sb.WriteByte(' ')
		}
		if limit > 0 && p == limit {
			sb.WriteByte('|')
		}
		if buf[p>>3]&(1<<(p&7)) != 0 {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}
