package powmem

import (
	"fmt"
	"math"
	"strings"

	geohash "github.com/TomiHiltunen/geohash-golang"
)

// Base32 is the geohash alphabet. Each character carries 5 bits.
const Base32 = "0123456789bcdefghjkmnpqrstuvwxyz"

// DefaultGeobits is the default location precision, three geohash
// characters or roughly 150km.
const DefaultGeobits = 15

// base32Index maps a geohash character to its quintet, -1 if invalid.
var base32Index = func() (idx [256]int8) {
	for i := range idx {
		idx[i] = -1
	}
	for i := 0; i < len(Base32); i++ {
		idx[Base32[i]] = int8(i)
	}
	return idx
}()

// ValidGeohash reports whether every character of s is in the geohash
// alphabet. The empty string is not a valid geohash.
func ValidGeohash(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if base32Index[s[i]] < 0 {
			return false
		}
	}
	return true
}

// PackGeo packs the first nBits bits of hash into a bit buffer. Bit k of
// the geohash bit stream (5 bits per character, most significant first)
// ends up at buffer position k.
//
// nBits is clamped to len(hash)*5. When dst is nil a buffer of
// RoundByte(nBits) bytes is allocated, otherwise the bits are shifted into
// dst, which must be zeroed and large enough.
func PackGeo(hash string, nBits int, dst []byte) ([]byte, error) {
	if limit := len(hash) * 5; nBits > limit {
		nBits = limit
	}
	if nBits < 5 {
		return nil, fmt.Errorf("packing %q at %d bits: %w", hash, nBits, ErrInvalidPrecision)
	}
	nBytes := RoundByte(nBits)
	if dst == nil {
		dst = make([]byte, nBytes)
	} else if len(dst) < nBytes {
		return nil, fmt.Errorf("packing %d bits into %d bytes: %w", nBits, len(dst), ErrBufferUnderflow)
	}

	// The stream is shifted in back to front so that its first bit lands
	// on position 0.
	tail := (nBits+4)/5 - 1
	for i := tail; i >= 0; i-- {
		v := base32Index[hash[i]]
		if v < 0 {
			return nil, fmt.Errorf("geohash %q has bad character %q: %w", hash, hash[i], ErrInvalidInput)
		}
		quintet := []byte{byte(v)}
		x := 5
		if i == tail && nBits%5 != 0 {
			// Partial character: drop the low bits beyond the boundary.
			x = nBits % 5
			for y := 0; y < 5-x; y++ {
				ShiftOut(quintet, 0)
			}
		}
		for j := 0; j < x; j++ {
			ShiftIn(dst, ShiftOut(quintet, 0))
		}
	}
	return dst, nil
}

// UnpackGeo unpacks nBits of a bit buffer back into a geohash and strips
// trailing '0' characters. buf is not modified.
func UnpackGeo(buf []byte, nBits int) (string, error) {
	s, err := UnpackGeoRaw(buf, nBits)
	if err != nil {
		return "", err
	}
	return TrimGeohash(s), nil
}

// UnpackGeoRaw is UnpackGeo without the trailing zero stripping. Every
// started quintet yields one character; a partial last quintet is padded
// with zero bits.
func UnpackGeoRaw(buf []byte, nBits int) (string, error) {
	if nBits < 5 {
		return "", fmt.Errorf("unpacking %d bits: %w", nBits, ErrInvalidPrecision)
	}
	nBytes := RoundByte(nBits)
	if len(buf) < nBytes {
		return "", fmt.Errorf("unpacking %d bits from %d bytes: %w", nBits, len(buf), ErrBufferUnderflow)
	}
	cpy := make([]byte, nBytes)
	copy(cpy, buf)

	var sb strings.Builder
	sb.Grow(nBits/5 + 1)
	quintet := []byte{0}
	for n := 1; n <= nBits; n++ {
		ShiftIn(quintet, ShiftOut(cpy, 0))
		if n%5 == 0 {
			sb.WriteByte(Base32[quintet[0]&0x1f])
			quintet[0] = 0
		}
	}
	if r := nBits % 5; r != 0 {
		for y := 0; y < 5-r; y++ {
			ShiftIn(quintet, 0)
		}
		sb.WriteByte(Base32[quintet[0]&0x1f])
	}
	return sb.String(), nil
}

// TrimGeohash strips trailing '0' characters. This is a display step: a
// geohash that really ends in '0' can not be told apart from a shorter one.
func TrimGeohash(s string) string {
	return strings.TrimRight(s, "0")
}

// EncodeLocation returns the geohash of a coordinate with the given number
// of characters.
func EncodeLocation(lat, lng float64, chars int) (string, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) ||
		lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return "", fmt.Errorf("coordinate %v,%v: %w", lat, lng, ErrInvalidInput)
	}
	if chars < 1 {
		return "", fmt.Errorf("geohash length %d: %w", chars, ErrInvalidPrecision)
	}
	return geohash.EncodeWithPrecision(lat, lng, chars), nil
}

// DecodeLocation returns the center of the area covered by a geohash.
func DecodeLocation(hash string) (lat, lng float64, err error) {
	if !ValidGeohash(hash) {
		return 0, 0, fmt.Errorf("geohash %q: %w", hash, ErrInvalidInput)
	}
	c := geohash.Decode(hash).Center()
	return c.Lat(), c.Lng(), nil
}
