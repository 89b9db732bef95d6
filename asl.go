package powmem

import (
	"encoding/hex"
	"fmt"
)

// ASL holds the three attributes embedded in a public key.
type ASL struct {
	Age      uint8  // 0..3, see AgeLabel
	Sex      uint8  // 0..3, see SexLabel
	Location string // geohash
}

var (
	ageLabels = [4]string{"16+", "24+", "32+", "40+"}
	sexLabels = [4]string{"Female", "Male", "Nonbinary", "Bot"}
)

// AgeLabel returns the display label for an age code.
func AgeLabel(age uint8) string {
	if int(age) >= len(ageLabels) {
		return "?"
	}
	return ageLabels[age]
}

// SexLabel returns the display label for a sex code.
func SexLabel(sex uint8) string {
	if int(sex) >= len(sexLabels) {
		return "?"
	}
	return sexLabels[sex]
}

func (a ASL) String() string {
	return fmt.Sprintf("%s %s %s", AgeLabel(a.Age), SexLabel(a.Sex), a.Location)
}

// ValidateASL checks that age and sex fit in two bits and that location is a
// geohash.
func ValidateASL(age, sex uint8, location string) error {
	if age > 3 {
		return fmt.Errorf("age %d out of range 0..3: %w", age, ErrInvalidInput)
	}
	if sex > 3 {
		return fmt.Errorf("sex %d out of range 0..3: %w", sex, ErrInvalidInput)
	}
	if !ValidGeohash(location) {
		return fmt.Errorf("location %q is not a geohash: %w", location, ErrInvalidInput)
	}
	return nil
}

// pubKeyLen is the size of an x-only public key.
const pubKeyLen = 32

// Target is the bit pattern a public key has to start with.
type Target struct {
	Prefix []byte // RoundByte(Bits) bytes
	Mask   byte   // applied to the last byte of Prefix
	Bits   int    // geobits + 4
}

// NewTarget builds the prefix for an attribute triple. The geohash stream
// is packed first, then sex and age are shifted in so that positions 0..3
// hold age bit 0, age bit 1, sex bit 0 and sex bit 1.
func NewTarget(age, sex uint8, location string, geobits int) (*Target, error) {
	if err := ValidateASL(age, sex, location); err != nil {
		return nil, err
	}
	nbits := geobits + 4
	if RoundByte(nbits) > pubKeyLen {
		return nil, fmt.Errorf("%d geobits do not fit a %d-byte public key: %w", geobits, pubKeyLen, ErrInvalidPrecision)
	}
	prefix, err := PackGeo(location, geobits, make([]byte, RoundByte(nbits)))
	if err != nil {
		return nil, err
	}
	ShiftIn(prefix, sex&0b10)
	ShiftIn(prefix, sex&1)
	ShiftIn(prefix, age&0b10)
	ShiftIn(prefix, age&1)

	mask := byte(0xff)
	if r := nbits % 8; r != 0 {
		mask = byte(1<<r) - 1
	}
	return &Target{Prefix: prefix, Mask: mask, Bits: nbits}, nil
}

// Match reports whether pub starts with the target prefix. All bytes but
// the last must be equal, the last one only under Mask.
func (t *Target) Match(pub []byte) bool {
	n := len(t.Prefix)
	if len(pub) < n {
		return false
	}
	for i := 0; i < n-1; i++ {
		if pub[i] != t.Prefix[i] {
			return false
		}
	}
	return pub[n-1]&t.Mask == t.Prefix[n-1]&t.Mask
}

// DecodeASL extracts the attributes from a public key. Only the first
// RoundByte(geobits+4) bytes are read and pub is left untouched.
func DecodeASL(pub []byte, geobits int) (ASL, error) {
	return decodeASL(pub, geobits, UnpackGeo)
}

// DecodeASLRaw is DecodeASL without trailing zero stripping of the
// location.
func DecodeASLRaw(pub []byte, geobits int) (ASL, error) {
	return decodeASL(pub, geobits, UnpackGeoRaw)
}

// DecodeASLHex decodes a hex encoded public key.
func DecodeASLHex(pub string, geobits int) (ASL, error) {
	b, err := hex.DecodeString(pub)
	if err != nil {
		return ASL{}, fmt.Errorf("decoding public key hex: %v: %w", err, ErrInvalidInput)
	}
	return DecodeASL(b, geobits)
}

func decodeASL(pub []byte, geobits int, unpack func([]byte, int) (string, error)) (ASL, error) {
	if geobits < 5 {
		return ASL{}, fmt.Errorf("decoding %d geobits: %w", geobits, ErrInvalidPrecision)
	}
	n := RoundByte(geobits + 4)
	if len(pub) < n {
		return ASL{}, fmt.Errorf("need %d bytes, got %d: %w", n, len(pub), ErrInvalidKeyLength)
	}
	cpy := make([]byte, n)
	copy(cpy, pub)

	var a ASL
	a.Age = ShiftOut(cpy, 0)
	a.Age |= ShiftOut(cpy, 0) << 1
	a.Sex = ShiftOut(cpy, 0)
	a.Sex |= ShiftOut(cpy, 0) << 1
	loc, err := unpack(cpy, geobits)
	if err != nil {
		return ASL{}, err
	}
	a.Location = loc
	return a, nil
}
