package powmem

import "errors"

var (
	// ErrInvalidPrecision is returned when fewer than 5 bits (one geohash
	// character) of precision are requested.
	ErrInvalidPrecision = errors.New("powmem: precision has to be at least 5 bits")

	// ErrBufferUnderflow is returned when a buffer is too small to hold the
	// requested number of bits.
	ErrBufferUnderflow = errors.New("powmem: buffer too small")

	// ErrInvalidKeyLength is returned when a public key is shorter than the
	// prefix it is supposed to carry.
	ErrInvalidKeyLength = errors.New("powmem: invalid key length")

	// ErrNotFound is returned when a bounded search ran out of tries. It is
	// an expected outcome; callers retry with fresh randomness.
	ErrNotFound = errors.New("powmem: no matching key found")

	// ErrInvalidInput is returned for out of range attributes and malformed
	// geohashes.
	ErrInvalidInput = errors.New("powmem: invalid input")
)
