package main

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// hexBytes decodes a hex string, tolerating a 0x prefix.
func hexBytes(s string) ([]byte, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("decoding hex %q: %w", s, err)
	}
	return b, nil
}
