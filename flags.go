package powmem

import (
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/golang/geo/s2"
)

// flagBits is the precision the built-in flag locations are packed at.
const flagBits = 40

// earthRadiusKm converts s2 angles to kilometers.
const earthRadiusKm = 6371.01

const pirateFlag = "\U0001F3F4\u200d\u2620\ufe0f"

// Flag is a country flag pinned to a location.
type Flag struct {
	Symbol  string // emoji flag
	Country string // ISO 3166-1 alpha-2, empty for the pirate flag
	Geohash string
}

// FlagMatch is a flag ranked against a query.
type FlagMatch struct {
	Flag
	Distance   uint32  // prefix-similarity distance, see XORDistance
	Kilometers float64 // great-circle distance between geohash centers
}

type flagEntry struct {
	Flag
	packed []byte
	ll     s2.LatLng
}

// flagTable is built on first use and never written afterwards.
var flagTable = sync.OnceValue(func() []flagEntry {
	table := make([]flagEntry, 0, len(flagPoints))
	for _, p := range flagPoints {
		packed, err := PackGeo(p.geohash, flagBits, nil)
		if err != nil {
			panic(fmt.Sprintf("flag %q: %v", p.country, err))
		}
		lat, lng, err := DecodeLocation(p.geohash)
		if err != nil {
			panic(fmt.Sprintf("flag %q: %v", p.country, err))
		}
		table = append(table, flagEntry{
			Flag:   Flag{Symbol: flagSymbol(p.country), Country: p.country, Geohash: p.geohash},
			packed: packed,
			ll:     s2.LatLngFromDegrees(lat, lng),
		})
	}
	return table
})

// flagSymbol spells a country code in regional indicator symbols.
func flagSymbol(country string) string {
	if len(country) != 2 {
		return pirateFlag
	}
	return string([]rune{
		rune(country[0]-'A') + 0x1F1E6,
		rune(country[1]-'A') + 0x1F1E6,
	})
}

// Flags returns the built-in flag table.
func Flags() []Flag {
	table := flagTable()
	flags := make([]Flag, len(table))
	for i, e := range table {
		flags[i] = e.Flag
	}
	return flags
}

// XORDistance compares the first 32 positions of two bit buffers. Both are
// zero-extended to 4 bytes, then the XOR of each popped pair of bits is
// shifted into an accumulator read as a little-endian uint32. A mismatch at
// position 0 weighs 1<<31 and one at position 31 weighs 1, so the value is
// small when the leading geohash bits agree.
func XORDistance(a, b []byte) uint32 {
	var out, ac, bc [4]byte
	copy(ac[:], a)
	copy(bc[:], b)
	for i := 0; i < 32; i++ {
		ShiftIn(out[:], ShiftOut(ac[:], 0)^ShiftOut(bc[:], 0))
	}
	return uint32(out[0]) | uint32(out[1])<<8 | uint32(out[2])<<16 | uint32(out[3])<<24
}

// NearestFlags ranks the flag table against a geohash packed at bits
// precision and returns the k closest. Ties keep table order.
func NearestFlags(hash string, bits, k int) ([]FlagMatch, error) {
	src, err := PackGeo(hash, bits, nil)
	if err != nil {
		return nil, err
	}
	lat, lng, err := DecodeLocation(hash)
	if err != nil {
		return nil, err
	}
	query := s2.LatLngFromDegrees(lat, lng)

	table := flagTable()
	matches := make([]FlagMatch, len(table))
	for i, e := range table {
		matches[i] = FlagMatch{
			Flag:       e.Flag,
			Distance:   XORDistance(src, e.packed),
			Kilometers: query.Distance(e.ll).Radians() * earthRadiusKm,
		}
	}
	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Distance < matches[j].Distance
	})
	if k > 0 && k < len(matches) {
		matches = matches[:k]
	}
	return matches, nil
}

// FlagOf returns the emoji flag nearest to a geohash.
func FlagOf(hash string, bits int) (string, error) {
	m, err := NearestFlags(hash, bits, 1)
	if err != nil {
		return "", err
	}
	return m[0].Symbol, nil
}

// ReverseFlag returns the flag whose location is closest to a coordinate by
// great-circle distance.
func ReverseFlag(lat, lng float64) (FlagMatch, error) {
	if math.IsNaN(lat) || math.IsNaN(lng) || math.IsInf(lat, 0) || math.IsInf(lng, 0) {
		return FlagMatch{}, fmt.Errorf("coordinate %v,%v: %w", lat, lng, ErrInvalidInput)
	}
	query := s2.LatLngFromDegrees(lat, lng)

	var best FlagMatch
	bestDist := math.Inf(1)
	for _, e := range flagTable() {
		d := float64(query.Distance(e.ll))
		if d < bestDist {
			bestDist = d
			best = FlagMatch{Flag: e.Flag, Kilometers: d * earthRadiusKm}
		}
	}
	return best, nil
}

// minFlagCount is a sanity floor for the built-in table.
const minFlagCount = 200

// ValidateFlags checks the flag table: it must be complete, every country
// code unique, and well known locations must resolve to their own flag.
func ValidateFlags() error {
	table := flagTable()
	if len(table) < minFlagCount {
		return fmt.Errorf("flag count too low: got %d, want >= %d", len(table), minFlagCount)
	}
	seen := make(map[string]bool, len(table))
	for _, e := range table {
		if seen[e.Country] {
			return fmt.Errorf("duplicate flag %q", e.Country)
		}
		seen[e.Country] = true
	}

	tests := []struct {
		geohash string
		bits    int
		want    string
	}{
		{"u6282sv", 15, "SE"},
		{"gcpvj", 25, "GB"},
		{"xn774", 25, "JP"},
	}
	for _, tc := range tests {
		m, err := NearestFlags(tc.geohash, tc.bits, 1)
		if err != nil {
			return fmt.Errorf("nearestFlags(%q): %w", tc.geohash, err)
		}
		if m[0].Country != tc.want {
			return fmt.Errorf("nearestFlags(%q, %d) = %q, want %q", tc.geohash, tc.bits, m[0].Country, tc.want)
		}
	}
	return nil
}
