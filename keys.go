package powmem

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcec/v2/schnorr"
	"github.com/btcsuite/btcd/btcutil/bech32"
	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// KeySource generates secret keys and derives their public keys.
type KeySource interface {
	// RandomPrivateKey returns a uniformly random 32-byte secret that is a
	// valid curve scalar.
	RandomPrivateKey() ([]byte, error)
	// PublicKeyFrom returns the 32-byte x-only public key of secret.
	PublicKeyFrom(secret []byte) ([]byte, error)
}

// SchnorrKeys is a KeySource for secp256k1 with BIP-340 x-only public keys.
// A SchnorrKeys is not safe for concurrent use; give each worker its own.
type SchnorrKeys struct {
	rand io.Reader
	buf  [32]byte
}

// NewSchnorrKeys returns a key source reading from crypto/rand.
func NewSchnorrKeys() *SchnorrKeys {
	return &SchnorrKeys{rand: rand.Reader}
}

// NewSchnorrKeysFrom returns a key source reading entropy from r.
func NewSchnorrKeysFrom(r io.Reader) *SchnorrKeys {
	return &SchnorrKeys{rand: r}
}

// RandomPrivateKey draws 32 bytes until they form a scalar in [1, N-1].
func (k *SchnorrKeys) RandomPrivateKey() ([]byte, error) {
	var s secp256k1.ModNScalar
	for {
		if _, err := io.ReadFull(k.rand, k.buf[:]); err != nil {
			return nil, fmt.Errorf("reading entropy: %w", err)
		}
		if overflow := s.SetByteSlice(k.buf[:]); overflow || s.IsZero() {
			continue
		}
		return secp256k1.NewPrivateKey(&s).Serialize(), nil
	}
}

// PublicKeyFrom derives the x-only public key of a 32-byte secret.
func (k *SchnorrKeys) PublicKeyFrom(secret []byte) ([]byte, error) {
	return PublicKeyFrom(secret)
}

// PublicKeyFrom derives the x-only public key of a 32-byte secret.
func PublicKeyFrom(secret []byte) ([]byte, error) {
	if len(secret) != 32 {
		return nil, fmt.Errorf("secret key is %d bytes, want 32: %w", len(secret), ErrInvalidInput)
	}
	_, pub := btcec.PrivKeyFromBytes(secret)
	return schnorr.SerializePubKey(pub), nil
}

const (
	npubPrefix = "npub"
	nsecPrefix = "nsec"
)

// EncodeNpub renders a 32-byte public key as bech32 "npub1...".
func EncodeNpub(pub []byte) (string, error) {
	return encodeBech32(npubPrefix, pub)
}

// EncodeNsec renders a 32-byte secret key as bech32 "nsec1...".
func EncodeNsec(secret []byte) (string, error) {
	return encodeBech32(nsecPrefix, secret)
}

// DecodeNpub returns the raw public key of an "npub1..." string.
func DecodeNpub(s string) ([]byte, error) {
	return decodeBech32(npubPrefix, s)
}

func encodeBech32(hrp string, key []byte) (string, error) {
	if len(key) != 32 {
		return "", fmt.Errorf("%s key is %d bytes, want 32: %w", hrp, len(key), ErrInvalidKeyLength)
	}
	conv, err := bech32.ConvertBits(key, 8, 5, true)
	if err != nil {
		return "", fmt.Errorf("converting %s key: %w", hrp, err)
	}
	return bech32.Encode(hrp, conv)
}

func decodeBech32(hrp, s string) ([]byte, error) {
	got, data, err := bech32.Decode(s)
	if err != nil {
		return nil, fmt.Errorf("decoding bech32: %v: %w", err, ErrInvalidInput)
	}
	if got != hrp {
		return nil, fmt.Errorf("bech32 prefix %q, want %q: %w", got, hrp, ErrInvalidInput)
	}
	key, err := bech32.ConvertBits(data, 5, 8, false)
	if err != nil {
		return nil, fmt.Errorf("converting %s key: %v: %w", hrp, err, ErrInvalidInput)
	}
	if len(key) != 32 {
		return nil, fmt.Errorf("%s key is %d bytes, want 32: %w", hrp, len(key), ErrInvalidKeyLength)
	}
	return key, nil
}
