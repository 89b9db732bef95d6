package powmem

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"math/rand"
	"sync/atomic"
	"testing"
)

// hashKeys is a fast KeySource for tests: the public key is the SHA-256 of
// the secret.
type hashKeys struct {
	rng *rand.Rand
}

func newHashKeys(seed int64) *hashKeys {
	return &hashKeys{rng: rand.New(rand.NewSource(seed))}
}

func (k *hashKeys) RandomPrivateKey() ([]byte, error) {
	b := make([]byte, 32)
	k.rng.Read(b)
	return b, nil
}

func (k *hashKeys) PublicKeyFrom(secret []byte) ([]byte, error) {
	sum := sha256.Sum256(secret)
	return sum[:], nil
}

// zeroKeys never produces a public key with a set bit.
type zeroKeys struct{}

func (zeroKeys) RandomPrivateKey() ([]byte, error)    { return make([]byte, 32), nil }
func (zeroKeys) PublicKeyFrom([]byte) ([]byte, error) { return make([]byte, 32), nil }

var errEntropy = errors.New("entropy exhausted")

type failingKeys struct{}

func (failingKeys) RandomPrivateKey() ([]byte, error)    { return nil, errEntropy }
func (failingKeys) PublicKeyFrom([]byte) ([]byte, error) { return nil, errEntropy }

func seededKeys() func() KeySource {
	var seed atomic.Int64
	return func() KeySource { return newHashKeys(seed.Add(1)) }
}

func TestRollRoundTrip(t *testing.T) {
	ks := newHashKeys(1)
	for age := uint8(0); age < 4; age++ {
		for sex := uint8(0); sex < 4; sex++ {
			secretHex, err := Roll(context.Background(), ks, age, sex, "u6282sv",
				WithGeobits(10), WithMaxTries(1<<22))
			if err != nil {
				t.Fatalf("Roll(%d, %d) error: %v", age, sex, err)
			}
			secret, err := hex.DecodeString(secretHex)
			if err != nil {
				t.Fatal(err)
			}
			pub, _ := ks.PublicKeyFrom(secret)
			got, err := DecodeASL(pub, 10)
			if err != nil {
				t.Fatal(err)
			}
			if want := (ASL{Age: age, Sex: sex, Location: "u6"}); got != want {
				t.Errorf("Roll(%d, %d) decodes to %+v, want %+v", age, sex, got, want)
			}
		}
	}
}

func TestRollMaskedByte(t *testing.T) {
	ks := newHashKeys(2)
	secretHex, err := Roll(context.Background(), ks, 2, 1, "u6282sv", WithGeobits(12), WithMaxTries(1<<24))
	if err != nil {
		t.Fatal(err)
	}
	secret, _ := hex.DecodeString(secretHex)
	pub, _ := ks.PublicKeyFrom(secret)
	target, _ := NewTarget(2, 1, "u6282sv", 12)
	if !target.Match(pub) {
		t.Errorf("public key %x does not carry prefix %x/%#x", pub, target.Prefix, target.Mask)
	}
}

func TestRollSchnorr(t *testing.T) {
	ks := NewSchnorrKeys()
	secretHex, err := Roll(context.Background(), ks, 1, 3, "9q8yyk", WithGeobits(5), WithMaxTries(1<<20))
	if err != nil {
		t.Fatal(err)
	}
	pub, err := PublicKeyFrom(mustHex(t, secretHex))
	if err != nil {
		t.Fatal(err)
	}
	got, err := DecodeASL(pub, 5)
	if err != nil {
		t.Fatal(err)
	}
	if want := (ASL{Age: 1, Sex: 3, Location: "9"}); got != want {
		t.Errorf("DecodeASL() = %+v, want %+v", got, want)
	}
}

func TestRollNotFound(t *testing.T) {
	_, err := Roll(context.Background(), zeroKeys{}, 2, 1, "u6282sv", WithMaxTries(1000))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Roll() error = %v, want %v", err, ErrNotFound)
	}
}

func TestRollErrors(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Roll(ctx, zeroKeys{}, 2, 1, "u6282sv"); !errors.Is(err, context.Canceled) {
		t.Errorf("Roll(cancelled) error = %v, want %v", err, context.Canceled)
	}
	if _, err := Roll(context.Background(), failingKeys{}, 2, 1, "u6282sv"); !errors.Is(err, errEntropy) {
		t.Errorf("Roll(failing keys) error = %v, want %v", err, errEntropy)
	}
	if _, err := Roll(context.Background(), zeroKeys{}, 5, 1, "u6282sv"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Roll(age 5) error = %v, want %v", err, ErrInvalidInput)
	}
	if _, err := Roll(context.Background(), zeroKeys{}, 2, 1, "u6282sv", WithGeobits(300), WithMaxTries(10)); !errors.Is(err, ErrInvalidPrecision) {
		t.Errorf("Roll(300 geobits) error = %v, want %v", err, ErrInvalidPrecision)
	}
}

func TestMinerFindsKey(t *testing.T) {
	m := NewMiner(seededKeys(), WithGeobits(15), WithWorkers(4), WithBatchSize(500))
	res, err := m.Mine(context.Background(), 3, 2, "gcpvj")
	if err != nil {
		t.Fatal(err)
	}
	if want := (ASL{Age: 3, Sex: 2, Location: "gcp"}); res.ASL != want {
		t.Errorf("Mine() ASL = %+v, want %+v", res.ASL, want)
	}
	sum := sha256.Sum256(res.Secret)
	if res.PublicHex() != hex.EncodeToString(sum[:]) {
		t.Errorf("public key %s does not belong to secret %s", res.PublicHex(), res.SecretHex())
	}
	if res.Tries == 0 || m.Tries() < res.Tries {
		t.Errorf("tries: result %d, miner %d", res.Tries, m.Tries())
	}
}

func TestMinerBudget(t *testing.T) {
	var reports atomic.Int32
	m := NewMiner(func() KeySource { return zeroKeys{} },
		WithWorkers(3), WithBatchSize(7), WithBudget(100),
		WithProgress(func(uint64) { reports.Add(1) }))
	_, err := m.Mine(context.Background(), 2, 1, "u6282sv")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("Mine() error = %v, want %v", err, ErrNotFound)
	}
	if got := m.Tries(); got != 100 {
		t.Errorf("Tries() = %d, want 100", got)
	}
	// 100 tries in batches of 7 is 15 batches.
	if got := reports.Load(); got != 15 {
		t.Errorf("progress reports = %d, want 15", got)
	}
}

func TestMinerErrors(t *testing.T) {
	m := NewMiner(func() KeySource { return failingKeys{} }, WithWorkers(2))
	if _, err := m.Mine(context.Background(), 2, 1, "u6282sv"); !errors.Is(err, errEntropy) {
		t.Errorf("Mine(failing keys) error = %v, want %v", err, errEntropy)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m = NewMiner(func() KeySource { return zeroKeys{} }, WithWorkers(2))
	if _, err := m.Mine(ctx, 2, 1, "u6282sv"); !errors.Is(err, context.Canceled) {
		t.Errorf("Mine(cancelled) error = %v, want %v", err, context.Canceled)
	}

	if _, err := m.Mine(context.Background(), 0, 0, "u6282sv!"); !errors.Is(err, ErrInvalidInput) {
		t.Errorf("Mine(bad geohash) error = %v, want %v", err, ErrInvalidInput)
	}

	m = NewMiner(func() KeySource { return zeroKeys{} }, WithGeobits(300))
	if _, err := m.Mine(context.Background(), 0, 0, "u6282sv"); !errors.Is(err, ErrInvalidPrecision) {
		t.Errorf("Mine(300 geobits) error = %v, want %v", err, ErrInvalidPrecision)
	}
}

func TestClaim(t *testing.T) {
	if got := claim(nil, 10); got != 10 {
		t.Errorf("claim(nil, 10) = %d, want 10", got)
	}
	budget := new(atomic.Int64)
	budget.Store(25)
	var got []int
	for i := 0; i < 5; i++ {
		got = append(got, claim(budget, 10))
	}
	want := []int{10, 10, 5, 0, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("claims = %v, want %v", got, want)
		}
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := newConfig([]Option{WithWorkers(0), WithBatchSize(-3)})
	if cfg.Workers != 1 || cfg.BatchSize != 1 {
		t.Errorf("workers %d batch %d, want 1 and 1", cfg.Workers, cfg.BatchSize)
	}
	if cfg.Geobits != DefaultGeobits || cfg.MaxTries != 500000 {
		t.Errorf("geobits %d max tries %d", cfg.Geobits, cfg.MaxTries)
	}
}
