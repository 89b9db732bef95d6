package powmem

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	"github.com/andreiashu/powmem/internal/logging"
)

// ctxCheckInterval is how many tries pass between context checks.
const ctxCheckInterval = 256

// Roll draws up to MaxTries random secret keys and returns the first one,
// hex encoded, whose public key carries the attribute prefix.
//
// Running out of tries returns ErrNotFound; the caller is expected to call
// again with fresh randomness. Roll runs on the calling goroutine.
func Roll(ctx context.Context, ks KeySource, age, sex uint8, location string, opts ...Option) (string, error) {
	cfg := newConfig(opts)
	t, err := NewTarget(age, sex, location, cfg.Geobits)
	if err != nil {
		return "", err
	}
	secret, _, err := rollTarget(ctx, ks, t, cfg.MaxTries, nil)
	if err != nil {
		return "", err
	}
	return hex.EncodeToString(secret), nil
}

// rollTarget is the search loop. It returns the matching secret and public
// key. Every try is added to tally when it is not nil.
func rollTarget(ctx context.Context, ks KeySource, t *Target, maxTries int, tally *atomic.Uint64) (secret, pub []byte, err error) {
	var done int
	defer func() {
		if tally != nil {
			tally.Add(uint64(done))
		}
	}()
	for done < maxTries {
		if done%ctxCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return nil, nil, err
			}
		}
		if secret, err = ks.RandomPrivateKey(); err != nil {
			return nil, nil, err
		}
		if pub, err = ks.PublicKeyFrom(secret); err != nil {
			return nil, nil, err
		}
		done++
		if t.Match(pub) {
			return secret, pub, nil
		}
	}
	return nil, nil, ErrNotFound
}

// KeyPair is a mined key pair.
type KeyPair struct {
	Secret []byte
	Public []byte
	ASL    ASL
	Tries  uint64 // tries by all workers when the key was found
}

// SecretHex returns the secret key hex encoded.
func (r *KeyPair) SecretHex() string { return hex.EncodeToString(r.Secret) }

// PublicHex returns the public key hex encoded.
func (r *KeyPair) PublicHex() string { return hex.EncodeToString(r.Public) }

// Miner runs Roll batches on several goroutines until one of them finds a
// key. A Miner can be reused but not for concurrent searches.
type Miner struct {
	newKeys func() KeySource
	cfg     *Config
	tries   atomic.Uint64
}

// NewMiner returns a Miner. newKeys is called once per worker; nil uses
// NewSchnorrKeys.
func NewMiner(newKeys func() KeySource, opts ...Option) *Miner {
	if newKeys == nil {
		newKeys = func() KeySource { return NewSchnorrKeys() }
	}
	return &Miner{newKeys: newKeys, cfg: newConfig(opts)}
}

// Tries returns the number of keys tested by the current or last search.
// Workers report after each batch so the value trails slightly.
func (m *Miner) Tries() uint64 {
	return m.tries.Load()
}

// errFound stops the other workers once a key is found.
var errFound = errors.New("powmem: key found")

// Mine searches for a key carrying the given attributes. It returns
// ErrNotFound when the budget is used up and ctx.Err() when ctx is
// cancelled first.
func (m *Miner) Mine(ctx context.Context, age, sex uint8, location string) (*KeyPair, error) {
	t, err := NewTarget(age, sex, location, m.cfg.Geobits)
	if err != nil {
		return nil, err
	}
	m.tries.Store(0)
	logging.Debugf("mining %d bits %s with %d workers", t.Bits, BinString(t.Prefix, t.Bits), m.cfg.Workers)

	var budget *atomic.Int64
	if m.cfg.Budget > 0 {
		budget = new(atomic.Int64)
		budget.Store(int64(m.cfg.Budget))
	}

	found := make(chan *KeyPair, 1)
	eg, egCtx := errgroup.WithContext(ctx)
	for w := 0; w < m.cfg.Workers; w++ {
		w, ks := w, m.newKeys()
		eg.Go(func() error {
			for {
				n := claim(budget, m.cfg.BatchSize)
				if n == 0 {
					return nil
				}
				secret, pub, err := rollTarget(egCtx, ks, t, n, &m.tries)
				switch {
				case err == nil:
					select {
					case found <- &KeyPair{Secret: secret, Public: pub}:
						logging.Infof("worker %d found a key after %d tries", w, m.tries.Load())
					default:
					}
					return errFound
				case errors.Is(err, ErrNotFound):
					if m.cfg.Progress != nil {
						m.cfg.Progress(m.tries.Load())
					}
				default:
					return err
				}
			}
		})
	}

	err = eg.Wait()
	select {
	case res := <-found:
		a, err := DecodeASL(res.Public, m.cfg.Geobits)
		if err != nil {
			return nil, err
		}
		res.ASL = a
		res.Tries = m.tries.Load()
		return res, nil
	default:
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, ctxErr
	}
	if err != nil && !errors.Is(err, errFound) {
		return nil, fmt.Errorf("mining: %w", err)
	}
	return nil, ErrNotFound
}

// claim takes up to n tries from budget. A nil budget is unlimited.
func claim(budget *atomic.Int64, n int) int {
	if budget == nil {
		return n
	}
	left := budget.Add(-int64(n))
	switch {
	case left >= 0:
		return n
	case left > -int64(n):
		return n + int(left)
	default:
		return 0
	}
}
