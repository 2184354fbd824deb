// Package pvss holds the immutable, per-run artifacts the beacon core
// consumes but never produces itself: the structured reference string and
// threshold parameters (Config), each participant's commitment triple
// (Commitment / Store, spec §4.1), and the setup-time
// qualification check (spec §6). Generating these artifacts is the job of
// the setup package; this package only defines their shape and the
// read-only operations the core performs against them.
package pvss

import (
	"fmt"

	"github.com/DimitrisPapac/GRandLine/curve"
)

// SRS is the structured reference string: two generators of the encryption
// group (G1) and commitment group (G2) respectively (spec §3).
type SRS struct {
	G1 curve.G1
	G2 curve.G2
}

// Config is the immutable per-run configuration (spec §3). Invariant:
// N >= 2*T + 2, enforced by NewConfig.
type Config struct {
	Curve curve.Name
	SRS   SRS
	T     int
	N     int
}

// NewConfig validates and constructs a Config. It is the only place the
// N >= 2T+2 invariant is checked; callers that deserialize a Config from
// disk must still call this (or re-validate equivalently) before use.
func NewConfig(curveName curve.Name, srs SRS, t, n int) (*Config, error) {
	if t < 0 {
		return nil, fmt.Errorf("pvss: threshold t must be non-negative, got %d", t)
	}
	if n < 2*t+2 {
		return nil, fmt.Errorf("pvss: invariant N >= 2T+2 violated (N=%d, T=%d)", n, t)
	}
	return &Config{Curve: curveName, SRS: srs, T: t, N: n}, nil
}
