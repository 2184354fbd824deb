package pvss

import (
	"fmt"

	"github.com/DimitrisPapac/GRandLine/curve"
)

// Commitment is participant i's public commitment pair from the PVSS
// dealing (spec §3). Resolves the spec's §9 open question on the `a_i`
// field: the original source stores a scalar witness in every record, but
// only the owner's value is ever used, and leaking it to peers would hand
// them another participant's private PVSS share information. This
// implementation omits the witness from the peer-visible record entirely;
// the owning node's witness is held out-of-band by Store and
// never serialized alongside peer commitments (see setup.Artifacts).
type Commitment struct {
	ID    int
	Part1 curve.G2 // = g2 * a_i
	Part2 curve.G1 // = sk_i - g1 * a_i
}

// Store is the read-only, O(1)-lookup commitment table described in spec
// §4.1. It is safe to share across goroutines once constructed: nothing
// mutates after NewStore returns.
type Store struct {
	n           int
	selfID      int
	selfWitness curve.Scalar
	byID        []Commitment
}

// NewStore builds a commitment store. commitments must have exactly one
// entry per id in [0, n) in index order, and selfID must have a
// corresponding entry; selfWitness is the caller's own PVSS scalar (a_self),
// supplied out-of-band by the setup collaborator rather than embedded in
// any commitment record.
func NewStore(commitments []Commitment, selfID int, selfWitness curve.Scalar) (*Store, error) {
	n := len(commitments)
	if selfID < 0 || selfID >= n {
		return nil, fmt.Errorf("pvss: self id %d out of range [0, %d)", selfID, n)
	}
	byID := make([]Commitment, n)
	for i, c := range commitments {
		if c.ID != i {
			return nil, fmt.Errorf("pvss: commitment at index %d has id %d", i, c.ID)
		}
		byID[i] = c
	}
	return &Store{n: n, selfID: selfID, selfWitness: selfWitness, byID: byID}, nil
}

// Get returns the (part1, part2) pair for id. Undefined (returns false) for
// ids outside [0, N) — callers must range-check, per spec §4.1.
func (s *Store) Get(id int) (curve.G2, curve.G1, bool) {
	if id < 0 || id >= s.n {
		return curve.G2{}, curve.G1{}, false
	}
	c := s.byID[id]
	return c.Part1, c.Part2, true
}

// OwnWitness returns a_self, the scalar only this node ever needs.
func (s *Store) OwnWitness() curve.Scalar {
	return s.selfWitness
}

// SelfID returns the local participant id this store was built for.
func (s *Store) SelfID() int {
	return s.selfID
}

// N returns the total participant count.
func (s *Store) N() int {
	return s.n
}
