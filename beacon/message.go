// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package beacon

import (
	"fmt"

	"github.com/DimitrisPapac/GRandLine/crypto/dleq"
)

// SigmaMessage is the wire-level contribution a participant broadcasts for
// an epoch (spec §5, §6): its Sigma contribution plus the DLEQ proof tying
// it to the sender's commitment, tagged with the sender id and epoch so a
// receiver can validate and file it without additional context.
type SigmaMessage struct {
	Epoch  uint64
	Sender int
	Sigma  Sigma
	Proof  *dleq.Proof
}

// ValidateBasic performs the structural checks every SigmaMessage must pass
// before being handed to the proof engine (spec §6): sender in range, proof
// present. It does not perform any cryptographic check; that is the proof
// engine's job once the message has cleared these cheap gates.
func (m *SigmaMessage) ValidateBasic(n int) error {
	if m.Sender < 0 || m.Sender >= n {
		return fmt.Errorf("beacon: sigma message sender %d out of range [0, %d)", m.Sender, n)
	}
	if m.Proof == nil {
		return fmt.Errorf("beacon: sigma message from %d missing proof", m.Sender)
	}
	return nil
}
