// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package setup

import (
	"fmt"

	"github.com/DimitrisPapac/GRandLine/beacon"
	"github.com/DimitrisPapac/GRandLine/crypto/pvss"
	"github.com/DimitrisPapac/GRandLine/curve"
)

// Load reads the four setup files for an (n, t) run from dir and builds
// the beacon Parameters for participant selfID, after computing the
// qualification set and checking selfID is in it (spec §6: "the core
// consumes only qualified ids"). Grounded on
// original_source/src/config/config.rs's parse_files, which performs the
// same qualification loop at load time.
func Load(e curve.Engine, curveName curve.Name, dir string, n, t, selfID int) (*beacon.Parameters, map[int]bool, error) {
	art, err := ReadArtifacts(e, curveName, dir, n, t)
	if err != nil {
		return nil, nil, err
	}
	if selfID < 0 || selfID >= len(art.Shares) {
		return nil, nil, fmt.Errorf("setup: participant id %d out of range [0, %d)", selfID, len(art.Shares))
	}

	qualified, err := pvss.Qualify(e, art.Config.SRS, art.PublicKeys, art.Commitments)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: compute qualification set: %w", err)
	}
	if !qualified[selfID] {
		return nil, nil, fmt.Errorf("setup: participant %d failed its own qualification check", selfID)
	}

	self := art.Shares[selfID]
	store, err := pvss.NewStore(art.Commitments, selfID, self.Witness)
	if err != nil {
		return nil, nil, fmt.Errorf("setup: build commitment store: %w", err)
	}

	params := beacon.NewParameters(e, art.Config, store, self.Share)
	return params, qualified, nil
}
