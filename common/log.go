// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	golog "github.com/ipfs/go-log"
)

// Subsystem is the ipfs/go-log subsystem name shared by every package in
// this module. The CLI binds it to the `log_level` argument via SetLogLevel.
const Subsystem = "grandline"

// Logger is the structured logger shared across the beacon engine, the
// setup collaborator and the transport collaborator.
var Logger = golog.Logger(Subsystem)

// SetLogLevel adjusts the verbosity of Logger. Valid levels are the ones
// accepted by ipfs/go-log: "debug", "info", "warn", "error", "fatal", "panic".
func SetLogLevel(level string) error {
	return golog.SetLogLevel(Subsystem, level)
}
