// Copyright © 2019 Binance
//
// This file is part of Binance. The full Binance copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package beacon

import (
	"fmt"
)

// Error is the error type Loop.Run returns for a fatal failure (a failed
// Prove or reconstruction); apart from it, Run returns only ctx.Err() on
// cancellation. Cryptographic verification failures are handled internally
// and never become a Go error (see spec §7). It carries enough context for
// a caller to log or react to the failure.
type Error struct {
	cause     error
	task      string
	epoch     uint64
	victim    int
	hasVictim bool
}

// NewError wraps cause with task/epoch context. victim, when >= 0, names
// the participant id this error concerns (e.g. "own share index out of
// bounds").
func NewError(cause error, task string, epoch uint64, victim int) *Error {
	return &Error{cause: cause, task: task, epoch: epoch, victim: victim, hasVictim: victim >= 0}
}

func (e *Error) Unwrap() error { return e.cause }

func (e *Error) Cause() error { return e.cause }

func (e *Error) Task() string { return e.task }

func (e *Error) Epoch() uint64 { return e.epoch }

func (e *Error) Victim() (int, bool) { return e.victim, e.hasVictim }

func (e *Error) Error() string {
	if e == nil || e.cause == nil {
		return "beacon: nil error"
	}
	if e.hasVictim {
		return fmt.Sprintf("task %s, epoch %d, participant %d: %s", e.task, e.epoch, e.victim, e.cause.Error())
	}
	return fmt.Sprintf("task %s, epoch %d: %s", e.task, e.epoch, e.cause.Error())
}
