// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xcvrerr holds the sentinel errors surfaced by the emulator
// core, per the error kinds enumerated in the design's error-handling
// section. Callers compare with errors.Is; wrapped errors carry offset/
// page/address context via fmt.Errorf("...: %w", ...).
package xcvrerr

import "errors"

var (
	// ErrNoModule is returned when the bus is addressed but no module
	// is attached at the slot.
	ErrNoModule = errors.New("xcvr: no module attached")

	// ErrInvalidAddress is returned when the device address is not
	// supported by the attached module's family.
	ErrInvalidAddress = errors.New("xcvr: invalid device address")

	// ErrOutOfRange is returned when a page is not installed or an
	// offset falls outside 0..255.
	ErrOutOfRange = errors.New("xcvr: out of range")

	// ErrAccessDenied is returned on a write to a read-only or
	// reserved byte under a policy that reports such writes.
	ErrAccessDenied = errors.New("xcvr: access denied")

	// ErrCrossPage is returned when a transfer straddles the 127/128
	// lower/upper boundary.
	ErrCrossPage = errors.New("xcvr: transfer crosses page boundary")

	// ErrInvalidState names a control-register write that would drive
	// the state machine into an illegal transition. No operation in
	// this module returns it: control-register writes are stored like
	// any other write, whatever the current module state.
	ErrInvalidState = errors.New("xcvr: invalid state transition")
)
