// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcvr

import "github.com/platinasystems/xcvrsim/monitor"

// Standard is the register-layout family a module presents, independent
// of its physical form factor.
type Standard int

const (
	StandardSFF8472 Standard = iota
	StandardSFF8636
	StandardCMIS
)

func (s Standard) String() string {
	switch s {
	case StandardSFF8472:
		return "SFF-8472"
	case StandardSFF8636:
		return "SFF-8636"
	case StandardCMIS:
		return "CMIS"
	default:
		return "unknown"
	}
}

// Config is the immutable configuration a module is built from,
// struct-literal style: no file format, no flags, no environment
// variables.
type Config struct {
	Standard Standard

	Identifier      byte
	Connector       byte
	TransceiverCode [8]byte

	VendorName   string
	VendorOUI    [3]byte
	VendorPN     string
	VendorRev    string
	VendorSerial string
	DateCode     string
	WavelengthNM float64

	LaneCount int

	Limits monitor.Limits

	// CMIS-only: tick delays for the module/data-path state machine.
	// Zero means "use modstate.DefaultConfig's values".
	ResetHoldTicks int
	InitDelayTicks int
}
