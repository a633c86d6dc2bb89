// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sff8472

import (
	"github.com/platinasystems/xcvrsim/internal/wire"
	"github.com/platinasystems/xcvrsim/memmap"
)

// Identity holds the immutable vendor/part/serial identification
// fields that get burned into the A0h page at module construction.
type Identity struct {
	Identifier      byte
	Connector       byte
	TransceiverCode [8]byte
	VendorName      string
	VendorOUI       [3]byte
	VendorPN        string
	VendorRev       string
	WavelengthNM    float64 // 0 for copper/DAC
	VendorSerial    string
	DateCode        string // 8 ASCII chars, YYMMDDLL
}

// BuildA0 returns the identifier/serial-ID lower page and its (entirely
// reserved, vendor-specific) upper page for the given identity. All
// fields are RO: the host cannot mutate vendor-burned data.
func BuildA0(id Identity) (memmap.LowerTemplate, memmap.PageTemplate) {
	var lower memmap.LowerTemplate
	for i := range lower.Access {
		lower.Access[i] = memmap.RO
	}

	lower.Data[OffIdentifier] = id.Identifier
	lower.Data[OffConnector] = id.Connector
	copy(lower.Data[OffTransceiver:], id.TransceiverCode[:])
	copy(lower.Data[OffVendorName:], wire.PadASCII(id.VendorName, 16))
	copy(lower.Data[OffVendorOUI:], id.VendorOUI[:])
	copy(lower.Data[OffVendorPN:], wire.PadASCII(id.VendorPN, 16))
	copy(lower.Data[OffVendorRev:], wire.PadASCII(id.VendorRev, 4))
	wire.PutU16(lower.Data[OffWavelength:], uint16(id.WavelengthNM*20)) // 0.05nm units
	copy(lower.Data[OffVendorSerial:], wire.PadASCII(id.VendorSerial, 16))
	copy(lower.Data[OffDateCode:], wire.PadASCII(id.DateCode, 8))
	lower.Data[OffCCBase] = wire.Checksum8(lower.Data[0:OffCCBase])
	lower.Data[OffCCExt] = wire.Checksum8(lower.Data[OffOptions:OffCCExt])

	var upper memmap.PageTemplate
	for i := range upper.Access {
		upper.Access[i] = memmap.Reserved
	}
	return lower, upper
}

// BuildA2 returns a fresh diagnostic-monitoring lower page with zeroed
// thresholds/telemetry and its reserved upper page. Thresholds are RW
// so a host can recalibrate them; nothing in this module writes
// configured limits into them. Real-time diagnostics, calibration
// constants and status/flag bytes are RO, written only through the
// memmap.Map raw bypass by monitor.WriteTelemetry and the xcvr
// package's flag and fault-injection paths.
func BuildA2() (memmap.LowerTemplate, memmap.PageTemplate) {
	var lower memmap.LowerTemplate
	for i := OffAlarmWarnThresh; i < OffAlarmWarnThresh+56; i++ {
		lower.Access[i] = memmap.RW
	}
	for i := OffCalConstants; i < OffTemperature; i++ {
		lower.Access[i] = memmap.RO
	}
	for i := OffTemperature; i < OffStatusBits; i++ {
		lower.Access[i] = memmap.RO
	}
	for i := OffStatusBits; i < 128; i++ {
		lower.Access[i] = memmap.RO
	}

	var upper memmap.PageTemplate
	for i := range upper.Access {
		upper.Access[i] = memmap.Reserved
	}
	return lower, upper
}
