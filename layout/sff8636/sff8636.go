// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sff8636

import (
	"github.com/platinasystems/xcvrsim/internal/wire"
	"github.com/platinasystems/xcvrsim/memmap"
)

// Identity mirrors sff8472.Identity for the fields SFF-8636 burns into
// page 00h; kept as a separate type rather than reused across packages
// since the two standards diverge on field widths (e.g. no OUI split
// requirement here beyond the 3-byte convention both share).
type Identity struct {
	Identifier      byte
	Connector       byte
	VendorName      string
	VendorOUI       [3]byte
	VendorPN        string
	VendorRev       string
	WavelengthNM    float64
	VendorSerial    string
	DateCode        string
}

// BuildLower returns the SFF-8636 lower page: status/interrupt/monitor
// fields RO (module- and monitor-written), TxDisable RW (host
// control), page-select RW (dispatched specially by memmap.Map).
func BuildLower(id Identity) memmap.LowerTemplate {
	var lower memmap.LowerTemplate
	for i := range lower.Access {
		lower.Access[i] = memmap.RO
	}
	lower.Access[OffTxDisable] = memmap.RW
	lower.Access[OffPageSelect] = memmap.RW

	lower.Data[OffIdentifier] = id.Identifier
	return lower
}

// BuildPage00 returns the serial-ID upper page, the SFF-8636 mirror of
// SFF-8472's A0h layout shifted to offsets 128+.
func BuildPage00(id Identity) memmap.PageTemplate {
	var p memmap.PageTemplate
	for i := range p.Access {
		p.Access[i] = memmap.RO
	}

	set := func(off int, b []byte) { copy(p.Data[off-128:], b) }
	p.Data[Page00Identifier-128] = id.Identifier
	p.Data[Page00Connector-128] = id.Connector
	set(Page00VendorName, wire.PadASCII(id.VendorName, 16))
	set(Page00VendorOUI, id.VendorOUI[:])
	set(Page00VendorPN, wire.PadASCII(id.VendorPN, 16))
	set(Page00VendorRev, wire.PadASCII(id.VendorRev, 2))
	wire.PutU16(p.Data[Page00Wavelength-128:], uint16(id.WavelengthNM*20))
	set(Page00VendorSN, wire.PadASCII(id.VendorSerial, 16))
	set(Page00DateCode, wire.PadASCII(id.DateCode, 8))

	p.Data[Page00CCBase-128] = wire.Checksum8(p.Data[0 : Page00CCBase-128])
	p.Data[Page00CCExt-128] = wire.Checksum8(p.Data[Page00CCBase-128+1 : Page00CCExt-128])
	return p
}

// BuildPage03 returns the channel-threshold page, RW so a host can
// recalibrate trip points the way it can on SFF-8472's A2h page.
func BuildPage03() memmap.PageTemplate {
	var p memmap.PageTemplate
	for i := range p.Access {
		p.Access[i] = memmap.Reserved
	}
	for _, off := range []int{
		Page03TempHighAlarm, Page03TempLowAlarm, Page03TempHighWarn, Page03TempLowWarn,
		Page03VccHighAlarm, Page03VccLowAlarm, Page03VccHighWarn, Page03VccLowWarn,
		Page03RxPowHighAlarm, Page03RxPowLowAlarm, Page03RxPowHighWarn, Page03RxPowLowWarn,
		Page03TxBiasHighAlarm, Page03TxBiasLowAlarm, Page03TxBiasHighWarn, Page03TxBiasLowWarn,
	} {
		p.Access[off-128] = memmap.RW
		p.Access[off-128+1] = memmap.RW
	}
	return p
}

// BuildReservedPage returns an all-Reserved upper page, used for pages
// 01h/02h (AST thresholds) whose detailed field layout this emulator
// does not need to distinguish from page 03h's thresholds to satisfy
// the page-switch contract.
func BuildReservedPage() memmap.PageTemplate {
	var p memmap.PageTemplate
	for i := range p.Access {
		p.Access[i] = memmap.Reserved
	}
	return p
}
