// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmis

import (
	"github.com/platinasystems/xcvrsim/internal/wire"
	"github.com/platinasystems/xcvrsim/memmap"
	"github.com/platinasystems/xcvrsim/modstate"
)

// Identity holds the fields burned into page 00h at construction.
type Identity struct {
	Identifier   byte
	VendorName   string
	VendorOUI    [3]byte
	VendorPN     string
	VendorRev    string
	VendorSerial string
	DateCode     string
}

// BuildLower returns the CMIS lower page. Module state, flags and
// telemetry are RO (written by modstate/monitor via SetRaw);
// LowPwrRequestSW is RW (host control); page/bank-select are RW and
// special-cased by memmap.Map.
func BuildLower(id Identity) memmap.LowerTemplate {
	var lower memmap.LowerTemplate
	for i := range lower.Access {
		lower.Access[i] = memmap.RO
	}
	lower.Access[OffLowPwrRequest] = memmap.RW
	lower.Access[OffBankSelect] = memmap.RW
	lower.Access[OffPageSelect] = memmap.RW

	lower.Data[OffIdentifier] = id.Identifier
	lower.Data[OffByte3State] = modstate.ModuleLowPwr.Byte3Bits(0)
	return lower
}

// BuildPage00 returns the administrative/identification upper page.
func BuildPage00(id Identity) memmap.PageTemplate {
	var p memmap.PageTemplate
	for i := range p.Access {
		p.Access[i] = memmap.RO
	}
	set := func(off int, b []byte) { copy(p.Data[off-128:], b) }
	set(Page00VendorName, wire.PadASCII(id.VendorName, 16))
	set(Page00VendorOUI, id.VendorOUI[:])
	set(Page00VendorPN, wire.PadASCII(id.VendorPN, 16))
	set(Page00VendorRev, wire.PadASCII(id.VendorRev, 2))
	set(Page00VendorSN, wire.PadASCII(id.VendorSerial, 16))
	set(Page00DateCode, wire.PadASCII(id.DateCode, 8))
	p.Data[Page00CCBase-128] = wire.Checksum8(p.Data[0 : Page00CCBase-128])
	return p
}

// BuildPage01 returns the advertising page (supported applications,
// lane count); this emulator does not need to distinguish fine-grained
// application-advertising fields beyond the page's existence for the
// page-switch contract, so it ships Reserved/RO filler.
func BuildPage01() memmap.PageTemplate {
	var p memmap.PageTemplate
	for i := range p.Access {
		p.Access[i] = memmap.Reserved
	}
	return p
}

// BuildPage10 returns the data-path control page: one RW control byte
// per lane carrying the DataPathDeinit request bit, for laneCount
// lanes starting at Page10LaneControlBase.
func BuildPage10(laneCount int) memmap.PageTemplate {
	var p memmap.PageTemplate
	for i := range p.Access {
		p.Access[i] = memmap.Reserved
	}
	for i := 0; i < laneCount; i++ {
		p.Access[Page10LaneControlBase-128+i] = memmap.RW
	}
	return p
}

// BuildPage11 returns the data-path state/monitor page: RO lane-state
// and per-lane monitor bytes, written only through SetRaw by modstate
// and monitor.
func BuildPage11(laneCount int) memmap.PageTemplate {
	var p memmap.PageTemplate
	for i := range p.Access {
		p.Access[i] = memmap.Reserved
	}
	for i := 0; i < laneCount; i++ {
		p.Access[Page11LaneStateBase-128+i] = memmap.RO
		p.Access[Page11RxPowerBase-128+2*i] = memmap.RO
		p.Access[Page11RxPowerBase-128+2*i+1] = memmap.RO
		p.Access[Page11TxBiasBase-128+2*i] = memmap.RO
		p.Access[Page11TxBiasBase-128+2*i+1] = memmap.RO
		p.Access[Page11TxPowerBase-128+2*i] = memmap.RO
		p.Access[Page11TxPowerBase-128+2*i+1] = memmap.RO
		p.Access[Page11FaultFlagsBase-128+i] = memmap.RO
	}
	return p
}
