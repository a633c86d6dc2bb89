// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cmis

import (
	"testing"

	"github.com/platinasystems/xcvrsim/memmap"
	"github.com/platinasystems/xcvrsim/modstate"
)

func newMap(id Identity, laneCount int) *memmap.Map {
	m := memmap.New(BuildLower(id), OffPageSelect, OffBankSelect, memmap.ReportDeniedWrites)
	m.InstallPage(0, 0, BuildPage00(id))
	m.InstallPage(0, 1, BuildPage01())
	m.InstallPage(0, 0x10, BuildPage10(laneCount))
	m.InstallPage(0, 0x11, BuildPage11(laneCount))
	return m
}

func TestFreshModuleStateByteReadsLowPower(t *testing.T) {
	m := newMap(Identity{Identifier: 0x18}, 4)
	b, err := m.ReadByte(OffByte3State)
	if err != nil {
		t.Fatal(err)
	}
	if b != modstate.ModuleLowPwr.Byte3Bits(0) {
		t.Errorf("byte3 = %#x, want %#x", b, modstate.ModuleLowPwr.Byte3Bits(0))
	}
}

func TestReadOnlyWriteReportsAccessDeniedUnderCMISPolicy(t *testing.T) {
	m := newMap(Identity{Identifier: 0x18}, 4)
	if err := m.WriteByte(OffByte3State, 0xFF); err == nil {
		t.Error("expected write to RO module-state byte to be denied")
	}
}

func TestLowPwrRequestSWIsHostWritable(t *testing.T) {
	m := newMap(Identity{Identifier: 0x18}, 4)
	if err := m.WriteByte(OffLowPwrRequest, 0x40); err != nil {
		t.Fatalf("expected LowPwrRequestSW write to succeed, got %v", err)
	}
}

func TestPageSelectRoundTrip(t *testing.T) {
	m := newMap(Identity{Identifier: 0x18}, 4)
	if err := m.WriteByte(OffPageSelect, 0x10); err != nil {
		t.Fatal(err)
	}
	if m.CurrentPage() != 0x10 {
		t.Errorf("current page = %#x, want 0x10", m.CurrentPage())
	}
}

func TestPage00CCBaseMatchesSpanSum(t *testing.T) {
	p := BuildPage00(Identity{Identifier: 0x18, VendorName: "Acme", VendorPN: "OSFP-DD"})
	var sum byte
	for i := 0; i < Page00CCBase-128; i++ {
		sum += p.Data[i]
	}
	if p.Data[Page00CCBase-128] != sum {
		t.Errorf("page00 CC_BASE = %#x, want %#x", p.Data[Page00CCBase-128], sum)
	}
}
