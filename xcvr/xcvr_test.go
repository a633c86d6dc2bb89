// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcvr

import (
	"testing"

	"github.com/platinasystems/xcvrsim/bus"
	"github.com/platinasystems/xcvrsim/layout/cmis"
	"github.com/platinasystems/xcvrsim/layout/sff8636"
	"github.com/platinasystems/xcvrsim/sideband"
)

func TestIdentifierReadViaA0h(t *testing.T) {
	m := NewSFP(SFPConfig{Identifier: 0x03})
	b, err := m.MapFor(AddrA0)
	if err != nil {
		t.Fatal(err)
	}
	got, err := b.ReadByte(0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x03 {
		t.Errorf("identifier = %#x, want 0x03", got)
	}
}

func TestVendorNamePadding(t *testing.T) {
	m := NewSFP(SFPConfig{VendorName: "Test Vendor"})
	a0, _ := m.MapFor(AddrA0)
	got, err := a0.Read(20, 16)
	if err != nil {
		t.Fatal(err)
	}
	want := "Test Vendor     "
	if string(got) != want {
		t.Errorf("vendor name = %q, want %q", got, want)
	}
}

func TestTemperatureMonitoringEncodesQ8_8(t *testing.T) {
	m := NewSFP(SFPConfig{})
	m.SetTemperature(45.0)
	m.Tick()
	a2, _ := m.MapFor(AddrA2)
	got, err := a2.Read(96, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got[0] != 0x2D || got[1] != 0x00 {
		t.Errorf("temperature bytes = %#x %#x, want 0x2d 0x00", got[0], got[1])
	}
}

func TestTxFaultSimulationLatchesStatusBit(t *testing.T) {
	m := NewSFP(SFPConfig{})
	if err := m.SimulateFault("tx_fault", true); err != nil {
		t.Fatal(err)
	}
	a2, _ := m.MapFor(AddrA2)
	b, err := a2.ReadByte(110)
	if err != nil {
		t.Fatal(err)
	}
	if b&0x04 != 0x04 {
		t.Errorf("status byte = %#x, tx_fault bit 0x04 not set", b)
	}
}

func TestSFF8636PageSwitchPreservesLowerHalf(t *testing.T) {
	m := NewQSFP(QSFPConfig{})
	single, _ := m.MapFor(AddrSingle)
	before, err := single.Read(0, 20)
	if err != nil {
		t.Fatal(err)
	}
	if err := single.WriteByte(127, 0x03); err != nil {
		t.Fatal(err)
	}
	if single.CurrentPage() != 3 {
		t.Fatalf("current page = %d, want 3", single.CurrentPage())
	}
	after, err := single.Read(0, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("lower half changed at byte %d: %#x -> %#x", i, before[i], after[i])
		}
	}
}

func TestCMISLowPowerToReadyTransition(t *testing.T) {
	m := NewOSFP(OSFPConfig{LaneCount: 4})
	if err := m.sb.HostSet(sideband.LPMode, sideband.High); err != nil {
		t.Fatal(err)
	}
	single, _ := m.MapFor(AddrSingle)
	b, err := single.ReadByte(3)
	if err != nil {
		t.Fatal(err)
	}
	if (b>>1)&0x07 != 1 {
		t.Fatalf("byte3 state field = %d, want 1 (MODULE_LOW_PWR)", (b>>1)&0x07)
	}

	if err := m.sb.HostSet(sideband.LPMode, sideband.Low); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 4; i++ {
		m.Tick()
	}
	b, err = single.ReadByte(3)
	if err != nil {
		t.Fatal(err)
	}
	if (b>>1)&0x07 != 3 {
		t.Fatalf("byte3 state field after init = %d, want 3 (MODULE_READY)", (b>>1)&0x07)
	}
}

func TestAttachThroughBusFabric(t *testing.T) {
	f := bus.New()
	m := NewSFP(SFPConfig{Identifier: 0x03})
	f.Attach("slot0", m)
	got, err := f.ReadRegister("slot0", AddrA0, 0)
	if err != nil {
		t.Fatal(err)
	}
	if got != 0x03 {
		t.Errorf("identifier via fabric = %#x, want 0x03", got)
	}
	level, err := f.GetGPIO("slot0", sideband.ModPrsL)
	if err != nil {
		t.Fatal(err)
	}
	if level != sideband.Low {
		t.Errorf("ModPrsL after attach = %v, want Low", level)
	}
}

func TestRxLOSMultiChannelAddressing(t *testing.T) {
	m := NewQSFP(QSFPConfig{LaneCount: 4})
	if err := m.SimulateFaultChannel(2, "rx_los", true); err != nil {
		t.Fatal(err)
	}
	single, _ := m.MapFor(AddrSingle)
	b, err := single.RawByte(sff8636.OffLOSFlags)
	if err != nil {
		t.Fatal(err)
	}
	want := sff8636.RxLOSBit0 << 2
	if b&want == 0 {
		t.Errorf("expected channel 2 RX LOS bit %#x set, got %#x", want, b)
	}
}

func TestCMISChannelFaultAddressing(t *testing.T) {
	m := NewOSFP(OSFPConfig{LaneCount: 4})
	if err := m.SimulateFaultChannel(2, "tx_fault", true); err != nil {
		t.Fatal(err)
	}
	single, _ := m.MapFor(AddrSingle)
	b, err := single.RawByteAt(0, 0x11, cmis.Page11FaultFlagsBase+2)
	if err != nil {
		t.Fatal(err)
	}
	if b&cmis.LaneTxFaultBit == 0 {
		t.Errorf("expected channel 2 TX fault bit set, got %#x", b)
	}
}
