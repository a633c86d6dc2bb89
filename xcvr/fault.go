// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcvr

import (
	"fmt"

	golog "github.com/platinasystems/log"

	"github.com/platinasystems/xcvrsim/layout/cmis"
	"github.com/platinasystems/xcvrsim/layout/sff8472"
	"github.com/platinasystems/xcvrsim/layout/sff8636"
	"github.com/platinasystems/xcvrsim/sideband"
)

// SetTemperature sets the module's case temperature in degrees C. Takes
// effect on the next Tick.
func (m *Module) SetTemperature(c float64) { m.telemetry.TemperatureC = c }

// SetVoltage sets the module's supply voltage in volts.
func (m *Module) SetVoltage(v float64) { m.telemetry.VoltageV = v }

// SetTxPower sets lane channel's transmit output power in mW.
func (m *Module) SetTxPower(channel int, mw float64) {
	if channel < 0 || channel >= len(m.telemetry.Channels) {
		return
	}
	m.telemetry.Channels[channel].TxPowerMW = mw
}

// SetRxPower sets lane channel's receive input power in mW.
func (m *Module) SetRxPower(channel int, mw float64) {
	if channel < 0 || channel >= len(m.telemetry.Channels) {
		return
	}
	m.telemetry.Channels[channel].RxPowerMW = mw
}

// SetTxBias sets lane channel's transmit bias current in mA.
func (m *Module) SetTxBias(channel int, ma float64) {
	if channel < 0 || channel >= len(m.telemetry.Channels) {
		return
	}
	m.telemetry.Channels[channel].TxBiasMA = ma
}

// SimulateFault injects kind on channel 0, the single-lane convenience
// form for modules with only one lane (SFP/SFP+). SimulateFaultChannel
// is its multi-lane generalization.
func (m *Module) SimulateFault(kind string, active bool) error {
	return m.SimulateFaultChannel(0, kind, active)
}

// SimulateFaultChannel injects kind (tx_fault, rx_los, temp_high,
// temp_low, vcc_high, vcc_low) on the given lane, bypassing the
// monitoring engine: per-channel kinds latch a status/sideband bit
// directly; module-level kinds latch the corresponding alarm flag bit
// directly.
func (m *Module) SimulateFaultChannel(channel int, kind string, active bool) error {
	golog.Print("xcvr: simulate_fault ", kind, " channel ", channel, " active ", active)
	switch kind {
	case "tx_fault":
		m.sb.ModuleSet(sideband.TxFault, sideband.Level(active))
		return m.latchChannelBit(channel, true, active)
	case "rx_los":
		m.sb.ModuleSet(sideband.RxLOS, sideband.Level(active))
		return m.latchChannelBit(channel, false, active)
	case "temp_high":
		return m.latchModuleFlag(sff8472.FlagTempHigh, sff8636.FlagTempHigh, active)
	case "temp_low":
		return m.latchModuleFlag(sff8472.FlagTempLow, sff8636.FlagTempLow, active)
	case "vcc_high":
		return m.latchModuleFlag(sff8472.FlagVccHigh, sff8636.FlagVccHigh, active)
	case "vcc_low":
		return m.latchModuleFlag(sff8472.FlagVccLow, sff8636.FlagVccLow, active)
	default:
		return fmt.Errorf("xcvr: unknown fault kind %q", kind)
	}
}

func (m *Module) latchChannelBit(channel int, isTxFault, active bool) error {
	switch m.cfg.Standard {
	case StandardSFF8472:
		a2 := m.maps[AddrA2]
		cur, err := a2.RawByte(sff8472.OffStatusBits)
		if err != nil {
			return err
		}
		bit := sff8472.StatusRxLOS
		if isTxFault {
			bit = sff8472.StatusTxFault
		}
		cur = setBit(cur, bit, active)
		return a2.SetRaw(sff8472.OffStatusBits, []byte{cur})
	case StandardSFF8636:
		single := m.maps[AddrSingle]
		off := uint8(sff8636.OffLOSFlags)
		bit := sff8636.RxLOSBit0 << uint(channel)
		if isTxFault {
			off = uint8(sff8636.OffTxFaultFlags)
			bit = sff8636.TxFaultBit0 << uint(channel)
		}
		cur, err := single.RawByte(off)
		if err != nil {
			return err
		}
		return single.SetRaw(off, []byte{setBit(cur, bit, active)})
	case StandardCMIS:
		single := m.maps[AddrSingle]
		off := uint8(cmis.Page11FaultFlagsBase + channel)
		bit := cmis.LaneRxLOSBit
		if isTxFault {
			bit = cmis.LaneTxFaultBit
		}
		cur, err := single.RawByteAt(0, 0x11, off)
		if err != nil {
			return err
		}
		return single.SetRawAt(0, 0x11, off, []byte{setBit(cur, bit, active)})
	}
	return nil
}

// latchModuleFlag directly sets/clears a module-level alarm bit,
// bypassing monitor.Evaluate entirely.
func (m *Module) latchModuleFlag(sffBit, qsfpBit byte, active bool) error {
	switch m.cfg.Standard {
	case StandardSFF8472:
		a2 := m.maps[AddrA2]
		off := uint8(sff8472.OffAlarmFlags)
		cur, err := a2.RawByte(off)
		if err != nil {
			return err
		}
		return a2.SetRaw(off, []byte{setBit(cur, sffBit, active)})
	case StandardSFF8636:
		single := m.maps[AddrSingle]
		// sff8636's temp and Vcc flags share bit values, so the
		// kind is told apart by its distinct SFF-8472 bit.
		isVcc := sffBit == sff8472.FlagVccHigh || sffBit == sff8472.FlagVccLow
		off := uint8(sff8636.OffTempAlarmFlags)
		if isVcc {
			off = uint8(sff8636.OffVccAlarmFlags)
		}
		cur, err := single.RawByte(off)
		if err != nil {
			return err
		}
		return single.SetRaw(off, []byte{setBit(cur, qsfpBit, active)})
	case StandardCMIS:
		single := m.maps[AddrSingle]
		off := uint8(cmis.OffModuleFlags)
		cur, err := single.RawByte(off)
		if err != nil {
			return err
		}
		return single.SetRaw(off, []byte{setBit(cur, sffBit, active)})
	}
	return nil
}

func setBit(b, mask byte, set bool) byte {
	if set {
		return b | mask
	}
	return b &^ mask
}
