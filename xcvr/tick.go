// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcvr

import (
	golog "github.com/platinasystems/log"

	"github.com/platinasystems/xcvrsim/layout/cmis"
	"github.com/platinasystems/xcvrsim/layout/sff8472"
	"github.com/platinasystems/xcvrsim/layout/sff8636"
	"github.com/platinasystems/xcvrsim/memmap"
	"github.com/platinasystems/xcvrsim/modstate"
	"github.com/platinasystems/xcvrsim/monitor"
	"github.com/platinasystems/xcvrsim/sideband"
)

// Tick advances the module by one discrete step: telemetry is encoded
// and written first, then alarm/warning flags are re-evaluated against
// the freshly written values, then (for CMIS) the state machine
// advances.
func (m *Module) Tick() {
	switch m.cfg.Standard {
	case StandardSFF8472:
		m.tickSFF8472()
	case StandardSFF8636:
		m.tickSFF8636()
	case StandardCMIS:
		m.tickCMIS()
	}
}

func (m *Module) tickSFF8472() {
	a2 := m.maps[AddrA2]
	offs := monitor.ChannelOffsets{
		TxBias:  []uint8{sff8472.OffTxBias},
		TxPower: []uint8{sff8472.OffTxPower},
		RxPower: []uint8{sff8472.OffRxPower},
	}
	monitor.WriteTelemetry(a2, 0, 0, sff8472.OffTemperature, sff8472.OffVcc, offs, m.telemetry)
	m.result = monitor.Evaluate(m.telemetry, m.cfg.Limits, m.result)
	writeSFF8472Flags(a2, m.result)
}

func (m *Module) tickSFF8636() {
	single := m.maps[AddrSingle]
	offs := monitor.ChannelOffsets{
		TxBias:  []uint8{sff8636.OffTxBias},
		TxPower: []uint8{sff8636.OffTxPowerLower},
		RxPower: []uint8{sff8636.OffRxPower},
	}
	monitor.WriteTelemetry(single, 0, 0, sff8636.OffTempMonitor, sff8636.OffVccMonitor, offs, m.telemetry)
	m.result = monitor.Evaluate(m.telemetry, m.cfg.Limits, m.result)
	writeSFF8636Flags(single, m.result)
}

func (m *Module) tickCMIS() {
	single := m.maps[AddrSingle]
	laneCount := max(1, m.cfg.LaneCount)

	offs := monitor.ChannelOffsets{
		TxBias:  cmisLaneOffsets(cmis.Page11TxBiasBase, laneCount),
		TxPower: cmisLaneOffsets(cmis.Page11TxPowerBase, laneCount),
		RxPower: cmisLaneOffsets(cmis.Page11RxPowerBase, laneCount),
	}
	monitor.WriteTelemetry(single, 0, 0x11, uint8(cmis.OffTemperature), uint8(cmis.OffVoltage), offs, m.telemetry)
	m.result = monitor.Evaluate(m.telemetry, m.cfg.Limits, m.result)

	var flags byte
	if m.result.Temperature.HighAlarm || m.result.Temperature.LowAlarm ||
		m.result.Voltage.HighAlarm || m.result.Voltage.LowAlarm {
		flags |= 0x01
	}
	single.SetRaw(cmis.OffModuleFlags, []byte{flags})

	laneDeinit := make([]bool, laneCount)
	for i := 0; i < laneCount; i++ {
		b, err := single.RawByteAt(0, 0x10, uint8(cmis.Page10LaneControlBase+i))
		if err == nil {
			laneDeinit[i] = b&cmis.LaneDeinitBit != 0
		}
	}
	lowPwrReq, _ := single.RawByte(cmis.OffLowPwrRequest)

	in := modstate.Inputs{
		ResetAsserted:   m.sb.Get(sideband.ResetL) == sideband.Low,
		LPMode:          m.sb.Get(sideband.LPMode) == sideband.High,
		LowPwrRequestSW: lowPwrReq&0x40 != 0,
		LaneDeinit:      laneDeinit,
	}

	out := m.machine.Tick(in, func(from, to modstate.ModuleState) {
		golog.Print("xcvr: module state ", from, " -> ", to)
	})

	base, _ := single.RawByte(cmis.OffByte3State)
	single.SetRaw(cmis.OffByte3State, []byte{out.ModuleState.Byte3Bits(base)})
	for i, s := range out.LaneStates {
		single.SetRawAt(0, 0x11, uint8(cmis.Page11LaneStateBase+i), []byte{byte(s)})
	}

	if out.IntL {
		m.sb.ModuleSet(sideband.IntL, sideband.Low)
	} else {
		m.sb.ModuleSet(sideband.IntL, sideband.High)
	}
}

func cmisLaneOffsets(base int, laneCount int) []uint8 {
	out := make([]uint8, laneCount)
	for i := range out {
		out[i] = uint8(base + 2*i)
	}
	return out
}

func writeSFF8472Flags(a2 *memmap.Map, r monitor.Result) {
	alarmByte0 := monitor.AlarmBits(0, r.Temperature, sff8472.FlagTempHigh, sff8472.FlagTempLow)
	alarmByte0 = monitor.AlarmBits(alarmByte0, r.Voltage, sff8472.FlagVccHigh, sff8472.FlagVccLow)
	warnByte0 := monitor.WarnBits(0, r.Temperature, sff8472.FlagTempHigh, sff8472.FlagTempLow)
	warnByte0 = monitor.WarnBits(warnByte0, r.Voltage, sff8472.FlagVccHigh, sff8472.FlagVccLow)

	var alarmByte1, warnByte1 byte
	if len(r.Channels) > 0 {
		c := r.Channels[0]
		alarmByte1 = monitor.AlarmBits(alarmByte1, c.TxBias, sff8472.FlagBiasHigh, sff8472.FlagBiasLow)
		alarmByte1 = monitor.AlarmBits(alarmByte1, c.TxPower, sff8472.FlagTxPowHigh, sff8472.FlagTxPowLow)
		alarmByte1 = monitor.AlarmBits(alarmByte1, c.RxPower, sff8472.FlagRxPowHigh, sff8472.FlagRxPowLow)
		warnByte1 = monitor.WarnBits(warnByte1, c.TxBias, sff8472.FlagBiasHigh, sff8472.FlagBiasLow)
		warnByte1 = monitor.WarnBits(warnByte1, c.TxPower, sff8472.FlagTxPowHigh, sff8472.FlagTxPowLow)
		warnByte1 = monitor.WarnBits(warnByte1, c.RxPower, sff8472.FlagRxPowHigh, sff8472.FlagRxPowLow)
	}

	a2.SetRaw(sff8472.OffAlarmFlags, []byte{alarmByte0, alarmByte1})
	a2.SetRaw(sff8472.OffWarnFlags, []byte{warnByte0, warnByte1})
}

func writeSFF8636Flags(single *memmap.Map, r monitor.Result) {
	tempByte := monitor.AlarmBits(0, r.Temperature, sff8636.FlagTempHigh, sff8636.FlagTempLow)
	vccByte := monitor.AlarmBits(0, r.Voltage, sff8636.FlagVccHigh, sff8636.FlagVccLow)
	single.SetRaw(sff8636.OffTempAlarmFlags, []byte{tempByte})
	single.SetRaw(sff8636.OffVccAlarmFlags, []byte{vccByte})
}
