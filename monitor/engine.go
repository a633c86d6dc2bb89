// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package monitor implements the digital-optical-monitoring engine: it
// encodes a module's configured telemetry into the raw registers a
// memory map exposes, then evaluates alarm/warning thresholds against
// that telemetry.
package monitor

import (
	"github.com/platinasystems/xcvrsim/internal/wire"
	"github.com/platinasystems/xcvrsim/memmap"
)

// Channel holds one lane's bias/tx-power/rx-power telemetry, in the
// physical units a test scenario would set them in.
type Channel struct {
	TxBiasMA  float64
	TxPowerMW float64
	RxPowerMW float64
}

// Telemetry is the mutable, per-tick-sampled state of a module: one
// case temperature and supply voltage plus one Channel per lane.
type Telemetry struct {
	TemperatureC float64
	VoltageV     float64
	Channels     []Channel
}

// Thresholds holds the high/low alarm/warning trip points for one
// telemetry kind, in the same physical units as the Telemetry field it
// guards.
type Thresholds struct {
	HighAlarm, LowAlarm float64
	HighWarn, LowWarn   float64
}

// ChannelThresholds bundles the three per-lane threshold sets.
type ChannelThresholds struct {
	TxBiasMA, TxPowerMW, RxPowerMW Thresholds
}

// Limits is the full set of thresholds a module's monitoring compares
// against, one common set per lane (SFF-8472/SFF-8636 share thresholds
// across channels; per-lane threshold tables are a CMIS extension not
// required by this emulator's scope).
type Limits struct {
	Temperature Thresholds
	Voltage     Thresholds
	Channel     ChannelThresholds
}

// FlagSet is the evaluated alarm/warning state for one telemetry kind.
type FlagSet struct {
	HighAlarm, LowAlarm, HighWarn, LowWarn bool
}

// Result is everything one Tick call computed, returned to the caller
// so it can forward the values to any sink (a log line, a test
// assertion, a redis-style publisher) without the engine owning that
// choice.
type Result struct {
	Temperature FlagSet
	Voltage     FlagSet
	Channels    []ChannelFlags
}

// ChannelFlags is one lane's evaluated flag state.
type ChannelFlags struct {
	TxBias, TxPower, RxPower FlagSet
}

// Encode converts physical-unit Telemetry into the raw big-endian
// register encodings prescribed by SFF-8472/SFF-8636/CMIS: temperature
// as signed Q8.8 (1/256 degC), voltage as unsigned 100uV/LSB, TX bias as
// unsigned 2uA/LSB, TX/RX power as unsigned 0.1uW/LSB.
func Encode(t Telemetry) (tempRaw int16, voltageRaw uint16, channels []EncodedChannel) {
	tempRaw = int16(t.TemperatureC * 256)
	voltageRaw = uint16(t.VoltageV / 0.0001)
	channels = make([]EncodedChannel, len(t.Channels))
	for i, c := range t.Channels {
		channels[i] = EncodedChannel{
			TxBiasRaw:  uint16(c.TxBiasMA / 0.002),
			TxPowerRaw: uint16(c.TxPowerMW * 1000 / 0.1),
			RxPowerRaw: uint16(c.RxPowerMW * 1000 / 0.1),
		}
	}
	return
}

// EncodedChannel is one lane's raw register encoding.
type EncodedChannel struct {
	TxBiasRaw, TxPowerRaw, RxPowerRaw uint16
}

func evaluate(value float64, known bool, lim Thresholds, prev FlagSet) FlagSet {
	if !known {
		return prev // missing data: leave unchanged, per the "unknown" rule
	}
	return FlagSet{
		HighAlarm: value > lim.HighAlarm,
		LowAlarm:  value < lim.LowAlarm,
		HighWarn:  value > lim.HighWarn,
		LowWarn:   value < lim.LowWarn,
	}
}

// Evaluate computes the flag state for every telemetry kind given the
// current Telemetry and Limits, without touching any register storage.
// Separated from Tick so the flag-ordering invariant (telemetry written
// before flags) is visible at the call site rather than hidden inside
// one monolithic method.
func Evaluate(t Telemetry, lim Limits, prev Result) Result {
	r := Result{
		Temperature: evaluate(t.TemperatureC, true, lim.Temperature, prev.Temperature),
		Voltage:     evaluate(t.VoltageV, true, lim.Voltage, prev.Voltage),
		Channels:    make([]ChannelFlags, len(t.Channels)),
	}
	for i, c := range t.Channels {
		var pf ChannelFlags
		if i < len(prev.Channels) {
			pf = prev.Channels[i]
		}
		r.Channels[i] = ChannelFlags{
			TxBias:  evaluate(c.TxBiasMA, true, lim.Channel.TxBiasMA, pf.TxBias),
			TxPower: evaluate(c.TxPowerMW, true, lim.Channel.TxPowerMW, pf.TxPower),
			RxPower: evaluate(c.RxPowerMW, true, lim.Channel.RxPowerMW, pf.RxPower),
		}
	}
	return r
}

// WriteTelemetry stores the raw-encoded telemetry into m at the given
// offsets via the raw bypass path (real-time diagnostics are RO to the
// host). Channel offsets advance by 2 bytes per lane, matching the
// contiguous per-channel layout of SFF-8636/CMIS monitor pages. bank
// and page address where channel offsets above 128 live, so telemetry
// can be written to a banked upper page (CMIS page 11h) independent of
// whatever page the host currently has selected; offsets below 128
// ignore bank/page and always land in the lower half.
func WriteTelemetry(m *memmap.Map, bank, page uint8, tempOff, voltOff uint8, channelOffs ChannelOffsets, t Telemetry) error {
	tempRaw, voltRaw, channels := Encode(t)

	var buf [2]byte
	wire.PutI16(buf[:], tempRaw)
	if err := m.SetRawAt(bank, page, tempOff, buf[:]); err != nil {
		return err
	}
	wire.PutU16(buf[:], voltRaw)
	if err := m.SetRawAt(bank, page, voltOff, buf[:]); err != nil {
		return err
	}
	for i, c := range channels {
		if i >= len(channelOffs.TxBias) {
			break
		}
		wire.PutU16(buf[:], c.TxBiasRaw)
		if err := m.SetRawAt(bank, page, channelOffs.TxBias[i], buf[:]); err != nil {
			return err
		}
		wire.PutU16(buf[:], c.TxPowerRaw)
		if err := m.SetRawAt(bank, page, channelOffs.TxPower[i], buf[:]); err != nil {
			return err
		}
		wire.PutU16(buf[:], c.RxPowerRaw)
		if err := m.SetRawAt(bank, page, channelOffs.RxPower[i], buf[:]); err != nil {
			return err
		}
	}
	return nil
}

// ChannelOffsets names where each lane's bias/tx-power/rx-power raw
// words live in a map, one entry per lane.
type ChannelOffsets struct {
	TxBias, TxPower, RxPower []uint8
}

// AlarmBits ORs highBit/lowBit into acc according to f's alarm flags,
// matching the accumulate-then-store pattern used for SFF-8472's packed
// multi-field alarm bytes.
func AlarmBits(acc byte, f FlagSet, highBit, lowBit byte) byte {
	if f.HighAlarm {
		acc |= highBit
	}
	if f.LowAlarm {
		acc |= lowBit
	}
	return acc
}

// WarnBits is AlarmBits' counterpart for the warning flag byte.
func WarnBits(acc byte, f FlagSet, highBit, lowBit byte) byte {
	if f.HighWarn {
		acc |= highBit
	}
	if f.LowWarn {
		acc |= lowBit
	}
	return acc
}
