// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package monitor

import (
	"testing"

	"github.com/platinasystems/xcvrsim/internal/wire"
)

func TestEncodeTemperatureQ8_8(t *testing.T) {
	tempRaw, _, _ := Encode(Telemetry{TemperatureC: 45.0})
	if tempRaw != 0x2D00 {
		t.Errorf("45.0C encodes to %#x, want 0x2D00", uint16(tempRaw))
	}
	var buf [2]byte
	wire.PutI16(buf[:], tempRaw)
	if buf[0] != 0x2D || buf[1] != 0x00 {
		t.Errorf("encoded bytes = %#x %#x, want 0x2d 0x00", buf[0], buf[1])
	}
}

func TestEncodeNegativeTemperature(t *testing.T) {
	tempRaw, _, _ := Encode(Telemetry{TemperatureC: -10.0})
	if tempRaw != -2560 {
		t.Errorf("-10.0C encodes to %d, want -2560", tempRaw)
	}
}

func TestEncodeVoltage100uVUnits(t *testing.T) {
	_, voltRaw, _ := Encode(Telemetry{VoltageV: 3.3})
	want := uint16(3.3 / 0.0001)
	if voltRaw != want {
		t.Errorf("3.3V encodes to %d, want %d", voltRaw, want)
	}
}

func TestEvaluateHighAlarmThreshold(t *testing.T) {
	lim := Limits{Temperature: Thresholds{HighAlarm: 40, LowAlarm: -5, HighWarn: 35, LowWarn: 0}}
	r := Evaluate(Telemetry{TemperatureC: 45.0}, lim, Result{})
	if !r.Temperature.HighAlarm {
		t.Error("expected high-temp alarm set for 45C above 40C threshold")
	}
	if r.Temperature.LowAlarm {
		t.Error("unexpected low-temp alarm")
	}
}

func TestEvaluateWithinBoundsSetsNoFlags(t *testing.T) {
	lim := Limits{Voltage: Thresholds{HighAlarm: 3.6, LowAlarm: 3.0, HighWarn: 3.5, LowWarn: 3.1}}
	r := Evaluate(Telemetry{VoltageV: 3.3}, lim, Result{})
	if r.Voltage.HighAlarm || r.Voltage.LowAlarm || r.Voltage.HighWarn || r.Voltage.LowWarn {
		t.Errorf("expected no voltage flags for 3.3V within bounds, got %+v", r.Voltage)
	}
}

func TestAlarmBitsPacking(t *testing.T) {
	f := FlagSet{HighAlarm: true, LowWarn: true}
	b := AlarmBits(0, f, 0x80, 0x40)
	if b != 0x80 {
		t.Errorf("alarm byte = %#x, want 0x80", b)
	}
}
