// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package modstate

import "testing"

func TestFreshModuleStartsInLowPower(t *testing.T) {
	m := New(DefaultConfig(4))
	if m.State() != ModuleLowPwr {
		t.Errorf("fresh module state = %v, want ModuleLowPwr", m.State())
	}
}

func TestLPModeHighKeepsLowPower(t *testing.T) {
	m := New(DefaultConfig(4))
	out := m.Tick(Inputs{LPMode: true}, nil)
	if out.ModuleState != ModuleLowPwr {
		t.Errorf("state = %v, want ModuleLowPwr while LPMode asserted", out.ModuleState)
	}
}

func TestLPModeDeassertReachesReadyAfterInitDelay(t *testing.T) {
	m := New(DefaultConfig(4))
	var out Outputs
	for i := 0; i < DefaultConfig(4).InitDelayTicks+2; i++ {
		out = m.Tick(Inputs{LPMode: false}, nil)
	}
	if out.ModuleState != ModuleReady {
		t.Errorf("state after init delay = %v, want ModuleReady", out.ModuleState)
	}
}

func TestResetPulseReachesLowPowerWithinHoldTicks(t *testing.T) {
	m := New(DefaultConfig(4))
	for i := 0; i < DefaultConfig(4).InitDelayTicks+2; i++ {
		m.Tick(Inputs{LPMode: false}, nil)
	}
	if m.State() != ModuleReady {
		t.Fatalf("precondition failed: state = %v", m.State())
	}
	cfg := DefaultConfig(4)
	var out Outputs
	for i := 0; i < cfg.ResetHoldTicks; i++ {
		out = m.Tick(Inputs{ResetAsserted: true}, nil)
	}
	if out.ModuleState != ModuleLowPwr {
		t.Errorf("state after reset hold = %v, want ModuleLowPwr", out.ModuleState)
	}
}

func TestFaultLatchedUntilReset(t *testing.T) {
	m := New(DefaultConfig(4))
	m.InjectFault()
	if m.State() != ModuleFault {
		t.Fatalf("state = %v, want ModuleFault", m.State())
	}
	m.Tick(Inputs{LPMode: false}, nil)
	if m.State() != ModuleFault {
		t.Errorf("fault should persist across ticks until reset, got %v", m.State())
	}
	cfg := DefaultConfig(4)
	var out Outputs
	for i := 0; i < cfg.ResetHoldTicks; i++ {
		out = m.Tick(Inputs{ResetAsserted: true}, nil)
	}
	if out.ModuleState != ModuleLowPwr {
		t.Errorf("reset should clear fault, got %v", out.ModuleState)
	}
}

func TestLaneReachesActivatedAfterModuleReady(t *testing.T) {
	m := New(DefaultConfig(2))
	cfg := DefaultConfig(2)
	var out Outputs
	for i := 0; i < cfg.InitDelayTicks+1; i++ {
		out = m.Tick(Inputs{LPMode: false}, nil)
	}
	if out.ModuleState != ModuleReady {
		t.Fatalf("module not ready: %v", out.ModuleState)
	}
	for i := 0; i < cfg.InitDelayTicks+2; i++ {
		out = m.Tick(Inputs{LPMode: false}, nil)
	}
	if out.LaneStates[0] != DPActivated {
		t.Errorf("lane 0 state = %v, want DPActivated", out.LaneStates[0])
	}
}

func TestByte3BitsEncoding(t *testing.T) {
	got := ModuleReady.Byte3Bits(0x01)
	want := byte(0x01 | (3 << 1))
	if got != want {
		t.Errorf("Byte3Bits = %#x, want %#x", got, want)
	}
}
