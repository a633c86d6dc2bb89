// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package modstate implements the CMIS module-level and per-lane
// data-path state machines as an explicit step function advanced once
// per call, with no internal goroutine: every transition happens
// inside Tick, driven by the caller's discrete clock rather than
// wall-clock polling.
package modstate

import "github.com/platinasystems/xcvrsim/internal/enumstr"

// ModuleState is the CMIS module-level power/init state, encoded at
// bits 3:1 of CMIS lower-page byte 3.
type ModuleState uint8

const (
	ModuleLowPwr ModuleState = 1
	ModulePwrUp  ModuleState = 2
	ModuleReady  ModuleState = 3
	ModulePwrDn  ModuleState = 4
	ModuleFault  ModuleState = 5
)

var moduleStateNames = []string{
	0: "reserved", 1: "ModuleLowPwr", 2: "ModulePwrUp",
	3: "ModuleReady", 4: "ModulePwrDn", 5: "ModuleFault",
}

func (s ModuleState) String() string { return enumstr.Lookup(moduleStateNames, int(s)) }

// Byte3Bits encodes the module state into CMIS lower-page byte 3's bits
// 3:1, leaving the other bits of the supplied base byte untouched.
func (s ModuleState) Byte3Bits(base byte) byte {
	return (base &^ 0x0E) | (byte(s) << 1)
}

// DataPathState is a lane's CMIS data-path activation state.
type DataPathState uint8

const (
	DPDeactivated DataPathState = iota
	DPInit
	DPDeinit
	DPActivated
	DPTxTurnOn
	DPTxTurnOff
	DPTxOff
)

var dataPathStateNames = []string{
	"DPDeactivated", "DPInit", "DPDeinit", "DPActivated",
	"DPTxTurnOn", "DPTxTurnOff", "DPTxOff",
}

func (s DataPathState) String() string { return enumstr.Lookup(dataPathStateNames, int(s)) }

// Config holds the configurable tick delays the state machine waits
// out before advancing, defaulting to 2 ticks each.
type Config struct {
	ResetHoldTicks int
	InitDelayTicks int
	LaneCount      int
}

// DefaultConfig returns the default tick delays for the given lane
// count.
func DefaultConfig(laneCount int) Config {
	return Config{ResetHoldTicks: 2, InitDelayTicks: 2, LaneCount: laneCount}
}

// Inputs is everything one Tick call reads: host-driven sideband levels
// and control-register bits, resolved by the caller from the module's
// map and sideband bank before calling Tick.
type Inputs struct {
	ResetAsserted   bool // ResetL observed Low
	LPMode          bool
	LowPwrRequestSW bool
	LaneDeinit      []bool // DataPathDeinit bit per lane
}

// Outputs is everything one Tick call produces.
type Outputs struct {
	ModuleState ModuleState
	IntL        bool
	LaneStates  []DataPathState
}

// Machine holds the state machine's mutable state across ticks.
type Machine struct {
	cfg    Config
	state  ModuleState
	faulty bool

	resetTicks int
	initTicks  int

	lanes     []DataPathState
	laneTicks []int
}

// New returns a Machine starting in MODULE_LOW_PWR, the CMIS
// power-on-reset default, with every lane DPDeactivated.
func New(cfg Config) *Machine {
	m := &Machine{
		cfg:       cfg,
		state:     ModuleLowPwr,
		lanes:     make([]DataPathState, cfg.LaneCount),
		laneTicks: make([]int, cfg.LaneCount),
	}
	return m
}

// State returns the current module state.
func (m *Machine) State() ModuleState { return m.state }

// Lane returns lane i's current data-path state.
func (m *Machine) Lane(i int) DataPathState { return m.lanes[i] }

// InjectFault latches MODULE_FAULT, overriding whatever state the
// module was in. Cleared only by a reset pulse.
func (m *Machine) InjectFault() {
	m.faulty = true
	m.state = ModuleFault
}

// Tick advances the state machine by one step and returns the
// resulting outputs. onTransition, if non-nil, is called once per
// observed module-state change (used by xcvr to emit a log line
// through the wired logging package without modstate importing it
// directly).
func (m *Machine) Tick(in Inputs, onTransition func(from, to ModuleState)) Outputs {
	prev := m.state

	if in.ResetAsserted {
		m.resetTicks++
		m.faulty = false
		if m.resetTicks >= m.cfg.ResetHoldTicks {
			m.state = ModuleLowPwr
			m.initTicks = 0
		}
	} else {
		m.resetTicks = 0
		if !m.faulty {
			m.advanceUnreset(in)
		}
	}

	if prev != m.state && onTransition != nil {
		onTransition(prev, m.state)
	}

	lanes := make([]DataPathState, len(m.lanes))
	for i := range m.lanes {
		lanes[i] = m.advanceLane(i, in)
	}

	return Outputs{
		ModuleState: m.state,
		IntL:        m.state == ModuleFault,
		LaneStates:  lanes,
	}
}

func (m *Machine) advanceUnreset(in Inputs) {
	switch m.state {
	case ModuleLowPwr:
		if in.LPMode {
			return
		}
		if in.LowPwrRequestSW {
			return
		}
		m.state = ModulePwrUp
		m.initTicks = 0
	case ModulePwrUp:
		if in.LPMode || in.LowPwrRequestSW {
			m.state = ModuleLowPwr
			return
		}
		m.initTicks++
		if m.initTicks >= m.cfg.InitDelayTicks {
			m.state = ModuleReady
		}
	case ModuleReady:
		if in.LPMode || in.LowPwrRequestSW {
			m.state = ModuleLowPwr
			m.initTicks = 0
		}
	case ModulePwrDn:
		if !in.LPMode && !in.LowPwrRequestSW {
			m.state = ModulePwrUp
			m.initTicks = 0
		}
	}
}

// advanceLane runs one lane's independent data-path machine. Lanes are
// processed in index order by Tick's range loop, so simultaneous
// transitions resolve deterministically by lane number.
func (m *Machine) advanceLane(i int, in Inputs) DataPathState {
	if m.state != ModuleReady {
		m.lanes[i] = DPDeactivated
		m.laneTicks[i] = 0
		return m.lanes[i]
	}

	deinit := i < len(in.LaneDeinit) && in.LaneDeinit[i]

	switch m.lanes[i] {
	case DPDeactivated:
		if !deinit {
			m.lanes[i] = DPInit
			m.laneTicks[i] = 0
		}
	case DPInit:
		if deinit {
			m.lanes[i] = DPDeinit
			break
		}
		m.laneTicks[i]++
		if m.laneTicks[i] >= m.cfg.InitDelayTicks {
			m.lanes[i] = DPTxTurnOn
		}
	case DPTxTurnOn:
		if deinit {
			m.lanes[i] = DPDeinit
			break
		}
		m.lanes[i] = DPActivated
	case DPActivated:
		if deinit {
			m.lanes[i] = DPTxTurnOff
		}
	case DPTxTurnOff:
		m.lanes[i] = DPTxOff
	case DPTxOff:
		if deinit {
			m.lanes[i] = DPDeinit
		}
	case DPDeinit:
		if !deinit {
			m.lanes[i] = DPDeactivated
		}
	}
	return m.lanes[i]
}
