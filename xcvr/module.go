// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xcvr glues the memory map, monitoring engine, state machine
// and sideband bank into one addressable transceiver module. One
// implementation serves all three register-layout families as a
// tagged Standard variant rather than a type per form factor.
package xcvr

import (
	"fmt"

	golog "github.com/platinasystems/log"

	"github.com/platinasystems/xcvrsim/layout/cmis"
	"github.com/platinasystems/xcvrsim/layout/sff8472"
	"github.com/platinasystems/xcvrsim/layout/sff8636"
	"github.com/platinasystems/xcvrsim/memmap"
	"github.com/platinasystems/xcvrsim/modstate"
	"github.com/platinasystems/xcvrsim/monitor"
	"github.com/platinasystems/xcvrsim/sideband"
	"github.com/platinasystems/xcvrsim/xcvrerr"
)

// AddrA0 and AddrA2 are SFF-8472's two device addresses.
const (
	AddrA0 uint8 = 0xA0
	AddrA2 uint8 = 0xA2
)

// AddrSingle is the one logical device address SFF-8636 and CMIS
// modules present; page selection, not a second address, distinguishes
// their identification vs. diagnostic views.
const AddrSingle uint8 = 0x50

// Module is one attached transceiver: its memory map(s), sideband
// bank, and (for CMIS) state machine.
type Module struct {
	cfg Config

	maps map[uint8]*memmap.Map
	sb   *sideband.Bank

	machine *modstate.Machine

	telemetry monitor.Telemetry
	result    monitor.Result
}

// New builds a Module from cfg, installing the standards-appropriate
// memory-map templates and (for CMIS) a fresh state machine.
func New(cfg Config) *Module {
	m := &Module{
		cfg:       cfg,
		maps:      make(map[uint8]*memmap.Map),
		sb:        sideband.New(),
		telemetry: monitor.Telemetry{Channels: make([]monitor.Channel, max(1, cfg.LaneCount))},
	}

	switch cfg.Standard {
	case StandardSFF8472:
		m.buildSFF8472()
	case StandardSFF8636:
		m.buildSFF8636()
	case StandardCMIS:
		m.buildCMIS()
	}

	m.sb.ModuleSet(sideband.ModPrsL, sideband.High) // not yet attached to a bus slot
	golog.Print("xcvr: constructed ", cfg.Standard, " module, identifier ", fmt.Sprintf("%#x", cfg.Identifier))
	return m
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func (m *Module) buildSFF8472() {
	lower, upper := sff8472.BuildA0(sff8472.Identity{
		Identifier:      m.cfg.Identifier,
		Connector:       m.cfg.Connector,
		TransceiverCode: m.cfg.TransceiverCode,
		VendorName:      m.cfg.VendorName,
		VendorOUI:       m.cfg.VendorOUI,
		VendorPN:        m.cfg.VendorPN,
		VendorRev:       m.cfg.VendorRev,
		WavelengthNM:    m.cfg.WavelengthNM,
		VendorSerial:    m.cfg.VendorSerial,
		DateCode:        m.cfg.DateCode,
	})
	a0 := memmap.New(lower, -1, -1, memmap.DropDeniedWrites)
	a0.InstallPage(0, 0, upper)
	m.maps[AddrA0] = a0

	a2Lower, a2Upper := sff8472.BuildA2()
	a2 := memmap.New(a2Lower, -1, -1, memmap.DropDeniedWrites)
	a2.InstallPage(0, 0, a2Upper)
	m.maps[AddrA2] = a2
}

func (m *Module) buildSFF8636() {
	id := sff8636.Identity{
		Identifier:   m.cfg.Identifier,
		Connector:    m.cfg.Connector,
		VendorName:   m.cfg.VendorName,
		VendorOUI:    m.cfg.VendorOUI,
		VendorPN:     m.cfg.VendorPN,
		VendorRev:    m.cfg.VendorRev,
		WavelengthNM: m.cfg.WavelengthNM,
		VendorSerial: m.cfg.VendorSerial,
		DateCode:     m.cfg.DateCode,
	}
	single := memmap.New(sff8636.BuildLower(id), sff8636.OffPageSelect, -1, memmap.DropDeniedWrites)
	single.InstallPage(0, 0, sff8636.BuildPage00(id))
	single.InstallPage(0, 1, sff8636.BuildReservedPage())
	single.InstallPage(0, 2, sff8636.BuildReservedPage())
	single.InstallPage(0, 3, sff8636.BuildPage03())
	m.maps[AddrSingle] = single
}

func (m *Module) buildCMIS() {
	id := cmis.Identity{
		Identifier:   m.cfg.Identifier,
		VendorName:   m.cfg.VendorName,
		VendorOUI:    m.cfg.VendorOUI,
		VendorPN:     m.cfg.VendorPN,
		VendorRev:    m.cfg.VendorRev,
		VendorSerial: m.cfg.VendorSerial,
		DateCode:     m.cfg.DateCode,
	}
	single := memmap.New(cmis.BuildLower(id), cmis.OffPageSelect, cmis.OffBankSelect, memmap.ReportDeniedWrites)
	single.InstallPage(0, 0x00, cmis.BuildPage00(id))
	single.InstallPage(0, 0x01, cmis.BuildPage01())
	single.InstallPage(0, 0x10, cmis.BuildPage10(max(1, m.cfg.LaneCount)))
	single.InstallPage(0, 0x11, cmis.BuildPage11(max(1, m.cfg.LaneCount)))
	m.maps[AddrSingle] = single

	mcfg := modstate.DefaultConfig(max(1, m.cfg.LaneCount))
	if m.cfg.ResetHoldTicks > 0 {
		mcfg.ResetHoldTicks = m.cfg.ResetHoldTicks
	}
	if m.cfg.InitDelayTicks > 0 {
		mcfg.InitDelayTicks = m.cfg.InitDelayTicks
	}
	m.machine = modstate.New(mcfg)

	m.sb.Observe(sideband.ResetL, func(sideband.Signal, sideband.Level) { m.Tick() })
	m.sb.Observe(sideband.LPMode, func(sideband.Signal, sideband.Level) { m.Tick() })
}

// Addresses implements bus.Device.
func (m *Module) Addresses() []uint8 {
	addrs := make([]uint8, 0, len(m.maps))
	for a := range m.maps {
		addrs = append(addrs, a)
	}
	return addrs
}

// MapFor implements bus.Device.
func (m *Module) MapFor(addr uint8) (*memmap.Map, error) {
	mm, ok := m.maps[addr]
	if !ok {
		return nil, xcvrerr.ErrInvalidAddress
	}
	return mm, nil
}

// Sideband implements bus.Device.
func (m *Module) Sideband() *sideband.Bank { return m.sb }

// Standard returns the module's register-layout family.
func (m *Module) Standard() Standard { return m.cfg.Standard }
