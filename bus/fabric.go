// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bus implements the two-wire bus and sideband-signal fabric a
// host drives against a cage slot: attach/detach, byte and block
// register transfers, and GPIO get/set. Uses a scoped chk(tag, err)
// error-wrapping convention in place of a real ioctl transport, since
// all register access here dispatches against an in-memory memmap.Map.
package bus

import (
	"fmt"

	"github.com/platinasystems/xcvrsim/memmap"
	"github.com/platinasystems/xcvrsim/sideband"
	"github.com/platinasystems/xcvrsim/xcvrerr"
)

// Device is what the bus fabric dispatches against: a module exposing
// one or more device addresses (SFF-8472's A0h/A2h, or a single
// address for SFF-8636/CMIS) plus its sideband bank.
type Device interface {
	Addresses() []uint8
	MapFor(addr uint8) (*memmap.Map, error)
	Sideband() *sideband.Bank
}

// Fabric is a multi-slot bus: each slot holds at most one attached
// Device, addressed independently of every other slot.
type Fabric struct {
	modules map[string]Device
}

// New returns an empty Fabric with no modules attached.
func New() *Fabric {
	return &Fabric{modules: make(map[string]Device)}
}

func chk(tag string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("bus: %s: %w", tag, err)
}

// Attach registers d at slot, asserting its ModPrsL output. Attaching
// to an already-occupied slot replaces the prior module as if it had
// been unplugged and a new one seated.
func (f *Fabric) Attach(slot string, d Device) {
	f.Detach(slot)
	f.modules[slot] = d
	d.Sideband().ModuleSet(sideband.ModPrsL, sideband.Low)
}

// Detach asserts ModPrsL high and removes the module from slot. It is
// a no-op if nothing is attached there.
func (f *Fabric) Detach(slot string) {
	d, ok := f.modules[slot]
	if !ok {
		return
	}
	d.Sideband().ModuleSet(sideband.ModPrsL, sideband.High)
	delete(f.modules, slot)
}

func (f *Fabric) device(slot string) (Device, error) {
	d, ok := f.modules[slot]
	if !ok {
		return nil, fmt.Errorf("bus: slot %q: %w", slot, xcvrerr.ErrNoModule)
	}
	return d, nil
}

func (f *Fabric) mapFor(slot string, addr uint8) (*memmap.Map, error) {
	d, err := f.device(slot)
	if err != nil {
		return nil, err
	}
	m, err := d.MapFor(addr)
	if err != nil {
		return nil, chk("resolve device address", err)
	}
	return m, nil
}

// ReadRegister reads a single byte at offset from the map behind addr.
func (f *Fabric) ReadRegister(slot string, addr, offset uint8) (byte, error) {
	m, err := f.mapFor(slot, addr)
	if err != nil {
		return 0, err
	}
	b, err := m.ReadByte(offset)
	return b, chk("read register", err)
}

// WriteRegister writes a single byte at offset to the map behind addr.
func (f *Fabric) WriteRegister(slot string, addr, offset, value byte) error {
	m, err := f.mapFor(slot, addr)
	if err != nil {
		return err
	}
	return chk("write register", m.WriteByte(offset, value))
}

// ReadBlock reads n bytes starting at offset from the map behind addr.
func (f *Fabric) ReadBlock(slot string, addr, offset byte, n int) ([]byte, error) {
	m, err := f.mapFor(slot, addr)
	if err != nil {
		return nil, err
	}
	b, err := m.Read(offset, n)
	return b, chk("read block", err)
}

// WriteBlock writes data starting at offset to the map behind addr.
func (f *Fabric) WriteBlock(slot string, addr, offset byte, data []byte) error {
	m, err := f.mapFor(slot, addr)
	if err != nil {
		return err
	}
	return chk("write block", m.Write(offset, data))
}

// GetGPIO returns the current level of a sideband signal.
func (f *Fabric) GetGPIO(slot string, s sideband.Signal) (sideband.Level, error) {
	d, err := f.device(slot)
	if err != nil {
		return sideband.Low, err
	}
	return d.Sideband().Get(s), nil
}

// SetGPIO drives a host-facing sideband signal.
func (f *Fabric) SetGPIO(slot string, s sideband.Signal, level sideband.Level) error {
	d, err := f.device(slot)
	if err != nil {
		return err
	}
	return chk("set gpio", d.Sideband().HostSet(s, level))
}
