// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sff8636

import (
	"testing"

	"github.com/platinasystems/xcvrsim/memmap"
)

func newMap(id Identity) *memmap.Map {
	m := memmap.New(BuildLower(id), OffPageSelect, -1, memmap.DropDeniedWrites)
	m.InstallPage(0, 0, BuildPage00(id))
	m.InstallPage(0, 1, BuildReservedPage())
	m.InstallPage(0, 2, BuildReservedPage())
	m.InstallPage(0, 3, BuildPage03())
	return m
}

func TestPageSwitchChangesUpperHalfNotLower(t *testing.T) {
	m := newMap(Identity{Identifier: 0x0D})
	before, err := m.Read(0, 20)
	if err != nil {
		t.Fatal(err)
	}

	if err := m.WriteByte(OffPageSelect, 0x03); err != nil {
		t.Fatal(err)
	}
	if m.CurrentPage() != 3 {
		t.Fatalf("current page = %d, want 3", m.CurrentPage())
	}

	after, err := m.Read(0, 20)
	if err != nil {
		t.Fatal(err)
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("lower half changed at byte %d after page switch: %#x -> %#x", i, before[i], after[i])
		}
	}

	b, err := m.ReadByte(Page03TempHighAlarm)
	if err != nil {
		t.Fatal(err)
	}
	if b != 0 {
		t.Errorf("fresh threshold byte should read 0, got %#x", b)
	}
	if err := m.WriteByte(Page03TempHighAlarm, 0x50); err != nil {
		t.Fatalf("threshold write should succeed on page 03h, got %v", err)
	}
}

func TestPage00MirrorsIdentityFields(t *testing.T) {
	m := newMap(Identity{Identifier: 0x0D, VendorName: "Acme Optics"})
	if err := m.WriteByte(OffPageSelect, 0x00); err != nil {
		t.Fatal(err)
	}
	id, err := m.ReadByte(Page00Identifier)
	if err != nil {
		t.Fatal(err)
	}
	if id != 0x0D {
		t.Errorf("page00 identifier = %#x, want 0x0d", id)
	}
	vendor, err := m.Read(Page00VendorName, 16)
	if err != nil {
		t.Fatal(err)
	}
	if string(vendor) != "Acme Optics     " {
		t.Errorf("page00 vendor name = %q", vendor)
	}
}
