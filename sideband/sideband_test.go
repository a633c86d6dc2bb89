// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sideband

import "testing"

func TestHostCannotDriveModuleSignal(t *testing.T) {
	b := New()
	if err := b.HostSet(IntL, High); err == nil {
		t.Error("expected error setting a module-driven signal from the host side")
	}
}

func TestModuleCannotDriveHostSignal(t *testing.T) {
	b := New()
	if err := b.ModuleSet(ResetL, High); err == nil {
		t.Error("expected error setting a host-driven signal from the module side")
	}
}

func TestObserverFiresOnChange(t *testing.T) {
	b := New()
	var got Level
	fired := false
	b.Observe(ResetL, func(s Signal, level Level) {
		fired = true
		got = level
	})
	if err := b.HostSet(ResetL, Low); err != nil {
		t.Fatal(err)
	}
	if !fired {
		t.Fatal("observer did not fire")
	}
	if got != Low {
		t.Errorf("observer saw %v, want Low", got)
	}
}

func TestObserverDoesNotFireOnNoChange(t *testing.T) {
	b := New()
	fired := false
	b.Observe(ResetL, func(s Signal, level Level) { fired = true })
	if err := b.HostSet(ResetL, High); err != nil { // already High
		t.Fatal(err)
	}
	if fired {
		t.Error("observer fired despite no level change")
	}
}

func TestModPrsLDefaultsHigh(t *testing.T) {
	b := New()
	if b.Get(ModPrsL) != High {
		t.Errorf("ModPrsL default = %v, want High (no module attached)", b.Get(ModPrsL))
	}
}
