// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memmap

// Access is the permission carried by a byte in a memory map, per the
// three-way split the standards define: host-writable, host-read-only,
// or reserved (reads as zero, writes ignored).
type Access uint8

const (
	RO Access = iota
	RW
	Reserved
)

func (a Access) String() string {
	switch a {
	case RO:
		return "RO"
	case RW:
		return "RW"
	case Reserved:
		return "Reserved"
	default:
		return "?"
	}
}
