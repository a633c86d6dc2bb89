// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package enumstr provides table-lookup String() helpers for small
// integer enumerations.
package enumstr

import "fmt"

// Lookup returns n[i] if present and non-empty, else a numeric fallback.
func Lookup(n []string, i int) string {
	if i >= 0 && i < len(n) && len(n[i]) > 0 {
		return n[i]
	}
	return fmt.Sprintf("%d", i)
}

// LookupHex is Lookup with a 0x%x fallback format.
func LookupHex(n []string, i int) string {
	if i >= 0 && i < len(n) && len(n[i]) > 0 {
		return n[i]
	}
	return fmt.Sprintf("0x%x", i)
}

// Flags renders x as a comma-separated list of set-bit names from n,
// indexed by bit position, in the style of elib.FlagStringer.
func Flags(n []string, x uint32) string {
	s := ""
	for bit := 0; bit < 32; bit++ {
		mask := uint32(1) << uint(bit)
		if x&mask == 0 {
			continue
		}
		if len(s) > 0 {
			s += ", "
		}
		if bit < len(n) && len(n[bit]) > 0 {
			s += n[bit]
		} else {
			s += fmt.Sprintf("%d", bit)
		}
	}
	return s
}
