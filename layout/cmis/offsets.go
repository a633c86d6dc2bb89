// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package cmis builds the single-address, page/bank-addressed memory
// map templates CMIS 4.0 modules present: a lower page carrying
// identifier, module state, flags and page/bank select, plus upper
// pages 00h (administrative/identification), 01h (advertising), 10h
// (data-path control) and 11h (data-path state/monitors).
package cmis

const (
	OffIdentifier     = 0
	OffRevision       = 1
	OffByte3State     = 3 // module state at bits 3:1
	OffLowPwrRequest  = 26 // bit 6: LowPwrRequestSW
	OffModuleFlags    = 8  // latched summary flags
	OffTemperature    = 14 // 2 bytes signed Q8.8
	OffVoltage        = 16 // 2 bytes unsigned 100uV
	OffBankSelect     = 126
	OffPageSelect     = 127
)

// Page 00h (administrative/identification) offsets, the CMIS
// equivalent of SFF-8472's A0h vendor fields.
const (
	Page00VendorName = 129
	Page00VendorOUI  = 145
	Page00VendorPN   = 148
	Page00VendorRev  = 164
	Page00VendorSN   = 166
	Page00DateCode   = 182
	Page00CCBase     = 190 // checksum of page00's own identity fields, byte 62 of the page
)

// Page 10h (data-path control) offsets: one control byte per lane
// carrying the DataPathDeinit request bit.
const (
	Page10LaneControlBase = 128
	LaneDeinitBit         byte = 1 << 0
)

// Page 11h (data-path state/monitors) offsets: one state byte per
// lane. The real CMIS table packs two lanes per byte, low/high nibble;
// this emulator keeps one byte per lane instead, for simpler
// addressing of lane state by value.
const (
	Page11LaneStateBase = 128
	Page11RxPowerBase   = 186 // 2 bytes per lane
	Page11TxBiasBase    = 154 // 2 bytes per lane
	Page11TxPowerBase   = 170 // 2 bytes per lane
	Page11FaultFlagsBase = 144 // one byte per lane: bit0 TxFault, bit1 RxLOS
)

// Per-lane fault-flag bit assignments within a Page11FaultFlagsBase byte.
const (
	LaneTxFaultBit byte = 1 << 0
	LaneRxLOSBit   byte = 1 << 1
)
