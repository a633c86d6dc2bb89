// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sff8636 builds the single-address, paged memory-map
// templates for QSFP/QSFP+ modules: a lower page (identifier, status,
// interrupt flags, monitors, control, page-select) plus upper pages
// 00h (serial ID), 01h/02h (thresholds) and 03h (channel thresholds
// and controls), per SFF-8636 rev 2.10a's field layout.
package sff8636

// Lower-page (non-paged) offsets.
const (
	OffIdentifier     = 0
	OffStatus         = 1 // byte1: bit0 DataNotReady, byte2: module flags latched
	OffLOSFlags       = 3 // RX LOS ch1-4 (bits0-3), TX LOS ch1-4 (bits4-7); TX fault bits are at OffTxFaultFlags
	OffTempAlarmFlags = 9
	OffVccAlarmFlags  = 11
	OffTempMonitor    = 22 // 2 bytes signed Q8.8
	OffVccMonitor     = 26 // 2 bytes unsigned 100uV
	OffRxPower        = 34 // 2 bytes x 4 channels = 8 bytes (34..41)
	OffTxBias         = 42 // 2 bytes x 4 channels (42..49)
	OffTxPowerLower   = 50 // 2 bytes x 4 channels (50..57)
	OffTxDisable      = 86
	OffPageSelect     = 127
)

// Page 00h (serial ID, the upper-page mirror of SFF-8472's A0h layout,
// each field offset by +128 relative to its A0h counterpart, except that
// the vendor revision is 2 bytes wide and the wavelength follows it at
// 186 rather than 188).
const (
	Page00Identifier  = 128
	Page00Connector   = 130
	Page00VendorName  = 148
	Page00VendorOUI   = 165
	Page00VendorPN    = 168
	Page00VendorRev   = 184
	Page00Wavelength  = 186
	Page00CCBase      = 191
	Page00VendorSN    = 196
	Page00DateCode    = 212
	Page00CCExt       = 223
)

// Page 03h (channel thresholds and controls).
const (
	Page03TempHighAlarm = 128
	Page03TempLowAlarm  = 130
	Page03TempHighWarn  = 132
	Page03TempLowWarn   = 134
	Page03VccHighAlarm  = 136
	Page03VccLowAlarm   = 138
	Page03VccHighWarn   = 140
	Page03VccLowWarn    = 142
	Page03RxPowHighAlarm = 176
	Page03RxPowLowAlarm  = 178
	Page03RxPowHighWarn  = 180
	Page03RxPowLowWarn   = 182
	Page03TxBiasHighAlarm = 184
	Page03TxBiasLowAlarm  = 186
	Page03TxBiasHighWarn  = 188
	Page03TxBiasLowWarn   = 190
)

// OffTxFaultFlags is the per-channel TX fault latch byte, one bit per
// lane, two bytes past the RX-LOS/TX-LOS byte at OffLOSFlags.
const OffTxFaultFlags = OffLOSFlags + 2

// LOS/Fault bit assignments, one bit per channel (bit i = channel i).
const (
	RxLOSBit0   byte = 1 << 0
	TxLOSBit0   byte = 1 << 4
	TxFaultBit0 byte = 1 << 0
)

// Temperature/voltage alarm flag bit assignments: high at bit 7 and low
// at bit 6 of each of the OffTempAlarmFlags and OffVccAlarmFlags bytes.
const (
	FlagTempHigh byte = 1 << 7
	FlagTempLow  byte = 1 << 6
	FlagVccHigh  byte = 1 << 7
	FlagVccLow   byte = 1 << 6
)
