// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sff8472 builds the A0h (identifier/serial-id) and A2h
// (diagnostic monitoring) memory-map templates for SFP/SFP+ modules,
// per SFF-8472 rev 12.4's field layout.
package sff8472

// A0h (identifier / serial ID) field offsets, all within the lower,
// non-paged half of the address space.
const (
	OffIdentifier    = 0
	OffConnector     = 2
	OffTransceiver   = 3  // 8 bytes, transceiver compliance codes
	OffVendorName    = 20 // 16 bytes, space-padded ASCII
	OffVendorOUI     = 37 // 3 bytes
	OffVendorPN      = 40 // 16 bytes, space-padded ASCII
	OffVendorRev     = 56 // 4 bytes, space-padded ASCII
	OffWavelength    = 60 // 2 bytes, big-endian, 0.05nm units -> SFF-8472 wavelength field
	OffCCBase        = 63
	OffOptions       = 64
	OffBitRate       = 66
	OffVendorSerial  = 68 // 16 bytes, space-padded ASCII
	OffDateCode      = 84 // 8 bytes
	OffDiagMonType   = 92
	OffEnhancedOpts  = 93
	OffSFF8472Compl  = 94
	OffCCExt         = 95
)

// A2h (diagnostic monitoring) field offsets.
const (
	OffAlarmWarnThresh = 0  // 56 bytes: temp/vcc/bias/tx power/rx power high/low alarm/warn
	OffCalConstants    = 56 // 40 bytes: slope/offset pairs, IEEE-754 big-endian
	OffTemperature     = 96 // 2 bytes signed Q8.8
	OffVcc             = 98 // 2 bytes unsigned, 100uV/LSB
	OffTxBias          = 100 // 2 bytes unsigned, 2uA/LSB
	OffTxPower         = 102 // 2 bytes unsigned, 0.1uW/LSB
	OffRxPower         = 104 // 2 bytes unsigned, 0.1uW/LSB
	OffStatusBits      = 110
	OffAlarmFlags      = 112 // 2 bytes
	OffWarnFlags       = 116 // 2 bytes
)

// Status bit assignments at OffStatusBits, per SFF-8472 table 9-11.
const (
	StatusTxDisable  byte = 1 << 7
	StatusTxFault    byte = 1 << 2
	StatusRxLOS      byte = 1 << 1
)

// Threshold field sub-offsets within OffAlarmWarnThresh, each a 2-byte
// big-endian value in the same units as the corresponding real-time
// diagnostic.
const (
	OffTempHighAlarm = OffAlarmWarnThresh + 0
	OffTempLowAlarm  = OffAlarmWarnThresh + 2
	OffTempHighWarn  = OffAlarmWarnThresh + 4
	OffTempLowWarn   = OffAlarmWarnThresh + 6
	OffVccHighAlarm  = OffAlarmWarnThresh + 8
	OffVccLowAlarm   = OffAlarmWarnThresh + 10
	OffVccHighWarn   = OffAlarmWarnThresh + 12
	OffVccLowWarn    = OffAlarmWarnThresh + 14
	OffBiasHighAlarm = OffAlarmWarnThresh + 16
	OffBiasLowAlarm  = OffAlarmWarnThresh + 18
	OffBiasHighWarn  = OffAlarmWarnThresh + 20
	OffBiasLowWarn   = OffAlarmWarnThresh + 22
	OffTxPowHighAlarm = OffAlarmWarnThresh + 24
	OffTxPowLowAlarm  = OffAlarmWarnThresh + 26
	OffTxPowHighWarn  = OffAlarmWarnThresh + 28
	OffTxPowLowWarn   = OffAlarmWarnThresh + 30
	OffRxPowHighAlarm = OffAlarmWarnThresh + 32
	OffRxPowLowAlarm  = OffAlarmWarnThresh + 34
	OffRxPowHighWarn  = OffAlarmWarnThresh + 36
	OffRxPowLowWarn   = OffAlarmWarnThresh + 38
)

// Alarm/warning flag bit assignments, each a 16-bit big-endian field at
// OffAlarmFlags/OffWarnFlags: byte 0 bits 7..4 are temp/vcc, byte 1 bits
// 7..2 are bias/tx-power/rx-power per SFF-8472 table 9-12.
const (
	FlagTempHigh byte = 1 << 7 // byte 0
	FlagTempLow  byte = 1 << 6
	FlagVccHigh  byte = 1 << 5
	FlagVccLow   byte = 1 << 4

	FlagBiasHigh  byte = 1 << 7 // byte 1
	FlagBiasLow   byte = 1 << 6
	FlagTxPowHigh byte = 1 << 5
	FlagTxPowLow  byte = 1 << 4
	FlagRxPowHigh byte = 1 << 3
	FlagRxPowLow  byte = 1 << 2
)
