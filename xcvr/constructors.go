// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package xcvr

import "github.com/platinasystems/xcvrsim/monitor"

// SFPConfig is the identity/threshold configuration for an SFF-8472
// SFP/SFP+ module.
type SFPConfig struct {
	Identifier      byte
	Connector       byte
	TransceiverCode [8]byte
	VendorName      string
	VendorOUI       [3]byte
	VendorPN        string
	VendorRev       string
	VendorSerial    string
	DateCode        string
	WavelengthNM    float64
	Limits          monitor.Limits
}

// NewSFP builds an SFF-8472 module, a thin per-form-factor wrapper
// backed by the same general xcvr.New(Config) implementation every
// form factor uses.
func NewSFP(cfg SFPConfig) *Module {
	return New(Config{
		Standard:        StandardSFF8472,
		Identifier:      cfg.Identifier,
		Connector:       cfg.Connector,
		TransceiverCode: cfg.TransceiverCode,
		VendorName:      cfg.VendorName,
		VendorOUI:       cfg.VendorOUI,
		VendorPN:        cfg.VendorPN,
		VendorRev:       cfg.VendorRev,
		VendorSerial:    cfg.VendorSerial,
		DateCode:        cfg.DateCode,
		WavelengthNM:    cfg.WavelengthNM,
		LaneCount:       1,
		Limits:          cfg.Limits,
	})
}

// QSFPConfig is the identity/threshold configuration for an SFF-8636
// QSFP/QSFP+/QSFP28 module.
type QSFPConfig struct {
	Identifier   byte
	Connector    byte
	VendorName   string
	VendorOUI    [3]byte
	VendorPN     string
	VendorRev    string
	VendorSerial string
	DateCode     string
	WavelengthNM float64
	LaneCount    int
	Limits       monitor.Limits
}

// NewQSFP builds an SFF-8636 module.
func NewQSFP(cfg QSFPConfig) *Module {
	laneCount := cfg.LaneCount
	if laneCount == 0 {
		laneCount = 4
	}
	return New(Config{
		Standard:     StandardSFF8636,
		Identifier:   cfg.Identifier,
		Connector:    cfg.Connector,
		VendorName:   cfg.VendorName,
		VendorOUI:    cfg.VendorOUI,
		VendorPN:     cfg.VendorPN,
		VendorRev:    cfg.VendorRev,
		VendorSerial: cfg.VendorSerial,
		DateCode:     cfg.DateCode,
		WavelengthNM: cfg.WavelengthNM,
		LaneCount:    laneCount,
		Limits:       cfg.Limits,
	})
}

// OSFPConfig is the identity/threshold configuration for a CMIS
// QSFP-DD/OSFP module.
type OSFPConfig struct {
	Identifier     byte
	VendorName     string
	VendorOUI      [3]byte
	VendorPN       string
	VendorRev      string
	VendorSerial   string
	DateCode       string
	LaneCount      int
	Limits         monitor.Limits
	ResetHoldTicks int
	InitDelayTicks int
}

// NewOSFP builds a CMIS module. QSFP-DD modules use the same CMIS
// layout and state machine; callers needing that form factor should
// use NewOSFP too, since CMIS defines one register model and state
// machine shared by both physical form factors.
func NewOSFP(cfg OSFPConfig) *Module {
	laneCount := cfg.LaneCount
	if laneCount == 0 {
		laneCount = 8
	}
	return New(Config{
		Standard:       StandardCMIS,
		Identifier:     cfg.Identifier,
		VendorName:     cfg.VendorName,
		VendorOUI:      cfg.VendorOUI,
		VendorPN:       cfg.VendorPN,
		VendorRev:      cfg.VendorRev,
		VendorSerial:   cfg.VendorSerial,
		DateCode:       cfg.DateCode,
		LaneCount:      laneCount,
		Limits:         cfg.Limits,
		ResetHoldTicks: cfg.ResetHoldTicks,
		InitDelayTicks: cfg.InitDelayTicks,
	})
}
