// Copyright 2026 Platina Systems, Inc. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memmap implements the paged, access-masked byte memory model
// shared by SFF-8472, SFF-8636 and CMIS register spaces: a fixed lower
// half (offsets 0..127) plus a page/bank-switched upper half (offsets
// 128..255).
package memmap

import (
	"fmt"

	"github.com/platinasystems/xcvrsim/xcvrerr"
)

// ReservedWritePolicy governs what happens when a host write targets a
// read-only or reserved byte: SFF drops it silently, CMIS reports it on
// the error channel. This is fixed per standard, not mixed within one
// map.
type ReservedWritePolicy uint8

const (
	DropDeniedWrites  ReservedWritePolicy = iota // SFF
	ReportDeniedWrites                           // CMIS
)

type checksumSpec struct {
	start, end uint8 // half-open span [start, end) summed
	target     uint8 // offset the sum is written to
}

// Map is one device address's (or one CMIS logical address's) register
// space: a fixed lower half and a set of installed, page/bank-addressed
// upper halves.
type Map struct {
	lower       [128]byte
	lowerAccess [128]Access

	pages   map[uint16]*page
	curPage uint8
	curBank uint8

	pageSelectOffset int // -1 disables paging (e.g. a flat SFF-8472 A0h/A2h space)
	bankSelectOffset int // -1 disables banking (non-CMIS)

	policy     ReservedWritePolicy
	checksums  []checksumSpec
}

// New builds a Map from a lower-half template. At least one page must
// be installed separately with InstallPage before any upper-half access
// succeeds.
func New(lower LowerTemplate, pageSelectOffset, bankSelectOffset int, policy ReservedWritePolicy) *Map {
	m := &Map{
		lower:            lower.Data,
		lowerAccess:      lower.Access,
		pages:            make(map[uint16]*page),
		pageSelectOffset: pageSelectOffset,
		bankSelectOffset: bankSelectOffset,
		policy:           policy,
	}
	return m
}

// AddChecksum registers a CC_BASE/CC_EXT-style checksum: whenever a
// committed write touches [start,end), target is rewritten to
// sum(lower[start:end]) mod 256. Both span and target live in the lower
// half, matching CC_BASE (span 0..62, target 63) and CC_EXT (span
// 64..94, target 95) on SFF-8472 A0h.
func (m *Map) AddChecksum(start, end, target uint8) {
	m.checksums = append(m.checksums, checksumSpec{start, end, target})
	m.refreshChecksum(m.checksums[len(m.checksums)-1])
}

func (m *Map) refreshChecksum(c checksumSpec) {
	var sum byte
	for i := c.start; i < c.end; i++ {
		sum += m.lower[i]
	}
	m.lower[c.target] = sum
}

func (m *Map) refreshChecksumsOverlapping(start uint8, n int) {
	end := int(start) + n
	for _, c := range m.checksums {
		if int(c.start) < end && start < c.end {
			m.refreshChecksum(c)
		}
	}
}

// InstallPage registers a named upper-page layout at (bank, page). The
// first page installed into a Map becomes its initially selected page.
func (m *Map) InstallPage(bank, number uint8, tmpl PageTemplate) {
	p := &page{data: tmpl.Data, access: tmpl.Access}
	m.pages[pageKey(bank, number)] = p
	if len(m.pages) == 1 {
		m.curBank, m.curPage = bank, number
	}
}

// CurrentPage returns the currently selected upper page number.
func (m *Map) CurrentPage() uint8 { return m.curPage }

// CurrentBank returns the currently selected bank.
func (m *Map) CurrentBank() uint8 { return m.curBank }

// SelectPage switches the visible upper half to the given page of the
// current bank. The page must already be installed.
func (m *Map) SelectPage(number uint8) error {
	if _, ok := m.pages[pageKey(m.curBank, number)]; !ok {
		return fmt.Errorf("memmap: page %#x not installed: %w", number, xcvrerr.ErrOutOfRange)
	}
	m.curPage = number
	return nil
}

// SelectBank switches the visible upper half to the current page of the
// given bank. The (bank, current page) pair must already be installed.
func (m *Map) SelectBank(bank uint8) error {
	if _, ok := m.pages[pageKey(bank, m.curPage)]; !ok {
		return fmt.Errorf("memmap: bank %#x page %#x not installed: %w", bank, m.curPage, xcvrerr.ErrOutOfRange)
	}
	m.curBank = bank
	return nil
}

func (m *Map) currentPage() (*page, error) {
	p, ok := m.pages[pageKey(m.curBank, m.curPage)]
	if !ok {
		return nil, fmt.Errorf("memmap: no page selected: %w", xcvrerr.ErrOutOfRange)
	}
	return p, nil
}

// bounds splits [offset, offset+n) into the lower and upper sub-ranges
// it touches, rejecting transfers that straddle the 127/128 boundary.
func bounds(offset uint8, n int) (lowerOnly, upperOnly bool, err error) {
	if n < 0 || int(offset)+n > 256 {
		return false, false, fmt.Errorf("memmap: offset %d len %d exceeds 256 bytes: %w", offset, n, xcvrerr.ErrOutOfRange)
	}
	end := int(offset) + n
	switch {
	case end <= 128:
		return true, false, nil
	case offset >= 128:
		return false, true, nil
	default:
		return false, false, fmt.Errorf("memmap: range [%d,%d) straddles the lower/upper boundary: %w", offset, end, xcvrerr.ErrCrossPage)
	}
}

// Read returns n bytes starting at offset, honoring Reserved-reads-as-
// zero and rejecting reads that cross the 127/128 boundary.
func (m *Map) Read(offset uint8, n int) ([]byte, error) {
	lowerOnly, upperOnly, err := bounds(offset, n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	if lowerOnly {
		for i := 0; i < n; i++ {
			o := int(offset) + i
			if m.lowerAccess[o] == Reserved {
				out[i] = 0
			} else {
				out[i] = m.lower[o]
			}
		}
		return out, nil
	}
	if upperOnly {
		p, err := m.currentPage()
		if err != nil {
			return nil, err
		}
		for i := 0; i < n; i++ {
			o := int(offset) + i - 128
			if p.access[o] == Reserved {
				out[i] = 0
			} else {
				out[i] = p.data[o]
			}
		}
		return out, nil
	}
	panic("unreachable")
}

// ReadByte is a single-byte convenience wrapper over Read.
func (m *Map) ReadByte(offset uint8) (byte, error) {
	b, err := m.Read(offset, 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// Write stores data starting at offset, enforcing the access mask
// all-or-nothing: if any targeted byte is RO or Reserved, no byte in
// the span is mutated. Whether that also surfaces an error depends on
// the map's ReservedWritePolicy (SFF drops silently, CMIS reports
// xcvrerr.ErrAccessDenied). Writes that straddle the lower/upper
// boundary are always rejected with xcvrerr.ErrCrossPage.
func (m *Map) Write(offset uint8, data []byte) error {
	lowerOnly, upperOnly, err := bounds(offset, len(data))
	if err != nil {
		return err
	}

	if lowerOnly {
		if !m.allWritable(m.lowerAccess[:], int(offset), len(data)) {
			return m.deniedWrite(offset, len(data))
		}
		if m.pageSelectOffset >= 0 && len(data) == 1 && int(offset) == m.pageSelectOffset {
			if err := m.SelectPage(data[0]); err != nil {
				return err
			}
		}
		if m.bankSelectOffset >= 0 && len(data) == 1 && int(offset) == m.bankSelectOffset {
			if err := m.SelectBank(data[0]); err != nil {
				return err
			}
		}
		copy(m.lower[offset:], data)
		m.refreshChecksumsOverlapping(offset, len(data))
		return nil
	}

	if upperOnly {
		p, err := m.currentPage()
		if err != nil {
			return err
		}
		base := int(offset) - 128
		if !m.allWritable(p.access[:], base, len(data)) {
			return m.deniedWrite(offset, len(data))
		}
		copy(p.data[base:], data)
		return nil
	}
	panic("unreachable")
}

// WriteByte is a single-byte convenience wrapper over Write.
func (m *Map) WriteByte(offset uint8, v byte) error {
	return m.Write(offset, []byte{v})
}

func (m *Map) allWritable(access []Access, start, n int) bool {
	for i := start; i < start+n; i++ {
		if access[i] != RW {
			return false
		}
	}
	return true
}

func (m *Map) deniedWrite(offset uint8, n int) error {
	if m.policy == DropDeniedWrites {
		return nil
	}
	return fmt.Errorf("memmap: write to read-only/reserved byte at offset %d (len %d): %w", offset, n, xcvrerr.ErrAccessDenied)
}

// SetRaw stores data bypassing the access mask entirely. Used by the
// monitoring engine and state machine to update RO telemetry/status
// fields that the host may only read.
func (m *Map) SetRaw(offset uint8, data []byte) error {
	lowerOnly, _, err := bounds(offset, len(data))
	if err != nil {
		return err
	}
	if lowerOnly {
		copy(m.lower[offset:], data)
		m.refreshChecksumsOverlapping(offset, len(data))
		return nil
	}
	p, err := m.currentPage()
	if err != nil {
		return err
	}
	copy(p.data[int(offset)-128:], data)
	return nil
}

// SetRawAt stores data at (bank, page, offset) regardless of which
// page is currently selected, bypassing the access mask. Used by the
// monitoring engine and state machine to update banked upper-page
// fields (e.g. CMIS page 11h lane monitors) that may not be the page a
// host happens to have selected right now.
func (m *Map) SetRawAt(bank, page uint8, offset uint8, data []byte) error {
	if offset < 128 {
		return m.SetRaw(offset, data)
	}
	if int(offset)+len(data) > 256 {
		return fmt.Errorf("memmap: offset %d len %d exceeds 256 bytes: %w", offset, len(data), xcvrerr.ErrOutOfRange)
	}
	p, ok := m.pages[pageKey(bank, page)]
	if !ok {
		return fmt.Errorf("memmap: bank %#x page %#x not installed: %w", bank, page, xcvrerr.ErrOutOfRange)
	}
	copy(p.data[int(offset)-128:], data)
	return nil
}

// RawByteAt reads the true stored byte at (bank, page, offset)
// regardless of current selection.
func (m *Map) RawByteAt(bank, page uint8, offset uint8) (byte, error) {
	if offset < 128 {
		return m.lower[offset], nil
	}
	p, ok := m.pages[pageKey(bank, page)]
	if !ok {
		return 0, fmt.Errorf("memmap: bank %#x page %#x not installed: %w", bank, page, xcvrerr.ErrOutOfRange)
	}
	return p.data[int(offset)-128], nil
}

// RawByte reads the true stored byte, ignoring Reserved-reads-as-zero
// masking. Used internally for checksums and diagnostics.
func (m *Map) RawByte(offset uint8) (byte, error) {
	lowerOnly, upperOnly, err := bounds(offset, 1)
	if err != nil {
		return 0, err
	}
	if lowerOnly {
		return m.lower[offset], nil
	}
	if upperOnly {
		p, err := m.currentPage()
		if err != nil {
			return 0, err
		}
		return p.data[int(offset)-128], nil
	}
	panic("unreachable")
}
