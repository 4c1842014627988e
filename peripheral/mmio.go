package peripheral

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"

	"github.com/hupe1980/fastcrc/internal/mmap"
)

// MMIO is a Port backed by the real registers, mapped through a memory device.
//
// 32-bit registers are accessed with sync/atomic so every access reaches the
// bus exactly once. Narrow aliases are plain loads and stores through their
// own pointers.
type MMIO struct {
	regs *mmap.Mapping
	band *mmap.Mapping
	gate *mmap.Mapping

	data   *uint32
	poly   *uint32
	ctrl   *uint32
	data16 [2]*uint16 // by Lane
	data8  [2]*uint8  // by Lane

	gateReg *uint32
	gateBit uint32
}

var _ Port = (*MMIO)(nil)

// OpenMMIO maps the register block described by cfg.
// When the platform cannot map devices, or the memory device is missing or
// not accessible, the error wraps ErrUnavailable.
func OpenMMIO(cfg Config) (*MMIO, error) {
	cfg = cfg.withDefaults()
	log := cfg.Logger.With("device", cfg.DevicePath, "base", fmt.Sprintf("%#x", cfg.Base))

	m := &MMIO{gateBit: cfg.ClockGateBit}

	var err error
	if m.regs, err = mmap.MapDevice(cfg.DevicePath, cfg.Base, OffsetCtrl+4); err != nil {
		log.Error("map crc registers failed", "error", err)
		return nil, wrapMapErr(err)
	}

	ctrlAddr := cfg.Base + OffsetCtrl
	bandAddr := BitBandAlias(cfg.BitBandRef, cfg.BitBandBase, ctrlAddr, 0)
	if m.band, err = mmap.MapDevice(cfg.DevicePath, bandAddr, 32*4); err != nil {
		m.Close()
		log.Error("map bit-band alias failed", "error", err)
		return nil, wrapMapErr(err)
	}

	if cfg.ClockGate != 0 {
		if m.gate, err = mmap.MapDevice(cfg.DevicePath, cfg.ClockGate, 4); err != nil {
			m.Close()
			log.Error("map clock gate failed", "error", err)
			return nil, wrapMapErr(err)
		}
		if m.gateReg, err = m.gate.Uint32(0); err != nil {
			m.Close()
			return nil, err
		}
	}

	if err := m.bind(); err != nil {
		m.Close()
		return nil, err
	}

	log.Info("crc peripheral mapped")
	return m, nil
}

func wrapMapErr(err error) error {
	if errors.Is(err, mmap.ErrUnsupported) || errors.Is(err, os.ErrNotExist) || errors.Is(err, os.ErrPermission) {
		return fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	return err
}

func (m *MMIO) bind() error {
	var err error
	if m.data, err = m.regs.Uint32(OffsetData); err != nil {
		return err
	}
	if m.poly, err = m.regs.Uint32(OffsetPoly); err != nil {
		return err
	}
	if m.ctrl, err = m.regs.Uint32(OffsetCtrl); err != nil {
		return err
	}
	if m.data16[LaneLow], err = m.regs.Uint16(OffsetData); err != nil {
		return err
	}
	if m.data16[LaneHigh], err = m.regs.Uint16(OffsetDataHigh16); err != nil {
		return err
	}
	if m.data8[LaneLow], err = m.regs.Uint8(OffsetData); err != nil {
		return err
	}
	if m.data8[LaneHigh], err = m.regs.Uint8(OffsetDataHigh8); err != nil {
		return err
	}
	return nil
}

// Close unmaps all register windows.
func (m *MMIO) Close() error {
	var errs []error
	for _, mp := range []*mmap.Mapping{m.regs, m.band, m.gate} {
		if mp != nil {
			errs = append(errs, mp.Close())
		}
	}
	return errors.Join(errs...)
}

// EnableClock implements Port.
func (m *MMIO) EnableClock() {
	if m.gateReg == nil {
		return
	}
	atomic.OrUint32(m.gateReg, m.gateBit)
}

// WriteCtrl implements Port.
func (m *MMIO) WriteCtrl(v uint32) { atomic.StoreUint32(m.ctrl, v) }

// ReadCtrl implements Port.
func (m *MMIO) ReadCtrl() uint32 { return atomic.LoadUint32(m.ctrl) }

// SetCtrlBit implements Port.
func (m *MMIO) SetCtrlBit(bit uint, on bool) {
	var v uint32
	if on {
		v = 1
	}
	atomic.StoreUint32(m.bandWord(bit), v)
}

// CtrlBit implements Port.
func (m *MMIO) CtrlBit(bit uint) bool {
	return atomic.LoadUint32(m.bandWord(bit))&1 != 0
}

func (m *MMIO) bandWord(bit uint) *uint32 {
	w, err := m.band.Uint32(int(bit) * 4)
	if err != nil {
		panic(fmt.Sprintf("peripheral: bit-band access to bit %d: %v", bit, err))
	}
	return w
}

// WritePoly implements Port.
func (m *MMIO) WritePoly(v uint32) { atomic.StoreUint32(m.poly, v) }

// Write32 implements Port.
func (m *MMIO) Write32(v uint32) { atomic.StoreUint32(m.data, v) }

// Write16 implements Port.
func (m *MMIO) Write16(v uint16) { *m.data16[LaneLow] = v }

// Write8 implements Port.
func (m *MMIO) Write8(v uint8) { *m.data8[LaneHigh] = v }

// Read32 implements Port.
func (m *MMIO) Read32() uint32 { return atomic.LoadUint32(m.data) }

// Read16 implements Port.
func (m *MMIO) Read16(lane Lane) uint16 { return *m.data16[lane] }

// Read8 implements Port.
func (m *MMIO) Read8(lane Lane) uint8 { return *m.data8[lane] }
