package peripheral

// SimulatorStats counts register traffic seen by a Simulator.
type SimulatorStats struct {
	Writes8      int
	Writes16     int
	Writes32     int
	SeedWrites   int
	PolyWrites   int
	CtrlWrites   int
	BitBandOps   int
	ClockEnables int
}

// Simulator is a software model of the CRC block in 32-bit mode.
//
// Written data is transposed according to CTRL.TOT and shifted into the
// accumulator most significant bit first. Reads apply CTRL.TOTR and then
// CTRL.FXOR. While CTRL.WAS is set, data writes replace the accumulator.
// Every access panics until EnableClock has been called, as a bus fault would
// on the real part.
type Simulator struct {
	ctrl  uint32
	poly  uint32
	data  uint32
	clock bool
	stats SimulatorStats
}

// NewSimulator returns a Simulator in its reset state: clock gated, all
// registers zero except GPOLY, which resets to 0x1021.
func NewSimulator() *Simulator {
	return &Simulator{poly: 0x1021}
}

var _ Port = (*Simulator)(nil)

func (s *Simulator) mustClock() {
	if !s.clock {
		panic("peripheral: CRC register access with clock gate disabled")
	}
}

// EnableClock implements Port.
func (s *Simulator) EnableClock() {
	s.clock = true
	s.stats.ClockEnables++
}

// WriteCtrl implements Port.
func (s *Simulator) WriteCtrl(v uint32) {
	s.mustClock()
	s.ctrl = v
	s.stats.CtrlWrites++
}

// ReadCtrl implements Port.
func (s *Simulator) ReadCtrl() uint32 {
	s.mustClock()
	return s.ctrl
}

// SetCtrlBit implements Port.
func (s *Simulator) SetCtrlBit(bit uint, on bool) {
	s.mustClock()
	if on {
		s.ctrl |= 1 << bit
	} else {
		s.ctrl &^= 1 << bit
	}
	s.stats.BitBandOps++
}

// CtrlBit implements Port.
func (s *Simulator) CtrlBit(bit uint) bool {
	s.mustClock()
	s.stats.BitBandOps++
	return s.ctrl&(1<<bit) != 0
}

// WritePoly implements Port.
func (s *Simulator) WritePoly(v uint32) {
	s.mustClock()
	s.poly = v
	s.stats.PolyWrites++
}

// Write32 implements Port.
func (s *Simulator) Write32(v uint32) {
	s.mustClock()
	if s.seeding() {
		s.data = v
		s.stats.SeedWrites++
		return
	}
	s.stats.Writes32++
	s.shift(WriteTranspose(s.ctrl).Apply(v, 4), 32)
}

// Write16 implements Port.
func (s *Simulator) Write16(v uint16) {
	s.mustClock()
	if s.seeding() {
		s.data = s.data&0xFFFF0000 | uint32(v)
		s.stats.SeedWrites++
		return
	}
	s.stats.Writes16++
	s.shift(WriteTranspose(s.ctrl).Apply(uint32(v), 2), 16)
}

// Write8 implements Port.
func (s *Simulator) Write8(v uint8) {
	s.mustClock()
	if s.seeding() {
		s.data = s.data&0x00FFFFFF | uint32(v)<<24
		s.stats.SeedWrites++
		return
	}
	s.stats.Writes8++
	s.shift(WriteTranspose(s.ctrl).Apply(uint32(v), 1), 8)
}

// Read32 implements Port.
func (s *Simulator) Read32() uint32 {
	s.mustClock()
	v := ReadTranspose(s.ctrl).Apply(s.data, 4)
	if s.ctrl&(1<<CtrlFXOR) != 0 {
		v = ^v
	}
	return v
}

// Read16 implements Port.
func (s *Simulator) Read16(lane Lane) uint16 {
	v := s.Read32()
	if lane == LaneHigh {
		return uint16(v >> 16)
	}
	return uint16(v)
}

// Read8 implements Port.
func (s *Simulator) Read8(lane Lane) uint8 {
	v := s.Read32()
	if lane == LaneHigh {
		return uint8(v >> 24)
	}
	return uint8(v)
}

// Stats returns a snapshot of the register traffic counters.
func (s *Simulator) Stats() SimulatorStats {
	return s.stats
}

// ResetStats clears the register traffic counters.
func (s *Simulator) ResetStats() {
	s.stats = SimulatorStats{}
}

func (s *Simulator) seeding() bool {
	return s.ctrl&(1<<CtrlWAS) != 0
}

// shift feeds the low n bits of v into the accumulator, MSB first.
func (s *Simulator) shift(v uint32, n uint) {
	for i := int(n) - 1; i >= 0; i-- {
		bit := v >> uint(i) & 1
		top := s.data>>31 ^ bit
		s.data <<= 1
		if top != 0 {
			s.data ^= s.poly
		}
	}
}
