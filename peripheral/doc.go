// Package peripheral models a memory-mapped CRC peripheral.
//
// The register layout follows the CRC block of the NXP Kinetis K20 family:
// a 32-bit data/accumulator register with 8- and 16-bit aliases, a polynomial
// register and a control register whose bits select the CRC width, seed
// writes, result inversion and bit/byte transposition on writes and reads.
//
// # Ports
//
// Port abstracts register access. Two implementations are provided:
//
//   - Simulator: a register-accurate software model, used by tests and as a
//     stand-in backend on machines without the peripheral.
//   - MMIO: real registers reached through device memory mapping (unix only).
//
// # Sharing
//
// The register set is a single process-wide resource whose accumulator is
// the seed of the next write. Device serializes access to a Port, enables the
// clock gate once and remembers which engine programmed the registers last.
package peripheral
