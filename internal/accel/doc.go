// Package accel dispatches reflected 32-bit CRCs to CPU instructions.
//
// # Supported Platforms
//
//   - x86-64: PCLMULQDQ+SSE4.1 (IEEE), SSE4.2 (Castagnoli)
//   - ARM64: CRC32 extension (IEEE, Castagnoli)
//
// Runtime CPU feature detection selects the native path. Set
// FASTCRC_ACCEL=generic to force the table-driven fallback.
//
// Only the raw register is exchanged with callers: Update takes and returns
// the register without the final complement, so results compose with the
// table-driven engine.
package accel
