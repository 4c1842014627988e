// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent overflow when physical
// addresses and region sizes from configuration are handed to system calls
// that take signed or platform-sized integers.
package conv
