package fastcrc

import "strings"

// Flags selects the reflection and output handling of a generic CRC.
type Flags uint8

const (
	// FlagReflectIn feeds each input byte least significant bit first.
	FlagReflectIn Flags = 1 << iota
	// FlagReflectOut reflects the register before output.
	FlagReflectOut
	// FlagXorOut complements the output.
	FlagXorOut
	// FlagSwapOut byte-swaps the output.
	FlagSwapOut
)

// Common combinations.
const (
	FlagNoReflect   Flags = 0
	FlagReflect           = FlagReflectIn | FlagReflectOut
	FlagReflectSwap       = FlagReflect | FlagSwapOut
)

// String returns the set flags joined by "|", or "none".
func (f Flags) String() string {
	if f == 0 {
		return "none"
	}

	var parts []string
	for _, n := range []struct {
		flag Flags
		name string
	}{
		{FlagReflectIn, "refin"},
		{FlagReflectOut, "refout"},
		{FlagXorOut, "xorout"},
		{FlagSwapOut, "swapout"},
	} {
		if f&n.flag != 0 {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, "|")
}
