package fastcrc_test

import (
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/hupe1980/fastcrc"
	"github.com/hupe1980/fastcrc/peripheral"
)

// Example_checksum demonstrates the one-shot catalog functions.
func Example_checksum() {
	data := []byte("123456789")

	fmt.Printf("%#04x\n", fastcrc.ChecksumModbus(data))
	fmt.Printf("%#08x\n", fastcrc.ChecksumCRC32(data))
	fmt.Printf("%#02x\n", fastcrc.Checksum(fastcrc.Maxim, data))
	// Output:
	// 0x4b37
	// 0xcbf43926
	// 0xa1
}

// Example_incremental demonstrates streaming with an engine.
func Example_incremental() {
	eng, err := fastcrc.New(fastcrc.X25)
	if err != nil {
		log.Fatal(err)
	}

	eng.Compute([]byte("1234"))
	fmt.Printf("%#04x\n", eng.Update([]byte("56789")))
	// Output: 0x906e
}

// Example_hash demonstrates the hash.Hash32 adapter.
func Example_hash() {
	h, err := fastcrc.NewHash(fastcrc.CKSum)
	if err != nil {
		log.Fatal(err)
	}
	if _, err := io.Copy(h, strings.NewReader("123456789")); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("%08x\n", h.Sum32())
	// Output: 765e7680
}

// Example_hardware demonstrates the peripheral engine on the register
// simulator.
func Example_hardware() {
	dev := peripheral.NewDevice(peripheral.NewSimulator(), nil)

	eng, err := fastcrc.New(fastcrc.CCITT, fastcrc.WithDevice(dev))
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(eng.Backend())
	fmt.Printf("%#04x\n", eng.Compute([]byte("123456789")))
	// Output:
	// hardware
	// 0x29b1
}

// Example_generic demonstrates an ad-hoc parametrization.
func Example_generic() {
	crc := fastcrc.Generic[uint16](0x1021, 0x0000, fastcrc.FlagReflectSwap, []byte("123456789"))
	fmt.Printf("%#04x\n", crc)
	// Output: 0x8921
}

// Example_lookup demonstrates runtime selection by name.
func Example_lookup() {
	alg, err := fastcrc.Lookup("CRC-16/MODBUS")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(alg.Name, alg.Width)
	fmt.Printf("%#x\n", alg.Checksum([]byte("123456789")))
	// Output:
	// modbus 16
	// 0x4b37
}
