// Package fastcrc computes CRC-7, CRC-8, CRC-16 and CRC-32 checksums.
//
// Two engines implement the same contract:
//
//   - Software: table-driven slicing-by-4 kernels, with CPU-accelerated CRC-32
//     where the processor supports it.
//   - Hardware: drives a memory-mapped CRC peripheral (Kinetis K20 layout)
//     through the peripheral package.
//
// # Catalog
//
// Eleven variants are predefined: CRC7, SMBus, Maxim, CCITT, MCRF4XX, Modbus,
// Kermit, XModem, X25, CRC32 and CKSum. Each is a Variant descriptor carrying
// the Rocksoft parameters and the check value over "123456789".
//
// # Quick Start
//
// One-shot checksums:
//
//	sum := fastcrc.ChecksumModbus(frame)          // 0x4B37 for "123456789"
//	sum32 := fastcrc.Checksum(fastcrc.CRC32, data) // generic over any variant
//
// Streaming with an engine:
//
//	eng, err := fastcrc.New(fastcrc.CCITT)
//	if err != nil {
//	    return err
//	}
//	eng.Compute(header)
//	crc := eng.Update(payload)
//
// Or through hash.Hash32:
//
//	h, _ := fastcrc.NewHash(fastcrc.CKSum)
//	io.Copy(h, f)
//	fmt.Printf("%08x\n", h.Sum32())
//
// # Hardware
//
// The hardware engine is never selected implicitly. Pass a device:
//
//	dev, err := fastcrc.OpenDevice(peripheral.DefaultConfig())
//	if err != nil {
//	    return err
//	}
//	defer dev.Close()
//
//	eng, err := fastcrc.New(fastcrc.CRC32, fastcrc.WithDevice(dev))
//
// Engines on the same device are serialized; an engine whose accumulator was
// displaced by another one re-seeds the peripheral before continuing.
//
// # Environment
//
//   - FASTCRC_BACKEND: default backend ("auto", "software", "hardware").
//   - FASTCRC_ACCEL: CRC-32 kernel family ("native", "generic").
package fastcrc
