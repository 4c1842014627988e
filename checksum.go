package fastcrc

// Checksum returns the CRC of data. It panics if v is invalid.
func Checksum[T Word](v Variant[T], data []byte) T {
	return newKernel(v.mustValidate(), true).checksum(data)
}

// Update returns the CRC of the concatenation of the message summed into crc
// and data. crc is a value previously returned for v, as with hash/crc32.
// It panics if v is invalid.
func Update[T Word](v Variant[T], crc T, data []byte) T {
	return newKernel(v.mustValidate(), true).resume(crc, data)
}

// Generic computes a CRC at the full width of T with an ad-hoc polynomial,
// seed and flag set.
func Generic[T Word](poly, seed T, flags Flags, data []byte) T {
	return Checksum(FromFlags(uint8(sizeBits[T]()), poly, seed, flags), data)
}

var (
	crc7Kernel    = newKernel(CRC7.mustValidate(), true)
	smbusKernel   = newKernel(SMBus.mustValidate(), true)
	maximKernel   = newKernel(Maxim.mustValidate(), true)
	ccittKernel   = newKernel(CCITT.mustValidate(), true)
	mcrf4xxKernel = newKernel(MCRF4XX.mustValidate(), true)
	modbusKernel  = newKernel(Modbus.mustValidate(), true)
	kermitKernel  = newKernel(Kermit.mustValidate(), true)
	xmodemKernel  = newKernel(XModem.mustValidate(), true)
	x25Kernel     = newKernel(X25.mustValidate(), true)
	crc32Kernel   = newKernel(CRC32.mustValidate(), true)
	cksumKernel   = newKernel(CKSum.mustValidate(), true)
)

// ChecksumCRC7 returns the CRC-7/MMC of data. The top bit is always clear.
func ChecksumCRC7(data []byte) uint8 { return crc7Kernel.checksum(data) }

// UpdateCRC7 continues a CRC-7 returned by ChecksumCRC7.
func UpdateCRC7(crc uint8, data []byte) uint8 { return crc7Kernel.resume(crc, data) }

// ChecksumSMBus returns the CRC-8/SMBUS of data.
func ChecksumSMBus(data []byte) uint8 { return smbusKernel.checksum(data) }

// UpdateSMBus continues a CRC-8/SMBUS.
func UpdateSMBus(crc uint8, data []byte) uint8 { return smbusKernel.resume(crc, data) }

// ChecksumMaxim returns the CRC-8/MAXIM-DOW of data.
func ChecksumMaxim(data []byte) uint8 { return maximKernel.checksum(data) }

// UpdateMaxim continues a CRC-8/MAXIM-DOW.
func UpdateMaxim(crc uint8, data []byte) uint8 { return maximKernel.resume(crc, data) }

// ChecksumCCITT returns the CRC-16/CCITT-FALSE of data.
func ChecksumCCITT(data []byte) uint16 { return ccittKernel.checksum(data) }

// UpdateCCITT continues a CRC-16/CCITT-FALSE.
func UpdateCCITT(crc uint16, data []byte) uint16 { return ccittKernel.resume(crc, data) }

// ChecksumMCRF4XX returns the CRC-16/MCRF4XX of data.
func ChecksumMCRF4XX(data []byte) uint16 { return mcrf4xxKernel.checksum(data) }

// UpdateMCRF4XX continues a CRC-16/MCRF4XX.
func UpdateMCRF4XX(crc uint16, data []byte) uint16 { return mcrf4xxKernel.resume(crc, data) }

// ChecksumModbus returns the CRC-16/MODBUS of data.
func ChecksumModbus(data []byte) uint16 { return modbusKernel.checksum(data) }

// UpdateModbus continues a CRC-16/MODBUS.
func UpdateModbus(crc uint16, data []byte) uint16 { return modbusKernel.resume(crc, data) }

// ChecksumKermit returns the CRC-16/KERMIT of data.
func ChecksumKermit(data []byte) uint16 { return kermitKernel.checksum(data) }

// UpdateKermit continues a CRC-16/KERMIT.
func UpdateKermit(crc uint16, data []byte) uint16 { return kermitKernel.resume(crc, data) }

// ChecksumXModem returns the CRC-16/XMODEM of data.
func ChecksumXModem(data []byte) uint16 { return xmodemKernel.checksum(data) }

// UpdateXModem continues a CRC-16/XMODEM.
func UpdateXModem(crc uint16, data []byte) uint16 { return xmodemKernel.resume(crc, data) }

// ChecksumX25 returns the CRC-16/X-25 of data.
func ChecksumX25(data []byte) uint16 { return x25Kernel.checksum(data) }

// UpdateX25 continues a CRC-16/X-25.
func UpdateX25(crc uint16, data []byte) uint16 { return x25Kernel.resume(crc, data) }

// ChecksumCRC32 returns the CRC-32 (IEEE) of data, as hash/crc32.ChecksumIEEE.
func ChecksumCRC32(data []byte) uint32 { return crc32Kernel.checksum(data) }

// UpdateCRC32 continues a CRC-32.
func UpdateCRC32(crc uint32, data []byte) uint32 { return crc32Kernel.resume(crc, data) }

// ChecksumCKSum returns the CRC-32/CKSUM of data, without the length
// suffix cksum(1) appends.
func ChecksumCKSum(data []byte) uint32 { return cksumKernel.checksum(data) }

// UpdateCKSum continues a CRC-32/CKSUM.
func UpdateCKSum(crc uint32, data []byte) uint32 { return cksumKernel.resume(crc, data) }
