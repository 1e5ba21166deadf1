package chunk

// PNG/zlib CRC-32: reflected polynomial 0xEDB88320.
var crcTable [256]uint32

func init() {
	for i := 0; i < 256; i++ {
		crc := uint32(i)
		for j := 0; j < 8; j++ {
			if crc&1 != 0 {
				crc = (crc >> 1) ^ 0xEDB88320
			} else {
				crc >>= 1
			}
		}
		crcTable[i] = crc
	}
}

// Checksum returns the CRC-32 of data as stored in a PNG chunk trailer.
func Checksum(data []byte) uint32 {
	return updateChecksum(0xFFFFFFFF, data) ^ 0xFFFFFFFF
}

func updateChecksum(crc uint32, data []byte) uint32 {
	for _, b := range data {
		crc = (crc >> 8) ^ crcTable[byte(crc)^b]
	}
	return crc
}

// typeChecksum computes the chunk CRC over type followed by data without
// concatenating them.
func typeChecksum(typ, data []byte) uint32 {
	crc := updateChecksum(0xFFFFFFFF, typ)
	return updateChecksum(crc, data) ^ 0xFFFFFFFF
}
