// Package chunk implements the PNG chunk layer: the CRC-32 used in every
// chunk trailer, the length|type|data|crc framing codec, a forward-only
// chunk stream reader over an in-memory buffer, and the IHDR header codec.
//
// The package does not interpret chunk payloads beyond IHDR; grouping
// chunks into animation frames lives in [github.com/zsiec/apng/apng].
package chunk
