package apng

import "github.com/zsiec/apng/internal/chunk"

// IsAPNG reports whether data is a PNG stream with an acTL chunk ahead of
// its first IDAT. Plain PNGs and anything that fails to frame return false.
func IsAPNG(data []byte) bool {
	r, err := chunk.NewReader(data)
	if err != nil {
		return false
	}
	for {
		c, err := r.Next()
		if err != nil {
			return false
		}
		switch c.Type {
		case chunk.TypeACTL:
			return true
		case chunk.TypeIDAT, chunk.TypeIEND:
			return false
		}
	}
}

