package apng

import "log/slog"

// ParseOption configures Parse.
type ParseOption func(*parseConfig)

type parseConfig struct {
	log            *slog.Logger
	strictSequence bool
	verifyCRC      bool
}

// ParseOptLogger sets the logger used for diagnostics. If log is nil,
// slog.Default() is used.
func ParseOptLogger(log *slog.Logger) ParseOption {
	return func(c *parseConfig) {
		c.log = log
	}
}

// ParseOptStrictSequence rejects streams whose fcTL and fdAT sequence
// numbers do not count up from 0 without gaps. By default sequence numbers
// are stripped and only logged when out of order.
func ParseOptStrictSequence() ParseOption {
	return func(c *parseConfig) {
		c.strictSequence = true
	}
}

// ParseOptVerifyChecksums rejects chunks whose stored CRC does not match
// their contents. By default checksums are not verified.
func ParseOptVerifyChecksums() ParseOption {
	return func(c *parseConfig) {
		c.verifyCRC = true
	}
}
