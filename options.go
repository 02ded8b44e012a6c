package debugger

import "sync/atomic"

var sendBinaries atomic.Bool

// SetSendBinaries sets the process-wide default for emitting binary
// payloads (image bytes, flattened effects, typefaces). It is off initially.
func SetSendBinaries(on bool) {
	sendBinaries.Store(on)
}

// SendBinaries reports the process-wide default set by SetSendBinaries.
func SendBinaries() bool {
	return sendBinaries.Load()
}

// EncodeOption configures a single encode call.
type EncodeOption func(*encodeConfig)

type encodeConfig struct {
	binaries bool
}

// WithBinaries overrides the process-wide binary emission switch.
func WithBinaries(on bool) EncodeOption {
	return func(c *encodeConfig) {
		c.binaries = on
	}
}

func newEncodeConfig(opts []EncodeOption) *encodeConfig {
	cfg := &encodeConfig{binaries: SendBinaries()}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}
