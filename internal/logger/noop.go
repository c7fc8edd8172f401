package logger

// NoOp is a logger that discards all messages. It is used in tests and
// wherever a logger is required but output is unwanted.
type NoOp struct{}

// NewNoOp creates a new no-op logger.
func NewNoOp() Interface {
	return &NoOp{}
}

// Debug implements Interface.
func (l *NoOp) Debug(_ string, _ ...any) {}

// Info implements Interface.
func (l *NoOp) Info(_ string, _ ...any) {}

// Warn implements Interface.
func (l *NoOp) Warn(_ string, _ ...any) {}

// Error implements Interface.
func (l *NoOp) Error(_ string, _ ...any) {}

// Fatal implements Interface.
func (l *NoOp) Fatal(_ string, _ ...any) {}

// With implements Interface.
func (l *NoOp) With(_ ...any) Interface { return l }

// WithComponent implements Interface.
func (l *NoOp) WithComponent(_ string) Interface { return l }

// WithError implements Interface.
func (l *NoOp) WithError(_ error) Interface { return l }
