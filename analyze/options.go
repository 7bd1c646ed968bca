package analyze

// DummyFrameSize is the number of Any-typed cells seeded before analyzing
// _global or main: an over-approximation of whatever the runtime arranges
// on the stack before either entry point runs.
const DummyFrameSize = 32

// Options tunes the driver. In the zero value a DummyFrameSize of 0 falls
// back to the 32-cell default and a nil Logger to a no-op logger, but
// StrictActionArity is off; DefaultOptions turns it on.
type Options struct {
	// DummyFrameSize overrides the number of Any cells seeded before entry.
	DummyFrameSize int

	// Logger receives diagnostic messages as the driver walks the CFG. It
	// defaults to a no-op logger.
	Logger Logger

	// StrictActionArity rejects an ACTION call whose nArgs exceeds the
	// callee's declared parameter count. Turning it off widens the
	// undeclared trailing arguments to Any instead of failing, which is
	// useful when reverse engineering against a function table that hasn't
	// been fully filled in yet.
	StrictActionArity bool
}

// DefaultOptions returns the analyzer's default configuration: the standard
// 32-cell dummy frame, a no-op logger, and strict ACTION arity checking.
func DefaultOptions() Options {
	return Options{
		DummyFrameSize:    DummyFrameSize,
		Logger:            NewNoopLogger(),
		StrictActionArity: true,
	}
}
