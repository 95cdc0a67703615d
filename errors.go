package uiraster

import "errors"

var (
	// ErrMemoryTooSmall is returned by New when the memory block cannot hold
	// the context header.
	ErrMemoryTooSmall = errors.New("uiraster: memory block too small")

	// ErrOutOfCapacity is returned by Export while the surface needs more
	// tiles than the memory block provides.
	ErrOutOfCapacity = errors.New("uiraster: surface exceeds tile capacity")

	// ErrBufferTooSmall is returned by Export when the destination cannot
	// hold the surface at the given stride.
	ErrBufferTooSmall = errors.New("uiraster: destination buffer too small")

	// ErrInvalidFormat is returned by Export for an unknown pixel format.
	ErrInvalidFormat = errors.New("uiraster: invalid pixel format")
)

// ErrorFlags is a sticky set of error conditions recorded on a Context.
// Flags stay set until ClearErrors is called.
type ErrorFlags uint32

const (
	// ErrorOutOfCapacity is set when a resize or draw found the surface
	// needing more tiles than the memory block provides.
	ErrorOutOfCapacity ErrorFlags = 1 << iota
)

// Has reports whether all flags in f2 are set.
func (f ErrorFlags) Has(f2 ErrorFlags) bool {
	return f&f2 == f2
}

// String returns a readable list of the set flags.
func (f ErrorFlags) String() string {
	if f == 0 {
		return "none"
	}
	if f == ErrorOutOfCapacity {
		return "OutOfCapacity"
	}
	return "Unknown"
}
