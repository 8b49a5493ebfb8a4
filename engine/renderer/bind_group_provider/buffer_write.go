package bind_group_provider

import (
	"errors"
	"fmt"
)

// ErrNoBuffer is returned for a write to a binding without a buffer.
var ErrNoBuffer = errors.New("no buffer at binding")

// BufferWrite describes a single GPU buffer write operation targeting a specific binding
// on a BindGroupProvider at a given byte offset.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  uint32
	Offset   uint64
	Data     []byte
}

// Validate checks that the write targets an existing buffer, stays inside it
// and keeps the 4-byte alignment queue writes require.
//
// Returns:
//   - error: the first problem found, or nil
func (w BufferWrite) Validate() error {
	if w.Provider == nil || w.Provider.Buffer(w.Binding) == nil {
		return fmt.Errorf("%w %d", ErrNoBuffer, w.Binding)
	}
	if w.Offset%4 != 0 || len(w.Data)%4 != 0 {
		return fmt.Errorf("%s binding %d: offset %d and length %d must be multiples of 4", w.Provider.Label(), w.Binding, w.Offset, len(w.Data))
	}
	if size := w.Provider.BufferSize(w.Binding); w.Offset+uint64(len(w.Data)) > size {
		return fmt.Errorf("%s binding %d: write of %d bytes at %d overflows %d byte buffer", w.Provider.Label(), w.Binding, len(w.Data), w.Offset, size)
	}
	return nil
}
