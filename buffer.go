package guidraw

import "fmt"

// Buffer is a byte region the GUI library writes into.
//
// A dynamic buffer (NewBuffer) grows on demand and is used for the command
// log. A fixed buffer (NewFixedBuffer) wraps memory owned by someone else
// and never writes past its capacity: a write that does not fit fails with
// ErrBufferFull and leaves the buffer unchanged.
type Buffer struct {
	mem   []byte
	fixed bool
}

// NewBuffer creates a growable buffer with the given initial capacity.
func NewBuffer(capacity int) *Buffer {
	return &Buffer{mem: make([]byte, 0, capacity)}
}

// NewFixedBuffer creates a fixed buffer over mem. The capacity is len(mem);
// the caller keeps ownership of the memory and must not touch it while the
// buffer is being written.
func NewFixedBuffer(mem []byte) *Buffer {
	return &Buffer{mem: mem[:0:len(mem)], fixed: true}
}

// Alloc reserves n bytes at the end of the buffer and returns them.
// The returned slice is only valid until the next Reset.
func (b *Buffer) Alloc(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("alloc %d bytes: negative size", n)
	}
	size := len(b.mem)
	if size+n > cap(b.mem) {
		if b.fixed {
			return nil, fmt.Errorf("alloc %d bytes at %d of %d: %w", n, size, cap(b.mem), ErrBufferFull)
		}
		b.grow(n)
	}
	b.mem = b.mem[:size+n]
	return b.mem[size : size+n], nil
}

// Write appends p to the buffer. It implements io.Writer; a fixed buffer
// that cannot hold all of p writes nothing.
func (b *Buffer) Write(p []byte) (int, error) {
	dst, err := b.Alloc(len(p))
	if err != nil {
		return 0, err
	}
	return copy(dst, p), nil
}

func (b *Buffer) grow(n int) {
	newCap := 2*cap(b.mem) + n
	mem := make([]byte, len(b.mem), newCap)
	copy(mem, b.mem)
	b.mem = mem
}

// Reset discards the contents but keeps the memory.
func (b *Buffer) Reset() {
	b.mem = b.mem[:0]
}

// Bytes returns the bytes written since the last Reset.
func (b *Buffer) Bytes() []byte {
	return b.mem
}

// Len returns the number of bytes written since the last Reset.
func (b *Buffer) Len() int {
	return len(b.mem)
}

// Cap returns the capacity in bytes. For a fixed buffer this is the hard
// limit.
func (b *Buffer) Cap() int {
	return cap(b.mem)
}

