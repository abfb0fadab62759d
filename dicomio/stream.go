// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dicomio

import (
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// defaultMaxReadAttempts is the number of additional reads issued when the
// source returns fewer bytes than requested.
const defaultMaxReadAttempts = 3

// Stream is a DICOM byte stream over an underlying source. It provides
// exact-length reads, byte-order-aware integer primitives and Tag I/O, and it
// carries the transfer syntax state (byte order, VR explicitness) that selects
// how multi-byte values are coded.
//
// The source is any io.Reader. Writing, seeking, closing and a diagnostic name
// are discovered from the optional interfaces io.Writer, io.Seeker, io.Closer
// and Name() string on the same value.
//
// A Stream is owned by a single parsing or writing session. It performs no
// internal locking; concurrent use must be serialized by the caller. There is
// no timeout beyond the fixed read retry bound: bounding a slow source is the
// caller's responsibility before the source is handed to this layer.
type Stream struct {
	src  io.Reader
	dst  io.Writer // nil when the source is read-only
	pos  int64
	name string

	// order is nil until the transfer syntax negotiator calls SetLittleEndian
	// or SetBigEndian. It is consulted on every multi-byte primitive, so a
	// mid-stream syntax switch takes effect immediately.
	order      binary.ByteOrder
	implicitVR bool

	maxReadAttempts int
	logger          *slog.Logger

	closed  bool
	closeFn func() error // set by constructors that own extra resources
}

// NewStream returns a Stream reading from src. The byte order starts unset and
// the VR mode starts implicit; the transfer syntax negotiator must set the
// byte order before any multi-byte primitive is used.
func NewStream(src io.Reader, opts ...StreamOption) *Stream {
	s := &Stream{
		src:             src,
		implicitVR:      true,
		maxReadAttempts: defaultMaxReadAttempts,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	if w, ok := src.(io.Writer); ok {
		s.dst = w
	}
	if n, ok := src.(interface{ Name() string }); ok {
		s.name = n.Name()
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// OpenFile opens the file at path for reading and returns a Stream over it.
// Closing the Stream closes the file.
func OpenFile(path string, opts ...StreamOption) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return NewStream(f, opts...), nil
}

// NewMemStream returns a read-write Stream over an in-memory copy of data.
// Writes past the end grow the buffer.
func NewMemStream(data []byte, opts ...StreamOption) *Stream {
	buf := make([]byte, len(data))
	copy(buf, data)
	return NewStream(&memSource{data: buf}, opts...)
}

// Name returns the diagnostic name of the underlying source, usually a file
// path. It is empty when the source has none.
func (s *Stream) Name() string {
	return s.name
}

// Tell returns the current stream position. The position is maintained by
// counting bytes through the Stream, so Tell works on non-seekable sources.
func (s *Stream) Tell() int64 {
	return s.pos
}

// Seek sets the stream position per io.Seeker semantics and returns the new
// position. It fails with ErrNotSeekable when the source cannot seek.
func (s *Stream) Seek(offset int64, whence int) (int64, error) {
	sk, ok := s.src.(io.Seeker)
	if !ok {
		return 0, ErrNotSeekable
	}
	n, err := sk.Seek(offset, whence)
	if err != nil {
		return n, err
	}
	s.pos = n
	return n, nil
}

// Close releases the underlying resource. It is idempotent: the resource is
// closed exactly once and subsequent calls return nil.
func (s *Stream) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	if s.closeFn != nil {
		return s.closeFn()
	}
	if c, ok := s.src.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

// memSource is a growable in-memory byte store with file-like read, write and
// seek semantics, backing NewMemStream.
type memSource struct {
	data []byte
	off  int64
}

func (m *memSource) Read(p []byte) (int, error) {
	if m.off >= int64(len(m.data)) {
		return 0, io.EOF
	}
	n := copy(p, m.data[m.off:])
	m.off += int64(n)
	return n, nil
}

func (m *memSource) Write(p []byte) (int, error) {
	if end := m.off + int64(len(p)); end > int64(len(m.data)) {
		grown := make([]byte, end)
		copy(grown, m.data)
		m.data = grown
	}
	n := copy(m.data[m.off:], p)
	m.off += int64(n)
	return n, nil
}

func (m *memSource) Seek(offset int64, whence int) (int64, error) {
	var base int64
	switch whence {
	case io.SeekStart:
		base = 0
	case io.SeekCurrent:
		base = m.off
	case io.SeekEnd:
		base = int64(len(m.data))
	default:
		return 0, fmt.Errorf("dicomio: invalid seek whence: %d", whence)
	}
	if base+offset < 0 {
		return 0, fmt.Errorf("dicomio: negative seek position: %d", base+offset)
	}
	m.off = base + offset
	return m.off, nil
}
