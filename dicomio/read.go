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
)

// ReadBytes returns exactly n bytes from the stream.
//
// A short return from the source is retried, each retry requesting only the
// remaining shortfall, up to the configured attempt bound. If the bytes are
// still short after all retries, the *EndOfStreamError reports how many bytes
// were obtained, how many were expected and the offset the read started at.
// Truncated data is always reported, never padded.
//
// When the very first read yields no bytes at all, the source is at its end
// and ReadBytes returns io.EOF unchanged with no retries. Tag scanning loops
// rely on this signal to detect "no more elements"; the underlying source must
// therefore only return zero bytes at true end-of-data.
//
// n == 0 returns an empty slice without touching the source. Any error other
// than io.EOF from the source propagates unmodified.
func (s *Stream) ReadBytes(n int) ([]byte, error) {
	if n < 0 {
		return nil, fmt.Errorf("dicomio: negative read length: %d", n)
	}
	if n == 0 {
		return []byte{}, nil
	}

	buf := make([]byte, n)
	got, err := s.src.Read(buf)
	s.pos += int64(got)
	if err != nil && err != io.EOF {
		return nil, err
	}
	if got == 0 {
		return nil, io.EOF
	}

	for attempts := 0; got < n && attempts < s.maxReadAttempts; attempts++ {
		s.logger.Debug("short read, requesting shortfall",
			"want", n, "got", got, "attempt", attempts+1, "name", s.name)
		m, err := s.src.Read(buf[got:])
		got += m
		s.pos += int64(m)
		if err != nil && err != io.EOF {
			return nil, err
		}
	}

	if got < n {
		return nil, &EndOfStreamError{
			BytesRead:     got,
			BytesExpected: n,
			Offset:        s.pos - int64(got),
		}
	}
	return buf, nil
}

// ReadAll returns all bytes remaining in the stream.
func (s *Stream) ReadAll() ([]byte, error) {
	b, err := io.ReadAll(s.src)
	s.pos += int64(len(b))
	return b, err
}

// ReadString returns a string of length n from the stream, with ReadBytes
// exact-length semantics.
func (s *Stream) ReadString(n int) (string, error) {
	b, err := s.ReadBytes(n)
	return string(b), err
}

// Skip advances the stream by n bytes. It returns io.EOF when the stream ends
// before n bytes were skipped.
func (s *Stream) Skip(n int64) error {
	m, err := io.CopyN(io.Discard, s.src, n)
	s.pos += m
	return err
}

// byteOrder returns the active byte order. The order is resolved here, on
// every call, rather than bound at construction: a stream may switch transfer
// syntax mid-parse.
func (s *Stream) byteOrder() (binary.ByteOrder, error) {
	if s.order == nil {
		return nil, ErrByteOrderUnset
	}
	return s.order, nil
}

// ReadUInt16 returns an unsigned 16-bit integer decoded with the active byte
// order. io.EOF from a stream positioned at its end propagates unchanged; it
// is the primitive tag scanners watch for.
func (s *Stream) ReadUInt16() (uint16, error) {
	order, err := s.byteOrder()
	if err != nil {
		return 0, err
	}
	b, err := s.ReadBytes(2)
	if err != nil {
		return 0, err
	}
	return order.Uint16(b), nil
}

// ReadUInt32 returns an unsigned 32-bit integer decoded with the active byte
// order.
func (s *Stream) ReadUInt32() (uint32, error) {
	order, err := s.byteOrder()
	if err != nil {
		return 0, err
	}
	b, err := s.ReadBytes(4)
	if err != nil {
		return 0, err
	}
	return order.Uint32(b), nil
}

// ReadTag reads a Tag, group number then element number, with the active byte
// order. io.EOF at the start of the tag propagates unchanged so that callers
// scanning a sequence of elements detect completion; a tag is never returned
// partially populated.
func (s *Stream) ReadTag() (Tag, error) {
	group, err := s.ReadUInt16()
	if err != nil {
		return 0, err
	}
	element, err := s.ReadUInt16()
	if err != nil {
		return 0, err
	}
	return NewTag(group, element), nil
}
