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
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chunkReader returns at most chunk bytes per Read call, simulating a source
// that delivers data in small pieces.
type chunkReader struct {
	data  []byte
	chunk int
	calls int
}

func (r *chunkReader) Read(p []byte) (int, error) {
	r.calls++
	if len(r.data) == 0 {
		return 0, io.EOF
	}
	n := r.chunk
	if n > len(p) {
		n = len(p)
	}
	if n > len(r.data) {
		n = len(r.data)
	}
	copy(p, r.data[:n])
	r.data = r.data[n:]
	return n, nil
}

// zeroReader yields no bytes and no error, the shape of a badly behaved
// transport.
type zeroReader struct {
	calls int
}

func (r *zeroReader) Read(p []byte) (int, error) {
	r.calls++
	return 0, nil
}

type failReader struct {
	err error
}

func (r failReader) Read(p []byte) (int, error) {
	return 0, r.err
}

func leStream(data []byte) *Stream {
	s := NewStream(bytes.NewReader(data))
	s.SetLittleEndian(true)
	return s
}

func beStream(data []byte) *Stream {
	s := NewStream(bytes.NewReader(data))
	s.SetBigEndian(true)
	return s
}

func TestReadBytes(t *testing.T) {
	s := NewStream(bytes.NewReader([]byte{0x01, 0x02, 0x03, 0x04}))

	got, err := s.ReadBytes(3)
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x02, 0x03}, got)
	assert.Equal(t, int64(3), s.Tell())
}

func TestReadBytesZeroLength(t *testing.T) {
	zr := &zeroReader{}
	s := NewStream(zr)

	got, err := s.ReadBytes(0)
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Equal(t, 0, zr.calls, "zero-length read must not touch the source")
}

func TestReadBytesChunkedSource(t *testing.T) {
	// With the default 3 retries after the initial read, a source yielding
	// 1 byte per call can satisfy up to 4 bytes.
	s := NewStream(&chunkReader{data: []byte{1, 2, 3, 4}, chunk: 1})
	got, err := s.ReadBytes(4)
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3, 4}, got)

	// 5 bytes is out of reach: 4 bytes accumulate before retries run out.
	s = NewStream(&chunkReader{data: []byte{1, 2, 3, 4, 5}, chunk: 1})
	_, err = s.ReadBytes(5)

	var eos *EndOfStreamError
	require.ErrorAs(t, err, &eos)
	assert.Equal(t, 4, eos.BytesRead)
	assert.Equal(t, 5, eos.BytesExpected)
	assert.Equal(t, int64(0), eos.Offset)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadBytesMoreAttempts(t *testing.T) {
	s := NewStream(&chunkReader{data: []byte{1, 2, 3, 4, 5, 6, 7, 8}, chunk: 1},
		WithMaxReadAttempts(7))
	got, err := s.ReadBytes(8)
	require.NoError(t, err)
	assert.Len(t, got, 8)

	// Zero disables retries: the initial short read is final.
	s = NewStream(&chunkReader{data: []byte{1, 2}, chunk: 1}, WithMaxReadAttempts(0))
	_, err = s.ReadBytes(2)
	var eos *EndOfStreamError
	require.ErrorAs(t, err, &eos)
	assert.Equal(t, 1, eos.BytesRead)
}

func TestReadBytesZeroYieldingSource(t *testing.T) {
	// A first read with no bytes at all is the end-of-stream signal and is
	// never retried.
	zr := &zeroReader{}
	s := NewStream(zr)

	_, err := s.ReadBytes(4)
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 1, zr.calls)
}

func TestReadBytesTruncated(t *testing.T) {
	s := NewStream(bytes.NewReader([]byte{0xAA, 0xBB, 0xCC, 0xDD}))

	_, err := s.ReadBytes(2)
	require.NoError(t, err)

	_, err = s.ReadBytes(8)
	var eos *EndOfStreamError
	require.ErrorAs(t, err, &eos)
	assert.Equal(t, 2, eos.BytesRead)
	assert.Equal(t, 8, eos.BytesExpected)
	assert.Equal(t, int64(2), eos.Offset)
	assert.Contains(t, eos.Error(), "read 2 bytes of 8 expected starting at offset 0x2")
}

func TestReadBytesUnderlyingError(t *testing.T) {
	sourceErr := errors.New("device unplugged")
	s := NewStream(failReader{err: sourceErr})

	_, err := s.ReadBytes(4)
	assert.Equal(t, sourceErr, err, "underlying failures must propagate unmodified")
}

func TestReadUInt16(t *testing.T) {
	testCases := []struct {
		name   string
		stream *Stream
		want   uint16
	}{
		{"little endian", leStream([]byte{0x34, 0x12}), 0x1234},
		{"big endian", beStream([]byte{0x34, 0x12}), 0x3412},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.stream.ReadUInt16()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadUInt32(t *testing.T) {
	testCases := []struct {
		name   string
		stream *Stream
		want   uint32
	}{
		{"little endian", leStream([]byte{0x78, 0x56, 0x34, 0x12}), 0x12345678},
		{"big endian", beStream([]byte{0x78, 0x56, 0x34, 0x12}), 0x78563412},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.stream.ReadUInt32()
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestReadBeforeByteOrderSet(t *testing.T) {
	s := NewStream(bytes.NewReader([]byte{1, 2, 3, 4}))

	_, err := s.ReadUInt16()
	assert.ErrorIs(t, err, ErrByteOrderUnset)
	_, err = s.ReadUInt32()
	assert.ErrorIs(t, err, ErrByteOrderUnset)
	_, err = s.ReadTag()
	assert.ErrorIs(t, err, ErrByteOrderUnset)
}

func TestReadUInt16AtEndOfStream(t *testing.T) {
	s := leStream(nil)
	_, err := s.ReadUInt16()
	assert.Equal(t, io.EOF, err, "the scan-termination signal must pass through unchanged")
}

func TestReadTag(t *testing.T) {
	raw := []byte{0x01, 0x00, 0x02, 0x00}

	tag, err := leStream(raw).ReadTag()
	require.NoError(t, err)
	assert.Equal(t, NewTag(1, 2), tag)

	tag, err = beStream(raw).ReadTag()
	require.NoError(t, err)
	assert.Equal(t, NewTag(0x0100, 0x0200), tag)
}

func TestReadTagAtEndOfStream(t *testing.T) {
	tag, err := leStream(nil).ReadTag()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, Tag(0), tag, "no partially populated tag")
}

func TestReadTagScanLoop(t *testing.T) {
	// Two tags back to back, then a clean end of stream.
	s := leStream([]byte{
		0x02, 0x00, 0x10, 0x00,
		0xE0, 0x7F, 0x10, 0x00,
	})

	var tags []Tag
	for {
		tag, err := s.ReadTag()
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		tags = append(tags, tag)
	}
	assert.Equal(t, []Tag{NewTag(0x0002, 0x0010), NewTag(0x7FE0, 0x0010)}, tags)
}

func TestReadAll(t *testing.T) {
	s := NewStream(bytes.NewReader([]byte{1, 2, 3, 4, 5}))

	_, err := s.ReadBytes(2)
	require.NoError(t, err)

	rest, err := s.ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []byte{3, 4, 5}, rest)
	assert.Equal(t, int64(5), s.Tell())
}

func TestReadString(t *testing.T) {
	s := NewStream(bytes.NewReader([]byte("DICM rest")))

	magic, err := s.ReadString(4)
	require.NoError(t, err)
	assert.Equal(t, "DICM", magic)
}

func TestSkip(t *testing.T) {
	s := NewStream(bytes.NewReader(make([]byte, 132)))

	require.NoError(t, s.Skip(128))
	assert.Equal(t, int64(128), s.Tell())

	err := s.Skip(128)
	assert.Equal(t, io.EOF, err)
}

func TestRoundTripUInt16(t *testing.T) {
	for _, littleEndian := range []bool{true, false} {
		s := NewMemStream(nil)
		s.SetLittleEndian(littleEndian)

		for v := 0; v <= 0xFFFF; v++ {
			require.NoError(t, s.WriteUInt16(uint16(v)))
		}
		_, err := s.Seek(0, io.SeekStart)
		require.NoError(t, err)

		for v := 0; v <= 0xFFFF; v++ {
			got, err := s.ReadUInt16()
			require.NoError(t, err)
			require.Equal(t, uint16(v), got)
		}
	}
}

func TestRoundTripUInt32(t *testing.T) {
	values := []uint32{0, 1, 0xFF, 0x1234, 0xFFFF, 0x10000, 0xDEADBEEF, 0x7FFFFFFF, 0x80000000, 0xFFFFFFFF}

	for _, littleEndian := range []bool{true, false} {
		s := NewMemStream(nil)
		s.SetLittleEndian(littleEndian)

		for _, v := range values {
			require.NoError(t, s.WriteUInt32(v))
		}
		_, err := s.Seek(0, io.SeekStart)
		require.NoError(t, err)

		for _, v := range values {
			got, err := s.ReadUInt32()
			require.NoError(t, err)
			require.Equal(t, v, got)
		}
	}
}

func TestModeSwitchMidStream(t *testing.T) {
	// A nested data set may carry a different encoding; the active order is
	// resolved per call.
	s := NewMemStream([]byte{
		0x34, 0x12, // little endian 0x1234
		0x12, 0x34, // big endian 0x1234
	})

	s.SetLittleEndian(true)
	got, err := s.ReadUInt16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), got)

	s.SetBigEndian(true)
	got, err = s.ReadUInt16()
	require.NoError(t, err)
	assert.Equal(t, uint16(0x1234), got)
}
