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

// WriteBytes writes b to the underlying source. It fails with ErrNotWritable
// when the source does not implement io.Writer; any write error from the
// source propagates unmodified.
func (s *Stream) WriteBytes(b []byte) error {
	if s.dst == nil {
		return ErrNotWritable
	}
	n, err := s.dst.Write(b)
	s.pos += int64(n)
	return err
}

// WriteString writes the bytes of str to the stream.
func (s *Stream) WriteString(str string) error {
	return s.WriteBytes([]byte(str))
}

// WriteUInt16 writes an unsigned 16-bit integer encoded with the active byte
// order.
func (s *Stream) WriteUInt16(v uint16) error {
	order, err := s.byteOrder()
	if err != nil {
		return err
	}
	buf := make([]byte, 2)
	order.PutUint16(buf, v)
	return s.WriteBytes(buf)
}

// WriteUInt32 writes an unsigned 32-bit integer encoded with the active byte
// order.
func (s *Stream) WriteUInt32(v uint32) error {
	order, err := s.byteOrder()
	if err != nil {
		return err
	}
	buf := make([]byte, 4)
	order.PutUint32(buf, v)
	return s.WriteBytes(buf)
}

// WriteTag writes a Tag, group number then element number, with the active
// byte order.
func (s *Stream) WriteTag(t Tag) error {
	if err := s.WriteUInt16(t.Group()); err != nil {
		return err
	}
	return s.WriteUInt16(t.Element())
}
