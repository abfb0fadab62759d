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

import "encoding/binary"

// Canonical transfer syntax UIDs, from
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_A.
// The negotiator that reads the file meta header maps a UID to the byte order
// and VR mode it sets on the Stream; that mapping lives outside this package.
const (
	// ImplicitVRLittleEndianUID is the Implicit VR Little Endian UID
	ImplicitVRLittleEndianUID = "1.2.840.10008.1.2"
	// ExplicitVRLittleEndianUID is the Explicit VR Little Endian UID
	ExplicitVRLittleEndianUID = "1.2.840.10008.1.2.1"
	// ExplicitVRBigEndianUID is the Explicit VR Big Endian UID
	ExplicitVRBigEndianUID = "1.2.840.10008.1.2.2"
)

// IsLittleEndian reports whether the stream decodes multi-byte values least
// significant byte first. Both IsLittleEndian and IsBigEndian report false
// until the byte order has been set.
func (s *Stream) IsLittleEndian() bool {
	return s.order == binary.ByteOrder(binary.LittleEndian)
}

// IsBigEndian reports whether the stream decodes multi-byte values most
// significant byte first.
func (s *Stream) IsBigEndian() bool {
	return s.order == binary.ByteOrder(binary.BigEndian)
}

// SetLittleEndian sets the byte order to little endian when v is true and to
// big endian otherwise. Exactly one of the two orders is active afterwards;
// the new order applies to every subsequent multi-byte read and write.
func (s *Stream) SetLittleEndian(v bool) {
	if v {
		s.order = binary.LittleEndian
	} else {
		s.order = binary.BigEndian
	}
}

// SetBigEndian sets the byte order to big endian when v is true and to little
// endian otherwise.
func (s *Stream) SetBigEndian(v bool) {
	s.SetLittleEndian(!v)
}

// IsImplicitVR reports whether element value representations are resolved from
// the data dictionary rather than read from the stream. New streams start
// implicit.
func (s *Stream) IsImplicitVR() bool {
	return s.implicitVR
}

// IsExplicitVR reports whether element value representations are present in
// the stream.
func (s *Stream) IsExplicitVR() bool {
	return !s.implicitVR
}

// SetImplicitVR sets the VR mode to implicit when v is true and to explicit
// otherwise.
func (s *Stream) SetImplicitVR(v bool) {
	s.implicitVR = v
}

// SetExplicitVR sets the VR mode to explicit when v is true and to implicit
// otherwise.
func (s *Stream) SetExplicitVR(v bool) {
	s.implicitVR = !v
}
