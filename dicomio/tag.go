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

import "fmt"

// Tag is a unique identifier for a Data Element composed of an ordered pair of
// numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The most significant 16 bits is the group number. The least significant 16
// bits is the element number. Tags order by their packed 32-bit value, which
// is the ordering the standard defines for data elements within a data set.
type Tag uint32

// NewTag returns the Tag for the given group and element numbers.
func NewTag(group, element uint16) Tag {
	return Tag(uint32(group)<<16 | uint32(element))
}

// Group returns the group number component of the Tag.
func (t Tag) Group() uint16 {
	return uint16(t >> 16)
}

// Element returns the element number component of the Tag.
func (t Tag) Element() uint16 {
	return uint16(t & 0xFFFF)
}

// Compare returns -1, 0, or 1 as t orders before, equal to, or after other.
func (t Tag) Compare(other Tag) int {
	switch {
	case t < other:
		return -1
	case t > other:
		return 1
	}
	return 0
}

// String returns the conventional "(gggg,eeee)" rendering of the Tag.
func (t Tag) String() string {
	return fmt.Sprintf("(%04x,%04x)", t.Group(), t.Element())
}
