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
	"errors"
	"fmt"
	"io"
)

// ErrByteOrderUnset is returned by multi-byte primitives invoked before the
// transfer syntax negotiator has called SetLittleEndian or SetBigEndian.
var ErrByteOrderUnset = errors.New("dicomio: byte order not set")

// ErrNotWritable is returned by write operations when the underlying source
// does not implement io.Writer.
var ErrNotWritable = errors.New("dicomio: underlying source is not writable")

// ErrNotSeekable is returned by Seek when the underlying source does not
// implement io.Seeker.
var ErrNotSeekable = errors.New("dicomio: underlying source is not seekable")

// EndOfStreamError reports that an exact-length read obtained fewer bytes than
// required after all retries. Offset is the stream position at which the
// failed read started.
//
// EndOfStreamError unwraps to io.EOF, so errors.Is(err, io.EOF) matches both a
// truncated stream and the bare io.EOF returned when the source is exhausted
// before the first byte. The layer does not distinguish a truncated file from
// the normal end of a tag sequence; callers infer intent from context.
type EndOfStreamError struct {
	BytesRead     int
	BytesExpected int
	Offset        int64
}

func (e *EndOfStreamError) Error() string {
	return fmt.Sprintf("dicomio: unexpected end of stream: read %d bytes of %d expected starting at offset 0x%x",
		e.BytesRead, e.BytesExpected, e.Offset)
}

func (e *EndOfStreamError) Unwrap() error {
	return io.EOF
}
