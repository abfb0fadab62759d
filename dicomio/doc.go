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

// Package dicomio provides the byte-level I/O layer beneath a DICOM parser as
// specified in [http://dicom.nema.org/medical/dicom/current/output/pdf/part05.pdf].
//
// The package owns exactly four concerns: exact-length reads over a possibly
// short-returning byte source, little- and big-endian encoding of the
// fixed-width integers used by the file format, the transfer syntax mode pair
// (byte order and VR explicitness) that a parser switches mid-stream, and the
// (group, element) Tag primitive used as the data element key.
//
// A Stream is created over any io.Reader and discovers optional capabilities
// (writing, seeking, closing) from the value it is given. The transfer syntax
// negotiator sets the byte order and VR mode on the Stream before the parser
// requests multi-byte primitives; the active byte order is resolved on every
// call, because a single stream may switch encodings at a nested data set.
//
// Parsing of the element stream itself, VR-specific value decoding, sequences,
// compression and file meta-header interpretation are the responsibility of
// callers built on top of this package.
package dicomio
