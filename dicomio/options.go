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

import "log/slog"

// StreamOption configures a Stream at construction. All configuration is
// explicit; the package keeps no ambient state.
type StreamOption func(*Stream)

// WithMaxReadAttempts sets how many additional reads an exact-length read may
// issue when the source returns fewer bytes than requested. The default is 3.
// Zero disables retries entirely; negative values are ignored.
func WithMaxReadAttempts(n int) StreamOption {
	return func(s *Stream) {
		if n >= 0 {
			s.maxReadAttempts = n
		}
	}
}

// WithLogger sets the logger used for read retry diagnostics. The default
// discards all output.
func WithLogger(l *slog.Logger) StreamOption {
	return func(s *Stream) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithName sets the diagnostic name of the Stream, overriding any name
// discovered from the underlying source.
func WithName(name string) StreamOption {
	return func(s *Stream) {
		s.name = name
	}
}
