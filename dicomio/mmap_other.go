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

//go:build !linux && !darwin

package dicomio

import (
	"bytes"
	"os"
)

// OpenMapped loads the file at path into memory on platforms without mmap
// support and returns a read-only seekable Stream over it.
func OpenMapped(path string, opts ...StreamOption) (*Stream, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return NewStream(bytes.NewReader(data), append([]StreamOption{WithName(path)}, opts...)...), nil
}
