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

//go:build linux || darwin

package dicomio

import (
	"bytes"
	"os"

	"golang.org/x/sys/unix"
)

// OpenMapped opens the file at path for reading through a read-only memory
// mapping, which avoids read syscalls while seeking back and forth over large
// files. Closing the Stream unmaps the file and closes the descriptor. The
// returned Stream is not writable.
func OpenMapped(path string, opts ...StreamOption) (*Stream, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	st, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	size := st.Size()
	if size == 0 {
		// An empty file cannot be mapped; serve reads from the descriptor.
		return NewStream(f, opts...), nil
	}

	data, err := unix.Mmap(int(f.Fd()), 0, int(size), unix.PROT_READ, unix.MAP_PRIVATE)
	if err != nil {
		f.Close()
		return nil, err
	}

	s := NewStream(bytes.NewReader(data), append([]StreamOption{WithName(path)}, opts...)...)
	s.closeFn = func() error {
		merr := unix.Munmap(data)
		cerr := f.Close()
		if merr != nil {
			return merr
		}
		return cerr
	}
	return s, nil
}
