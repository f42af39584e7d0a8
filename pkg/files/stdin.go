// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"fmt"
	"io"
	"os"
)

// onceReader hands out the contents of src a single time.
type onceReader struct {
	src  io.Reader
	done bool
}

func (r *onceReader) ReadAll() ([]byte, error) {
	if r.done {
		return nil, fmt.Errorf("Standard input has already been read, has '-' been given to -f more than once?")
	}
	r.done = true

	data, err := io.ReadAll(r.src)
	if err != nil {
		return nil, fmt.Errorf("Reading standard input: %s", err)
	}
	return data, nil
}

var stdin = &onceReader{src: os.Stdin}

func ReadStdin() ([]byte, error) { return stdin.ReadAll() }
