// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package files

import (
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/require"
)

func TestOnceReaderOnlyReadsOnce(t *testing.T) {
	r := &onceReader{src: strings.NewReader("Title: A\n")}

	data, err := r.ReadAll()
	require.NoError(t, err)
	require.Equal(t, "Title: A\n", string(data))

	_, err = r.ReadAll()
	require.EqualError(t, err, "Standard input has already been read, has '-' been given to -f more than once?")
}

func TestOnceReaderWrapsReadErrors(t *testing.T) {
	r := &onceReader{src: iotest.ErrReader(iotest.ErrTimeout)}

	_, err := r.ReadAll()
	require.EqualError(t, err, "Reading standard input: timeout")
}

func TestIsWithinDir(t *testing.T) {
	root := filepath.FromSlash("/curations")

	exs := []struct {
		Path     string
		Expected bool
	}{
		{"/curations", true},
		{"/curations/game/meta.txt", true},
		{"/curations/..hidden/meta.txt", true},
		{"/curations-old/meta.txt", false},
		{"/other/meta.txt", false},
		{"/", false},
	}

	for _, ex := range exs {
		require.Equal(t, ex.Expected, isWithinDir(filepath.FromSlash(ex.Path), root), ex.Path)
	}
}
