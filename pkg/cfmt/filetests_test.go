// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/curfmt/curfmt/pkg/cfmt"
)

// TestFiletests runs every file in filetests/. Each file holds a document and
// the expected object dump (or "ERR: " followed by the error) separated by "+++".
func TestFiletests(t *testing.T) {
	var files []string

	err := filepath.Walk("filetests", func(walkedPath string, fi os.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		files = append(files, walkedPath)
		return nil
	})
	if err != nil {
		t.Fatalf("Listing files")
	}

	for _, filePath := range files {
		filePath := filePath

		t.Run(filepath.Base(filePath), func(t *testing.T) {
			contents, err := os.ReadFile(filePath)
			if err != nil {
				t.Fatal(err)
			}

			pieces := strings.SplitN(string(contents), "\n+++\n\n", 2)
			if len(pieces) != 2 {
				t.Fatalf("expected file %s to include +++ separator", filePath)
			}

			assertEqual(t, evalDocument(pieces[0]), pieces[1])
		})
	}
}

func evalDocument(data string) string {
	obj, err := cfmt.ParseBytes([]byte(data), "stdin")
	if err != nil {
		return fmt.Sprintf("ERR: %s\n", err)
	}
	return cfmt.NewPrinter(nil).PrintStr(obj)
}
