// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package e2e

import (
	"bytes"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const curfmtPath = "../../curfmt"

func TestFmtMetaMatchesResults(t *testing.T) {
	for _, name := range []string{"legacy/meta.txt", "yaml/meta.yaml"} {
		t.Run(name, func(t *testing.T) {
			input := filepath.Join("../../examples/curations", name)

			actualOutput := runCurfmt(t, "fmt", testInputFiles{input}, "", curfmtFlags{{"--meta": ""}})

			expectedOutput, err := os.ReadFile(filepath.Join(filepath.Dir(input), "meta-result.txt"))
			require.NoError(t, err)
			require.Equal(t, string(expectedOutput), actualOutput)
		})
	}
}

func TestFormattedResultsAreStable(t *testing.T) {
	for _, name := range []string{"legacy/meta-result.txt", "yaml/meta-result.txt"} {
		input := filepath.Join("../../examples/curations", name)

		expectedOutput, err := os.ReadFile(input)
		require.NoError(t, err)

		require.Equal(t, string(expectedOutput), runCurfmt(t, "fmt", testInputFiles{input}, "", nil))
		require.Equal(t, string(expectedOutput), runCurfmt(t, "fmt", testInputFiles{input}, "", curfmtFlags{{"--meta": ""}}))
	}
}

func TestCheckStdInReading(t *testing.T) {
	actualOutput := runCurfmt(t, "parse", testInputFiles{"-"}, "../../examples/curations/legacy/meta.txt", curfmtFlags{{"-o": "json"}})

	require.True(t, strings.HasPrefix(actualOutput, "{\n"), actualOutput)
	require.Contains(t, actualOutput, `"Title": "Legacy Game"`)
	require.Contains(t, actualOutput, `"Launch Command": "manual.html"`)
}

func TestCheckDirectoryReading(t *testing.T) {
	tempOutputDir := filepath.Join(t.TempDir(), "out")

	runCurfmt(t, "fmt", testInputFiles{"../../examples/curations"}, "",
		curfmtFlags{{"-R": ""}, {"--meta": ""}, {"--output-files": tempOutputDir}})

	for _, name := range []string{"legacy/meta.txt", "yaml/meta.txt"} {
		actualOutput, err := os.ReadFile(filepath.Join(tempOutputDir, name))
		require.NoError(t, err)

		expectedOutput, err := os.ReadFile(filepath.Join("../../examples/curations", filepath.Dir(name), "meta-result.txt"))
		require.NoError(t, err)
		require.Equal(t, string(expectedOutput), string(actualOutput))
	}
}

func TestVersion(t *testing.T) {
	output := runCurfmt(t, "version", nil, "", nil)
	require.True(t, strings.HasPrefix(output, "curfmt version "), output)
}

type testInputFiles []string

type curfmtFlags []map[string]string

func runCurfmt(t *testing.T, subcmd string, files testInputFiles, stdinFileName string, flags curfmtFlags) string {
	if _, err := os.Stat(curfmtPath); err != nil {
		t.Skipf("Expected curfmt binary at '%s' (build it first): %s", curfmtPath, err)
	}

	args := []string{subcmd}
	for _, file := range files {
		args = append(args, "-f", file)
	}

	for _, flagElement := range flags {
		for flagName, flagVal := range flagElement {
			if flagVal != "" {
				args = append(args, flagName, flagVal)
			} else {
				args = append(args, flagName)
			}
		}
	}

	command := exec.Command(curfmtPath, args...)
	stdError := bytes.NewBufferString("")
	command.Stderr = stdError

	if stdinFileName != "" {
		fileToUseInStdIn, err := os.Open(stdinFileName)
		require.NoError(t, err)
		defer fileToUseInStdIn.Close()
		command.Stdin = fileToUseInStdIn
	}

	output, err := command.Output()
	require.NoError(t, err, stdError.String())

	return string(output)
}
