// Copyright 2024 The Carvel Authors.
// SPDX-License-Identifier: Apache-2.0

package cfmt

const (
	spaceIndentPoints = 1
	tabIndentPoints   = 4
	pointsPerLevel    = 4
)

// indentPoints returns the indentation worth of a character,
// or false when the character does not indent.
func indentPoints(ch byte) (int, bool) {
	switch ch {
	case ' ':
		return spaceIndentPoints, true
	case '\t':
		return tabIndentPoints, true
	default:
		return 0, false
	}
}

// leadingIndentChars counts raw indentation characters (not points).
func leadingIndentChars(line string) int {
	for i := 0; i < len(line); i++ {
		if _, ok := indentPoints(line[i]); !ok {
			return i
		}
	}
	return len(line)
}

// indentLevel rounds the line's indentation points down to whole levels.
func indentLevel(line string) int {
	var points int
	for i := 0; i < len(line); i++ {
		val, ok := indentPoints(line[i])
		if !ok {
			break
		}
		points += val
	}
	return points / pointsPerLevel
}

// indentCharsForLevel returns how many leading characters make up the first
// "level" levels of indentation of a line. A character that would push the
// count past the target (eg a tab straddling the boundary) is not included.
func indentCharsForLevel(line string, level int) int {
	target := level * pointsPerLevel
	var points int
	for i := 0; i < len(line); i++ {
		val, ok := indentPoints(line[i])
		if !ok {
			return i
		}
		points += val
		if points > target {
			return i
		}
	}
	return 0
}
