// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Low level byte/rune classification helpers shared by the reader,
// scanner, and emitter. Indexing is always in bytes; multi-byte UTF-8
// sequences are recognized by their leading byte and skipped over
// using width.

package libyaml

// width returns the number of bytes occupied by the UTF-8 character
// whose leading byte is b, or 0 if b cannot start a valid sequence.
func width(b byte) int {
	if b&0x80 == 0x00 {
		return 1
	}
	if b&0xE0 == 0xC0 {
		return 2
	}
	if b&0xF0 == 0xE0 {
		return 3
	}
	if b&0xF8 == 0xF0 {
		return 4
	}
	return 0
}

func isAlpha(b []byte, i int) bool {
	return b[i] == '_' || b[i] == '-' ||
		b[i] >= '0' && b[i] <= '9' ||
		b[i] >= 'A' && b[i] <= 'Z' ||
		b[i] >= 'a' && b[i] <= 'z'
}

func isDigit(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9'
}

func asDigit(b []byte, i int) int {
	return int(b[i]) - '0'
}

func isHex(b []byte, i int) bool {
	return b[i] >= '0' && b[i] <= '9' ||
		b[i] >= 'A' && b[i] <= 'F' ||
		b[i] >= 'a' && b[i] <= 'f'
}

func asHex(b []byte, i int) int {
	bi := b[i]
	if bi >= 'A' && bi <= 'F' {
		return int(bi) - 'A' + 10
	}
	if bi >= 'a' && bi <= 'f' {
		return int(bi) - 'a' + 10
	}
	return int(bi) - '0'
}

func isASCII(b []byte, i int) bool {
	return b[i] <= 0x7F
}

func isPrintable(b []byte, i int) bool {
	return ((b[i] == 0x0A) || // . == #x0A
		(b[i] >= 0x20 && b[i] <= 0x7E) || // #x20 <= . <= #x7E
		(b[i] == 0xC2 && b[i+1] >= 0xA0) || // #0xA0 <= . <= #xD7FF
		(b[i] > 0xC2 && b[i] < 0xED) ||
		(b[i] == 0xED && b[i+1] < 0xA0) ||
		(b[i] == 0xEE) ||
		(b[i] == 0xEF && // #xE000 <= . <= #xFFFD
			!(b[i+1] == 0xBB && b[i+2] == 0xBF) && // && . != #xFEFF
			!(b[i+1] == 0xBF && (b[i+2] == 0xBE || b[i+2] == 0xBF))))
}

func isZ(b []byte, i int) bool {
	return b[i] == 0x00
}

func isBOM(b []byte, i int) bool {
	return b[i] == 0xEF && b[i+1] == 0xBB && b[i+2] == 0xBF
}

func isSpace(b []byte, i int) bool {
	return b[i] == ' '
}

func isTab(b []byte, i int) bool {
	return b[i] == '\t'
}

func isBlank(b []byte, i int) bool {
	return isSpace(b, i) || isTab(b, i)
}

func isBreak(b []byte, i int) bool {
	return (b[i] == '\r' || // CR (#xD)
		b[i] == '\n' || // LF (#xA)
		b[i] == 0xC2 && b[i+1] == 0x85 || // NEL (#x85)
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA8 || // LS (#x2028)
		b[i] == 0xE2 && b[i+1] == 0x80 && b[i+2] == 0xA9) // PS (#x2029)
}

func isCRLF(b []byte, i int) bool {
	return b[i] == '\r' && b[i+1] == '\n'
}

func isBreakz(b []byte, i int) bool {
	return isBreak(b, i) || isZ(b, i)
}

func isSpacez(b []byte, i int) bool {
	return isSpace(b, i) || isZ(b, i)
}

func isBlankz(b []byte, i int) bool {
	return isBlank(b, i) || isBreakz(b, i)
}

// isBlankOrZero is an alias for isBlankz kept for symmetry with the
// emitter's existing call sites.
func isBlankOrZero(b []byte, i int) bool {
	return isBlankz(b, i)
}

func isLineBreak(b []byte, i int) bool {
	return isBreak(b, i)
}

// Moves a pointer to the next character.
func moveWidth(b []byte, i int) int {
	return i + width(b[i])
}
