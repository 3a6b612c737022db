// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Input adapter: sniffs the stream's byte-order encoding, transcodes
// UTF-16 to UTF-8, validates UTF-8, and normalizes the raw byte stream
// into the buffer the scanner consumes one rune at a time.

package libyaml

import (
	"fmt"
)

// formatReaderError builds the ReaderError for a malformed byte or
// code point encountered while decoding the input stream.
func formatReaderError(problem string, offset int, value int) error {
	return &ReaderError{
		Offset: offset,
		Value:  value,
		Err:    fmt.Errorf("%s", problem),
	}
}

func (parser *Parser) setReaderError(problem string, offset int, value int) bool {
	parser.ErrorType = READER_ERROR
	parser.Problem = problem
	parser.ProblemOffset = offset
	parser.ProblemValue = value
	return false
}

// determineEncoding sniffs a byte-order mark from the first few bytes
// of raw input, defaulting to UTF-8 when none is present.
func (parser *Parser) determineEncoding() error {
	for !parser.eof && len(parser.raw_buffer)-parser.raw_buffer_pos < 3 {
		if err := parser.updateRawBuffer(); err != nil {
			return err
		}
	}

	buf := parser.raw_buffer[parser.raw_buffer_pos:]
	switch {
	case len(buf) >= 2 && buf[0] == 0xFF && buf[1] == 0xFE:
		parser.SetEncoding(UTF16LE_ENCODING)
		parser.raw_buffer_pos += 2
	case len(buf) >= 2 && buf[0] == 0xFE && buf[1] == 0xFF:
		parser.SetEncoding(UTF16BE_ENCODING)
		parser.raw_buffer_pos += 2
	case len(buf) >= 3 && buf[0] == 0xEF && buf[1] == 0xBB && buf[2] == 0xBF:
		parser.SetEncoding(UTF8_ENCODING)
		parser.raw_buffer_pos += 3
	default:
		parser.SetEncoding(UTF8_ENCODING)
	}
	return parser.updateBuffer(1)
}

// updateRawBuffer reads more bytes from the configured input source
// into the parser's raw buffer.
func (parser *Parser) updateRawBuffer() error {
	size_read := 0

	// Return if the raw buffer is full.
	if parser.raw_buffer_pos == 0 && len(parser.raw_buffer) == cap(parser.raw_buffer) {
		return nil
	}

	// Return on EOF.
	if parser.eof {
		return nil
	}

	// Move the remaining bytes in the raw buffer to the beginning.
	if parser.raw_buffer_pos > 0 && parser.raw_buffer_pos < len(parser.raw_buffer) {
		copy(parser.raw_buffer, parser.raw_buffer[parser.raw_buffer_pos:])
	}
	parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)-parser.raw_buffer_pos]
	parser.raw_buffer_pos = 0

	// Grow the raw buffer to its capacity if needed.
	if cap(parser.raw_buffer) == 0 {
		parser.raw_buffer = make([]byte, 0, input_raw_buffer_size)
	}

	// Fill the buffer until it's full.
	for len(parser.raw_buffer) != cap(parser.raw_buffer) {
		free := parser.raw_buffer[len(parser.raw_buffer):cap(parser.raw_buffer)]
		n, err := parser.read_handler(parser, free)
		size_read += n
		parser.raw_buffer = parser.raw_buffer[:len(parser.raw_buffer)+n]
		if err != nil {
			if err.Error() == "EOF" {
				parser.eof = true
				break
			}
			return err
		}
		if n == 0 {
			break
		}
	}
	return nil
}

// updateBuffer ensures at least length runes of decoded text are
// available in the parser's UTF-8 buffer, pulling and transcoding more
// raw input as needed.
func (parser *Parser) updateBuffer(length int) error {
	if parser.read_handler == nil {
		panic("read handler must be set")
	}

	// [Go] This function was changed to guarantee the requested length size at most.
	if len(parser.buffer) >= length {
		return nil
	}

	if parser.unread >= length {
		return nil
	}

	if parser.encoding == ANY_ENCODING {
		if err := parser.determineEncoding(); err != nil {
			return err
		}
	}

	// Move the content of the used part of the buffer to the beginning
	// of the buffer.
	buffer_len := len(parser.buffer)
	if parser.buffer_pos > 0 && parser.buffer_pos < buffer_len {
		copy(parser.buffer, parser.buffer[parser.buffer_pos:])
		buffer_len -= parser.buffer_pos
	} else if parser.buffer_pos == buffer_len {
		buffer_len = 0
	}
	parser.buffer = parser.buffer[:buffer_len]
	parser.buffer_pos = 0

	// Open the whole buffer for writing, and cut it before returning.
	parser.buffer = parser.buffer[:cap(parser.buffer)]

	// Fill the buffer until it has enough characters.
	first := true
	for parser.unread < length {
		if !first || parser.raw_buffer_pos == len(parser.raw_buffer) {
			if err := parser.updateRawBuffer(); err != nil {
				parser.buffer = parser.buffer[:buffer_len]
				return err
			}
		}
		first = false

		// Decode the raw buffer.
	inner:
		for parser.raw_buffer_pos != len(parser.raw_buffer) {
			var value rune
			var width int

			raw_unread := len(parser.raw_buffer) - parser.raw_buffer_pos

			switch parser.encoding {
			case UTF8_ENCODING:
				octet := parser.raw_buffer[parser.raw_buffer_pos]
				switch {
				case octet&0x80 == 0x00:
					width = 1
				case octet&0xE0 == 0xC0:
					width = 2
				case octet&0xF0 == 0xE0:
					width = 3
				case octet&0xF8 == 0xF0:
					width = 4
				default:
					return formatReaderError("invalid leading UTF-8 octet", parser.offset, int(octet))
				}
				if width > raw_unread {
					if parser.eof {
						return formatReaderError("incomplete UTF-8 octet sequence", parser.offset, -1)
					}
					break inner
				}
				switch width {
				case 1:
					value = rune(octet)
				case 2:
					value = rune(octet & 0x1F)
				case 3:
					value = rune(octet & 0x0F)
				case 4:
					value = rune(octet & 0x07)
				}
				for k := 1; k < width; k++ {
					octet = parser.raw_buffer[parser.raw_buffer_pos+k]
					if octet&0xC0 != 0x80 {
						return formatReaderError("invalid trailing UTF-8 octet", parser.offset+k, int(octet))
					}
					value = (value << 6) + rune(octet&0x3F)
				}

			case UTF16LE_ENCODING, UTF16BE_ENCODING:
				var low, high int
				if parser.encoding == UTF16LE_ENCODING {
					low, high = 0, 1
				} else {
					high, low = 0, 1
				}
				if raw_unread < 2 {
					if parser.eof {
						return formatReaderError("incomplete UTF-16 character", parser.offset, -1)
					}
					break inner
				}
				value = rune(parser.raw_buffer[parser.raw_buffer_pos+low]) +
					(rune(parser.raw_buffer[parser.raw_buffer_pos+high]) << 8)
				width = 2
				if value&0xFC00 == 0xD800 {
					if raw_unread < 4 {
						if parser.eof {
							return formatReaderError("incomplete UTF-16 surrogate pair", parser.offset, -1)
						}
						break inner
					}
					value2 := rune(parser.raw_buffer[parser.raw_buffer_pos+low+2]) +
						(rune(parser.raw_buffer[parser.raw_buffer_pos+high+2]) << 8)
					if value2&0xFC00 != 0xDC00 {
						return formatReaderError("invalid low surrogate", parser.offset+2, int(value2))
					}
					value = 0x10000 + (value-0xD800)<<10 + (value2 - 0xDC00)
					width = 4
				}

			default:
				panic("impossible")
			}

			// Check if the character is in the allowed range.
			switch {
			case value == 0x09 || value == 0x0A || value == 0x0D ||
				value >= 0x20 && value <= 0x7E:
			case value == 0x85 || value >= 0xA0 && value <= 0xD7FF ||
				value >= 0xE000 && value <= 0xFFFD ||
				value >= 0x10000 && value <= 0x10FFFF:
			default:
				return formatReaderError("control characters are not allowed", parser.offset, int(value))
			}

			// Move the raw pointer.
			parser.raw_buffer_pos += width
			parser.offset += width

			// Finally put the character into the buffer.
			if value <= 0x7F {
				parser.buffer[buffer_len] = byte(value)
				buffer_len += 1
			} else if value <= 0x7FF {
				parser.buffer[buffer_len+0] = byte(0xC0 + (value >> 6))
				parser.buffer[buffer_len+1] = byte(0x80 + (value & 0x3F))
				buffer_len += 2
			} else if value <= 0xFFFF {
				parser.buffer[buffer_len+0] = byte(0xE0 + (value >> 12))
				parser.buffer[buffer_len+1] = byte(0x80 + ((value >> 6) & 0x3F))
				parser.buffer[buffer_len+2] = byte(0x80 + (value & 0x3F))
				buffer_len += 3
			} else {
				parser.buffer[buffer_len+0] = byte(0xF0 + (value >> 18))
				parser.buffer[buffer_len+1] = byte(0x80 + ((value >> 12) & 0x3F))
				parser.buffer[buffer_len+2] = byte(0x80 + ((value >> 6) & 0x3F))
				parser.buffer[buffer_len+3] = byte(0x80 + (value & 0x3F))
				buffer_len += 4
			}

			parser.unread++
		}

		// On EOF, put NUL into the buffer and return.
		if parser.eof {
			parser.buffer = parser.buffer[:buffer_len+1]
			parser.buffer[buffer_len] = 0
			parser.unread++
			break
		}
	}
	parser.buffer = parser.buffer[:buffer_len]
	return nil
}
