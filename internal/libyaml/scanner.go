// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Lexical scanner: turns the decoded rune buffer into a stream of
// Tokens (directives, block/flow indicators, anchors, tags, and
// scalars of every style), tracking indentation and simple-key
// candidates along the way.

package libyaml

import (
	"bytes"
	"fmt"
	"io"
)

// Scan pops the next token off the queue, feeding the scanner as
// needed. It returns io.EOF once STREAM_END_TOKEN has already been
// produced and consumed, mirroring Parse's convention.
func (parser *Parser) Scan(token *Token) error {
	if parser.stream_end_produced {
		return io.EOF
	}
	var t *Token
	if err := parser.peekToken(&t); err != nil {
		return err
	}
	*token = *t
	parser.skipToken()
	return nil
}

func (parser *Parser) setScannerError(context string, context_mark Mark, problem string) error {
	parser.ErrorType = SCANNER_ERROR
	parser.Context = context
	parser.ContextMark = context_mark
	parser.Problem = problem
	parser.ProblemMark = parser.mark
	return &ScannerError{
		ContextMessage: context,
		ContextMark:    context_mark,
		Message:        problem,
		Mark:           parser.mark,
	}
}

func (parser *Parser) setScannerTagError(directive bool, context_mark Mark, problem string) error {
	context := "while parsing a tag"
	if directive {
		context = "while parsing a %TAG directive"
	}
	return parser.setScannerError(context, context_mark, problem)
}

// fetchMoreTokens ensures at least one token is available in the
// queue, scanning ahead until it can decide that the next token is
// final (not a withdrawn simple key candidate).
func (parser *Parser) fetchMoreTokens() error {
	// While we need more tokens to fetch, do it.
	for {
		// Check if we really need to fetch more tokens.
		need_more_tokens := false

		if parser.tokens_head == len(parser.tokens) {
			// Queue is empty.
			need_more_tokens = true
		} else {
			// Check if any potential simple key may occupy the head position.
			if err := parser.staleSimpleKeys(); err != nil {
				return err
			}
			for i := range parser.simple_keys {
				if parser.simple_keys[i].possible && parser.simple_keys[i].token_number == parser.tokens_parsed {
					need_more_tokens = true
					break
				}
			}
		}

		if !need_more_tokens {
			break
		}
		if err := parser.fetchNextToken(); err != nil {
			return err
		}
	}
	parser.token_available = true
	return nil
}

// fetchNextToken scans and queues exactly one more token (or several,
// when fetching one logically requires emitting a few, e.g. BLOCK-END
// tokens produced by dedenting).
func (parser *Parser) fetchNextToken() error {
	if !parser.stream_start_produced {
		return parser.fetchStreamStart()
	}

	if err := parser.skipToNextToken(); err != nil {
		return err
	}

	if err := parser.staleSimpleKeys(); err != nil {
		return err
	}

	if err := parser.unrollIndent(parser.mark.Column); err != nil {
		return err
	}

	if err := parser.updateBuffer(4); err != nil {
		return err
	}

	if isZ(parser.buffer, parser.buffer_pos) {
		return parser.fetchStreamEnd()
	}

	if parser.mark.Column == 0 && isDirective(parser.buffer, parser.buffer_pos) {
		return parser.fetchDirective()
	}
	if parser.mark.Column == 0 && isDocumentIndicator(parser.buffer, parser.buffer_pos, "---") {
		return parser.fetchDocumentIndicator(DOCUMENT_START_TOKEN)
	}
	if parser.mark.Column == 0 && isDocumentIndicator(parser.buffer, parser.buffer_pos, "...") {
		return parser.fetchDocumentIndicator(DOCUMENT_END_TOKEN)
	}
	if parser.buffer[parser.buffer_pos] == '[' {
		return parser.fetchFlowCollectionStart(FLOW_SEQUENCE_START_TOKEN)
	}
	if parser.buffer[parser.buffer_pos] == '{' {
		return parser.fetchFlowCollectionStart(FLOW_MAPPING_START_TOKEN)
	}
	if parser.buffer[parser.buffer_pos] == ']' {
		return parser.fetchFlowCollectionEnd(FLOW_SEQUENCE_END_TOKEN)
	}
	if parser.buffer[parser.buffer_pos] == '}' {
		return parser.fetchFlowCollectionEnd(FLOW_MAPPING_END_TOKEN)
	}
	if parser.buffer[parser.buffer_pos] == ',' {
		return parser.fetchFlowEntry()
	}
	if parser.buffer[parser.buffer_pos] == '-' && isBlankz(parser.buffer, parser.buffer_pos+1) {
		return parser.fetchBlockEntry()
	}
	if parser.buffer[parser.buffer_pos] == '?' && (parser.flow_level > 0 || isBlankz(parser.buffer, parser.buffer_pos+1)) {
		return parser.fetchKey()
	}
	if parser.buffer[parser.buffer_pos] == ':' && (parser.flow_level > 0 || isBlankz(parser.buffer, parser.buffer_pos+1)) {
		return parser.fetchValue()
	}
	if parser.buffer[parser.buffer_pos] == '*' {
		return parser.fetchAnchor(ALIAS_TOKEN)
	}
	if parser.buffer[parser.buffer_pos] == '&' {
		return parser.fetchAnchor(ANCHOR_TOKEN)
	}
	if parser.buffer[parser.buffer_pos] == '!' {
		return parser.fetchTag()
	}
	if parser.buffer[parser.buffer_pos] == '|' && parser.flow_level == 0 {
		return parser.fetchBlockScalar(true)
	}
	if parser.buffer[parser.buffer_pos] == '>' && parser.flow_level == 0 {
		return parser.fetchBlockScalar(false)
	}
	if parser.buffer[parser.buffer_pos] == '\'' {
		return parser.fetchFlowScalar(true)
	}
	if parser.buffer[parser.buffer_pos] == '"' {
		return parser.fetchFlowScalar(false)
	}
	if !(isBlankz(parser.buffer, parser.buffer_pos) ||
		parser.buffer[parser.buffer_pos] == '-' || parser.buffer[parser.buffer_pos] == '?' ||
		parser.buffer[parser.buffer_pos] == ':' || parser.buffer[parser.buffer_pos] == ',' ||
		parser.buffer[parser.buffer_pos] == '[' || parser.buffer[parser.buffer_pos] == ']' ||
		parser.buffer[parser.buffer_pos] == '{' || parser.buffer[parser.buffer_pos] == '}' ||
		parser.buffer[parser.buffer_pos] == '#' || parser.buffer[parser.buffer_pos] == '&' ||
		parser.buffer[parser.buffer_pos] == '*' || parser.buffer[parser.buffer_pos] == '!' ||
		parser.buffer[parser.buffer_pos] == '|' || parser.buffer[parser.buffer_pos] == '>' ||
		parser.buffer[parser.buffer_pos] == '\'' || parser.buffer[parser.buffer_pos] == '"' ||
		parser.buffer[parser.buffer_pos] == '%' || parser.buffer[parser.buffer_pos] == '@' ||
		parser.buffer[parser.buffer_pos] == '`') {
		return parser.fetchPlainScalar()
	}
	if parser.buffer[parser.buffer_pos] == '-' || parser.buffer[parser.buffer_pos] == '?' || parser.buffer[parser.buffer_pos] == ':' {
		return parser.fetchPlainScalar()
	}

	return parser.setScannerError(
		"while scanning for the next token", parser.mark,
		fmt.Sprintf("found character %#U that cannot start any token", rune(parser.buffer[parser.buffer_pos])))
}

// --- Simple keys -----------------------------------------------------

// staleSimpleKeys invalidates simple keys that can no longer be
// completed: those on a prior line when not in flow context.
func (parser *Parser) staleSimpleKeys() error {
	for i := range parser.simple_keys {
		simple_key := &parser.simple_keys[i]
		if simple_key.possible && (simple_key.mark.Line < parser.mark.Line || simple_key.mark.Index+1024 < parser.mark.Index) {
			if simple_key.required {
				return parser.setScannerError("while scanning a simple key", simple_key.mark,
					"could not find expected ':'")
			}
			simple_key.possible = false
		}
	}
	return nil
}

func (parser *Parser) saveSimpleKey() error {
	required := parser.flow_level == 0 && parser.indent == parser.mark.Column

	if parser.simple_key_allowed {
		simple_key := simpleKey{
			possible:     true,
			required:     required,
			token_number: parser.tokens_parsed + (len(parser.tokens) - parser.tokens_head),
			mark:         parser.mark,
		}
		if err := parser.removeSimpleKey(); err != nil {
			return err
		}
		parser.simple_keys[len(parser.simple_keys)-1] = simple_key
	}
	return nil
}

func (parser *Parser) removeSimpleKey() error {
	i := len(parser.simple_keys) - 1
	if parser.simple_keys[i].possible {
		if parser.simple_keys[i].required {
			return parser.setScannerError("while scanning a simple key", parser.simple_keys[i].mark,
				"could not find expected ':'")
		}
	}
	parser.simple_keys[i].possible = false
	return nil
}

func (parser *Parser) increaseFlowLevel() error {
	parser.simple_keys = append(parser.simple_keys, simpleKey{})
	parser.flow_level++
	return nil
}

func (parser *Parser) decreaseFlowLevel() error {
	if parser.flow_level > 0 {
		parser.flow_level--
		parser.simple_keys = parser.simple_keys[:len(parser.simple_keys)-1]
	}
	return nil
}

// --- Indentation -------------------------------------------------------

func (parser *Parser) rollIndent(column, number int, typ TokenType, mark Mark) error {
	if parser.flow_level > 0 {
		return nil
	}
	if parser.indent < column {
		parser.indents = append(parser.indents, parser.indent)
		parser.indent = column
		tok := Token{
			Type:      typ,
			StartMark: mark,
			EndMark:   mark,
		}
		if number < 0 {
			parser.insertToken(-1, &tok)
		} else {
			parser.insertToken(number-parser.tokens_parsed, &tok)
		}
	}
	return nil
}

func (parser *Parser) unrollIndent(column int) error {
	if parser.flow_level > 0 {
		return nil
	}
	for parser.indent > column {
		mark := parser.mark
		parser.indent = parser.indents[len(parser.indents)-1]
		parser.indents = parser.indents[:len(parser.indents)-1]
		parser.tokens = append(parser.tokens, Token{
			Type:      BLOCK_END_TOKEN,
			StartMark: mark,
			EndMark:   mark,
		})
	}
	return nil
}

// --- Buffer motion helpers ----------------------------------------------

func (parser *Parser) skip() {
	parser.mark.Index++
	parser.mark.Column++
	parser.unread--
	parser.buffer_pos += width(parser.buffer[parser.buffer_pos])
}

func (parser *Parser) skipLine() {
	if isCRLF(parser.buffer, parser.buffer_pos) {
		parser.mark.Index += 2
		parser.mark.Column = 0
		parser.mark.Line++
		parser.unread -= 2
		parser.buffer_pos += 2
	} else if isBreak(parser.buffer, parser.buffer_pos) {
		parser.mark.Index++
		parser.mark.Column = 0
		parser.mark.Line++
		parser.unread--
		parser.buffer_pos += width(parser.buffer[parser.buffer_pos])
	}
}

func (parser *Parser) read(s []byte) []byte {
	w := width(parser.buffer[parser.buffer_pos])
	s = append(s, parser.buffer[parser.buffer_pos:parser.buffer_pos+w]...)
	parser.mark.Index++
	parser.mark.Column++
	parser.unread--
	parser.buffer_pos += w
	return s
}

func (parser *Parser) readLine(s []byte) []byte {
	buf := parser.buffer
	pos := parser.buffer_pos
	switch {
	case buf[pos] == '\r' && buf[pos+1] == '\n':
		s = append(s, '\n')
		parser.buffer_pos += 2
		parser.mark.Index += 2
	case buf[pos] == '\r' || buf[pos] == '\n':
		s = append(s, '\n')
		parser.buffer_pos += 1
		parser.mark.Index++
	case buf[pos] == 0xC2 && buf[pos+1] == 0x85:
		s = append(s, '\n')
		parser.buffer_pos += 2
		parser.mark.Index++
	case buf[pos] == 0xE2 && buf[pos+1] == 0x80 && (buf[pos+2] == 0xA8 || buf[pos+2] == 0xA9):
		s = append(s, buf[pos:pos+3]...)
		parser.buffer_pos += 3
		parser.mark.Index++
	default:
		return s
	}
	parser.mark.Line++
	parser.unread--
	parser.mark.Column = 0
	return s
}

// --- Whitespace/comment skipping ----------------------------------------

func (parser *Parser) skipToNextToken() error {
	scan_mark := parser.mark
	for {
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
		if parser.mark.Column == 0 && isBOM(parser.buffer, parser.buffer_pos) {
			parser.skip()
		}
		if err := parser.updateBuffer(2); err != nil {
			return err
		}
		for isSpace(parser.buffer, parser.buffer_pos) ||
			((parser.flow_level > 0 || !parser.simple_key_allowed) && isTab(parser.buffer, parser.buffer_pos)) {
			parser.skip()
			if err := parser.updateBuffer(1); err != nil {
				return err
			}
		}
		if parser.buffer[parser.buffer_pos] == '#' {
			token_mark := parser.mark
			start_mark := parser.mark
			var comment []byte
			for !isBreakz(parser.buffer, parser.buffer_pos) {
				comment = parser.read(comment)
				if err := parser.updateBuffer(1); err != nil {
					return err
				}
			}
			if len(bytes.TrimSpace(comment)) > 0 {
				c := Comment{
					scan_mark:  scan_mark,
					token_mark: token_mark,
					start_mark: start_mark,
					end_mark:   parser.mark,
				}
				if start_mark.Column == 0 || parser.space_above_comment(start_mark) {
					c.head = comment
				} else {
					c.line = comment
				}
				parser.comments = append(parser.comments, c)
			}
		}
		if !isBreakz(parser.buffer, parser.buffer_pos) {
			break
		}
		if err := parser.updateBuffer(2); err != nil {
			return err
		}
		parser.skipLine()
		if parser.flow_level == 0 {
			parser.simple_key_allowed = true
		}
		scan_mark = parser.mark
	}
	return nil
}

// space_above_comment reports whether mark is at column 0 of a line
// other than the first; it does not look for a preceding blank line.
// It is used to decide whether a '#' comment attaches as a head comment
// to the next token or stays a line comment.
func (parser *Parser) space_above_comment(mark Mark) bool {
	return mark.Column == 0 && mark.Line > 0
}

// --- Token fetchers ------------------------------------------------------

func (parser *Parser) fetchStreamStart() error {
	mark := parser.mark
	parser.indent = -1
	parser.simple_keys = append(parser.simple_keys, simpleKey{})
	parser.simple_key_allowed = true
	parser.stream_start_produced = true
	parser.tokens = append(parser.tokens, Token{
		Type:      STREAM_START_TOKEN,
		StartMark: mark,
		EndMark:   mark,
		encoding:  parser.encoding,
	})
	return nil
}

func (parser *Parser) fetchStreamEnd() error {
	if parser.mark.Column != 0 {
		parser.mark.Column = 0
		parser.mark.Line++
	}
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	parser.tokens = append(parser.tokens, Token{
		Type:      STREAM_END_TOKEN,
		StartMark: parser.mark,
		EndMark:   parser.mark,
	})
	return nil
}

func (parser *Parser) fetchDirective() error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	return parser.scanDirective()
}

func (parser *Parser) fetchDocumentIndicator(typ TokenType) error {
	if err := parser.unrollIndent(-1); err != nil {
		return err
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false

	start_mark := parser.mark
	parser.skip()
	parser.skip()
	parser.skip()
	end_mark := parser.mark

	parser.tokens = append(parser.tokens, Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

func (parser *Parser) fetchFlowCollectionStart(typ TokenType) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	if err := parser.increaseFlowLevel(); err != nil {
		return err
	}
	parser.simple_key_allowed = true

	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	parser.tokens = append(parser.tokens, Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

func (parser *Parser) fetchFlowCollectionEnd(typ TokenType) error {
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	if err := parser.decreaseFlowLevel(); err != nil {
		return err
	}
	parser.simple_key_allowed = false

	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	parser.tokens = append(parser.tokens, Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

func (parser *Parser) fetchFlowEntry() error {
	parser.simple_key_allowed = true
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}

	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	parser.tokens = append(parser.tokens, Token{
		Type:      FLOW_ENTRY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

func (parser *Parser) fetchBlockEntry() error {
	if parser.flow_level == 0 {
		if !parser.simple_key_allowed {
			return parser.setScannerError("", parser.mark,
				"block sequence entries are not allowed in this context")
		}
		if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_SEQUENCE_START_TOKEN, parser.mark); err != nil {
			return err
		}
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = true

	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	parser.tokens = append(parser.tokens, Token{
		Type:      BLOCK_ENTRY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

func (parser *Parser) fetchKey() error {
	if parser.flow_level == 0 {
		if !parser.simple_key_allowed {
			return parser.setScannerError("", parser.mark,
				"mapping keys are not allowed in this context")
		}
		if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark); err != nil {
			return err
		}
	}
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = parser.flow_level == 0

	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	parser.tokens = append(parser.tokens, Token{
		Type:      KEY_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

func (parser *Parser) fetchValue() error {
	i := len(parser.simple_keys) - 1
	if parser.simple_keys[i].possible {
		simple_key := parser.simple_keys[i]
		parser.simple_keys[i].possible = false
		mark := simple_key.mark

		tok := Token{
			Type:      KEY_TOKEN,
			StartMark: mark,
			EndMark:   mark,
		}
		parser.insertToken(simple_key.token_number-parser.tokens_parsed, &tok)

		if err := parser.rollIndent(mark.Column, simple_key.token_number, BLOCK_MAPPING_START_TOKEN, mark); err != nil {
			return err
		}
		parser.simple_key_allowed = false
	} else {
		if parser.flow_level == 0 {
			if !parser.simple_key_allowed {
				return parser.setScannerError("", parser.mark,
					"mapping values are not allowed in this context")
			}
			if err := parser.rollIndent(parser.mark.Column, -1, BLOCK_MAPPING_START_TOKEN, parser.mark); err != nil {
				return err
			}
		}
		parser.simple_key_allowed = parser.flow_level == 0
	}

	start_mark := parser.mark
	parser.skip()
	end_mark := parser.mark

	parser.tokens = append(parser.tokens, Token{
		Type:      VALUE_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
	})
	return nil
}

func (parser *Parser) fetchAnchor(typ TokenType) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	return parser.scanAnchor(typ)
}

func (parser *Parser) fetchTag() error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	return parser.scanTag()
}

func (parser *Parser) fetchBlockScalar(literal bool) error {
	if err := parser.removeSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = true
	return parser.scanBlockScalar(literal)
}

func (parser *Parser) fetchFlowScalar(single bool) error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	return parser.scanFlowScalar(single)
}

func (parser *Parser) fetchPlainScalar() error {
	if err := parser.saveSimpleKey(); err != nil {
		return err
	}
	parser.simple_key_allowed = false
	return parser.scanPlainScalar()
}

// --- Directive/tag/anchor scanning --------------------------------------

func isDirective(b []byte, i int) bool { return b[i] == '%' }

func isDocumentIndicator(b []byte, i int, ind string) bool {
	return b[i] == ind[0] && b[i+1] == ind[1] && b[i+2] == ind[2] && isBlankz(b, i+3)
}

func (parser *Parser) scanDirective() error {
	start_mark := parser.mark
	parser.skip()

	var name []byte
	var err error
	name, err = parser.scanDirectiveName(start_mark)
	if err != nil {
		return err
	}

	var tok Token
	switch string(name) {
	case "YAML":
		tok, err = parser.scanVersionDirectiveValue(start_mark)
	case "TAG":
		tok, err = parser.scanTagDirectiveValue(start_mark)
	default:
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
		for !isBreakz(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.updateBuffer(1); err != nil {
				return err
			}
		}
		tok = Token{Type: NO_TOKEN}
	}
	if err != nil {
		return err
	}

	if err := parser.updateBuffer(1); err != nil {
		return err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
	}
	if parser.buffer[parser.buffer_pos] == '#' {
		for !isBreakz(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.updateBuffer(1); err != nil {
				return err
			}
		}
	}
	if !isBreakz(parser.buffer, parser.buffer_pos) {
		return parser.setScannerError("while scanning a directive", start_mark,
			"did not find expected comment or line break")
	}
	parser.skipLine()

	if tok.Type != NO_TOKEN {
		tok.StartMark = start_mark
		tok.EndMark = parser.mark
		parser.tokens = append(parser.tokens, tok)
	}
	return nil
}

func (parser *Parser) scanDirectiveName(start_mark Mark) ([]byte, error) {
	var s []byte
	if err := parser.updateBuffer(1); err != nil {
		return nil, err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.updateBuffer(1); err != nil {
			return nil, err
		}
	}
	if len(s) == 0 {
		return nil, parser.setScannerError("while scanning a directive", start_mark,
			"could not find expected directive name")
	}
	if !isBlankz(parser.buffer, parser.buffer_pos) {
		return nil, parser.setScannerError("while scanning a directive", start_mark,
			"found unexpected non-alphabetical character")
	}
	return s, nil
}

func (parser *Parser) scanVersionDirectiveValue(start_mark Mark) (Token, error) {
	if err := parser.updateBuffer(1); err != nil {
		return Token{}, err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return Token{}, err
		}
	}
	major, err := parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return Token{}, err
	}
	if parser.buffer[parser.buffer_pos] != '.' {
		return Token{}, parser.setScannerError("while scanning a %YAML directive", start_mark,
			"did not find expected digit or '.' character")
	}
	parser.skip()
	minor, err := parser.scanVersionDirectiveNumber(start_mark)
	if err != nil {
		return Token{}, err
	}
	return Token{Type: VERSION_DIRECTIVE_TOKEN, major: major, minor: minor}, nil
}

const max_number_length = 2

func (parser *Parser) scanVersionDirectiveNumber(start_mark Mark) (int8, error) {
	var value, length int8
	if err := parser.updateBuffer(1); err != nil {
		return 0, err
	}
	for isDigit(parser.buffer, parser.buffer_pos) {
		length++
		if length > max_number_length {
			return 0, parser.setScannerError("while scanning a %YAML directive", start_mark,
				"found extremely long version number")
		}
		value = value*10 + int8(asDigit(parser.buffer, parser.buffer_pos))
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return 0, err
		}
	}
	if length == 0 {
		return 0, parser.setScannerError("while scanning a %YAML directive", start_mark,
			"did not find expected version number")
	}
	return value, nil
}

func (parser *Parser) scanTagDirectiveValue(start_mark Mark) (Token, error) {
	if err := parser.updateBuffer(1); err != nil {
		return Token{}, err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return Token{}, err
		}
	}
	handle, err := parser.scanTagHandle(true, start_mark)
	if err != nil {
		return Token{}, err
	}
	if err := parser.updateBuffer(1); err != nil {
		return Token{}, err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return Token{}, err
		}
	}
	prefix, err := parser.scanTagURI(true, nil, start_mark)
	if err != nil {
		return Token{}, err
	}
	if err := parser.updateBuffer(1); err != nil {
		return Token{}, err
	}
	if !isBlankz(parser.buffer, parser.buffer_pos) {
		return Token{}, parser.setScannerTagError(true, start_mark,
			"did not find expected whitespace or line break")
	}
	return Token{Type: TAG_DIRECTIVE_TOKEN, Value: handle, prefix: prefix}, nil
}

func (parser *Parser) scanAnchor(typ TokenType) error {
	start_mark := parser.mark
	parser.skip()
	var s []byte
	if err := parser.updateBuffer(1); err != nil {
		return err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
	}
	end_mark := parser.mark
	if len(s) == 0 || !(isBlankz(parser.buffer, parser.buffer_pos) ||
		parser.buffer[parser.buffer_pos] == '?' || parser.buffer[parser.buffer_pos] == ':' ||
		parser.buffer[parser.buffer_pos] == ',' || parser.buffer[parser.buffer_pos] == ']' ||
		parser.buffer[parser.buffer_pos] == '}' || parser.buffer[parser.buffer_pos] == '%' ||
		parser.buffer[parser.buffer_pos] == '@' || parser.buffer[parser.buffer_pos] == '`') {
		context := "while scanning an alias"
		if typ == ANCHOR_TOKEN {
			context = "while scanning an anchor"
		}
		return parser.setScannerError(context, start_mark, "did not find expected alphabetic or numeric character")
	}
	parser.tokens = append(parser.tokens, Token{
		Type:      typ,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
	})
	return nil
}

func (parser *Parser) scanTag() error {
	start_mark := parser.mark
	var handle, suffix []byte

	if err := parser.updateBuffer(2); err != nil {
		return err
	}
	if parser.buffer[parser.buffer_pos+1] == '<' {
		parser.skip()
		parser.skip()
		var err error
		suffix, err = parser.scanTagURI(false, nil, start_mark)
		if err != nil {
			return err
		}
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
		if parser.buffer[parser.buffer_pos] != '>' {
			return parser.setScannerTagError(false, start_mark, "did not find the expected '>'")
		}
		parser.skip()
	} else {
		var err error
		handle, err = parser.scanTagHandle(false, start_mark)
		if err != nil {
			return err
		}
		if len(handle) >= 2 && handle[0] == '!' && handle[len(handle)-1] == '!' {
			suffix, err = parser.scanTagURI(false, nil, start_mark)
		} else {
			suffix, err = parser.scanTagURI(false, handle, start_mark)
			handle = []byte("!")
			if len(suffix) == 0 {
				handle, suffix = nil, handle[1:]
			}
		}
		if err != nil {
			return err
		}
	}

	if err := parser.updateBuffer(1); err != nil {
		return err
	}
	if !isBlankz(parser.buffer, parser.buffer_pos) {
		if parser.flow_level == 0 || parser.buffer[parser.buffer_pos] != ',' {
			return parser.setScannerTagError(false, start_mark, "did not find expected whitespace or line break")
		}
	}

	end_mark := parser.mark
	parser.tokens = append(parser.tokens, Token{
		Type:      TAG_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     handle,
		suffix:    suffix,
	})
	return nil
}

func (parser *Parser) scanTagHandle(directive bool, start_mark Mark) ([]byte, error) {
	if err := parser.updateBuffer(1); err != nil {
		return nil, err
	}
	if parser.buffer[parser.buffer_pos] != '!' {
		return nil, parser.setScannerTagError(directive, start_mark, "did not find expected '!'")
	}
	var s []byte
	s = parser.read(s)
	if err := parser.updateBuffer(1); err != nil {
		return nil, err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) {
		s = parser.read(s)
		if err := parser.updateBuffer(1); err != nil {
			return nil, err
		}
	}
	if parser.buffer[parser.buffer_pos] == '!' {
		s = parser.read(s)
	} else if directive && string(s) != "!" {
		return nil, parser.setScannerTagError(directive, start_mark, "did not find expected '!'")
	}
	return s, nil
}

func (parser *Parser) scanTagURI(directive bool, head []byte, start_mark Mark) ([]byte, error) {
	var s []byte
	if len(head) > 1 {
		s = append(s, head[1:]...)
	}
	if err := parser.updateBuffer(1); err != nil {
		return nil, err
	}
	for isAlpha(parser.buffer, parser.buffer_pos) ||
		parser.buffer[parser.buffer_pos] == ';' || parser.buffer[parser.buffer_pos] == '/' ||
		parser.buffer[parser.buffer_pos] == '?' || parser.buffer[parser.buffer_pos] == ':' ||
		parser.buffer[parser.buffer_pos] == '@' || parser.buffer[parser.buffer_pos] == '&' ||
		parser.buffer[parser.buffer_pos] == '=' || parser.buffer[parser.buffer_pos] == '+' ||
		parser.buffer[parser.buffer_pos] == '$' || parser.buffer[parser.buffer_pos] == ',' ||
		parser.buffer[parser.buffer_pos] == '.' || parser.buffer[parser.buffer_pos] == '!' ||
		parser.buffer[parser.buffer_pos] == '~' || parser.buffer[parser.buffer_pos] == '*' ||
		parser.buffer[parser.buffer_pos] == '\'' || parser.buffer[parser.buffer_pos] == '(' ||
		parser.buffer[parser.buffer_pos] == ')' || parser.buffer[parser.buffer_pos] == '[' ||
		parser.buffer[parser.buffer_pos] == ']' || parser.buffer[parser.buffer_pos] == '%' {
		if parser.buffer[parser.buffer_pos] == '%' {
			var err error
			s, err = parser.scanURIEscapes(directive, start_mark, s)
			if err != nil {
				return nil, err
			}
		} else {
			s = parser.read(s)
		}
		if err := parser.updateBuffer(1); err != nil {
			return nil, err
		}
	}
	if len(s) == 0 {
		return nil, parser.setScannerTagError(directive, start_mark, "did not find expected tag URI")
	}
	return s, nil
}

func (parser *Parser) scanURIEscapes(directive bool, start_mark Mark, s []byte) ([]byte, error) {
	w := 0
	for {
		if err := parser.updateBuffer(1); err != nil {
			return nil, err
		}
		if !(parser.buffer[parser.buffer_pos] == '%' &&
			isHex(parser.buffer, parser.buffer_pos+1) && isHex(parser.buffer, parser.buffer_pos+2)) {
			return nil, parser.setScannerTagError(directive, start_mark, "did not find URI escaped octet")
		}
		octet := byte((asHex(parser.buffer, parser.buffer_pos+1) << 4) + asHex(parser.buffer, parser.buffer_pos+2))
		if w == 0 {
			w = width(octet)
			if w == 0 {
				return nil, parser.setScannerTagError(directive, start_mark, "found an incorrect leading UTF-8 octet")
			}
		} else if octet&0xC0 != 0x80 {
			return nil, parser.setScannerTagError(directive, start_mark, "found an incorrect trailing UTF-8 octet")
		}
		s = append(s, octet)
		parser.skip()
		parser.skip()
		parser.skip()
		w--
		if w == 0 {
			break
		}
	}
	return s, nil
}

// --- Block scalars -------------------------------------------------------

func (parser *Parser) scanBlockScalar(literal bool) error {
	start_mark := parser.mark
	parser.skip()

	var chomping, increment int
	var indent int
	var trailing_blank, leading_blank bool

	if parser.buffer[parser.buffer_pos] == '+' || parser.buffer[parser.buffer_pos] == '-' {
		if parser.buffer[parser.buffer_pos] == '+' {
			chomping = 1
		} else {
			chomping = -1
		}
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
		if isDigit(parser.buffer, parser.buffer_pos) {
			if parser.buffer[parser.buffer_pos] == '0' {
				return parser.setScannerError("while scanning a block scalar", start_mark,
					"found an indentation indicator equal to 0")
			}
			increment = asDigit(parser.buffer, parser.buffer_pos)
			parser.skip()
		}
	} else if isDigit(parser.buffer, parser.buffer_pos) {
		if parser.buffer[parser.buffer_pos] == '0' {
			return parser.setScannerError("while scanning a block scalar", start_mark,
				"found an indentation indicator equal to 0")
		}
		increment = asDigit(parser.buffer, parser.buffer_pos)
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
		if parser.buffer[parser.buffer_pos] == '+' || parser.buffer[parser.buffer_pos] == '-' {
			if parser.buffer[parser.buffer_pos] == '+' {
				chomping = 1
			} else {
				chomping = -1
			}
			parser.skip()
		}
	}

	if err := parser.updateBuffer(1); err != nil {
		return err
	}
	for isBlank(parser.buffer, parser.buffer_pos) {
		parser.skip()
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
	}
	if parser.buffer[parser.buffer_pos] == '#' {
		for !isBreakz(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.updateBuffer(1); err != nil {
				return err
			}
		}
	}
	if !isBreakz(parser.buffer, parser.buffer_pos) {
		return parser.setScannerError("while scanning a block scalar", start_mark,
			"did not find expected comment or line break")
	}
	if err := parser.updateBuffer(2); err != nil {
		return err
	}
	parser.skipLine()

	end_mark := parser.mark
	if increment > 0 {
		if parser.indent >= 0 {
			indent = parser.indent + increment
		} else {
			indent = increment
		}
	}

	var s, leading_break, trailing_breaks []byte

	if indent == 0 {
		indent = parser.mark.Column
		if indent < parser.indent+1 {
			indent = parser.indent + 1
		}
		if indent < 1 {
			indent = 1
		}
	}

	leading_blank = false
	for parser.mark.Column == indent {
		end_mark = parser.mark
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
		for isSpace(parser.buffer, parser.buffer_pos) {
			parser.skip()
			if err := parser.updateBuffer(1); err != nil {
				return err
			}
		}
		if isBreakz(parser.buffer, parser.buffer_pos) {
			if err := parser.updateBuffer(2); err != nil {
				return err
			}
			trailing_breaks = parser.readLine(trailing_breaks)
			continue
		}

		// scan to end of this content line
		if !literal {
			if isBlank(parser.buffer, parser.buffer_pos) {
				trailing_blank = true
			} else {
				trailing_blank = false
			}
			if leading_blank && !trailing_blank && len(leading_break) > 0 {
				if len(trailing_breaks) == 0 {
					s = append(s, ' ')
				}
			} else {
				s = append(s, leading_break...)
			}
			s = append(s, trailing_breaks...)
			leading_break = leading_break[:0]
			trailing_breaks = trailing_breaks[:0]
			leading_blank = isBlank(parser.buffer, parser.buffer_pos)
		} else {
			s = append(s, leading_break...)
			s = append(s, trailing_breaks...)
			leading_break = leading_break[:0]
			trailing_breaks = trailing_breaks[:0]
		}

		if err := parser.updateBuffer(1); err != nil {
			return err
		}
		for !isBreakz(parser.buffer, parser.buffer_pos) {
			s = parser.read(s)
			if err := parser.updateBuffer(1); err != nil {
				return err
			}
		}
		if err := parser.updateBuffer(2); err != nil {
			return err
		}
		leading_break = parser.readLine(leading_break)
	}

	switch chomping {
	case 1:
		s = append(s, leading_break...)
		s = append(s, trailing_breaks...)
	case 0:
		s = append(s, leading_break...)
	}

	style := LITERAL_SCALAR_STYLE
	if !literal {
		style = FOLDED_SCALAR_STYLE
	}
	parser.tokens = append(parser.tokens, Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
		Style:     style,
	})
	return nil
}

// --- Flow scalars ---------------------------------------------------------

func (parser *Parser) scanFlowScalar(single bool) error {
	start_mark := parser.mark
	parser.skip()

	var s []byte
	for {
		if err := parser.updateBuffer(4); err != nil {
			return err
		}
		if parser.mark.Column == 0 && (isDocumentIndicator(parser.buffer, parser.buffer_pos, "---") ||
			isDocumentIndicator(parser.buffer, parser.buffer_pos, "...")) {
			return parser.setScannerError("while scanning a quoted scalar", start_mark,
				"found unexpected document indicator")
		}
		if isZ(parser.buffer, parser.buffer_pos) {
			return parser.setScannerError("while scanning a quoted scalar", start_mark,
				"found unexpected end of stream")
		}

		if err := parser.updateBuffer(2); err != nil {
			return err
		}
		for isBlank(parser.buffer, parser.buffer_pos) || isBreak(parser.buffer, parser.buffer_pos) {
			if isBlank(parser.buffer, parser.buffer_pos) {
				var whitespaces []byte
				for isBlank(parser.buffer, parser.buffer_pos) {
					whitespaces = parser.read(whitespaces)
					if err := parser.updateBuffer(1); err != nil {
						return err
					}
				}
				if !isBreak(parser.buffer, parser.buffer_pos) {
					s = append(s, whitespaces...)
				}
			} else {
				if err := parser.updateBuffer(2); err != nil {
					return err
				}
				var leading_break, trailing_breaks []byte
				leading_break = parser.readLine(leading_break)
				for isBlank(parser.buffer, parser.buffer_pos) || isBreak(parser.buffer, parser.buffer_pos) {
					if isBlank(parser.buffer, parser.buffer_pos) {
						parser.skip()
					} else {
						if err := parser.updateBuffer(2); err != nil {
							return err
						}
						trailing_breaks = parser.readLine(trailing_breaks)
					}
					if err := parser.updateBuffer(1); err != nil {
						return err
					}
				}
				if string(leading_break) != "\n" {
					s = append(s, leading_break...)
				} else if len(trailing_breaks) == 0 {
					s = append(s, ' ')
				}
				s = append(s, trailing_breaks...)
			}
			if err := parser.updateBuffer(2); err != nil {
				return err
			}
		}

		if (single && parser.buffer[parser.buffer_pos] == '\'') || (!single && parser.buffer[parser.buffer_pos] == '"') {
			break
		}

		if single && parser.buffer[parser.buffer_pos] == '\'' && parser.buffer[parser.buffer_pos+1] == '\'' {
			s = append(s, '\'')
			parser.skip()
			parser.skip()
			continue
		}
		if !single && parser.buffer[parser.buffer_pos] == '\\' && isBreak(parser.buffer, parser.buffer_pos+1) {
			if err := parser.updateBuffer(3); err != nil {
				return err
			}
			parser.skip()
			parser.skipLine()
			continue
		}
		if !single && parser.buffer[parser.buffer_pos] == '\\' {
			if err := parser.updateBuffer(2); err != nil {
				return err
			}
			code_length := 0
			var literal bool
			var esc byte
			switch parser.buffer[parser.buffer_pos+1] {
			case '0':
				literal, esc = true, 0
			case 'a':
				literal, esc = true, '\x07'
			case 'b':
				literal, esc = true, '\x08'
			case 't', '\t':
				literal, esc = true, '\t'
			case 'n':
				literal, esc = true, '\n'
			case 'v':
				literal, esc = true, '\x0B'
			case 'f':
				literal, esc = true, '\x0C'
			case 'r':
				literal, esc = true, '\x0D'
			case 'e':
				literal, esc = true, '\x1B'
			case ' ':
				literal, esc = true, ' '
			case '"':
				literal, esc = true, '"'
			case '\'':
				literal, esc = true, '\''
			case '\\':
				literal, esc = true, '\\'
			case 0x85, 'N':
				s = append(s, 0xC2, 0x85)
			case 0xA0, '_':
				s = append(s, 0xC2, 0xA0)
			case 'L':
				s = append(s, 0xE2, 0x80, 0xA8)
			case 'P':
				s = append(s, 0xE2, 0x80, 0xA9)
			case 'x':
				code_length = 2
			case 'u':
				code_length = 4
			case 'U':
				code_length = 8
			default:
				return parser.setScannerError("while parsing a quoted scalar", start_mark,
					"found unknown escape character")
			}
			parser.skip()
			parser.skip()

			if code_length > 0 {
				var value int
				if err := parser.updateBuffer(code_length); err != nil {
					return err
				}
				for k := 0; k < code_length; k++ {
					if !isHex(parser.buffer, parser.buffer_pos+k) {
						return parser.setScannerError("while parsing a quoted scalar", start_mark,
							"did not find expected hexadecimal number")
					}
					value = (value << 4) + asHex(parser.buffer, parser.buffer_pos+k)
				}
				s = appendRune(s, rune(value))
				for k := 0; k < code_length; k++ {
					parser.skip()
				}
			} else if literal {
				s = append(s, esc)
			}
			continue
		}
		s = parser.read(s)
		if err := parser.updateBuffer(1); err != nil {
			return err
		}
	}
	if err := parser.updateBuffer(1); err != nil {
		return err
	}
	parser.skip()
	end_mark := parser.mark

	style := DOUBLE_QUOTED_SCALAR_STYLE
	if single {
		style = SINGLE_QUOTED_SCALAR_STYLE
	}
	parser.tokens = append(parser.tokens, Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
		Style:     style,
	})
	return nil
}

func appendRune(s []byte, r rune) []byte {
	if r <= 0x7F {
		return append(s, byte(r))
	} else if r <= 0x7FF {
		return append(s, byte(0xC0+(r>>6)), byte(0x80+(r&0x3F)))
	} else if r <= 0xFFFF {
		return append(s, byte(0xE0+(r>>12)), byte(0x80+((r>>6)&0x3F)), byte(0x80+(r&0x3F)))
	}
	return append(s, byte(0xF0+(r>>18)), byte(0x80+((r>>12)&0x3F)), byte(0x80+((r>>6)&0x3F)), byte(0x80+(r&0x3F)))
}

// --- Plain scalars ---------------------------------------------------------

func (parser *Parser) scanPlainScalar() error {
	var s, leading_break, trailing_breaks, whitespaces []byte
	var leading_blanks bool
	indent := parser.indent + 1

	start_mark := parser.mark
	end_mark := parser.mark

	for {
		if err := parser.updateBuffer(4); err != nil {
			return err
		}
		if parser.mark.Column == 0 && (isDocumentIndicator(parser.buffer, parser.buffer_pos, "---") ||
			isDocumentIndicator(parser.buffer, parser.buffer_pos, "...")) {
			break
		}
		if parser.buffer[parser.buffer_pos] == '#' {
			break
		}
		if isBreakz(parser.buffer, parser.buffer_pos) {
			break
		}
		if parser.flow_level > 0 && parser.buffer[parser.buffer_pos] == ':' &&
			isBlankz(parser.buffer, parser.buffer_pos+1) {
			break
		}
		if parser.buffer[parser.buffer_pos] == ':' && isBlankz(parser.buffer, parser.buffer_pos+1) {
			break
		}
		if parser.flow_level > 0 &&
			(parser.buffer[parser.buffer_pos] == ',' || parser.buffer[parser.buffer_pos] == '?' ||
				parser.buffer[parser.buffer_pos] == '[' || parser.buffer[parser.buffer_pos] == ']' ||
				parser.buffer[parser.buffer_pos] == '{' || parser.buffer[parser.buffer_pos] == '}') {
			break
		}

		if isBlank(parser.buffer, parser.buffer_pos) || isBreak(parser.buffer, parser.buffer_pos) {
			if err := parser.updateBuffer(1); err != nil {
				return err
			}
			if isBlank(parser.buffer, parser.buffer_pos) {
				if leading_blanks && parser.mark.Column < indent && isTab(parser.buffer, parser.buffer_pos) {
					return parser.setScannerError("while scanning a plain scalar", start_mark,
						"found a tab character that violates indentation")
				}
				for isBlank(parser.buffer, parser.buffer_pos) {
					whitespaces = parser.read(whitespaces)
					if err := parser.updateBuffer(1); err != nil {
						return err
					}
				}
			} else {
				if err := parser.updateBuffer(2); err != nil {
					return err
				}
				if leading_blanks {
					trailing_breaks = parser.readLine(trailing_breaks)
				} else {
					whitespaces = whitespaces[:0]
					leading_break = parser.readLine(leading_break)
					leading_blanks = true
				}
			}
			continue
		}

		if leading_blanks {
			if parser.mark.Column < indent {
				break
			}
			if string(leading_break) == "\n" {
				if len(trailing_breaks) == 0 {
					s = append(s, ' ')
				} else {
					s = append(s, trailing_breaks...)
				}
			} else {
				s = append(s, leading_break...)
				s = append(s, trailing_breaks...)
			}
			leading_break = leading_break[:0]
			trailing_breaks = trailing_breaks[:0]
			leading_blanks = false
		} else if len(whitespaces) > 0 {
			s = append(s, whitespaces...)
			whitespaces = whitespaces[:0]
		}

		s = parser.read(s)
		end_mark = parser.mark
		if err := parser.updateBuffer(2); err != nil {
			return err
		}
	}

	parser.tokens = append(parser.tokens, Token{
		Type:      SCALAR_TOKEN,
		StartMark: start_mark,
		EndMark:   end_mark,
		Value:     s,
		Style:     PLAIN_SCALAR_STYLE,
	})

	if leading_blanks {
		parser.simple_key_allowed = true
	}
	return nil
}
