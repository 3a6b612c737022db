// Copyright 2006-2010 Kirill Simonov
// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0 AND MIT

// Parser and Emitter structs, their internal state machines, and the
// buffer-size constants used when allocating them.

package libyaml

import (
	"io"
)

// Buffer size constants.
const (
	input_raw_buffer_size = 512

	// The input buffer should be large enough to hold two encoded
	// characters. UTF-8 encoding takes 4 bytes at most.
	input_buffer_size = input_raw_buffer_size * 3

	output_buffer_size = 128

	// The output buffer should be large enough to hold a single encoded
	// character, up to 4 bytes in UTF-8/UTF-16 encoding.
	output_raw_buffer_size = (output_buffer_size*2 + 2)

	initial_stack_size = 16
	initial_queue_size = 16
)

// Comment records a run of comment text captured by the scanner while
// it was positioned at a particular mark, pending association with a
// token once the parser knows what it attaches to.
type Comment struct {
	scan_mark  Mark // Position where scanning for this comment started
	token_mark Mark // Position after which tokens will be associated with this comment
	start_mark Mark // Position where the comment starts
	end_mark   Mark
	head       []byte
	line       []byte
	foot       []byte
}

// ParserState identifies a state in the parser state machine.
type ParserState int

const (
	PARSE_STREAM_START_STATE ParserState = iota
	PARSE_IMPLICIT_DOCUMENT_START_STATE
	PARSE_DOCUMENT_START_STATE
	PARSE_DOCUMENT_CONTENT_STATE
	PARSE_DOCUMENT_END_STATE
	PARSE_BLOCK_NODE_STATE
	PARSE_BLOCK_NODE_OR_INDENTLESS_SEQUENCE_STATE
	PARSE_FLOW_NODE_STATE
	PARSE_BLOCK_SEQUENCE_FIRST_ENTRY_STATE
	PARSE_BLOCK_SEQUENCE_ENTRY_STATE
	PARSE_INDENTLESS_SEQUENCE_ENTRY_STATE
	PARSE_BLOCK_MAPPING_FIRST_KEY_STATE
	PARSE_BLOCK_MAPPING_KEY_STATE
	PARSE_BLOCK_MAPPING_VALUE_STATE
	PARSE_FLOW_SEQUENCE_FIRST_ENTRY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_KEY_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_VALUE_STATE
	PARSE_FLOW_SEQUENCE_ENTRY_MAPPING_END_STATE
	PARSE_FLOW_MAPPING_FIRST_KEY_STATE
	PARSE_FLOW_MAPPING_KEY_STATE
	PARSE_FLOW_MAPPING_VALUE_STATE
	PARSE_FLOW_MAPPING_EMPTY_VALUE_STATE
	PARSE_END_STATE
)

// simpleKey records a candidate position for a simple (unindented)
// mapping key encountered by the scanner, so it can be retroactively
// promoted to a KEY token if a ':' is found before the key's scope ends.
type simpleKey struct {
	possible     bool
	required     bool
	token_number int
	mark         Mark
}

// Parser holds the full state of the lexical scanner and event parser:
// the raw input, the decoded rune buffer, the token queue produced by
// the scanner, and the parser's own production-state stack.
type Parser struct {
	ErrorType ErrorType // Error type.
	Problem   string    // Error description.

	// The byte about which the problem occurred.
	ProblemOffset int
	ProblemValue  int
	ProblemMark   Mark

	// The error context.
	Context     string
	ContextMark Mark

	// hadError latches once the state machine has reported an error,
	// so that subsequent Parse calls keep returning io.EOF
	// instead of re-running a broken parse.
	hadError bool

	// Reader stuff

	read_handler func(parser *Parser, buffer []byte) (n int, err error)

	input_reader io.Reader
	input        []byte
	input_pos    int

	eof bool

	buffer     []byte
	buffer_pos int

	unread int

	raw_buffer     []byte
	raw_buffer_pos int

	encoding Encoding

	offset int
	mark   Mark

	// Comments

	head_comment []byte
	line_comment []byte
	foot_comment []byte
	tail_comment []byte
	stem_comment []byte

	comments      []Comment
	comments_head int

	// Scanner stuff

	stream_start_produced bool
	stream_end_produced   bool

	flow_level int

	tokens          []Token
	tokens_head     int
	tokens_parsed   int
	token_available bool

	indent  int
	indents []int

	simple_key_allowed bool
	simple_keys        []simpleKey

	// Parser stuff

	state  ParserState
	states []ParserState
	marks  []Mark

	tag_directives []TagDirective
}

// EmitterState identifies a state in the emitter state machine.
type EmitterState int

const (
	EMIT_STREAM_START_STATE EmitterState = iota
	EMIT_FIRST_DOCUMENT_START_STATE
	EMIT_DOCUMENT_START_STATE
	EMIT_DOCUMENT_CONTENT_STATE
	EMIT_DOCUMENT_END_STATE
	EMIT_FLOW_SEQUENCE_FIRST_ITEM_STATE
	EMIT_FLOW_SEQUENCE_TRAIL_ITEM_STATE
	EMIT_FLOW_SEQUENCE_ITEM_STATE
	EMIT_FLOW_MAPPING_FIRST_KEY_STATE
	EMIT_FLOW_MAPPING_TRAIL_KEY_STATE
	EMIT_FLOW_MAPPING_KEY_STATE
	EMIT_FLOW_MAPPING_SIMPLE_VALUE_STATE
	EMIT_FLOW_MAPPING_VALUE_STATE
	EMIT_BLOCK_SEQUENCE_FIRST_ITEM_STATE
	EMIT_BLOCK_SEQUENCE_ITEM_STATE
	EMIT_BLOCK_MAPPING_FIRST_KEY_STATE
	EMIT_BLOCK_MAPPING_KEY_STATE
	EMIT_BLOCK_MAPPING_SIMPLE_VALUE_STATE
	EMIT_BLOCK_MAPPING_VALUE_STATE
	EMIT_END_STATE
)

// anchorData holds the resolved anchor/alias text for the event
// currently being analyzed by the emitter.
type anchorData struct {
	anchor []byte
	alias  bool
}

// tagData holds the resolved tag handle/suffix for the event currently
// being analyzed by the emitter.
type tagData struct {
	handle []byte
	suffix []byte
}

// scalarData holds the resolved rendering of the scalar event currently
// being analyzed by the emitter: its value, the styles it's legal to
// use, and whether it spans multiple lines.
type scalarData struct {
	value                  []byte
	multiline              bool
	flow_plain_allowed     bool
	block_plain_allowed    bool
	single_quoted_allowed  bool
	block_allowed          bool
	style                  ScalarStyle
}

// Emitter holds the full state of the event-driven text renderer: its
// output target, the pending event queue, the indentation/style stack,
// and the analysis of whatever event is currently being written.
type Emitter struct {
	ErrorType ErrorType // Error type.
	Problem   string    // Error description.

	// Writer stuff

	write_handler func(emitter *Emitter, buffer []byte) error

	output_buffer *[]byte
	output_writer io.Writer

	buffer     []byte
	buffer_pos int

	raw_buffer     []byte
	raw_buffer_pos int

	encoding Encoding

	canonical   bool    // Canonical scalars and comments, e.g. "1" vs 1 (not implemented).
	BestIndent  int     // The number of indentation spaces.
	best_width  int     // The preferred wrap width, negative to disable wrapping.
	unicode     bool    // Allow unescaped non-ASCII characters.
	line_break  LineBreak // The preferred line break.

	state  EmitterState
	states []EmitterState

	events      []Event
	events_head int

	indents []int
	indent  int

	// CompactSequenceIndent folds the "- " of a block sequence entry
	// into the parent's indentation instead of adding two extra columns.
	CompactSequenceIndent bool

	flow_level int

	root_context       bool
	sequence_context   bool
	mapping_context    bool
	simple_key_context bool

	line       int
	column     int
	whitespace bool
	indention  bool
	space_above bool
	foot_indent int

	// OpenEnded tracks whether the previous document ended without an
	// explicit "..." marker, forcing "---" before the next one.
	OpenEnded bool

	tag_directives []TagDirective

	anchor_data anchorData
	tag_data    tagData
	scalar_data scalarData

	// Comments

	HeadComment []byte
	LineComment []byte
	FootComment []byte
	TailComment []byte

	key_line_comment []byte
}
