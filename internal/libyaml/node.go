// Copyright 2011-2019 Canonical Ltd
// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// The Node tree: the intermediate representation produced by the
// Composer and consumed by the Resolver, Constructor, Representer,
// and Serializer.

package libyaml

import (
	"encoding/base64"
	"unicode/utf8"
)

// Kind identifies the type of a Node.
type Kind uint32

const (
	DocumentNode Kind = 1 << iota
	SequenceNode
	MappingNode
	ScalarNode
	AliasNode
	// StreamNode marks a stream boundary when composing is configured
	// to produce stream-level nodes (WithStreamNodes): one is returned
	// before each document and one at the end. It has no content.
	StreamNode
)

// Style describes the formatting of a Node: whether it carries an
// explicit tag, what quoting or block form a scalar used, and whether
// a collection was written in flow form.
type Style styleInt

const (
	TaggedStyle Style = 1 << iota
	DoubleQuotedStyle
	SingleQuotedStyle
	LiteralStyle
	FoldedStyle
	FlowStyle
)

// StreamVersionDirective records a document's "%YAML" directive.
type StreamVersionDirective struct {
	Major int
	Minor int
}

// StreamTagDirective records a document's "%TAG" directive.
type StreamTagDirective struct {
	Handle string
	Prefix string
}

// Node represents an element in the YAML document hierarchy. While
// documents are typically encoded and decoded into higher level types
// such as structs and maps, Node is an intermediate representation
// that allows detailed control over the content being decoded or
// encoded, including access to position information and comments.
type Node struct {
	// Kind defines whether the node is a document, sequence, mapping,
	// scalar, alias, or a whole stream.
	Kind Kind

	// Style allows customizing the formatting of the node.
	Style Style

	// Tag holds the YAML tag identifying the node type. When
	// unspecified by the node content itself, it's resolved based
	// on the node properties during parsing, or inferred from the Go
	// value being represented during marshaling.
	Tag string

	// Value holds the unescaped tag value for scalar nodes.
	Value string

	// Anchor holds the anchor name for this node, if any.
	Anchor string

	// Alias holds the node this alias node points to, if this is an
	// alias node (Kind == AliasNode).
	Alias *Node

	// Content holds contained nodes for documents, mappings, and
	// sequences.
	Content []*Node

	// HeadComment, LineComment, and FootComment contain comments
	// that immediately precede, follow on the same line as, or
	// follow one blank line after the node.
	HeadComment string
	LineComment string
	FootComment string

	// Line and Column hold the node position in the original YAML
	// document, or where it would be if the document was marshaled.
	Line   int
	Column int

	// Encoding holds the byte-order encoding of the stream this node
	// was read from. Only meaningful when Kind == StreamNode.
	Encoding Encoding

	// Version and TagDirectives hold the directives observed on the
	// first document of a stream. Only meaningful when Kind == StreamNode.
	Version       *StreamVersionDirective
	TagDirectives []StreamTagDirective
}

// IsZero reports whether the node has no content, making it the
// equivalent of an empty value for omitempty purposes.
func (n *Node) IsZero() bool {
	return n.Kind == 0 && n.Style == 0 && n.Tag == "" && n.Value == "" &&
		n.Anchor == "" && n.Alias == nil && len(n.Content) == 0
}

// ShortTag returns the node's tag in its short "!!name" form, applying
// the shorthand rule for explicitly quoted/typed empty tags.
func (n *Node) ShortTag() string {
	if n.indicatedString() {
		return strTag
	}
	if n.Tag == "" {
		if n.Kind == MappingNode {
			return mapTag
		}
		if n.Kind == SequenceNode {
			return seqTag
		}
		return ""
	}
	return shortTag(n.Tag)
}

// LongTag returns the node's tag in its fully qualified
// "tag:yaml.org,2002:name" form.
func (n *Node) LongTag() string {
	return longTag(n.ShortTag())
}

// indicatedString reports whether the node's scalar style
// (quoted or block) implies an explicit string tag, regardless of
// what the value would otherwise resolve to.
func (n *Node) indicatedString() bool {
	return n.Kind == ScalarNode &&
		(shortTag(n.Tag) == strTag) &&
		(n.Style&(DoubleQuotedStyle|SingleQuotedStyle|LiteralStyle|FoldedStyle) != 0)
}

// SetString is a convenience function that sets the node to a string
// value and defines its style in a pleasant way depending on its
// content, properly handling values that cannot be represented as
// valid UTF-8 by encoding them as base64 !!binary scalars instead.
func (n *Node) SetString(s string) {
	n.Kind = ScalarNode
	if utf8.ValidString(s) {
		n.Value = s
		n.Tag = strTag
	} else {
		n.Value = base64.StdEncoding.EncodeToString([]byte(s))
		n.Tag = binaryTag
	}
	if shouldUseLiteralStyle(n.Value) {
		n.Style = LiteralStyle
	} else {
		n.Style = 0
	}
}
