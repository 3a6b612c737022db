//
// Copyright (c) 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0
//

// Package v3 provides a comment plugin with v3-specific behavior.
//
// This plugin implements the reference comment handling strategy used in
// go-yaml v3, preserving comments during load/dump cycles.
package v3

import "github.com/yamlcore/goyaml/internal/libyaml"

// Plugin handles YAML comment preservation with v3-specific behavior.
//
// This is the reference implementation of the CommentPlugin interface,
// demonstrating how comments are attached to nodes during composition.
// It only overrides ProcessComment; mapping-pair and end-of-collection
// comment redistribution fall back to the Composer's own defaults,
// which already implement the v3 foot-comment rules.
type Plugin struct {
	libyaml.DefaultCommentBehavior
}

// New returns a new v3 comments plugin.
//
// The v3 plugin preserves comments using the strategy from go-yaml v3:
// - Head comments attach to the following element
// - Line comments attach to the current element
// - Foot comments attach to the preceding element
func New() *Plugin {
	return &Plugin{}
}

// ProcessComment transfers comments from the parser event to the node.
//
// This is the core v3 comment attachment logic: head/line/foot
// comments captured by the scanner are copied onto the node verbatim,
// with no further transformation.
func (p *Plugin) ProcessComment(node *libyaml.Node, ctx *libyaml.CommentContext) (bool, error) {
	node.HeadComment = string(ctx.HeadComment)
	node.LineComment = string(ctx.LineComment)
	node.FootComment = string(ctx.FootComment)
	return true, nil
}
