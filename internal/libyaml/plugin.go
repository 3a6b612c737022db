// Copyright 2025 The go-yaml Project Contributors
// SPDX-License-Identifier: Apache-2.0

// Comment plugin hooks: by default the Composer attaches head/line/foot
// comments to nodes using the same rules classic go-yaml v3 used. A
// CommentPlugin lets a caller override that attachment at three points
// without forking the Composer.

package libyaml

// CommentContext carries the raw comment bytes the Composer captured
// for the node or event currently being processed.
type CommentContext struct {
	HeadComment []byte
	LineComment []byte
	FootComment []byte
	TailComment []byte
}

// MappingPairContext carries one freshly parsed key/value pair of a
// mapping, so a plugin can redistribute foot comments between the key,
// the value, and the mapping's previous entry.
type MappingPairContext struct {
	Key         *Node
	Value       *Node
	Mapping     *Node
	Block       bool
	TailComment []byte
}

// CommentPlugin intercepts comment attachment during composition. Each
// method returns handled=true to suppress the Composer's own default
// attachment logic for that call; returning false leaves the default
// behavior in place, so a plugin may override only the hooks it cares
// about.
type CommentPlugin interface {
	ProcessComment(node *Node, ctx *CommentContext) (bool, error)
	ProcessMappingPair(ctx *MappingPairContext) (bool, error)
	ProcessEndComments(node *Node, ctx *CommentContext) (bool, error)
}

// DefaultCommentBehavior implements CommentPlugin as a no-op, always
// deferring to the Composer's default attachment. Embed it in a plugin
// that only needs to override one or two of the three hooks.
type DefaultCommentBehavior struct{}

func (DefaultCommentBehavior) ProcessComment(*Node, *CommentContext) (bool, error) {
	return false, nil
}

func (DefaultCommentBehavior) ProcessMappingPair(*MappingPairContext) (bool, error) {
	return false, nil
}

func (DefaultCommentBehavior) ProcessEndComments(*Node, *CommentContext) (bool, error) {
	return false, nil
}

// runCommentPlugins calls ProcessComment on each registered plugin in
// order until one reports it handled the node; it returns whether any
// plugin did, so the caller can skip its default attachment.
func (p *Composer) runCommentPlugins(n *Node, ctx *CommentContext) bool {
	for _, pl := range p.opts.Plugins {
		handled, err := pl.ProcessComment(n, ctx)
		if err != nil {
			p.fail(err)
		}
		if handled {
			return true
		}
	}
	return false
}

// runMappingPairPlugins calls ProcessMappingPair on each registered
// plugin in order until one reports it handled the pair; it returns
// whether any plugin did, so the caller can skip its default logic.
func (p *Composer) runMappingPairPlugins(ctx *MappingPairContext) bool {
	for _, pl := range p.opts.Plugins {
		handled, err := pl.ProcessMappingPair(ctx)
		if err != nil {
			p.fail(err)
		}
		if handled {
			return true
		}
	}
	return false
}

// runEndCommentPlugins calls ProcessEndComments on each registered
// plugin in order until one reports it handled the node.
func (p *Composer) runEndCommentPlugins(n *Node, ctx *CommentContext) bool {
	for _, pl := range p.opts.Plugins {
		handled, err := pl.ProcessEndComments(n, ctx)
		if err != nil {
			p.fail(err)
		}
		if handled {
			return true
		}
	}
	return false
}
