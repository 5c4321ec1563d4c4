// File: context.go
// Title: Evaluation Context
// Description: Chain of named scopes entered while evaluating a document.
//              Each run starts from a root "<program>" context; objects and
//              arrays push a child for every entry so errors can name the
//              path they occurred under.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial context chain

package interp

import (
	"strings"

	"github.com/msto63/koy/foundation/koy/source"
)

// RootName is the display name of the context every run starts from
const RootName = "<program>"

// Context is one link of the evaluation chain
type Context struct {
	DisplayName string
	Parent      *Context
	ParentEntry *source.Position
}

// NewContext creates a root context
func NewContext(displayName string) *Context {
	return &Context{DisplayName: displayName}
}

// Child creates a context nested under c, entered at entry
func (c *Context) Child(displayName string, entry source.Position) *Context {
	return &Context{DisplayName: displayName, Parent: c, ParentEntry: &entry}
}

// Trace lists display names from the root down to c
func (c *Context) Trace() []string {
	var names []string
	for ctx := c; ctx != nil; ctx = ctx.Parent {
		names = append(names, ctx.DisplayName)
	}
	for i, j := 0, len(names)-1; i < j; i, j = i+1, j-1 {
		names[i], names[j] = names[j], names[i]
	}
	return names
}

// Path joins the trace into a selector such as <program>.server.ports[1].
// Array indices are stored as "[n]" and attach without a dot.
func (c *Context) Path() string {
	var b strings.Builder
	for i, name := range c.Trace() {
		if i > 0 && !strings.HasPrefix(name, "[") {
			b.WriteByte('.')
		}
		b.WriteString(name)
	}
	return b.String()
}
