// api.go is the thin public entry point, mirroring the teacher's
// builder/api.go: one orchestrator (Build) creates a fresh tree,
// resolves config from options, and runs constructors in order. Each
// topology factory lives in its own impl_*.go file.
package treebuilder

import (
	"fmt"

	"github.com/arborist-go/phylocore/core"
)

// Build creates a new core.Tree, resolves a config from opts, and
// applies cons in order. Any constructor error is wrapped with
// "treebuilder: %w" and returned immediately with no partial tree; the
// resulting tree is canonicalized (core.Tree.Canonize) before return so
// every topology factory hands back a stable, comparable shape.
func Build(opts []Option, cons ...Constructor) (*core.Tree, error) {
	cfg := newConfig(opts...)
	t := core.New()

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("treebuilder.Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(t, *cfg); err != nil {
			return nil, fmt.Errorf("treebuilder.Build: %w", err)
		}
	}

	if t.Base() == core.NodeID(core.None) {
		return nil, fmt.Errorf("treebuilder.Build: constructor left no base node: %w", ErrConstructFailed)
	}
	if err := t.Canonize(); err != nil {
		return nil, fmt.Errorf("treebuilder.Build: %w", err)
	}
	return t, nil
}
