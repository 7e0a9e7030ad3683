package menu

import (
	"github.com/aretw0/promptmenu/pkg/cast"
	"github.com/aretw0/promptmenu/pkg/domain"
)

// Config is the declarative description of one node.
type Config struct {
	Command   string
	Operation *domain.Operation
	Children  Children

	// Cast overrides the parent's cast chain when non-nil.
	Cast *cast.Chain
	// Validate overrides the parent's validation setting when non-nil.
	Validate *bool
}

// Children is the variant held in Config.Children. Its cases are Labels, External and Nodes;
// a nil value means the node has no children.
type Children interface {
	isChildren()
}

// Labels is a set of completion words for a leaf.
type Labels []string

// External is an opaque completion structure for a leaf, exported verbatim.
type External struct {
	Tree any
}

// Nodes are the child node configurations of an internal node, in order.
type Nodes []Config

func (Labels) isChildren()   {}
func (External) isChildren() {}
func (Nodes) isChildren()    {}

// Bool returns a pointer to b, for use in Config.Validate.
func Bool(b bool) *bool {
	return &b
}
