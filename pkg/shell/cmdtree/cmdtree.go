// ABOUTME: Read-only hierarchical description of valid command words, aliases, and argument slots.
// ABOUTME: Built once at startup; the editor walks it for matching, a separate walker prints help.

package cmdtree

// ArgSpec describes a positional argument slot on a node. When Values is
// empty the slot consumes one raw token verbatim; otherwise the token is
// matched against the enumerated values.
type ArgSpec struct {
	Name     string
	Required bool
	Values   []string
}

// Node is one position in the command tree. A node may have both
// subcommands and an argument slot; matching prefers the argument slot
// when one is present, mirroring how a command like "show ID" consumes
// its trailing token.
type Node struct {
	Name        string
	Aliases     []string
	Description string
	Arg         *ArgSpec

	children []*Node
}

// New creates a node with the given name and optional aliases.
func New(name string, aliases ...string) *Node {
	return &Node{Name: name, Aliases: aliases}
}

// WithDescription sets the one-line help text and returns the node.
func (n *Node) WithDescription(d string) *Node {
	n.Description = d
	return n
}

// WithArg attaches a positional argument slot and returns the node.
func (n *Node) WithArg(a *ArgSpec) *Node {
	n.Arg = a
	return n
}

// AddChildren appends subcommands and returns the node. Sibling names
// and aliases must be unique; the tree is built by hand at startup so
// collisions are a programming error, not a runtime condition.
func (n *Node) AddChildren(children ...*Node) *Node {
	n.children = append(n.children, children...)
	return n
}

// Children returns the subcommands in insertion order.
func (n *Node) Children() []*Node {
	return n.children
}

// HasChildren reports whether the node has subcommands.
func (n *Node) HasChildren() bool {
	return len(n.children) > 0
}

// Words returns the flat vocabulary at this position: every child's
// name and aliases. The caller hands it to the prefix matcher; it is
// rebuilt on every call so a matcher never outlives its tree position.
func (n *Node) Words() []string {
	words := make([]string, 0, len(n.children)*2)
	for _, c := range n.children {
		words = append(words, c.Name)
		words = append(words, c.Aliases...)
	}
	return words
}

// Find returns the child whose name or alias equals word.
func (n *Node) Find(word string) *Node {
	for _, c := range n.children {
		if c.Name == word {
			return c
		}
		for _, a := range c.Aliases {
			if a == word {
				return c
			}
		}
	}
	return nil
}
