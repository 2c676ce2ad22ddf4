// ABOUTME: Help text renderer: walks a node's children and formats one line per command.
// ABOUTME: Keeps help output derived from the tree so the two can never drift apart.

package cmdtree

import "strings"

// HelpLines renders one help line per child of n: the command words
// (name, aliases, argument placeholder) padded to a common width,
// followed by the description. prefix is prepended to the words of
// every line, so nested help can read "change show ID".
func HelpLines(n *Node, prefix string) []string {
	words := make([]string, 0, len(n.children))
	maxw := 0
	for _, c := range n.children {
		w := prefix + helpWords(c)
		words = append(words, w)
		maxw = max(maxw, len(w))
	}

	lines := make([]string, 0, len(words))
	for i, c := range n.children {
		line := words[i]
		if c.Description != "" {
			line += strings.Repeat(" ", maxw-len(words[i])+3) + c.Description
		}
		lines = append(lines, line)
	}
	return lines
}

// helpWords formats a node's invocation: name, comma-joined aliases,
// and its argument slot when it has one.
func helpWords(n *Node) string {
	w := strings.Join(append([]string{n.Name}, n.Aliases...), ", ")
	if n.Arg != nil {
		if n.Arg.Required {
			w += " " + n.Arg.Name
		} else {
			w += " [" + n.Arg.Name + "...]"
		}
	}
	return w
}
