// Package design defines the design-node tree produced from an HTML
// document: one node per source element, annotated with layout and style
// properties derived from utility classes and inline styles.
package design

import (
	"encoding/json"
)

// Node is a single element of the design tree. A parent exclusively owns its
// children; nodes are fully populated by the transformer before it returns
// and are not mutated afterwards.
type Node struct {
	Tag        string
	Classes    []string
	Text       *string
	Attributes map[string]string
	// Styles holds raw inline CSS declarations (property name to raw value),
	// populated only when the source element carried a style attribute. It is
	// internal state and is not serialized.
	Styles    map[string]string
	Figma     Styles
	Framework Framework
	Children  []*Node
}

// NewNode creates a node with initialized collections so the serialized form
// always carries [] and {} instead of null.
func NewNode(tag string) *Node {
	return &Node{
		Tag:        tag,
		Classes:    []string{},
		Attributes: map[string]string{},
		Children:   []*Node{},
	}
}

// SetText replaces the node text. Repeated calls overwrite: the last
// non-blank text-only child encountered during transformation wins.
func (n *Node) SetText(s string) {
	n.Text = &s
}

// Count returns the number of nodes in the tree rooted at n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// nodeJSON is the serialized shape of a node. Framework and raw inline
// styles are deliberately absent: framework is a document-wide classification
// and raw declarations are an intermediate artifact.
type nodeJSON struct {
	Tag        string            `json:"tag"`
	Classes    []string          `json:"classes"`
	Text       *string           `json:"text"`
	Attributes map[string]string `json:"attributes"`
	Figma      Styles            `json:"figma_styles"`
	Children   []*Node           `json:"children"`
}

func (n *Node) MarshalJSON() ([]byte, error) {
	out := nodeJSON{
		Tag:        n.Tag,
		Classes:    n.Classes,
		Text:       n.Text,
		Attributes: n.Attributes,
		Figma:      n.Figma,
		Children:   n.Children,
	}
	if out.Classes == nil {
		out.Classes = []string{}
	}
	if out.Attributes == nil {
		out.Attributes = map[string]string{}
	}
	if out.Children == nil {
		out.Children = []*Node{}
	}
	return json.Marshal(out)
}

func (n *Node) UnmarshalJSON(data []byte) error {
	var in nodeJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	n.Tag = in.Tag
	n.Classes = in.Classes
	n.Text = in.Text
	n.Attributes = in.Attributes
	n.Figma = in.Figma
	n.Children = in.Children
	if n.Classes == nil {
		n.Classes = []string{}
	}
	if n.Attributes == nil {
		n.Attributes = map[string]string{}
	}
	if n.Children == nil {
		n.Children = []*Node{}
	}
	return nil
}
