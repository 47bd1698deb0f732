package html

import (
	"sort"
	"strings"
)

type NodeType int

const (
	ElementNode NodeType = iota
	TextNode
	CommentNode
)

var nodeNames = [...]string{
	ElementNode: "Element",
	TextNode:    "Text",
	CommentNode: "Comment",
}

// String returns the name of the node type.
func (t NodeType) String() string {
	if t >= 0 && int(t) < len(nodeNames) {
		return nodeNames[t]
	}
	return "Unknown"
}

// Node is one node of a parsed tree. An element owns its children
// exclusively and the tree keeps no parent pointers, so plain recursion
// covers every traversal and no cycles can form. TagName and Attributes are
// set for elements; Text holds the payload of text and comment nodes.
// Attributes is nil for an element whose tag carried none, and an attribute
// name repeated in the source keeps the value seen last.
type Node struct {
	Type       NodeType
	TagName    string
	Attributes map[string]string
	Text       string
	Children   []*Node
}

// GetAttribute returns the value of the named attribute and whether it was
// present.
func (n *Node) GetAttribute(name string) (string, bool) {
	if n.Attributes == nil {
		return "", false
	}
	val, ok := n.Attributes[name]
	return val, ok
}

// TextContent returns the concatenated text of this node's subtree in
// document order. Comments contribute nothing.
func (n *Node) TextContent() string {
	var sb strings.Builder
	textContent(&sb, n)
	return sb.String()
}

func textContent(sb *strings.Builder, n *Node) {
	switch n.Type {
	case TextNode:
		sb.WriteString(n.Text)
	case ElementNode:
		for _, child := range n.Children {
			textContent(sb, child)
		}
	}
}

// Serialize returns the innerHTML of this node: the serialized HTML of all
// child nodes, but not the node's own tags.
func (n *Node) Serialize() string {
	var sb strings.Builder
	for _, child := range n.Children {
		serializeNode(&sb, child)
	}
	return sb.String()
}

// SerializeOuter returns the outerHTML of this node: the node's own tags
// plus all descendants.
func (n *Node) SerializeOuter() string {
	var sb strings.Builder
	serializeNode(&sb, n)
	return sb.String()
}

func serializeNode(sb *strings.Builder, n *Node) {
	switch n.Type {
	case TextNode:
		sb.WriteString(escapeHTML(n.Text))
		return
	case CommentNode:
		sb.WriteString("<!--")
		sb.WriteString(n.Text)
		sb.WriteString("-->")
		return
	}

	sb.WriteByte('<')
	sb.WriteString(n.TagName)

	// Sort attributes for deterministic output
	if len(n.Attributes) > 0 {
		keys := make([]string, 0, len(n.Attributes))
		for k := range n.Attributes {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			sb.WriteByte(' ')
			sb.WriteString(k)
			sb.WriteString(`="`)
			sb.WriteString(escapeAttr(n.Attributes[k]))
			sb.WriteByte('"')
		}
	}

	if isVoidElement(n.TagName) {
		sb.WriteString(">")
		return
	}

	sb.WriteByte('>')
	for _, child := range n.Children {
		serializeNode(sb, child)
	}
	sb.WriteString("</")
	sb.WriteString(n.TagName)
	sb.WriteByte('>')
}

func escapeHTML(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

func escapeAttr(s string) string {
	s = strings.ReplaceAll(s, "&", "&amp;")
	s = strings.ReplaceAll(s, `"`, "&quot;")
	s = strings.ReplaceAll(s, "<", "&lt;")
	s = strings.ReplaceAll(s, ">", "&gt;")
	return s
}

// isVoidElement reports whether tag names an element that never has
// children or a matching end tag. The match is case-insensitive.
func isVoidElement(tag string) bool {
	switch strings.ToLower(tag) {
	case "area", "base", "br", "col", "embed", "hr", "img", "input",
		"link", "meta", "param", "source", "track", "wbr":
		return true
	}
	return false
}
