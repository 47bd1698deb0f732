package html

import "testing"

// makeTree builds <div id="parent"><span>hello</span><p>world</p></div>.
func makeTree() *Node {
	return &Node{
		Type:       ElementNode,
		TagName:    "div",
		Attributes: map[string]string{"id": "parent"},
		Children: []*Node{
			{Type: ElementNode, TagName: "span", Children: []*Node{{Type: TextNode, Text: "hello"}}},
			{Type: ElementNode, TagName: "p", Children: []*Node{{Type: TextNode, Text: "world"}}},
		},
	}
}

func TestGetAttribute(t *testing.T) {
	parent := makeTree()
	id, ok := parent.GetAttribute("id")
	if !ok || id != "parent" {
		t.Errorf("GetAttribute(id) = %q, %v; want %q, true", id, ok, "parent")
	}
	if _, ok := parent.GetAttribute("class"); ok {
		t.Error("GetAttribute of a missing attribute should report false")
	}

	span := parent.Children[0]
	if _, ok := span.GetAttribute("id"); ok {
		t.Error("GetAttribute on a node without attributes should report false")
	}
}

func TestTextContent(t *testing.T) {
	parent := makeTree()
	if got := parent.TextContent(); got != "helloworld" {
		t.Errorf("TextContent() = %q, want %q", got, "helloworld")
	}
}

func TestTextContentSkipsComments(t *testing.T) {
	nodes, err := Parse("<div>a<span>b</span><!-- c -->d</div>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := nodes[0].TextContent(); got != "abd" {
		t.Errorf("TextContent() = %q, want %q", got, "abd")
	}
}

func TestSerialize(t *testing.T) {
	parent := makeTree()
	got := parent.Serialize()
	want := "<span>hello</span><p>world</p>"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeOuter(t *testing.T) {
	parent := makeTree()
	got := parent.SerializeOuter()
	want := `<div id="parent"><span>hello</span><p>world</p></div>`
	if got != want {
		t.Errorf("SerializeOuter() = %q, want %q", got, want)
	}
}

func TestSerializeVoidElement(t *testing.T) {
	n := &Node{
		Type:     ElementNode,
		TagName:  "div",
		Children: []*Node{{Type: ElementNode, TagName: "br"}},
	}
	got := n.Serialize()
	want := "<br>"
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeEscaping(t *testing.T) {
	n := &Node{
		Type:     ElementNode,
		TagName:  "p",
		Children: []*Node{{Type: TextNode, Text: `<b>"hello" & 'world'</b>`}},
	}
	got := n.Serialize()
	want := `&lt;b&gt;"hello" &amp; 'world'&lt;/b&gt;`
	if got != want {
		t.Errorf("Serialize() = %q, want %q", got, want)
	}
}

func TestSerializeAttributes(t *testing.T) {
	n := &Node{
		Type:       ElementNode,
		TagName:    "a",
		Attributes: map[string]string{"href": "/test", "class": "link"},
		Children:   []*Node{{Type: TextNode, Text: "click"}},
	}
	got := n.SerializeOuter()
	// Attributes sorted alphabetically
	want := `<a class="link" href="/test">click</a>`
	if got != want {
		t.Errorf("SerializeOuter() = %q, want %q", got, want)
	}
}

func TestSerializeAttributeEscaping(t *testing.T) {
	n := &Node{
		Type:       ElementNode,
		TagName:    "a",
		Attributes: map[string]string{"title": `say "hi" & go`},
	}
	got := n.SerializeOuter()
	want := `<a title="say &quot;hi&quot; &amp; go"></a>`
	if got != want {
		t.Errorf("SerializeOuter() = %q, want %q", got, want)
	}
}

func TestSerializeComment(t *testing.T) {
	n := &Node{Type: CommentNode, Text: " note "}
	got := n.SerializeOuter()
	want := "<!-- note -->"
	if got != want {
		t.Errorf("SerializeOuter() = %q, want %q", got, want)
	}
}

// TestSerializeRoundTrip verifies that a parsed tree serializes back to the
// markup it came from when that markup is already in canonical form.
func TestSerializeRoundTrip(t *testing.T) {
	input := `<div class="box" id="d"><p>hi<br>there</p><!--note--></div>`
	nodes, err := Parse(input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(nodes))
	}
	if got := nodes[0].SerializeOuter(); got != input {
		t.Errorf("SerializeOuter() = %q, want %q", got, input)
	}
}

func TestNodeTypeString(t *testing.T) {
	if got := ElementNode.String(); got != "Element" {
		t.Errorf("got %q, want %q", got, "Element")
	}
	if got := CommentNode.String(); got != "Comment" {
		t.Errorf("got %q, want %q", got, "Comment")
	}
	if got := NodeType(9).String(); got != "Unknown" {
		t.Errorf("got %q, want %q", got, "Unknown")
	}
}
