package css

// Selector is one parsed selector: a simple selector (TypeSelector,
// ClassSelector, IDSelector, UniversalSelector) or a CombinatorSelector
// joining two selectors. The set of implementations is closed.
type Selector interface {
	selector()
	String() string
}

// TypeSelector matches elements by tag name, e.g. "div".
type TypeSelector struct {
	Name string
}

// ClassSelector matches elements carrying a class, e.g. ".container".
type ClassSelector struct {
	Name string
}

// IDSelector matches the element with an id, e.g. "#main".
type IDSelector struct {
	Name string
}

// UniversalSelector matches any element, i.e. "*".
type UniversalSelector struct{}

// Combinator tells how a CombinatorSelector relates its two sides.
type Combinator int

const (
	DescendantCombinator      Combinator = iota // div p
	ChildCombinator                             // div > p
	AdjacentSiblingCombinator                   // div + p
	GeneralSiblingCombinator                    // div ~ p
)

var combinatorNames = [...]string{
	DescendantCombinator:      "descendant",
	ChildCombinator:           "child",
	AdjacentSiblingCombinator: "adjacent-sibling",
	GeneralSiblingCombinator:  "general-sibling",
}

func (c Combinator) String() string {
	if c >= 0 && int(c) < len(combinatorNames) {
		return combinatorNames[c]
	}
	return "unknown"
}

// CombinatorSelector joins two selectors. Chains grow left-associatively,
// so "a b > c" parses as (a b) > c.
type CombinatorSelector struct {
	Combinator  Combinator
	Left, Right Selector
}

func (TypeSelector) selector()       {}
func (ClassSelector) selector()      {}
func (IDSelector) selector()         {}
func (UniversalSelector) selector()  {}
func (CombinatorSelector) selector() {}

func (s TypeSelector) String() string    { return s.Name }
func (s ClassSelector) String() string   { return "." + s.Name }
func (s IDSelector) String() string      { return "#" + s.Name }
func (UniversalSelector) String() string { return "*" }

func (s CombinatorSelector) String() string {
	switch s.Combinator {
	case ChildCombinator:
		return s.Left.String() + " > " + s.Right.String()
	case AdjacentSiblingCombinator:
		return s.Left.String() + " + " + s.Right.String()
	case GeneralSiblingCombinator:
		return s.Left.String() + " ~ " + s.Right.String()
	default:
		return s.Left.String() + " " + s.Right.String()
	}
}
