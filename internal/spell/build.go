package spell

import "fmt"

// Token creates the leaf generator that always yields name.
func Token(name string) Node {
	return &Unit{Token: name}
}

// WithWeight wraps node with a non-negative selection weight. It always
// wraps: weighting an already-weighted node nests another layer rather than
// mutating the existing one, so the input stays usable as an unweighted
// building block.
func WithWeight(node Node, weight float64) (*Weighted, error) {
	if weight < 0 {
		return nil, fmt.Errorf("%w: got %v", ErrNegativeWeight, weight)
	}
	return &Weighted{Inner: node, Weight: weight}, nil
}

// Sequence merges a and b into a single ordered sequence. Merging with an
// operand that is already a Prod flattens it, so the result never nests a
// Prod inside a Prod. Child order always reflects left-to-right composition
// order. Operands are copied; only self-references keep shared identity.
func Sequence(a, b Node) *Prod {
	left, leftIsProd := a.(*Prod)
	right, rightIsProd := b.(*Prod)

	switch {
	case leftIsProd && rightIsProd:
		merged := left.clone().(*Prod)
		for _, child := range right.Children {
			merged.Children = append(merged.Children, child.clone())
		}
		return merged
	case leftIsProd:
		merged := left.clone().(*Prod)
		merged.Children = append(merged.Children, b.clone())
		return merged
	case rightIsProd:
		merged := right.clone().(*Prod)
		merged.Children = append([]Node{a.clone()}, merged.Children...)
		return merged
	default:
		return &Prod{Children: []Node{a.clone(), b.clone()}}
	}
}

// Alternative merges a and b into a single weighted choice. Operands must be
// Weighted or Sum nodes; anything else returns ErrUnweighted. Merging with an
// operand that is already a Sum flattens it, so the result never nests a Sum
// inside a Sum, and child order reflects left-to-right composition order.
// The combined distribution must have a positive total weight, otherwise
// ErrEmptyDistribution is returned.
func Alternative(a, b Node) (*Sum, error) {
	left, err := alternativeOperand(a)
	if err != nil {
		return nil, err
	}
	right, err := alternativeOperand(b)
	if err != nil {
		return nil, err
	}

	children := append(left, right...)
	total := 0.0
	for _, child := range children {
		total += child.Weight
	}
	if total <= 0 {
		return nil, ErrEmptyDistribution
	}
	return &Sum{Children: children}, nil
}

// alternativeOperand copies an Alternative operand into its weighted
// children. A Weighted contributes itself; a Sum contributes its children.
func alternativeOperand(node Node) ([]*Weighted, error) {
	switch n := node.(type) {
	case *Weighted:
		return []*Weighted{n.clone().(*Weighted)}, nil
	case *Sum:
		return n.clone().(*Sum).Children, nil
	default:
		return nil, fmt.Errorf("%w: got %T", ErrUnweighted, node)
	}
}

// Optional wraps element so its sample is included with probability equal to
// the element's weight, and omitted otherwise.
func Optional(element *Weighted) *Maybe {
	return &Maybe{Element: element.clone().(*Weighted)}
}

// SelfReference creates an unbound placeholder node. Bind it to a structure
// that contains it to build a recursive generator.
func SelfReference() *SelfRef {
	return &SelfRef{slot: &refSlot{}}
}

// Bind resolves ref to target. A self-reference is bound exactly once and
// the binding is visible through every copy of ref, including copies made by
// merges before the bind.
func Bind(ref *SelfRef, target Node) error {
	if ref == nil || ref.slot == nil {
		return fmt.Errorf("self-reference is required")
	}
	if target == nil {
		return fmt.Errorf("bind target is required")
	}
	if ref.slot.bound {
		return ErrAlreadyBound
	}
	ref.slot.target = target
	ref.slot.bound = true
	return nil
}
