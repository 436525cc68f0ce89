// Package spell implements the weighted random generator algebra behind the
// rand-wand engine.
//
// A generator is a graph of nodes composed with Token, WithWeight, Sequence,
// Alternative, Optional and SelfReference. Sample walks the graph with an
// injected random source and produces one concrete sequence of effect names.
// Weights are relative; they are never required to sum to one.
package spell

// Node is one expression in the generator algebra. The variant set is closed:
// Unit, Weighted, Sum, Prod, Maybe and SelfRef are the only implementations,
// and every consumer switches over all of them.
type Node interface {
	// clone returns a structural copy. Merges copy their operands so a
	// built generator is never aliased by later compositions. SelfRef is
	// the one exception: its identity must survive copying so that a
	// binding applied after the copy is visible everywhere.
	clone() Node
}

// Unit yields a single named effect. Leaf of the graph.
type Unit struct {
	Token string
}

// Weighted pairs a node with a non-negative selection weight. The weight is
// meaningful only to an enclosing Sum or Maybe; sampling a Weighted directly
// ignores it.
type Weighted struct {
	Inner  Node
	Weight float64
}

// Sum picks exactly one child, with probability proportional to its weight.
// Construction guarantees at least one child and a positive total weight.
type Sum struct {
	Children []*Weighted
}

// Prod samples every child in declared order and concatenates the results.
type Prod struct {
	Children []Node
}

// Maybe includes its element's sample with probability equal to the element's
// weight, and contributes nothing otherwise. Weights above 1 always include;
// weights at or below 0 never do.
type Maybe struct {
	Element *Weighted
}

// SelfRef is a placeholder resolved after construction via Bind, enabling
// recursive generators. Every copy of a SelfRef shares one registry slot, so
// binding the target later propagates to all copies.
type SelfRef struct {
	slot *refSlot
}

// refSlot is the registry entry a SelfRef resolves through. Copies of the
// same SelfRef hold the same slot.
type refSlot struct {
	target Node
	bound  bool
}

func (u *Unit) clone() Node {
	c := *u
	return &c
}

func (w *Weighted) clone() Node {
	return &Weighted{Inner: w.Inner.clone(), Weight: w.Weight}
}

func (s *Sum) clone() Node {
	children := make([]*Weighted, len(s.Children))
	for i, child := range s.Children {
		children[i] = child.clone().(*Weighted)
	}
	return &Sum{Children: children}
}

func (p *Prod) clone() Node {
	children := make([]Node, len(p.Children))
	for i, child := range p.Children {
		children[i] = child.clone()
	}
	return &Prod{Children: children}
}

func (m *Maybe) clone() Node {
	return &Maybe{Element: m.Element.clone().(*Weighted)}
}

// clone returns the SelfRef itself: the placeholder's identity is shared
// across copies so a later Bind reaches every structure built from it.
func (r *SelfRef) clone() Node {
	return r
}
