package spell

import "fmt"

// Source produces uniform random values in [0, 1). *math/rand.Rand satisfies
// it; tests inject scripted sources for exact draws.
type Source interface {
	Float64() float64
}

// maxDepth bounds recursive descent per Sample call. A generator whose
// self-referencing branch wins with probability 1 reports ErrDepthLimit
// instead of exhausting the stack.
const maxDepth = 10_000

// Sample draws one effect sequence from node using src.
//
// # Determinism
//
// Sample is deterministic with respect to src: the same node graph and the
// same draw sequence always produce the same result. Randomness is consumed
// only at Sum and Maybe nodes, in declared child order.
//
// # Evaluation
//
//   - Unit yields its single token.
//   - Weighted forwards to its inner node; the weight only matters to an
//     enclosing Sum or Maybe.
//   - Prod samples each child in order and concatenates the results.
//   - Sum draws r in [0, total) and selects the first child whose cumulative
//     weight reaches r. The boundary is right-closed (cum >= r) so the last
//     child is selected even when r rounds up to the total exactly.
//   - Maybe includes its element's sample when the draw lands below the
//     element's weight, and yields nothing otherwise.
//   - SelfRef recurses into its bound target, or fails with
//     ErrUnboundReference when Bind was never called.
//
// A nil or empty result is the empty sequence; that is a valid outcome, for
// example when every Maybe declines.
func Sample(node Node, src Source) ([]string, error) {
	return sample(node, src, 0)
}

func sample(node Node, src Source, depth int) ([]string, error) {
	if depth > maxDepth {
		return nil, ErrDepthLimit
	}

	switch n := node.(type) {
	case *Unit:
		return []string{n.Token}, nil
	case *Weighted:
		return sample(n.Inner, src, depth+1)
	case *Prod:
		var out []string
		for _, child := range n.Children {
			part, err := sample(child, src, depth+1)
			if err != nil {
				return nil, err
			}
			out = append(out, part...)
		}
		return out, nil
	case *Sum:
		total := 0.0
		for _, child := range n.Children {
			total += child.Weight
		}
		r := src.Float64() * total
		cum := 0.0
		for _, child := range n.Children {
			cum += child.Weight
			if cum >= r {
				return sample(child.Inner, src, depth+1)
			}
		}
		// Unreachable while total > 0: the right-closed boundary
		// guarantees the last child matches.
		return nil, ErrNoBranch
	case *Maybe:
		if src.Float64() < n.Element.Weight {
			return sample(n.Element.Inner, src, depth+1)
		}
		return nil, nil
	case *SelfRef:
		if n.slot == nil || !n.slot.bound {
			return nil, ErrUnboundReference
		}
		return sample(n.slot.target, src, depth+1)
	default:
		// The variant set is closed; a new variant must be handled here.
		panic(fmt.Sprintf("spell: unhandled node variant %T", node))
	}
}
