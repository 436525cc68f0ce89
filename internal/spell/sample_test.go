package spell

import (
	"errors"
	"math/rand"
	"testing"
)

// scriptedSource replays a fixed list of draws. It panics when a test
// consumes more randomness than it scripted.
type scriptedSource struct {
	values []float64
	next   int
}

func (s *scriptedSource) Float64() float64 {
	if s.next >= len(s.values) {
		panic("scripted source exhausted")
	}
	v := s.values[s.next]
	s.next++
	return v
}

// TestSampleUnit ensures a token samples to itself.
func TestSampleUnit(t *testing.T) {
	got, err := Sample(Token("spark"), &scriptedSource{})
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 1 || got[0] != "spark" {
		t.Fatalf("unexpected sample: %v", got)
	}
}

// TestSampleWeightedForwards ensures a weight wrapper is transparent to
// sampling and consumes no randomness.
func TestSampleWeightedForwards(t *testing.T) {
	w, err := WithWeight(Token("spark"), 7)
	if err != nil {
		t.Fatalf("weight: %v", err)
	}
	got, err := Sample(w, &scriptedSource{})
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 1 || got[0] != "spark" {
		t.Fatalf("unexpected sample: %v", got)
	}
}

// TestSampleSequenceKeepsOrder ensures a branch-free sequence always yields
// its tokens in declared order without consuming randomness.
func TestSampleSequenceKeepsOrder(t *testing.T) {
	x, _ := WithWeight(Token("X"), 1)
	y, _ := WithWeight(Token("Y"), 1)
	z, _ := WithWeight(Token("Z"), 1)
	seq := Sequence(Sequence(x, y), z)

	for i := 0; i < 5; i++ {
		got, err := Sample(seq, &scriptedSource{})
		if err != nil {
			t.Fatalf("sample: %v", err)
		}
		if len(got) != 3 || got[0] != "X" || got[1] != "Y" || got[2] != "Z" {
			t.Fatalf("unexpected sample: %v", got)
		}
	}
}

// TestSampleSequenceMatchesOperandConcatenation ensures sampling a merged
// sequence equals sampling each operand against the same draw sequence.
func TestSampleSequenceMatchesOperandConcatenation(t *testing.T) {
	a, _ := WithWeight(Token("A"), 1)
	b, _ := WithWeight(Token("B"), 3)
	alt, err := Alternative(a, b)
	if err != nil {
		t.Fatalf("alternative: %v", err)
	}
	seq := Sequence(alt, alt)

	seed := int64(11)
	merged, err := Sample(seq, rand.New(rand.NewSource(seed)))
	if err != nil {
		t.Fatalf("sample merged: %v", err)
	}

	src := rand.New(rand.NewSource(seed))
	first, err := Sample(alt, src)
	if err != nil {
		t.Fatalf("sample first operand: %v", err)
	}
	second, err := Sample(alt, src)
	if err != nil {
		t.Fatalf("sample second operand: %v", err)
	}
	want := append(append([]string{}, first...), second...)
	if len(merged) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(merged))
	}
	for i := range want {
		if merged[i] != want[i] {
			t.Fatalf("token %d = %q, want %q", i, merged[i], want[i])
		}
	}
}

// TestSampleAlternativeFrequencies ensures even weights converge to even
// selection frequencies under a seeded source.
func TestSampleAlternativeFrequencies(t *testing.T) {
	a, _ := WithWeight(Token("A"), 1)
	b, _ := WithWeight(Token("B"), 1)
	alt, err := Alternative(a, b)
	if err != nil {
		t.Fatalf("alternative: %v", err)
	}

	src := rand.New(rand.NewSource(42))
	const trials = 10000
	counts := map[string]int{}
	for i := 0; i < trials; i++ {
		got, err := Sample(alt, src)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if len(got) != 1 {
			t.Fatalf("expected single token, got %v", got)
		}
		counts[got[0]]++
	}
	for _, token := range []string{"A", "B"} {
		freq := float64(counts[token]) / trials
		if freq < 0.45 || freq > 0.55 {
			t.Fatalf("frequency of %s = %v, want within [0.45, 0.55]", token, freq)
		}
	}
}

// TestSampleAlternativeProportions ensures uneven weights split probability
// mass proportionally.
func TestSampleAlternativeProportions(t *testing.T) {
	a, _ := WithWeight(Token("A"), 1)
	b, _ := WithWeight(Token("B"), 3)
	alt, err := Alternative(a, b)
	if err != nil {
		t.Fatalf("alternative: %v", err)
	}

	src := rand.New(rand.NewSource(7))
	const trials = 10000
	hits := 0
	for i := 0; i < trials; i++ {
		got, err := Sample(alt, src)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if got[0] == "B" {
			hits++
		}
	}
	freq := float64(hits) / trials
	if freq < 0.70 || freq > 0.80 {
		t.Fatalf("frequency of B = %v, want within [0.70, 0.80]", freq)
	}
}

// TestSampleSumBoundary ensures the right-closed boundary selects the first
// child at zero and the last child as the draw approaches the total.
func TestSampleSumBoundary(t *testing.T) {
	a, _ := WithWeight(Token("A"), 1)
	b, _ := WithWeight(Token("B"), 1)
	alt, err := Alternative(a, b)
	if err != nil {
		t.Fatalf("alternative: %v", err)
	}

	got, err := Sample(alt, &scriptedSource{values: []float64{0}})
	if err != nil {
		t.Fatalf("sample at zero: %v", err)
	}
	if got[0] != "A" {
		t.Fatalf("draw 0 selected %q, want A", got[0])
	}

	got, err = Sample(alt, &scriptedSource{values: []float64{0.9999999}})
	if err != nil {
		t.Fatalf("sample near one: %v", err)
	}
	if got[0] != "B" {
		t.Fatalf("draw near 1 selected %q, want B", got[0])
	}
}

// TestSampleMaybeBoundaries ensures inclusion weights of one and zero are
// deterministic across many trials.
func TestSampleMaybeBoundaries(t *testing.T) {
	always, _ := WithWeight(Token("X"), 1)
	never, _ := WithWeight(Token("X"), 0)
	over, _ := WithWeight(Token("X"), 1.5)

	src := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		got, err := Sample(Optional(always), src)
		if err != nil {
			t.Fatalf("sample always: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("weight 1 excluded on trial %d", i)
		}

		got, err = Sample(Optional(over), src)
		if err != nil {
			t.Fatalf("sample over: %v", err)
		}
		if len(got) != 1 {
			t.Fatalf("weight 1.5 excluded on trial %d", i)
		}

		got, err = Sample(Optional(never), src)
		if err != nil {
			t.Fatalf("sample never: %v", err)
		}
		if len(got) != 0 {
			t.Fatalf("weight 0 included on trial %d", i)
		}
	}
}

// TestSampleMaybeHalf ensures a 0.5 inclusion weight includes roughly half
// the time.
func TestSampleMaybeHalf(t *testing.T) {
	half, _ := WithWeight(Token("X"), 0.5)
	opt := Optional(half)

	src := rand.New(rand.NewSource(5))
	const trials = 10000
	included := 0
	for i := 0; i < trials; i++ {
		got, err := Sample(opt, src)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if len(got) == 1 {
			included++
		}
	}
	freq := float64(included) / trials
	if freq < 0.45 || freq > 0.55 {
		t.Fatalf("inclusion frequency = %v, want within [0.45, 0.55]", freq)
	}
}

// TestSampleUnboundReference ensures sampling an unbound self-reference
// fails.
func TestSampleUnboundReference(t *testing.T) {
	seq := Sequence(Token("a"), SelfReference())
	if _, err := Sample(seq, &scriptedSource{}); !errors.Is(err, ErrUnboundReference) {
		t.Fatalf("sample error = %v, want %v", err, ErrUnboundReference)
	}
}

// TestSampleZeroWeightRecursionDegenerates ensures a recursive branch with
// weight zero never fires, so every draw takes the terminating alternative.
func TestSampleZeroWeightRecursionDegenerates(t *testing.T) {
	ref := SelfReference()
	recurse, _ := WithWeight(Sequence(Token("step"), ref), 0)
	stop, _ := WithWeight(Token("end"), 1)
	alt, err := Alternative(stop, recurse)
	if err != nil {
		t.Fatalf("alternative: %v", err)
	}
	if err := Bind(ref, alt); err != nil {
		t.Fatalf("bind: %v", err)
	}

	src := rand.New(rand.NewSource(9))
	for i := 0; i < 100; i++ {
		got, err := Sample(alt, src)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if len(got) != 1 || got[0] != "end" {
			t.Fatalf("trial %d sampled %v, want [end]", i, got)
		}
	}
}

// TestSampleRecursiveChainTerminates ensures a properly weighted recursive
// generator terminates and always closes with its terminator token.
func TestSampleRecursiveChainTerminates(t *testing.T) {
	ref := SelfReference()
	recurse, _ := WithWeight(Sequence(Token("step"), ref), 0.3)
	stop, _ := WithWeight(Token("end"), 0.7)
	alt, err := Alternative(stop, recurse)
	if err != nil {
		t.Fatalf("alternative: %v", err)
	}
	if err := Bind(ref, alt); err != nil {
		t.Fatalf("bind: %v", err)
	}

	src := rand.New(rand.NewSource(13))
	sawRecursion := false
	for i := 0; i < 200; i++ {
		got, err := Sample(alt, src)
		if err != nil {
			t.Fatalf("sample %d: %v", i, err)
		}
		if len(got) == 0 || got[len(got)-1] != "end" {
			t.Fatalf("trial %d sampled %v, want trailing end", i, got)
		}
		for _, token := range got[:len(got)-1] {
			if token != "step" {
				t.Fatalf("trial %d sampled %v, want only step before end", i, got)
			}
		}
		if len(got) > 1 {
			sawRecursion = true
		}
	}
	if !sawRecursion {
		t.Fatal("expected at least one recursive expansion over 200 trials")
	}
}

// TestSampleDepthLimit ensures a generator that always recurses reports the
// depth ceiling instead of exhausting the stack.
func TestSampleDepthLimit(t *testing.T) {
	ref := SelfReference()
	loop, _ := WithWeight(ref, 1)
	dead, _ := WithWeight(Token("unreachable"), 0)
	alt, err := Alternative(loop, dead)
	if err != nil {
		t.Fatalf("alternative: %v", err)
	}
	if err := Bind(ref, alt); err != nil {
		t.Fatalf("bind: %v", err)
	}

	if _, err := Sample(alt, rand.New(rand.NewSource(1))); !errors.Is(err, ErrDepthLimit) {
		t.Fatalf("sample error = %v, want %v", err, ErrDepthLimit)
	}
}

// TestSampleEmptySequence ensures an all-declining graph yields the empty
// sequence rather than an error.
func TestSampleEmptySequence(t *testing.T) {
	never, _ := WithWeight(Token("X"), 0)
	seq := Sequence(Optional(never), Optional(never))
	got, err := Sample(seq, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty sequence, got %v", got)
	}
}
