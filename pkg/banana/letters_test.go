package banana

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestMultisetSubPreservesOrderAndReuse(t *testing.T) {
	m, err := MultisetFromString("CABBAGE")
	if err != nil {
		t.Fatalf("MultisetFromString: %v", err)
	}
	rest := m.Sub([]string{"C", "A", "B"})
	want := Multiset{"A", "B", "G", "E"}
	if diff := cmp.Diff(want, rest); diff != "" {
		t.Errorf("Sub() mismatch (-want +got):\n%s", diff)
	}
}

func TestMultisetSubIgnoresAbsentLetters(t *testing.T) {
	m, _ := MultisetFromString("CAB")
	rest := m.Sub([]string{"Z"})
	if rest.Len() != 3 {
		t.Errorf("Len() = %d, want 3 (unaffected by an absent letter)", rest.Len())
	}
}

func TestMultisetContainsSubmultiset(t *testing.T) {
	m, _ := MultisetFromString("CABBAGE")
	if !m.ContainsSubmultiset("CAB") {
		t.Error("expected CAB to be buildable from CABBAGE")
	}
	if !m.ContainsSubmultiset("BB") {
		t.Error("expected BB to be buildable from CABBAGE (it has two Bs)")
	}
	if m.ContainsSubmultiset("CABBAGES") {
		t.Error("expected CABBAGES not to be buildable from CABBAGE (no S)")
	}
}

func TestMultisetAdd(t *testing.T) {
	m, _ := MultisetFromString("CAB")
	added := m.Add("D")
	if added.Len() != 4 {
		t.Errorf("Len() = %d, want 4", added.Len())
	}
	if m.Len() != 3 {
		t.Error("Add must not mutate the receiver")
	}
}

func TestLetterHistogramFrequenciesSumToOne(t *testing.T) {
	h, err := NewLetterHistogram([]string{"CAB", "BAD"})
	if err != nil {
		t.Fatalf("NewLetterHistogram: %v", err)
	}
	var total float64
	for _, letter := range []string{"A", "B", "C", "D"} {
		f, err := h.Frequency(letter)
		if err != nil {
			t.Fatalf("Frequency(%q): %v", letter, err)
		}
		total += f
	}
	if diff := total - 1.0; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("frequencies summed to %v, want 1.0", total)
	}
}

func TestDefaultCorpusTotalsStandardDistribution(t *testing.T) {
	freq, err := DefaultCorpus.Frequency("E")
	if err != nil {
		t.Fatalf("Frequency: %v", err)
	}
	want := 18.0 / 144.0
	if diff := freq - want; diff > 1e-9 || diff < -1e-9 {
		t.Errorf("Frequency(E) = %v, want %v", freq, want)
	}
}
