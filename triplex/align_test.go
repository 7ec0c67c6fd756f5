package triplex

import (
	"strings"
	"testing"

	"github.com/pmezard/go-difflib/difflib"
)

func diffStrings(t *testing.T, want, got string) {
	t.Helper()
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		t.Fatalf("computing diff: %v", err)
	}
	t.Errorf("alignment mismatch:\n%s", diff)
}

func TestAlignProducesThreePartString(t *testing.T) {
	cfg := DefaultConfig()
	params := mustParams(t, 1, 0.9, 4, 30, 1, 10)
	pen := mustPen(t, 10, 7, 9, 5, 0)

	got, err := Align([]byte("aaaaaatttttt"), 0, cfg, params, pen)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if strings.Count(got, "=") != 2 {
		diffStrings(t, "body1=loop=body2", got)
	}
}

func TestAlignEmptySequence(t *testing.T) {
	cfg := DefaultConfig()
	params := mustParams(t, 1, 0.9, 4, 30, 1, 10)
	pen := mustPen(t, 10, 7, 9, 5, 0)

	got, err := Align(nil, 0, cfg, params, pen)
	if err != nil {
		t.Fatalf("Align: %v", err)
	}
	if got != "" {
		t.Errorf("Align(nil) = %q, want empty string", got)
	}
}

func TestAlignRejectsOversizedInput(t *testing.T) {
	cfg := DefaultConfig()
	params := mustParams(t, 1, 0.9, 4, 30, 1, 10)
	pen := mustPen(t, 10, 7, 9, 5, 0)

	seq := make([]byte, maxAlignLen+1)
	for i := range seq {
		seq[i] = 'a'
	}
	if _, err := Align(seq, 0, cfg, params, pen); err == nil {
		t.Errorf("Align with oversized input: want ErrOutOfMemory, got nil")
	}
}

func TestAlignRejectsBadInput(t *testing.T) {
	cfg := DefaultConfig()
	params := mustParams(t, 1, 0.9, 4, 30, 1, 10)
	pen := mustPen(t, 10, 7, 9, 5, 0)

	if _, err := Align([]byte("acgtZ"), 0, cfg, params, pen); err == nil {
		t.Errorf("Align with invalid byte: want error, got nil")
	}
}
