package triplex

import "testing"

func TestPValueMonotoneDecreasing(t *testing.T) {
	cfg := DefaultConfig()
	prev := 1.0
	for s := 1; s <= 50; s++ {
		p := pValue(s, 0, SeqClassProkaryotic, cfg)
		if p > prev {
			t.Fatalf("p_value not monotone at score %d: %v > previous %v", s, p, prev)
		}
		prev = p
	}
}

func TestMinScoreForPValueSatisfiesThreshold(t *testing.T) {
	cfg := DefaultConfig()
	s := minScoreForPValue(0.01, 0, SeqClassProkaryotic, cfg, 1000)
	if p := pValue(s, 0, SeqClassProkaryotic, cfg); p > 0.01 {
		t.Errorf("p_value(%d) = %v, want <= 0.01", s, p)
	}
	if s > 1 {
		if p := pValue(s-1, 0, SeqClassProkaryotic, cfg); p <= 0.01 {
			t.Errorf("minScoreForPValue(%d) not minimal: p_value(%d) = %v already <= 0.01", s, s-1, p)
		}
	}
}
