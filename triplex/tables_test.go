package triplex

import "testing"

func TestDeriveFamilyIsTranspose(t *testing.T) {
	fam := deriveFamily(defaultScoreBases[0])
	got := fam[1]
	want := transpose(defaultScoreBases[0])
	if got != want {
		t.Errorf("type 1 = %v, want transpose(type0) = %v", got, want)
	}
}

func TestDeriveFamilyIsComplement(t *testing.T) {
	fam := deriveFamily(defaultScoreBases[0])
	got := fam[2]
	want := complementBoth(defaultScoreBases[0])
	if got != want {
		t.Errorf("type 2 = %v, want complementBoth(type0) = %v", got, want)
	}
}

func TestDefaultConfigStrandTable(t *testing.T) {
	cfg := DefaultConfig()
	for t_ := 0; t_ < NumTypes; t_++ {
		if Strand(t_) != strandOfType[t_] {
			t.Errorf("Strand(%d) = %d, want %d", t_, Strand(t_), strandOfType[t_])
		}
	}
	_ = cfg
}

func TestNewConfigRejectsNonPositiveLambda(t *testing.T) {
	lambda := defaultLambda
	lambda[0][0] = 0
	if _, err := NewConfig(defaultScoreBases, defaultGroupBases, lambda, defaultMu); err == nil {
		t.Errorf("NewConfig with zero lambda: want error, got nil")
	}
}

func TestMismatchSentinelBelowWeak(t *testing.T) {
	if ScoreMismatch >= ScoreWeak {
		t.Errorf("mismatch sentinel %d must be strictly below weak score %d", ScoreMismatch, ScoreWeak)
	}
}
