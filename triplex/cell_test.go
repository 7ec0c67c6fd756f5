package triplex

import "testing"

func TestUpdateCellMatchAccumulates(t *testing.T) {
	cfg := DefaultConfig()
	pen := mustPen(t, 10, 7, 9, 5, 0)

	dl := &cell{score: -100}
	dr := &cell{score: -100}
	d := &cell{score: 0, dpRule: RuleMismatch}

	// type 0, G paired with A scores ScoreStrong (see defaultScoreBases).
	updateCell(dl, d, dr, BaseG, BaseA, 0, 5, 11, 10, cfg, pen)

	if d.dpRule != RuleMatch {
		t.Errorf("dp_rule = %v, want RuleMatch", d.dpRule)
	}
	if d.score != ScoreStrong {
		t.Errorf("score = %d, want %d", d.score, ScoreStrong)
	}
	if d.maxScore != d.score {
		t.Errorf("max_score = %d, want %d (equal to score after first match)", d.maxScore, d.score)
	}
}

func TestUpdateCellMismatchSubtracts(t *testing.T) {
	cfg := DefaultConfig()
	pen := mustPen(t, 10, 7, 9, 5, 0)

	dl := &cell{score: -100}
	dr := &cell{score: -100}
	d := &cell{score: 5, dpRule: RuleMatch, maxScore: 5}

	// A paired with A scores ScoreMismatch under type 0.
	updateCell(dl, d, dr, BaseA, BaseA, 0, 5, 11, 10, cfg, pen)

	if d.dpRule != RuleMismatch {
		t.Errorf("dp_rule = %v, want RuleMismatch", d.dpRule)
	}
	if d.score != 5-int16(pen.Mismatch) {
		t.Errorf("score = %d, want %d", d.score, 5-int16(pen.Mismatch))
	}
}

func TestUpdateCellLocalResetInLoopRegion(t *testing.T) {
	cfg := DefaultConfig()
	pen := mustPen(t, 10, 7, 9, 5, 0)

	dl := &cell{score: -100}
	dr := &cell{score: -100}
	d := &cell{score: 3, dpRule: RuleMatch}

	// A-A mismatches heavily; within the loop region (antidiag <= maxLoop)
	// a negative score resets to zero.
	updateCell(dl, d, dr, BaseA, BaseA, 0, 1, 4, 10, cfg, pen)

	if d.score != 0 || d.maxScore != 0 {
		t.Errorf("after reset score=%d max_score=%d, want both 0", d.score, d.maxScore)
	}
	if d.start != (pos{diag: 1, antidiag: 4}) {
		t.Errorf("start = %v, want reset point (1,4)", d.start)
	}
}

func TestCandidateBasesExpandsIUPACCode(t *testing.T) {
	got := candidateBases('r')
	want := []int8{BaseA, BaseG}
	if len(got) != len(want) || got[0] != want[0] || got[1] != want[1] {
		t.Errorf("candidateBases('r') = %v, want %v", got, want)
	}
	if len(candidateBases('-')) != 0 {
		t.Errorf("candidateBases('-') = %v, want empty", candidateBases('-'))
	}
	if got := candidateBases(BaseC); len(got) != 1 || got[0] != BaseC {
		t.Errorf("candidateBases(BaseC) = %v, want [BaseC]", got)
	}
}

func TestResolvePairPicksBestScoringConcretePair(t *testing.T) {
	cfg := DefaultConfig()
	pen := mustPen(t, 10, 7, 9, 5, 0)
	d := &cell{dpRule: RuleMismatch}

	// Under type 0, A-A scores ScoreMismatch but G-A scores ScoreStrong
	// (see defaultScoreBases); resolving ambiguity code 'r' (A or G)
	// against a concrete A must therefore pick G, not the first candidate.
	a, b := resolvePair('r', BaseA, 0, d, cfg, pen)
	if a != BaseG || b != BaseA {
		t.Errorf("resolvePair('r', BaseA) = (%d,%d), want (BaseG,BaseA)", a, b)
	}
	if cfg.Score[0][a][b] != ScoreStrong {
		t.Errorf("resolved pair scores %d, want ScoreStrong", cfg.Score[0][a][b])
	}
}

func TestUpdateCellNoResetOutsideLoopRegion(t *testing.T) {
	cfg := DefaultConfig()
	pen := mustPen(t, 10, 7, 9, 5, 0)

	dl := &cell{score: -100}
	dr := &cell{score: -100}
	d := &cell{score: 3, dpRule: RuleMatch}

	// Same mismatch, but antidiag (20) is past maxLoop (10): no reset.
	updateCell(dl, d, dr, BaseA, BaseA, 0, 1, 20, 10, cfg, pen)

	if d.score >= 0 {
		t.Errorf("score = %d, want negative (no reset past max_loop)", d.score)
	}
}
