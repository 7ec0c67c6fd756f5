package triplex

// DP rule states. STOP and MainAntidiag exist only to terminate alignment
// traceback (C6); the search driver (C4) never produces them.
const (
	RuleMatch = iota
	RuleMismatch
	RuleLeft
	RuleRight
	RuleStop
	RuleMainAntidiag
)

// Cell status bits.
const (
	StatusQuality = 1 << iota
	StatusMinLen
	StatusExport
)

// pos is a (diag, antidiag) coordinate pair.
type pos struct {
	diag, antidiag int
}

// cell is one tracked DP diagonal, per spec.md §3's "DP cell" data model.
type cell struct {
	start       pos
	maxScorePos pos

	score    int16
	maxScore int16

	bound  uint8
	twist  uint8
	dtwist int8

	dpRule int

	indels    uint8
	maxIndels uint8

	status int
}

// newCell builds the initial state for diagonal d of a piece, parity-aligned
// per §4.4: the reset point's antidiagonal starts one or two past min_loop
// so that its parity matches d.
func newCell(d, minLoop int) cell {
	startAntidiag := minLoop + 1
	if (minLoop+d)%2 != 0 {
		startAntidiag = minLoop + 2
	}
	p := pos{diag: d, antidiag: startAntidiag}
	return cell{
		start:       p,
		maxScorePos: p,
		twist:       90,
		dpRule:      RuleMismatch,
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// updateCell performs one C2 step in place on d, given its left/right
// antidiagonal neighbours dl/dr, the two bases at this position, the
// triplex type, the current (diag, antidiag) coordinate, and the active
// penalizations. maxLoop bounds the region local resets are confined to.
func updateCell(dl, d, dr *cell, a, b int8, t int, diag, antidiag, maxLoop int, cfg Config, pen Penalization) {
	inc := int(cfg.Score[t][a][b])

	var mm int
	isMatch := inc > ScoreMismatch
	if isMatch {
		mm = int(d.score) + inc
		if d.dpRule == RuleMatch {
			group := cfg.Group[t][a][b]
			twist := cfg.Twist[t][a][b]
			sameGroup := group == d.bound
			twistOK := absInt(int(twist)-int(d.twist)) <= pen.DTwist ||
				absInt(int(twist)-int(d.twist)+int(d.dtwist)) <= pen.DTwist
			if sameGroup || twistOK {
				mm += pen.IsoStay
			} else {
				mm -= pen.IsoChange
			}
		}
	} else {
		mm = int(d.score) - pen.Mismatch
	}

	left := int(dl.score) - pen.Insertion
	right := int(dr.score) - pen.Insertion

	switch {
	case mm >= left && mm >= right:
		d.score = int16(mm)
		if isMatch {
			d.dpRule = RuleMatch
			group := cfg.Group[t][a][b]
			twist := cfg.Twist[t][a][b]
			d.dtwist = int8(int(twist) - int(d.twist))
			d.bound = group
			d.twist = twist
		} else {
			d.dpRule = RuleMismatch
		}
		if mm >= int(d.maxScore) {
			d.maxScore = int16(mm)
			d.maxScorePos = pos{diag: diag, antidiag: antidiag}
			d.maxIndels = d.indels
		}
	case left > right:
		indels := dl.indels
		*d = *dl
		d.score = int16(left)
		d.dpRule = RuleLeft
		d.indels = indels + 1
	default:
		indels := dr.indels
		*d = *dr
		d.score = int16(right)
		d.dpRule = RuleRight
		d.indels = indels + 1
	}

	if int(d.score) < 0 && antidiag <= maxLoop {
		d.score = 0
		d.maxScore = 0
		d.start = pos{diag: diag, antidiag: antidiag}
		d.maxScorePos = d.start
		d.indels = 0
		d.maxIndels = 0
	}
}

// length computes the current surviving alignment length for a cell, per
// §4.4: (max_score_pos.antidiag - start.antidiag - max_indels)/2 + 1.
func (c *cell) length() int {
	return (c.maxScorePos.antidiag-c.start.antidiag-int(c.maxIndels))/2 + 1
}

// resolvePair picks the concrete base pair an ambiguous position should use
// for this one antidiagonal step, per §4.8: enumerate every concrete pair
// consistent with each byte's IUPAC code (or the single concrete base if a
// byte already is one) and choose the pair maximising the one-step score
// under the cell's current isomorphic context. It never mutates the input
// buffer; callers restore nothing because nothing was overwritten.
func resolvePair(ca, cb byte, t int, d *cell, cfg Config, pen Penalization) (int8, int8) {
	as := candidateBases(ca)
	bs := candidateBases(cb)
	if len(as) == 0 || len(bs) == 0 {
		// '-' (or any other unresolvable code) can never match: return the
		// first concrete pair that type t scores as a mismatch.
		for a := int8(0); a < NumBases; a++ {
			for b := int8(0); b < NumBases; b++ {
				if int(cfg.Score[t][a][b]) <= ScoreMismatch {
					return a, b
				}
			}
		}
		return BaseA, BaseA
	}

	best := int64(-1 << 62)
	var bestA, bestB int8
	for _, a := range as {
		for _, b := range bs {
			score := int64(cfg.Score[t][a][b])
			if score > ScoreMismatch && d.dpRule == RuleMatch {
				group := cfg.Group[t][a][b]
				twist := cfg.Twist[t][a][b]
				sameGroup := group == d.bound
				twistOK := absInt(int(twist)-int(d.twist)) <= pen.DTwist ||
					absInt(int(twist)-int(d.twist)+int(d.dtwist)) <= pen.DTwist
				if sameGroup || twistOK {
					score += int64(pen.IsoStay)
				} else {
					score -= int64(pen.IsoChange)
				}
			}
			if score > best {
				best = score
				bestA, bestB = a, b
			}
		}
	}
	return bestA, bestB
}

// candidateBases returns the concrete bases a buffer byte may stand for: a
// single-element slice if c already is a concrete base, the IUPAC expansion
// if it is an ambiguity byte, or nil for an unresolvable code such as '-'.
func candidateBases(c byte) []int8 {
	if isBase(c) {
		return []int8{int8(c)}
	}
	return iupacBases[c]
}
