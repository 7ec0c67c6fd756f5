package triplex

import "fmt"

// NumTypes is the number of triplex geometric classes: 0-3 parallel, 4-7
// antiparallel.
const NumTypes = 8

// NumBases is the size of a base alphabet (A, C, G, T).
const NumBases = 4

// Base indices into every 4x4 table.
const (
	BaseA = 0
	BaseC = 1
	BaseG = 2
	BaseT = 3
)

// SeqClass selects which row of Config.Lambda/Config.Mu a search draws its
// Gumbel parameters from. The original source calls this seqtype_t and also
// reserves ST_AU ("author", never finished); that entry is not carried here.
type SeqClass int

const (
	SeqClassProkaryotic SeqClass = iota
	SeqClassEukaryotic
)

// Params bundles the scalar search parameters that gate candidate export.
type Params struct {
	MinScore int
	PVal     float64
	MinLen   int
	MaxLen   int
	MinLoop  int
	MaxLoop  int
}

// NewParams validates and builds a Params value.
func NewParams(minScore int, pVal float64, minLen, maxLen, minLoop, maxLoop int) (Params, error) {
	p := Params{MinScore: minScore, PVal: pVal, MinLen: minLen, MaxLen: maxLen, MinLoop: minLoop, MaxLoop: maxLoop}
	if minLen > maxLen {
		return Params{}, fmt.Errorf("min_len %d > max_len %d: %w", minLen, maxLen, ErrBadParameters)
	}
	if minLoop > maxLoop {
		return Params{}, fmt.Errorf("min_loop %d > max_loop %d: %w", minLoop, maxLoop, ErrBadParameters)
	}
	if minLoop < 0 || minLen < 0 {
		return Params{}, fmt.Errorf("negative min_loop/min_len: %w", ErrBadParameters)
	}
	if pVal <= 0 || pVal > 1 {
		return Params{}, fmt.Errorf("p_val %v outside (0,1]: %w", pVal, ErrBadParameters)
	}
	return p, nil
}

// Penalization bundles the DP's bonus/penalty constants.
type Penalization struct {
	DTwist    int
	Mismatch  int
	Insertion int
	IsoChange int
	IsoStay   int
}

// NewPenalization validates and builds a Penalization value. Insertion must
// be strictly positive: it is used as a divisor when bounding the search
// (see nAntidiag in search.go).
func NewPenalization(dtwist, mismatch, insertion, isoChange, isoStay int) (Penalization, error) {
	if insertion <= 0 {
		return Penalization{}, fmt.Errorf("insertion penalty %d must be positive: %w", insertion, ErrBadParameters)
	}
	if dtwist < 0 {
		return Penalization{}, fmt.Errorf("dtwist tolerance %d must be non-negative: %w", dtwist, ErrBadParameters)
	}
	return Penalization{
		DTwist:    dtwist,
		Mismatch:  mismatch,
		Insertion: insertion,
		IsoChange: isoChange,
		IsoStay:   isoStay,
	}, nil
}

// Record is one exported candidate triplex, coordinates 1-based except PValue.
type Record struct {
	Start    int     `json:"start"`
	End      int     `json:"end"`
	LStart   int     `json:"lstart"`
	LEnd     int     `json:"lend"`
	Score    int     `json:"score"`
	PValue   float64 `json:"pvalue"`
	InsDel   int     `json:"insdel"`
	Type     int     `json:"type"`
	Strand   int     `json:"strand"`
}

// String renders a Record as a single TSV line, for the CLI's default output.
func (r Record) String() string {
	return fmt.Sprintf("%d\t%d\t%d\t%d\t%d\t%g\t%d\t%d\t%d",
		r.Start, r.End, r.LStart, r.LEnd, r.Score, r.PValue, r.InsDel, r.Type, r.Strand)
}

// Align reconstructs the aligned stem/loop string for this record out of the
// originating sequence, using the same Config the search that found it used.
func (r Record) Align(seq []byte, cfg Config, p Params, pen Penalization) (string, error) {
	if r.Start < 1 || r.End > len(seq) || r.Start > r.End {
		return "", fmt.Errorf("record coordinates out of range for sequence of length %d: %w", len(seq), ErrBadInput)
	}
	return Align(seq[r.Start-1:r.End], r.Type, cfg, p, pen)
}
