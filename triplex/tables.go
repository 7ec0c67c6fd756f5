package triplex

import "fmt"

// Score sentinels, per spec: strong=2, weak=1, mismatch=-9. The mismatch
// sentinel must stay strictly below any score a single bonus could produce.
const (
	ScoreMismatch = -9
	ScoreWeak     = 1
	ScoreStrong   = 2
)

// Isomorphic groups. IA/IB belong to the parallel base table, IC/ID/IE to
// the antiparallel one, and IN (GroupNone) marks the mismatch entries of
// both; a type's group table only ever emits IN plus its own family's groups.
const (
	GroupNone = 0
	GroupA    = 1
	GroupB    = 2
	GroupC    = 3
	GroupD    = 4
	GroupE    = 5
)

// strandOfType reports whether triplex type t lies on strand 0 or 1,
// reproducing the original source's TAB_STRAND lookup rather than deriving
// it some other way.
var strandOfType = [NumTypes]int{0, 0, 1, 1, 1, 1, 0, 0}

// Strand returns the strand (0 or 1) implied by triplex type t.
func Strand(t int) int {
	return strandOfType[t]
}

// Table4 is a 4x4 matrix indexed [row base][col base].
type Table4[T any] [NumBases][NumBases]T

// complementBoth returns m with both dimensions index-complemented
// (A<->T, C<->G), i.e. out[i][j] = m[comp(i)][comp(j)].
func complementBoth[T any](m Table4[T]) Table4[T] {
	comp := [NumBases]int{BaseT, BaseG, BaseC, BaseA}
	var out Table4[T]
	for i := 0; i < NumBases; i++ {
		for j := 0; j < NumBases; j++ {
			out[i][j] = m[comp[i]][comp[j]]
		}
	}
	return out
}

// transpose returns m with rows and columns swapped.
func transpose[T any](m Table4[T]) Table4[T] {
	var out Table4[T]
	for i := 0; i < NumBases; i++ {
		for j := 0; j < NumBases; j++ {
			out[i][j] = m[j][i]
		}
	}
	return out
}

// deriveFamily expands one base table into the four symmetries that make up
// a parallel or antiparallel type family: identity, transpose, both-dims
// complement, and transpose-of-complement. This is the "helper [that]
// derives all eight from two 4x4 user-supplied tables" C1 requires; each
// family contributes half (types 0-3 or 4-7).
func deriveFamily[T any](base Table4[T]) [4]Table4[T] {
	c := complementBoth(base)
	return [4]Table4[T]{
		base,
		transpose(base),
		c,
		transpose(c),
	}
}

// Config is the immutable, process-wide-in-spirit-but-passed-explicitly
// bundle of tables and statistical parameters every search/alignment reads.
// It holds no mutable state and is safe to share across concurrent callers.
type Config struct {
	Score [NumTypes]Table4[int16]
	Group [NumTypes]Table4[uint8]
	Twist [NumTypes]Table4[uint8]

	// Lambda and Mu are Gumbel parameters, one row per SeqClass, one column
	// per triplex type.
	Lambda [2][NumTypes]float64
	Mu     [2][NumTypes]float64
}

// NewConfig derives the 8 type-specific score/group tables from the two
// user-supplied base tables (index 0 = parallel, index 1 = antiparallel),
// pairs them with the fixed physical twist-angle tables, and validates the
// supplied Gumbel parameters.
//
// The twist tables are not user-configurable: the original source keeps them
// as a process constant (never read from its external parameter interface),
// only score and group vary by caller.
func NewConfig(score [2]Table4[int16], group [2]Table4[uint8], lambda, mu [2][NumTypes]float64) (Config, error) {
	var cfg Config

	scoreFamilies := [2][4]Table4[int16]{deriveFamily(score[0]), deriveFamily(score[1])}
	groupFamilies := [2][4]Table4[uint8]{deriveFamily(group[0]), deriveFamily(group[1])}
	twistFamilies := [2][4]Table4[uint8]{deriveFamily(twistBaseParallel), deriveFamily(twistBaseAntiparallel)}

	for fam := 0; fam < 2; fam++ {
		for i := 0; i < 4; i++ {
			t := fam*4 + i
			cfg.Score[t] = scoreFamilies[fam][i]
			cfg.Group[t] = groupFamilies[fam][i]
			cfg.Twist[t] = twistFamilies[fam][i]
		}
	}

	for _, row := range lambda {
		for _, v := range row {
			if v <= 0 {
				return Config{}, fmt.Errorf("lambda must be positive: %w", ErrBadParameters)
			}
		}
	}
	cfg.Lambda = lambda
	cfg.Mu = mu

	for t := 0; t < NumTypes; t++ {
		for i := 0; i < NumBases; i++ {
			for j := 0; j < NumBases; j++ {
				if cfg.Score[t][i][j] > ScoreMismatch && cfg.Score[t][i][j] < ScoreWeak {
					return Config{}, fmt.Errorf("type %d score[%d][%d]=%d between mismatch and weak: %w", t, i, j, cfg.Score[t][i][j], ErrBadParameters)
				}
			}
		}
	}

	return cfg, nil
}

// DefaultConfig returns the Config built from the score, group and twist
// tables reproduced from the original source's TAB_SCORE/TAB_GROUP/TAB_TWIST
// type-0 and type-4 entries, with a single Gumbel parameter set shared by
// both sequence classes (the original only ships one flat set).
func DefaultConfig() Config {
	cfg, err := NewConfig(defaultScoreBases, defaultGroupBases, defaultLambda, defaultMu)
	if err != nil {
		// The built-in literals are known-good; a failure here is a bug in
		// this package, not a caller error.
		panic(err)
	}
	return cfg
}

// Base score/group tables for the parallel (index 0) and antiparallel
// (index 1) families, reproduced verbatim from the original source's type-0
// and type-4 entries (the other six types are symmetries, see deriveFamily).
var defaultScoreBases = [2]Table4[int16]{
	{ // parallel (type 0)
		{ScoreMismatch, ScoreMismatch, ScoreMismatch, ScoreMismatch}, // A
		{ScoreMismatch, ScoreStrong, ScoreMismatch, ScoreMismatch},   // C
		{ScoreStrong, ScoreWeak, ScoreMismatch, ScoreMismatch},       // G
		{ScoreMismatch, ScoreWeak, ScoreWeak, ScoreStrong},           // T
	},
	{ // antiparallel (type 4)
		{ScoreMismatch, ScoreMismatch, ScoreWeak, ScoreStrong},     // A
		{ScoreMismatch, ScoreStrong, ScoreMismatch, ScoreMismatch}, // C
		{ScoreMismatch, ScoreMismatch, ScoreMismatch, ScoreWeak},   // G
		{ScoreMismatch, ScoreWeak, ScoreMismatch, ScoreStrong},     // T
	},
}

var defaultGroupBases = [2]Table4[uint8]{
	{ // parallel (type 0): uses IN/IA/IB only
		{GroupNone, GroupNone, GroupNone, GroupNone},
		{GroupNone, GroupA, GroupNone, GroupNone},
		{GroupB, GroupB, GroupNone, GroupNone},
		{GroupNone, GroupA, GroupB, GroupA},
	},
	{ // antiparallel (type 4): uses IN/IC/ID/IE only
		{GroupNone, GroupNone, GroupE, GroupC},
		{GroupNone, GroupE, GroupNone, GroupNone},
		{GroupNone, GroupNone, GroupNone, GroupD},
		{GroupNone, GroupD, GroupNone, GroupC},
	},
}

var twistBaseParallel = Table4[uint8]{
	{0, 0, 0, 0},
	{0, 109, 0, 0},
	{126, 75, 0, 0},
	{0, 78, 71, 104},
}

var twistBaseAntiparallel = Table4[uint8]{
	{0, 0, 94, 72},
	{0, 94, 0, 0},
	{0, 0, 0, 72},
	{0, 126, 0, 77},
}

// defaultLambda/defaultMu are the Gumbel parameters from the original
// source's flat LAMBDA/MI arrays, replicated across both sequence classes
// since the shipped source never differentiated them in its public
// interface (only the parameter *shape* — per-class rows — is new here).
var defaultLambda = [2][NumTypes]float64{
	{0.71, 0.71, 0.67, 0.67, 0.71, 0.71, 0.67, 0.67},
	{0.71, 0.71, 0.67, 0.67, 0.71, 0.71, 0.67, 0.67},
}

var defaultMu = [2][NumTypes]float64{
	{5.88, 5.88, 6.05, 6.05, 5.88, 5.88, 6.05, 6.05},
	{5.88, 5.88, 6.05, 6.05, 5.88, 5.88, 6.05, 6.05},
}
