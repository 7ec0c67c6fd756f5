package triplex

// Chunk is a closed [Start,End] offset pair (0-based, into the encoded
// buffer) identifying a maximal run of unambiguous bases.
type Chunk struct {
	Start, End int
}

// baseCode maps every byte the package accepts to 0-3 for a concrete base,
// or -1 if the byte is not part of the 128-entry alphabet at all. IUPAC
// ambiguity bytes are handled separately by iupacBases below; they
// are not given a baseCode entry since resolving them needs the two-base
// context a bare lookup table can't carry.
var baseCode [128]int8

// chunkBreak is a 128-entry boolean table, true for every raw input byte
// (either case) that is one of the twelve IUPAC codes, '-' among them.
// chunks does not read it: it splits the encoded buffer wherever isBase is
// false, which breaks at the same positions.
var chunkBreak [128]bool

// iupacBases lists, for each IUPAC ambiguity byte (lowercase), the set of
// concrete bases it may stand for. '-' stands for none: it can never be
// resolved to a base, so it always scores as a mismatch.
var iupacBases = map[byte][]int8{
	'n': {BaseA, BaseC, BaseG, BaseT},
	'r': {BaseA, BaseG},
	'm': {BaseA, BaseC},
	'w': {BaseA, BaseT},
	'd': {BaseA, BaseG, BaseT},
	'v': {BaseA, BaseC, BaseG},
	'h': {BaseA, BaseC, BaseT},
	'b': {BaseC, BaseG, BaseT},
	's': {BaseC, BaseG},
	'y': {BaseC, BaseT},
	'k': {BaseG, BaseT},
	'-': {},
}

func init() {
	for i := range baseCode {
		baseCode[i] = -1
	}
	baseCode['a'], baseCode['A'] = BaseA, BaseA
	baseCode['c'], baseCode['C'] = BaseC, BaseC
	baseCode['g'], baseCode['G'] = BaseG, BaseG
	baseCode['t'], baseCode['T'] = BaseT, BaseT

	for c := range iupacBases {
		chunkBreak[c] = true
		if c != '-' {
			chunkBreak[c-('a'-'A')] = true
		}
	}
}

// isBase reports whether an encoded byte is one of the four concrete bases
// (0-3), as opposed to a preserved IUPAC ambiguity byte.
func isBase(c byte) bool {
	return c <= BaseT
}

// toLowerASCII lowercases an ASCII letter byte; used to normalize IUPAC
// codes so "N" and "n" encode identically.
func toLowerASCII(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

// encode converts seq into a buffer where every base position holds its
// 0-3 code and every ambiguity position holds its normalized (lowercase)
// ASCII byte, unchanged otherwise. Preserving the ambiguity byte (rather
// than collapsing it to one sentinel) lets the alignment entry point, which
// does not chunk first, still resolve it per §4.8. encode returns
// ErrBadInput on the first byte outside the alphabet.
func encode(seq []byte) ([]byte, error) {
	out := make([]byte, len(seq))
	for i, c := range seq {
		if c >= 128 {
			return nil, ErrBadInput
		}
		if baseCode[c] >= 0 {
			out[i] = byte(baseCode[c])
			continue
		}
		lc := toLowerASCII(c)
		if lc >= 128 {
			return nil, ErrBadInput
		}
		if _, ok := iupacBases[lc]; !ok {
			return nil, ErrBadInput
		}
		out[i] = lc
	}
	return out, nil
}

// chunks splits an encoded buffer into maximal runs with no ambiguity byte,
// in input order. Empty chunks are never emitted.
func chunks(encoded []byte) []Chunk {
	var out []Chunk
	start := -1
	for i, c := range encoded {
		if !isBase(c) {
			if start >= 0 {
				out = append(out, Chunk{start, i - 1})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		out = append(out, Chunk{start, len(encoded) - 1})
	}
	return out
}
