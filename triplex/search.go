package triplex

// maxPieceSize bounds how large a single DP pass's cell array grows before a
// long chunk is split into overlapping pieces (§4.3).
const maxPieceSize = 4096

// ProgressFunc reports coarse progress through a Search call: done out of
// total (type, piece) work units completed so far. It is advisory only
// (spec.md §5); a nil callback is always safe to pass.
type ProgressFunc func(done, total int)

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

// maxBonusForType returns the largest achievable score[t][*][*] plus the
// isomorphic-stay bonus, the "max_bonus" §4.4 uses to bound the search.
func maxBonusForType(t int, cfg Config, pen Penalization) int {
	best := ScoreMismatch
	for i := 0; i < NumBases; i++ {
		for j := 0; j < NumBases; j++ {
			if v := int(cfg.Score[t][i][j]); v > best {
				best = v
			}
		}
	}
	return best + pen.IsoStay
}

// nAntidiag computes the largest antidiagonal that could still yield a
// surviving triplex for the given parameters and max_bonus, per §4.4.
func nAntidiag(params Params, pen Penalization, maxBonus int) int {
	return params.MaxLoop + 2*params.MaxLen +
		floorDiv(maxBonus*params.MaxLen-params.MinScore, pen.Insertion)
}

// linearRange converts a (diag, antidiag) cell coordinate back to the
// 0-based [start,end] offset range it represents in the piece, per the
// "candidate geometry" shared shape used for both the stem (from
// max_score_pos) and the loop (from start) in §4.4.
func linearRange(p pos) (start, end int) {
	end = (p.diag + p.antidiag - 1) / 2
	start = end - p.antidiag
	return start, end
}

// pieces splits [chunkStart,chunkEnd] into maxPieceSize windows overlapping
// by overlap positions, so that any triplex spanning at most overlap
// antidiagonals is fully contained in at least one piece (§4.3).
func pieces(chunkStart, chunkEnd, size, overlap int) []Chunk {
	length := chunkEnd - chunkStart + 1
	if length <= size {
		return []Chunk{{chunkStart, chunkEnd}}
	}
	step := size - overlap
	if step <= 0 {
		return []Chunk{{chunkStart, chunkEnd}}
	}
	var out []Chunk
	start := chunkStart
	for start <= chunkEnd {
		end := start + size - 1
		if end > chunkEnd {
			end = chunkEnd
		}
		out = append(out, Chunk{start, end})
		if end == chunkEnd {
			break
		}
		start += step
	}
	return out
}

// Search runs the full C3->C4(uses C1,C2,C7)->C5 pipeline: it chunks seq,
// splits long chunks into overlapping pieces, runs the antidiagonal DP for
// every requested type over every piece, and returns the merged, group-
// filtered set of candidates.
func Search(seq []byte, types []int, params Params, pen Penalization, cfg Config, class SeqClass, progress ProgressFunc) ([]Record, error) {
	for _, t := range types {
		if t < 0 || t >= NumTypes {
			return nil, ErrBadParameters
		}
	}
	encoded, err := encode(seq)
	if err != nil {
		return nil, err
	}

	chs := chunks(encoded)

	globalMaxBonus := 0
	for _, t := range types {
		if b := maxBonusForType(t, cfg, pen); b > globalMaxBonus {
			globalMaxBonus = b
		}
	}
	overlap := nAntidiag(params, pen, globalMaxBonus)
	if overlap < 0 {
		overlap = 0
	}

	type unit struct {
		t     int
		piece Chunk
	}
	var units []unit
	for _, c := range chs {
		for _, p := range pieces(c.Start, c.End, maxPieceSize, overlap) {
			for _, t := range types {
				units = append(units, unit{t, p})
			}
		}
	}

	lists := make(map[int]*CandidateList, len(types))
	for _, t := range types {
		lists[t] = NewCandidateList(params.MaxLen)
	}

	for i, u := range units {
		searchPiece(encoded, u.piece, u.t, params, pen, cfg, class, lists[u.t])
		if progress != nil {
			progress(i+1, len(units))
		}
	}

	ordered := make([]*CandidateList, 0, len(types))
	for _, t := range types {
		lists[t].GroupFilter()
		ordered = append(ordered, lists[t])
	}
	return MergeCandidateLists(ordered), nil
}

// searchPiece runs the antidiagonal DP (§4.4) for one triplex type over one
// piece, inserting every exported candidate into list.
func searchPiece(encoded []byte, piece Chunk, t int, params Params, pen Penalization, cfg Config, class SeqClass, list *CandidateList) {
	pieceBuf := encoded[piece.Start : piece.End+1]
	pieceLen := len(pieceBuf)
	if pieceLen == 0 {
		return
	}

	maxBonus := maxBonusForType(t, cfg, pen)
	ceiling := maxBonus * params.MaxLen
	if ceiling < params.MinScore {
		ceiling = params.MinScore
	}
	effectiveMinScore := params.MinScore
	if s := minScoreForPValue(params.PVal, t, class, cfg, ceiling); s > effectiveMinScore {
		effectiveMinScore = s
	}

	bound := nAntidiag(params, pen, maxBonus)
	if pieceLen < bound {
		bound = pieceLen
	}
	if bound <= params.MinLoop {
		return
	}

	cells := make([]cell, 2*pieceLen)
	for d := range cells {
		cells[d] = newCell(d, params.MinLoop)
	}

	emit := func(c *cell) {
		p := pValue(int(c.maxScore), t, class, cfg)
		if p > params.PVal {
			return
		}
		stemStart, stemEnd := linearRange(c.maxScorePos)
		loopStart, loopEnd := linearRange(c.start)
		list.Insert(Record{
			Start:  piece.Start + stemStart + 1,
			End:    piece.Start + stemEnd + 1,
			LStart: piece.Start + loopStart + 2,
			LEnd:   piece.Start + loopEnd,
			Score:  int(c.maxScore),
			PValue: p,
			InsDel: int(c.maxIndels),
			Type:   t,
			Strand: Strand(t),
		})
	}

	for ad := params.MinLoop + 1; ad < bound; ad++ {
		for i, d := ad, ad+1; i < pieceLen; i, d = i+1, d+2 {
			aByte, bByte := pieceBuf[i], pieceBuf[i-ad]
			var a, b int8
			if isBase(aByte) && isBase(bByte) {
				a, b = int8(aByte), int8(bByte)
			} else {
				a, b = resolvePair(aByte, bByte, t, &cells[d], cfg, pen)
			}

			dCell := &cells[d]
			updateCell(&cells[d-1], dCell, &cells[d+1], a, b, t, d, ad, params.MaxLoop, cfg, pen)

			if dCell.length() >= params.MinLen {
				dCell.status |= StatusMinLen
			} else {
				dCell.status &^= StatusMinLen
			}

			if int(dCell.score) >= effectiveMinScore {
				dCell.status |= StatusQuality
				atBoundary := d == ad+1 || d == 2*pieceLen-ad-1
				if dCell.status&StatusMinLen != 0 && atBoundary {
					dCell.status |= StatusExport
					emit(dCell)
				}
			} else {
				hadQuality := dCell.status&StatusQuality != 0
				leftQuality := cells[d-1].status&StatusQuality != 0
				rightQuality := cells[d+1].status&StatusQuality != 0
				if hadQuality && dCell.status&StatusMinLen != 0 && !leftQuality && !rightQuality {
					emit(dCell)
					dCell.maxScore = 0
					dCell.status &^= StatusQuality
				} else {
					dCell.status = 0
				}
			}
		}
	}

	for d := 1; d < 2*pieceLen-1; d++ {
		c := &cells[d]
		if c.status&StatusQuality != 0 && c.status&StatusMinLen != 0 {
			emit(c)
		}
	}
}
