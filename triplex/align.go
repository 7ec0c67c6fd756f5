package triplex

// maxAlignLen bounds the length of a single Align call's substring: the
// rule matrix it builds is n*n bytes, so this keeps that allocation under a
// few hundred megabytes for any legitimate candidate (§4.11's one pre-sized
// allocation check, the only place ErrOutOfMemory can be returned from).
const maxAlignLen = 20000

// Align reconstructs the aligned stem/loop string for a single candidate
// substring, per §4.6: it runs the same cell DP as Search but also records
// every update's dp_rule into a full n*n rule matrix, then backtraces from
// the bottom-right corner to a main antidiagonal.
func Align(seq []byte, t int, cfg Config, params Params, pen Penalization) (string, error) {
	if t < 0 || t >= NumTypes {
		return "", ErrBadParameters
	}
	n := len(seq)
	if n == 0 {
		return "", nil
	}
	if n > maxAlignLen {
		return "", ErrOutOfMemory
	}

	encoded, err := encode(seq)
	if err != nil {
		return "", err
	}

	mat := make([]uint8, n*n)
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if r == n-1-c || r == n-2-c {
				mat[r*n+c] = RuleMainAntidiag
			} else {
				mat[r*n+c] = RuleStop
			}
		}
	}

	cells := make([]cell, 2*n)
	for d := range cells {
		cells[d] = newCell(d, params.MinLoop)
	}

	for ad := params.MinLoop + 1; ad < n; ad++ {
		for i, d := ad, ad+1; i < n; i, d = i+1, d+2 {
			aByte, bByte := encoded[i], encoded[i-ad]
			var a, b int8
			if isBase(aByte) && isBase(bByte) {
				a, b = int8(aByte), int8(bByte)
			} else {
				a, b = resolvePair(aByte, bByte, t, &cells[d], cfg, pen)
			}
			updateCell(&cells[d-1], &cells[d], &cells[d+1], a, b, t, d, ad, params.MaxLoop, cfg, pen)

			row := n - 1 - (i - ad)
			col := i
			if row >= 0 && row < n && col >= 0 && col < n {
				mat[row*n+col] = uint8(cells[d].dpRule)
			}
		}
	}

	var body1, body2 []byte
	row, col := n-1, n-1
	for row >= 0 && col >= 0 {
		rule := mat[row*n+col]
		if rule == RuleMainAntidiag || rule == RuleStop {
			break
		}
		switch rule {
		case RuleMatch:
			body1 = append(body1, lowerBase(seq[n-1-row]))
			body2 = append(body2, lowerBase(seq[col]))
			row--
			col--
		case RuleMismatch:
			body1 = append(body1, upperBase(seq[n-1-row]))
			body2 = append(body2, upperBase(seq[col]))
			row--
			col--
		case RuleLeft:
			body1 = append(body1, '-')
			body2 = append(body2, seq[col])
			col--
		case RuleRight:
			body1 = append(body1, seq[n-1-row])
			body2 = append(body2, '-')
			row--
		default:
			row, col = -1, -1
		}
	}

	loopStart := n - 1 - row
	loopEnd := col + 1
	var loop string
	if loopStart <= loopEnd {
		loop = string(seq[loopStart:loopEnd])
	}

	reverseBytes(body2)
	return string(body1) + "=" + loop + "=" + string(body2), nil
}

func lowerBase(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func upperBase(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

func reverseBytes(b []byte) {
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
}
