package triplex

import "golang.org/x/exp/slices"

// node is one arena-addressed element of a CandidateList. The arena never
// shrinks: deleted nodes stay allocated with live=false and are simply
// unlinked from the prev/next chain, per the design note that the candidate
// list's cyclic/back-referenced shape should be an index arena rather than
// real pointers.
type node struct {
	rec        Record
	prev, next int
	live       bool
}

// CandidateList is the sorted doubly-linked list from spec.md §3/§4.5: a
// sentinel head (index 0, data Start = -2*maxLen-1) followed by candidates
// ordered ascending by (Start, End).
type CandidateList struct {
	nodes  []node
	maxLen int
	last   int
	size   int
}

// NewCandidateList builds an empty list. maxLen bounds how far back test 2's
// inclusion scan walks, and is shared by every list that will later be
// merged together.
func NewCandidateList(maxLen int) *CandidateList {
	cl := &CandidateList{maxLen: maxLen}
	cl.nodes = []node{{rec: Record{Start: -2*maxLen - 1}, prev: -1, next: -1, live: true}}
	cl.last = 0
	return cl
}

// Len reports the number of live (non-sentinel) candidates.
func (cl *CandidateList) Len() int { return cl.size }

// Records returns the live candidates in sorted order.
func (cl *CandidateList) Records() []Record {
	out := make([]Record, 0, cl.size)
	for i := cl.nodes[0].next; i != -1; i = cl.nodes[i].next {
		if cl.nodes[i].live {
			out = append(out, cl.nodes[i].rec)
		}
	}
	return out
}

func lessKey(a, b Record) bool {
	return a.Start < b.Start || (a.Start == b.Start && a.End < b.End)
}

// unlink removes node idx from the chain without touching the arena slot
// otherwise; idx must not be the sentinel.
func (cl *CandidateList) unlink(idx int) {
	n := &cl.nodes[idx]
	n.live = false
	if n.prev != -1 {
		cl.nodes[n.prev].next = n.next
	}
	if n.next != -1 {
		cl.nodes[n.next].prev = n.prev
	} else {
		cl.last = n.prev
	}
}

// Insert adds rec in sorted position, applying the three online tests from
// §4.5: duplicate detection, included-in-existing pruning (drop rec), and
// includes-existing pruning (drop whatever rec subsumes).
func (cl *CandidateList) Insert(rec Record) {
	cur := cl.last
	for cur != 0 && lessKey(rec, cl.nodes[cur].rec) {
		cur = cl.nodes[cur].prev
	}
	// cur is the sentinel or the first node walking backward whose key is
	// not greater than rec's.

	if cur != 0 && cl.nodes[cur].rec.Start == rec.Start && cl.nodes[cur].rec.End == rec.End {
		if rec.Score > cl.nodes[cur].rec.Score {
			cl.nodes[cur].rec = rec
		}
		return
	}

	for n := cl.nodes[cur].next; n != -1 && cl.nodes[n].rec.Start == rec.Start; n = cl.nodes[n].next {
		if cl.nodes[n].rec.Score >= rec.Score {
			return
		}
	}
	for p := cur; p != 0 && cl.nodes[p].rec.Start >= rec.Start-cl.maxLen; p = cl.nodes[p].prev {
		if cl.nodes[p].rec.End >= rec.End && cl.nodes[p].rec.Score >= rec.Score {
			return
		}
	}

	idx := len(cl.nodes)
	next := cl.nodes[cur].next
	cl.nodes = append(cl.nodes, node{rec: rec, prev: cur, next: next, live: true})
	cl.nodes[cur].next = idx
	if next != -1 {
		cl.nodes[next].prev = idx
	} else {
		cl.last = idx
	}
	cl.size++

	for p := cl.nodes[idx].prev; p != 0 && cl.nodes[p].rec.Start == rec.Start; {
		victim := p
		p = cl.nodes[p].prev
		if cl.nodes[victim].rec.Score <= rec.Score {
			cl.unlink(victim)
			cl.size--
		}
	}
	for n := cl.nodes[idx].next; n != -1; {
		victim := n
		n = cl.nodes[n].next
		if cl.nodes[victim].rec.End <= rec.End && cl.nodes[victim].rec.Score <= rec.Score {
			cl.unlink(victim)
			cl.size--
		}
	}
}

// GroupFilter applies the post-pass overlap-group filter from §4.5: any two
// adjacent live candidates a, b (a sorted before b) with overlap = a.End -
// b.Start and whole = b.End - a.Start have their lower scorer deleted when
// a.End > b.Start (they actually overlap) and overlap/whole >= 0.8, repeated
// until a full pass deletes nothing.
func (cl *CandidateList) GroupFilter() {
	for {
		var toDelete []int
		for a := cl.nodes[0].next; a != -1; {
			b := cl.nodes[a].next
			if b == -1 {
				break
			}
			ra, rb := cl.nodes[a].rec, cl.nodes[b].rec
			overlap := ra.End - rb.Start
			whole := rb.End - ra.Start
			if ra.End > rb.Start && whole > 0 && float64(overlap)/float64(whole) >= 0.8 {
				if ra.Score <= rb.Score {
					toDelete = append(toDelete, a)
				} else {
					toDelete = append(toDelete, b)
				}
			}
			a = b
		}
		if len(toDelete) == 0 {
			return
		}
		for _, idx := range toDelete {
			if cl.nodes[idx].live {
				cl.unlink(idx)
				cl.size--
			}
		}
	}
}

// MergeCandidateLists performs the k-way merge from §4.5: repeatedly picks
// the smallest (Start, End) head across the per-type lists and appends it
// to the output, until every list is drained.
func MergeCandidateLists(lists []*CandidateList) []Record {
	heads := make([]int, len(lists))
	for i, l := range lists {
		heads[i] = l.nodes[0].next
	}
	var out []Record
	for {
		best := -1
		for i, h := range heads {
			if h == -1 {
				continue
			}
			if best == -1 || lessKey(lists[i].nodes[h].rec, lists[best].nodes[heads[best]].rec) {
				best = i
			}
		}
		if best == -1 {
			break
		}
		h := heads[best]
		out = append(out, lists[best].nodes[h].rec)
		heads[best] = lists[best].nodes[h].next
	}
	return out
}

// sortRecordsByKey sorts recs ascending by (Start, End); it wraps
// golang.org/x/exp/slices as the teacher's bwt package does for its own
// sorts. Neither MergeCandidateLists nor any test calls it.
func sortRecordsByKey(recs []Record) {
	slices.SortFunc(recs, func(a, b Record) int {
		switch {
		case lessKey(a, b):
			return -1
		case lessKey(b, a):
			return 1
		}
		return 0
	})
}
