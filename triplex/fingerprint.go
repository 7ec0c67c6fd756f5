package triplex

import (
	"encoding/binary"

	"github.com/spaolacci/murmur3"
)

// Fingerprint hashes the coordinates that uniquely identify a candidate
// (start, end, type, strand) into a single uint32, grounded on the
// teacher's mash package which hashes each k-mer the same way (murmur3 over
// a small fixed-size byte buffer) before deduplicating. It is exported for
// callers that deduplicate Records across searches; cmd/triplex-search does
// not call it.
func Fingerprint(r Record) uint32 {
	var buf [16]byte
	binary.LittleEndian.PutUint32(buf[0:4], uint32(r.Start))
	binary.LittleEndian.PutUint32(buf[4:8], uint32(r.End))
	binary.LittleEndian.PutUint32(buf[8:12], uint32(r.Type))
	binary.LittleEndian.PutUint32(buf[12:16], uint32(r.Strand))
	return murmur3.Sum32(buf[:])
}
