/*
Package fasta parses FASTA-formatted DNA sequences for the triplex search
engine.

Fasta is a flat text file format developed in 1985 to store nucleotide and
amino acid sequences. It is extremely simple and well-supported across many
languages. However, this simplicity means that annotation of genetic objects
is not supported.

Unlike a general-purpose FASTA library, this package is ingest-only: the
triplex CLI never re-emits FASTA, so there is no writer here, and every
record is validated against the DNA/IUPAC alphabet triplex.Search and
triplex.Align accept as it is parsed, rather than deferred to their own
input validation.
*/
package fasta

import (
	"bufio"
	"bytes"
	"fmt"
	"io"

	"github.com/bebop/triplex/checks"
)

/******************************************************************************

Fasta is a very simple file format for working with DNA, RNA, or protein sequences.
It was first released in 1985 and is still widely used in bioinformatics.

https://en.wikipedia.org/wiki/FASTA_format

This parser streams records one at a time so that arbitrarily large dumps of
sequences can be scanned without buffering the whole file in memory.

******************************************************************************/

// Record is a single FASTA entry: an Identifier taken from its header line
// and the raw Sequence bytes that follow, unwrapped across line breaks.
type Record struct {
	Identifier string `json:"identifier"`
	Sequence   string `json:"sequence"`
}

// Parser is a flexible parser that provides ample
// control over reading fasta-formatted sequences.
// It is initialized with NewParser.
type Parser struct {
	// scanner keeps state of current reader.
	scanner    bufio.Scanner
	buff       bytes.Buffer
	identifier string
	start      bool
	line       uint
	more       bool
}

// NewParser returns a Parser that uses r as the source
// from which to parse fasta formatted sequences.
func NewParser(r io.Reader, maxLineSize int) *Parser {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, maxLineSize)
	scanner.Buffer(buf, maxLineSize)
	return &Parser{
		scanner: *scanner,
		start:   true,
		more:    true,
	}
}

// Next reads the next fasta sequence from the underlying reader and returns
// the result. Next only returns an error if it:
//   - Attempts to read and fails to find a valid fasta sequence.
//   - Returns reader's EOF if called after reader has been exhausted.
//   - Finds a sequence byte outside the DNA/IUPAC alphabet triplex accepts.
//
// A final sequence that ends at EOF without a trailing newline is returned
// with a nil error.
func (p *Parser) Next() (*Record, error) {
	if !p.more {
		return &Record{}, io.EOF
	}
	for p.scanner.Scan() {
		line := p.scanner.Bytes()
		if p.scanner.Err() != nil {
			break
		}
		p.line++
		switch {
		// if there's nothing on this line skip this iteration of the loop
		case len(line) == 0:
			continue
		// if it's a comment skip this line
		case line[0] == ';':
			continue
		// start of file with no identifier, error
		case line[0] != '>' && p.start:
			err := fmt.Errorf("invalid input: missing sequence identifier for sequence starting at line %d", p.line)
			record, _ := p.newRecord()
			return &record, err
		// start of a fasta line
		case line[0] != '>':
			p.buff.Write(line)
		// Process normal new lines
		case line[0] == '>' && !p.start:
			record, err := p.newRecord()
			// New name
			p.identifier = string(line[1:])
			return &record, err
		// Process first line of file
		case line[0] == '>' && p.start:
			p.identifier = string(line[1:])
			p.start = false
		}
	}
	p.more = false
	// Add final sequence in file
	record, err := p.newRecord()
	if err != nil {
		return &record, err
	}
	return &record, nil
}

func (p *Parser) newRecord() (Record, error) {
	sequence := p.buff.String()
	if sequence == "" {
		return Record{}, fmt.Errorf("%s has no sequence", p.identifier)
	}
	if !checks.IsIUPACDNA(sequence) {
		return Record{}, fmt.Errorf("%s contains a byte outside the DNA/IUPAC alphabet", p.identifier)
	}
	record := Record{
		Identifier: p.identifier,
		Sequence:   sequence,
	}
	// Reset sequence buffer
	p.buff.Reset()
	return record, nil
}
