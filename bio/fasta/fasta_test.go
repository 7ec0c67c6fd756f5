package fasta

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestParser(t *testing.T) {
	for testIndex, test := range []struct {
		content  string
		expected []Record
	}{
		{
			content:  ">humen\nGATTACA\nCATGAT", // EOF-ended Fasta is valid
			expected: []Record{{Identifier: "humen", Sequence: "GATTACACATGAT"}},
		},
		{
			content:  ">humen\nGATTACA\nCATGAT\n",
			expected: []Record{{Identifier: "humen", Sequence: "GATTACACATGAT"}},
		},
		{
			content: ">doggy or something\nGATTACA\n\nCATGAT\n\n;a fun comment\n" +
				">homunculus\nAAAA\n",
			expected: []Record{
				{Identifier: "doggy or something", Sequence: "GATTACACATGAT"},
				{Identifier: "homunculus", Sequence: "AAAA"},
			},
		},
		{
			// IUPAC ambiguity codes and gap symbols are valid triplex input,
			// not just the four concrete bases.
			content:  ">ambiguous\nGATTACnnnRYKMWSrykmws-\n",
			expected: []Record{{Identifier: "ambiguous", Sequence: "GATTACnnnRYKMWSrykmws-"}},
		},
	} {
		var fastas []Record
		parser := NewParser(strings.NewReader(test.content), 256)
		for {
			fa, err := parser.Next()
			if err != nil {
				if !errors.Is(err, io.EOF) {
					t.Errorf("Got error: %s", err)
				}
				break
			}
			fastas = append(fastas, *fa)
		}
		if len(fastas) != len(test.expected) {
			t.Errorf("case index %d: got %d fastas, expected %d", testIndex, len(fastas), len(test.expected))
			continue
		}
		for index, gotFasta := range fastas {
			expected := test.expected[index]
			if expected != gotFasta {
				t.Errorf("got!=expected: %+v != %+v", gotFasta, expected)
			}
		}
	}
}

// TestReadEmptyFasta tests that input whose sequence has no identifier line
// yields an error and no records.
func TestReadEmptyFasta(t *testing.T) {
	var fastas []Record
	var targetError error
	emptyFasta := "testing\natagtagtagtagtagatgatgatgatgagatg\n\n\n\n\n\n\n\n\n\n\n"
	parser := NewParser(strings.NewReader(emptyFasta), 256)
	for {
		fa, err := parser.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil // EOF not treated as parsing error.
			}
			targetError = err
			break
		}
		fastas = append(fastas, *fa)
	}
	if targetError == nil {
		t.Errorf("expected error reading empty fasta stream")
	}
	if len(fastas) != 0 {
		t.Errorf("expected 0 fastas, got %d", len(fastas))
	}
}

func TestReadEmptySequence(t *testing.T) {
	var targetError error
	emptyFasta := ">testing\natagtagtagtagtagatgatgatgatgagatg\n>testing2\n\n\n\n\n\n\n\n\n\n"
	parser := NewParser(strings.NewReader(emptyFasta), 256)
	for {
		_, err := parser.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil // EOF not treated as parsing error.
			}
			targetError = err
			break
		}
	}
	if targetError == nil {
		t.Errorf("expected error reading empty fasta sequence stream: %s", targetError)
	}
}

func TestBufferSmall(t *testing.T) {
	var targetError error
	emptyFasta := ">test\natagtagtagtagtagatgatgatgatgagatg\n>test\n\n\n\n\n\n\n\n\n\n"
	parser := NewParser(strings.NewReader(emptyFasta), 8)
	for {
		_, err := parser.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				err = nil // EOF not treated as parsing error.
			}
			targetError = err
			break
		}
	}
	if targetError == nil {
		t.Errorf("expected error with too small of a buffer")
	}
}

// TestRejectsNonDNAByte confirms Next surfaces an error instead of handing
// triplex.Search/Align a sequence it would later reject deep inside encode.
func TestRejectsNonDNAByte(t *testing.T) {
	content := ">bogus\nGATTACAZZZ\n"
	parser := NewParser(strings.NewReader(content), 256)
	_, err := parser.Next()
	if err == nil {
		t.Errorf("expected error for sequence containing a non-DNA/IUPAC byte")
	}
}
