package fasta_test

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bebop/triplex/bio/fasta"
)

// ExampleParser shows basic usage of the streaming parser.
func ExampleParser() {
	const raw = ">chr1\nGATTACACATGAT\n>chr2\nAAAA\n"

	parser := fasta.NewParser(strings.NewReader(raw), 256)
	for {
		record, err := parser.Next()
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Println(err)
			}
			break
		}
		fmt.Println(record.Identifier, record.Sequence)
	}
	// Output:
	// chr1 GATTACACATGAT
	// chr2 AAAA
}
