package main

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/urfave/cli/v2"
	"lukechampine.com/blake3"

	"github.com/bebop/triplex/bio/fasta"
	"github.com/bebop/triplex/triplex"
)

// searchCommand loads a FASTA file, runs triplex.Search over every record,
// and prints the merged results as TSV or JSON.
func searchCommand(c *cli.Context) error {
	types, err := parseTypes(c.String("types"))
	if err != nil {
		return err
	}

	params, err := triplex.NewParams(c.Int("min-score"), c.Float64("p-value"), c.Int("min-len"), c.Int("max-len"), c.Int("min-loop"), c.Int("max-loop"))
	if err != nil {
		return err
	}
	pen, err := triplex.NewPenalization(c.Int("dtwist"), c.Int("mismatch"), c.Int("insertion"), c.Int("iso-change"), c.Int("iso-stay"))
	if err != nil {
		return err
	}
	class := triplex.SeqClassProkaryotic
	if c.Bool("eukaryotic") {
		class = triplex.SeqClassEukaryotic
	}
	cfg := triplex.DefaultConfig()

	path := c.String("fasta")
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	log.Printf("triplex-search: hashing %s", path)
	hash, err := hashFile(path)
	if err != nil {
		return err
	}
	log.Printf("triplex-search: input hash %s", hash)

	parser := fasta.NewParser(f, 1<<20)
	var allRecords []triplex.Record
	for {
		rec, err := parser.Next()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return fmt.Errorf("reading %s: %w", path, err)
		}

		log.Printf("triplex-search: searching %s (%d bp)", rec.Identifier, len(rec.Sequence))
		results, err := triplex.Search([]byte(rec.Sequence), types, params, pen, cfg, class, func(done, total int) {
			if total > 0 && done%max(total/10, 1) == 0 {
				log.Printf("triplex-search: %s %d/%d", rec.Identifier, done, total)
			}
		})
		if err != nil {
			return fmt.Errorf("searching %s: %w", rec.Identifier, err)
		}
		allRecords = append(allRecords, results...)
	}

	return printRecords(c.String("format"), hash, allRecords)
}

// alignCommand aligns a single candidate substring given on the command
// line and prints the resulting stem/loop string.
func alignCommand(c *cli.Context) error {
	params, err := triplex.NewParams(1, 1.0, c.Int("min-len"), c.Int("max-len"), c.Int("min-loop"), c.Int("max-loop"))
	if err != nil {
		return err
	}
	pen, err := triplex.NewPenalization(c.Int("dtwist"), c.Int("mismatch"), c.Int("insertion"), c.Int("iso-change"), c.Int("iso-stay"))
	if err != nil {
		return err
	}
	cfg := triplex.DefaultConfig()

	out, err := triplex.Align([]byte(c.String("seq")), c.Int("type"), cfg, params, pen)
	if err != nil {
		return err
	}
	fmt.Println(out)
	return nil
}

func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s for hashing: %w", path, err)
	}
	defer f.Close()

	h := blake3.New(32, nil)
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func parseTypes(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v < 0 || v >= triplex.NumTypes {
			return nil, fmt.Errorf("invalid triplex type %q", p)
		}
		out = append(out, v)
	}
	return out, nil
}

func printRecords(format, inputHash string, records []triplex.Record) error {
	switch format {
	case "json":
		payload := struct {
			InputHash string           `json:"input_hash"`
			Records   []triplex.Record `json:"records"`
		}{InputHash: inputHash, Records: records}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(payload)
	case "tsv":
		for _, r := range records {
			fmt.Println(r.String())
		}
		return nil
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

