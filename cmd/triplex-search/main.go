package main

import (
	"log"
	"os"

	"github.com/urfave/cli/v2"
)

// main is the entry point for the command line tool; separated from
// application() to keep arg parsing and the app object independently
// testable, the same split the teacher's poly command uses.
func main() {
	app := application()
	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// application builds the *cli.App that wires the "search" and "align"
// subcommands to the triplex package.
func application() *cli.App {
	return &cli.App{
		Name:  "triplex-search",
		Usage: "Find and align intramolecular triplex-forming regions in DNA.",

		Commands: []*cli.Command{
			{
				Name:  "search",
				Usage: "Scan a FASTA file for candidate triplexes.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "fasta", Required: true, Usage: "Path to the input FASTA file."},
					&cli.StringFlag{Name: "types", Value: "0,1,2,3,4,5,6,7", Usage: "Comma separated list of triplex types (0-7) to search."},
					&cli.IntFlag{Name: "min-score", Value: 10, Usage: "Minimum raw score for a candidate."},
					&cli.Float64Flag{Name: "p-value", Value: 0.05, Usage: "Maximum p-value for a candidate."},
					&cli.IntFlag{Name: "min-len", Value: 8, Usage: "Minimum stem length."},
					&cli.IntFlag{Name: "max-len", Value: 30, Usage: "Maximum stem length."},
					&cli.IntFlag{Name: "min-loop", Value: 3, Usage: "Minimum loop length."},
					&cli.IntFlag{Name: "max-loop", Value: 10, Usage: "Maximum loop length."},
					&cli.IntFlag{Name: "mismatch", Value: 7, Usage: "Mismatch penalty."},
					&cli.IntFlag{Name: "insertion", Value: 9, Usage: "Insertion/deletion penalty."},
					&cli.IntFlag{Name: "iso-change", Value: 5, Usage: "Isomorphic group change penalty."},
					&cli.IntFlag{Name: "iso-stay", Value: 0, Usage: "Isomorphic group continuity bonus."},
					&cli.IntFlag{Name: "dtwist", Value: 10, Usage: "Twist angle tolerance in degrees."},
					&cli.BoolFlag{Name: "eukaryotic", Usage: "Use eukaryotic Gumbel statistics instead of prokaryotic."},
					&cli.StringFlag{Name: "format", Value: "tsv", Usage: "Output format: tsv or json."},
				},
				Action: searchCommand,
			},
			{
				Name:  "align",
				Usage: "Align a single candidate substring.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "seq", Required: true, Usage: "Candidate DNA substring to align."},
					&cli.IntFlag{Name: "type", Value: 0, Usage: "Triplex type (0-7)."},
					&cli.IntFlag{Name: "min-loop", Value: 3, Usage: "Minimum loop length."},
					&cli.IntFlag{Name: "max-loop", Value: 10, Usage: "Maximum loop length."},
					&cli.IntFlag{Name: "min-len", Value: 8, Usage: "Minimum stem length."},
					&cli.IntFlag{Name: "max-len", Value: 30, Usage: "Maximum stem length."},
					&cli.IntFlag{Name: "mismatch", Value: 7, Usage: "Mismatch penalty."},
					&cli.IntFlag{Name: "insertion", Value: 9, Usage: "Insertion/deletion penalty."},
					&cli.IntFlag{Name: "iso-change", Value: 5, Usage: "Isomorphic group change penalty."},
					&cli.IntFlag{Name: "iso-stay", Value: 0, Usage: "Isomorphic group continuity bonus."},
					&cli.IntFlag{Name: "dtwist", Value: 10, Usage: "Twist angle tolerance in degrees."},
				},
				Action: alignCommand,
			},
		},
	}
}
