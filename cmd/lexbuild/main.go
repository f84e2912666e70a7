/*
Lexbuild reads words from stdin, one per line, and writes the resulting
Lexicon to a file as JSON.

Usage:

	lexbuild [flags]

The flags are:

	-o, --out FILE
		Write the built Lexicon to FILE. Defaults to "lexicon.json".

Blank lines and leading/trailing whitespace on each line are ignored.
Input need not be pre-sorted; lexbuild sorts and deduplicates before
building.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"

	"github.com/jamra/lexicon/pkg/lexicon"
)

var outFile = pflag.StringP("out", "o", "lexicon.json", "file to write the built Lexicon to")

func main() {
	pflag.Parse()

	words, err := readWords(os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexbuild: %s\n", err)
		os.Exit(1)
	}

	lex, err := lexicon.FromSeq(words)
	if err != nil {
		fmt.Fprintf(os.Stderr, "lexbuild: %s\n", err)
		os.Exit(1)
	}

	if err := writeLexicon(*outFile, lex); err != nil {
		fmt.Fprintf(os.Stderr, "lexbuild: %s\n", err)
		os.Exit(1)
	}

	fmt.Printf("wrote %d words (%d states) to %s\n", lex.Size(), lex.Length(), *outFile)
}

func readWords(r *os.File) ([][]byte, error) {
	var words [][]byte
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		words = append(words, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading stdin")
	}
	return words, nil
}

func writeLexicon(path string, lex *lexicon.Lexicon[byte]) error {
	data, err := lex.MarshalJSON()
	if err != nil {
		return errors.Wrap(err, "encoding lexicon")
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", path)
	}
	return nil
}
