// Copyright 2015 Daniël de Kok
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/danieldk/embeval"
	"github.com/danieldk/embeval/cmd/common"
	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("embeval-query", flag.ContinueOnError)
	fs.SetOutput(stderr)
	binary := fs.Bool("binary", false, "vectors are in the binary word2vec format")
	limit := fs.Int("n", 10, "number of results per query")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: embeval-query [-binary] [-n limit] vectors")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return common.ExitOK
		}
		return common.ExitUsage
	}

	if fs.NArg() != 1 || *limit < 1 {
		fs.Usage()
		return common.ExitUsage
	}

	logger := common.NewLogger(stderr, false)

	embeds, err := common.ReadEmbeddings(fs.Arg(0), *binary)
	if err != nil {
		logger.WithField("file", fs.Arg(0)).Errorf("cannot read vectors: %v", err)
		return common.ExitError
	}

	if err := query(embeds, *limit, stdin, stdout, logger); err != nil {
		logger.Errorf("cannot process queries: %v", err)
		return common.ExitError
	}

	return common.ExitOK
}

// query answers one query per line: a single word yields its most
// similar words, three words the answers to the analogy.
func query(embeds *embeval.Embeddings, limit int, in io.Reader, out io.Writer, logger logrus.FieldLogger) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		parts := strings.Fields(scanner.Text())

		var results []embeval.WordSimilarity
		var err error
		switch len(parts) {
		case 0:
			continue
		case 1:
			results, err = embeds.Similarity(parts[0], limit)
		case 3:
			results, err = embeds.Analogy(parts[0], parts[1], parts[2], limit)
		default:
			logger.WithField("line", scanner.Text()).Warn("Skipping line that does not have one or three words")
			continue
		}

		if err != nil {
			logger.Warn(err.Error())
			continue
		}

		for _, wordSimilarity := range results {
			if _, err := fmt.Fprintln(out, wordSimilarity.Word, wordSimilarity.Similarity); err != nil {
				return err
			}
		}
	}

	return scanner.Err()
}
