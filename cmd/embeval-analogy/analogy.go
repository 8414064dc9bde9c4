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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danieldk/embeval"
	"github.com/danieldk/embeval/cmd/common"
	"github.com/sirupsen/logrus"
)

type options struct {
	analogyFile string
	embedFile   string
	measureFunc int
	workers     int
	binary      bool
	verbose     bool
}

func newFlagSet(opts *options, stderr io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("embeval-analogy", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: embeval-analogy -a <analogy_file> -e <embed_file> [-f 0|1]")
		fs.PrintDefaults()
	}

	common.StringVar(fs, &opts.analogyFile, "a", "analogy_file", "", "analogy file")
	common.StringVar(fs, &opts.embedFile, "e", "embed_file", "", "embedding file")
	common.IntVar(fs, &opts.measureFunc, "f", "measure_func", 0, "measure function: 0 (vector offset) or 1 (multiplicative)")
	common.IntVar(fs, &opts.workers, "w", "workers", 1, "number of evaluation goroutines")
	common.BoolVar(fs, &opts.binary, "b", "binary", false, "embedding file is in the binary word2vec format")
	common.BoolVar(fs, &opts.verbose, "v", "verbose", false, "log incorrect predictions")

	return fs
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	var opts options
	fs := newFlagSet(&opts, stderr)
	if code, ok := common.ParseFlags(fs, args, "a", "e"); !ok {
		return code
	}

	method, err := embeval.ParseMethod(opts.measureFunc)
	if err != nil {
		fmt.Fprintln(stderr, err)
		fs.Usage()
		return common.ExitUsage
	}

	logger := common.NewLogger(stderr, opts.verbose)

	analogies, err := embeval.ReadAnalogiesFile(opts.analogyFile)
	if err != nil {
		logger.WithField("file", opts.analogyFile).Errorf("cannot read analogies: %v", err)
		return common.ExitError
	}

	if analogies.Merged() {
		logger.WithField("sections", analogies.Sections).Warn("sections after the third were merged into the family group")
	}

	embeds, err := common.ReadEmbeddings(opts.embedFile, opts.binary)
	if err != nil {
		logger.WithField("file", opts.embedFile).Errorf("cannot read embeddings: %v", err)
		return common.ExitError
	}

	logger.WithFields(logrus.Fields{
		"words":  embeds.Size(),
		"dims":   embeds.Dims(),
		"method": method.String(),
	}).Debug("loaded embeddings")

	fmt.Fprintln(stdout, "dictionary length", embeds.Size())

	evaluator := &embeval.Evaluator{
		Embeddings: embeds,
		Method:     method,
		Workers:    opts.workers,
		Log:        logger,
	}

	perCategory, overall, err := evaluator.EvaluateAll(analogies)
	if err != nil {
		logger.Errorf("cannot evaluate analogies: %v", err)
		return common.ExitError
	}

	for _, c := range embeval.Categories {
		if perCategory[c].InDict == 0 {
			logger.WithField("category", c.String()).Warn("no analogies with all words in the vocabulary")
		}
	}

	if err := embeval.WriteReport(stdout, perCategory, overall); err != nil {
		logger.Errorf("cannot write report: %v", err)
		return common.ExitError
	}

	return common.ExitOK
}
