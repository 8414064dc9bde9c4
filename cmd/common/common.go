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

// Package common contains helpers shared by the embeval commands.
package common

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/danieldk/embeval"
	"github.com/sirupsen/logrus"
)

// Exit codes.
const (
	ExitOK    = 0
	ExitError = 1
	ExitUsage = 2
)

// ExitIfError logs err and exits when err is not nil.
func ExitIfError(prefix string, err error) {
	if err != nil {
		logrus.Fatal(prefix, err.Error())
	}
}

// NewLogger returns a logger that writes to w. Debug messages are only
// logged when verbose is set.
func NewLogger(w io.Writer, verbose bool) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
	})

	if verbose {
		logger.SetLevel(logrus.DebugLevel)
	} else {
		logger.SetLevel(logrus.InfoLevel)
	}

	return logger
}

// StringVar binds a string flag with a short and a long name.
func StringVar(fs *flag.FlagSet, p *string, short, long, value, usage string) {
	fs.StringVar(p, short, value, usage)
	fs.StringVar(p, long, value, usage+" (shorthand -"+short+")")
}

// IntVar binds an int flag with a short and a long name.
func IntVar(fs *flag.FlagSet, p *int, short, long string, value int, usage string) {
	fs.IntVar(p, short, value, usage)
	fs.IntVar(p, long, value, usage+" (shorthand -"+short+")")
}

// BoolVar binds a bool flag with a short and a long name.
func BoolVar(fs *flag.FlagSet, p *bool, short, long string, value bool, usage string) {
	fs.BoolVar(p, short, value, usage)
	fs.BoolVar(p, long, value, usage+" (shorthand -"+short+")")
}

// ParseFlags parses args and returns the exit code to use when the
// command should not continue. -h prints the usage and returns ExitOK,
// invalid flags and missing required flags print the usage and return
// ExitUsage.
func ParseFlags(fs *flag.FlagSet, args []string, required ...string) (int, bool) {
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitOK, false
		}
		return ExitUsage, false
	}

	for _, name := range required {
		if f := fs.Lookup(name); f != nil && f.Value.String() == "" {
			fmt.Fprintf(fs.Output(), "missing required flag: -%s\n", name)
			fs.Usage()
			return ExitUsage, false
		}
	}

	if fs.NArg() != 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return ExitUsage, false
	}

	return ExitOK, true
}

// ReadEmbeddings reads normalized embeddings from the file at path,
// in the word2vec binary format if binary is set and in the text format
// otherwise.
func ReadEmbeddings(path string, binary bool) (*embeval.Embeddings, error) {
	if !binary {
		return embeval.ReadEmbeddingsFile(path, true)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return embeval.ReadWord2VecBinary(bufio.NewReader(f), true)
}
