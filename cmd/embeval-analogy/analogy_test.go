package main

import (
	"bytes"
	"testing"

	"github.com/danieldk/embeval/cmd/common"
	"github.com/stretchr/testify/assert"
)

const (
	analogyFile = "../../testdata/analogies.txt"
	embedFile   = "../../testdata/embeddings.txt"
)

func TestRun(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"-a", analogyFile, "--embed_file", embedFile}, &stdout, &stderr)

	assert.Equal(t, common.ExitOK, code)
	assert.Equal(t, `dictionary length 5
capital total 1 in dict 0 correct 0 acc = n/a
state total 1 in dict 1 correct 1 acc = 1.0000
family total 4 in dict 3 correct 2 acc = 0.6667
overall total 6 in dict 4 correct 3 acc = 0.7500
`, stdout.String())
	assert.Contains(t, stderr.String(), "no analogies with all words in the vocabulary")
}

func TestRunMultiplicative(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{"--analogy_file", analogyFile, "-e", embedFile, "-f", "1", "-w", "2"}, &stdout, &stderr)

	assert.Equal(t, common.ExitOK, code)
	assert.Contains(t, stdout.String(), "dictionary length 5\n")
}

func TestRunUsage(t *testing.T) {
	testCases := []struct {
		name string
		args []string
		code int
	}{
		{name: "help", args: []string{"-h"}, code: common.ExitOK},
		{name: "missing analogy file", args: []string{"-e", embedFile}, code: common.ExitUsage},
		{name: "missing embedding file", args: []string{"-a", analogyFile}, code: common.ExitUsage},
		{name: "unknown flag", args: []string{"-x"}, code: common.ExitUsage},
		{name: "invalid measure function", args: []string{"-a", analogyFile, "-e", embedFile, "-f", "3"}, code: common.ExitUsage},
		{name: "non-numeric measure function", args: []string{"-a", analogyFile, "-e", embedFile, "-f", "x"}, code: common.ExitUsage},
		{name: "missing file", args: []string{"-a", analogyFile, "-e", "does-not-exist.txt"}, code: common.ExitError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Equal(t, tc.code, run(tc.args, &stdout, &stderr))
			assert.Empty(t, stdout.String())
			if tc.code != common.ExitError {
				assert.Contains(t, stderr.String(), "Usage: embeval-analogy")
			}
		})
	}
}
