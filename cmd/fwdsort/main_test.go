package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeInput(t testing.TB, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	a := writeInput(t, dir, "a.txt", "pear\napple\nfig\n")
	b := writeInput(t, dir, "b.txt", "kiwi\nbanana\n")
	nums := writeInput(t, dir, "nums.txt", "10\n-3\n 7\n2\n")
	bad := writeInput(t, dir, "bad.txt", "1\ntwo\n3\n")

	for _, tt := range []struct {
		name   string
		args   []string
		stdin  string
		stdout string
		code   int
		stderr string
	}{
		{
			name:   "Stdin",
			stdin:  "c\na\nb\n",
			stdout: "a\nb\nc\n",
		},
		{
			name:   "Files",
			args:   []string{a, b},
			stdout: "apple\nfig\npear\nbanana\nkiwi\n",
		},
		{
			name:   "Merge",
			args:   []string{"-m", a, b},
			stdout: "apple\nbanana\nfig\nkiwi\npear\n",
		},
		{
			name:   "Reverse",
			args:   []string{"-r", a},
			stdout: "pear\nfig\napple\n",
		},
		{
			name:   "Numeric",
			args:   []string{"-n", nums},
			stdout: "-3\n2\n7\n10\n",
		},
		{
			name:   "NumericReverseMergeWithStdin",
			args:   []string{"-n", "-r", "-m", "-p", "1", nums, "-"},
			stdin:  "5\n",
			stdout: "10\n7\n5\n2\n-3\n",
		},
		{
			name:   "EmptyInput",
			args:   []string{"-"},
			stdout: "",
		},
		{
			name:   "ParseError",
			args:   []string{"-n", bad},
			code:   1,
			stderr: "bad.txt:2: strconv.ParseInt",
		},
		{
			name:   "MissingFile",
			args:   []string{filepath.Join(dir, "missing.txt")},
			code:   1,
			stderr: "missing.txt",
		},
		{
			name:   "WrongArgs",
			args:   []string{"-p", "0"},
			code:   2,
			stderr: "parallel must be positive",
		},
		{
			name:   "UnknownFlag",
			args:   []string{"-unknown"},
			code:   2,
			stderr: "flag provided but not defined",
		},
		{
			name:   "Help",
			args:   []string{"-h"},
			code:   0,
			stderr: "usage:",
		},
	} {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			err := run(context.Background(), tt.args, strings.NewReader(tt.stdin), &stdout, &stderr)
			require.Equal(t, tt.code, exitCode(err, &stderr))
			require.Equal(t, tt.stdout, stdout.String())
			require.Contains(t, stderr.String(), tt.stderr)
		})
	}
}

func TestRunCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var stdout, stderr bytes.Buffer
	err := run(ctx, nil, strings.NewReader("b\na\n"), &stdout, &stderr)
	require.ErrorIs(t, err, context.Canceled)
	require.Empty(t, stdout.String())
}
