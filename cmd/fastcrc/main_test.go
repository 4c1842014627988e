package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fastcrc/internal/resource"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append(args, "--log-level", "error"))
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestList(t *testing.T) {
	out, err := execute(t, "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 12)
	assert.True(t, strings.HasPrefix(lines[0], "NAME"))
	assert.Contains(t, out, "0x04C11DB7")
	assert.Contains(t, out, "0xCBF43926")
	assert.Contains(t, out, "posix")
}

func TestCheck(t *testing.T) {
	for _, backend := range []string{"software", "sim"} {
		t.Run(backend, func(t *testing.T) {
			out, err := execute(t, "check", "--backend", backend)
			require.NoError(t, err)
			assert.Equal(t, 11, strings.Count(out, " ok\n"))
			assert.NotContains(t, out, "FAIL")
		})
	}
}

func TestCheckSelected(t *testing.T) {
	out, err := execute(t, "check", "modbus", "CRC-16/CCITT")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(out, " ok\n"))
	assert.Contains(t, out, "kermit")
}

func TestCheckUnknown(t *testing.T) {
	_, err := execute(t, "check", "crc64")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "crc64")
}

func TestSum(t *testing.T) {
	a := writeFile(t, "a.txt", "123456789")
	b := writeFile(t, "b.txt", "")

	for _, backend := range []string{"software", "sim"} {
		t.Run(backend, func(t *testing.T) {
			out, err := execute(t, "sum", "--backend", backend, "-j", "2", a, b)
			require.NoError(t, err)
			assert.Equal(t, "cbf43926  9  "+a+"\n00000000  0  "+b+"\n", out)
		})
	}
}

func TestSumAlgorithm(t *testing.T) {
	a := writeFile(t, "a.txt", "123456789")

	out, err := execute(t, "sum", "-a", "modbus", "--buffer-size", "2", a)
	require.NoError(t, err)
	assert.Equal(t, "4b37  9  "+a+"\n", out)

	out, err = execute(t, "sum", "-a", "crc7", "--backend", "sim", a)
	require.NoError(t, err)
	assert.Equal(t, "75  9  "+a+"\n", out)
}

func TestSumRateLimited(t *testing.T) {
	a := writeFile(t, "a.txt", strings.Repeat("x", 4096))

	out, err := execute(t, "sum", "--bwlimit", "1048576", "--buffer-budget", "1024", "--buffer-size", "512", "-j", "4", a, a, a)
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(out, "  4096  "))
}

func TestSumErrors(t *testing.T) {
	_, err := execute(t, "sum", filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)

	_, err = execute(t, "sum", "--buffer-budget", "16", "--buffer-size", "32", writeFile(t, "a", "x"))
	require.Error(t, err)

	_, err = execute(t, "sum", "--backend", "bogus", writeFile(t, "b", "x"))
	require.Error(t, err)

	_, err = execute(t, "sum", "--log-format", "xml", writeFile(t, "c", "x"))
	require.Error(t, err)
}

func TestSumStdin(t *testing.T) {
	f := writeFile(t, "in", "123456789")
	r, err := os.Open(f)
	require.NoError(t, err)
	defer r.Close()

	saved := stdin
	stdin = r
	defer func() { stdin = saved }()

	out, err := execute(t, "sum", "-a", "xmodem")
	require.NoError(t, err)
	assert.Equal(t, "31c3  9  -\n", out)
}

func TestForEachFileBoundsWorkers(t *testing.T) {
	rc := resource.NewController(resource.Config{MaxWorkers: 2})
	files := make([]string, 8)

	var running, peak atomic.Int32
	seen := make([]bool, len(files))
	err := forEachFile(t.Context(), rc, files, func(_ context.Context, i int, _ string) error {
		n := running.Add(1)
		defer running.Add(-1)
		for {
			p := peak.Load()
			if n <= p || peak.CompareAndSwap(p, n) {
				break
			}
		}
		time.Sleep(5 * time.Millisecond)
		seen[i] = true
		return nil
	})
	require.NoError(t, err)
	assert.LessOrEqual(t, peak.Load(), int32(2))
	assert.NotContains(t, seen, false)
}

func TestForEachFileStopsOnError(t *testing.T) {
	rc := resource.NewController(resource.Config{MaxWorkers: 1})
	boom := errors.New("boom")

	var calls atomic.Int32
	err := forEachFile(t.Context(), rc, make([]string, 16), func(_ context.Context, _ int, _ string) error {
		calls.Add(1)
		return boom
	})
	require.ErrorIs(t, err, boom)
	assert.Less(t, calls.Load(), int32(16))
}
