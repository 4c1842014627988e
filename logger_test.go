package fastcrc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureLogger(buf *bytes.Buffer) *Logger {
	return NewLogger(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func lastRecord(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	var rec map[string]any
	require.NoError(t, json.Unmarshal(lines[len(lines)-1], &rec))
	return rec
}

func TestLogger_Engine(t *testing.T) {
	var buf bytes.Buffer
	_, err := New(CRC32, WithLogger(captureLogger(&buf)), WithBackend(BackendSoftware))
	require.NoError(t, err)

	assert.Contains(t, buf.String(), `"msg":"engine ready"`)
	assert.Contains(t, buf.String(), `"variant":"crc32"`)
	assert.Contains(t, buf.String(), `"backend":"software"`)

	buf.Reset()
	_, err = New(CRC32, WithLogger(captureLogger(&buf)), WithBackend(BackendHardware))
	require.Error(t, err)
	rec := lastRecord(t, &buf)
	assert.Equal(t, "ERROR", rec["level"])
	assert.Equal(t, "engine setup failed", rec["msg"])
}

func TestLogger_Check(t *testing.T) {
	var buf bytes.Buffer
	l := captureLogger(&buf)

	l.LogCheck(context.Background(), "modbus", BackendHardware, 0x4B37, 0x4B37)
	assert.Equal(t, "check value verified", lastRecord(t, &buf)["msg"])

	l.LogCheck(context.Background(), "modbus", BackendHardware, 0x4B37, 0)
	rec := lastRecord(t, &buf)
	assert.Equal(t, "check value mismatch", rec["msg"])
	assert.Equal(t, "hardware", rec["backend"])
}

func TestLogger_Sum(t *testing.T) {
	var buf bytes.Buffer
	l := captureLogger(&buf).WithVariant("cksum").WithBackend(BackendSoftware)

	l.LogSum(context.Background(), "a.bin", 9, 0x765E7680, nil)
	rec := lastRecord(t, &buf)
	assert.Equal(t, "checksum completed", rec["msg"])
	assert.Equal(t, "cksum", rec["variant"])
	assert.Equal(t, "software", rec["backend"])

	l.LogSum(context.Background(), "b.bin", 0, 0, errors.New("boom"))
	rec = lastRecord(t, &buf)
	assert.Equal(t, "checksum failed", rec["msg"])
	assert.Equal(t, "boom", rec["error"])
}

func TestNoopLogger(t *testing.T) {
	l := NoopLogger()
	assert.False(t, l.Enabled(context.Background(), slog.LevelError))
}

func TestVerify_LogsThroughEngineLogger(t *testing.T) {
	// Like WithLogLevel, this option builds a new logger each time it is applied.
	var bufs []*bytes.Buffer
	freshLogger := func(o *options) {
		buf := &bytes.Buffer{}
		bufs = append(bufs, buf)
		o.logger = captureLogger(buf)
	}

	alg, err := Lookup("crc32")
	require.NoError(t, err)
	require.NoError(t, alg.Verify(freshLogger, WithBackend(BackendSoftware)))

	require.Len(t, bufs, 1)
	assert.Contains(t, bufs[0].String(), "engine ready")
	assert.Equal(t, "check value verified", lastRecord(t, bufs[0])["msg"])
}
