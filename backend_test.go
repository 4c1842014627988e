package fastcrc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBackend(t *testing.T) {
	tests := []struct {
		in   string
		want Backend
		ok   bool
	}{
		{"", BackendAuto, true},
		{"auto", BackendAuto, true},
		{" Software ", BackendSoftware, true},
		{"sw", BackendSoftware, true},
		{"hw", BackendHardware, true},
		{"peripheral", BackendHardware, true},
		{"fpga", BackendAuto, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseBackend(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBackend_String(t *testing.T) {
	assert.Equal(t, "auto", BackendAuto.String())
	assert.Equal(t, "software", BackendSoftware.String())
	assert.Equal(t, "hardware", BackendHardware.String())
	assert.Equal(t, "unknown", Backend(9).String())
}
