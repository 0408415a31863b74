package git

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsRemoteFailure(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   bool
	}{
		{
			"dns failure",
			"fatal: unable to access 'https://github.com/onnx/onnx.git/': Could not resolve host: github.com",
			true,
		},
		{
			"ssh failure",
			"ssh: connect to host github.com port 22: Connection refused\nfatal: Could not read from remote repository.",
			true,
		},
		{
			"timeout",
			"fatal: unable to access 'https://github.com/onnx/onnx.git/': Failed to connect to github.com port 443: Connection timed out",
			true,
		},
		{
			"rejection is not a remote failure",
			"! [rejected]        myfeature -> myfeature (non-fast-forward)",
			false,
		},
		{
			"empty",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsRemoteFailure(tt.stderr))
		})
	}
}

func TestIsNonFastForwardRejection(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   bool
	}{
		{
			"plain rejection",
			"! [rejected]        myfeature -> myfeature (non-fast-forward)\nerror: failed to push some refs",
			true,
		},
		{
			"fetch first hint",
			"! [rejected]        myfeature -> myfeature (fetch first)",
			true,
		},
		{
			"force-with-lease stale info",
			"! [rejected]        myfeature -> myfeature (stale info)",
			true,
		},
		{
			"network failure is not a rejection",
			"fatal: Could not read from remote repository.",
			false,
		},
		{
			"empty",
			"",
			false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsNonFastForwardRejection(tt.stderr))
		})
	}
}
