// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNetAddress_String tests the String method of NetAddress
func TestNetAddress_String(t *testing.T) {
	tests := []struct {
		name     string
		addr     NetAddress
		expected string
	}{
		{
			name:     "empty address",
			addr:     NetAddress{},
			expected: "",
		},
		{
			name:     "localhost with port",
			addr:     NetAddress{Host: "localhost", Port: 8080},
			expected: "localhost:8080",
		},
		{
			name:     "IPv6 with port",
			addr:     NetAddress{Host: "::1", Port: 9090},
			expected: "[::1]:9090",
		},
		{
			name:     "only port no host",
			addr:     NetAddress{Host: "", Port: 8080},
			expected: ":8080",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.addr.String())
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "localhost", input: "localhost:8080", want: "localhost:8080"},
		{name: "ip", input: "127.0.0.1:9000", want: "127.0.0.1:9000"},
		{name: "ephemeral port", input: "127.0.0.1:0", want: "127.0.0.1:0"},
		{name: "no port", input: "localhost", wantErr: true},
		{name: "bad port", input: "localhost:abc", wantErr: true},
		{name: "port out of range", input: "localhost:70000", wantErr: true},
		{name: "bad host", input: "example.com:80", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var a NetAddress
			err := a.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, a.String())
		})
	}
}

func TestRegisterFlags_ToStructured(t *testing.T) {
	f := parsedFlags(t,
		"--generate-url", "http://localhost:9000/api/generate",
		"--request-timeout", "30s",
		"--link-address", "127.0.0.1:7070",
		"--download-dir", "/tmp/bundles",
		"--config", "/etc/cpgen.toml",
	)

	cfg := f.toStructured()
	assert.Equal(t, "http://localhost:9000/api/generate", cfg.Adapter.GenerateURL)
	assert.Equal(t, 30*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "127.0.0.1:7070", cfg.LinkServer.Address)
	assert.Equal(t, "/tmp/bundles", cfg.App.DownloadDir)
	assert.Equal(t, "/etc/cpgen.toml", cfg.ConfigFilePath)
}

func TestRegisterFlags_Unset(t *testing.T) {
	cfg := parsedFlags(t).toStructured()
	assert.Equal(t, &StructuredConfig{}, cfg)
}
