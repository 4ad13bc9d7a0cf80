// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// StructuredFileConfig mirrors the on-disk layout of the configuration file.
// The same layout is used for JSON and TOML.
type StructuredFileConfig struct {
	App struct {
		DownloadDir string `json:"download_dir" toml:"download_dir"`
		Version     string `json:"version" toml:"version"`
	} `json:"app,omitempty" toml:"app"`

	Adapter struct {
		GenerateURL    string   `json:"generate_url" toml:"generate_url"`
		RequestTimeout Duration `json:"request_timeout" toml:"request_timeout"`
	} `json:"adapter,omitempty" toml:"adapter"`

	LinkServer struct {
		Address string `json:"address" toml:"address"`
	} `json:"link_server,omitempty" toml:"link_server"`
}

func parseFile(path string) (*StructuredConfig, error) {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return parseTOML(path)
	}
	return parseJSON(path)
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var fileCfg StructuredFileConfig
	if err := json.NewDecoder(jsonFile).Decode(&fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}

func (c StructuredFileConfig) toStructured() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			DownloadDir: c.App.DownloadDir,
			Version:     c.App.Version,
		},
		Adapter: Adapter{
			GenerateURL:    c.Adapter.GenerateURL,
			RequestTimeout: time.Duration(c.Adapter.RequestTimeout),
		},
		LinkServer: LinkServer{
			Address: c.LinkServer.Address,
		},
	}
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling
// from strings like "1h", "30s" and TOML unmarshaling through
// encoding.TextUnmarshaler.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		return d.UnmarshalText([]byte(value))
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

// UnmarshalText parses a Go duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	tmp, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}
