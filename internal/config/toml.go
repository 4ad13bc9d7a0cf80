// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

func parseTOML(tomlFilePath string) (*StructuredConfig, error) {
	data, err := os.ReadFile(tomlFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a toml file: %w", err)
	}

	var fileCfg StructuredFileConfig
	if err := toml.Unmarshal(data, &fileCfg); err != nil {
		return nil, fmt.Errorf("error decoding toml configs: %w", err)
	}

	return fileCfg.toStructured(), nil
}
