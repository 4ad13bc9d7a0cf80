// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"fmt"
	"sync"

	"github.com/MKhiriev/go-cp-generator/internal/adapter"
	"github.com/MKhiriev/go-cp-generator/internal/artifact"
	"github.com/MKhiriev/go-cp-generator/internal/config"
	"github.com/MKhiriev/go-cp-generator/internal/logger"
	"github.com/MKhiriev/go-cp-generator/internal/service"
	"github.com/MKhiriev/go-cp-generator/internal/utils"
	"github.com/MKhiriev/go-cp-generator/models"
)

const loggerRole = "cpgen"

// commandContext lazily builds the config and services shared by all
// subcommands.
type commandContext struct {
	flags *config.Flags

	configOnce sync.Once
	config     *config.ClientConfig
	configErr  error

	logger *logger.Logger
	store  *artifact.MemoryStore
}

func newCommandContext(flags *config.Flags) *commandContext {
	return &commandContext{flags: flags}
}

func (c *commandContext) ensureConfig() (*config.ClientConfig, error) {
	c.configOnce.Do(func() {
		c.config, c.configErr = config.GetClientConfig(c.flags)
		if c.configErr != nil {
			c.configErr = fmt.Errorf("load config: %w", c.configErr)
		}
	})
	return c.config, c.configErr
}

func (c *commandContext) log() *logger.Logger {
	if c.logger == nil {
		c.logger = logger.NewClientLogger(loggerRole)
	}
	return c.logger
}

// services wires the generator adapter and a fresh artifact store.
func (c *commandContext) services() (*service.ClientServices, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, err
	}

	generator, err := adapter.NewHTTPGeneratorAdapter(cfg.Adapter, c.log())
	if err != nil {
		return nil, fmt.Errorf("create generator adapter: %w", err)
	}

	c.store = artifact.NewMemoryStore(utils.NewUUIDGenerator())

	services, err := service.NewClientServices(generator, c.store, c.log())
	if err != nil {
		return nil, fmt.Errorf("create client services: %w", err)
	}
	return services, nil
}

// buildInfo reports the linker-stamped build. When no version was stamped,
// the configured app version is used if the config loads.
func (c *commandContext) buildInfo() models.AppBuildInfo {
	version := buildVersion
	if version == "" {
		if cfg, err := c.ensureConfig(); err == nil {
			version = cfg.App.Version
		}
	}
	return models.NewAppBuildInfo(version, buildDate, buildCommit)
}
