// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"net"
	"net/url"
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Currently a no-op placeholder; client-specific rules live in
// [ClientConfig.validate].
func (cfg *StructuredConfig) validate() error {
	return nil
}

func (cfg *ClientConfig) validate() error {
	u, err := url.Parse(cfg.Adapter.GenerateURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if _, _, err = net.SplitHostPort(cfg.LinkServer.Address); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidLinkServerConfigs, err)
	}

	if cfg.App.DownloadDir == "" {
		return ErrInvalidAppConfigs
	}

	return nil
}
