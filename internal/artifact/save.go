// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package artifact

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/MKhiriev/go-cp-generator/models"
)

// maxNameAttempts bounds the " (n)" suffixes tried before giving up.
const maxNameAttempts = 1000

// ErrNoFreeName is returned when every candidate file name is taken.
var ErrNoFreeName = errors.New("no free file name")

// Save writes the artifact's bundle into dir under its suggested name and
// returns the written path. An existing file is never overwritten: like a
// browser download, "cp_bundle.zip" becomes "cp_bundle (1).zip" and so on.
func Save(dir string, a models.ResultArtifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create download dir: %w", err)
	}

	name := filepath.Base(a.Bundle.Name)
	if name == "." || name == string(filepath.Separator) || name == "" {
		name = models.DefaultBundleName
	}
	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for i := 0; i < maxNameAttempts; i++ {
		candidate := name
		if i > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, i, ext)
		}
		p := filepath.Join(dir, candidate)

		f, err := os.OpenFile(p, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("create bundle file: %w", err)
		}

		if _, err = f.Write(a.Bundle.Data); err != nil {
			_ = f.Close()
			return "", fmt.Errorf("write bundle file: %w", err)
		}
		if err = f.Close(); err != nil {
			return "", fmt.Errorf("close bundle file: %w", err)
		}
		return p, nil
	}

	return "", fmt.Errorf("%w for %s in %s", ErrNoFreeName, name, dir)
}
