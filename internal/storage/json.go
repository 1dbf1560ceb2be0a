// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package storage

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/chefgpt/chefgpt-tui/internal/util"
)

// jsonIndent matches the persisted format: four spaces per level.
const jsonIndent = "    "

// Load reads the file at path and unmarshals it as JSON. A missing file is
// not an error: the supplied default is returned unchanged. A file that
// exists but holds invalid JSON is an error that propagates to the caller.
func Load[T any](path string, def T) (T, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return def, nil
		}
		return def, fmt.Errorf("storage: reading %s: %w", path, err)
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return def, fmt.Errorf("storage: parsing %s: %w", path, err)
	}
	return v, nil
}

// Save marshals v as indented JSON and overwrites path in full.
func Save[T any](path string, v T) error {
	data, err := json.MarshalIndent(v, "", jsonIndent)
	if err != nil {
		return fmt.Errorf("storage: encoding %s: %w", path, err)
	}
	data = append(data, '\n')

	if err := util.AtomicWriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("storage: writing %s: %w", path, err)
	}
	return nil
}
