// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package configfile

import (
	"os"

	"gopkg.in/yaml.v3"
)

// ReadDocument reads the configuration file at path and parses it into a
// [Document]. The file must contain valid YAML whose top level is a mapping.
//
// Failures are returned as a [*LoadError] with one of three kinds:
// [ErrNotFound] when the file is missing or unreadable, [ErrBaseParse] for
// malformed YAML, and [ErrBaseShape] when the top level is not a mapping (an
// empty file decodes to a null document and is a shape error too).
//
// ReadDocument has no side effects beyond the read.
func ReadDocument(path string) (Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LoadError{Kind: ErrNotFound, Path: path, Err: err}
	}

	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Kind: ErrBaseParse, Path: path, Err: err}
	}

	doc, ok := asDocument(raw)
	if !ok {
		return nil, &LoadError{Kind: ErrBaseShape, Path: path}
	}

	return doc, nil
}
