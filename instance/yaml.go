// SPDX-License-Identifier: MIT
package instance

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a single YAML document of the form
//
//	capacity: 25
//	distances:
//	  - [0, 10]
//	  - [10, 0]
//	workers: [7]
//
// Unknown keys are rejected. The result is validated before it is returned.
//
// Errors: ErrTruncated for an empty document, ErrSyntax for YAML or type
// errors, plus every Validate error.
func ParseYAML(r io.Reader, opts ...Option) (*Instance, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var in Instance
	if err := dec.Decode(&in); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty YAML document", ErrTruncated)
		}
		return nil, fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if err := in.Validate(cfg); err != nil {
		return nil, err
	}

	return &in, nil
}

// WriteYAML encodes in as a YAML document ParseYAML accepts.
func (in *Instance) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(in); err != nil {
		return fmt.Errorf("instance: encode yaml: %w", err)
	}

	return enc.Close()
}

// Read decodes an instance from r in the given format. FormatAuto reads
// the text format.
func Read(r io.Reader, format Format, opts ...Option) (*Instance, error) {
	if format == FormatYAML {
		return ParseYAML(r, opts...)
	}

	return Parse(r, opts...)
}

// Load opens path and decodes it; FormatAuto is resolved from the file
// extension.
func Load(path string, format Format, opts ...Option) (*Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("instance: open %s: %w", path, err)
	}
	defer f.Close()

	if format == FormatAuto {
		format = DetectFormat(path)
	}

	return Read(f, format, opts...)
}
