package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	debugger "github.com/gogpu/gg-debugger"
)

const (
	formatJSON = "json"
	formatYAML = "yaml"
)

// formatOf guesses the wire syntax of a file from its extension. "-"
// and unknown extensions are JSON.
func formatOf(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	default:
		return formatJSON
	}
}

// readRecording loads a recording from path, or from stdin when path
// is "-".
func readRecording(path string, stdin io.Reader) (*debugger.Recording, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, err
	}

	if formatOf(path) == formatYAML {
		var obj map[string]any
		if err := yaml.Unmarshal(data, &obj); err != nil {
			return nil, fmt.Errorf("%s: %w: %v", path, debugger.ErrMalformed, err)
		}
		rec, err := debugger.DecodeRecordingValue(obj)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return rec, nil
	}

	rec, err := debugger.DecodeRecording(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rec, nil
}

// writeRecording encodes rec in the given format.
func writeRecording(w io.Writer, rec *debugger.Recording, format string, binaries bool) error {
	opt := debugger.WithBinaries(binaries)
	if format == formatYAML {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(rec.Encode(opt)); err != nil {
			return fmt.Errorf("%w: %v", debugger.ErrEncode, err)
		}
		return enc.Close()
	}
	return rec.EncodeJSON(w, opt)
}

// openOutput returns stdout for "" or "-", otherwise a new file.
func openOutput(path string, stdout io.Writer) (io.Writer, func() error, error) {
	if path == "" || path == "-" {
		return stdout, func() error { return nil }, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, err
	}
	return f, f.Close, nil
}
