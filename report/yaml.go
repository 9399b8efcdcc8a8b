package report

import (
	"fmt"
	"io"

	"github.com/npillmayer/treearray/bench"
	"gopkg.in/yaml.v3"
)

type document struct {
	Results []bench.Result `yaml:"results"`
}

// YAML writes results in a machine-readable YAML format. Durations are
// written in Go notation, e.g. "1.5ms".
func YAML(w io.Writer, results []bench.Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(document{Results: results}); err != nil {
		return fmt.Errorf("report: encoding YAML: %w", err)
	}
	return enc.Close()
}

// ReadYAML reads results previously written by YAML.
func ReadYAML(r io.Reader) ([]bench.Result, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("report: decoding YAML: %w", err)
	}
	return doc.Results, nil
}
