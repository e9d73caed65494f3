package cli

import (
	"fmt"
	"os"

	"github.com/relgraph/relgraph/pkg/instance/wire"
	"github.com/relgraph/relgraph/pkg/pipeline"
)

// loadInstance reads an instance file in the given encoding with the given
// normalization options.
func (c *CLI) loadInstance(path, encoding string, opts wire.Options) (*wire.Instance, error) {
	if encoding == pipeline.EncodingBSON {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return wire.ReadBSON(data, opts, c.Logger)
	}
	return wire.ImportJSON(path, opts, c.Logger)
}

// writeInstance writes an instance to path in the given encoding, or to
// stdout when path is empty (JSON only).
func writeInstance(in *wire.Instance, path, encoding string) error {
	if encoding == pipeline.EncodingBSON {
		data, err := wire.EncodeBSON(in)
		if err != nil {
			return err
		}
		return os.WriteFile(path, data, 0o644)
	}
	if path == "" {
		return wire.WriteJSON(in, os.Stdout)
	}
	return wire.ExportJSON(in, path)
}
