package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relgraph/relgraph/pkg/instance/wire"
	"github.com/relgraph/relgraph/pkg/pipeline"
)

// convertCommand creates the convert command for re-encoding instances.
func (c *CLI) convertCommand() *cobra.Command {
	var (
		output string
		from   string
		to     string
		opts   = wire.DefaultOptions()
	)

	cmd := &cobra.Command{
		Use:   "convert [instance]",
		Short: "Re-encode an instance between JSON and BSON",
		Long: `Re-encode an instance between JSON and BSON.

Conversion runs the input through the same normalization as every other
command: same-named relation blocks are merged, omitted type lists are
filled in from the atoms, and references are validated. Each of these can
be switched off individually.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := args[0]
			fromEnc := encodingFor(from, input)
			toEnc := to
			if toEnc == "" {
				toEnc = otherEncoding(fromEnc)
			}
			if !validEncoding(fromEnc) || !validEncoding(toEnc) {
				return fmt.Errorf("invalid encoding (must be 'json' or 'bson')")
			}

			in, err := c.loadInstance(input, fromEnc, opts)
			if err != nil {
				return err
			}
			if !opts.ValidateReferences {
				printWarning("reference validation disabled; output may contain dangling references")
			}

			outputPath := output
			if outputPath == "" {
				outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + toEnc
			}
			if err := writeInstance(in, outputPath, toEnc); err != nil {
				return err
			}

			printSuccess("Converted %s", input)
			printInstanceStats(in.AtomCount(), in.RelationCount(), in.TupleCount())
			printFile(outputPath)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with target extension)")
	cmd.Flags().StringVar(&from, "from", "", "input encoding: json or bson (default: by extension)")
	cmd.Flags().StringVar(&to, "to", "", "output encoding: json or bson (default: the other one)")
	cmd.Flags().BoolVar(&opts.MergeRelations, "merge-relations", opts.MergeRelations, "merge same-named relation blocks")
	cmd.Flags().BoolVar(&opts.InferTypes, "infer-types", opts.InferTypes, "create type entries for undeclared atom types")
	cmd.Flags().BoolVar(&opts.ValidateReferences, "validate-references", opts.ValidateReferences, "reject tuples over unknown atoms")
	cmd.Flags().BoolVar(&opts.DeduplicateAtoms, "dedupe-atoms", opts.DeduplicateAtoms, "keep the first atom on duplicate ids")

	return cmd
}

func validEncoding(e string) bool {
	return e == pipeline.EncodingJSON || e == pipeline.EncodingBSON
}

func otherEncoding(e string) string {
	if e == pipeline.EncodingJSON {
		return pipeline.EncodingBSON
	}
	return pipeline.EncodingJSON
}
