package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relgraph/relgraph/pkg/pipeline"
	"github.com/relgraph/relgraph/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output      string   // output file path
	format      string   // output format: dot, svg, png, json
	encoding    string   // input encoding: json or bson
	projections []string // atom ids to project over first
	styleFile   string   // TOML style file path
	rankdir     string   // graph direction override
	hideAll     bool     // drop all disconnected nodes
	hideBuiltin bool     // drop disconnected builtin nodes
	noCache     bool     // disable the artifact cache
}

// renderCommand creates the render command for visualizing an instance.
//
// Default settings:
//   - format: svg
//   - style: the built-in style (transparent background, boxed nodes)
//   - artifact caching: on (keyed by DOT content and format)
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [instance]",
		Short: "Render an instance as a graph",
		Long: `Render an instance as a graph.

Atoms become nodes and tuples become chains of labeled edges. The result
can be written as Graphviz DOT source, rendered SVG or PNG, or the graph
document as JSON. Rendered SVG and PNG artifacts are cached locally for
faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: input name with format extension)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", pipeline.FormatSVG, "output format: svg (default), png, dot, json")
	cmd.Flags().StringVar(&opts.encoding, "encoding", "", "input encoding: json or bson (default: by extension)")
	cmd.Flags().StringSliceVarP(&opts.projections, "project", "p", nil, "atom id(s) to project over before rendering")
	cmd.Flags().StringVar(&opts.styleFile, "style", "", "TOML style file")
	cmd.Flags().StringVar(&opts.rankdir, "rankdir", "", "graph direction: TB, LR, BT, RL")
	cmd.Flags().BoolVar(&opts.hideAll, "hide-disconnected", false, "hide all nodes without edges")
	cmd.Flags().BoolVar(&opts.hideBuiltin, "hide-disconnected-builtins", false, "hide builtin nodes without edges")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")

	return cmd
}

// runRender executes the pipeline for the render command and writes the
// artifact.
func (c *CLI) runRender(ctx context.Context, input string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	style, err := c.loadStyle(opts)
	if err != nil {
		return err
	}

	runner := c.newRunner(opts.noCache)

	spinner := newSpinnerWithContext(ctx, fmt.Sprintf("Rendering %s...", input))
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		Input:                    input,
		Encoding:                 encodingFor(opts.encoding, input),
		Projections:              opts.projections,
		HideDisconnected:         opts.hideAll,
		HideDisconnectedBuiltins: opts.hideBuiltin,
		Format:                   opts.format,
		Style:                    style,
	})
	if err != nil {
		spinner.StopWithError("Rendering failed")
		return err
	}
	spinner.Stop()

	outputPath := opts.output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + "." + opts.format
	}
	if err := os.WriteFile(outputPath, result.Artifact, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", outputPath, err)
	}
	logger.Debug("wrote artifact", "path", outputPath, "bytes", len(result.Artifact))

	printSuccess("Rendered %s", input)
	printGraphStats(result.Stats.NodeCount, result.Stats.EdgeCount, result.CacheInfo.RenderHit)
	printFile(outputPath)
	return nil
}

// loadStyle resolves the style for a render run from the flags.
func (c *CLI) loadStyle(opts *renderOpts) (render.Style, error) {
	style := render.DefaultStyle()
	if opts.styleFile != "" {
		loaded, err := render.LoadStyle(opts.styleFile)
		if err != nil {
			return render.Style{}, err
		}
		style = loaded
	}
	if opts.rankdir != "" {
		style.Rankdir = opts.rankdir
	}
	return style, style.Validate()
}
