package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/relgraph/relgraph/pkg/instance/wire"
)

// projectCommand creates the project command for collapsing sorts out of an
// instance.
func (c *CLI) projectCommand() *cobra.Command {
	var (
		output   string
		encoding string
	)

	cmd := &cobra.Command{
		Use:   "project [instance] [atom...]",
		Short: "Project an instance over the given atoms",
		Long: `Project an instance over the given atoms, Alloy style.

Each chosen atom becomes implicit context: its whole sort disappears from
the result, affected relations keep only the tuples that mention the atom,
and the matching columns are dropped. Two atoms may not share a top-level
type.

When no atoms are given, an interactive picker is shown.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.loadInstance(args[0], encodingFor(encoding, args[0]), wire.DefaultOptions())
			if err != nil {
				return err
			}

			atomIDs := args[1:]
			if len(atomIDs) == 0 {
				atomIDs, err = pickAtoms(in)
				if err != nil {
					return err
				}
				if len(atomIDs) == 0 {
					printInfo("No atoms selected")
					return nil
				}
			}

			return c.runProject(in, atomIDs, output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&encoding, "encoding", "", "input encoding: json or bson (default: by extension)")

	return cmd
}

func (c *CLI) runProject(in *wire.Instance, atomIDs []string, output string) error {
	prog := newProgress(c.Logger)

	projected, err := in.Project(atomIDs)
	if err != nil {
		return err
	}
	res := projected.(*wire.Instance)
	prog.done(fmt.Sprintf("Projected over %d atoms, %d atoms remain", len(atomIDs), res.AtomCount()))

	if err := writeInstance(res, output, ""); err != nil {
		return err
	}
	if output != "" {
		printSuccess("Projected instance written")
		printFile(output)
	}
	return nil
}

// pickAtoms runs the interactive atom picker and returns the selected ids.
func pickAtoms(in *wire.Instance) ([]string, error) {
	atoms := in.Atoms()
	if len(atoms) == 0 {
		return nil, fmt.Errorf("instance has no atoms to project over")
	}

	model := NewAtomListModel(atoms, in)
	final, err := tea.NewProgram(model).Run()
	if err != nil {
		return nil, fmt.Errorf("atom picker: %w", err)
	}
	m, ok := final.(AtomListModel)
	if !ok {
		return nil, nil
	}
	return m.SelectedIDs(), nil
}
