package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/relgraph/relgraph/pkg/instance/wire"
)

// showCommand creates the show command for summarizing an instance.
func (c *CLI) showCommand() *cobra.Command {
	var encoding string

	cmd := &cobra.Command{
		Use:   "show [instance]",
		Short: "Summarize an instance file",
		Long: `Summarize an instance file.

Prints the atom, type, and relation counts, the declared type hierarchy,
and each relation with its arity and tuple count.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			in, err := c.loadInstance(args[0], encodingFor(encoding, args[0]), wire.DefaultOptions())
			if err != nil {
				return err
			}
			printShow(args[0], in)
			return nil
		},
	}

	cmd.Flags().StringVar(&encoding, "encoding", "", "input encoding: json or bson (default: by extension)")

	return cmd
}

func printShow(path string, in *wire.Instance) {
	fmt.Println(StyleTitle.Render(path))
	printInstanceStats(in.AtomCount(), in.RelationCount(), in.TupleCount())
	printKeyValue("Types", fmt.Sprintf("%d", in.TypeCount()))
	printNewline()

	types := in.Types()
	if len(types) > 0 {
		fmt.Println(StyleHighlight.Render("Types"))
		for _, t := range types {
			name := t.ID
			if t.Builtin {
				name += StyleDim.Render(" (builtin)")
			}
			printDetail("%s  %s", name, memberSummary(len(t.Atoms)))
		}
		printNewline()
	}

	relations := in.Relations()
	if len(relations) > 0 {
		fmt.Println(StyleHighlight.Render("Relations"))
		for _, r := range relations {
			arity := len(r.Types)
			printDetail("%s  arity %d · %d tuples", r.Name, arity, len(r.Tuples))
		}
		printNewline()
	}

	atoms := in.Atoms()
	if len(atoms) > 0 {
		fmt.Println(StyleHighlight.Render("Atoms"))
		for _, a := range atoms {
			label := a.Label
			if label == a.ID {
				label = ""
			}
			line := fmt.Sprintf("%s: %s", a.ID, a.Type)
			if label != "" {
				line += " " + StyleDim.Render(strings.TrimSpace(label))
			}
			printDetail("%s", line)
		}
		printNewline()
	}

	printNextStep("Render it", fmt.Sprintf("relgraph render %s", path))
}

func memberSummary(n int) string {
	if n == 1 {
		return "1 atom"
	}
	return fmt.Sprintf("%d atoms", n)
}
