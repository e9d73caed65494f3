package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/relgraph/relgraph/pkg/multigraph"
)

// ToDOT converts a multigraph to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG] or [RenderPNG].
//
// Builtin-typed nodes are drawn with a dashed outline and the style's
// builtin fill to distinguish pre-registered primitives from domain atoms.
// Self-loops and parallel edges pass through unchanged; Graphviz handles
// both natively.
func ToDOT(g *multigraph.Graph, st Style) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	fmt.Fprintf(&buf, "  rankdir=%s;\n", st.Rankdir)
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", st.BGColor)
	fmt.Fprintf(&buf, "  node [shape=%s, style=\"rounded,filled\", fillcolor=%s, fontsize=%d, margin=\"0.2,0.1\"];\n",
		st.NodeShape, st.NodeFill, st.FontSize)
	fmt.Fprintf(&buf, "  edge [fontsize=%d];\n", st.EdgeFontSize)
	buf.WriteString("\n")

	for _, n := range g.SortedNodes() {
		attrs := nodeAttrs(*n, st)
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  %q -> %q [label=%q];\n", e.From, e.To, e.Label)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeAttrs(n multigraph.Node, st Style) []string {
	label := n.DisplayLabel()
	if st.ShowTypes && n.Type != "" {
		label = fmt.Sprintf("%s\n(%s)", label, n.Type)
	}

	attrs := []string{fmt.Sprintf("label=%q", label)}
	if n.Builtin {
		attrs = append(attrs,
			"style=\"rounded,filled,dashed\"",
			fmt.Sprintf("fillcolor=%s", st.BuiltinFill))
	}
	return attrs
}
