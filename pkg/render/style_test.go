package render

import (
	"testing"

	"github.com/relgraph/relgraph/pkg/errors"
)

func TestParseStyleOverlaysDefaults(t *testing.T) {
	st, err := ParseStyle([]byte(`
rankdir = "LR"
node_shape = "ellipse"
builtin_fill = "lightyellow"
`))
	if err != nil {
		t.Fatalf("ParseStyle: %v", err)
	}

	if st.Rankdir != "LR" {
		t.Errorf("Rankdir = %q, want LR", st.Rankdir)
	}
	if st.NodeShape != "ellipse" {
		t.Errorf("NodeShape = %q, want ellipse", st.NodeShape)
	}
	if st.BuiltinFill != "lightyellow" {
		t.Errorf("BuiltinFill = %q, want lightyellow", st.BuiltinFill)
	}
	// Untouched fields keep their defaults.
	if st.NodeFill != "white" {
		t.Errorf("NodeFill = %q, want default white", st.NodeFill)
	}
	if st.FontSize != 14 {
		t.Errorf("FontSize = %d, want default 14", st.FontSize)
	}
}

func TestParseStyleErrors(t *testing.T) {
	tests := []struct {
		name string
		toml string
	}{
		{name: "InvalidTOML", toml: `rankdir = `},
		{name: "InvalidRankdir", toml: `rankdir = "DIAGONAL"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseStyle([]byte(tt.toml)); !errors.Is(err, errors.ErrCodeInvalidStyle) {
				t.Errorf("ParseStyle() error = %v, want INVALID_STYLE", err)
			}
		})
	}
}
