package render

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/relgraph/relgraph/pkg/errors"
)

// Style controls the visual treatment of rendered graphs. All fields map
// to Graphviz attributes; zero values fall back to the defaults below.
type Style struct {
	// Rankdir is the layout direction: TB, LR, BT, or RL.
	Rankdir string `toml:"rankdir"`

	// BGColor is the graph background color.
	BGColor string `toml:"bgcolor"`

	// NodeShape is the shape for every node (box, ellipse, circle, ...).
	NodeShape string `toml:"node_shape"`

	// NodeFill is the fill color for regular nodes.
	NodeFill string `toml:"node_fill"`

	// BuiltinFill is the fill color for nodes whose type is builtin.
	// Builtin nodes also get a dashed outline to set them apart.
	BuiltinFill string `toml:"builtin_fill"`

	// FontSize is the node label font size in points.
	FontSize int `toml:"font_size"`

	// EdgeFontSize is the edge label font size in points.
	EdgeFontSize int `toml:"edge_font_size"`

	// ShowTypes appends "(type)" to every node label.
	ShowTypes bool `toml:"show_types"`
}

// validRankdirs is the set of Graphviz layout directions.
var validRankdirs = map[string]bool{"TB": true, "LR": true, "BT": true, "RL": true}

// DefaultStyle returns the stock visual treatment.
func DefaultStyle() Style {
	return Style{
		Rankdir:      "TB",
		BGColor:      "transparent",
		NodeShape:    "box",
		NodeFill:     "white",
		BuiltinFill:  "lightgrey",
		FontSize:     14,
		EdgeFontSize: 11,
	}
}

// LoadStyle reads a TOML style file and overlays it on the defaults.
// Returns INVALID_STYLE for unparseable files or unknown rankdir values.
func LoadStyle(path string) (Style, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "read style %s", path)
	}
	return ParseStyle(data)
}

// ParseStyle decodes TOML style bytes, overlaying them on the defaults.
func ParseStyle(data []byte) (Style, error) {
	st := DefaultStyle()
	if err := toml.Unmarshal(data, &st); err != nil {
		return Style{}, errors.Wrap(errors.ErrCodeInvalidStyle, err, "parse style")
	}
	if err := st.Validate(); err != nil {
		return Style{}, err
	}
	return st, nil
}

// Validate checks the style for values Graphviz would reject outright.
func (s Style) Validate() error {
	if !validRankdirs[s.Rankdir] {
		return errors.New(errors.ErrCodeInvalidStyle,
			"invalid rankdir %q (must be TB, LR, BT, or RL)", s.Rankdir)
	}
	return nil
}
