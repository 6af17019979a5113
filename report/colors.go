package report

import (
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// RGB is a 24-bit display color.
type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return colorful.Color{
		R: float64(c.R) / 255.0,
		G: float64(c.G) / 255.0,
		B: float64(c.B) / 255.0,
	}.Hex()
}

// lineColors is fixed; read it only through LineColor and knownLines.
var lineColors = map[string]RGB{
	"Bakerloo":           {178, 99, 0},
	"Central":            {220, 36, 31},
	"Circle":             {255, 200, 10},
	"District":           {0, 125, 50},
	"Hammersmith & City": {245, 137, 166},
	"Jubilee":            {131, 141, 147},
	"Metropolitan":       {155, 0, 88},
	"Northern":           {0, 0, 0},
	"Piccadilly":         {0, 25, 168},
	"Victoria":           {3, 155, 229},
	"Waterloo & City":    {118, 208, 189},
}

// LineColor returns the display color for a line name. Names are matched
// exactly; there is no fallback color.
func LineColor(name string) (RGB, error) {
	c, ok := lineColors[name]
	if !ok {
		return RGB{}, errors.Wrapf(ErrUnknownLine, "line %q (known lines: %s)", name, strings.Join(knownLines(), ", "))
	}
	return c, nil
}

// knownLines returns the names that have a color, sorted.
func knownLines() []string {
	names := make([]string, 0, len(lineColors))
	for name := range lineColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
