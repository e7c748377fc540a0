package widget

import (
	"fmt"
	"strings"
	"testing"

	"geowidgets/internal/vector"

	"github.com/stretchr/testify/require"
)

func svg(t *testing.T, name string, w, h float64) *vector.Image {
	t.Helper()
	doc := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %g %g">`+
		`<rect width="%g" height="%g" fill="#336699"/></svg>`, w, h, w, h)
	img, err := vector.Parse(name, strings.NewReader(doc))
	require.NoError(t, err)
	return img
}

// cell is a mode publisher stand-in.
type cell struct {
	v   int
	set bool
}

func (c *cell) Int() (int, bool) { return c.v, c.set }

func (c *cell) Set(v int) {
	c.v = v
	c.set = true
}

type param struct {
	v, min, max float64
}

func (p *param) Value() float64    { return p.v }
func (p *param) MinValue() float64 { return p.min }
func (p *param) MaxValue() float64 { return p.max }

// changes counts "visual changed" notifications.
func changes(inv interface{ OnChange(func()) }) *int {
	n := new(int)
	inv.OnChange(func() { *n++ })
	return n
}
