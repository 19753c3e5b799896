package page

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/spandanakunder/portfolio/internal/ambient"
)

// ParticleCSS renders one keyframe animation per particle so the field
// moves without any script: the waypoints at 0%, 50% and 100%, a linear
// timing function and infinite repetition.
func ParticleCSS(f ambient.Field, hex string) (template.CSS, error) {
	c, err := colorful.Hex(hex)
	if err != nil {
		return "", fmt.Errorf("particle colour %q: %w", hex, err)
	}
	r, g, b := c.RGB255()

	var sb strings.Builder
	for _, p := range f.Particles {
		fmt.Fprintf(&sb, "@keyframes p%d{", p.ID)
		for i := range ambient.Waypoints {
			pct := i * 100 / (ambient.Waypoints - 1)
			fmt.Fprintf(&sb, "%d%%{transform:translate(%.1fpx,%.1fpx) scale(%g);opacity:%g}",
				pct, p.PathX[i], p.PathY[i], ambient.PulseScale[i], ambient.PulseOpacity[i])
		}
		sb.WriteString("}\n")

		d := 2 * p.Radius
		fmt.Fprintf(&sb, ".particle-%d{width:%.2fpx;height:%.2fpx;background:rgba(%d,%d,%d,%.3f);transform:translate(%.1fpx,%.1fpx);animation:p%d %.2fs linear infinite}\n",
			p.ID, d, d, r, g, b, p.Opacity, p.Position.X, p.Position.Y, p.ID, p.Period)
	}
	return template.CSS(sb.String()), nil
}
