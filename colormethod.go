package termart

import (
	"fmt"
	"math"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ColorDistanceMethod measures how far apart two colors are. Smaller is
// closer. Name is used for display and flag parsing.
type ColorDistanceMethod interface {
	Distance(c1, c2 RGB) float64
	Name() string
}

// RGBMethod is plain Euclidean distance in RGB space.
type RGBMethod struct{}

func (RGBMethod) Distance(c1, c2 RGB) float64 {
	return c1.colorDistance(c2)
}

func (RGBMethod) Name() string { return "RGB" }

// RedmeanMethod is the "redmean" weighted Euclidean approximation, which
// tracks perceived difference better than plain RGB at almost no cost.
type RedmeanMethod struct{}

func (RedmeanMethod) Distance(c1, c2 RGB) float64 {
	rMean := (float64(c1.R) + float64(c2.R)) / 2
	dr := float64(c1.R) - float64(c2.R)
	dg := float64(c1.G) - float64(c2.G)
	db := float64(c1.B) - float64(c2.B)
	return math.Sqrt((2+rMean/256)*dr*dr + 4*dg*dg + (2+(255-rMean)/256)*db*db)
}

func (RedmeanMethod) Name() string { return "Redmean" }

// LABMethod is CIE76 distance in CIELAB space.
type LABMethod struct{}

func (LABMethod) Distance(c1, c2 RGB) float64 {
	return toColorful(c1).DistanceLab(toColorful(c2))
}

func (LABMethod) Name() string { return "LAB" }

func toColorful(c RGB) colorful.Color {
	return colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
}

// ParseColorMethod returns the distance method for a case-insensitive
// name: rgb, redmean or lab.
func ParseColorMethod(name string) (ColorDistanceMethod, error) {
	switch strings.ToLower(name) {
	case "rgb", "":
		return RGBMethod{}, nil
	case "redmean":
		return RedmeanMethod{}, nil
	case "lab":
		return LABMethod{}, nil
	}
	return nil, fmt.Errorf("unknown color method %q, options are RGB, LAB, or Redmean", name)
}
