package geo

import (
	"fmt"
	"strconv"
	"strings"

	gokml "github.com/reoring/gokml"
)

// Coordinates is an ordered sequence of 2- or 3-component tuples
// (longitude, latitude and optional altitude). All tuples within one
// sequence share dimensionality; mixing is rejected at construction.
type Coordinates struct {
	points [][]float64
	dim    int
}

// NewCoordinates validates and wraps a tuple sequence.
func NewCoordinates(points [][]float64) (Coordinates, error) {
	dim := 0
	for i, p := range points {
		switch len(p) {
		case 2, 3:
		default:
			return Coordinates{}, dimensionalityIssue(fmt.Sprintf("tuple %d has %d components, want 2 or 3", i, len(p)))
		}
		if dim == 0 {
			dim = len(p)
		} else if len(p) != dim {
			return Coordinates{}, dimensionalityIssue(fmt.Sprintf("tuple %d has %d components, sequence started with %d", i, len(p), dim))
		}
	}
	return Coordinates{points: points, dim: dim}, nil
}

// Points returns the tuple sequence in order.
func (c Coordinates) Points() [][]float64 { return c.points }

// Dim returns 2 or 3, or 0 for an empty sequence.
func (c Coordinates) Dim() int { return c.dim }

// Len returns the number of tuples.
func (c Coordinates) Len() int { return len(c.points) }

// ParseCoordinates reads the KML coordinates text form: whitespace-separated
// tuples of comma-separated components.
func ParseCoordinates(s string) (Coordinates, error) {
	var points [][]float64
	for _, tuple := range strings.Fields(s) {
		parts := strings.Split(tuple, ",")
		point := make([]float64, 0, len(parts))
		for _, part := range parts {
			v, err := strconv.ParseFloat(part, 64)
			if err != nil {
				return Coordinates{}, fmt.Errorf("coordinate tuple %q: %w", tuple, err)
			}
			point = append(point, v)
		}
		points = append(points, point)
	}
	return NewCoordinates(points)
}

// FormatCoordinates emits the KML text form at the given decimal precision;
// negative precision emits the shortest exact representation.
func FormatCoordinates(c Coordinates, precision int) string {
	tuples := make([]string, 0, len(c.points))
	for _, p := range c.points {
		comps := make([]string, 0, len(p))
		for _, v := range p {
			comps = append(comps, strconv.FormatFloat(v, 'f', precision, 64))
		}
		tuples = append(tuples, strings.Join(comps, ","))
	}
	return strings.Join(tuples, " ")
}

// coordinatesCodec binds coordinates parsing and precision-aware formatting
// into registry items.
var coordinatesCodec = gokml.Codec[Coordinates]{
	Parse:  ParseCoordinates,
	Format: FormatCoordinates,
}

func dimensionalityIssue(msg string) error {
	return gokml.Issues{gokml.Issue{
		Path: "coordinates", Code: gokml.CodeDimensionality, Message: msg,
	}}
}
