package draw

import (
	"errors"
	"fmt"

	"gridsketch/internal/grid"
)

// PolygonVertices decodes the vertex list of a polygon shape.
func PolygonVertices(s Shape) ([]grid.Point, error) {
	if s.Type != ShapePolygon {
		return nil, fmt.Errorf("shape %s: not a polygon", s.ID)
	}
	pts, err := grid.ParsePoints(s.Attributes["points"])
	if err != nil {
		return nil, fmt.Errorf("shape %s: %w", s.ID, err)
	}
	return pts, nil
}

// CircleGeometry decodes center and radius of a circle shape.
func CircleGeometry(s Shape) (center grid.Point, r float64, err error) {
	if s.Type != ShapeCircle {
		return grid.Point{}, 0, fmt.Errorf("shape %s: not a circle", s.ID)
	}
	cx, ok1 := s.Attributes.Float("cx")
	cy, ok2 := s.Attributes.Float("cy")
	r, ok3 := s.Attributes.Float("r")
	if !ok1 || !ok2 || !ok3 {
		return grid.Point{}, 0, fmt.Errorf("shape %s: %w", s.ID, errors.New("circle: missing cx/cy/r"))
	}
	return grid.Pt(cx, cy), r, nil
}
