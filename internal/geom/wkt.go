package geom

import (
	"errors"
	"strings"

	"gridsketch/internal/draw"
	"gridsketch/internal/grid"
)

// ShapeWKT renders a polygon as POLYGON((x y, ...)) with the ring closed, and
// a circle as the POINT of its center.
func ShapeWKT(s draw.Shape) (string, error) {
	switch s.Type {
	case draw.ShapePolygon:
		pts, err := draw.PolygonVertices(s)
		if err != nil {
			return "", err
		}
		return "POLYGON((" + wktCoords(closeRing(pts)) + "))", nil
	case draw.ShapeCircle:
		c, _, err := draw.CircleGeometry(s)
		if err != nil {
			return "", err
		}
		return "POINT(" + wktCoords([]grid.Point{c}) + ")", nil
	}
	return "", errors.New("wkt: unsupported shape type " + string(s.Type))
}

func wktCoords(pts []grid.Point) string {
	parts := make([]string, 0, len(pts))
	for _, p := range pts {
		parts = append(parts, grid.FormatCoord(p.X)+" "+grid.FormatCoord(p.Y))
	}
	return strings.Join(parts, ", ")
}

func closeRing(pts []grid.Point) []grid.Point {
	if len(pts) == 0 || pts[0] == pts[len(pts)-1] {
		return pts
	}
	out := make([]grid.Point, 0, len(pts)+1)
	out = append(out, pts...)
	return append(out, pts[0])
}
