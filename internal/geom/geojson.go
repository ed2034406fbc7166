package geom

import (
	"encoding/json"
	"fmt"
	"os"

	"gridsketch/internal/draw"
	"gridsketch/internal/grid"
)

type feature struct {
	Type       string         `json:"type"`
	ID         string         `json:"id"`
	Geometry   geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

type geometry struct {
	Type        string `json:"type"`
	Coordinates any    `json:"coordinates"`
}

type featureCollection struct {
	Type     string    `json:"type"`
	BBox     []float64 `json:"bbox,omitempty"`
	Features []feature `json:"features"`
}

// FeatureCollection encodes shapes as GeoJSON. Circles become Points carrying
// a "radius" property; other attributes are copied into properties.
func FeatureCollection(shapes []draw.Shape) ([]byte, error) {
	fc := featureCollection{Type: "FeatureCollection", Features: make([]feature, 0, len(shapes))}
	var bb BBox
	for i, s := range shapes {
		f, err := toFeature(s)
		if err != nil {
			return nil, err
		}
		fc.Features = append(fc.Features, f)

		sb, err := ShapeBounds(s)
		if err != nil {
			return nil, err
		}
		bb = bb.Extend(grid.Pt(sb.MinX, sb.MinY), i == 0)
		bb = bb.Extend(grid.Pt(sb.MaxX, sb.MaxY), false)
	}
	if len(shapes) > 0 {
		fc.BBox = []float64{bb.MinX, bb.MinY, bb.MaxX, bb.MaxY}
	}
	return json.MarshalIndent(fc, "", "  ")
}

func toFeature(s draw.Shape) (feature, error) {
	props := make(map[string]any, len(s.Attributes)+1)
	props["shape"] = string(s.Type)
	f := feature{Type: "Feature", ID: s.ID, Properties: props}
	switch s.Type {
	case draw.ShapePolygon:
		pts, err := draw.PolygonVertices(s)
		if err != nil {
			return feature{}, err
		}
		ring := make([][2]float64, 0, len(pts)+1)
		for _, p := range closeRing(pts) {
			ring = append(ring, [2]float64{p.X, p.Y})
		}
		f.Geometry = geometry{Type: "Polygon", Coordinates: [][][2]float64{ring}}
		for k, v := range s.Attributes {
			if k != "points" {
				props[k] = v
			}
		}
	case draw.ShapeCircle:
		c, r, err := draw.CircleGeometry(s)
		if err != nil {
			return feature{}, err
		}
		f.Geometry = geometry{Type: "Point", Coordinates: [2]float64{c.X, c.Y}}
		for k, v := range s.Attributes {
			switch k {
			case "cx", "cy", "r":
			default:
				props[k] = v
			}
		}
		props["radius"] = r
	default:
		return feature{}, fmt.Errorf("geojson: unsupported shape type %q", s.Type)
	}
	return f, nil
}

// WriteGeoJSON writes the FeatureCollection of shapes to path.
func WriteGeoJSON(path string, shapes []draw.Shape) error {
	data, err := FeatureCollection(shapes)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write geojson: %w", err)
	}
	return nil
}
