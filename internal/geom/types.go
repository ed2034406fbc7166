package geom

import (
	"gridsketch/internal/draw"
	"gridsketch/internal/grid"
)

type BBox struct {
	MinX float64
	MinY float64
	MaxX float64
	MaxY float64
}

// Extend grows b to include p. The zero BBox with empty=true starts at p.
func (b BBox) Extend(p grid.Point, empty bool) BBox {
	if empty {
		return BBox{MinX: p.X, MinY: p.Y, MaxX: p.X, MaxY: p.Y}
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

func (b BBox) Width() float64  { return b.MaxX - b.MinX }
func (b BBox) Height() float64 { return b.MaxY - b.MinY }

// ShapeBounds returns the bounding box of a finalized shape.
func ShapeBounds(s draw.Shape) (BBox, error) {
	switch s.Type {
	case draw.ShapeCircle:
		c, r, err := draw.CircleGeometry(s)
		if err != nil {
			return BBox{}, err
		}
		return BBox{MinX: c.X - r, MinY: c.Y - r, MaxX: c.X + r, MaxY: c.Y + r}, nil
	default:
		pts, err := draw.PolygonVertices(s)
		if err != nil {
			return BBox{}, err
		}
		var bb BBox
		for i, p := range pts {
			bb = bb.Extend(p, i == 0)
		}
		return bb, nil
	}
}
