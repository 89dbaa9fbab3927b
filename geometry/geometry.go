package geometry

import (
	"math"
	"strconv"
	"strings"

	"github.com/andaru/cap/caperr"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
	"github.com/mmcloughlin/geohash"
	"github.com/pkg/errors"
)

// EarthRadiusKm is the mean earth radius used to convert circle radii
// (expressed in kilometres by CAP) to angles.
const EarthRadiusKm = 6371.0088

// Point is a geographic position. X holds the longitude and Y the
// latitude, both in degrees, following the usual x/y convention of
// mapping libraries. CAP text lists latitude first.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// NewPoint returns the Point at the given latitude and longitude
func NewPoint(lat, lng float64) Point { return Point{X: lng, Y: lat} }

func (p Point) Lat() float64 { return p.Y }
func (p Point) Lng() float64 { return p.X }

// LatLng returns p as an s2.LatLng
func (p Point) LatLng() s2.LatLng { return s2.LatLngFromDegrees(p.Y, p.X) }

// Geohash returns the geohash of p, chars characters long
func (p Point) Geohash(chars uint) string { return geohash.EncodeWithPrecision(p.Y, p.X, chars) }

// String returns p in CAP "lat,lon" form
func (p Point) String() string {
	return strconv.FormatFloat(p.Y, 'f', -1, 64) + "," + strconv.FormatFloat(p.X, 'f', -1, 64)
}

// Polygon is a closed ring of points. By convention the first and last
// points are equal, but this is not enforced.
type Polygon struct {
	Points []Point `json:"points" yaml:"points"`
}

// Circle is a center point plus a radius in kilometres
type Circle struct {
	Center Point   `json:"center" yaml:"center"`
	Radius float64 `json:"radius" yaml:"radius"`
}

// ParsePoints decodes a whitespace separated list of "lat,lon" pairs.
// Any malformed pair fails the whole list; a list is never returned
// partially decoded. Empty (or all whitespace) text yields no points.
func ParsePoints(s string) ([]Point, error) {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return nil, nil
	}
	points := make([]Point, 0, len(fields))
	for _, field := range fields {
		pt, err := parsePoint(field)
		if err != nil {
			return nil, err
		}
		points = append(points, pt)
	}
	return points, nil
}

func parsePoint(s string) (Point, error) {
	lat, lng, ok := strings.Cut(s, ",")
	if !ok || strings.Contains(lng, ",") {
		return Point{}, errors.WithStack(caperr.ParseFloat("",
			caperr.WithCause(errors.Errorf("malformed coordinate %q", s))))
	}
	latD, err := parseDegrees(lat, 90)
	if err != nil {
		return Point{}, err
	}
	lngD, err := parseDegrees(lng, 180)
	if err != nil {
		return Point{}, err
	}
	return NewPoint(latD, lngD), nil
}

// parseDegrees parses a finite angle no larger than limit in magnitude
func parseDegrees(s string, limit float64) (float64, error) {
	f, err := parseFinite(s)
	if err == nil && math.Abs(f) > limit {
		err = errors.WithStack(caperr.ParseFloat("",
			caperr.WithCause(errors.Errorf("%q is outside [-%g, %g]", s, limit, limit))))
	}
	return f, err
}

func parseFinite(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	if err == nil && (math.IsNaN(f) || math.IsInf(f, 0)) {
		err = errors.Errorf("%q is not a finite number", s)
	}
	if err != nil {
		return 0, errors.WithStack(caperr.ParseFloat("", caperr.WithCause(err)))
	}
	return f, nil
}

// ParsePolygon decodes polygon text. It returns nil with no error for
// empty text.
func ParsePolygon(s string) (*Polygon, error) {
	points, err := ParsePoints(s)
	if err != nil || points == nil {
		return nil, err
	}
	return &Polygon{Points: points}, nil
}

// ParseCircle decodes circle text of the form "lat,lon radius". It
// returns nil with no error for empty text.
func ParseCircle(s string) (*Circle, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 0:
		return nil, nil
	case 2:
	default:
		return nil, errors.WithStack(caperr.ParseFloat("", caperr.WithCause(
			errors.Errorf("could not split point and radius %q", strings.TrimSpace(s)))))
	}
	center, err := parsePoint(fields[0])
	if err != nil {
		return nil, err
	}
	radius, err := parseFinite(fields[1])
	if err != nil {
		return nil, err
	}
	return &Circle{Center: center, Radius: radius}, nil
}

// Rect is a latitude/longitude bounding box, in degrees
type Rect struct {
	LatLo float64 `json:"lat_lo" yaml:"lat_lo"`
	LatHi float64 `json:"lat_hi" yaml:"lat_hi"`
	LngLo float64 `json:"lng_lo" yaml:"lng_lo"`
	LngHi float64 `json:"lng_hi" yaml:"lng_hi"`
}

// Center returns the midpoint of r. A box whose LngLo exceeds LngHi
// crosses the antimeridian.
func (r Rect) Center() Point {
	lng := s1.IntervalFromEndpoints(
		(s1.Angle(r.LngLo) * s1.Degree).Radians(),
		(s1.Angle(r.LngHi) * s1.Degree).Radians(),
	).Center()
	return NewPoint((r.LatLo+r.LatHi)/2, s1.Angle(lng).Degrees())
}

func rectFromS2(r s2.Rect) Rect {
	return Rect{
		LatLo: r.Lo().Lat.Degrees(),
		LatHi: r.Hi().Lat.Degrees(),
		LngLo: r.Lo().Lng.Degrees(),
		LngHi: r.Hi().Lng.Degrees(),
	}
}

// Loop returns the polygon as an s2.Loop.
//
// CAP polygons are listed in either winding order. A loop with area
// over 0.1 steradians (about 0.8% of the globe) is taken to have been
// wound the wrong way and is inverted. Polygons with fewer than three
// distinct vertices yield the empty loop.
func (p Polygon) Loop() *s2.Loop {
	pts := p.ring()
	distinct := make(map[Point]struct{}, len(pts))
	for _, pt := range pts {
		distinct[pt] = struct{}{}
	}
	if len(distinct) < 3 {
		return s2.EmptyLoop()
	}
	vertices := make([]s2.Point, len(pts))
	for i, pt := range pts {
		vertices[i] = s2.PointFromLatLng(pt.LatLng())
	}
	loop := s2.LoopFromPoints(vertices)
	if loop.Area() > 0.1 {
		loop.Invert()
	}
	return loop
}

// ring returns the polygon's vertices with consecutive duplicates and
// the closing point removed.
func (p Polygon) ring() []Point {
	pts := make([]Point, 0, len(p.Points))
	for _, pt := range p.Points {
		if n := len(pts); n == 0 || pts[n-1] != pt {
			pts = append(pts, pt)
		}
	}
	for n := len(pts); n > 1 && pts[0] == pts[n-1]; n = len(pts) {
		pts = pts[:n-1]
	}
	return pts
}

// Bound returns the polygon's bounding box
func (p Polygon) Bound() Rect { return rectFromS2(p.Loop().RectBound()) }

// ContainsPoint returns true if the polygon contains the given position
func (p Polygon) ContainsPoint(lat, lng float64) bool {
	return p.Loop().ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng)))
}

// Cap returns the circle as an s2.Cap
func (c Circle) Cap() s2.Cap {
	angle := s1.Angle(c.Radius / EarthRadiusKm)
	return s2.CapFromCenterAngle(s2.PointFromLatLng(c.Center.LatLng()), angle)
}

// Bound returns the circle's bounding box
func (c Circle) Bound() Rect { return rectFromS2(c.Cap().RectBound()) }

// ContainsPoint returns true if the circle contains the given position
func (c Circle) ContainsPoint(lat, lng float64) bool {
	return c.Cap().ContainsPoint(s2.PointFromLatLng(s2.LatLngFromDegrees(lat, lng)))
}
