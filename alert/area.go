package alert

import "github.com/andaru/cap/geometry"

// Area is a geographic region affected by an Info block.
//
// Ceiling is only meaningful when Altitude is set. Both are in feet
// above mean sea level.
type Area struct {
	AreaDesc string             `json:"areaDesc" yaml:"areaDesc"`
	Polygons []geometry.Polygon `json:"polygons,omitempty" yaml:"polygons,omitempty"`
	Circles  []geometry.Circle  `json:"circles,omitempty" yaml:"circles,omitempty"`
	Geocodes []Geocode          `json:"geocodes,omitempty" yaml:"geocodes,omitempty"`
	Altitude *float64           `json:"altitude,omitempty" yaml:"altitude,omitempty"`
	Ceiling  *float64           `json:"ceiling,omitempty" yaml:"ceiling,omitempty"`
}

// ContainsPoint returns true if any polygon or circle of the area
// contains the given position.
func (a *Area) ContainsPoint(lat, lng float64) bool {
	for _, p := range a.Polygons {
		if p.ContainsPoint(lat, lng) {
			return true
		}
	}
	for _, c := range a.Circles {
		if c.ContainsPoint(lat, lng) {
			return true
		}
	}
	return false
}

// AddPolygon appends a polygon with the given points
func (a *Area) AddPolygon(points ...geometry.Point) *Area {
	a.Polygons = append(a.Polygons, geometry.Polygon{Points: points})
	return a
}

// AddCircle appends a circle of radius km around (lat, lng)
func (a *Area) AddCircle(lat, lng, radius float64) *Area {
	a.Circles = append(a.Circles, geometry.Circle{Center: geometry.NewPoint(lat, lng), Radius: radius})
	return a
}

// AddGeocode appends a geocode
func (a *Area) AddGeocode(valueName, value string) *Area {
	a.Geocodes = append(a.Geocodes, Geocode{ValueName: valueName, Value: value})
	return a
}

func (p *parser) readArea() (a Area, err error) {
	const tag = "area"
	err = p.readElement(tag, func(local string) error {
		switch local {
		case "areaDesc":
			return p.readString(local, &a.AreaDesc)
		case "polygon":
			text, _, err := p.readText(local)
			if err != nil {
				return err
			}
			poly, err := geometry.ParsePolygon(text)
			if err != nil {
				return withTag(err, local, p.ns)
			}
			if poly != nil {
				a.Polygons = append(a.Polygons, *poly)
			}
			return nil
		case "circle":
			text, _, err := p.readText(local)
			if err != nil {
				return err
			}
			circle, err := geometry.ParseCircle(text)
			if err != nil {
				return withTag(err, local, p.ns)
			}
			if circle != nil {
				a.Circles = append(a.Circles, *circle)
			}
			return nil
		case "geocode":
			pair, ok, err := p.readPair(local)
			if ok {
				a.Geocodes = append(a.Geocodes, Geocode(pair))
			}
			return err
		case "altitude":
			v, err := p.readFloat(local)
			if v != nil {
				a.Altitude = v
			}
			return err
		case "ceiling":
			v, err := p.readFloat(local)
			if v != nil {
				a.Ceiling = v
			}
			return err
		}
		return p.tagNotExpected(tag, local)
	})
	return a, err
}
