// Package geometry decodes CAP area shapes and answers simple spatial
// questions about them.
//
// CAP writes coordinates as "lat,lon" in WGS 84 decimal degrees. Points
// are stored with X holding the longitude and Y the latitude. Spatial
// queries are answered on the sphere using github.com/golang/geo.
package geometry
