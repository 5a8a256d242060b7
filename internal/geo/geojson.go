// Package geo handles GeoJSON data structures and coordinate helpers.
package geo

import (
	"github.com/paulmach/orb"
)

// GeoJSONFeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type GeoJSONFeatureCollection struct {
	Type     string           `json:"type" yaml:"type"`
	Features []GeoJSONFeature `json:"features" yaml:"features"`
}

// GeoJSONFeature represents a single geographic feature with properties and geometry.
// Field order is the serialization order of a geojsonl line.
type GeoJSONFeature struct {
	Type       string                 `json:"type" yaml:"type"`
	Properties map[string]interface{} `json:"properties" yaml:"properties"`
	Geometry   GeoJSONGeometry        `json:"geometry" yaml:"geometry"`
}

// GeoJSONGeometry represents a polygon geometry.
type GeoJSONGeometry struct {
	Type        string        `json:"type" yaml:"type"`
	Coordinates [][][]float64 `json:"coordinates" yaml:"coordinates"` // rings of [Lon, Lat]
}

// NewFeatureCollection returns an empty collection with room for n features.
func NewFeatureCollection(n int) GeoJSONFeatureCollection {
	return GeoJSONFeatureCollection{
		Type:     "FeatureCollection",
		Features: make([]GeoJSONFeature, 0, n),
	}
}

// NewPolygonFeature builds a polygon feature from the given rings.
func NewPolygonFeature(props map[string]interface{}, rings ...orb.Ring) GeoJSONFeature {
	coords := make([][][]float64, 0, len(rings))
	for _, r := range rings {
		ring := make([][]float64, 0, len(r))
		for _, p := range r {
			ring = append(ring, []float64{p.Lon(), p.Lat()})
		}
		coords = append(coords, ring)
	}

	return GeoJSONFeature{
		Type:       "Feature",
		Properties: props,
		Geometry: GeoJSONGeometry{
			Type:        "Polygon",
			Coordinates: coords,
		},
	}
}
