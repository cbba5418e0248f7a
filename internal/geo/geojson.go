// Package geo handles GeoJSON data structures.
package geo

import "encoding/json"

// Object type names used by this package.
const (
	TypeFeatureCollection = "FeatureCollection"
	TypeFeature           = "Feature"
	TypePoint             = "Point"
)

// ContentType is the media type of serialized GeoJSON.
const ContentType = "application/geo+json"

// FeatureCollection represents a collection of geographic features.
// It follows the standard GeoJSON structure.
type FeatureCollection struct {
	Type     string    `json:"type" yaml:"type"`
	Features []Feature `json:"features" yaml:"features"`
}

// Feature represents a single geographic feature with geometry and properties.
// Properties hold raw JSON so any value (object, array, scalar, null) passes through as is.
type Feature struct {
	Type       string          `json:"type" yaml:"type"`
	Geometry   Geometry        `json:"geometry" yaml:"geometry"`
	Properties json.RawMessage `json:"properties" yaml:"properties"`
}

// Geometry represents the geometry of a feature.
type Geometry struct {
	Type        string            `json:"type" yaml:"type"`
	Coordinates []json.RawMessage `json:"coordinates" yaml:"coordinates"` // [Lon, Lat]
}

// NewFeatureCollection returns an empty collection with room for n features.
func NewFeatureCollection(n int) FeatureCollection {
	return FeatureCollection{
		Type:     TypeFeatureCollection,
		Features: make([]Feature, 0, n),
	}
}

// NewPointFeature builds a Point feature. Coordinate values are not validated or rounded.
func NewPointFeature(lng, lat, properties json.RawMessage) Feature {
	if len(properties) == 0 {
		properties = json.RawMessage("null")
	}

	return Feature{
		Type: TypeFeature,
		Geometry: Geometry{
			Type:        TypePoint,
			Coordinates: []json.RawMessage{lng, lat},
		},
		Properties: properties,
	}
}

// Add appends a feature to the collection.
func (fc *FeatureCollection) Add(f Feature) {
	fc.Features = append(fc.Features, f)
}
