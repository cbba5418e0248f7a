package processor

import (
	"encoding/json"

	"github.com/woozymasta/loc2geojson/internal/geo"

	"github.com/rs/zerolog/log"
)

// Stats counts the outcome of a conversion.
type Stats struct {
	Total     int
	Converted int
	Skipped   int
}

// Convert builds a feature collection from raw array elements in one pass.
// Each element is evaluated exactly once and input order is preserved.
// Elements that fail DecodeRecord are counted and left out.
func Convert(records []json.RawMessage) (geo.FeatureCollection, Stats) {
	fc := geo.NewFeatureCollection(len(records))
	stats := Stats{Total: len(records)}

	for idx, raw := range records {
		rec, err := DecodeRecord(raw)
		if err != nil {
			stats.Skipped++
			log.Debug().
				Err(err).
				Int("index", idx).
				Msg("Skipping record")
			continue
		}

		fc.Add(rec.Feature())
		stats.Converted++
	}

	return fc, stats
}

// Feature maps the record to a GeoJSON Point with items as properties.
func (r Record) Feature() geo.Feature {
	return geo.NewPointFeature(r.Location.Lng, r.Location.Lat, r.Items)
}
