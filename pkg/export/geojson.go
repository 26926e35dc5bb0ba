package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/philipparndt/dodecasphere/pkg/analysis"
	"github.com/philipparndt/dodecasphere/pkg/geometry"
)

// Polygon converts a facet into a closed longitude/latitude ring as seen from
// center
func Polygon(f geometry.Pentagon, center geometry.Vector3) (*geom.Polygon, error) {
	ring := make([]geom.Coord, 0, len(f)+1)
	for _, v := range f.Closed() {
		lat, lng := analysis.LatLng(v, center)
		ring = append(ring, geom.Coord{lng, lat})
	}
	return geom.NewPolygon(geom.XY).SetCoords([][]geom.Coord{ring})
}

// FeatureCollection converts every facet into a GeoJSON feature carrying its
// index, level and solid angle
func FeatureCollection(facets []geometry.Pentagon, center geometry.Vector3, level int) (*geojson.FeatureCollection, error) {
	fc := &geojson.FeatureCollection{
		Features: make([]*geojson.Feature, 0, len(facets)),
	}
	for i, f := range facets {
		polygon, err := Polygon(f, center)
		if err != nil {
			return nil, fmt.Errorf("facet %d: %w", i, err)
		}
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       fmt.Sprintf("%d-%d", level, i),
			Geometry: polygon,
			Properties: map[string]interface{}{
				"index":      i,
				"level":      level,
				"solidAngle": analysis.FacetSolidAngle(f, center),
			},
		})
	}
	return fc, nil
}

// WriteGeoJSON encodes the facets as a GeoJSON feature collection
func WriteGeoJSON(w io.Writer, facets []geometry.Pentagon, center geometry.Vector3, level int) error {
	fc, err := FeatureCollection(facets, center, level)
	if err != nil {
		return err
	}
	data, err := json.Marshal(fc)
	if err != nil {
		return fmt.Errorf("failed to encode features: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("failed to write features: %w", err)
	}
	return nil
}
