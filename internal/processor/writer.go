package processor

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/woozymasta/jpmesh/internal/config"
	"github.com/woozymasta/jpmesh/internal/geo"

	"gopkg.in/yaml.v3"
)

// featureWriter receives features in generation order.
type featureWriter interface {
	Write(f geo.GeoJSONFeature) error
	Close() error
}

func checkFormat(format string) error {
	switch format {
	case "", config.FormatGeoJSONL, config.FormatGeoJSON, config.FormatYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q", format)
}

func newFeatureWriter(w io.Writer, format string, capacity int) (featureWriter, error) {
	if err := checkFormat(format); err != nil {
		return nil, err
	}

	switch format {
	case config.FormatGeoJSON, config.FormatYAML:
		return &collectionWriter{w: w, format: format, fc: geo.NewFeatureCollection(capacity)}, nil
	default:
		return &lineWriter{enc: json.NewEncoder(w)}, nil
	}
}

// lineWriter streams one compact JSON feature per line.
type lineWriter struct {
	enc *json.Encoder
}

func (l *lineWriter) Write(f geo.GeoJSONFeature) error {
	return l.enc.Encode(f)
}

func (l *lineWriter) Close() error {
	return nil
}

// collectionWriter keeps every feature in memory and writes a single
// FeatureCollection on Close.
type collectionWriter struct {
	w      io.Writer
	format string
	fc     geo.GeoJSONFeatureCollection
}

func (c *collectionWriter) Write(f geo.GeoJSONFeature) error {
	c.fc.Features = append(c.fc.Features, f)
	return nil
}

func (c *collectionWriter) Close() error {
	if c.format == config.FormatYAML {
		enc := yaml.NewEncoder(c.w)
		if err := enc.Encode(c.fc); err != nil {
			return err
		}
		return enc.Close()
	}

	return json.NewEncoder(c.w).Encode(c.fc)
}
