package processor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/woozymasta/loc2geojson/internal/geo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func sampleCollection() geo.FeatureCollection {
	fc := geo.NewFeatureCollection(1)
	fc.Add(geo.NewPointFeature(
		json.RawMessage("10.0"),
		json.RawMessage("20.0"),
		json.RawMessage(`{"name":"A","tags":["x","true"]}`),
	))
	return fc
}

func TestEncodePretty(t *testing.T) {
	data, err := Encode(sampleCollection(), FormatJSON, true)
	require.NoError(t, err)

	assert.Contains(t, string(data), "\n  \"features\": [")
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[10.0,20.0]},"properties":{"name":"A","tags":["x","true"]}}
	]}`, string(data))
}

func TestEncodeYAML(t *testing.T) {
	data, err := Encode(sampleCollection(), FormatYAML, false)
	require.NoError(t, err)

	var out struct {
		Type     string `yaml:"type"`
		Features []struct {
			Type     string `yaml:"type"`
			Geometry struct {
				Type        string    `yaml:"type"`
				Coordinates []float64 `yaml:"coordinates"`
			} `yaml:"geometry"`
			Properties struct {
				Name string   `yaml:"name"`
				Tags []string `yaml:"tags"`
			} `yaml:"properties"`
		} `yaml:"features"`
	}
	require.NoError(t, yaml.Unmarshal(data, &out))

	assert.Equal(t, geo.TypeFeatureCollection, out.Type)
	require.Len(t, out.Features, 1)
	assert.Equal(t, geo.TypePoint, out.Features[0].Geometry.Type)
	assert.Equal(t, []float64{10, 20}, out.Features[0].Geometry.Coordinates)
	assert.Equal(t, "A", out.Features[0].Properties.Name)
	assert.Equal(t, []string{"x", "true"}, out.Features[0].Properties.Tags)
	assert.NotContains(t, string(data), "{")
}

func TestEncodeUnknownFormat(t *testing.T) {
	_, err := Encode(sampleCollection(), "xml", false)
	assert.Error(t, err)
}

func TestWriteCollectionReplacesFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "geodata.geojson")
	require.NoError(t, os.WriteFile(path, []byte(`stale content that is longer than the new document by a wide margin ................................................................................................................`), 0644))

	require.NoError(t, WriteCollection(path, sampleCollection(), FormatJSON, false))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[10.0,20.0]},"properties":{"name":"A","tags":["x","true"]}}
	]}`, string(data))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestWriteCollectionCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "geodata.geojson")

	require.NoError(t, WriteCollection(path, geo.NewFeatureCollection(0), FormatJSON, false))
	assert.FileExists(t, path)
}

func TestWriteCollectionError(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	err := WriteCollection(filepath.Join(blocker, "geodata.geojson"), sampleCollection(), FormatJSON, false)
	require.ErrorIs(t, err, ErrOutputWrite)
	assert.Contains(t, err.Error(), blocker)
}

func TestWriteCollectionKeepsMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodata.geojson")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0600))
	require.NoError(t, os.Chmod(path, 0600))

	require.NoError(t, WriteCollection(path, sampleCollection(), FormatJSON, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestWriteCollectionNewFileMode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "geodata.geojson")

	require.NoError(t, WriteCollection(path, sampleCollection(), FormatJSON, false))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), info.Mode().Perm())
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "application/geo+json", ContentType(FormatJSON))
	assert.Equal(t, geo.ContentType, ContentType(""))
	assert.Equal(t, "application/yaml", ContentType(FormatYAML))
}
