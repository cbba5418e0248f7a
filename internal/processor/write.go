package processor

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/woozymasta/loc2geojson/internal/geo"

	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// ContentType returns the media type of the given output format.
func ContentType(format string) string {
	if format == FormatYAML {
		return "application/yaml"
	}
	return geo.ContentType
}

// Encode serializes the collection in the given format.
// JSON keeps values exactly as read and does not escape HTML characters.
func Encode(fc geo.FeatureCollection, format string, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}

	if err := enc.Encode(fc); err != nil {
		return nil, err
	}

	switch format {
	case FormatJSON, "":
		return buf.Bytes(), nil
	case FormatYAML:
		return jsonToYAML(buf.Bytes())
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

// jsonToYAML re-encodes a JSON document as block style YAML.
// Decoding into a node keeps number literals and key order untouched.
func jsonToYAML(data []byte) ([]byte, error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	clearStyle(&node)

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(&node); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

func clearStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		clearStyle(c)
	}
}

// WriteCollection encodes the collection and replaces the content of path with it.
// A file target is written to a temporary sibling and renamed into place,
// so an interrupted run never leaves a truncated file behind.
func WriteCollection(path string, fc geo.FeatureCollection, format string, pretty bool) error {
	data, err := Encode(fc, format, pretty)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrOutputWrite, err)
	}

	if path == StdStream {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("%w: stdout: %w", ErrOutputWrite, err)
		}
		return nil
	}

	if err := writeFileAtomic(path, data); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrOutputWrite, path, err)
	}

	log.Debug().
		Str("path", path).
		Str("content_type", ContentType(format)).
		Int("bytes", len(data)).
		Msg("Output written")

	return nil
}

func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()

	// removal fails harmlessly once the rename succeeded
	defer func() { _ = os.Remove(tmpName) }()

	if err := writeAndSync(tmp, data); err != nil {
		_ = tmp.Close()
		return err
	}

	// We care about write errors on close
	if err := tmp.Close(); err != nil {
		return err
	}

	if err := os.Chmod(tmpName, outputMode(path)); err != nil {
		log.Warn().Err(err).Str("path", tmpName).Msg("Failed to set output file mode")
	}

	return os.Rename(tmpName, path)
}

// outputMode keeps the permissions of an existing target, new files get 0644.
func outputMode(path string) os.FileMode {
	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		return info.Mode().Perm()
	}
	return 0644
}

func writeAndSync(f *os.File, data []byte) error {
	if _, err := io.Copy(f, bytes.NewReader(data)); err != nil {
		return err
	}
	return f.Sync()
}
