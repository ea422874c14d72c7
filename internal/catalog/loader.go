package catalog

import (
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Loader reads a seed catalogue from some backing store.
type Loader interface {
	// Load reads the seed named by path. Names ending in ".gz" are
	// gunzipped before decoding.
	Load(ctx context.Context, path string) (*Seed, error)
}

type fileLoader struct {
	logger zerolog.Logger
}

// NewFileLoader creates a loader that reads seed files from local disk.
func NewFileLoader(logger zerolog.Logger) Loader {
	return &fileLoader{
		logger: logger.With().Str("component", "seed-loader").Logger(),
	}
}

func (l *fileLoader) Load(ctx context.Context, path string) (*Seed, error) {
	l.logger.Info().Str("file", path).Msg("loading seed file")

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	file, err := os.Open(path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to open seed file")
		return nil, fmt.Errorf("failed to open seed file %s: %w", path, err)
	}
	defer file.Close()

	seed, err := Decode(file, path)
	if err != nil {
		l.logger.Error().Err(err).Str("file", path).Msg("failed to decode seed file")
		return nil, err
	}

	l.logger.Info().
		Str("file", path).
		Int("menu_items", len(seed.Menu)).
		Int("tables", len(seed.Tables)).
		Msg("seed file loaded successfully")

	return seed, nil
}

// Decode parses a YAML seed from r and validates it. name decides whether
// the stream is gzip-compressed.
func Decode(r io.Reader, name string) (*Seed, error) {
	if strings.HasSuffix(name, ".gz") {
		gz, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("failed to create gzip reader for %s: %w", name, err)
		}
		defer gz.Close()
		r = gz
	}

	var seed Seed
	if err := yaml.NewDecoder(r).Decode(&seed); err != nil {
		return nil, fmt.Errorf("failed to decode seed %s: %w", name, err)
	}

	if err := seed.Validate(); err != nil {
		return nil, fmt.Errorf("invalid seed %s: %w", name, err)
	}

	return &seed, nil
}

// Encode writes seed as YAML, gzip-compressed when name ends in ".gz".
func Encode(w io.Writer, name string, seed *Seed) error {
	if strings.HasSuffix(name, ".gz") {
		gz := gzip.NewWriter(w)
		if err := encodeYAML(gz, seed); err != nil {
			gz.Close()
			return err
		}
		return gz.Close()
	}
	return encodeYAML(w, seed)
}

func encodeYAML(w io.Writer, seed *Seed) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(seed); err != nil {
		return fmt.Errorf("failed to encode seed: %w", err)
	}
	return enc.Close()
}
