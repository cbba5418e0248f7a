package processor

import (
	"github.com/rs/zerolog/log"
)

// Settings selects the input, the output and how the output is encoded.
type Settings struct {
	Input  string
	Output string
	Format string
	Pretty bool
}

// Run reads the input, converts it and writes the output.
// The output is not touched unless the input was read and parsed.
func Run(s Settings) (Stats, error) {
	log.Debug().
		Str("input", s.Input).
		Str("output", s.Output).
		Str("format", s.Format).
		Msg("Reading records")

	records, err := ReadRecords(s.Input)
	if err != nil {
		return Stats{}, err
	}

	fc, stats := Convert(records)

	if err := WriteCollection(s.Output, fc, s.Format, s.Pretty); err != nil {
		return stats, err
	}

	return stats, nil
}
