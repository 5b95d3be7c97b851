package idconv

import (
	"bufio"
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mongoql/gqlid"
	"github.com/mongoql/gqlid/pkg/constants"
	"github.com/mongoql/gqlid/pkg/logger"
	"github.com/mongoql/gqlid/pkg/models"

	"github.com/rs/zerolog"
)

// Converter converts IDs from one format to another.
type Converter struct {
	from   gqlid.Format
	to     gqlid.Format
	logger zerolog.Logger
}

// NewConverter creates a Converter. The configuration should be validated
// before calling this function.
func NewConverter(config *Config, log zerolog.Logger) (*Converter, error) {
	from, err := gqlid.ParseFormat(config.From)
	if err != nil {
		return nil, err
	}
	to, err := gqlid.ParseFormat(config.To)
	if err != nil {
		return nil, err
	}
	return &Converter{from: from, to: to, logger: log}, nil
}

// Convert decodes input in the source format and encodes it in the target format.
func (c *Converter) Convert(input string) (string, error) {
	data := []byte(input)
	if c.from.IsBinary() {
		var err error
		data, err = hex.DecodeString(strings.TrimSpace(input))
		if err != nil {
			return "", fmt.Errorf("invalid hex input %q: %w", input, err)
		}
	}

	id, err := gqlid.Decode(data, c.from)
	if err != nil {
		return "", fmt.Errorf("failed to decode %q as %s: %w", input, c.from, err)
	}

	if s, ok := id.AsString(); ok && strings.HasPrefix(s, constants.ObjectIDPrefix) {
		c.logger.Warn().Str("input", input).Msg("ObjectID prefix without a valid ObjectID, kept as a string ID")
	}

	out, err := c.ConvertID(id)
	if err != nil {
		return "", fmt.Errorf("failed to encode %s as %s: %w", id, c.to, err)
	}

	c.logger.Debug().Object("id", id).Str("from", string(c.from)).Str("to", string(c.to)).Msg("converted")
	return out, nil
}

// ConvertID encodes an already decoded ID in the target format.
func (c *Converter) ConvertID(id models.ID) (string, error) {
	out, err := gqlid.Encode(id, c.to)
	if err != nil {
		return "", err
	}
	if c.to.IsBinary() {
		return hex.EncodeToString(out), nil
	}
	return string(out), nil
}

// Do executes the conversions described by the configuration.
// Each converted input is written to out on its own line. Inputs come from
// config.Inputs or, when empty, from the non-blank lines of in.
// Conversion failures do not stop the run; they are joined into the returned error.
func Do(ctx context.Context, config *Config, in io.Reader, out io.Writer) error {
	if err := config.Validate(); err != nil {
		return err
	}

	level := zerolog.WarnLevel
	if config.Verbose {
		level = zerolog.DebugLevel
	}
	logData, err := logger.New().FromPath(config.LogPath).WithLevel(level).Make()
	if err != nil {
		return fmt.Errorf("failed to open log: %w", err)
	}
	defer logData.Close()

	converter, err := NewConverter(config, logData.Logger)
	if err != nil {
		return err
	}

	inputs := config.Inputs
	if len(inputs) == 0 {
		inputs, err = readLines(in)
		if err != nil {
			return fmt.Errorf("failed to read inputs: %w", err)
		}
	}

	var errs error
	for _, input := range inputs {
		if err := ctx.Err(); err != nil {
			return errors.Join(errs, err)
		}

		converted, err := converter.Convert(input)
		if err != nil {
			logData.Logger.Error().Err(err).Str("input", input).Msg("conversion failed")
			errs = errors.Join(errs, err)
			continue
		}
		if _, err := fmt.Fprintln(out, converted); err != nil {
			return errors.Join(errs, err)
		}
	}

	return errs
}

func readLines(r io.Reader) ([]string, error) {
	if r == nil {
		return nil, nil
	}

	var lines []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
