package gqlid

import (
	"fmt"
	"strings"

	"github.com/mongoql/gqlid/internal/codec"
	"github.com/mongoql/gqlid/pkg/constants"
	"github.com/mongoql/gqlid/pkg/models"
)

// Format names a representation of an ID.
type Format string

const (
	// FormatString is the canonical string form, see [models.ID.String].
	FormatString Format = "string"
	// FormatJSON is the JSON form: {"$oid":"..."}, a string or a number.
	FormatJSON Format = "json"
	// FormatBSON is a BSON document with the ID in its "_id" field.
	FormatBSON Format = "bson"
	// FormatCBOR is the CBOR form, see [models.TagObjectID].
	FormatCBOR Format = "cbor"
)

// Formats lists every supported Format.
var Formats = []Format{FormatString, FormatJSON, FormatBSON, FormatCBOR}

// ParseFormat returns the Format named s, ignoring case.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", constants.ErrUnknownFormat, s)
}

// IsBinary reports whether the format produces non-textual bytes.
func (f Format) IsBinary() bool {
	return f == FormatBSON || f == FormatCBOR
}

// idDocument is the envelope of FormatBSON.
type idDocument struct {
	ID models.ID `bson:"_id"`
}

// Encode returns the representation of id in the format f.
func Encode(id models.ID, f Format) ([]byte, error) {
	switch f {
	case FormatString:
		return id.MarshalText()
	case FormatBSON:
		return models.BSONMarshaler{}.Marshal(idDocument{ID: id})
	}

	c, err := codecFor(f)
	if err != nil {
		return nil, err
	}
	return c.Marshal(id)
}

// Decode parses data holding an ID in the format f.
func Decode(data []byte, f Format) (models.ID, error) {
	var id models.ID
	switch f {
	case FormatString:
		return models.FromString(string(data)), nil
	case FormatBSON:
		var doc idDocument
		if err := (models.BSONUnmarshaler{}).Unmarshal(data, &doc); err != nil {
			return id, err
		}
		return doc.ID, nil
	}

	c, err := codecFor(f)
	if err != nil {
		return id, err
	}
	if err := c.Unmarshal(data, &id); err != nil {
		return id, err
	}
	return id, nil
}

func codecFor(f Format) (codec.Codec, error) {
	switch f {
	case FormatJSON:
		return models.JSONCodec(), nil
	case FormatCBOR:
		return models.CborCodec(), nil
	default:
		return codec.Codec{}, fmt.Errorf("%w: %q", constants.ErrUnknownFormat, f)
	}
}
