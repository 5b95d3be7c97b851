package models

import (
	"fmt"
	"math"

	"github.com/mongoql/gqlid/pkg/constants"

	"github.com/fxamacker/cbor/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarshalCBOR implements cbor.Marshaler.
//
// Like BSON, the CBOR encoding preserves the variant. An ObjectID is written
// as its 12 bytes wrapped in TagObjectID, a string ID as a text string and an
// int64 ID as an integer.
func (id ID) MarshalCBOR() ([]byte, error) {
	enc := getCborEncoder()

	switch id.kind {
	case KindObjectID:
		return enc.Marshal(cbor.Tag{
			Number:  TagObjectID,
			Content: id.oid[:],
		})
	case KindInt64:
		return enc.Marshal(id.num)
	default:
		return enc.Marshal(id.str)
	}
}

// UnmarshalCBOR implements cbor.Unmarshaler.
func (id *ID) UnmarshalCBOR(data []byte) error {
	dec := getCborDecoder()

	var item any
	if err := dec.Unmarshal(data, &item); err != nil {
		return err
	}

	switch t := item.(type) {
	case string:
		*id = WithString(t)
	case int64:
		*id = FromInt64(t)
	case uint64:
		if t > math.MaxInt64 {
			return fmt.Errorf("%w: integer %d overflows int64", constants.ErrUnsupportedCBORType, t)
		}
		*id = FromInt64(int64(t))
	case cbor.Tag:
		oid, err := objectIDFromTag(t)
		if err != nil {
			return err
		}
		*id = FromObjectID(oid)
	default:
		return fmt.Errorf("%w: %T", constants.ErrUnsupportedCBORType, item)
	}

	return nil
}

func objectIDFromTag(tag cbor.Tag) (primitive.ObjectID, error) {
	if tag.Number != TagObjectID {
		return primitive.NilObjectID, fmt.Errorf("%w: unexpected tag number: got %d, want %d",
			constants.ErrUnsupportedCBORType, tag.Number, TagObjectID)
	}

	b, ok := tag.Content.([]byte)
	if !ok {
		return primitive.NilObjectID, fmt.Errorf("%w: ObjectID tag content must be byte string, got %T",
			constants.ErrUnsupportedCBORType, tag.Content)
	}

	var oid primitive.ObjectID
	if len(b) != len(oid) {
		return primitive.NilObjectID, fmt.Errorf("%w: ObjectID must be exactly %d bytes, got %d",
			constants.ErrUnsupportedCBORType, len(oid), len(b))
	}
	copy(oid[:], b)

	return oid, nil
}
