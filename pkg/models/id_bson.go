package models

import (
	"fmt"

	"github.com/mongoql/gqlid/pkg/constants"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FromBSON returns the ID held by a value decoded from a MongoDB document,
// typically the "_id" field of a bson.M.
//
// Only primitive.ObjectID, string and int64 are identifiers. A bson.RawValue
// is handled by FromRawValue. Any other value means the field was not used as
// an identifier and results in an error wrapping [constants.ErrUnsupportedBSONType].
func FromBSON(v any) (ID, error) {
	switch t := v.(type) {
	case primitive.ObjectID:
		return FromObjectID(t), nil
	case string:
		return WithString(t), nil
	case int64:
		return FromInt64(t), nil
	case bson.RawValue:
		return FromRawValue(t)
	case ID:
		return t, nil
	default:
		return ID{}, fmt.Errorf("%w: %T", constants.ErrUnsupportedBSONType, v)
	}
}

// MustFromBSON is like FromBSON but panics on values that are not identifiers.
func MustFromBSON(v any) ID {
	id, err := FromBSON(v)
	if err != nil {
		panic(err)
	}
	return id
}

// FromRawValue returns the ID held by a raw BSON element value.
// Only ObjectID, string and int64 elements are accepted.
func FromRawValue(rv bson.RawValue) (ID, error) {
	switch rv.Type {
	case bsontype.ObjectID:
		oid, ok := rv.ObjectIDOK()
		if !ok {
			return ID{}, fmt.Errorf("malformed BSON ObjectID of %d bytes", len(rv.Value))
		}
		return FromObjectID(oid), nil
	case bsontype.String:
		s, ok := rv.StringValueOK()
		if !ok {
			return ID{}, fmt.Errorf("malformed BSON string of %d bytes", len(rv.Value))
		}
		return WithString(s), nil
	case bsontype.Int64:
		i, ok := rv.Int64OK()
		if !ok {
			return ID{}, fmt.Errorf("malformed BSON int64 of %d bytes", len(rv.Value))
		}
		return FromInt64(i), nil
	default:
		return ID{}, fmt.Errorf("%w: %s", constants.ErrUnsupportedBSONType, rv.Type)
	}
}

// ToBSON returns the value stored in MongoDB for the ID: a primitive.ObjectID,
// a string or an int64. It is the inverse of FromBSON.
func (id ID) ToBSON() any {
	switch id.kind {
	case KindObjectID:
		return id.oid
	case KindInt64:
		return id.num
	default:
		return id.str
	}
}

// MarshalBSONValue implements bson.ValueMarshaler.
//
// The variant is preserved: an ObjectID is written as an ObjectID element,
// a string as a string element and an int64 as an int64 element.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	return bson.MarshalValue(id.ToBSON())
}

// UnmarshalBSONValue implements bson.ValueUnmarshaler.
func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	parsed, err := FromRawValue(bson.RawValue{Type: t, Value: data})
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
