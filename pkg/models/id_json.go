package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mongoql/gqlid/pkg/constants"

	"github.com/buger/jsonparser"
	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
)

// UnsupportedShapeError is returned when a JSON value cannot hold an ID.
type UnsupportedShapeError struct {
	Shape string
}

func (e *UnsupportedShapeError) Error() string {
	return fmt.Sprintf("unable to decode ID from JSON %s: expected an object, a string or an integer", e.Shape)
}

func (e *UnsupportedShapeError) Unwrap() error {
	return constants.ErrUnsupportedShape
}

// MarshalJSON implements json.Marshaler.
//
// An ObjectID is written in MongoDB extended JSON form, {"$oid":"<hex>"},
// a string ID as a JSON string and an int64 ID as a JSON number.
func (id ID) MarshalJSON() ([]byte, error) {
	switch id.kind {
	case KindObjectID:
		return json.Marshal(map[string]string{constants.ExtJSONObjectIDKey: id.oid.Hex()})
	case KindInt64:
		return strconv.AppendInt(nil, id.num, 10), nil
	default:
		return json.Marshal(id.str)
	}
}

// UnmarshalJSON implements json.Unmarshaler.
//
// The decoder sniffs the JSON value:
//   - an object is decoded as MongoDB extended JSON, so {"$oid":"..."} yields an
//     ObjectID ID and {"$numberLong":"..."} an int64 ID;
//   - a string follows FromString;
//   - an integer yields an int64 ID. Unsigned integers above math.MaxInt64 are
//     narrowed to int64 and wrap around, e.g. 18446744073709551615 becomes -1.
//
// Booleans, arrays, null and floats return an *UnsupportedShapeError.
func (id *ID) UnmarshalJSON(data []byte) error {
	value, dataType, _, err := jsonparser.Get(data)
	if err != nil {
		return fmt.Errorf("unable to parse ID from JSON: %w", err)
	}

	var parsed ID
	switch dataType {
	case jsonparser.Object:
		parsed, err = fromExtJSON(value)
	case jsonparser.String:
		var s string
		s, err = jsonparser.ParseString(value)
		parsed = FromString(s)
	case jsonparser.Number:
		parsed, err = fromJSONNumber(value)
	default:
		err = &UnsupportedShapeError{Shape: dataType.String()}
	}
	if err != nil {
		return err
	}

	*id = parsed
	return nil
}

// fromExtJSON decodes a JSON object as a single extended JSON value.
// The object is wrapped into a document because extended JSON has no
// top-level scalars.
func fromExtJSON(obj []byte) (ID, error) {
	wrapped := make([]byte, 0, len(obj)+6)
	wrapped = append(wrapped, `{"v":`...)
	wrapped = append(wrapped, obj...)
	wrapped = append(wrapped, '}')

	var doc struct {
		V bson.RawValue `bson:"v"`
	}
	if err := bson.UnmarshalExtJSON(wrapped, false, &doc); err != nil {
		return ID{}, fmt.Errorf("unable to decode extended JSON ID: %w", err)
	}
	return FromRawValue(doc.V)
}

func fromJSONNumber(value []byte) (ID, error) {
	s := string(value)
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return FromInt64(i), nil
	}
	if u, err := strconv.ParseUint(s, 10, 64); err == nil {
		return FromInt64(int64(u)), nil
	}
	if strings.ContainsAny(s, ".eE") {
		return ID{}, &UnsupportedShapeError{Shape: "float"}
	}
	return ID{}, fmt.Errorf("unable to decode ID from JSON number %s: out of 64-bit range", s)
}
