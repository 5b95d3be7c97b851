package models

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mongoql/gqlid/pkg/constants"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind tells which variant an ID holds.
type Kind uint8

const (
	// KindString is the kind of the zero ID.
	KindString Kind = iota
	KindObjectID
	KindInt64
)

func (k Kind) String() string {
	switch k {
	case KindObjectID:
		return "objectid"
	case KindInt64:
		return "int64"
	default:
		return "string"
	}
}

// ID is a GraphQL identifier backed by one of the identifier types
// MongoDB documents use as primary keys: an ObjectID, a string or an int64.
//
// IDs are comparable values. Two IDs are equal only when they hold the same
// variant and the same value, so FromInt64(5) and WithString("5") differ.
// IDs can be used as map keys.
//
// The zero ID is the empty string ID.
//
// An ObjectID survives a round trip through a plain string only in its
// canonical form "$oid:<24 hex digits>", see [ID.String] and [FromString].
type ID struct {
	kind Kind
	oid  primitive.ObjectID
	str  string
	num  int64
}

// Integer lists the integer types that convert to an int64 without loss.
type Integer interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 | ~uint8 | ~uint16 | ~uint32
}

func FromObjectID(oid primitive.ObjectID) ID {
	return ID{kind: KindObjectID, oid: oid}
}

// NewObjectID returns an ID holding a freshly generated ObjectID.
func NewObjectID() ID {
	return FromObjectID(primitive.NewObjectID())
}

// FromString parses the string form of an ID.
//
// A string starting with "$oid:" is parsed as an ObjectID. When the remainder
// is not a valid ObjectID, the whole original string, prefix included, is kept
// as a string ID. Every other string becomes a string ID as is.
func FromString(s string) ID {
	if hex, ok := strings.CutPrefix(s, constants.ObjectIDPrefix); ok {
		if oid, err := primitive.ObjectIDFromHex(hex); err == nil {
			return FromObjectID(oid)
		}
	}
	return WithString(s)
}

// WithString returns a string ID without interpreting the "$oid:" prefix.
func WithString(s string) ID {
	return ID{kind: KindString, str: s}
}

func FromInt64(i int64) ID {
	return ID{kind: KindInt64, num: i}
}

// WithInt returns an int64 ID from any integer type that fits in an int64.
func WithInt[I Integer](v I) ID {
	return FromInt64(int64(v))
}

func (id ID) Kind() Kind {
	return id.kind
}

func (id ID) AsObjectID() (primitive.ObjectID, bool) {
	return id.oid, id.kind == KindObjectID
}

func (id ID) AsString() (string, bool) {
	return id.str, id.kind == KindString
}

func (id ID) AsInt64() (int64, bool) {
	return id.num, id.kind == KindInt64
}

func (id ID) Equal(other ID) bool {
	return id == other
}

// String returns the canonical string form of the ID:
// "$oid:" followed by the lowercase hex digits for an ObjectID,
// the string itself for a string ID and the decimal form for an int64.
func (id ID) String() string {
	switch id.kind {
	case KindObjectID:
		return constants.ObjectIDPrefix + id.oid.Hex()
	case KindInt64:
		return strconv.FormatInt(id.num, 10)
	default:
		return id.str
	}
}

// ObjectID converts the ID to an ObjectID.
//
// An ObjectID ID is returned as is. A string ID is parsed as 24 hex digits,
// with an optional "$oid:" prefix. An int64 ID is parsed from its decimal form,
// which practically never is a valid ObjectID.
// The returned error wraps [constants.ErrNotObjectID].
func (id ID) ObjectID() (primitive.ObjectID, error) {
	var src string
	switch id.kind {
	case KindObjectID:
		return id.oid, nil
	case KindInt64:
		src = strconv.FormatInt(id.num, 10)
	default:
		src = strings.TrimPrefix(id.str, constants.ObjectIDPrefix)
	}

	oid, err := primitive.ObjectIDFromHex(src)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q: %w", constants.ErrNotObjectID, src, err)
	}
	return oid, nil
}

// MustObjectID is like ObjectID but panics when the ID is not convertible.
func (id ID) MustObjectID() primitive.ObjectID {
	oid, err := id.ObjectID()
	if err != nil {
		panic(err)
	}
	return oid
}

// MarshalText implements encoding.TextMarshaler using the canonical string form.
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler following FromString.
func (id *ID) UnmarshalText(text []byte) error {
	*id = FromString(string(text))
	return nil
}

// MarshalZerologObject implements zerolog.LogObjectMarshaler.
func (id ID) MarshalZerologObject(e *zerolog.Event) {
	e.Str("kind", id.kind.String()).Str("value", id.String())
}
