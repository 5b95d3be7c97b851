package constants

import "errors"

// Errors
var (
	ErrUnsupportedBSONType = errors.New("unsupported BSON type for ID")
	ErrUnsupportedShape    = errors.New("unsupported JSON shape for ID")
	ErrUnsupportedCBORType = errors.New("unsupported CBOR item for ID")
	ErrNotObjectID         = errors.New("ID is not convertible to an ObjectID")
)

var (
	ErrNoID          = errors.New("document has no _id field")
	ErrUnknownFormat = errors.New("unknown ID format")
)
