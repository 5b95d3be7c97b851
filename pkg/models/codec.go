package models

import (
	"io"

	"github.com/goccy/go-json"
	"github.com/mongoql/gqlid/internal/codec"
	"go.mongodb.org/mongo-driver/bson"
)

type JSONMarshaler struct {
}

func (j JSONMarshaler) Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

func (j JSONMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	return json.NewEncoder(w)
}

type JSONUnmarshaler struct {
}

func (j JSONUnmarshaler) Unmarshal(data []byte, dst any) error {
	return json.Unmarshal(data, dst)
}

func (j JSONUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	return json.NewDecoder(r)
}

// BSONMarshaler encodes documents. BSON has no top-level scalars, so an ID
// must be wrapped in a document such as bson.D{{Key: "_id", Value: id}}.
type BSONMarshaler struct {
}

func (b BSONMarshaler) Marshal(v any) ([]byte, error) {
	return bson.Marshal(v)
}

func (b BSONMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	return &bsonEncoder{w: w}
}

type BSONUnmarshaler struct {
}

func (b BSONUnmarshaler) Unmarshal(data []byte, dst any) error {
	return bson.Unmarshal(data, dst)
}

func (b BSONUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	return &bsonDecoder{r: r}
}

// bsonEncoder writes one document per Encode call.
type bsonEncoder struct {
	w io.Writer
}

func (e *bsonEncoder) Encode(v any) error {
	data, err := bson.Marshal(v)
	if err != nil {
		return err
	}
	_, err = e.w.Write(data)
	return err
}

// bsonDecoder reads one length-prefixed document per Decode call.
type bsonDecoder struct {
	r io.Reader
}

func (d *bsonDecoder) Decode(v any) error {
	raw, err := bson.NewFromIOReader(d.r)
	if err != nil {
		return err
	}
	return bson.Unmarshal(raw, v)
}

// JSONCodec, BSONCodec and CborCodec return the marshaler and unmarshaler
// pair of each wire format.
func JSONCodec() codec.Codec {
	return codec.Codec{Marshaler: JSONMarshaler{}, Unmarshaler: JSONUnmarshaler{}}
}

func BSONCodec() codec.Codec {
	return codec.Codec{Marshaler: BSONMarshaler{}, Unmarshaler: BSONUnmarshaler{}}
}

func CborCodec() codec.Codec {
	return codec.Codec{Marshaler: CborMarshaler{}, Unmarshaler: CborUnmarshaler{}}
}
