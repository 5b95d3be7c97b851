package models

import (
	"io"
	"reflect"
	"sync"

	"github.com/fxamacker/cbor/v2"
	"github.com/mongoql/gqlid/internal/codec"
)

// TagObjectID is the application specific CBOR tag wrapping the 12 raw bytes
// of an ObjectID.
const TagObjectID uint64 = 0x6f6964

type CborMarshaler struct {
}

func (c CborMarshaler) Marshal(v interface{}) ([]byte, error) {
	em := getCborEncoder()
	return em.Marshal(v)
}

func (c CborMarshaler) NewEncoder(w io.Writer) codec.Encoder {
	em := getCborEncoder()
	return em.NewEncoder(w)
}

type CborUnmarshaler struct {
}

func (c CborUnmarshaler) Unmarshal(data []byte, dst interface{}) error {
	dm := getCborDecoder()
	return dm.Unmarshal(data, dst)
}

func (c CborUnmarshaler) NewDecoder(r io.Reader) codec.Decoder {
	dm := getCborDecoder()
	return dm.NewDecoder(r)
}

var (
	cborEncOnce sync.Once
	cborEncMode cbor.EncMode
	cborDecOnce sync.Once
	cborDecMode cbor.DecMode
)

func getCborEncoder() cbor.EncMode {
	cborEncOnce.Do(func() {
		em, err := cbor.EncOptions{
			Sort: cbor.SortCoreDeterministic,
		}.EncMode()
		if err != nil {
			panic(err)
		}
		cborEncMode = em
	})

	return cborEncMode
}

func getCborDecoder() cbor.DecMode {
	cborDecOnce.Do(func() {
		dm, err := cbor.DecOptions{
			DefaultMapType: reflect.TypeOf(map[string]any(nil)),
		}.DecMode()
		if err != nil {
			panic(err)
		}
		cborDecMode = dm
	})

	return cborDecMode
}
