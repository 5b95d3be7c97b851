package models

import (
	"bytes"
	"testing"

	"github.com/mongoql/gqlid/internal/codec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecs_stream(t *testing.T) {
	ids := []ID{FromObjectID(testObjectID(t)), WithString("abc"), FromInt64(42)}

	codecs := map[string]codec.Codec{
		"json": JSONCodec(),
		"bson": BSONCodec(),
		"cbor": CborCodec(),
	}

	for name, c := range codecs {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			enc := c.NewEncoder(&buf)
			for _, id := range ids {
				require.NoError(t, enc.Encode(bsonItem{ID: id, Name: id.Kind().String()}))
			}

			dec := c.NewDecoder(&buf)
			for _, id := range ids {
				var item bsonItem
				require.NoError(t, dec.Decode(&item))
				assert.Equal(t, id, item.ID)
				assert.Equal(t, id.Kind().String(), item.Name)
			}

			var extra bsonItem
			assert.Error(t, dec.Decode(&extra), "the stream should be exhausted")
		})
	}
}

func TestCodecs_marshal(t *testing.T) {
	id := FromObjectID(testObjectID(t))

	for name, c := range map[string]codec.Codec{"json": JSONCodec(), "bson": BSONCodec(), "cbor": CborCodec()} {
		t.Run(name, func(t *testing.T) {
			data, err := c.Marshal(bsonItem{ID: id})
			require.NoError(t, err)

			var item bsonItem
			require.NoError(t, c.Unmarshal(data, &item))
			assert.Equal(t, id, item.ID)
		})
	}
}
