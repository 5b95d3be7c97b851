package marshal_test

import (
	"testing"

	"github.com/mongoql/gqlid/pkg/constants"
	"github.com/mongoql/gqlid/pkg/marshal"
	"github.com/mongoql/gqlid/pkg/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type testNode struct {
	ID    models.ID `json:"id"`
	Title string    `json:"title"`
	Count int       `json:"count"`
}

func mustObjectID(t *testing.T) primitive.ObjectID {
	t.Helper()
	oid, err := primitive.ObjectIDFromHex("5eaefffa00c9fdf000c46fdc")
	require.NoError(t, err)
	return oid
}

func TestDocumentID(t *testing.T) {
	oid := mustObjectID(t)

	id, err := marshal.DocumentID(bson.M{"_id": oid})
	require.NoError(t, err)
	assert.Equal(t, models.FromObjectID(oid), id)

	id, err = marshal.DocumentID(bson.M{"_id": int64(8)})
	require.NoError(t, err)
	assert.Equal(t, models.FromInt64(8), id)

	_, err = marshal.DocumentID(bson.M{"name": "x"})
	assert.ErrorIs(t, err, constants.ErrNoID)

	_, err = marshal.DocumentID(bson.M{"_id": 1.5})
	assert.ErrorIs(t, err, constants.ErrUnsupportedBSONType)
}

func TestIDFilter(t *testing.T) {
	oid := mustObjectID(t)
	assert.Equal(t, bson.D{{Key: "_id", Value: oid}}, marshal.IDFilter(models.FromObjectID(oid)))
	assert.Equal(t, bson.D{{Key: "_id", Value: "abc"}}, marshal.IDFilter(models.WithString("abc")))
	assert.Equal(t, bson.D{{Key: "_id", Value: int64(3)}}, marshal.IDFilter(models.FromInt64(3)))
}

func TestNormalize_roundtrip(t *testing.T) {
	oid := mustObjectID(t)
	doc := bson.M{"_id": oid, "title": "hello"}

	m, err := marshal.Normalize(doc)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"id": models.FromObjectID(oid), "title": "hello"}, m)
	assert.Contains(t, doc, "_id", "the source document must not be modified")

	back, err := marshal.Denormalize(m)
	require.NoError(t, err)
	assert.Equal(t, doc, back)
}

func TestDenormalize_stringID(t *testing.T) {
	oid := mustObjectID(t)

	doc, err := marshal.Denormalize(map[string]any{"id": "$oid:5eaefffa00c9fdf000c46fdc"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": oid}, doc)

	doc, err = marshal.Denormalize(map[string]any{"id": "42"})
	require.NoError(t, err)
	assert.Equal(t, bson.M{"_id": "42"}, doc)
}

func TestDenormalize_invalid(t *testing.T) {
	_, err := marshal.Denormalize(map[string]any{"title": "x"})
	assert.ErrorIs(t, err, constants.ErrNoID)

	_, err = marshal.Denormalize(map[string]any{"id": true})
	assert.Error(t, err)
}

func TestUnmarshal(t *testing.T) {
	oid := mustObjectID(t)

	testcases := []struct {
		name string
		doc  bson.M
		want testNode
	}{
		{
			name: "objectid",
			doc:  bson.M{"_id": oid, "title": "a", "count": 1},
			want: testNode{ID: models.FromObjectID(oid), Title: "a", Count: 1},
		},
		{
			name: "string",
			doc:  bson.M{"_id": "slug", "title": "b", "count": 2},
			want: testNode{ID: models.WithString("slug"), Title: "b", Count: 2},
		},
		{
			name: "int64",
			doc:  bson.M{"_id": int64(99), "title": "c", "count": 3},
			want: testNode{ID: models.FromInt64(99), Title: "c", Count: 3},
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			var got testNode
			require.NoError(t, marshal.Unmarshal(tc.doc, &got))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnmarshal_invalidID(t *testing.T) {
	var got testNode
	err := marshal.Unmarshal(bson.M{"_id": int32(1)}, &got)
	assert.ErrorIs(t, err, constants.ErrUnsupportedBSONType)
}

func TestUnmarshal_fromDriverDocument(t *testing.T) {
	data, err := bson.Marshal(bson.D{{Key: "_id", Value: int64(5)}, {Key: "title", Value: "t"}})
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(data, &doc))

	var got testNode
	require.NoError(t, marshal.Unmarshal(doc, &got))
	assert.Equal(t, models.FromInt64(5), got.ID)
	assert.Equal(t, "t", got.Title)
}
