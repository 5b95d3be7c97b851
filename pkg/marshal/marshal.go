// Package marshal maps MongoDB documents to the maps and structs served by
// API layers, converting the "_id" primary key to an "id" field holding a
// [models.ID] and back.
package marshal

import (
	"fmt"

	"github.com/mongoql/gqlid/pkg/constants"
	"github.com/mongoql/gqlid/pkg/models"

	"github.com/goccy/go-json"
	"go.mongodb.org/mongo-driver/bson"
)

// DocumentID returns the identifier stored in the "_id" field of doc.
func DocumentID(doc bson.M) (models.ID, error) {
	v, ok := doc[constants.DocumentIDKey]
	if !ok {
		return models.ID{}, constants.ErrNoID
	}
	id, err := models.FromBSON(v)
	if err != nil {
		return models.ID{}, fmt.Errorf("invalid document %s: %w", constants.DocumentIDKey, err)
	}
	return id, nil
}

// IDFilter returns a query filter matching the document with the given ID.
func IDFilter(id models.ID) bson.D {
	return bson.D{{Key: constants.DocumentIDKey, Value: id.ToBSON()}}
}

// Normalize returns a shallow copy of doc where "_id" is replaced by "id".
func Normalize(doc bson.M) (map[string]any, error) {
	id, err := DocumentID(doc)
	if err != nil {
		return nil, err
	}

	out := make(map[string]any, len(doc))
	for k, v := range doc {
		if k == constants.DocumentIDKey {
			continue
		}
		out[k] = v
	}
	out[constants.APIIDKey] = id
	return out, nil
}

// Denormalize is the inverse of Normalize. The "id" field may hold a
// models.ID or a string, which is parsed with models.FromString.
func Denormalize(m map[string]any) (bson.M, error) {
	var id models.ID
	switch v := m[constants.APIIDKey].(type) {
	case models.ID:
		id = v
	case string:
		id = models.FromString(v)
	case nil:
		return nil, fmt.Errorf("%w: missing %q field", constants.ErrNoID, constants.APIIDKey)
	default:
		return nil, fmt.Errorf("unsupported %q field of type %T", constants.APIIDKey, v)
	}

	doc := make(bson.M, len(m))
	for k, v := range m {
		if k == constants.APIIDKey {
			continue
		}
		doc[k] = v
	}
	doc[constants.DocumentIDKey] = id.ToBSON()
	return doc, nil
}

// Unmarshal loads a MongoDB document into an API struct.
// The document is normalized and decoded through JSON, so a models.ID field
// tagged `json:"id"` receives the document's "_id" with its variant intact.
func Unmarshal(doc bson.M, v any) error {
	m, err := Normalize(doc)
	if err != nil {
		return err
	}

	jsonBytes, err := json.Marshal(m)
	if err != nil {
		return fmt.Errorf("failed to serialise document '%+v': %w", m, err)
	}

	if err := json.Unmarshal(jsonBytes, v); err != nil {
		return fmt.Errorf("failed unmarshaling jsonBytes '%s': %w", jsonBytes, err)
	}
	return nil
}
