package constants

const (
	// ObjectIDPrefix marks the plain-string form of an ObjectID identifier.
	ObjectIDPrefix = "$oid:"
	// ExtJSONObjectIDKey is the extended JSON key of an ObjectID.
	ExtJSONObjectIDKey = "$oid"
	// DocumentIDKey is the primary key field of a MongoDB document.
	DocumentIDKey = "_id"
	// APIIDKey is the identifier field exposed to API layers.
	APIIDKey = "id"
)
