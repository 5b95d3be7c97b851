// The [gqlid] package bridges MongoDB document identifiers and GraphQL IDs.
//
// # Data Model
//
// The identifier type is [models.ID]. It holds one of the three types MongoDB
// documents commonly use as primary keys:
//
//   - an ObjectID, built with [models.FromObjectID] or [models.NewObjectID],
//   - a string, built with [models.WithString],
//   - an int64, built with [models.FromInt64] or [models.WithInt].
//
// GraphQL transports IDs as strings. The canonical string form of an ObjectID is
// "$oid:" followed by its 24 lowercase hex digits, which is the only way an
// ObjectID survives a round trip through a plain string. [models.FromString]
// parses that form back, falling back to a string ID when the prefixed value is
// not a valid ObjectID.
//
// # Codecs
//
// [models.ID] implements the BSON, JSON and CBOR marshaling interfaces:
//
//   - BSON and CBOR preserve the variant: an ObjectID stays an ObjectID, a string
//     stays a string and an int64 stays an int64.
//   - JSON writes an ObjectID in MongoDB extended JSON form, {"$oid":"..."}, and
//     sniffs the input when decoding: objects go through the extended JSON
//     decoder, strings follow [models.FromString] and integers become int64 IDs.
//
// Use [Encode] and [Decode] to convert an ID to and from a named [Format].
//
// To map whole documents to API structs, see the
// [github.com/mongoql/gqlid/pkg/marshal] package.
//
// # Examples and Experimental Packages
//
// The [github.com/mongoql/gqlid/contrib] directory contains tools that are not
// covered by the module's backward compatibility guarantee.
package gqlid
