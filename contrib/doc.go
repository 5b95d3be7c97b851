// Package contrib provides additional functionality and utilities
// for the gqlid module.
//
// Everything in this package is intended to extend the core identifier
// types with tools that are not part of the core library.
//
// Note that this package is outside of the backward compatibility guarantees
// provided by the core gqlid module. Changes to this package may
// introduce breaking changes without following semantic versioning.
//
// The [github.com/mongoql/gqlid/contrib/idconv] package converts IDs between the
// string, JSON, BSON and CBOR representations, and backs the idconv command.
package contrib
