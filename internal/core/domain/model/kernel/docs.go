// Package kernel holds the domain primitives shared by the aggregates.
//
// The package currently provides UUID, an identifier value object wrapping
// github.com/google/uuid. Its zero value is invalid: identifiers must come
// from NewUUID or UUIDFromString, which lets aggregates reject
// accidentally uninitialised IDs through Validate.
package kernel
