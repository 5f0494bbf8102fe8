// Package order provides the Order aggregate and its Product line items.
//
// The package includes:
//   - Product: an immutable value object holding a name and a price
//   - Order: an ordered list of products with a delivery cost and a discount
//
// Key business rules:
//   - Products must have a name and a non-negative price
//   - Orders must be created through NewOrder and carry a valid identifier
//   - Clone produces a deep copy: the clone shares no product storage with
//     its source, gets its own identifier, and copies the scalar fields by
//     value, so changing one side never affects the other
//   - Cloning an order that was not built by NewOrder fails with a
//     CopyFailedError; callers treat that as fatal
package order
