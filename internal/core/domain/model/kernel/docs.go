// Package kernel provides core domain primitives shared by every order channel.
//
// The package includes:
//   - UUID: A value object for unique identifiers with validation and comparison capabilities
//   - Price: An exact decimal amount captured on order line items and menus
//
// These primitives enforce their invariants at construction and are immutable,
// making them safe to share between goroutines.
package kernel
