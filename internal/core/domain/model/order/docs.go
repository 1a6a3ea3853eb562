// Package order holds the building blocks every order channel shares: the order Type,
// the transition Operation names and the LineItem value object.
//
// The channel aggregates themselves live in eatinorder, takeoutorder and deliveryorder;
// they share only these values, not a base type.
package order
