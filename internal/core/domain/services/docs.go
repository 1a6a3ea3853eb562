// Package services holds domain rules that span more than one aggregate.
//
// The package includes:
//   - LineItemsValidator: checks requested line items against the menus they reference
//     (resolution count, visibility, exact price, per channel quantity policy)
//   - DeliveryTotal: the amount sent to the courier service when a delivery order is accepted
package services
