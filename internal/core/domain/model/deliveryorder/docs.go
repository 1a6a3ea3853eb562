// Package deliveryorder provides the aggregate for orders carried to a customer's address.
//
// The package includes:
//   - DeliveryOrder: the aggregate root, holding the delivery address and line items
//   - Status: the delivery state machine
//
// Key business rules:
//   - A DELIVERY typed order must carry a non-empty address; other types carry none
//   - Status follows Waiting -> Accepted -> PickedUp -> Delivering -> Delivered -> Completed
//   - Only DELIVERY typed orders can start delivery
//   - Non-DELIVERY typed orders may be completed from any status except Completed
package deliveryorder
