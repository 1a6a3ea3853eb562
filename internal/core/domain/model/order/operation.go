package order

// Operation names a status transition. Each channel's status type maps
// (current status, operation) to the next status.
type Operation string

const (
	Accept           Operation = "accept"
	Serve            Operation = "serve"
	StartDelivery    Operation = "start delivery"
	CompleteDelivery Operation = "complete delivery"
	Complete         Operation = "complete"
)
