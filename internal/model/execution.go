package model

// ExecutionOrder is an order ready to be placed on a venue. Visible quantity
// is displayed, hidden quantity is the iceberg remainder. Child orders
// reference their parent order id.
type ExecutionOrder struct {
	Product         Bond
	Side            PricingSide
	OrderID         string
	Type            OrderType
	Price           float64
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChild         bool
}

// AlgoExecution is an execution order together with its target venue, as
// decided by the algo execution engine.
type AlgoExecution struct {
	Order ExecutionOrder
	Venue Venue
}
