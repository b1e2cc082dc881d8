package cart

// Service is the operation surface the HTTP layer consumes.
type Service interface {
	Get() Snapshot
	AddItem(input AddItemInput) (Snapshot, error)
	UpdateItem(productID int64, input UpdateItemInput) (Snapshot, error)
	RemoveItem(productID int64) (Snapshot, error)
	Clear() Snapshot
	Checkout() (OrderSummary, error)
}

var _ Service = (*Engine)(nil)
