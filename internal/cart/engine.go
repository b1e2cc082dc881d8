package cart

import (
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	pkgerrors "github.com/angelmondragon/cartworks-backend/pkg/errors"
)

// LineItem is one product entry in the cart. ProductID is the key:
// the engine never holds two items with the same id.
type LineItem struct {
	ProductID int64
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int64
}

// Snapshot is a read-only view of the cart, derived fresh per read.
type Snapshot struct {
	Items     []LineItem
	Total     decimal.Decimal
	ItemCount int64
}

// OrderSummary is produced only by Checkout.
type OrderSummary struct {
	OrderID      string
	Items        []LineItem
	Total        decimal.Decimal
	ItemCount    int64
	CheckoutTime time.Time
}

// AddItemInput carries the payload for AddItem. Pointer fields
// distinguish absent values from zero values so validation can report
// the first missing field.
type AddItemInput struct {
	ProductID *int64
	Name      *string
	UnitPrice *decimal.Decimal
	Quantity  *int64
}

// UpdateItemInput carries the optional fields for UpdateItem.
type UpdateItemInput struct {
	Quantity *int64
	Price    *decimal.Decimal
}

// Engine owns the process-wide cart. All operations take the mutex for
// the duration of the in-memory computation, so every call observes and
// leaves a consistent state.
type Engine struct {
	mu    sync.Mutex
	items []LineItem
}

// NewEngine returns an empty cart engine. One engine is built per
// process; tests build their own instances.
func NewEngine() *Engine {
	return &Engine{}
}

// Get returns the current snapshot. It never mutates.
func (e *Engine) Get() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// AddItem validates the payload and either appends a new line item or
// increments the quantity of the existing one with the same product id.
// Name and price of an existing item are never overwritten.
func (e *Engine) AddItem(input AddItemInput) (Snapshot, error) {
	if input.ProductID == nil {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "productId is required")
	}
	name := ""
	if input.Name != nil {
		name = strings.TrimSpace(*input.Name)
	}
	if name == "" {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	if input.UnitPrice == nil || !input.UnitPrice.IsPositive() {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than 0")
	}
	if input.Quantity == nil || *input.Quantity < 1 {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if existing := e.findLocked(*input.ProductID); existing != nil {
		existing.Quantity += *input.Quantity
	} else {
		e.items = append(e.items, LineItem{
			ProductID: *input.ProductID,
			Name:      name,
			UnitPrice: *input.UnitPrice,
			Quantity:  *input.Quantity,
		})
	}

	return e.snapshotLocked(), nil
}

// UpdateItem overwrites only the supplied fields of the matching line
// item. Validation failures leave the cart untouched.
func (e *Engine) UpdateItem(productID int64, input UpdateItemInput) (Snapshot, error) {
	if input.Quantity == nil && input.Price == nil {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "at least one field must be provided")
	}
	if input.Quantity != nil && *input.Quantity < 1 {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}
	if input.Price != nil && !input.Price.IsPositive() {
		return Snapshot{}, pkgerrors.New(pkgerrors.CodeValidation, "price must be greater than 0")
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	item := e.findLocked(productID)
	if item == nil {
		return Snapshot{}, pkgerrors.Newf(pkgerrors.CodeNotFound, "item with productId %d not found", productID)
	}

	if input.Quantity != nil {
		item.Quantity = *input.Quantity
	}
	if input.Price != nil {
		item.UnitPrice = *input.Price
	}

	return e.snapshotLocked(), nil
}

// RemoveItem deletes the matching line item; remaining items keep their
// relative order.
func (e *Engine) RemoveItem(productID int64) (Snapshot, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for i := range e.items {
		if e.items[i].ProductID == productID {
			e.items = append(e.items[:i], e.items[i+1:]...)
			return e.snapshotLocked(), nil
		}
	}
	return Snapshot{}, pkgerrors.Newf(pkgerrors.CodeNotFound, "item with productId %d not found", productID)
}

// Clear empties the cart. Calling it on an empty cart is a no-op.
func (e *Engine) Clear() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	return e.snapshotLocked()
}

// Checkout finalizes the current cart into an order summary and empties
// the cart. An empty cart fails the precondition and nothing changes.
func (e *Engine) Checkout() (OrderSummary, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.items) == 0 {
		return OrderSummary{}, pkgerrors.New(pkgerrors.CodeBadRequest, "cannot checkout with an empty cart")
	}

	snap := e.snapshotLocked()
	summary := OrderSummary{
		OrderID:      newOrderID(),
		Items:        snap.Items,
		Total:        snap.Total,
		ItemCount:    snap.ItemCount,
		CheckoutTime: time.Now().UTC(),
	}
	e.items = nil

	return summary, nil
}

// snapshotLocked derives the read view. Total is summed as exact
// decimals and rounded half-up to cents once, at the end.
func (e *Engine) snapshotLocked() Snapshot {
	items := make([]LineItem, len(e.items))
	copy(items, e.items)

	total := decimal.Zero
	var count int64
	for _, item := range e.items {
		total = total.Add(item.UnitPrice.Mul(decimal.NewFromInt(item.Quantity)))
		count += item.Quantity
	}

	return Snapshot{
		Items:     items,
		Total:     total.Round(2),
		ItemCount: count,
	}
}

func (e *Engine) findLocked(productID int64) *LineItem {
	for i := range e.items {
		if e.items[i].ProductID == productID {
			return &e.items[i]
		}
	}
	return nil
}
