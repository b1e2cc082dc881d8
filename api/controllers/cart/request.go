package cart

import (
	"github.com/shopspring/decimal"

	cartsvc "github.com/angelmondragon/cartworks-backend/internal/cart"
)

// AddItemRequest mirrors the POST /cart body. Pointer fields let the
// engine tell an absent field from a zero value.
type AddItemRequest struct {
	ProductID *int64   `json:"productId"`
	Name      *string  `json:"name"`
	Price     *float64 `json:"price"`
	Quantity  *int64   `json:"quantity"`
}

// UpdateItemRequest mirrors the PUT /cart/{productId} body. Both fields
// are optional; the engine requires at least one.
type UpdateItemRequest struct {
	Quantity *int64   `json:"quantity"`
	Price    *float64 `json:"price"`
}

func toAddItemInput(payload AddItemRequest) cartsvc.AddItemInput {
	return cartsvc.AddItemInput{
		ProductID: payload.ProductID,
		Name:      payload.Name,
		UnitPrice: toDecimalPtr(payload.Price),
		Quantity:  payload.Quantity,
	}
}

func toUpdateItemInput(payload UpdateItemRequest) cartsvc.UpdateItemInput {
	return cartsvc.UpdateItemInput{
		Quantity: payload.Quantity,
		Price:    toDecimalPtr(payload.Price),
	}
}

func toDecimalPtr(value *float64) *decimal.Decimal {
	if value == nil {
		return nil
	}
	d := decimal.NewFromFloat(*value)
	return &d
}
