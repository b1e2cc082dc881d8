package cart

import (
	"time"

	cartsvc "github.com/angelmondragon/cartworks-backend/internal/cart"
)

type LineItem struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Quantity  int64   `json:"quantity"`
}

type CartSnapshot struct {
	Items     []LineItem `json:"items"`
	Total     float64    `json:"total"`
	ItemCount int64      `json:"itemCount"`
}

type OrderSummary struct {
	OrderID      string     `json:"orderId"`
	Items        []LineItem `json:"items"`
	Total        float64    `json:"total"`
	ItemCount    int64      `json:"itemCount"`
	CheckoutTime string     `json:"checkoutTime"`
}

func newCartSnapshot(snap cartsvc.Snapshot) CartSnapshot {
	return CartSnapshot{
		Items:     newLineItems(snap.Items),
		Total:     snap.Total.InexactFloat64(),
		ItemCount: snap.ItemCount,
	}
}

func newOrderSummary(summary cartsvc.OrderSummary) OrderSummary {
	return OrderSummary{
		OrderID:      summary.OrderID,
		Items:        newLineItems(summary.Items),
		Total:        summary.Total.InexactFloat64(),
		ItemCount:    summary.ItemCount,
		CheckoutTime: summary.CheckoutTime.UTC().Format(time.RFC3339Nano),
	}
}

func newLineItems(items []cartsvc.LineItem) []LineItem {
	out := make([]LineItem, 0, len(items))
	for _, item := range items {
		out = append(out, LineItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Price:     item.UnitPrice.InexactFloat64(),
			Quantity:  item.Quantity,
		})
	}
	return out
}
