package service

import (
	"time"

	"comanda/internal/domain/entity"
)

// ReceiptItem is one itemized line of a receipt, with its customization
// sub-lines already spelled out ("- SEM X", "+ COM Y").
type ReceiptItem struct {
	Quantity    int      `json:"quantity"`
	Name        string   `json:"name"`
	Packaging   string   `json:"packaging,omitempty"`
	Observation string   `json:"observation,omitempty"`
	Deltas      []string `json:"deltas,omitempty"`
	LineTotal   string   `json:"lineTotal"`
}

// ReceiptDocument is the structured projection of a finalized order that the
// printing collaborator consumes verbatim. All monetary fields are already
// formatted with two decimals.
type ReceiptDocument struct {
	BusinessName string        `json:"businessName"`
	Tagline      string        `json:"tagline,omitempty"`
	OrderRef     string        `json:"orderRef"` // "#" + last four characters of the order id.
	OrderType    string        `json:"orderType"`
	TableNumber  string        `json:"tableNumber,omitempty"`
	IssuedAt     time.Time     `json:"issuedAt"`
	Customer     []string      `json:"customer"` // Name, phone, and the address block for deliveries.
	Payment      string        `json:"payment"`
	Items        []ReceiptItem `json:"items"`
	Observation  string        `json:"observation,omitempty"`
	Subtotal     string        `json:"subtotal"`
	DeliveryFee  string        `json:"deliveryFee,omitempty"` // Present only for deliveries.
	Total        string        `json:"total"`
	PaidStamp    bool          `json:"paidStamp"`
	Footer       []string      `json:"footer"`
	PixPayload   string        `json:"pixPayload,omitempty"`
	PixQR        []byte        `json:"pixQr,omitempty"`
}

// ReceiptFormatter projects a finalized order into a printable document.
// Pure: no I/O side effects.
type ReceiptFormatter interface {
	// Format builds the structured receipt document for an order.
	Format(order *entity.Order) (*ReceiptDocument, error)

	// Render flattens a document into fixed-width text lines for the
	// fallback printing path.
	Render(doc *ReceiptDocument) string
}
