package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// OrderStatus represents the order redemption state
type OrderStatus string

const (
	OrderStatusPending   OrderStatus = "pending"
	OrderStatusValidated OrderStatus = "validated"
)

// LineStatus represents the per-merchant confirmation state of a line
type LineStatus string

const (
	LineStatusUnconfirmed LineStatus = "unconfirmed"
	LineStatusConfirmed   LineStatus = "confirmed"
)

// Order is the immutable snapshot of a cart taken at checkout. The code is
// an opaque globally unique token used to look the order up at redemption;
// it carries no tenant information.
type Order struct {
	ID          uuid.UUID   `json:"id"`
	TenantID    uuid.UUID   `json:"tenantId"`
	CustomerID  uuid.UUID   `json:"customerId"`
	Code        string      `json:"code"`
	Total       float64     `json:"total"`
	Status      OrderStatus `json:"status"`
	ValidatedAt null.Time   `json:"validatedAt,omitempty"`
	Lines       []OrderLine `json:"lines,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// OrderLine freezes one distinct product at checkout time. Status moves
// unconfirmed -> confirmed exactly once; price and subtotal never change.
type OrderLine struct {
	ID          uuid.UUID  `json:"id"`
	OrderID     uuid.UUID  `json:"orderId"`
	ProductID   uuid.UUID  `json:"productId"`
	MerchantID  uuid.UUID  `json:"merchantId"`
	ProductName string     `json:"productName"`
	Quantity    int        `json:"quantity"`
	UnitPrice   float64    `json:"unitPrice"`
	Subtotal    float64    `json:"subtotal"`
	Status      LineStatus `json:"status"`
	ConfirmedBy null.String `json:"confirmedBy,omitempty"`
	ConfirmedAt null.Time  `json:"confirmedAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

// Merchants returns the distinct merchant ids referenced by the order lines.
func (o *Order) Merchants() []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(o.Lines))
	var out []uuid.UUID
	for _, l := range o.Lines {
		if _, ok := seen[l.MerchantID]; ok {
			continue
		}
		seen[l.MerchantID] = struct{}{}
		out = append(out, l.MerchantID)
	}
	return out
}

// FullyConfirmed reports whether every line has been confirmed.
func (o *Order) FullyConfirmed() bool {
	if len(o.Lines) == 0 {
		return false
	}
	for _, l := range o.Lines {
		if l.Status != LineStatusConfirmed {
			return false
		}
	}
	return true
}

// RedemptionResult is returned by a confirm call
type RedemptionResult struct {
	OrderID        uuid.UUID   `json:"orderId"`
	Code           string      `json:"code"`
	Status         OrderStatus `json:"status"`
	ConfirmedLines int         `json:"confirmedLines"`
	TotalLines     int         `json:"totalLines"`
	ValidatedAt    null.Time   `json:"validatedAt,omitempty"`
}
