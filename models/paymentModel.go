package models

import (
	"encoding/json"
	"time"
)

const (
	PaymentSucceeded = "succeeded"
	PaymentFailed    = "failed"
	PaymentPending   = "pending"
)

type Payment struct {
	OrderID  *string    `json:"order_id" bson:"order_id" validate:"required" description:"Related order id"`
	Amount   *float64   `json:"amount" bson:"amount" validate:"required,gte=0"`
	Currency *string    `json:"currency" bson:"currency" validate:"omitempty,oneof=INR USD" default:"INR"`
	Provider *string    `json:"provider" bson:"provider" validate:"omitempty,oneof=stripe cash upi" default:"stripe"`
	Status   *string    `json:"status" bson:"status" validate:"omitempty,oneof=succeeded failed pending" default:"pending"`
	PaidAt   *time.Time `json:"paid_at" bson:"paid_at"`
}

func (p Payment) Succeeded() bool {
	return p.Status != nil && *p.Status == PaymentSucceeded
}

func (p Payment) Order() string {
	if p.OrderID == nil {
		return ""
	}
	return *p.OrderID
}

// UnmarshalJSON accepts paid_at with or without a zone offset.
func (p *Payment) UnmarshalJSON(data []byte) error {
	type Alias Payment
	aux := struct {
		*Alias
		PaidAt *string `json:"paid_at"`
	}{Alias: (*Alias)(p)}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	if aux.PaidAt == nil {
		return nil
	}

	paidAt, err := ParseTimestamp(*aux.PaidAt)
	if err != nil {
		return &ValidationError{Fields: []FieldError{{
			Field:   "paid_at",
			Rule:    "datetime",
			Message: "must be an ISO 8601 date-time",
		}}}
	}
	p.PaidAt = &paidAt
	return nil
}
