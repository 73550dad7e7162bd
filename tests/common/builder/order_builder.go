//go:build unit || e2e

package builder

import (
	"pickup-scheduler/internal/domain/order"
)

type OrderBuilder struct {
	Number          string
	PickupStatus    string
	StorageFeeStart string
	ReadyDate       string
}

func NewOrderBuilder() *OrderBuilder {
	return &OrderBuilder{
		Number:    "SO-1001",
		ReadyDate: "01/15/2025",
	}
}

func (o *OrderBuilder) With(mutate func(*OrderBuilder)) *OrderBuilder {
	mutate(o)
	return o
}

func (o *OrderBuilder) PickedUp() *OrderBuilder {
	o.StorageFeeStart = "Picked Up"
	return o
}

func (o *OrderBuilder) Fulfilled() *OrderBuilder {
	o.PickupStatus = "Fulfilled"
	return o
}

func (o *OrderBuilder) BuildDomain() order.Order {
	return order.Order{
		Number:          o.Number,
		PickupStatus:    o.PickupStatus,
		StorageFeeStart: o.StorageFeeStart,
		ReadyDate:       o.ReadyDate,
	}
}

// BuildRecord returns the workbook row for this order.
func (o *OrderBuilder) BuildRecord() map[string]string {
	return map[string]string{
		order.ColumnOrderNumber:  o.Number,
		order.ColumnPickupStatus: o.PickupStatus,
		order.ColumnStorageFee:   o.StorageFeeStart,
		order.ColumnReadyDate:    o.ReadyDate,
	}
}
