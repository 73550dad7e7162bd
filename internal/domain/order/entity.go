package order

import "strings"

// Column names of the ready-orders workbook.
const (
	ColumnOrderNumber  = "Ready Order Number"
	ColumnPickupStatus = "Pick up Status"
	ColumnStorageFee   = "Storage Fee Start From"
	ColumnReadyDate    = "Ready Date"
)

const DefaultStatus = "Ready to Pickup"

type Order struct {
	Number          string
	PickupStatus    string
	StorageFeeStart string
	ReadyDate       string
}

func FromRecord(rec map[string]string) Order {
	return Order{
		Number:          strings.TrimSpace(rec[ColumnOrderNumber]),
		PickupStatus:    strings.TrimSpace(rec[ColumnPickupStatus]),
		StorageFeeStart: strings.TrimSpace(rec[ColumnStorageFee]),
		ReadyDate:       strings.TrimSpace(rec[ColumnReadyDate]),
	}
}

func (o Order) IsReady() bool {
	return o.Number != ""
}

// IsFulfilled reports a "fulfilled" pickup status.
func (o Order) IsFulfilled() bool {
	return strings.EqualFold(o.PickupStatus, "fulfilled")
}

// IsPickedUp is true once the storage-fee column reads "picked up" or the order is fulfilled.
func (o Order) IsPickedUp() bool {
	return strings.EqualFold(o.StorageFeeStart, "picked up") || o.IsFulfilled()
}

func (o Order) Status() string {
	if o.PickupStatus == "" {
		return DefaultStatus
	}
	return o.PickupStatus
}

// Catalog is the parsed ready-orders workbook.
type Catalog []Order

func (c Catalog) Find(number string) (Order, bool) {
	number = strings.TrimSpace(number)
	if number == "" {
		return Order{}, false
	}
	for _, o := range c {
		if o.Number == number {
			return o, true
		}
	}
	return Order{}, false
}
