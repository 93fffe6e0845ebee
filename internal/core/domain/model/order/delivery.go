package order

import "time"

// Delivery holds the routing details mirrored from the delivery platform.
// The fulfillment service never owns this data: it is refreshed by the
// delivery sync job and attached to the order read-only.
type Delivery struct {
	TripID         string
	StopID         string
	DriverMemberID string
	DriverName     string
	StopSequence   int
	ETA            *time.Time
}

// Photo is an evidence photo taken at packing, stored in object storage.
// StorageID is the storage key used for deletion; URL is the public link.
type Photo struct {
	URL       string
	StorageID string
}
