package model

// DisplayStatus is the customer-facing status derived from the order
// status plus the per-item breakdown. It is never stored.
type DisplayStatus string

const (
	DisplayPartiallyCancelled      DisplayStatus = "partially_cancelled"
	DisplayPartiallyReturned       DisplayStatus = "partially_returned"
	DisplayMixedCancellationReturn DisplayStatus = "mixed"
)

// ItemStatusCounts is the item breakdown DeriveDisplayStatus works from.
type ItemStatusCounts struct {
	Active    int
	Cancelled int
	Returned  int
}

// CountItemStatuses tallies a slice of items.
func CountItemStatuses(items []OrderItem) ItemStatusCounts {
	var c ItemStatusCounts
	for _, item := range items {
		switch item.Status {
		case ItemStatusCancelled:
			c.Cancelled++
		case ItemStatusReturned:
			c.Returned++
		default:
			c.Active++
		}
	}
	return c
}

// DeriveDisplayStatus maps an order's stored status and its item counts
// to what the customer sees. A partially affected order keeps its stored
// status internally but is labelled by what happened to its items.
func DeriveDisplayStatus(status OrderStatus, counts ItemStatusCounts) DisplayStatus {
	// Terminal order states speak for themselves.
	if status == OrderStatusCancelled || status == OrderStatusReturned || status == OrderStatusRefunded {
		return DisplayStatus(status)
	}

	if counts.Active > 0 {
		switch {
		case counts.Cancelled > 0 && counts.Returned > 0:
			return DisplayMixedCancellationReturn
		case counts.Cancelled > 0:
			return DisplayPartiallyCancelled
		case counts.Returned > 0:
			return DisplayPartiallyReturned
		}
		return DisplayStatus(status)
	}

	// No active items left: the order collapses to whichever terminal
	// outcome its items share, or mixed when they differ.
	switch {
	case counts.Cancelled > 0 && counts.Returned > 0:
		return DisplayMixedCancellationReturn
	case counts.Returned > 0:
		return DisplayStatus(OrderStatusReturned)
	case counts.Cancelled > 0:
		return DisplayStatus(OrderStatusCancelled)
	}

	return DisplayStatus(status)
}
