package types

type PurchaseStatus string

const (
	PurchaseStatusPending   PurchaseStatus = "PENDING"
	PurchaseStatusCompleted PurchaseStatus = "COMPLETED"
	PurchaseStatusFailed    PurchaseStatus = "FAILED"
	PurchaseStatusRefunded  PurchaseStatus = "REFUNDED"
)

// Grants reports whether a purchase in this status counts toward access.
// Only COMPLETED does.
func (s PurchaseStatus) Grants() bool {
	return s == PurchaseStatusCompleted
}
