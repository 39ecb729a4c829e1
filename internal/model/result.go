package model

// InsertAck mirrors the store acknowledgment for a single insert.
type InsertAck struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

// UpdateAck mirrors the store acknowledgment for update-one and update-many.
type UpdateAck struct {
	Acknowledged  bool   `json:"acknowledged"`
	MatchedCount  int64  `json:"matchedCount"`
	ModifiedCount int64  `json:"modifiedCount"`
	UpsertedCount int64  `json:"upsertedCount"`
	UpsertedID    string `json:"upsertedId,omitempty"`
}

// DeleteAck mirrors the store acknowledgment for delete-one and delete-many.
type DeleteAck struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

// CheckoutResult is the composite acknowledgment of a checkout.
type CheckoutResult struct {
	PaymentResult  InsertAck `json:"paymentResult"`
	DeleteResult   DeleteAck `json:"deleteResult"`
	EnrolledResult InsertAck `json:"enrolledResult"`
	UpdatedResult  UpdateAck `json:"updatedResult"`
}

// AdminStats is the summary returned by GET /admin-status.
type AdminStats struct {
	ApprovedClasses int64 `json:"approvedClass"`
	PendingClasses  int64 `json:"pendingClass"`
	Instructors     int64 `json:"instructors"`
	TotalClasses    int64 `json:"totalClasses"`
	TotalEnrolled   int64 `json:"totalEnrolled"`
}
