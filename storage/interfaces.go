package storage

import (
	"context"

	"github.com/soniclabs/callscribe/core"
)

// CallRepository provides operations for managing call records.
// Implementations must be thread-safe and support concurrent access.
type CallRepository interface {
	// CreateCall persists a new call record.
	// Generates a record ID if one is not set, and populates the
	// UploadedAt and UpdatedAt timestamps.
	// The record must have Insights == nil; insights are attached later
	// through UpdateCallInsights.
	// Returns the record with ID and timestamps populated.
	CreateCall(ctx context.Context, record *core.CallRecord) (*core.CallRecord, error)

	// UpdateCallInsights attaches insights to an existing record and
	// refreshes its UpdatedAt timestamp. No other field is modified.
	// Returns ErrNotFound if the record doesn't exist.
	// Returns ErrInsightsAlreadySet if the record already has insights.
	UpdateCallInsights(ctx context.Context, id string, insights *core.Insights) (*core.CallRecord, error)

	// GetCall retrieves a single call record by ID.
	// Returns ErrNotFound if the record doesn't exist.
	GetCall(ctx context.Context, id string) (*core.CallRecord, error)

	// ListCalls retrieves stored call records ordered by upload time
	// descending (most recent first). A limit <= 0 returns all records.
	ListCalls(ctx context.Context, limit int) ([]*core.CallRecord, error)

	// Close closes the repository and releases resources.
	Close() error
}
