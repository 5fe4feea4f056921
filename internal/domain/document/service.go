package document

import (
	"context"
	"io"
)

// DocumentService manages intern document uploads and review.
type DocumentService interface {
	// Upload stores a document file and its Pending record
	Upload(ctx context.Context, req UploadRequest) (Document, error)

	// Review approves or rejects a pending document; staff only
	Review(ctx context.Context, req ReviewRequest) (Document, error)

	// Download streams a stored document; owner or staff only
	Download(ctx context.Context, callerID string, callerIsStaff bool, id string) (Document, io.ReadCloser, error)

	// Delete removes a document and its file; owner only, pending only
	Delete(ctx context.Context, ownerID string, id string) error

	// ListMine lists the caller's documents
	ListMine(ctx context.Context, ownerID string) ([]Document, error)

	// ListPending lists documents awaiting review
	ListPending(ctx context.Context) ([]Document, error)
}
