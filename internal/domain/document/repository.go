package document

import "context"

// DocumentRepository defines data access methods for documents.
type DocumentRepository interface {
	// Create inserts a document record
	Create(ctx context.Context, d Document) (Document, error)

	// GetByID retrieves a document by ID
	GetByID(ctx context.Context, id string) (Document, error)

	// Update persists document mutations
	Update(ctx context.Context, d Document) error

	// Delete removes a document record
	Delete(ctx context.Context, id string) error

	// ListByOwner retrieves a user's documents, newest first
	ListByOwner(ctx context.Context, ownerID string) ([]Document, error)

	// ListPending retrieves documents awaiting review, oldest first
	ListPending(ctx context.Context) ([]Document, error)
}
