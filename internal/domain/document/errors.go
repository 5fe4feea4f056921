package document

import "errors"

var (
	ErrDocumentNotFound    = errors.New("document not found")
	ErrInvalidDocumentKind = errors.New("invalid document kind")
	ErrInvalidFile         = errors.New("invalid document file")
	ErrNotOwner            = errors.New("document belongs to another user")
	ErrAlreadyReviewed     = errors.New("document has already been reviewed")
)
