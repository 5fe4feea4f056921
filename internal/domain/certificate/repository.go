package certificate

import "context"

// CertificateRepository defines data access methods for certificates.
type CertificateRepository interface {
	// Create inserts a certificate
	Create(ctx context.Context, c Certificate) (Certificate, error)

	// GetByUserID retrieves a user's certificate
	GetByUserID(ctx context.Context, userID string) (Certificate, error)

	// GetBySerial retrieves a certificate by its serial number
	GetBySerial(ctx context.Context, serial string) (Certificate, error)

	// List retrieves all issued certificates, newest first
	List(ctx context.Context) ([]Certificate, error)
}
