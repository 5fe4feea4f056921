package certificate

import "context"

// CertificateService issues completion certificates.
type CertificateService interface {
	// Issue creates a certificate for an intern whose rendered hours
	// have reached the target; admin only
	Issue(ctx context.Context, issuerID string, userID string) (Certificate, error)

	// GetMine retrieves the caller's certificate
	GetMine(ctx context.Context, userID string) (Certificate, error)

	// Verify looks a certificate up by serial number
	Verify(ctx context.Context, serial string) (Certificate, error)

	// List retrieves all issued certificates
	List(ctx context.Context) ([]Certificate, error)
}
