package certificate

import "time"

type Certificate struct {
	ID            string
	UserID        string
	SerialNumber  string
	IssuedBy      string
	IssuedAt      time.Time
	HoursRendered float64
	CreatedAt     time.Time

	// DTO
	UserName   *string
	IssuerName *string
}
