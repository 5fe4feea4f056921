package certificate

import "time"

type CertificateResponse struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	UserName      *string   `json:"user_name,omitempty"`
	SerialNumber  string    `json:"serial_number"`
	IssuedBy      string    `json:"issued_by"`
	IssuerName    *string   `json:"issuer_name,omitempty"`
	IssuedAt      time.Time `json:"issued_at"`
	HoursRendered float64   `json:"hours_rendered"`
}

func ToResponse(c Certificate) CertificateResponse {
	return CertificateResponse{
		ID:            c.ID,
		UserID:        c.UserID,
		UserName:      c.UserName,
		SerialNumber:  c.SerialNumber,
		IssuedBy:      c.IssuedBy,
		IssuerName:    c.IssuerName,
		IssuedAt:      c.IssuedAt,
		HoursRendered: c.HoursRendered,
	}
}
