package certificate

import "errors"

var (
	ErrCertificateNotFound = errors.New("certificate not found")
	ErrHoursIncomplete     = errors.New("required hours have not been completed")
	ErrAlreadyIssued       = errors.New("certificate has already been issued")
)
