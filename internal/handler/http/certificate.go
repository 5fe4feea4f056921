package http

import (
	"net/http"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/certificate"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/middleware"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CertificateHandler interface {
	Issue(w http.ResponseWriter, r *http.Request)
	GetMine(w http.ResponseWriter, r *http.Request)
	Verify(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type certificateHandlerImpl struct {
	certificateService certificate.CertificateService
}

func NewCertificateHandler(certificateService certificate.CertificateService) CertificateHandler {
	return &certificateHandlerImpl{certificateService: certificateService}
}

// Issue implements CertificateHandler.
func (h *certificateHandlerImpl) Issue(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certificateService.Issue(r.Context(), middleware.CurrentUserID(r), chi.URLParam(r, "userID"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Certificate issued", certificate.ToResponse(cert))
}

// GetMine implements CertificateHandler.
func (h *certificateHandlerImpl) GetMine(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certificateService.GetMine(r.Context(), middleware.CurrentUserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, certificate.ToResponse(cert))
}

// Verify implements CertificateHandler.
func (h *certificateHandlerImpl) Verify(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certificateService.Verify(r.Context(), chi.URLParam(r, "serial"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, certificate.ToResponse(cert))
}

// List implements CertificateHandler.
func (h *certificateHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certificateService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]certificate.CertificateResponse, 0, len(certs))
	for _, cert := range certs {
		responses = append(responses, certificate.ToResponse(cert))
	}

	response.Success(w, responses)
}
