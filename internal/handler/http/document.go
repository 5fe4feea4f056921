package http

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/document"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/middleware"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type DocumentHandler interface {
	Upload(w http.ResponseWriter, r *http.Request)
	Approve(w http.ResponseWriter, r *http.Request)
	Reject(w http.ResponseWriter, r *http.Request)
	Download(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	ListPending(w http.ResponseWriter, r *http.Request)
}

type documentHandlerImpl struct {
	documentService document.DocumentService
}

func NewDocumentHandler(documentService document.DocumentService) DocumentHandler {
	return &documentHandlerImpl{documentService: documentService}
}

// Upload implements DocumentHandler.
func (h *documentHandlerImpl) Upload(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(11 << 20); err != nil {
		slog.Error("Failed to parse multipart form", "error", err)
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	req := document.UploadRequest{
		OwnerID: middleware.CurrentUserID(r),
		Kind:    r.FormValue("kind"),
		Title:   r.FormValue("title"),
	}

	file, fileHeader, err := r.FormFile("file")
	if err != nil {
		if err == http.ErrMissingFile {
			response.BadRequest(w, "Document file is required", nil)
			return
		}
		slog.Error("Failed to get file from form", "error", err)
		response.BadRequest(w, "Invalid file upload", nil)
		return
	}
	defer file.Close()

	req.File = file
	req.FileHeader = fileHeader

	created, err := h.documentService.Upload(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Document uploaded", document.ToResponse(created))
}

func (h *documentHandlerImpl) review(w http.ResponseWriter, r *http.Request, approved bool) {
	var req document.ReviewRequest
	if r.Body != nil && r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}
	req.DocumentID = chi.URLParam(r, "id")
	req.ReviewerID = middleware.CurrentUserID(r)
	req.Approved = approved

	doc, err := h.documentService.Review(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	message := "Document approved"
	if !approved {
		message = "Document rejected"
	}
	response.SuccessWithMessage(w, message, document.ToResponse(doc))
}

// Approve implements DocumentHandler.
func (h *documentHandlerImpl) Approve(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, true)
}

// Reject implements DocumentHandler.
func (h *documentHandlerImpl) Reject(w http.ResponseWriter, r *http.Request) {
	h.review(w, r, false)
}

// Download implements DocumentHandler.
func (h *documentHandlerImpl) Download(w http.ResponseWriter, r *http.Request) {
	doc, reader, err := h.documentService.Download(
		r.Context(),
		middleware.CurrentUserID(r),
		middleware.IsStaffRole(middleware.CurrentRole(r)),
		chi.URLParam(r, "id"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Type", "application/octet-stream")
	w.Header().Set("Content-Disposition", `attachment; filename="`+doc.Title+`"`)
	if _, err := io.Copy(w, reader); err != nil {
		slog.Error("Failed to stream document", "document_id", doc.ID, "error", err)
	}
}

// Delete implements DocumentHandler.
func (h *documentHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	err := h.documentService.Delete(r.Context(), middleware.CurrentUserID(r), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Document deleted", nil)
}

// ListMine implements DocumentHandler.
func (h *documentHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListMine(r.Context(), middleware.CurrentUserID(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, document.ToResponse(doc))
	}

	response.Success(w, responses)
}

// ListPending implements DocumentHandler.
func (h *documentHandlerImpl) ListPending(w http.ResponseWriter, r *http.Request) {
	docs, err := h.documentService.ListPending(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	responses := make([]document.DocumentResponse, 0, len(docs))
	for _, doc := range docs {
		responses = append(responses, document.ToResponse(doc))
	}

	response.Success(w, responses)
}
