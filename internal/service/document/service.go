package document

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/document"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/notification"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/domain/user"
	"github.com/Azuronin/YMCA-Internship-Management-System/internal/service/file"
)

type DocumentServiceImpl struct {
	document.DocumentRepository
	userRepo    user.UserRepository
	fileService file.FileService
	notifier    notification.NotificationService

	now func() time.Time
}

func NewDocumentService(
	repo document.DocumentRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
	notifier notification.NotificationService,
) *DocumentServiceImpl {
	return &DocumentServiceImpl{
		DocumentRepository: repo,
		userRepo:           userRepo,
		fileService:        fileService,
		notifier:           notifier,
		now:                time.Now,
	}
}

// Upload implements document.DocumentService.
func (s *DocumentServiceImpl) Upload(ctx context.Context, req document.UploadRequest) (document.Document, error) {
	if err := req.Validate(); err != nil {
		return document.Document{}, err
	}

	path, err := s.fileService.UploadDocument(ctx, req.OwnerID, req.File, req.FileHeader.Filename, req.Kind)
	if err != nil {
		return document.Document{}, document.ErrInvalidFile
	}

	doc := document.Document{
		OwnerID:  req.OwnerID,
		Kind:     document.DocumentKind(req.Kind),
		Title:    req.Title,
		FilePath: path,
		FileSize: req.FileHeader.Size,
		Status:   document.StatusPending,
	}

	created, err := s.DocumentRepository.Create(ctx, doc)
	if err != nil {
		if delErr := s.fileService.DeleteFile(ctx, path); delErr != nil {
			slog.Warn("failed to remove orphaned document file", "path", path, "error", delErr)
		}
		return document.Document{}, fmt.Errorf("failed to save document: %w", err)
	}

	s.notifyStaff(ctx, req.OwnerID, notification.Notification{
		SenderID: &req.OwnerID,
		Type:     notification.TypeDocumentSubmitted,
		Title:    "Document submitted",
		Message:  fmt.Sprintf("A %s is waiting for review: %s", created.Kind, created.Title),
		Data:     map[string]interface{}{"document_id": created.ID},
	})

	return created, nil
}

// Review implements document.DocumentService.
func (s *DocumentServiceImpl) Review(ctx context.Context, req document.ReviewRequest) (document.Document, error) {
	if err := req.Validate(); err != nil {
		return document.Document{}, err
	}

	doc, err := s.DocumentRepository.GetByID(ctx, req.DocumentID)
	if err != nil {
		return document.Document{}, err
	}
	if doc.Status != document.StatusPending {
		return document.Document{}, document.ErrAlreadyReviewed
	}

	now := s.now()
	if req.Approved {
		doc.Status = document.StatusApproved
	} else {
		doc.Status = document.StatusRejected
	}
	doc.ReviewRemarks = req.Remarks
	doc.ReviewedBy = &req.ReviewerID
	doc.ReviewedAt = &now

	if err := s.DocumentRepository.Update(ctx, doc); err != nil {
		return document.Document{}, fmt.Errorf("failed to save document: %w", err)
	}

	decision := "approved"
	if !req.Approved {
		decision = "rejected"
	}
	if err := s.notifier.Notify(ctx, notification.Notification{
		RecipientID: doc.OwnerID,
		SenderID:    &req.ReviewerID,
		Type:        notification.TypeDocumentReviewed,
		Title:       "Document " + decision,
		Message:     fmt.Sprintf("Your document %q was %s", doc.Title, decision),
		Data:        map[string]interface{}{"document_id": doc.ID},
	}); err != nil {
		slog.Warn("failed to deliver document notification", "document_id", doc.ID, "error", err)
	}

	return doc, nil
}

// Download implements document.DocumentService.
func (s *DocumentServiceImpl) Download(ctx context.Context, callerID string, callerIsStaff bool, id string) (document.Document, io.ReadCloser, error) {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return document.Document{}, nil, err
	}

	if doc.OwnerID != callerID && !callerIsStaff {
		return document.Document{}, nil, document.ErrNotOwner
	}

	reader, err := s.fileService.Download(ctx, doc.FilePath)
	if err != nil {
		return document.Document{}, nil, fmt.Errorf("failed to open document file: %w", err)
	}

	return doc, reader, nil
}

// Delete implements document.DocumentService.
func (s *DocumentServiceImpl) Delete(ctx context.Context, ownerID string, id string) error {
	doc, err := s.DocumentRepository.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if doc.OwnerID != ownerID {
		return document.ErrNotOwner
	}
	if doc.Status != document.StatusPending {
		return document.ErrAlreadyReviewed
	}

	if err := s.DocumentRepository.Delete(ctx, id); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}

	if err := s.fileService.DeleteFile(ctx, doc.FilePath); err != nil {
		slog.Warn("failed to remove deleted document file", "path", doc.FilePath, "error", err)
	}

	return nil
}

// ListMine implements document.DocumentService.
func (s *DocumentServiceImpl) ListMine(ctx context.Context, ownerID string) ([]document.Document, error) {
	return s.DocumentRepository.ListByOwner(ctx, ownerID)
}

func (s *DocumentServiceImpl) notifyStaff(ctx context.Context, fromID string, n notification.Notification) {
	staff, err := s.userRepo.ListStaff(ctx)
	if err != nil {
		slog.Warn("failed to list staff for notification", "error", err)
		return
	}

	ids := make([]string, 0, len(staff))
	for _, member := range staff {
		if member.ID != fromID {
			ids = append(ids, member.ID)
		}
	}
	if len(ids) == 0 {
		return
	}

	if err := s.notifier.NotifyMany(ctx, ids, n); err != nil {
		slog.Warn("failed to deliver staff notifications", "type", n.Type, "error", err)
	}
}
