package file

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/gif" // Import for GIF decoding support
	"image/jpeg"
	_ "image/png" // Import for PNG decoding support
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/Azuronin/YMCA-Internship-Management-System/internal/pkg/storage"
	"github.com/google/uuid"
	"golang.org/x/image/draw"
)

type FileService interface {
	// Profile image uploads
	UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error)

	// Attendance proof uploads (multipart file)
	UploadAttendanceProof(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error)

	// Attendance proof from an in-browser camera capture (base64 data URL)
	UploadAttendanceCapture(ctx context.Context, userID string, date time.Time, dataURL string) (string, error)

	// Document uploads
	UploadDocument(ctx context.Context, userID string, file io.Reader, filename string, kind string) (string, error)

	// Generic operations
	Download(ctx context.Context, path string) (io.ReadCloser, error)
	DeleteFile(ctx context.Context, path string) error
	GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error)
}

type fileServiceImpl struct {
	storage storage.FileStorage
}

func NewFileService(storage storage.FileStorage) FileService {
	return &fileServiceImpl{
		storage: storage,
	}
}

// UploadProfileImage uploads a user's profile photo
func (s *fileServiceImpl) UploadProfileImage(ctx context.Context, userID string, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	allowedExts := []string{".jpg", ".jpeg", ".png"}

	isValid := false
	for _, allowed := range allowedExts {
		if ext == allowed {
			isValid = true
			break
		}
	}

	if !isValid {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png allowed")
	}

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", userID, uniqueID, ext)
	path := filepath.Join("profiles", userID, newFilename)

	contentType := "image/jpeg"
	if ext == ".png" {
		contentType = "image/png"
	}

	uploadedPath, err := s.storage.Upload(ctx, file, path, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to upload profile image: %w", err)
	}

	return uploadedPath, nil
}

// UploadAttendanceProof uploads a clock-in proof photo.
// Compresses image to target size between 50KB - 150KB
func (s *fileServiceImpl) UploadAttendanceProof(ctx context.Context, userID string, date time.Time, file io.Reader, filename string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	if ext != ".jpg" && ext != ".jpeg" && ext != ".png" && ext != ".gif" && ext != ".jfif" {
		return "", fmt.Errorf("invalid file type: only jpg, jpeg, png, gif, jfif allowed")
	}

	buffer, err := io.ReadAll(file)
	if err != nil {
		return "", fmt.Errorf("failed to read image: %w", err)
	}

	return s.storeProof(ctx, userID, date, buffer)
}

// UploadAttendanceCapture stores a camera capture sent as a base64 data URL.
func (s *fileServiceImpl) UploadAttendanceCapture(ctx context.Context, userID string, date time.Time, dataURL string) (string, error) {
	// Expected shape: data:image/<fmt>;base64,<payload>
	idx := strings.Index(dataURL, ",")
	if !strings.HasPrefix(dataURL, "data:image/") || idx < 0 {
		return "", fmt.Errorf("invalid camera capture payload")
	}

	buffer, err := base64.StdEncoding.DecodeString(dataURL[idx+1:])
	if err != nil {
		return "", fmt.Errorf("failed to decode camera capture: %w", err)
	}

	return s.storeProof(ctx, userID, date, buffer)
}

func (s *fileServiceImpl) storeProof(ctx context.Context, userID string, date time.Time, buffer []byte) (string, error) {
	compressed, err := compressImage(buffer, 150*1024, 50*1024)
	if err != nil {
		return "", fmt.Errorf("failed to compress image: %w", err)
	}

	// Path: attendance/{date}/{userID}-{timestamp}.jpg
	// Always output as JPEG after compression for consistency
	dateStr := date.Format("2006-01-02")
	timestamp := time.Now().Unix()
	newFilename := fmt.Sprintf("%s-%d.jpg", userID, timestamp)
	path := filepath.Join("attendance", dateStr, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, bytes.NewReader(compressed), path, "image/jpeg")
	if err != nil {
		return "", fmt.Errorf("failed to upload attendance proof: %w", err)
	}

	return uploadedPath, nil
}

// UploadDocument uploads an intern document
func (s *fileServiceImpl) UploadDocument(ctx context.Context, userID string, file io.Reader, filename string, kind string) (string, error) {
	ext := strings.ToLower(filepath.Ext(filename))

	uniqueID := uuid.New().String()
	newFilename := fmt.Sprintf("%s-%s%s", kind, uniqueID, ext)
	path := filepath.Join("documents", userID, newFilename)

	uploadedPath, err := s.storage.Upload(ctx, file, path, "application/octet-stream")
	if err != nil {
		return "", fmt.Errorf("failed to upload document: %w", err)
	}

	return uploadedPath, nil
}

// Download streams a stored file
func (s *fileServiceImpl) Download(ctx context.Context, path string) (io.ReadCloser, error) {
	return s.storage.Download(ctx, path)
}

// DeleteFile deletes a file
func (s *fileServiceImpl) DeleteFile(ctx context.Context, path string) error {
	return s.storage.Delete(ctx, path)
}

// GetFileURL generates URL to access file
func (s *fileServiceImpl) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return s.storage.GetURL(ctx, path, expiry)
}

// ==================== HELPER FUNCTIONS ====================

// compressImage compresses an image into the target size range.
// maxSize: maximum allowed size (e.g., 150KB)
// minSize: minimum target size (e.g., 50KB)
func compressImage(buffer []byte, maxSize int, minSize int) ([]byte, error) {
	if len(buffer) <= maxSize && len(buffer) >= minSize {
		return buffer, nil
	}

	img, _, err := image.Decode(bytes.NewReader(buffer))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	// Try compression with decreasing quality first
	quality := 85
	var compressed []byte
	currentImg := img

	for quality >= 50 {
		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, currentImg, &jpeg.Options{Quality: quality}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}

		compressed = buf.Bytes()

		if len(compressed) <= maxSize {
			return compressed, nil
		}

		quality -= 5
	}

	// Quality floor reached and still too large: scale dimensions down
	// until the encoded output fits.
	for len(compressed) > maxSize {
		bounds := currentImg.Bounds()
		width := bounds.Dx() * 3 / 4
		height := bounds.Dy() * 3 / 4
		if width < 320 || height < 240 {
			break
		}

		currentImg = resizeImage(currentImg, width, height)

		buf := new(bytes.Buffer)
		if err := jpeg.Encode(buf, currentImg, &jpeg.Options{Quality: 50}); err != nil {
			return nil, fmt.Errorf("failed to encode JPEG: %w", err)
		}
		compressed = buf.Bytes()
	}

	return compressed, nil
}

// resizeImage scales an image to the given dimensions
func resizeImage(img image.Image, width int, height int) image.Image {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Over, nil)
	return dst
}
