package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/config"
	"github.com/aniketphatak/jobbot/backend/internal/models"
)

// MaxResumeSize caps uploads at 10 MB.
const MaxResumeSize = 10 << 20

var allowedResumeExtensions = map[string]string{
	".pdf":  "application/pdf",
	".doc":  "application/msword",
	".docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// ResumeService stores resume files in S3 and tracks them in the database.
// Exactly one resume per user is active at a time; the newest upload takes
// the flag.
type ResumeService struct {
	db       *gorm.DB
	s3Config *config.S3Config
}

var _ IResumeService = (*ResumeService)(nil)

func NewResumeService(db *gorm.DB, s3Config *config.S3Config) *ResumeService {
	return &ResumeService{db: db, s3Config: s3Config}
}

// Upload stores the file in S3, records it, and makes it the active resume.
func (s *ResumeService) Upload(ctx context.Context, userID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*models.Resume, error) {
	if header.Size > MaxResumeSize {
		return nil, NewValidationError("resume exceeds the 10MB size limit")
	}
	ext := strings.ToLower(filepath.Ext(header.Filename))
	contentType, ok := allowedResumeExtensions[ext]
	if !ok {
		return nil, NewValidationError("unsupported file type: %s", ext)
	}

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	resumeID := uuid.New()
	key := fmt.Sprintf("resumes/%s/%s%s", userID, resumeID, ext)

	_, err = s.s3Config.Client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.s3Config.BucketName),
		Key:         aws.String(key),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return nil, &ExternalServiceError{Service: "s3", Err: err}
	}

	resume := models.Resume{
		ID:         resumeID,
		UserID:     userID,
		Filename:   header.Filename,
		Size:       header.Size,
		StorageKey: key,
		IsActive:   true,
		UploadedAt: time.Now().UTC(),
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// The new upload becomes the single active resume
		if err := tx.Model(&models.Resume{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Create(&resume).Error
	})
	if err != nil {
		return nil, err
	}

	log.Printf("[ResumeService] Stored resume %s for user %s (%d bytes)", resume.ID, userID, header.Size)
	return &resume, nil
}

// List returns the user's resumes, newest upload first.
func (s *ResumeService) List(ctx context.Context, userID uuid.UUID) ([]*models.Resume, error) {
	var resumes []*models.Resume
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Find(&resumes).Error; err != nil {
		return nil, err
	}
	return resumes, nil
}

// Active returns the active resume: the one flagged active, or the earliest
// upload when no flag is set.
func (s *ResumeService) Active(ctx context.Context, userID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ?", userID, true).
		First(&resume).Error
	if err == nil {
		return &resume, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	err = s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at ASC").
		First(&resume).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &NotFoundError{Entity: "resume"}
	}
	if err != nil {
		return nil, err
	}
	return &resume, nil
}

// Activate flags one resume active and clears the flag from the rest.
func (s *ResumeService) Activate(ctx context.Context, userID, resumeID uuid.UUID) (*models.Resume, error) {
	var resume models.Resume
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", resumeID, userID).
		First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "resume", ID: resumeID.String()}
		}
		return nil, err
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Resume{}).
			Where("user_id = ?", userID).
			Update("is_active", false).Error; err != nil {
			return err
		}
		return tx.Model(&resume).Update("is_active", true).Error
	})
	if err != nil {
		return nil, err
	}

	resume.IsActive = true
	return &resume, nil
}

// Delete removes the record and the stored object. Deleting the active
// resume leaves no resume active.
func (s *ResumeService) Delete(ctx context.Context, userID, resumeID uuid.UUID) error {
	var resume models.Resume
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", resumeID, userID).
		First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &NotFoundError{Entity: "resume", ID: resumeID.String()}
		}
		return err
	}

	if _, err := s.s3Config.Client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.s3Config.BucketName),
		Key:    aws.String(resume.StorageKey),
	}); err != nil {
		// The DB record still goes away; the orphaned object is logged for
		// a cleanup sweep.
		log.Printf("[ResumeService] failed to delete S3 object %s: %v", resume.StorageKey, err)
	}

	return s.db.WithContext(ctx).Delete(&resume).Error
}

// DownloadURL returns a presigned URL for fetching the resume file.
func (s *ResumeService) DownloadURL(ctx context.Context, userID, resumeID uuid.UUID) (string, error) {
	var resume models.Resume
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", resumeID, userID).
		First(&resume).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", &NotFoundError{Entity: "resume", ID: resumeID.String()}
		}
		return "", err
	}
	return s.s3Config.GeneratePresignedURL(ctx, resume.StorageKey, 15*time.Minute)
}
