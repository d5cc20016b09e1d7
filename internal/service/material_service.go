package service

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"lms-backend/internal/models"
	"lms-backend/internal/repository"
	"lms-backend/internal/storage"

	"github.com/google/uuid"
)

type MaterialService struct {
	materialRepo *repository.MaterialRepository
	courseRepo   *repository.CourseRepository
	auditRepo    *repository.AuditRepository
	store        *storage.LocalStore
}

func NewMaterialService(
	materialRepo *repository.MaterialRepository,
	courseRepo *repository.CourseRepository,
	auditRepo *repository.AuditRepository,
	store *storage.LocalStore,
) *MaterialService {
	return &MaterialService{
		materialRepo: materialRepo,
		courseRepo:   courseRepo,
		auditRepo:    auditRepo,
		store:        store,
	}
}

// Upload stores a course material file and its record. The file is staged
// first, the record committed second and the file renamed into place last, so
// no committed record ever points at a file that was never written.
func (s *MaterialService) Upload(courseID uint, file *multipart.FileHeader, description string, uploaderID uuid.UUID) (*models.CourseMaterial, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, err
	}

	staged, relPath, err := s.store.Stage(file, courseID)
	if err != nil {
		return nil, fmt.Errorf("failed to store file: %w", err)
	}

	title := strings.TrimSuffix(filepath.Base(file.Filename), filepath.Ext(file.Filename))
	material := &models.CourseMaterial{
		Title:       title,
		Description: description,
		FilePath:    relPath,
		CourseID:    courseID,
	}

	if err := s.materialRepo.Create(material); err != nil {
		s.store.Discard(staged)
		return nil, fmt.Errorf("failed to create material record: %w", err)
	}

	if err := s.store.Commit(staged, relPath); err != nil {
		return nil, fmt.Errorf("failed to finalize file: %w", err)
	}

	uploaderIDPtr := &uploaderID
	_ = s.auditRepo.CreateAuditLog(uploaderIDPtr, "material_upload", fmt.Sprintf("Uploaded material %q to course %d", title, courseID))

	return material, nil
}

// GetCourseMaterials lists material records for a course
func (s *MaterialService) GetCourseMaterials(courseID uint) ([]models.CourseMaterial, error) {
	if _, err := s.courseRepo.GetByID(courseID); err != nil {
		return nil, err
	}
	return s.materialRepo.GetByCourseID(courseID)
}

// GetMaterial returns a single material record
func (s *MaterialService) GetMaterial(courseID, materialID uint) (*models.CourseMaterial, error) {
	return s.materialRepo.GetByID(courseID, materialID)
}

// OpenMaterial resolves a material to its backing file and download filename.
// A record whose file has gone missing is reported as not-found and logged as
// a data-integrity signal; no automatic remediation is attempted.
func (s *MaterialService) OpenMaterial(courseID, materialID uint) (*os.File, *models.CourseMaterial, error) {
	material, err := s.materialRepo.GetByID(courseID, materialID)
	if err != nil {
		return nil, nil, err
	}

	f, err := s.store.Open(material.FilePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Material %d of course %d references missing file %s", materialID, courseID, material.FilePath)
			return nil, nil, repository.ErrNotFound
		}
		return nil, nil, fmt.Errorf("failed to open material file: %w", err)
	}

	return f, material, nil
}

// Delete removes a material record and its backing file. The record goes
// first; a file that then fails to delete leaves only a harmless orphan.
func (s *MaterialService) Delete(courseID, materialID uint, callerID uuid.UUID) error {
	material, err := s.materialRepo.GetByID(courseID, materialID)
	if err != nil {
		return err
	}

	if err := s.materialRepo.Delete(courseID, materialID); err != nil {
		return err
	}

	if err := s.store.Remove(material.FilePath); err != nil && !os.IsNotExist(err) {
		log.Printf("Failed to delete material file %s: %v", material.FilePath, err)
	}

	callerIDPtr := &callerID
	_ = s.auditRepo.CreateAuditLog(callerIDPtr, "material_delete", fmt.Sprintf("Deleted material %q from course %d", material.Title, courseID))

	return nil
}

// DownloadName is the filename presented to the client: display title plus
// the stored extension.
func DownloadName(material *models.CourseMaterial) string {
	return material.Title + filepath.Ext(material.FilePath)
}
