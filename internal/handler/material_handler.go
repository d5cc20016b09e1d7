package handler

import (
	"errors"
	"net/http"
	"strconv"

	"lms-backend/internal/middleware"
	"lms-backend/internal/repository"
	"lms-backend/internal/service"
	"lms-backend/internal/storage"
	"lms-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

type MaterialHandler struct {
	materialService *service.MaterialService
}

func NewMaterialHandler(materialService *service.MaterialService) *MaterialHandler {
	return &MaterialHandler{
		materialService: materialService,
	}
}

// Upload stores a multipart file as course material
func (h *MaterialHandler) Upload(c *gin.Context) {
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Missing file in request")
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	material, err := h.materialService.Upload(courseID, file, c.PostForm("description"), principal.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Course not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to upload material")
		return
	}

	utils.CreatedResponse(c, material)
}

// List returns the material records of a course
func (h *MaterialHandler) List(c *gin.Context) {
	courseID, ok := parseCourseID(c)
	if !ok {
		return
	}

	materials, err := h.materialService.GetCourseMaterials(courseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Course not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch materials")
		return
	}

	utils.SuccessResponse(c, gin.H{
		"materials": materials,
		"count":     len(materials),
	})
}

// GetMetadata returns a single material record without its file
func (h *MaterialHandler) GetMetadata(c *gin.Context) {
	courseID, materialID, ok := parseMaterialIDs(c)
	if !ok {
		return
	}

	material, err := h.materialService.GetMaterial(courseID, materialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Material not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch material")
		return
	}

	utils.SuccessResponse(c, material)
}

// Download streams the backing file with a content type derived from its
// extension
func (h *MaterialHandler) Download(c *gin.Context) {
	courseID, materialID, ok := parseMaterialIDs(c)
	if !ok {
		return
	}

	f, material, err := h.materialService.OpenMaterial(courseID, materialID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Material not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to open material")
		return
	}
	defer f.Close()

	stat, err := f.Stat()
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to open material")
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+service.DownloadName(material)+`"`)
	c.DataFromReader(http.StatusOK, stat.Size(), storage.ContentType(material.FilePath), f, nil)
}

// Delete removes a material record and its backing file
func (h *MaterialHandler) Delete(c *gin.Context) {
	courseID, materialID, ok := parseMaterialIDs(c)
	if !ok {
		return
	}

	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	if err := h.materialService.Delete(courseID, materialID, principal.UserID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			utils.ErrorResponse(c, http.StatusNotFound, "Material not found")
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to delete material")
		return
	}

	utils.MessageResponse(c, "Material deleted successfully")
}

func parseCourseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid course ID")
		return 0, false
	}
	return uint(id), true
}

func parseMaterialIDs(c *gin.Context) (uint, uint, bool) {
	courseID, ok := parseCourseID(c)
	if !ok {
		return 0, 0, false
	}

	materialID, err := strconv.ParseUint(c.Param("materialId"), 10, 32)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid material ID")
		return 0, 0, false
	}

	return courseID, uint(materialID), true
}
