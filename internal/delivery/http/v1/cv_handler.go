package v1

import (
	"fmt"
	"io"
	"mime"
	"net/http"
	"path/filepath"
	"strconv"

	"skill-extraction-backend/internal/delivery/http/middleware"
	"skill-extraction-backend/internal/delivery/http/response"
	"skill-extraction-backend/internal/domain"
	"skill-extraction-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

// maxUploadBytes caps multipart uploads; multi-page CVs fit comfortably.
const maxUploadBytes = 10 << 20 // 10 MB

type CvHandler struct {
	cvUC domain.CvUsecase
}

func NewCvHandler(protected *gin.RouterGroup, cvUC domain.CvUsecase) {
	handler := &CvHandler{cvUC: cvUC}

	cv := protected.Group("/cv")
	{
		cv.POST("/upload", handler.Upload)
		cv.GET("/history", handler.History)
		cv.GET("/:id", handler.GetByID)
		cv.GET("/:id/download", handler.Download)
		cv.DELETE("/:id", handler.Delete)
	}
}

// Upload godoc
// @Summary      Upload and analyze a CV
// @Description  Accepts a PDF or image, stores it, and extracts a summary plus skill list via the analysis model
// @Tags         cv
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "CV file (.pdf, .png, .jpg, .jpeg)"
// @Success      200  {object}  response.Response{data=domain.CvUpload}
// @Failure      400  {object}  response.Response
// @Failure      500  {object}  response.Response
// @Router       /cv/upload [post]
// @Security     BearerAuth
func (h *CvHandler) Upload(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		c.Error(apperror.BadRequest("No file uploaded"))
		return
	}
	if file.Size == 0 {
		c.Error(apperror.BadRequest("File is empty"))
		return
	}
	if file.Size > maxUploadBytes {
		c.Error(apperror.BadRequest("File exceeds the 10 MB upload limit"))
		return
	}

	src, err := file.Open()
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		c.Error(apperror.Internal(err))
		return
	}

	upload, err := h.cvUC.Upload(c.Request.Context(), userID, file.Filename, data)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV analyzed", upload)
}

// History godoc
// @Summary      Upload history
// @Description  Lists the caller's analyzed CVs, newest first
// @Tags         cv
// @Produce      json
// @Param        limit  query  int  false  "Max records (default 10)"
// @Success      200  {object}  response.Response{data=[]domain.CvUpload}
// @Failure      401  {object}  response.Response
// @Router       /cv/history [get]
// @Security     BearerAuth
func (h *CvHandler) History(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	uploads, err := h.cvUC.History(c.Request.Context(), userID, limit)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "Upload history", gin.H{"uploads": uploads})
}

// GetByID godoc
// @Summary      Upload details
// @Description  Fetches one analyzed CV owned by the caller
// @Tags         cv
// @Produce      json
// @Param        id  path  int  true  "Upload ID"
// @Success      200  {object}  response.Response{data=domain.CvUpload}
// @Failure      404  {object}  response.Response
// @Router       /cv/{id} [get]
// @Security     BearerAuth
func (h *CvHandler) GetByID(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("CV not found"))
		return
	}

	upload, err := h.cvUC.GetByID(c.Request.Context(), id, userID)
	if err != nil {
		c.Error(err)
		return
	}

	response.Success(c, http.StatusOK, "CV details", upload)
}

// Download godoc
// @Summary      Download the original file
// @Description  Streams the stored document back to its owner under the original filename
// @Tags         cv
// @Produce      application/octet-stream
// @Param        id  path  int  true  "Upload ID"
// @Success      200  {file}  file
// @Failure      404  {object}  response.Response
// @Router       /cv/{id}/download [get]
// @Security     BearerAuth
func (h *CvHandler) Download(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("CV not found"))
		return
	}

	upload, data, err := h.cvUC.Download(c.Request.Context(), id, userID)
	if err != nil {
		c.Error(err)
		return
	}

	contentType := mime.TypeByExtension(filepath.Ext(upload.FileName))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, upload.FileName))
	c.Data(http.StatusOK, contentType, data)
}

// Delete godoc
// @Summary      Delete an upload
// @Description  Removes the record and its stored file
// @Tags         cv
// @Param        id  path  int  true  "Upload ID"
// @Success      204  "No Content"
// @Failure      404  {object}  response.Response
// @Router       /cv/{id} [delete]
// @Security     BearerAuth
func (h *CvHandler) Delete(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.Error(apperror.Unauthorized("Not authenticated"))
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.Error(apperror.NotFound("CV not found"))
		return
	}

	if err := h.cvUC.Delete(c.Request.Context(), id, userID); err != nil {
		c.Error(err)
		return
	}

	c.Status(http.StatusNoContent)
}
