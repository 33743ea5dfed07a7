package handler

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// /health-check/other/interact 請求 body
type InteractiveRequest struct {
	Query string `json:"query" example:"血糖偏高需要注意什麼？"`
}

type UploadResponse struct {
	Message       string `json:"message" example:"Health check data uploaded successfully"`
	ExtractedText string `json:"extracted_text"`
}

type AnalysisResponse struct {
	HealthData     string `json:"health_data"`
	AnalysisResult string `json:"analysis_result"`
	SessionToken   string `json:"session_token,omitempty"`
}

type InteractiveResponse struct {
	Response string `json:"response"`
}

// UploadHealthCheck godoc
// @Summary      Upload a health check document
// @Description  Accepts a PDF or Word (.docx) file, extracts its text and upserts the user's record.
// @Tags         HealthCheck
// @Accept       multipart/form-data
// @Produce      json
// @Param        identifier path string true "user id number"
// @Param        file formData file true "PDF or DOCX document"
// @Success      200 {object} handler.UploadResponse
// @Failure      400 {object} handler.ErrorResponse "unsupported format or empty content"
// @Failure      404 {object} handler.ErrorResponse "unknown id number"
// @Router       /health-check/upload/{identifier} [post]
func (h *Handler) UploadHealthCheck(c *gin.Context) {
	idNumber := c.Param("identifier")
	logrus.WithField("id_number", idNumber).Info("health check upload request received")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A 'file' form field is required"})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read uploaded file"})
		return
	}

	contentType := header.Header.Get("Content-Type")
	text, updated, err := h.records.Upload(idNumber, header.Filename, contentType, data)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	message := "Health check data uploaded successfully"
	if updated {
		message = "Health check data updated successfully"
	}
	c.JSON(http.StatusOK, gin.H{"message": message, "extracted_text": text})
}

// GetUserHealthCheck godoc
// @Summary      Retrieve and analyze own health data
// @Description  Returns the formatted latest record together with the model's analysis.
// @Tags         HealthCheck
// @Produce      json
// @Param        identifier path string true "user id number"
// @Success      200 {object} handler.AnalysisResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /health-check/user/{identifier} [get]
func (h *Handler) GetUserHealthCheck(c *gin.Context) {
	idNumber := c.Param("identifier")
	logrus.WithField("id_number", idNumber).Info("health check retrieval request (user role)")

	healthData, result, err := h.analysis.Analyze(c.Request.Context(), idNumber)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"health_data": healthData, "analysis_result": result})
}

// GetOtherHealthCheck godoc
// @Summary      Retrieve and analyze another person's health data
// @Description  Same payload as the user role, plus a session token enabling follow-up questions.
// @Tags         HealthCheck
// @Produce      json
// @Param        identifier path string true "target id number"
// @Success      200 {object} handler.AnalysisResponse
// @Failure      400 {object} handler.ErrorResponse
// @Failure      404 {object} handler.ErrorResponse
// @Router       /health-check/other/{identifier} [get]
func (h *Handler) GetOtherHealthCheck(c *gin.Context) {
	idNumber := c.Param("identifier")
	logrus.WithField("id_number", idNumber).Info("health check retrieval request (other role)")

	healthData, result, sess, err := h.analysis.AnalyzeInteractive(c.Request.Context(), idNumber)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"health_data":     healthData,
		"analysis_result": result,
		"session_token":   sess.Token,
	})
}

// Interact godoc
// @Summary      Ask a follow-up question about retrieved health data
// @Description  Requires the session token issued by the non-owner retrieval, via the X-Session-Token header.
// @Tags         HealthCheck
// @Accept       json
// @Produce      json
// @Param        X-Session-Token header string true "session token from /health-check/other/{identifier}"
// @Param        request body handler.InteractiveRequest true "follow-up question"
// @Success      200 {object} handler.InteractiveResponse
// @Failure      400 {object} handler.ErrorResponse "no session established"
// @Router       /health-check/other/interact [post]
func (h *Handler) Interact(c *gin.Context) {
	var req InteractiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}
	if strings.TrimSpace(req.Query) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A non-empty query is required"})
		return
	}

	token := c.GetHeader("X-Session-Token")
	answer, err := h.analysis.Interact(c.Request.Context(), token, req.Query)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"response": answer})
}
