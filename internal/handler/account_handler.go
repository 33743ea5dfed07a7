package handler

import (
	"net/http"

	"health_check_project/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// Handler carries the injected services for the HTTP surface.
type Handler struct {
	accounts *service.AccountService
	records  *service.RecordService
	analysis *service.AnalysisService
}

func New(accounts *service.AccountService, records *service.RecordService, analysis *service.AnalysisService) *Handler {
	return &Handler{accounts: accounts, records: records, analysis: analysis}
}

// /register 請求 body
type RegisterRequest struct {
	FullName    string `json:"full_name" example:"王小明"`
	Gender      string `json:"gender" example:"M"`
	BirthDate   string `json:"birth_date" example:"1990-05-17"`
	IDNumber    string `json:"id_number" example:"A123456789"`
	Password    string `json:"password" example:"password123"`
	PhoneNumber string `json:"phone_number" example:"0912345678"`
	Email       string `json:"email" example:"user@example.com"`
}

// /login 請求 body
type LoginRequest struct {
	IDNumber string `json:"id_number" example:"A123456789"`
	Password string `json:"password" example:"password123"`
}

// /forgot-password 請求 body
type ForgotPasswordRequest struct {
	IDNumber string `json:"id_number" example:"A123456789"`
	Email    string `json:"email" example:"user@example.com"`
}

type LoginResponse struct {
	Message  string `json:"message" example:"Login successful"`
	IDNumber string `json:"identifier" example:"A123456789"`
	Token    string `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
}

type ForgotPasswordResponse struct {
	Message      string `json:"message" example:"Password has been reset, log in with the temporary password and change it"`
	TempPassword string `json:"temp_password" example:"xK3mP9qRst"`
}

// Register godoc
// @Summary      Register a new user
// @Description  Creates a user account after validating every field.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request body handler.RegisterRequest true "registration data"
// @Success      200 {object} handler.SuccessResponse
// @Failure      400 {object} handler.ErrorResponse "validation failure or duplicate id number"
// @Failure      500 {object} handler.ErrorResponse
// @Router       /register [post]
func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	logrus.WithField("id_number", req.IDNumber).Info("register request received")

	if err := h.accounts.Register(service.RegisterInput{
		FullName:    req.FullName,
		Gender:      req.Gender,
		BirthDate:   req.BirthDate,
		IDNumber:    req.IDNumber,
		Password:    req.Password,
		PhoneNumber: req.PhoneNumber,
		Email:       req.Email,
	}); err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registration successful"})
}

// Login godoc
// @Summary      Log in
// @Description  Verifies credentials and returns the identifier plus a JWT.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request body handler.LoginRequest true "login data"
// @Success      200 {object} handler.LoginResponse
// @Failure      401 {object} handler.ErrorResponse "bad credentials"
// @Failure      500 {object} handler.ErrorResponse "malformed stored hash"
// @Router       /login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	// No password in the log fields, ever.
	logrus.WithField("id_number", req.IDNumber).Info("login request received")

	token, err := h.accounts.Login(req.IDNumber, req.Password)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":    "Login successful",
		"identifier": req.IDNumber,
		"token":      token,
	})
}

// ForgotPassword godoc
// @Summary      Reset a forgotten password
// @Description  Requires an exact id number + email match; answers with a one-time temporary password.
// @Tags         Account
// @Accept       json
// @Produce      json
// @Param        request body handler.ForgotPasswordRequest true "reset data"
// @Success      200 {object} handler.ForgotPasswordResponse
// @Failure      404 {object} handler.ErrorResponse "id number and email do not match"
// @Router       /forgot-password [post]
func (h *Handler) ForgotPassword(c *gin.Context) {
	var req ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
		return
	}

	logrus.WithField("id_number", req.IDNumber).Info("password reset request received")

	tempPassword, err := h.accounts.ForgotPassword(req.IDNumber, req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Password has been reset, log in with the temporary password and change it",
		"temp_password": tempPassword,
	})
}

// Profile godoc
// @Summary      Authenticated profile check
// @Tags         API (Protected)
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} object{message=string,identifier=string}
// @Failure      401 {object} handler.ErrorResponse
// @Router       /api/profile [get]
func (h *Handler) Profile(c *gin.Context) {
	idNumber, _ := c.Get("id_number")
	c.JSON(http.StatusOK, gin.H{"message": "this is a protected profile", "identifier": idNumber})
}
