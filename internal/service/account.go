package service

import (
	"errors"
	"strings"

	"health_check_project/internal/auth"
	"health_check_project/internal/models"
	"health_check_project/internal/security"
	"health_check_project/internal/storage"
	"health_check_project/internal/validation"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// AccountService owns registration, login and password reset. It is the only
// place passwords are hashed or verified; plaintext never reaches storage or
// the logs.
type AccountService struct {
	store  *storage.Store
	tokens *auth.TokenManager

	// fixedTempPassword pins the reset flow to one temporary password when
	// set via RESET_TEMP_PASSWORD. Random otherwise.
	fixedTempPassword string
}

func NewAccountService(store *storage.Store, tokens *auth.TokenManager, fixedTempPassword string) *AccountService {
	return &AccountService{store: store, tokens: tokens, fixedTempPassword: fixedTempPassword}
}

type RegisterInput struct {
	FullName    string
	Gender      string
	BirthDate   string
	IDNumber    string
	Password    string
	PhoneNumber string
	Email       string
}

func (s *AccountService) Register(input RegisterInput) error {
	if !validation.IDNumber(input.IDNumber) {
		return validation.ErrIDNumberFormat
	}
	if !validation.Password(input.Password) {
		return validation.ErrPasswordLength
	}
	if !validation.Phone(input.PhoneNumber) {
		return validation.ErrPhoneFormat
	}
	if !validation.Email(input.Email) {
		return validation.ErrEmailFormat
	}
	if !validation.FullName(input.FullName) {
		return validation.ErrFullNameLength
	}
	if !validation.Gender(input.Gender) {
		return validation.ErrGenderValue
	}
	if !validation.BirthDate(input.BirthDate) {
		return validation.ErrBirthDateFormat
	}

	exists, err := s.store.IdentifierExists(input.IDNumber)
	if err != nil {
		return err
	}
	if exists {
		return storage.ErrIdentifierExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	return s.store.CreateUser(models.User{
		FullName:     input.FullName,
		Gender:       input.Gender,
		BirthDate:    input.BirthDate,
		IDNumber:     input.IDNumber,
		PasswordHash: string(hashed),
		PhoneNumber:  input.PhoneNumber,
		Email:        input.Email,
	})
}

// Login verifies credentials and returns a signed token for the identifier.
func (s *AccountService) Login(idNumber, password string) (string, error) {
	if !validation.IDNumber(idNumber) {
		return "", validation.ErrIDNumberFormat
	}
	if password == "" || len(password) > 100 {
		return "", validation.ErrPasswordLength
	}

	storedHash, err := s.store.GetUserCredentials(idNumber)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if storedHash == "" || !strings.HasPrefix(storedHash, "$2") {
		logrus.WithField("id_number", idNumber).Error("stored password hash is not bcrypt")
		return "", ErrStoredHash
	}

	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.GenerateToken(idNumber)
}

// ForgotPassword resets the stored hash for an exact (id number, email) match
// and returns the new temporary password exactly once.
func (s *AccountService) ForgotPassword(idNumber, email string) (string, error) {
	if !validation.IDNumber(idNumber) {
		return "", validation.ErrIDNumberFormat
	}
	if !validation.Email(email) {
		return "", validation.ErrEmailFormat
	}

	tempPassword := s.fixedTempPassword
	if tempPassword == "" {
		generated, err := security.TempPassword()
		if err != nil {
			return "", err
		}
		tempPassword = generated
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(tempPassword), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	if err := s.store.ResetPassword(idNumber, email, string(hashed)); err != nil {
		return "", err
	}
	return tempPassword, nil
}
