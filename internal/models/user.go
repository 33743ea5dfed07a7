package models

// 註冊用戶模型
type User struct {
	FullName     string `json:"full_name"`
	Gender       string `json:"gender"`     // M, F or Other
	BirthDate    string `json:"birth_date"` // YYYY-MM-DD
	IDNumber     string `json:"id_number"`  // 1 letter + 9 digits
	PasswordHash string `json:"-"`
	PhoneNumber  string `json:"phone_number"`
	Email        string `json:"email"`
	CreatedAt    string `json:"created_at"`
}
