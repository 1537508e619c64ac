package model

type User struct {
	ID           int64   `gorm:"column:oid;primaryKey" json:"id"`
	Username     string  `gorm:"column:user_name;size:100" json:"username"`
	PasswordHash string  `gorm:"column:user_password;size:100" json:"-"`
	FullName     string  `gorm:"column:user_full_name;size:200" json:"full_name"`
	SSN          *int64  `gorm:"column:user_ssn" json:"ssn"`
	Active       bool    `gorm:"column:user_active" json:"active"`
	ReadOnly     bool    `gorm:"column:read_only" json:"read_only"`
}

func (User) TableName() string { return "users" }

// Principal is the request-scoped caller identity extracted from the access
// token. It is passed explicitly into every service call that needs it.
type Principal struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"full_name"`
	Active   bool   `json:"active"`
	ReadOnly bool   `json:"read_only"`
}
