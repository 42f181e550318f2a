package domain

import "time"

type Role string

const RoleAdmin Role = "admin"

// User is a back-office account. The exhibit itself is read-only; only
// admins authenticate.
type User struct {
	ID           string    `gorm:"column:id;primaryKey" json:"id"`
	Email        string    `gorm:"column:email;uniqueIndex" json:"email"`
	PasswordHash string    `gorm:"column:password_hash" json:"-"`
	Nom          string    `gorm:"column:nom" json:"nom"`
	Prenom       string    `gorm:"column:prenom" json:"prenom"`
	Telephone    string    `gorm:"column:telephone" json:"telephone"`
	Avatar       *string   `gorm:"column:avatar" json:"avatar"`
	Role         Role      `gorm:"column:role" json:"role"`
	CreatedAt    time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at" json:"updated_at"`
}

func (User) TableName() string { return "users" }
