package models

import (
	"time"

	"golang.org/x/exp/slices"
	"gorm.io/gorm"

	"wine-api/idgen"
	"wine-api/types"
)

type UserRole string

const (
	RoleAdmin   UserRole = "Admin"
	RoleManager UserRole = "Manager"
	RoleStaff   UserRole = "Staff"
)

var userRoles = []UserRole{RoleAdmin, RoleManager, RoleStaff}

func (r UserRole) Valid() bool {
	return slices.Contains(userRoles, r)
}

type User struct {
	ID             types.SnowflakeID `json:"id" gorm:"primaryKey;autoIncrement:false"`
	FirstName      string            `json:"first_name"`
	LastName       string            `json:"last_name"`
	Name           string            `json:"name"`
	Email          string            `json:"email" gorm:"unique;not null"`
	Contact        string            `json:"contact"`
	Role           UserRole          `json:"role" gorm:"not null"`
	HashedPassword string            `json:"-" gorm:"not null"`
	IsActive       bool              `json:"is_active" gorm:"default:true"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == 0 {
		u.ID = types.SnowflakeID(idgen.GenerateID())
	}
	return nil
}
