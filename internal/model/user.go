package model

import (
	"time"
)

// 用户角色
const (
	RoleStudent = "student"
	RoleTeacher = "teacher"
	RoleAdmin   = "admin"
)

// 用户状态
const (
	UserStatusActive   = "active"
	UserStatusInactive = "inactive"
	UserStatusBlocked  = "blocked"
)

type User struct {
	ID           int64      `gorm:"primaryKey" json:"id"`
	Name         string     `gorm:"size:100;not null" json:"name"`
	Email        string     `gorm:"size:100;uniqueIndex;not null" json:"email"`
	Phone        string     `gorm:"size:20;uniqueIndex;not null" json:"phone"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Role         string     `gorm:"size:20;default:student" json:"role"`
	IsVerified   bool       `gorm:"default:false" json:"is_verified"`
	OTP          *string    `gorm:"size:10" json:"-"`
	OTPExpiresAt *time.Time `json:"-"`
	ReferralCode *string    `gorm:"size:20;uniqueIndex" json:"referral_code,omitempty"`
	ReferredBy   string     `gorm:"size:20" json:"referred_by,omitempty"`
	Points       int        `gorm:"default:0" json:"points"`
	Status       string     `gorm:"size:20;default:active" json:"status"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

func (User) TableName() string {
	return "users"
}
