package dto

// RegisterRequest 用户注册
type RegisterRequest struct {
	Name       string `json:"name" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required,len=10,numeric"`
	Password   string `json:"password" binding:"required,min=6"`
	ReferredBy string `json:"referred_by"`
}

// RegisterResponse 注册返回
type RegisterResponse struct {
	UserID       int64  `json:"user_id"`
	ReferralCode string `json:"referral_code"`
}

// VerifyOTPRequest OTP 验证
type VerifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

// LoginRequest 登录
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse 登录返回
type LoginResponse struct {
	Token string    `json:"token"`
	User  *UserInfo `json:"user"`
}

// UserInfo 对外暴露的用户信息
type UserInfo struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Role       string `json:"role"`
	IsVerified bool   `json:"is_verified"`
	Points     int    `json:"points"`
	Status     string `json:"status"`
}
