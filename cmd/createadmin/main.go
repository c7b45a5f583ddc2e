package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/padhaihub/padhai_go_server/config"
	"github.com/padhaihub/padhai_go_server/internal/database"
	"github.com/padhaihub/padhai_go_server/internal/model"
)

var (
	name     = flag.String("name", "Admin", "Admin display name")
	email    = flag.String("email", "", "Admin email (required)")
	phone    = flag.String("phone", "", "Admin phone (required)")
	password = flag.String("password", "", "Admin password (required)")
)

func main() {
	flag.Parse()

	if *email == "" || *phone == "" || *password == "" {
		flag.Usage()
		os.Exit(1)
	}

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// 幂等：同邮箱已存在则只提升角色，不重置密码
	var existing model.User
	err = db.Where("email = ?", *email).First(&existing).Error
	if err == nil {
		if existing.Role == model.RoleAdmin {
			log.Printf("Admin %s already exists (id=%d)", *email, existing.ID)
			return
		}
		err = db.Model(&existing).Update("role", model.RoleAdmin).Error
		if err != nil {
			log.Fatalf("Failed to promote user: %v", err)
		}
		log.Printf("Promoted %s to admin (id=%d)", *email, existing.ID)
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		log.Fatalf("Failed to query user: %v", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}

	admin := &model.User{
		Name:         *name,
		Email:        *email,
		Phone:        *phone,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
		IsVerified:   true,
		Status:       model.UserStatusActive,
	}
	if err := db.Create(admin).Error; err != nil {
		log.Fatalf("Failed to create admin: %v", err)
	}

	log.Printf("Admin created: %s (id=%d)", admin.Email, admin.ID)
}
