package main

import (
	"fmt"
	"log"
	"time"

	"github.com/padhaihub/padhai_go_server/config"
	"github.com/padhaihub/padhai_go_server/internal/api"
	"github.com/padhaihub/padhai_go_server/internal/api/handler"
	"github.com/padhaihub/padhai_go_server/internal/database"
	"github.com/padhaihub/padhai_go_server/internal/pkg/cache"
	"github.com/padhaihub/padhai_go_server/internal/pkg/oss"
	"github.com/padhaihub/padhai_go_server/internal/repository"
	"github.com/padhaihub/padhai_go_server/internal/service"
)

func main() {
	// 加载配置
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 初始化数据库
	db, err := database.NewMySQL(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect database: %v", err)
	}
	log.Println("Database connected")

	// 初始化 Redis，公开目录缓存用；连不上降级为直查数据库
	var catalogCache *cache.Cache
	rdb, err := database.NewRedis(&cfg.Redis)
	if err != nil {
		log.Printf("Redis unavailable, catalog cache disabled: %v", err)
	} else {
		catalogCache = cache.New(rdb, time.Duration(cfg.Catalog.CacheTTLSeconds)*time.Second)
		log.Println("Redis connected")
	}

	// 初始化 OSS
	ossClient, err := oss.NewClient(&cfg.OSS)
	if err != nil {
		log.Fatalf("Failed to init OSS client: %v", err)
	}

	// 初始化 Repository
	userRepo := repository.NewUserRepository(db)
	mainCategoryRepo := repository.NewMainCategoryRepository(db)
	streamRepo := repository.NewStreamRepository(db)
	subjectRepo := repository.NewSubjectRepository(db)
	subCategoryRepo := repository.NewSubCategoryRepository(db)
	contentRepo := repository.NewContentRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	purchaseRepo := repository.NewPurchaseRepository(db)

	// 初始化 Service
	authService := service.NewAuthService(userRepo, cfg)
	mainCategoryService := service.NewMainCategoryService(mainCategoryRepo)
	streamService := service.NewStreamService(streamRepo, mainCategoryRepo)
	subjectService := service.NewSubjectService(subjectRepo, mainCategoryRepo, streamRepo)
	subCategoryService := service.NewSubCategoryService(subCategoryRepo, subjectRepo)
	contentService := service.NewContentService(contentRepo, mainCategoryRepo, subjectRepo, subCategoryRepo, streamRepo, catalogCache)
	packageService := service.NewPackageService(packageRepo, contentRepo, cfg.Catalog.PackageLimit)
	purchaseService := service.NewPurchaseService(purchaseRepo, contentRepo, userRepo, cfg.Catalog.DefaultDownloadLimit)

	// 初始化 Handler
	authHandler := handler.NewAuthHandler(authService)
	mainCategoryHandler := handler.NewMainCategoryHandler(mainCategoryService)
	streamHandler := handler.NewStreamHandler(streamService)
	subjectHandler := handler.NewSubjectHandler(subjectService)
	subCategoryHandler := handler.NewSubCategoryHandler(subCategoryService)
	contentHandler := handler.NewContentHandler(contentService)
	packageHandler := handler.NewPackageHandler(packageService)
	studentContentHandler := handler.NewStudentContentHandler(contentService)
	purchaseHandler := handler.NewPurchaseHandler(purchaseService)
	uploadHandler := handler.NewUploadHandler(ossClient)

	// 初始化 Router
	router := api.NewRouter(
		authHandler,
		mainCategoryHandler,
		streamHandler,
		subjectHandler,
		subCategoryHandler,
		contentHandler,
		packageHandler,
		studentContentHandler,
		purchaseHandler,
		uploadHandler,
		cfg,
	)
	engine := router.Setup()

	// 启动服务器
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Printf("Server starting on %s", addr)
	if err := engine.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
