package api

import (
	"github.com/gin-gonic/gin"

	"github.com/padhaihub/padhai_go_server/config"
	"github.com/padhaihub/padhai_go_server/internal/api/handler"
	"github.com/padhaihub/padhai_go_server/internal/api/middleware"
)

type Router struct {
	authHandler           *handler.AuthHandler
	mainCategoryHandler   *handler.MainCategoryHandler
	streamHandler         *handler.StreamHandler
	subjectHandler        *handler.SubjectHandler
	subCategoryHandler    *handler.SubCategoryHandler
	contentHandler        *handler.ContentHandler
	packageHandler        *handler.PackageHandler
	studentContentHandler *handler.StudentContentHandler
	purchaseHandler       *handler.PurchaseHandler
	uploadHandler         *handler.UploadHandler
	cfg                   *config.Config
}

func NewRouter(
	authHandler *handler.AuthHandler,
	mainCategoryHandler *handler.MainCategoryHandler,
	streamHandler *handler.StreamHandler,
	subjectHandler *handler.SubjectHandler,
	subCategoryHandler *handler.SubCategoryHandler,
	contentHandler *handler.ContentHandler,
	packageHandler *handler.PackageHandler,
	studentContentHandler *handler.StudentContentHandler,
	purchaseHandler *handler.PurchaseHandler,
	uploadHandler *handler.UploadHandler,
	cfg *config.Config,
) *Router {
	return &Router{
		authHandler:           authHandler,
		mainCategoryHandler:   mainCategoryHandler,
		streamHandler:         streamHandler,
		subjectHandler:        subjectHandler,
		subCategoryHandler:    subCategoryHandler,
		contentHandler:        contentHandler,
		packageHandler:        packageHandler,
		studentContentHandler: studentContentHandler,
		purchaseHandler:       purchaseHandler,
		uploadHandler:         uploadHandler,
		cfg:                   cfg,
	}
}

func (r *Router) Setup() *gin.Engine {
	if r.cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middleware.CORS(r.cfg.CORS))

	api := engine.Group("/api")
	{
		// 公开接口 - 认证
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/verify-otp", r.authHandler.VerifyOTP)
			auth.POST("/login", r.authHandler.Login)
		}

		// 公开接口 - 学生端内容浏览
		student := api.Group("/student")
		{
			student.GET("/content", r.studentContentHandler.List)
			student.GET("/content/:slug", r.studentContentHandler.Get)
		}

		// 购买相关（需要认证）
		purchases := api.Group("/purchases")
		purchases.Use(middleware.Auth(r.cfg.JWT.Secret))
		{
			purchases.POST("/create", r.purchaseHandler.Create)
			purchases.GET("/download/:purchaseId", r.purchaseHandler.Download)
			purchases.GET("/:userId", r.purchaseHandler.ListByUser)
		}

		// 管理端（需要管理员权限）
		admin := api.Group("/admin")
		admin.Use(middleware.Auth(r.cfg.JWT.Secret), middleware.AdminOnly())
		{
			// 班级
			admin.POST("/main-category", r.mainCategoryHandler.Create)
			admin.GET("/main-categories", r.mainCategoryHandler.List)
			admin.GET("/main-category/:slug", r.mainCategoryHandler.Get)
			admin.PUT("/main-category/:slug", r.mainCategoryHandler.Update)
			admin.DELETE("/main-category/:slug", r.mainCategoryHandler.Delete)

			// 选科
			admin.POST("/stream", r.streamHandler.Create)
			admin.GET("/streams", r.streamHandler.List)
			admin.GET("/stream/:slug", r.streamHandler.Get)
			admin.PUT("/stream/:slug", r.streamHandler.Update)
			admin.DELETE("/stream/:slug", r.streamHandler.Delete)

			// 学科
			admin.POST("/subject", r.subjectHandler.Create)
			admin.GET("/subjects", r.subjectHandler.List)
			admin.GET("/subject/:slug", r.subjectHandler.Get)
			admin.PUT("/subject/:slug", r.subjectHandler.Update)
			admin.DELETE("/subject/:slug", r.subjectHandler.Delete)

			// 子分类
			admin.POST("/sub-category", r.subCategoryHandler.Create)
			admin.GET("/sub-categories", r.subCategoryHandler.List)
			admin.GET("/sub-category/:slug", r.subCategoryHandler.Get)
			admin.PUT("/sub-category/:slug", r.subCategoryHandler.Update)
			admin.DELETE("/sub-category/:slug", r.subCategoryHandler.Delete)

			// 内容
			admin.POST("/content", r.contentHandler.Create)
			admin.GET("/content", r.contentHandler.List)
			admin.GET("/content/:slug", r.contentHandler.Get)
			admin.PUT("/content/:slug", r.contentHandler.Update)
			admin.DELETE("/content/:slug", r.contentHandler.Delete)

			// 套餐
			admin.POST("/package", r.packageHandler.Create)
			admin.GET("/packages", r.packageHandler.List)
			admin.GET("/package/:slug", r.packageHandler.Get)
			admin.PUT("/package/:slug", r.packageHandler.Update)
			admin.DELETE("/package/:slug", r.packageHandler.Delete)

			// 上传
			admin.POST("/upload/cover", r.uploadHandler.UploadCover)
		}
	}

	return engine
}
