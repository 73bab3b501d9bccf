package routes

import (
	"context"
	"fmt"

	"condo-maintenance-backend/internal/access"
	"condo-maintenance-backend/internal/api/handlers"
	"condo-maintenance-backend/internal/api/middleware"
	"condo-maintenance-backend/internal/auth"
	"condo-maintenance-backend/internal/cache"
	"condo-maintenance-backend/internal/config"
	"condo-maintenance-backend/internal/database/models"
	"condo-maintenance-backend/internal/events"
	"condo-maintenance-backend/internal/logger"
	"condo-maintenance-backend/internal/repository"
	"condo-maintenance-backend/internal/service"
	"condo-maintenance-backend/internal/storage"
	"condo-maintenance-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Infrastructure holds the long-lived clients the server owns and closes
type Infrastructure struct {
	Cache  *cache.QueryCache
	Events events.Publisher
	Bucket storage.Bucket
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, infra Infrastructure) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	if infra.Cache == nil {
		infra.Cache = cache.New(cfg.CacheSize, cfg.CacheTTL)
	}
	if infra.Events == nil {
		infra.Events = events.NoopPublisher{}
	}
	if infra.Bucket == nil {
		bucket, err := storage.NewLocalBucket(cfg.StorageDir)
		if err != nil {
			return nil, fmt.Errorf("attachment storage: %w", err)
		}
		infra.Bucket = bucket
	}

	validate := validator.New()

	// Repositories
	userRepo := repository.NewUserRepository(db)
	condominiumRepo := repository.NewCondominiumRepository(db)
	linkRepo := repository.NewCondominiumLinkRepository(db)
	selectionRepo := repository.NewTenantSelectionRepository(db)
	assetRepo := repository.NewAssetRepository(db)
	planRepo := repository.NewMaintenancePlanRepository(db)
	conformityRepo := repository.NewConformityItemRepository(db)
	templateRepo := repository.NewChecklistTemplateRepository(db)
	ticketRepo := repository.NewTicketRepository(db)
	workOrderRepo := repository.NewWorkOrderRepository(db)
	attachmentRepo := repository.NewAttachmentRepository(db)

	// Tenant context
	manager := tenant.NewManager(&tenant.Source{
		Profiles:     userRepo,
		Links:        linkRepo,
		Condominiums: condominiumRepo,
		Selections:   selectionRepo,
	})
	queryCache := infra.Cache
	manager.OnSwitch(func(ctx context.Context, userID, condominiumID uuid.UUID) {
		n := queryCache.InvalidateTenant(condominiumID)
		logger.WithContext(ctx).WithField("evicted", n).Debug("Cache refreshed after tenant switch")
	})

	// Session
	authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), userRepo, auth.NewArgon2Hasher(nil))
	if err != nil {
		return nil, fmt.Errorf("auth service: %w", err)
	}
	authService.OnLogout(manager.Forget)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	guard := access.NewGuard(access.NewResolver(userRepo, linkRepo))

	// Services
	deps := service.Deps{Validator: validate, Cache: queryCache, Events: infra.Events}
	workOrderService := service.NewWorkOrderService(workOrderRepo, ticketRepo, assetRepo, planRepo, deps)
	condominiumService := service.NewCondominiumService(condominiumRepo, userRepo, linkRepo, manager, deps)
	membershipService := service.NewMembershipService(userRepo, linkRepo, manager, deps)
	assetService := service.NewAssetService(assetRepo, deps)
	planService := service.NewMaintenancePlanService(planRepo, assetRepo, deps)
	conformityService := service.NewConformityService(conformityRepo, templateRepo, assetRepo, deps)
	templateService := service.NewChecklistTemplateService(templateRepo, deps)
	ticketService := service.NewTicketService(ticketRepo, workOrderRepo, assetRepo, workOrderService, deps)
	attachmentService := service.NewAttachmentService(attachmentRepo, infra.Bucket, cfg.MaxUploadBytes, deps)
	dashboardService := service.NewDashboardService(ticketRepo, workOrderRepo, conformityRepo, planRepo, deps)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db)
	healthHandler.Report("cache", func() string { return fmt.Sprintf("%d entries", queryCache.Len()) })
	healthHandler.Report("events", func() string {
		if cfg.EventsEnabled() {
			return "rabbitmq"
		}
		return "disabled"
	})
	tenantHandler := handlers.NewTenantHandler(manager)
	condominiumHandler := handlers.NewCondominiumHandler(condominiumService)
	membershipHandler := handlers.NewMembershipHandler(membershipService)
	assetHandler := handlers.NewAssetHandler(assetService)
	planHandler := handlers.NewMaintenancePlanHandler(planService)
	conformityHandler := handlers.NewConformityHandler(conformityService, templateService)
	ticketHandler := handlers.NewTicketHandler(ticketService)
	workOrderHandler := handlers.NewWorkOrderHandler(workOrderService)
	attachmentHandler := handlers.NewAttachmentHandler(attachmentService, cfg.MaxUploadBytes)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	timeout := middleware.Timeout(cfg.RequestTimeout)

	authRoutes := router.Group("/api/auth", timeout)
	{
		authRoutes.POST("/login", authMiddleware.PublicOnly(), authHandler.Login)
		authRoutes.POST("/register", authMiddleware.PublicOnly(), authHandler.Register)
		authRoutes.POST("/refresh", authHandler.Refresh)
		authRoutes.POST("/logout", authMiddleware.RequireAuth(), authHandler.Logout)
		authRoutes.GET("/session", authMiddleware.RequireAuth(), authHandler.Session)
		authRoutes.POST("/validate", authHandler.ValidateToken)
	}

	v1 := router.Group("/api/v1", authMiddleware.RequireAuth())

	// The state stream is long-lived and stays outside the request timeout.
	v1.GET("/tenant/stream", tenantHandler.Stream)

	session := v1.Group("", timeout)
	{
		session.GET("/me", membershipHandler.GetProfile)
		session.PUT("/me", membershipHandler.UpdateProfile)
		session.GET("/me/vinculos", membershipHandler.MyLinks)
		session.PUT("/me/vinculos/:id/principal", membershipHandler.SetPrincipal)

		session.GET("/tenant", tenantHandler.GetState)
		session.POST("/tenant/refresh", tenantHandler.RefreshState)
		session.POST("/tenant/switch", tenantHandler.Switch)

		session.GET("/condominios", condominiumHandler.ListCondominiums)
		session.POST("/condominios", guard.RequireOwner(), condominiumHandler.CreateCondominium)
		session.DELETE("/condominios/:id", guard.RequireOwner(), condominiumHandler.DeleteCondominium)
	}

	scoped := v1.Group("", timeout, tenant.RequireTenant(manager))

	everyone := guard.RequireRole(models.AllRoles...)
	management := guard.RequireRole(models.ManagementRoles...)
	staff := guard.RequireRole(models.StaffRoles...)
	residents := guard.RequireRole(models.TicketRoles...)
	contractors := guard.RequireRole(models.WorkOrderRoles...)

	scoped.GET("/condominio", everyone, condominiumHandler.GetActive)
	scoped.PUT("/condominio", management, condominiumHandler.UpdateActive)

	members := scoped.Group("/membros", management)
	{
		members.GET("", membershipHandler.ListMembers)
		members.POST("", membershipHandler.AddMember)
		members.PATCH("/:id", membershipHandler.UpdateMemberRole)
		members.DELETE("/:id", membershipHandler.RemoveMember)
	}

	assets := scoped.Group("/ativos")
	{
		assets.GET("", staff, assetHandler.ListAssets)
		assets.GET("/:id", staff, assetHandler.GetAsset)
		assets.POST("", management, assetHandler.CreateAsset)
		assets.PUT("/:id", management, assetHandler.UpdateAsset)
		assets.DELETE("/:id", management, assetHandler.DeleteAsset)
	}

	plans := scoped.Group("/manutencoes")
	{
		plans.GET("", staff, planHandler.ListPlans)
		plans.GET("/:id", staff, planHandler.GetPlan)
		plans.POST("", management, planHandler.CreatePlan)
		plans.PUT("/:id", management, planHandler.UpdatePlan)
		plans.DELETE("/:id", management, planHandler.DeletePlan)
		plans.POST("/:id/execucoes", staff, planHandler.RegisterExecution)
	}

	conformity := scoped.Group("/conformidade")
	{
		conformity.GET("", staff, conformityHandler.ListItems)
		conformity.GET("/:id", staff, conformityHandler.GetItem)
		conformity.POST("", management, conformityHandler.CreateItem)
		conformity.PUT("/:id", management, conformityHandler.UpdateItem)
		conformity.DELETE("/:id", management, conformityHandler.DeleteItem)
		conformity.POST("/:id/execucoes", staff, conformityHandler.RegisterExecution)
	}

	templates := scoped.Group("/templates")
	{
		templates.GET("", staff, conformityHandler.ListTemplates)
		templates.POST("", management, conformityHandler.CreateTemplate)
		templates.DELETE("/:id", management, conformityHandler.DeleteTemplate)
		templates.POST("/:id/instanciar", management, conformityHandler.InstantiateTemplate)
	}

	tickets := scoped.Group("/chamados")
	{
		tickets.GET("", residents, ticketHandler.ListTickets)
		tickets.GET("/:id", residents, ticketHandler.GetTicket)
		tickets.POST("", residents, ticketHandler.OpenTicket)
		tickets.PATCH("/:id/status", staff, ticketHandler.UpdateTicketStatus)
		tickets.POST("/:id/converter", staff, ticketHandler.ConvertTicket)
	}

	orders := scoped.Group("/os")
	{
		orders.GET("", contractors, workOrderHandler.ListWorkOrders)
		orders.GET("/:id", contractors, workOrderHandler.GetWorkOrder)
		orders.POST("", management, workOrderHandler.CreateWorkOrder)
		orders.PUT("/:id", contractors, workOrderHandler.UpdateWorkOrder)
		orders.PATCH("/:id/status", contractors, workOrderHandler.TransitionWorkOrder)
		orders.DELETE("/:id", management, workOrderHandler.DeleteWorkOrder)
	}

	attachments := scoped.Group("/anexos", everyone)
	{
		attachments.GET("", attachmentHandler.ListAttachments)
		attachments.POST("", attachmentHandler.UploadAttachment)
		attachments.GET("/:id", attachmentHandler.DownloadAttachment)
		attachments.DELETE("/:id", attachmentHandler.DeleteAttachment)
	}

	scoped.GET("/dashboard", staff, dashboardHandler.Summary)

	return router, nil
}
