package api

import (
	"github.com/gin-gonic/gin"

	"github.com/vestalumina/vls-api/internal/domain"
	"github.com/vestalumina/vls-api/internal/middleware"
	"github.com/vestalumina/vls-api/pkg/logger"
)

// Services groups the application services the HTTP surface exposes.
type Services struct {
	Auth        AuthService
	Admin       AdminService
	Tenant      TenantService
	Brand       BrandService
	Unit        UnitService
	Device      DeviceService
	ActionLog   ActionLogService
	Translation TranslationService
	LiveFeed    LiveFeed
}

type Server struct {
	auth        *AuthHandler
	admin       *AdminHandler
	tenant      *TenantHandler
	brand       *BrandHandler
	unit        *UnitHandler
	device      *DeviceHandler
	actionLog   *ActionLogHandler
	translation *TranslationHandler
	websocket   *WebSocketHandler
	authMw      *middleware.AuthMiddleware
	rateLimit   *middleware.RateLimitMiddleware
	validation  *middleware.ValidationMiddleware
	version     *middleware.VersionMiddleware
	globalLimit int
	maxBody     int64
}

func NewServer(
	services Services,
	auth *middleware.AuthMiddleware,
	rateLimit *middleware.RateLimitMiddleware,
	validation *middleware.ValidationMiddleware,
	version *middleware.VersionMiddleware,
	globalLimit int,
	maxBody int64,
	logger *logger.Logger,
) *Server {
	return &Server{
		auth:        NewAuthHandler(services.Auth),
		admin:       NewAdminHandler(services.Admin),
		tenant:      NewTenantHandler(services.Tenant),
		brand:       NewBrandHandler(services.Brand),
		unit:        NewUnitHandler(services.Unit),
		device:      NewDeviceHandler(services.Device),
		actionLog:   NewActionLogHandler(services.ActionLog),
		translation: NewTranslationHandler(services.Translation),
		websocket:   NewWebSocketHandler(services.ActionLog, services.LiveFeed, logger),
		authMw:      auth,
		rateLimit:   rateLimit,
		validation:  validation,
		version:     version,
		globalLimit: globalLimit,
		maxBody:     maxBody,
	}
}

// SetupRoutes registers the API on a versioned group such as /api/v2.
func (s *Server) SetupRoutes(api *gin.RouterGroup) {
	api.Use(s.version.Negotiate())

	// Apply security middleware first
	api.Use(s.validation.BlockSuspiciousPatterns())
	api.Use(s.validation.SanitizeInput())
	api.Use(s.validation.ValidateRequestSize(s.maxBody))
	api.Use(s.validation.ValidateContentType("application/json"))

	// Apply global rate limiting
	api.Use(s.rateLimit.GlobalRateLimit(s.globalLimit))

	// Public
	{
		api.POST("/auth/login", s.auth.Login)
		api.POST("/auth/exchange", s.auth.ExchangeToken)
		api.POST("/devices/register", s.device.RegisterDevice)
	}

	// Admin standing is checked by the services, which resolve the principal
	// from the store on every call.
	protected := api.Group("", s.authMw.BearerAuth(), s.rateLimit.PrincipalRateLimit())
	{
		protected.GET("/me", s.admin.Me)

		tenants := protected.Group("/tenants")
		{
			tenants.POST("", s.tenant.CreateTenant)
			tenants.GET("", s.tenant.ListTenants)
			tenants.POST("/link", s.tenant.LinkIdentity)
			tenants.GET("/:id", s.tenant.GetTenant)
			tenants.DELETE("/:id", s.tenant.DeleteTenant)
			tenants.POST("/:id/reset-password", s.tenant.ResetTenantPassword)
			tenants.PUT("/:id/status", s.tenant.ToggleTenantStatus)
		}

		admins := protected.Group("/admins")
		{
			admins.POST("", s.admin.AddAdmin)
			admins.GET("", s.admin.ListAdmins)
			admins.DELETE("/:email", s.admin.RemoveAdmin)
		}

		brands := protected.Group("/brands")
		{
			brands.POST("", s.brand.CreateBrand)
			brands.GET("", s.brand.ListBrands)
		}

		units := protected.Group("/units", s.authMw.RequireRole(domain.RoleOwner))
		{
			units.POST("", s.unit.CreateUnit)
			units.GET("", s.unit.ListUnits)
		}

		protected.POST("/devices/heartbeat", s.authMw.RequireRole(domain.RoleDevice), s.device.Heartbeat)
		protected.GET("/devices", s.device.ListDevices)

		versions := protected.Group("/app-versions")
		{
			versions.POST("", s.device.CreateAppVersion)
			versions.GET("", s.device.ListAppVersions)
			versions.POST("/:id/distribute", s.device.DistributeUpdate)
		}

		logs := protected.Group("/action-log")
		{
			logs.GET("", s.actionLog.ListActionLog)
			logs.GET("/stream", s.websocket.HandleWebSocket)
		}

		translations := protected.Group("/translations")
		{
			translations.POST("/house-rules", s.translation.TranslateHouseRules)
			translations.POST("/notification", s.translation.TranslateNotification)
		}
	}
}

// StartWebSocketHub starts relaying live action log entries to stream clients.
func (s *Server) StartWebSocketHub() {
	go s.websocket.Start()
}

func (s *Server) StopWebSocketHub() {
	s.websocket.Stop()
}
