package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"roadside-marketplace/internal/domain/user"
	"roadside-marketplace/internal/handler/api"
	"roadside-marketplace/internal/handler/middleware"
	"roadside-marketplace/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Request *api.RequestHandler
	Partner *api.PartnerHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, log *slog.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, log)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, log *slog.Logger) {
	// outermost, so panics in any later middleware are caught
	engine.Use(middleware.CustomRecovery(log))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, log))
	engine.Use(middleware.RequestLogger(log))
	engine.Use(middleware.ErrorHandler(log))
	engine.Use(middleware.Timeout(cfg.Server.RequestTimeout))
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	customer := authMiddleware.RequireRole(user.RoleCustomer, user.RoleAdmin)
	partner := authMiddleware.RequireRole(user.RolePartner)
	assignee := authMiddleware.RequireRole(user.RolePartner, user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/login", Handler: h.Auth.Login},
				{Method: http.MethodPost, Path: "/logout", Handler: h.Auth.Logout},
			})

			authRequired := auth.Group("")
			authRequired.Use(authMiddleware.RequireAuth())
			addRoutes(authRequired, []route{
				{Method: http.MethodGet, Path: "/me", Handler: h.Auth.Me},
			})
		}

		requests := apiGroup.Group("/requests")
		requests.Use(authMiddleware.RequireAuth())
		{
			addRoutes(requests, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Request.Create, Mw: []gin.HandlerFunc{authMiddleware.RequireRole(user.RoleCustomer)}},
				{Method: http.MethodGet, Path: "", Handler: h.Request.ListOpen},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Request.Get},
				{Method: http.MethodGet, Path: "/:id/offers", Handler: h.Request.ListOffers},
				{Method: http.MethodPost, Path: "/:id/offers", Handler: h.Request.SubmitOffer, Mw: []gin.HandlerFunc{partner}},
				{Method: http.MethodPost, Path: "/:id/start", Handler: h.Request.Start, Mw: []gin.HandlerFunc{assignee}},
				{Method: http.MethodPost, Path: "/:id/complete", Handler: h.Request.Complete, Mw: []gin.HandlerFunc{assignee}},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: h.Request.Cancel, Mw: []gin.HandlerFunc{customer}},
			})
		}

		offers := apiGroup.Group("/offers")
		offers.Use(authMiddleware.RequireAuth(), customer)
		{
			addRoutes(offers, []route{
				{Method: http.MethodPost, Path: "/:id/accept", Handler: h.Request.AcceptOffer},
			})
		}

		partners := apiGroup.Group("/partners/me")
		partners.Use(authMiddleware.RequireAuth(), partner)
		{
			addRoutes(partners, []route{
				{Method: http.MethodGet, Path: "/balance", Handler: h.Partner.Balance},
				{Method: http.MethodGet, Path: "/transactions", Handler: h.Partner.Transactions},
				{Method: http.MethodPost, Path: "/withdrawals", Handler: h.Partner.Withdraw},
				{Method: http.MethodGet, Path: "/leads", Handler: h.Partner.ListLeads},
			})
		}

		leads := apiGroup.Group("/leads")
		leads.Use(authMiddleware.RequireAuth())
		{
			addRoutes(leads, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Partner.RequestLead, Mw: []gin.HandlerFunc{partner}},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Partner.GetLead, Mw: []gin.HandlerFunc{assignee}},
			})
		}

		areas := apiGroup.Group("/areas")
		areas.Use(authMiddleware.RequireAuth(), partner)
		{
			addRoutes(areas, []route{
				{Method: http.MethodPost, Path: "", Handler: h.Partner.RequestAreas},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(authMiddleware.RequireAuth(), authMiddleware.RequireRole(user.RoleAdmin))
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/leads", Handler: h.Admin.ListPendingLeads},
				{Method: http.MethodPost, Path: "/leads/:id/resolve", Handler: h.Admin.ResolveLead},
				{Method: http.MethodGet, Path: "/areas", Handler: h.Admin.ListPendingAreas},
				{Method: http.MethodPost, Path: "/areas/:id/resolve", Handler: h.Admin.ResolveArea},
				{Method: http.MethodPost, Path: "/partners/:id/adjustments", Handler: h.Admin.AdjustCredits},
				{Method: http.MethodGet, Path: "/partners/:id/transactions", Handler: h.Admin.PartnerTransactions},
				{Method: http.MethodGet, Path: "/partners/:id/ledger/verify", Handler: h.Admin.VerifyLedger},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
