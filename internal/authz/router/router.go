package router

import (
	"net"
	"net/http"

	"adminguard/internal/authz/config"
	"adminguard/internal/authz/handler"
	"adminguard/internal/authz/model"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

func RegisterRoutes(e *echo.Echo, h *handler.AuthzHandler, cfg *config.Config) {
	e.IPExtractor = ipExtractor(cfg.TrustedProxies)

	origins := cfg.CORSAllowOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: origins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, handler.HeaderCallerID},
	}))

	// Health Check
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")
	v1.Use(handler.RequestIDMiddleware)
	if cfg.RateLimitRPS > 0 {
		v1.Use(rateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))
	}

	// Decision endpoints, open to any authenticated caller
	v1.GET("/admin/access", h.GetAdminAccess)
	v1.POST("/admin/edits/validate", h.PostValidateEdit)
	v1.POST("/admin/actions", h.PostAdminAction)

	audit := v1.Group("/audit", handler.RequireAdmin(h.Service))
	audit.POST("/logs", h.PostAuditLog)
	audit.GET("/logs", h.GetAuditLogs)
}

// ipExtractor records the socket peer unless trusted proxies are configured,
// in which case X-Forwarded-For is walked back to the first untrusted hop.
// Invalid CIDRs are rejected by config.Validate.
func ipExtractor(trusted []string) echo.IPExtractor {
	if len(trusted) == 0 {
		return echo.ExtractIPDirect()
	}
	opts := []echo.TrustOption{
		echo.TrustLoopback(false),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(false),
	}
	for _, cidr := range trusted {
		if _, ipNet, err := net.ParseCIDR(cidr); err == nil {
			opts = append(opts, echo.TrustIPRange(ipNet))
		}
	}
	return echo.ExtractIPFromXFFHeader(opts...)
}

// rateLimiter throttles per caller id, falling back to the client IP for
// anonymous requests.
func rateLimiter(rps float64, burst int) echo.MiddlewareFunc {
	if burst <= 0 {
		burst = int(rps)
		if burst < 1 {
			burst = 1
		}
	}
	store := middleware.NewRateLimiterMemoryStoreWithConfig(middleware.RateLimiterMemoryStoreConfig{
		Rate:  rate.Limit(rps),
		Burst: burst,
	})
	return middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
		Store: store,
		IdentifierExtractor: func(c echo.Context) (string, error) {
			if id := c.Request().Header.Get(handler.HeaderCallerID); id != "" {
				return "user:" + id, nil
			}
			return "ip:" + c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, model.ErrorResponse{
				Error: model.ErrorDetail{Code: "forbidden", Message: err.Error()},
			})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, model.ErrorResponse{
				Error: model.ErrorDetail{
					Code:      "rate_limited",
					Message:   "Too many requests",
					RequestID: c.Response().Header().Get(echo.HeaderXRequestID),
				},
			})
		},
	})
}
