package router

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/time/rate"

	"github.com/medicore/hospital-api/internal/handler"
	"github.com/medicore/hospital-api/internal/middleware"
	"github.com/medicore/hospital-api/internal/model"
	"github.com/medicore/hospital-api/internal/navigation"
)

type Handler interface {
	RegisterRoutes(*gin.RouterGroup)
}

type Router struct {
	engine        *gin.Engine
	guard         *middleware.Guard
	registry      navigation.Registry
	authH         Handler
	navigationH   Handler
	dashboardH    Handler
	patientH      Handler
	appointmentH  Handler
	pharmacyH     Handler
	laboratoryH   Handler
	staffH        Handler
	financialH    Handler
	notificationH Handler
	h             *handler.Handler
	metrics       *routerMetrics
}

type routerMetrics struct {
	requestDuration *prometheus.HistogramVec
	requestTotal    *prometheus.CounterVec
	errorTotal      *prometheus.CounterVec
}

type Config struct {
	RateLimit     rate.Limit
	RateBurst     int
	MetricsPrefix string
}

func NewRouter(
	guard *middleware.Guard,
	registry navigation.Registry,
	authH Handler,
	navigationH Handler,
	dashboardH Handler,
	patientH Handler,
	appointmentH Handler,
	pharmacyH Handler,
	laboratoryH Handler,
	staffH Handler,
	financialH Handler,
	notificationH Handler,
	h *handler.Handler,
	config Config,
) *Router {
	gin.SetMode(gin.ReleaseMode)

	engine := gin.New()

	r := &Router{
		engine:        engine,
		guard:         guard,
		registry:      registry,
		authH:         authH,
		navigationH:   navigationH,
		dashboardH:    dashboardH,
		patientH:      patientH,
		appointmentH:  appointmentH,
		pharmacyH:     pharmacyH,
		laboratoryH:   laboratoryH,
		staffH:        staffH,
		financialH:    financialH,
		notificationH: notificationH,
		h:             h,
		metrics:       initRouterMetrics(config.MetricsPrefix),
	}

	engine.Use(
		gin.Recovery(),
		middleware.Logger(),
		middleware.ErrorHandler(),
		r.metricsMiddleware(),
		middleware.RequestID(),
	)

	rateLimiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  config.RateLimit,
		Burst: config.RateBurst,
	})
	engine.Use(rateLimiter.RateLimit())

	return r
}

func (r *Router) Setup() {
	api := r.engine.Group("/api/v1")

	api.Use(func(c *gin.Context) {
		c.Header("X-API-Version", "1.0")
		c.Next()
	})

	r.setupHealthCheck(api)
	r.setupPublicRoutes(api)
	r.setupProtectedRoutes(api)
}

func (r *Router) setupHealthCheck(rg *gin.RouterGroup) {
	health := rg.Group("/health")
	{
		health.GET("/live", r.h.LivenessCheck)
		health.GET("/ready", r.h.ReadinessCheck)
		health.GET("/metrics", r.h.MetricsHandler)
	}
}

func (r *Router) setupPublicRoutes(rg *gin.RouterGroup) {
	r.authH.RegisterRoutes(rg)
}

// setupProtectedRoutes wires each application area behind the guard. The
// role set enforced on a group is the same set that controls the area's
// sidebar visibility; both come from the navigation registry.
func (r *Router) setupProtectedRoutes(rg *gin.RouterGroup) {
	// Any authenticated role.
	authenticated := rg.Group("")
	authenticated.Use(r.guard.Protect(nil))
	r.navigationH.RegisterRoutes(authenticated)
	r.notificationH.RegisterRoutes(authenticated)

	r.registerArea(rg, "dashboard", r.dashboardH)
	r.registerArea(rg, "patients", r.patientH)
	r.registerArea(rg, "appointments", r.appointmentH)
	r.registerArea(rg, "pharmacy", r.pharmacyH)
	r.registerArea(rg, "laboratory", r.laboratoryH)
	r.registerArea(rg, "staff", r.staffH)
	r.registerArea(rg, "financial", r.financialH)
}

func (r *Router) registerArea(rg *gin.RouterGroup, navID string, h Handler) {
	group := rg.Group("")
	group.Use(r.guard.Protect(r.requiredRoles(navID)))
	h.RegisterRoutes(group)
}

// requiredRoles resolves an area's role set from the registry. An area
// missing from the registry only requires authentication.
func (r *Router) requiredRoles(navID string) model.RoleSet {
	item, ok := r.registry.Find(navID)
	if !ok {
		return nil
	}
	return model.NewRoleSet(item.Roles...)
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}

func initRouterMetrics(prefix string) *routerMetrics {
	return &routerMetrics{
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: prefix + "_request_duration_seconds",
				Help: "Duration of HTTP requests in seconds",
			},
			[]string{"method", "path", "status"},
		),
		requestTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		errorTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: prefix + "_errors_total",
				Help: "Total number of HTTP errors",
			},
			[]string{"method", "path", "type"},
		),
	}
}

func (r *Router) metricsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()

		c.Next()

		status := fmt.Sprintf("%d", c.Writer.Status())
		duration := time.Since(start).Seconds()

		r.metrics.requestDuration.WithLabelValues(c.Request.Method, path, status).Observe(duration)
		r.metrics.requestTotal.WithLabelValues(c.Request.Method, path, status).Inc()

		if c.Writer.Status() >= 400 {
			r.metrics.errorTotal.WithLabelValues(c.Request.Method, path, "http").Inc()
		}
	}
}
