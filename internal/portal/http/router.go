package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/yklabs/portal/internal/portal/service"
	"github.com/yklabs/portal/pkg/httpx"
	"github.com/yklabs/portal/pkg/jwtx"
	"github.com/yklabs/portal/pkg/metricsx"
	"github.com/yklabs/portal/pkg/slogx"

	_ "github.com/yklabs/portal/api/portal" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	logger       *slog.Logger
	metrics      *metricsx.Collector
	gatherer     prometheus.Gatherer

	AuthService   *service.AuthService
	UserService   *service.UserService
	CourseService *service.CourseService
	TicketService *service.TicketService
	StatsService  *service.StatsService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	metrics *metricsx.Collector,
	gatherer prometheus.Gatherer,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		metrics:      metrics,
		gatherer:     gatherer,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		r.metrics.HTTPMiddleware,
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerUsers()
	r.registerCourses()
	r.registerTickets()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Learning Portal API
//	@version		0.1.0
//	@description	Minimal learning-management service: registration, login, course enrollment, support tickets and aggregate statistics.
//	@description
//	@description				Tokens are HS256-signed JWTs presented as bearer credentials.
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:3000
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	r.Mux.Handle("POST /api/register", &RegisterHandler{
		AuthService: r.AuthService,
		Metrics:     r.metrics,
	})
	r.Mux.Handle("POST /api/login", &LoginHandler{
		AuthService: r.AuthService,
		Metrics:     r.metrics,
	})
}

func (r *Router) registerUsers() {
	profile := &ProfileHandler{UserService: r.UserService}

	r.Mux.Handle("GET /api/profile",
		httpx.Chain(profile,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerCourses() {
	r.Mux.Handle("GET /api/courses", &CoursesHandler{CourseService: r.CourseService})

	enroll := &EnrollHandler{
		CourseService: r.CourseService,
		Metrics:       r.metrics,
	}
	r.Mux.Handle("POST /api/courses/{id}/enroll",
		httpx.Chain(enroll,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerTickets() {
	tickets := &TicketsHandler{
		TicketService: r.TicketService,
		Metrics:       r.metrics,
	}
	r.Mux.Handle("POST /api/tickets",
		httpx.Chain(tickets,
			httpx.AuthnMiddleware(r.verifier),
		),
	)
}

func (r *Router) registerSystem() {
	r.Mux.Handle("GET /api/health", HealthHandler(r.buildVersion))
	r.Mux.Handle("GET /api/stats", &StatsHandler{StatsService: r.StatsService})
	r.Mux.Handle("GET /metrics", metricsx.Handler(r.gatherer))
}
