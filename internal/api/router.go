package api

import (
	"bank-api/internal/api/handler"
	mw "bank-api/internal/api/middleware"
	"bank-api/internal/config"
	"bank-api/internal/domain/account"
	"bank-api/internal/domain/customer"
	"bank-api/internal/domain/loan"
	"bank-api/internal/domain/stats"
	"bank-api/internal/domain/transaction"
	"log/slog"
	"net/http"
	"time"

	_ "bank-api/docs"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/traceid"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

const requestTimeout = 60 * time.Second

type Services struct {
	Customer    customer.CustomerService
	Account     account.AccountService
	Transaction transaction.TransactionService
	Loan        loan.LoanService
	Stats       stats.StatsService
}

func SetupRouter(rateLimiter *mw.RateLimiterMiddleware, svc Services, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	router := chi.NewRouter()

	setupMiddleware(router, rateLimiter, cfg, logger)
	setupMetricsEndpoint(router, cfg, logger)
	setupCustomerRoutes(router, cfg, svc.Customer, logger)
	setupBankingRoutes(router, svc, logger)
	router.Get("/health", handler.Health)
	setupSwaggerEndpoint(router, logger)

	return router
}

func setupMiddleware(router *chi.Mux, rateLimiter *mw.RateLimiterMiddleware, cfg *config.Config, logger *slog.Logger) {
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(traceid.Middleware)
	router.Use(mw.StructuredLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(mw.CORS(cfg.Server.CORS))
	router.Use(middleware.Compress(5))
	router.Use(middleware.Timeout(requestTimeout))
	router.Use(rateLimiter.Middleware)
	router.Use(mw.MetricsMiddleware())
}

func setupMetricsEndpoint(router *chi.Mux, cfg *config.Config, logger *slog.Logger) {
	metricsPath := cfg.Metrics.Path
	if metricsPath == "" {
		metricsPath = "/metrics"
	}
	logger.Info("Setting up Prometheus metrics endpoint", "path", metricsPath)
	router.Handle(metricsPath, promhttp.Handler())
}

func setupSwaggerEndpoint(router *chi.Mux, logger *slog.Logger) {
	logger.Info("Setting up Swagger UI endpoint", "path", "/swagger/")
	router.Get("/swagger/*", httpSwagger.WrapHandler)
	router.Get("/swagger", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/swagger/index.html", http.StatusMovedPermanently)
	})
}

func setupCustomerRoutes(r chi.Router, cfg *config.Config, svc customer.CustomerService, logger *slog.Logger) {
	h := handler.NewCustomerHandler(svc, cfg.API, logger)

	r.Route("/customers", func(r chi.Router) {
		r.Get("/", h.ListCustomers)
		r.Post("/", h.CreateCustomer)
		r.Route("/{customerID}", func(r chi.Router) {
			r.Get("/", h.GetCustomer)
			r.Put("/", h.UpdateCustomer)
			r.Delete("/", h.DeleteCustomer)
		})
	})
}

func setupBankingRoutes(router *chi.Mux, svc Services, logger *slog.Logger) {
	accountHandler := handler.NewAccountHandler(svc.Account, logger)
	transactionHandler := handler.NewTransactionHandler(svc.Transaction, logger)
	loanHandler := handler.NewLoanHandler(svc.Loan, logger)
	statsHandler := handler.NewStatsHandler(svc.Stats, logger)

	router.Route("/accounts", func(r chi.Router) {
		r.Get("/", accountHandler.ListAccounts)
		r.Post("/", accountHandler.CreateAccount)
		r.Get("/customer/{customerID}", accountHandler.ListCustomerAccounts)
		r.Route("/{accountID}", func(r chi.Router) {
			r.Put("/", accountHandler.UpdateAccount)
			r.Delete("/", accountHandler.DeleteAccount)
		})
	})

	router.Route("/transactions", func(r chi.Router) {
		r.Get("/", transactionHandler.ListTransactions)
		r.Get("/account/{accountID}", transactionHandler.ListAccountTransactions)
	})

	router.Route("/loans", func(r chi.Router) {
		r.Get("/", loanHandler.ListLoans)
		r.Post("/", loanHandler.ApplyForLoan)
		r.Get("/customer/{customerID}", loanHandler.ListCustomerLoans)
		r.Route("/{loanID}", func(r chi.Router) {
			r.Put("/approve", loanHandler.ApproveLoan)
			r.Put("/close", loanHandler.CloseLoan)
			r.Delete("/", loanHandler.DeleteLoan)
		})
	})

	router.Get("/dashboard/stats", statsHandler.GetDashboardStats)
}
