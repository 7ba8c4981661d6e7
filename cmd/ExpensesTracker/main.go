package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/google/uuid"

	"github.com/wise/expenses-tracker/internal/auth"
	"github.com/wise/expenses-tracker/internal/config"
	database "github.com/wise/expenses-tracker/internal/db"
	"github.com/wise/expenses-tracker/internal/expenses/application"
	"github.com/wise/expenses-tracker/internal/expenses/infrastructure"
	"github.com/wise/expenses-tracker/internal/expenses/interfaces"
	"github.com/wise/expenses-tracker/internal/migrations"
	"github.com/wise/expenses-tracker/internal/user"
)

//go:embed openapi.json
var openAPIDocument []byte

// Middleware is one stage of the request pipeline. Stages are composed in a
// declared, ordered list; each receives the rest of the chain as next.
type Middleware func(http.Handler) http.Handler

func chain(handler http.Handler, middlewares ...Middleware) http.Handler {
	for i := len(middlewares) - 1; i >= 0; i-- {
		handler = middlewares[i](handler)
	}
	return handler
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set("X-Request-ID", requestID)
		log.Printf("[%s] Started %s %s", requestID, r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("[%s] Completed %s in %v", requestID, r.URL.Path, time.Since(start))
	})
}

func corsMiddleware(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	})(next)
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	respondError(w, http.StatusNotFound, "Path not found")
}

type Server struct {
	router          *http.ServeMux
	dbService       *database.DBService
	authHandler     *auth.Handler
	expenseHandler  *interfaces.ExpenseHandler
	categoryHandler *interfaces.CategoryHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	expenseHandler *interfaces.ExpenseHandler,
	categoryHandler *interfaces.CategoryHandler,
) *Server {
	return &Server{
		router:          http.NewServeMux(),
		dbService:       dbService,
		authHandler:     authHandler,
		expenseHandler:  expenseHandler,
		categoryHandler: categoryHandler,
	}
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, health)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func handleAPIDocs(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(openAPIDocument)
}

func (s *Server) RegisterRoutes() {
	router := http.NewServeMux()

	// Auth routes
	router.Handle("POST /api/v1/auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	router.Handle("POST /api/v1/auth/authenticate", http.HandlerFunc(s.authHandler.HandleAuthenticate))
	router.Handle("GET /api/v1/auth/profile", http.HandlerFunc(s.authHandler.HandleGetProfile))

	// Expenses API
	router.Handle("GET /api/expenses", http.HandlerFunc(s.expenseHandler.GetExpenses))
	router.Handle("GET /api/expenses/summary", http.HandlerFunc(s.expenseHandler.GetCategorySummary))
	router.Handle("GET /api/expenses/{id}", http.HandlerFunc(s.expenseHandler.GetExpense))
	router.Handle("POST /api/expenses",
		interfaces.WithChangeLogging("createExpense", s.expenseHandler.CreateExpense))
	router.Handle("PUT /api/expenses/{id}",
		interfaces.WithChangeLogging("updateExpense", s.expenseHandler.UpdateExpense))
	router.Handle("DELETE /api/expenses/{id}", http.HandlerFunc(s.expenseHandler.DeleteExpense))

	// Categories API
	router.Handle("GET /api/categories", http.HandlerFunc(s.categoryHandler.GetCategories))
	router.Handle("GET /api/categories/{id}", http.HandlerFunc(s.categoryHandler.GetCategory))
	router.Handle("POST /api/categories", http.HandlerFunc(s.categoryHandler.CreateCategory))
	router.Handle("PUT /api/categories/{id}", http.HandlerFunc(s.categoryHandler.UpdateCategory))
	router.Handle("DELETE /api/categories/{id}", http.HandlerFunc(s.categoryHandler.DeleteCategory))

	// Service routes
	router.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))
	router.Handle("GET /v3/api-docs", http.HandlerFunc(handleAPIDocs))

	router.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = router
}

// accessPolicy is the ordered authorization table: first match wins, paths
// matching no rule require authentication. The profile rule sits above the
// public auth prefix so it stays protected.
func accessPolicy() *auth.Policy {
	return auth.NewPolicy(
		auth.RouteRule{Pattern: "/api/v1/auth/profile", Rule: auth.RequiresAuthenticated},
		auth.RouteRule{Pattern: "/api/v1/auth/*", Rule: auth.Public},
		auth.RouteRule{Pattern: "/swagger-ui/*", Rule: auth.Public},
		auth.RouteRule{Pattern: "/v3/api-docs*", Rule: auth.Public},
		auth.RouteRule{Pattern: "/api/ready", Rule: auth.Public},
	)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Missing configuration, update to start server: %v", err)
	}

	dbService, err := database.NewDBService(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	if err := migrations.Up(context.Background(), dbService.DB); err != nil {
		log.Fatalf("Could not apply database migrations: %v", err)
	}

	jwtManager, err := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTDuration)
	if err != nil {
		log.Fatalf("Could not initialize JWT manager: %v", err)
	}

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	authService := auth.NewAuthService(userService, jwtManager, cfg.BcryptCost)
	authHandler := auth.NewHandler(authService)

	categoryRepo := infrastructure.NewCategoryRepository(dbService.DB)
	categoryService := application.NewCategoryService(categoryRepo)
	categoryHandler := interfaces.NewCategoryHandler(categoryService, respondJSON, respondError)

	expenseRepo := infrastructure.NewExpenseRepository(dbService.DB)
	expenseService := application.NewExpenseService(expenseRepo, categoryService)
	expenseHandler := interfaces.NewExpenseHandler(expenseService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, expenseHandler, categoryHandler)
	server.RegisterRoutes()

	// The filter always continues; the policy decides who gets in.
	middlewares := []Middleware{
		loggingMiddleware,
		corsMiddleware,
		authService.AuthenticationFilter(),
		accessPolicy().Enforce(),
	}
	handler := chain(server.router, middlewares...)

	log.Printf("Server starting on %s...", cfg.ServerAddr)
	if err := http.ListenAndServe(cfg.ServerAddr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
