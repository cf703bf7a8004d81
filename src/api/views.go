package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/venoajie/trading-web-project/src/api/handlers"
)

type Server struct {
	Router         *chi.Mux
	Handler        *handlers.Handler
	AllowedOrigins []string
}

func NewServer(handler *handlers.Handler, allowedOrigins []string) *Server {
	server := &Server{
		Router:         chi.NewRouter(),
		Handler:        handler,
		AllowedOrigins: allowedOrigins,
	}
	server.InitRoutes()
	return server
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.Router.ServeHTTP(w, r)
}

func (s *Server) InitRoutes() {
	s.Router.Use(middleware.RequestID)
	s.Router.Use(middleware.RealIP)
	s.Router.Use(s.Handler.RequestLogger)
	s.Router.Use(middleware.Recoverer)
	s.Router.Use(cors.New(cors.Options{
		AllowedOrigins:   s.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	}).Handler)

	s.Router.Get("/health", s.Handler.Healthcheck)

	s.Router.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", s.Handler.Register)
			r.Post("/login", s.Handler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(s.Handler.RequireUser)

			r.Post("/ai/chat", s.Handler.Chat)

			r.Route("/portfolios", func(r chi.Router) {
				r.Get("/", s.Handler.GetPortfolios)
				r.Post("/", s.Handler.CreatePortfolio)
				r.Get("/{id}/transactions", s.Handler.GetPortfolioTransactions)
			})
			r.Post("/transactions", s.Handler.CreateTransaction)
		})
	})
}

func NewHTTPServer(server *Server, port string) *http.Server {
	httpServer := &http.Server{
		Addr:         ":" + port,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		Handler:      server,
	}
	return httpServer
}
