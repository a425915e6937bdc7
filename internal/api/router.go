package api

import (
	"fmt"
	"log"
	"net/http"

	_ "github.com/startovate/server/docs"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/rs/cors"
	"github.com/startovate/server/internal/api/handlers"
	"github.com/startovate/server/internal/api/middleware"
	"github.com/startovate/server/internal/config"
)

func SetupRouter() http.Handler {
	mainMux := http.NewServeMux()
	c := cors.New(config.Envs.CorsConfig)

	// ---------- PUBLIC ROUTES ----------
	mainMux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprint(w, "OK")
	})

	mainMux.HandleFunc("/docs/", httpSwagger.WrapHandler)

	authMux := http.NewServeMux()
	authMux.HandleFunc("/sign-up", handlers.RegisterUser)
	authMux.HandleFunc("/login", handlers.LoginUser)

	mainMux.Handle("/api/v1/auth/",
		http.StripPrefix("/api/v1/auth", authMux),
	)

	// ---------- PROTECTED ROUTES ----------
	protectedMux := http.NewServeMux()

	ideaMux := http.NewServeMux()
	ideaMux.HandleFunc("/generate", handlers.GenerateIdea)
	ideaMux.HandleFunc("/current", handlers.CurrentIdea)
	ideaMux.HandleFunc("/narrate", handlers.NarrateIdea)
	ideaMux.HandleFunc("/feedback", handlers.RecordFeedback)
	ideaMux.HandleFunc("/email", handlers.EmailIdea)

	protectedMux.Handle("/ideas/",
		http.StripPrefix("/ideas", ideaMux),
	)

	protectedMux.HandleFunc("GET /gallery", handlers.ListIdeas)
	protectedMux.HandleFunc("POST /gallery", handlers.SaveIdea)
	protectedMux.HandleFunc("PATCH /gallery/{index}/tagline", handlers.UpdateTagline)
	protectedMux.HandleFunc("GET /gallery/{index}/pdf", handlers.DownloadPitchPDF)

	protectedMux.HandleFunc("GET /session", handlers.GetSession)
	protectedMux.HandleFunc("PATCH /session/page", handlers.SetSessionPage)
	protectedMux.HandleFunc("/auth/logout", handlers.Logout)

	mainMux.Handle("/api/v1/",
		http.StripPrefix(
			"/api/v1",
			middleware.AuthMiddleware(protectedMux),
		),
	)

	log.Println("Router initialized")
	handler := c.Handler(mainMux)
	handler = middleware.Logger(handler)
	return handler
}
