package rest

import (
	"net/http"

	"chirp-backend/infrastructure/di"
	"chirp-backend/interfaces/http/rest/handlers"
	"chirp-backend/interfaces/http/rest/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Router creates and configures the HTTP router
type Router struct {
	container *di.Container
}

// NewRouter creates a new router instance
func NewRouter(container *di.Container) *Router {
	return &Router{container: container}
}

// Setup configures all routes and middleware
func (rt *Router) Setup() http.Handler {
	c := rt.container
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(middleware.Logger(c.Logger))
	if c.Config.EnableMetrics {
		router.Use(middleware.Metrics(c.Metrics))
	}

	if c.Config.EnableCORS {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   []string{"http://localhost:3000"},
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders:   []string{"X-Request-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	// Health check and metrics
	router.Get("/health", rt.healthCheck)
	if c.Config.EnableMetrics {
		router.Handle("/metrics", c.Metrics.Handler())
	}

	router.Route("/api/v1", func(r chi.Router) {
		// User endpoints
		r.Route("/users", func(r chi.Router) {
			userHandler := handlers.NewUserHandler(c.Users, c.Feeds, c.Logger)
			r.Get("/", userHandler.ListUsers)
			r.Post("/", userHandler.Register)
			r.Route("/{username}", func(r chi.Router) {
				r.Get("/", userHandler.GetUser)
				r.Patch("/", userHandler.UpdateUser)
				r.Delete("/", userHandler.DeleteUser)
				r.Get("/exists", userHandler.UsernameExists)
				r.Post("/follow", userHandler.Follow)
				r.Post("/unfollow", userHandler.Unfollow)
				r.Get("/followers", userHandler.ListFollowers)
				r.Get("/following", userHandler.ListFollowing)
				r.Get("/tweets", userHandler.ListTweets)
				r.Get("/mentions", userHandler.ListMentions)
				r.Get("/feed", userHandler.GetFeed)
			})
		})

		// Tweet endpoints
		r.Route("/tweets", func(r chi.Router) {
			tweetHandler := handlers.NewTweetHandler(c.Tweets, c.Threads, c.Logger)
			r.Get("/", tweetHandler.ListTweets)
			r.Post("/", tweetHandler.CreateTweet)
			r.Route("/{tweetID}", func(r chi.Router) {
				r.Get("/", tweetHandler.GetTweet)
				r.Patch("/", tweetHandler.EditTweet)
				r.Delete("/", tweetHandler.DeleteTweet)
				r.Post("/reply", tweetHandler.Reply)
				r.Post("/repost", tweetHandler.Repost)
				r.Post("/like", tweetHandler.Like)
				r.Post("/unlike", tweetHandler.Unlike)
				r.Get("/likes", tweetHandler.ListLikers)
				r.Get("/mentions", tweetHandler.ListMentioned)
				r.Get("/context", tweetHandler.GetContext)
				r.Get("/replies", tweetHandler.ListReplies)
				r.Get("/reposts", tweetHandler.ListReposts)
			})
		})

		// Hashtag endpoints
		r.Route("/hashtags", func(r chi.Router) {
			hashtagHandler := handlers.NewHashtagHandler(c.Hashtags, c.Logger)
			r.Get("/", hashtagHandler.ListHashtags)
			r.Get("/{label}", hashtagHandler.ListTweetsByLabel)
		})
	})

	return router
}

// healthCheck handles health check requests
func (rt *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}
