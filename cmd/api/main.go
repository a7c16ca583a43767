package main

import (
	"context"
	"log"
	"net/http"
	"time"

	_ "recmovies-pf/docs" // swagger docs

	"recmovies-pf/internal/cache"
	"recmovies-pf/internal/config"
	"recmovies-pf/internal/db"
	"recmovies-pf/internal/embedding"
	"recmovies-pf/internal/engine"
	"recmovies-pf/internal/handler"
	"recmovies-pf/internal/repository"
	"recmovies-pf/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title RecMovies Hybrid Recommender API
// @version 1.0
// @description API del recomendador híbrido (SVD + TF-IDF/embeddings, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)
	cache.InitRedis(cfg)

	// repos
	userRepo := repository.NewUserRepository()
	movieRepo := repository.NewMovieRepository()
	ratingRepo := repository.NewRatingRepository()
	reviewRepo := repository.NewReviewRepository()
	recRepo := repository.NewRecommendationRepository()
	modelRepo := repository.NewModelRepository()

	// ============================
	// Servicio externo de embeddings (opcional)
	// ============================
	var embedder engine.Embedder
	if cfg.EmbeddingsURL != "" {
		embedder = embedding.NewClient(cfg.EmbeddingsURL)
		log.Printf("usando servicio de embeddings en %s", cfg.EmbeddingsURL)
	} else {
		log.Println("EMBEDDINGS_URL vacío: el modelo de contenido usará solo TF-IDF")
	}

	// snapshot compartido de modelos entrenados
	holder := service.NewModelHolder()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	movieSvc := service.NewMovieService(movieRepo)
	ratingSvc := service.NewRatingService(ratingRepo, movieRepo)
	reviewSvc := service.NewReviewService(reviewRepo, movieRepo)
	recSvc := service.NewRecommendService(ratingRepo, recRepo, holder)
	trainSvc := service.NewTrainService(cfg, ratingRepo, movieRepo, reviewRepo, modelRepo, embedder, holder)

	// intentar levantar los modelos persistidos (si no hay, se arranca
	// sin snapshot y el admin dispara el primer rebuild)
	{
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		if err := trainSvc.RestoreFromStore(ctx); err != nil {
			log.Printf("no se pudieron restaurar los modelos: %v", err)
		}
		cancel()
	}

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	movieH := handler.NewMovieHandler(movieSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	reviewH := handler.NewReviewHandler(reviewSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminTrainH := handler.NewAdminTrainHandler(trainSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Películas (públicas)
	r.Get("/movies/{id}", movieH.GetMovie)
	r.Get("/movies/search", movieH.Search)
	r.Get("/movies/top", movieH.Top)
	r.Get("/movies/{id}/reviews", reviewH.GetReviews)
	r.Get("/movies/{id}/similar", recH.GetSimilar)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/", authH.GetMe)
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)
			r.Get("/recommendations", recH.GetMyRecommendations)
		})

		// reviews (cualquier usuario logueado)
		r.Post("/movies/{id}/reviews", reviewH.PostReview)

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// edición de usuario
			r.Put("/users/{id}/update", authH.UpdateUser)

			// gestión de películas
			r.Post("/admin/movies", movieH.CreateMovie)
			r.Put("/admin/movies/{id}", movieH.UpdateMovie)
			r.Get("/users", authH.ListUsers)

			// ratings y recomendaciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				// obtener info del usuario por id
				r.Get("/", authH.GetUserByID)

				r.Get("/ratings", ratingH.GetRatings)
				r.Post("/ratings", ratingH.PostRating)

				// HTTP normal
				r.Get("/recommendations", recH.GetRecommendations)
				r.Get("/recommendations/history", recH.GetHistory)
				r.Get("/recommendations/{movieId}/explain", recH.Explain)

				// WebSocket
				r.Get("/ws/recommendations", recH.GetRecommendationsWS)
			})

			// --- reentrenamiento y estado del motor ---
			handler.MountAdminTrainRoutes(r, adminTrainH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
