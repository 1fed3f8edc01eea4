package main

import (
	"log"
	"net/http"

	_ "saborml/docs" // swagger docs

	"saborml/internal/cache"
	"saborml/internal/config"
	"saborml/internal/db"
	"saborml/internal/handler"
	"saborml/internal/repository"
	"saborml/internal/service"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

// @title SaborML Recipe Recommender API
// @version 1.0
// @description API de recomendación de recetas (híbrido MF + content-based, Mongo, Redis)
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	// Mongo y Redis
	db.InitMongo(cfg)

	// sin REDIS_ADDR corremos con cache en memoria (útil en local)
	var store service.CacheStore
	if cfg.RedisAddr != "" {
		cache.InitRedis(cfg)
		store = cache.NewRedisStore()
	} else {
		log.Println("[cache] REDIS_ADDR vacío, usando cache en memoria")
		store = cache.NewMemoryStore()
	}

	// repos
	userRepo := repository.NewUserRepository()
	recipeRepo := repository.NewRecipeRepository()
	ratingRepo := repository.NewRatingRepository()
	viewRepo := repository.NewViewRepository()
	collectionRepo := repository.NewCollectionRepository()
	recRepo := repository.NewRecommendationRepository()

	// services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	recipeSvc := service.NewRecipeService(recipeRepo, viewRepo)
	ratingSvc := service.NewRatingService(ratingRepo, recipeRepo)
	collectionSvc := service.NewCollectionService(collectionRepo, recipeRepo)
	// motor de recomendaciones completo (orquestador + contextual + historial)
	recSvc := service.NewRecommendService(cfg, userRepo, recipeRepo, ratingRepo, viewRepo, recRepo, store)
	// servicio de mantenimiento admin
	adminMaintSvc := service.NewAdminMaintenanceService(recipeRepo, ratingRepo)

	// handlers
	authH := handler.NewAuthHandler(authSvc)
	recipeH := handler.NewRecipeHandler(recipeSvc)
	ratingH := handler.NewRatingHandler(ratingSvc)
	collectionH := handler.NewCollectionHandler(collectionSvc)
	recH := handler.NewRecommendHandler(recSvc)
	adminMaintH := handler.NewAdminMaintenanceHandler(adminMaintSvc, recSvc)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// =============
	// Rutas públicas
	// =============
	r.Get("/health", handler.Health)

	r.Post("/auth/register", authH.Register)
	r.Post("/auth/login", authH.Login)

	// Recetas (públicas)
	r.Get("/recipes/search", recipeH.Search)
	r.Get("/recipes/top", recipeH.Top)
	r.Get("/recipes/{id}", recipeH.GetRecipe)

	// ===========================
	// Rutas protegidas con JWT
	// ===========================
	authMw := handler.JWTAuth(cfg.JWTSecret)

	r.Group(func(r chi.Router) {
		r.Use(authMw)

		// ---- Endpoints /me (USER normal) ----
		r.Route("/me", func(r chi.Router) {
			r.Get("/ratings", ratingH.GetMyRatings)
			r.Post("/ratings", ratingH.PostMyRating)
			r.Post("/views", recipeH.PostMyView)

			r.Get("/recommendations", recH.GetMyRecommendations)
			r.Get("/recommendations/contextual", recH.GetContextual)
			r.Get("/recommendations/history", recH.GetMyHistory)
			// WebSocket
			r.Get("/recommendations/ws", recH.GetRecommendationsWS)

			// colecciones de recetas (USER)
			r.Get("/collections", collectionH.ListMine)
			r.Post("/collections", collectionH.Create)
			r.Post("/collections/{id}/recipes", collectionH.AddRecipe)
			r.Delete("/collections/{id}/recipes/{recipeId}", collectionH.RemoveRecipe)
			r.Delete("/collections/{id}", collectionH.Delete)
		})

		// ---- Endpoints solo ADMIN ----
		r.Group(func(r chi.Router) {
			r.Use(handler.AdminOnly())

			// edición de usuario
			r.Put("/users/{id}/update", authH.UpdateUser)
			r.Get("/users", authH.ListUsers)

			// gestión de recetas
			r.Post("/admin/recipes", recipeH.CreateRecipe)
			r.Put("/admin/recipes/{id}", recipeH.UpdateRecipe)

			// ratings y recomendaciones de cualquier usuario
			r.Route("/users/{id}", func(r chi.Router) {
				// obtener info del usuario por id
				r.Get("/", authH.GetUserByID)

				r.Get("/ratings", ratingH.GetRatings)
				r.Post("/ratings", ratingH.PostRating)

				r.Get("/recommendations", recH.GetRecommendations)
			})

			// --- mantenimiento del motor ---
			handler.MountAdminMaintenanceRoutes(r, adminMaintH)
		})
	})

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	log.Printf("HTTP escuchando en :%s", cfg.HTTPPort)
	log.Fatal(http.ListenAndServe(":"+cfg.HTTPPort, r))
}
