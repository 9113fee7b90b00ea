package main

import (
	"context"
	"net/http"

	"coffee-filter-api/docs"
	"coffee-filter-api/internal/config"
	"coffee-filter-api/internal/geocode"
	"coffee-filter-api/internal/handler"
	"coffee-filter-api/internal/repository"
	"coffee-filter-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Coffee Filter API
//	@version		1.0
//	@description	API for managing coffee shop data
//	@BasePath		/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization

func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	// Database connection
	conn, err := pgxpool.New(context.Background(), config.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to db")
	}
	defer conn.Close()

	// Initialize layers
	repo := repository.NewRepository(conn)
	if err := repo.Migrate(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("cannot create schema")
	}

	resolver := geocode.NewClient(config.NominatimBaseURL, config.GeocodeUserAgent, config.GeocodeTimeout)

	shopService := service.NewShopService(repo, resolver)
	searchService := service.NewSearchService(repo)
	authService := service.NewAuthService(repo, config.JWTSecret, config.TokenDuration)

	if err := authService.EnsureAdmin(context.Background(), config.AdminUsername, config.AdminPassword); err != nil {
		log.Fatal().Err(err).Msg("cannot bootstrap admin user")
	}

	shopHandler := handler.NewShopHandler(shopService)
	searchHandler := handler.NewSearchHandler(searchService)
	photoHandler := handler.NewPhotoHandler(shopService, config.GooglePlacesAPIKey)
	authHandler := handler.NewAuthHandler(authService)

	r := gin.Default()
	r.Use(handler.CORS(config.AllowedOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	docs.SwaggerInfo.BasePath = "/api/v1"
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		v1.GET("/coffee-shops", shopHandler.List)
		v1.GET("/coffee-shops/search/by-location", searchHandler.ByLocation)
		v1.GET("/coffee-shops/:id", shopHandler.Get)
		v1.GET("/coffee-shops/:id/photo", photoHandler.Photo)

		v1.POST("/auth/login", authHandler.Login)
		v1.GET("/auth/me", handler.Authenticate(authService), authHandler.Me)

		admin := v1.Group("", handler.Authenticate(authService), handler.RequireAdmin())
		{
			admin.POST("/coffee-shops", shopHandler.Create)
			admin.PUT("/coffee-shops/:id", shopHandler.Update)
			admin.DELETE("/coffee-shops/:id", shopHandler.Delete)
		}
	}

	r.Run(config.ServerAddress)
}
