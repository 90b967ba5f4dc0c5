package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"

	"github.com/sowmya-sree-builds/book-exchange/internal/config"
	"github.com/sowmya-sree-builds/book-exchange/internal/handler"
	"github.com/sowmya-sree-builds/book-exchange/internal/middleware"
	"github.com/sowmya-sree-builds/book-exchange/internal/session"
)

// Handlers groups every handler the router wires up.
type Handlers struct {
	Auth      *handler.AuthHandler
	Health    *handler.HealthHandler
	Profile   *handler.ProfileHandler
	Books     *handler.BookHandler
	Favorites *handler.FavoriteHandler
	Exchanges *handler.ExchangeHandler
}

// RegisterRoutes maps the full HTTP surface onto the Echo instance.
// Unauthenticated routes: signup, login, search and health. Everything
// else resolves the bearer token through SessionAuth first. The rate
// limiter wraps all routes; the response cache wraps only the catalog
// search, whose results never depend on the caller.
func RegisterRoutes(e *echo.Echo, h Handlers, sessions *session.Store, rdb *redis.Client) {
	e.Use(middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb))

	auth := middleware.SessionAuth(sessions)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	// Public endpoints.
	e.POST("/signup", h.Auth.Signup)
	e.POST("/login", h.Auth.Login)
	e.GET("/search", handler.Search, cache)
	e.GET("/health", h.Health.Health)

	// Session-scoped endpoints.
	e.POST("/logout", h.Auth.Logout, auth)
	e.GET("/profile", h.Profile.Profile, auth)

	e.POST("/addBook", h.Books.AddBook, auth)
	e.GET("/myBooks", h.Books.MyBooks, auth)
	e.GET("/exchange", h.Books.Exchange, auth)

	e.POST("/addFavorite", h.Favorites.AddFavorite, auth)
	e.GET("/myFavorites", h.Favorites.MyFavorites, auth)
	e.DELETE("/removeFavorite/:id", h.Favorites.RemoveFavorite, auth)

	e.POST("/requestExchange", h.Exchanges.RequestExchange, auth)
	e.GET("/myRequests", h.Exchanges.MyRequests, auth)
	e.PUT("/updateRequest/:id", h.Exchanges.UpdateRequest, auth)
}
