package main // Entry point package

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/sowmya-sree-builds/book-exchange/internal/config"
	"github.com/sowmya-sree-builds/book-exchange/internal/database"
	"github.com/sowmya-sree-builds/book-exchange/internal/handler"
	"github.com/sowmya-sree-builds/book-exchange/internal/queue"
	"github.com/sowmya-sree-builds/book-exchange/internal/repository"
	"github.com/sowmya-sree-builds/book-exchange/internal/router"
	queue_publisher "github.com/sowmya-sree-builds/book-exchange/internal/service"
	"github.com/sowmya-sree-builds/book-exchange/internal/session"
)

func main() {
	_ = godotenv.Load() // .env is optional; real env vars win
	cfg := config.Load()

	db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatalf("apply schema: %v", err)
	}

	users := repository.NewUserRepo(db)
	books := repository.NewBookRepo(db)
	favorites := repository.NewFavoriteRepo(db)
	exchanges := repository.NewExchangeRepo(db)

	sessions := session.New(time.Duration(cfg.SessionTTLHrs) * time.Hour)
	rdb := config.NewRedisClient() // nil disables rate limiting and caching

	exchangeHandler := handler.NewExchangeHandler(exchanges)
	exchangeHandler.Publish = queue_publisher.PublishExchangeCompleted

	h := router.Handlers{
		Auth:      handler.NewAuthHandler(users, sessions, cfg.BcryptCost),
		Health:    &handler.HealthHandler{Sessions: sessions},
		Profile:   handler.NewProfileHandler(users),
		Books:     handler.NewBookHandler(books),
		Favorites: handler.NewFavoriteHandler(favorites),
		Exchanges: exchangeHandler,
	}

	e := echo.New()
	router.RegisterRoutes(e, h, sessions, rdb)

	// Background consumer appends exchange.completed events to the log.
	go func() {
		if err := queue.StartExchangeConsumer(); err != nil {
			log.Printf("exchange consumer stopped: %v", err)
		}
	}()

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
