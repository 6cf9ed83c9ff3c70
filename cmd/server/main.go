package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ayush/inventory-tracker/internal/auth"
	"github.com/ayush/inventory-tracker/internal/config"
	"github.com/ayush/inventory-tracker/internal/items"
	"github.com/ayush/inventory-tracker/internal/middleware"
	"github.com/ayush/inventory-tracker/internal/session"
	"github.com/ayush/inventory-tracker/internal/store"
	"github.com/ayush/inventory-tracker/internal/view"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file", "error", err)
	}
	cfg := config.Load()
	ctx := context.Background()

	// ── MongoDB ──────────────────────────────────────────────
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		slog.Error("mongo connect", "error", err)
		os.Exit(1)
	}
	defer mongoClient.Disconnect(ctx)
	db := store.NewMongoStore(mongoClient.Database(cfg.MongoDB))

	// ── Sessions ─────────────────────────────────────────────
	var sessions session.Store
	switch cfg.SessionBackend {
	case "redis":
		rdb, err := session.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			slog.Error("redis connect", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		sessions = session.NewRedisStore(rdb)
	default:
		sessions = session.NewMemoryStore()
	}
	identity := auth.NewService(sessions)

	// ── Views ────────────────────────────────────────────────
	views := view.NewTemplateCache()
	if err := views.Load(cfg.TemplateDir); err != nil {
		slog.Error("load templates", "error", err)
		os.Exit(1)
	}

	// ── Handlers ─────────────────────────────────────────────
	authHandler := auth.NewHandler(db, db, identity, views)
	itemHandler := items.NewHandler(db, identity, views)

	// ── Router ───────────────────────────────────────────────
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.RealIP)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Static assets
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(cfg.StaticDir))))

	// Public routes
	r.Get("/", itemHandler.List)
	r.Get("/signup", authHandler.SignupForm)
	r.Post("/signup", authHandler.Signup)
	r.Get("/login", authHandler.LoginForm)
	r.Post("/login", authHandler.Login)

	// Gated routes
	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireLogin(identity))
		r.Get("/form", itemHandler.Form)
		r.Post("/items", itemHandler.Create)
		r.Post("/items/update/{id}", itemHandler.Update)
		r.Get("/items/delete/{id}", itemHandler.Delete)
	})

	// ── Server ───────────────────────────────────────────────
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  time.Minute,
		WriteTimeout: time.Minute,
	}

	go func() {
		slog.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down")
	shutCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	srv.Shutdown(shutCtx)
}
