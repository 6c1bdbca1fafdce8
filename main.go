package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"api/cache"
	"api/database"
	"api/entities/applications"
	"api/entities/archive"
	"api/entities/posts"
	"api/entities/presence"
	"api/entities/products"
	"api/entities/reviews"
	"api/entities/settings"
	"api/entities/stats"
	"api/middlewares"
	"api/notifications"
	"api/storage/mongodb"
	"api/utils"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	seed := flag.Bool("seed", false, "load the initial product catalog and sample reviews, then exit")
	flag.Parse()

	utils.LoadEnvVariables()

	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	env := os.Getenv(utils.ENV)
	if env == utils.ENV_RELEASE {
		fmt.Printf("\033[1;31;47m[WARNING] Running against the PRODUCTION environment!\033[0m\n")
	} else {
		fmt.Printf("[INFO] Current environment: %s\n", env)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, err := database.Connect(ctx, os.Getenv(utils.MONGODB_URI))
	if err != nil {
		log.Error("mongodb connection failed", "error", err)
		os.Exit(1)
	}
	defer client.Disconnect(context.Background())

	store := mongodb.New(client, database.GetDB())

	if *seed {
		if err := database.Seed(ctx, store, log); err != nil {
			log.Error("seeding failed", "error", err)
			os.Exit(1)
		}
		return
	}

	redisCache := cache.New(os.Getenv(utils.REDIS_URI), log)
	defer redisCache.Close()

	notify := notifications.New(
		os.Getenv(utils.NOTIFY_WEBHOOK_URL),
		os.Getenv(utils.NOTIFY_AWAIT) == "true",
		log,
	)

	applicationsHandler := applications.NewHandler(store, log, notify)
	archiveHandler := archive.NewHandler(store, log)
	presenceHandler := presence.NewHandler(store, log)
	postsHandler := posts.NewHandler(store, log)
	productsHandler := products.NewHandler(store, redisCache, log)
	reviewsHandler := reviews.NewHandler(store, log)
	statsHandler := stats.NewHandler(store, log)
	settingsHandler := settings.NewHandler(store, redisCache, log)

	admin := middlewares.AdminAuth(os.Getenv(utils.ADMIN_PASSWORD))

	mux := http.NewServeMux()

	mux.Handle("POST /applications", http.HandlerFunc(applicationsHandler.CreateOne))
	mux.Handle("GET /applications", admin(http.HandlerFunc(applicationsHandler.GetAll)))
	mux.Handle("PATCH /applications/{id}", admin(http.HandlerFunc(applicationsHandler.UpdateOne)))
	mux.Handle("DELETE /applications/{id}", admin(http.HandlerFunc(applicationsHandler.DeleteOne)))

	mux.Handle("POST /applications/archive", admin(http.HandlerFunc(archiveHandler.ArchiveCompleted)))
	mux.Handle("GET /archived-applications", admin(http.HandlerFunc(archiveHandler.GetAll)))
	mux.Handle("POST /archived-applications/{id}/restore", admin(http.HandlerFunc(archiveHandler.RestoreOne)))
	mux.Handle("DELETE /archived-applications/{id}", admin(http.HandlerFunc(archiveHandler.DeleteOne)))

	mux.Handle("GET /products", http.HandlerFunc(productsHandler.GetAll))

	mux.Handle("GET /reviews", http.HandlerFunc(reviewsHandler.GetAll))
	mux.Handle("POST /reviews", http.HandlerFunc(reviewsHandler.CreateOne))

	mux.Handle("GET /stats", admin(http.HandlerFunc(statsHandler.GetAll)))

	mux.Handle("GET /posts", http.HandlerFunc(postsHandler.GetAll))
	mux.Handle("GET /posts/{id}", http.HandlerFunc(postsHandler.GetOne))
	mux.Handle("POST /posts", http.HandlerFunc(postsHandler.CreateOne))
	mux.Handle("DELETE /posts/{id}", admin(http.HandlerFunc(postsHandler.DeleteOne)))
	mux.Handle("GET /posts/{id}/comments", http.HandlerFunc(postsHandler.GetComments))
	mux.Handle("POST /posts/{id}/comments", http.HandlerFunc(postsHandler.CreateComment))

	mux.Handle("GET /settings", http.HandlerFunc(settingsHandler.GetOne))
	mux.Handle("PATCH /settings", admin(http.HandlerFunc(settingsHandler.UpdateOne)))

	mux.Handle("POST /admin/sessions", admin(http.HandlerFunc(presenceHandler.CreateOne)))
	mux.Handle("POST /admin/sessions/{id}/heartbeat", admin(http.HandlerFunc(presenceHandler.Heartbeat)))
	mux.Handle("DELETE /admin/sessions/{id}", admin(http.HandlerFunc(presenceHandler.DeleteOne)))
	mux.Handle("GET /admin/sessions", admin(http.HandlerFunc(presenceHandler.GetAll)))
	mux.HandleFunc("/ws/admin/sessions", presenceHandler.WebSocketHandler)

	mux.Handle("GET /metrics", promhttp.Handler())

	handler := middlewares.Cors(middlewares.RequestLogger(log)(middlewares.Metrics(mux)))

	// No write timeout: the presence websocket holds its connection open.
	server := &http.Server{
		Addr:              fmt.Sprintf(":%s", os.Getenv(utils.PORT)),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		fmt.Printf("Server started on port %s at %s\n", os.Getenv(utils.PORT), time.Now().Format("2006-01-02 15:04:05"))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server stopped", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
}
