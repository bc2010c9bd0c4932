package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/yevv0ne/placepick/controllers"
	"github.com/yevv0ne/placepick/infrastructures/cache"
	"github.com/yevv0ne/placepick/infrastructures/config"
	"github.com/yevv0ne/placepick/infrastructures/db/mysql"
	"github.com/yevv0ne/placepick/infrastructures/log"
	"github.com/yevv0ne/placepick/infrastructures/ocr"
	"github.com/yevv0ne/placepick/infrastructures/scrape"
	"github.com/yevv0ne/placepick/infrastructures/weather"
	"github.com/yevv0ne/placepick/models/favorites"
	"github.com/yevv0ne/placepick/models/history"
	"github.com/yevv0ne/placepick/models/place"
	prom "github.com/yevv0ne/placepick/observe/prometheus"
)

var serverHealthGauge = promauto.NewGauge(prometheus.GaugeOpts{
	Namespace: "placepick",
	Subsystem: "server",
	Name:      "health_status",
	Help:      "Health status of the placepick server (1=healthy).",
})

func main() {
	log.InitLogFileBySvrName("server")
	cfg := config.GetInstance()
	logger := log.GetInstance().Sugar

	logger.Infof("placepick server starting, PID=%d", os.Getpid())

	prom.MustRegisterAll()
	serverHealthGauge.Set(1)

	searcher, err := place.NewNaverSearcher()
	if err != nil {
		logger.Fatalf("failed to init place search client: %v", err)
	}

	var resolverSearcher place.Searcher = searcher
	var decisionCache *cache.Cache
	if len(cfg.Redises) > 0 {
		decisionCache = cache.GetInstance()
		ttl := time.Duration(cfg.Resolver.CacheTTLSeconds) * time.Second
		resolverSearcher = place.NewCachedSearcher(searcher, decisionCache, ttl)
		logger.Info("redis connected, search cache and decision sharing enabled")
	} else {
		logger.Warn("no redis configured, running without search cache")
	}

	engine := place.NewEngineFromConfig(resolverSearcher)

	var favRepo *favorites.Repo
	if cfg.MySQL.DSN != "" {
		db, err := mysql.Open()
		if err != nil {
			logger.Fatalf("failed to open mysql: %v", err)
		}
		if err := favorites.Migrate(db); err != nil {
			logger.Fatalf("failed to migrate favorites: %v", err)
		}
		favRepo = favorites.NewRepo(db)
		logger.Info("mysql connected, favorites enabled")
	} else {
		logger.Warn("no mysql configured, favorites endpoints disabled")
	}

	publisher, err := history.NewPublisherFromConfig()
	if err != nil {
		logger.Fatalf("failed to init decision publisher: %v", err)
	}
	if publisher != nil {
		logger.Infof("decision events streaming to %s", cfg.Kafka.DecisionTopic)
		defer publisher.Close()
	}

	weatherClient, err := weather.NewClient()
	if err != nil {
		logger.Warnf("weather disabled: %v", err)
	}
	ocrClient, err := ocr.NewClient()
	if err != nil {
		logger.Warnf("image extraction disabled: %v", err)
	}

	controllers.Setup(controllers.Deps{
		Engine:    engine,
		Searcher:  resolverSearcher,
		Cache:     decisionCache,
		Favorites: favRepo,
		History:   publisher,
		Weather:   weatherClient,
		OCR:       ocrClient,
		Scraper:   scrape.NewScraper(),
	})

	router := gin.New()
	router.Use(gin.Recovery())
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	router.POST("/api/locate", controllers.HandleLocate)
	router.GET("/api/decision/:token", controllers.HandleDecision)
	router.POST("/extract", controllers.HandleExtract)
	router.POST("/extract-image", controllers.HandleExtractImage)
	router.GET("/api/search-place", controllers.HandleSearchPlace)
	router.GET("/weather", controllers.HandleWeather)
	router.POST("/api/favorites", controllers.HandleAddFavorite)
	router.GET("/api/favorites", controllers.HandleListFavorites)
	router.DELETE("/api/favorites/:id", controllers.HandleDeleteFavorite)

	httpAddr := cfg.Services.Server.HTTPAddr
	if httpAddr == "" {
		httpAddr = ":11110"
	}

	srv := &http.Server{
		Addr:    httpAddr,
		Handler: router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Infof("placepick server listening on %s", httpAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("HTTP server exited: %v", err)
		}
	}()

	<-ctx.Done()

	logger.Info("Shutdown signal received")
	serverHealthGauge.Set(0)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("shutdown http server: %v", err)
	}
	logger.Info("placepick server stopped")
}
