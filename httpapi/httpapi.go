package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/pointset/distmat/config"
	"github.com/rs/zerolog/log"
)

// ---------------------------

func pongHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong from distmat",
	})
}

// ---------------------------

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(RequestIdMiddleware(), ZerologLogger(), gin.Recovery())
	v1 := router.Group("/v1")
	v1.GET("/ping", pongHandler)
	v1.POST("/distance", distanceHandler)
	return router
}

func RunHTTPServer() *http.Server {
	// ---------------------------
	if !config.Cfg.Debug {
		gin.SetMode(gin.ReleaseMode)
	}
	// ---------------------------
	server := &http.Server{
		Addr:    config.Cfg.HttpHost + ":" + strconv.Itoa(config.Cfg.HttpPort),
		Handler: setupRouter(),
	}
	go func() {
		log.Info().Str("httpAddr", server.Addr).Msg("HTTPAPI.Serve")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start http server")
		}
	}()
	return server
}
