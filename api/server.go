package api

import (
	"context"
	"crypto/tls"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moyoez/portfolio-resolver/api/controllers"
	"github.com/moyoez/portfolio-resolver/tool"
	"github.com/moyoez/portfolio-resolver/types"
)

const APIPrefix = "/api/portfolio/v1"

// Server exposes the resolver to portfolio panels over HTTP.
type Server struct {
	listen string
	engine *gin.Engine
	server *http.Server
	cert   *tls.Certificate
	mu     sync.RWMutex
}

// NewServer builds the gin engine and registers every route. notifier may be nil.
func NewServer(listen string, resolver types.ResolverInterface, notifier controllers.Notifier) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestID(), accessLog())

	portfolio := controllers.NewPortfolioController(resolver, notifier)
	share := controllers.NewShareController(resolver)

	v1 := engine.Group(APIPrefix)
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		v1.GET("/resume", portfolio.HandleResume)
		v1.GET("/cover-letter", portfolio.HandleCoverLetter)
		v1.GET("/achievements", portfolio.HandleAchievements)
		v1.GET("/profile", portfolio.HandleProfile)
		v1.GET("/repository", portfolio.HandleRepository)
		v1.GET("/files/:category/qrcode", share.HandleQRCode)
	}

	return &Server{
		listen: listen,
		engine: engine,
	}
}

// EnableTLS makes Start serve HTTPS with cert.
func (s *Server) EnableTLS(cert tls.Certificate) {
	s.mu.Lock()
	s.cert = &cert
	s.mu.Unlock()
}

func (s *Server) Handler() http.Handler {
	return s.engine
}

// Start blocks serving HTTP until Stop is called.
func (s *Server) Start() error {
	s.mu.Lock()
	s.server = &http.Server{
		Addr:              s.listen,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}
	srv := s.server
	cert := s.cert
	s.mu.Unlock()

	var err error
	if cert != nil {
		srv.TLSConfig = &tls.Config{Certificates: []tls.Certificate{*cert}, MinVersion: tls.VersionTLS12}
		tool.DefaultLogger.Infof("Starting portfolio API on %s (https)", s.listen)
		err = srv.ListenAndServeTLS("", "")
	} else {
		tool.DefaultLogger.Infof("Starting portfolio API on %s", s.listen)
		err = srv.ListenAndServe()
	}
	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Stop shuts the server down gracefully.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}
