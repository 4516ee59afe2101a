// Package web provides the HTTP server and web interface for go-bonita
package web

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-contrib/secure"
	"github.com/gin-gonic/gin"
	"github.com/go-while/go-bonita/internal/config"
)

// WebServer represents the web server
type WebServer struct {
	Router    *gin.Engine
	Config    *config.WebConfig
	StartTime time.Time // Track server start time for uptime calculations
}

// NewServer creates a new web server instance
func NewServer(webconfig *config.WebConfig) *WebServer {
	// Set Gin to release mode for production
	gin.SetMode(gin.ReleaseMode)

	router := gin.Default()

	// Configure Gin to trust reverse proxy headers
	// Set trusted proxies for common reverse proxy setups (nginx, etc.)
	router.SetTrustedProxies([]string{"127.0.0.1", "::1", "10.0.0.0/8", "172.16.0.0/12", "192.168.0.0/16"})

	// Configure security headers based on SSL setup
	secureConfig := secure.Config{
		FrameDeny:          true,
		ContentTypeNosniff: true,
		BrowserXssFilter:   true,
		ReferrerPolicy:     "strict-origin-when-cross-origin",
	}

	// Only add SSL-specific headers if SSL is enabled on the application itself
	// (not when running behind a reverse proxy like nginx with SSL)
	if webconfig.SSL {
		secureConfig.SSLRedirect = true
		secureConfig.STSSeconds = 31536000
		secureConfig.STSIncludeSubdomains = true
	}

	// Apply security middleware
	router.Use(secure.New(secureConfig))

	server := &WebServer{
		Router: router,
		Config: webconfig,
	}

	// Add reverse proxy middleware for handling X-Forwarded headers
	router.Use(server.ReverseProxyMiddleware())

	server.setupRoutes()
	return server
}

// setupRoutes configures all HTTP routes
func (s *WebServer) setupRoutes() {
	// Handle favicon explicitly so it never falls through with a stray log line
	s.Router.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(http.StatusNotFound)
	})
	s.Router.GET("/robots.txt", func(c *gin.Context) {
		// Inline robots.txt with all allowed
		c.String(http.StatusOK, "User-agent: *\nDisallow:\n")
	})
	s.Router.GET("/ping", func(c *gin.Context) {
		c.String(200, "pong")
	})

	// The demo page
	s.Router.GET("/", s.homePage)

	// Everything else falls through to Gin's default 404.
}

// Start starts the web server with SSL support if configured
func (s *WebServer) Start() error {
	addr := ":" + strconv.Itoa(s.Config.ListenPort)
	s.StartTime = time.Now() // Set the start time for uptime calculations
	if s.Config.SSL {
		if s.Config.CertFile == "" || s.Config.KeyFile == "" {
			return errors.New("SSL enabled but cert_file or key_file not specified in config")
		}
		log.Printf("Starting HTTPS server on %s", addr)
		return s.Router.RunTLS(addr, s.Config.CertFile, s.Config.KeyFile)
	} else {
		log.Printf("Starting HTTP server on %s", addr)
		return s.Router.Run(addr)
	}
}

// ReverseProxyMiddleware handles X-Forwarded headers when running behind a reverse proxy
func (s *WebServer) ReverseProxyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		// Handle X-Forwarded-Proto to detect if the original request was HTTPS
		if proto := c.GetHeader("X-Forwarded-Proto"); proto == "https" {
			c.Request.URL.Scheme = "https"
		}

		// Handle X-Real-IP to get the real client IP
		if realIP := c.GetHeader("X-Real-IP"); realIP != "" {
			c.Request.RemoteAddr = realIP + ":0"
		}

		// Handle X-Forwarded-Host to get the original host
		if host := c.GetHeader("X-Forwarded-Host"); host != "" {
			c.Request.Host = host
		}

		c.Next()
	}
}

func (s *WebServer) ApacheLogFormat() gin.HandlerFunc {
	return gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		return fmt.Sprintf(`%s - - [%s] "%s %s %s" %d %d "%s" "%s"`+"\n",
			param.ClientIP,
			param.TimeStamp.Format("02/Jan/2006:15:04:05 -0700"),
			param.Method,
			param.Path,
			param.Request.Proto,
			param.StatusCode,
			param.BodySize,
			param.Request.Referer(),
			param.Request.UserAgent(),
		)
	})
}
