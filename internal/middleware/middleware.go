package middleware

import (
	"context"
	"crypto/sha256"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"innkeeper/internal/cache"
	"innkeeper/internal/logger"
	"innkeeper/internal/metrics"
	"innkeeper/internal/repository"
)

// Ctx key and helpers for authenticated user id
// Using unexported type to avoid collisions

type ctxKey string

const userIDKey ctxKey = "user_id"

func ContextWithUserID(ctx context.Context, userID int64) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (int64, bool) {
	v := ctx.Value(userIDKey)
	if v == nil {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

// CORS middleware for cross-origin requests from the dashboard frontend
func CORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}

		c.Next()
	}
}

// Logger middleware for structured request logging
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		latency := time.Since(start)
		userID, exists := c.Get("user_id")

		logFields := []any{
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status_code", c.Writer.Status(),
			"latency_ms", latency.Milliseconds(),
			"client_ip", c.ClientIP(),
		}

		if exists {
			logFields = append(logFields, "user_id", userID)
		}

		if c.Writer.Status() >= 400 {
			if len(c.Errors) > 0 {
				logFields = append(logFields, "error", c.Errors.String())
			}
			logger.Get().Error("Request completed with error", logFields...)
		} else {
			logger.Get().Debug("Request completed", logFields...)
		}
	}
}

// Recovery middleware converts panics into 500 responses with full logging
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Get().Error("PANIC recovered",
			"panic", recovered,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"query", c.Request.URL.RawQuery,
			"client_ip", c.ClientIP(),
		)

		if !c.Writer.Written() {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
	})
}

// Metrics middleware records request counts and latency per route.
// The route template is used rather than the raw path so ids do not
// explode label cardinality.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}

		metrics.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			route,
			strconv.Itoa(c.Writer.Status()),
		).Inc()
		metrics.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			route,
		).Observe(time.Since(start).Seconds())
	}
}

// BasicAuth authenticates staff via HTTP Basic Auth, checking the Valkey
// cache first and falling back to the database
func BasicAuth(userRepo *repository.UserRepository, cacheClient *cache.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Header("WWW-Authenticate", "Basic realm=\"Restricted\"")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		ctx := c.Request.Context()

		hash := sha256.Sum256([]byte(username + ":" + password))
		digest := fmt.Sprintf("%x", hash)

		if cacheClient != nil {
			if cached, err := cacheClient.GetUserIDByAuth(ctx, digest); err == nil && cached != "" {
				if userID, perr := strconv.ParseInt(cached, 10, 64); perr == nil {
					c.Set("user_id", userID)
					c.Request = c.Request.WithContext(ContextWithUserID(ctx, userID))
					c.Next()
					return
				}
			}
		}

		user, err := userRepo.GetByEmail(ctx, username)
		if err != nil || user == nil || !user.IsActive {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		passwordHash := sha256.Sum256([]byte(password))
		if fmt.Sprintf("%x", passwordHash) != user.PasswordHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}

		if cacheClient != nil {
			if err := cacheClient.SetUserIDByAuth(ctx, digest, strconv.FormatInt(user.UserID, 10)); err != nil {
				logger.Get().Warn("Failed to cache credentials", "error", err)
			}
		}

		go func(id int64) {
			bg, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := userRepo.TouchLastLogin(bg, id); err != nil {
				logger.Get().Warn("Failed to record last login", "error", err)
			}
		}(user.UserID)

		c.Set("user_id", user.UserID)
		c.Request = c.Request.WithContext(ContextWithUserID(ctx, user.UserID))

		c.Next()
	}
}
