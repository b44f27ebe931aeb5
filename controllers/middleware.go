package controllers

import (
	"fmt"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"stockfolio/api"
)

// RequireAuth validates the bearer token and stores the caller's user id in
// the request context.
func RequireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	const prefix = "Bearer "

	if strings.HasPrefix(header, prefix) {
		token, err := jwt.Parse(strings.TrimPrefix(header, prefix), func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected JWT signing method: %v", token.Header["alg"])
			}

			return []byte(os.Getenv("JWT_SECRET")), nil
		})

		if err == nil && token.Valid {
			if claims, ok := token.Claims.(jwt.MapClaims); ok {
				if sub, ok := claims["sub"].(string); ok {
					if id, err := strconv.ParseUint(sub, 10, 32); err == nil {
						c.Set("userID", uint(id))
						c.Next()
						return
					}
				}
			}
		}
	}

	api.ResultCustomError(c, http.StatusForbidden, []string{"accessDenied"})
	c.Abort()
}

func CurrentUserID(c *gin.Context) uint {
	return c.GetUint("userID")
}

// SignToken issues a bearer token for the given user.
func SignToken(userID uint) (string, error) {
	claims := jwt.MapClaims{
		"sub": strconv.FormatUint(uint64(userID), 10),
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(7 * 24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

// RequestLogger tags every request with an id and logs its outcome.
func RequestLogger(logger *zap.SugaredLogger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := uuid.NewString()
		c.Set("requestID", requestID)
		c.Writer.Header().Set("X-Request-ID", requestID)

		start := time.Now()
		c.Next()

		logger.Infow("request",
			"id", requestID,
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
