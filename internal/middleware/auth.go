package middleware

import (
	"context"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/khaild19/10AI/internal/consts"
	"github.com/khaild19/10AI/internal/repository"
	"github.com/khaild19/10AI/internal/service"
	"github.com/khaild19/10AI/internal/utils"

	"github.com/gin-gonic/gin"
)

var (
	// userID (uint) -> cachedStatus
	statusCache sync.Map
)

const statusCacheTTL = 1 * time.Minute

type cachedStatus struct {
	Active    bool
	ExpiresAt time.Time
}

func statusKey(userID uint) string {
	return service.RedisKey("auth", "user_status", strconv.FormatUint(uint64(userID), 10))
}

// ClearUserStatusCache drops the cached active flag for userID.
func ClearUserStatusCache(userID uint) {
	statusCache.Delete(userID)

	if redisClient := service.GetRedisClient(); redisClient != nil {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = redisClient.Del(ctx, statusKey(userID)).Err()
	}
}

// tokenFromRequest prefers "Authorization: Bearer <token>" and falls back to
// the session cookie. malformed reports a header that is present but not a
// bearer token.
func tokenFromRequest(c *gin.Context) (token string, malformed bool) {
	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", true
		}
		return strings.TrimSpace(parts[1]), false
	}
	if cookie, err := c.Cookie(consts.TokenCookieName); err == nil && cookie != "" {
		return cookie, false
	}
	return "", false
}

func JWTAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, malformed := tokenFromRequest(c)
		if malformed {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "malformed authorization header"})
			c.Abort()
			return
		}
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			c.Abort()
			return
		}

		claims, err := utils.ParseLoginToken(token)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "token is invalid or expired"})
			c.Abort()
			return
		}

		c.Set(consts.ContextUserID, claims.ID)
		c.Set(consts.ContextUsername, claims.Username)
		c.Next()
	}
}

// OptionalAuth sets the user id when a valid token is present and never aborts.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token, malformed := tokenFromRequest(c); token != "" && !malformed {
			if claims, err := utils.ParseLoginToken(token); err == nil {
				c.Set(consts.ContextUserID, claims.ID)
				c.Set(consts.ContextUsername, claims.Username)
			}
		}
		c.Next()
	}
}

// UserStatusCheck rejects tokens of users that were deleted or deactivated
// after the token was issued. Lookups are cached in redis when available and
// in process memory otherwise.
func UserStatusCheck(userStore repository.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, exists := c.Get(consts.ContextUserID)
		if !exists {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "user identity missing"})
			c.Abort()
			return
		}
		uid, ok := userID.(uint)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid user id type"})
			c.Abort()
			return
		}

		var (
			active      bool
			statusFound bool
		)

		if redisClient := service.GetRedisClient(); redisClient != nil {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			cached, err := redisClient.Get(ctx, statusKey(uid)).Result()
			cancel()
			if err == nil {
				if parsed, parseErr := strconv.ParseBool(cached); parseErr == nil {
					active = parsed
					statusFound = true
					statusCache.Store(uid, cachedStatus{Active: active, ExpiresAt: time.Now().Add(statusCacheTTL)})
				}
			}
		}

		if !statusFound {
			if val, ok := statusCache.Load(uid); ok {
				if cached, typeOk := val.(cachedStatus); typeOk {
					if time.Now().Before(cached.ExpiresAt) {
						active = cached.Active
						statusFound = true
					} else {
						statusCache.Delete(uid)
					}
				}
			}
		}

		if !statusFound {
			user, err := userStore.FindByID(uid)
			if err != nil {
				c.JSON(http.StatusUnauthorized, gin.H{"error": "user does not exist"})
				c.Abort()
				return
			}
			active = user.IsActive

			statusCache.Store(uid, cachedStatus{Active: active, ExpiresAt: time.Now().Add(statusCacheTTL)})
			if redisClient := service.GetRedisClient(); redisClient != nil {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second)
				_ = redisClient.Set(ctx, statusKey(uid), strconv.FormatBool(active), statusCacheTTL).Err()
				cancel()
			}
		}

		if !active {
			c.JSON(http.StatusForbidden, gin.H{"error": "account is disabled"})
			c.Abort()
			return
		}
		c.Next()
	}
}
