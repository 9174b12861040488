package middleware

import (
	"net/http"
	"strings"

	"github.com/jsaerys/boodfood/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

const (
	ClaimsKey = "claims"
)

// tokenClaims is the wire shape of the access token payload.
type tokenClaims struct {
	UserID string `json:"user_id"`
	Nombre string `json:"nombre"`
	Rol    string `json:"rol"`
	jwt.RegisteredClaims
}

// JWTClaims is the validated principal attached to the request context.
type JWTClaims struct {
	UserID uuid.UUID
	Nombre string
	Rol    string
}

// AdminGate validates the Bearer token and requires the admin role. Every
// failure mode answers the same 403 so the gate leaks nothing about why.
func AdminGate(secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			abortNoAutorizado(c)
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &tokenClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			abortNoAutorizado(c)
			return
		}
		if claims.Rol != "admin" {
			abortNoAutorizado(c)
			return
		}
		userID, err := uuid.Parse(claims.UserID)
		if err != nil {
			abortNoAutorizado(c)
			return
		}

		c.Set(ClaimsKey, &JWTClaims{UserID: userID, Nombre: claims.Nombre, Rol: claims.Rol})
		c.Next()
	}
}

func abortNoAutorizado(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("No autorizado"))
}

// GetClaims is a helper to retrieve the typed principal from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}
