package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/BruksfildServices01/event-scheduler/internal/config"
	"github.com/BruksfildServices01/event-scheduler/internal/httperr"
)

const (
	ContextUserID         = "userID"
	ContextOrganizationID = "organizationID"
	ContextUserRole       = "userRole"
)

// StaffClaims é o payload emitido pelo serviço de contas. O sub numérico
// sobrepõe o Subject (string) de RegisteredClaims na decodificação.
type StaffClaims struct {
	UserID         uint   `json:"sub"`
	OrganizationID uint   `json:"organizationId"`
	Role           string `json:"role"`
	jwt.RegisteredClaims
}

// AuthMiddleware aceita só HS256 assinado com JWTSecret; exp é validado
// quando presente.
func AuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	secret := []byte(cfg.JWTSecret)

	keyFunc := func(*jwt.Token) (any, error) {
		return secret, nil
	}

	return func(c *gin.Context) {
		raw, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			httperr.Unauthorized(c, "missing_token", "Token de acesso ausente.")
			c.Abort()
			return
		}

		var claims StaffClaims
		if _, err := parser.ParseWithClaims(raw, &claims, keyFunc); err != nil {
			httperr.Unauthorized(c, "invalid_token", "Token inválido ou expirado.")
			c.Abort()
			return
		}

		if claims.UserID == 0 || claims.OrganizationID == 0 {
			httperr.Unauthorized(c, "invalid_token_payload", "Token sem usuário ou organização.")
			c.Abort()
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextOrganizationID, claims.OrganizationID)
		c.Set(ContextUserRole, claims.Role)

		c.Next()
	}
}

func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
