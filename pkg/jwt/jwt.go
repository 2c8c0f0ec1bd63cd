package jwt

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL vigencia fija del token de acceso.
const TokenTTL = 8 * time.Hour

// DefaultRole claim de rol cuando el usuario no tiene rol resuelto.
const DefaultRole = "User"

// Config parámetros de firma. La clave debe validarse al arranque (ver pkg/config);
// aquí solo se rechaza vacía como última defensa.
type Config struct {
	Secret   string
	Issuer   string
	Audience string
}

// Claims incluye los claims estándar JWT más los campos propios de la aplicación.
// Se añaden CompanyID y Role para que el middleware pueda tomar decisiones sin consultar la DB.
type Claims struct {
	jwt.RegisteredClaims
	Email     string `json:"email"`
	CompanyID string `json:"companyId"`
	Role      string `json:"role"`
}

// Generate genera un token JWT firmado con sub=userID, email, companyId, role,
// jti único, issuer, audience y expiración de 8 horas desde la emisión.
func Generate(cfg Config, userID, email, companyID, roleName string) (string, error) {
	if cfg.Secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if roleName == "" {
		roleName = DefaultRole
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    cfg.Issuer,
			Audience:  jwt.ClaimStrings{cfg.Audience},
			Subject:   userID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
		Email:     email,
		CompanyID: companyID,
		Role:      roleName,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(cfg.Secret))
}

// Parse valida firma, expiración, issuer y audience, y devuelve los claims.
func Parse(cfg Config, tokenString string) (*Claims, error) {
	if cfg.Secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(cfg.Secret), nil
	}, jwt.WithIssuer(cfg.Issuer), jwt.WithAudience(cfg.Audience))
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	return claims, nil
}
