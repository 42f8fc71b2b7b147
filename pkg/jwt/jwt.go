package jwt

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Claims incluye los claims estándar JWT más el snapshot del usuario actual.
// El snapshot es el objeto user tal como lo devolvió el API de flota: la
// cookie de sesión es la única "clave de almacenamiento" de la consola.
type Claims struct {
	jwt.RegisteredClaims
	User json.RawMessage `json:"user"`
}

// Generate genera un token firmado que embebe el snapshot serializado del usuario.
func Generate(secret, issuer string, expMinutes int, user json.RawMessage) (string, error) {
	if secret == "" {
		return "", fmt.Errorf("jwt: secret vacío")
	}
	if len(user) == 0 {
		return "", fmt.Errorf("jwt: snapshot de usuario vacío")
	}
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(expMinutes) * time.Minute)),
		},
		User: user,
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// Parse valida el token y devuelve el snapshot del usuario.
// Retorna error si el token es inválido, expirado, con firma incorrecta
// o sin snapshot; el llamador debe tratar cualquiera de esos casos como
// "sin sesión" y purgar la cookie.
func Parse(secret, tokenString string) (json.RawMessage, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret vacío")
	}
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("claims inválidos")
	}
	if len(claims.User) == 0 {
		return nil, fmt.Errorf("snapshot de usuario ausente")
	}
	return claims.User, nil
}
