package jwt

import (
	"sync"
	"time"

	"github.com/asistencia-qr/attendance-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

type Service interface {
	GenerateToken(userID string, username string, role user.Role, workerID *string) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(token string)
	IsTokenRevoked(token string) bool
}

type JWTService struct {
	secretKey     string
	expiration    string
	tokenAuth     *jwtauth.JWTAuth
	revokedTokens map[string]int64
	mu            sync.RWMutex
}

func NewJWTService(secretKey string, expiration string) Service {
	return &JWTService{
		secretKey:     secretKey,
		expiration:    expiration,
		tokenAuth:     jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		revokedTokens: make(map[string]int64),
	}
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func (j *JWTService) GenerateToken(userID string, username string, role user.Role, workerID *string) (string, int64, error) {
	expDuration, err := time.ParseDuration(j.expiration)
	if err != nil {
		return "", 0, err
	}
	expiresAt := time.Now().Add(expDuration).Unix()

	claims := map[string]interface{}{
		"id":      userID,
		"usuario": username,
		"rol":     string(role),
		"exp":     expiresAt,
	}
	if workerID != nil {
		claims["trabajador_id"] = *workerID
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken denylists a token until it would have expired on its own.
// Each call also sweeps entries whose tokens are past expiry, so the
// denylist never outgrows one expiration window of logouts.
func (j *JWTService) RevokeToken(token string) {
	now := time.Now()

	forgetAfter := now.Add(24 * time.Hour)
	if expDuration, err := time.ParseDuration(j.expiration); err == nil {
		forgetAfter = now.Add(expDuration)
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	for t, deadline := range j.revokedTokens {
		if deadline <= now.Unix() {
			delete(j.revokedTokens, t)
		}
	}
	j.revokedTokens[token] = forgetAfter.Unix()
}

func (j *JWTService) IsTokenRevoked(token string) bool {
	j.mu.RLock()
	defer j.mu.RUnlock()
	_, revoked := j.revokedTokens[token]
	return revoked
}
