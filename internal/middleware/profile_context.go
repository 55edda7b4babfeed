package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const profileKey ctxKey = "profile"

// ProfileHeader identifica el perfil (navegador/dispositivo) dueño del storage.
const ProfileHeader = "X-Profile-ID"

// DefaultProfile se usa cuando el request no trae header.
const DefaultProfile = "default"

// ProfileContext resuelve el namespace de storage del request.
// No es autenticación: solo separa los datos de cada cliente, como localStorage.
func ProfileContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profile := strings.TrimSpace(r.Header.Get(ProfileHeader))
		if profile == "" {
			profile = DefaultProfile
		}
		ctx := context.WithValue(r.Context(), profileKey, profile)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetProfile devuelve el perfil del contexto, o DefaultProfile si no pasó por el middleware.
func GetProfile(ctx context.Context) string {
	if p, ok := ctx.Value(profileKey).(string); ok && p != "" {
		return p
	}
	return DefaultProfile
}
