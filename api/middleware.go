package api

import (
	"net/http"
	"strings"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/budget-web/internal/logging"
	"github.com/carson-networks/budget-web/internal/service"
)

const viewCookieName = "budget_view"

// sessionlessPrefixes are served without a view session: health checks and the
// generated API documentation.
var sessionlessPrefixes = []string{"/v1/status", "/docs", "/openapi", "/schemas/"}

func needsViewSession(path string) bool {
	for _, prefix := range sessionlessPrefixes {
		if strings.HasPrefix(path, prefix) {
			return false
		}
	}
	return true
}

// corsMiddleware lets the listed front-end origins call the view API with credentials.
func corsMiddleware(allowedOrigins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			if allowed[origin] {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Access-Control-Allow-Credentials", "true")
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
			w.Header().Set("Access-Control-Max-Age", "300")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusOK)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// viewSessionMiddleware attaches the browser's view session to the request context,
// issuing a new view-session cookie when the request has none or an invalid one.
func viewSessionMiddleware(registry *service.Registry, cookieMaxAge int, logger *logrus.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !needsViewSession(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			id := viewIDFromRequest(r)
			if id == "" {
				newID, err := uuid.NewV4()
				if err != nil {
					logger.WithError(err).Error("ViewSessionMiddleware.uuid")
					http.Error(w, "internal error", http.StatusInternalServerError)
					return
				}
				id = newID.String()
				http.SetCookie(w, &http.Cookie{
					Name:     viewCookieName,
					Value:    id,
					Path:     "/",
					MaxAge:   cookieMaxAge,
					HttpOnly: true,
					Secure:   r.TLS != nil,
					SameSite: http.SameSiteLaxMode,
				})
			}

			view, err := registry.Get(r.Context(), id)
			if err != nil {
				logger.WithError(err).WithField("viewID", id).Error("ViewSessionMiddleware.registry")
				http.Error(w, "internal error", http.StatusInternalServerError)
				return
			}

			if logData := logging.GetLogData(r.Context()); logData != nil {
				logData.AddData("viewID", id)
			}
			next.ServeHTTP(w, r.WithContext(service.WithViewSession(r.Context(), view)))
		})
	}
}

func viewIDFromRequest(r *http.Request) string {
	cookie, err := r.Cookie(viewCookieName)
	if err != nil {
		return ""
	}
	id, err := uuid.FromString(strings.TrimSpace(cookie.Value))
	if err != nil || id.IsNil() {
		return ""
	}
	return id.String()
}
