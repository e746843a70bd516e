package site

import (
	"context"
	"log"
	"net/http"

	"github.com/Sprachey/Blogspot/database"
)

type SessionCookieName string

const AuthenticatedUserCookieName = SessionCookieName("authenticated_user")
const AuthenticatedUserTokenCookieName = SessionCookieName("authenticated_user_token")

func getSignedInUserOrNil(r *http.Request) *database.User {
	user, _ := r.Context().Value(AuthenticatedUserCookieName).(*database.User)
	return user
}

func getSignedInUserOrFail(r *http.Request) *database.User {
	user := getSignedInUserOrNil(r)
	if user == nil {
		log.Fatalf("Expected user to be signed in but it wasn't")
	}

	return user
}

// TryPutUserInContextMiddleware resolves the session cookie to a user on
// every request. Anything that doesn't resolve (no cookie, empty token,
// token no longer bound to a user) leaves the request anonymous and clears
// the stale cookie.
func TryPutUserInContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(string(AuthenticatedUserTokenCookieName))
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		user, err := database.UserBySessionToken(cookie.Value)
		if err != nil {
			// Clear the invalid cookie
			http.SetCookie(w, &http.Cookie{
				Name:   string(AuthenticatedUserTokenCookieName),
				Value:  "",
				Path:   "/",
				MaxAge: -1,
			})
			next.ServeHTTP(w, r)
			return
		}

		ctx := context.WithValue(r.Context(), AuthenticatedUserCookieName, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireAdminMiddleware guards the post and comment management routes.
// Anonymous visitors and regular accounts both get a hard 403, before the
// handler body runs.
func RequireAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user := getSignedInUserOrNil(r)
		if user == nil || !user.IsAdmin {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
