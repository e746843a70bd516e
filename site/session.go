package site

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"net/http"

	"github.com/Sprachey/Blogspot/database"
)

func generateAuthToken() (string, error) {
	const tokenLength = 32
	tokenBytes := make([]byte, tokenLength)
	_, err := rand.Read(tokenBytes)
	if err != nil {
		return "", err
	}
	token := base64.URLEncoding.EncodeToString(tokenBytes)
	return token, nil
}

// beginSession binds a fresh session token to the user and hands it to the
// browser. Used on login and on registration (auto-login).
func beginSession(w http.ResponseWriter, user *database.User) error {
	token, err := generateAuthToken()
	if err != nil {
		return err
	}

	if err := database.SaveSessionToken(user.ID, token); err != nil {
		return err
	}

	http.SetCookie(w, &http.Cookie{
		Name:     string(AuthenticatedUserTokenCookieName),
		Value:    token,
		Path:     "/",
		HttpOnly: true,
	})

	return nil
}

// endSession drops the session unconditionally. Logging out while already
// anonymous is not an error.
func endSession(w http.ResponseWriter, r *http.Request) {
	if user := getSignedInUserOrNil(r); user != nil {
		if err := database.ClearSessionToken(user.ID); err != nil {
			log.Printf("Failed to clear session token for user %d: %v", user.ID, err)
		}
	}

	http.SetCookie(w, &http.Cookie{
		Name:   string(AuthenticatedUserTokenCookieName),
		Value:  "",
		Path:   "/",
		MaxAge: -1,
	})
}
