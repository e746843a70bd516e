package database

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// RegisterUser creates a new account. The very first account registered
// becomes the administrator. Returns ErrConflict when the email is taken.
func RegisterUser(email, password, name string) (*User, error) {
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := User{
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}

	err = GetDB().Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&User{}).Count(&count).Error; err != nil {
			return err
		}
		user.IsAdmin = count == 0

		if err := tx.Create(&user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrConflict
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &user, nil
}

// AuthenticateUser checks an email/password pair against the stored hash.
func AuthenticateUser(email, password string) (*User, error) {
	if email == "" {
		return nil, ErrUnknownEmail
	}

	var user User
	result := GetDB().Where(&User{Email: email}).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrUnknownEmail
		}
		return nil, result.Error
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return nil, ErrWrongPassword
	}

	return &user, nil
}

// SaveSessionToken binds a session token to the user for the identity
// resolver to pick up on subsequent requests.
func SaveSessionToken(userID uint, token string) error {
	result := GetDB().Model(&User{}).Where("id = ?", userID).
		Update("session_token", token)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ClearSessionToken logs the user out everywhere. Clearing an already empty
// token is not an error.
func ClearSessionToken(userID uint) error {
	return GetDB().Model(&User{}).Where("id = ?", userID).
		Update("session_token", "").Error
}

// UserBySessionToken resolves a session token back to its user. An empty or
// dangling token resolves to ErrNotFound, never to a user.
func UserBySessionToken(token string) (*User, error) {
	if token == "" {
		return nil, ErrNotFound
	}

	var user User
	result := GetDB().Where(&User{SessionToken: token}).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}

	return &user, nil
}
