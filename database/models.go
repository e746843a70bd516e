package database

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex"`
	PasswordHash []byte
	Name         string
	IsAdmin      bool
	SessionToken string    `gorm:"index"`
	Posts        []Post    `gorm:"foreignKey:AuthorID"`
	Comments     []Comment `gorm:"foreignKey:AuthorID"`
}

type Post struct {
	gorm.Model
	AuthorID uint `gorm:"index"`
	Author   User
	Title    string `gorm:"uniqueIndex"`
	Subtitle string
	// Date is the calendar date the post was created. It is never touched
	// again, even when the post is edited.
	Date     datatypes.Date
	Body     string `gorm:"type:text"`
	ImageURL string
	Comments []Comment `gorm:"foreignKey:PostID;constraint:OnDelete:CASCADE"`
}

type Comment struct {
	gorm.Model
	PostID   uint `gorm:"index"`
	AuthorID uint `gorm:"index"`
	Author   User
	Text     string `gorm:"type:text"`
}
