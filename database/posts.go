package database

import (
	"errors"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// PostInput carries the four fields the administrator can set on a post.
// Author and date are fixed at creation time.
type PostInput struct {
	Title    string
	Subtitle string
	Body     string
	ImageURL string
}

// ListPosts returns every post in insertion order, with authors loaded.
func ListPosts() ([]Post, error) {
	var posts []Post
	result := GetDB().Preload("Author").Order("id ASC").Find(&posts)
	if result.Error != nil {
		return nil, result.Error
	}
	return posts, nil
}

// GetPost loads a post with its author and comments (oldest comment first).
func GetPost(id uint) (*Post, error) {
	var post Post
	result := GetDB().Preload("Author").
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("comments.id ASC")
		}).
		Preload("Comments.Author").
		First(&post, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, result.Error
	}
	return &post, nil
}

// CreatePost persists a new post authored by the administrator. The
// publication date is stamped with the calendar date of the call. A title
// already used by another post surfaces as ErrConflict from the store's
// unique index, so two concurrent creates cannot both succeed.
func CreatePost(input PostInput, author *User) (*Post, error) {
	post := Post{
		AuthorID: author.ID,
		Title:    input.Title,
		Subtitle: input.Subtitle,
		Date:     datatypes.Date(time.Now()),
		Body:     input.Body,
		ImageURL: input.ImageURL,
	}

	err := GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&post).Error; err != nil {
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

	post.Author = *author
	return &post, nil
}

// UpdatePost mutates title, subtitle, image and body. The author reference
// and the publication date never change after creation.
func UpdatePost(id uint, input PostInput) (*Post, error) {
	var post Post

	err := GetDB().Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		post.Title = input.Title
		post.Subtitle = input.Subtitle
		post.ImageURL = input.ImageURL
		post.Body = input.Body

		if err := tx.Save(&post).Error; err != nil {
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

	return &post, nil
}

// DeletePost removes a post and all of its comments in one transaction.
func DeletePost(id uint) error {
	return GetDB().Transaction(func(tx *gorm.DB) error {
		var post Post
		if err := tx.First(&post, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Unscoped().Where("post_id = ?", post.ID).Delete(&Comment{}).Error; err != nil {
			return err
		}
		return tx.Unscoped().Delete(&post).Error
	})
}
