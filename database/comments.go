package database

import (
	"errors"

	"gorm.io/gorm"
)

// AddComment attaches a comment by an authenticated user to a post. The
// whole operation runs in one transaction so a comment can never outlive a
// post deleted concurrently.
func AddComment(postID uint, author *User, text string) (*Comment, error) {
	comment := Comment{
		PostID:   postID,
		AuthorID: author.ID,
		Text:     text,
	}

	err := GetDB().Transaction(func(tx *gorm.DB) error {
		var post Post
		if err := tx.First(&post, postID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		return tx.Create(&comment).Error
	})
	if err != nil {
		return nil, err
	}

	comment.Author = *author
	return &comment, nil
}

// DeleteComment removes a single comment. The administrator may delete any
// comment regardless of who wrote it.
func DeleteComment(id uint) error {
	result := GetDB().Unscoped().Delete(&Comment{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
