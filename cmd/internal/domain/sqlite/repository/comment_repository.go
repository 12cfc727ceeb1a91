package repository

import (
	"context"
	"simpleblog/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultCommentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) *DefaultCommentRepository {
	return &DefaultCommentRepository{db: db}
}

func (c *DefaultCommentRepository) FindByNoteID(ctx context.Context, noteID int) ([]*entity.Comment, error) {
	comments := []*entity.Comment{}
	err := c.db.WithContext(ctx).
		Where("belong_to = ?", noteID).
		Order("id").
		Find(&comments).Error
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// CreateAndCount stores the comment and bumps the parent's comment counter
// in one transaction. Returns ErrNoteNotFound, storing nothing, when the
// parent note does not exist.
func (c *DefaultCommentRepository) CreateAndCount(ctx context.Context, comment *entity.Comment) error {
	return c.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(comment).Error; err != nil {
			return err
		}
		return incrementCounter(tx, comment.BelongTo, "comment_num")
	})
}
