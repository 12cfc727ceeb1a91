package sqlite

import (
	"context"
	"simpleblog/cmd/internal/domain/entity"
	"time"

	"github.com/labstack/gommon/log"
	"gorm.io/gorm"
)

const adminSecretBody = "The admin's secret diary. Only level 2 accounts may read past this line: " +
	"the deploy key is rotated every Friday and nobody remembers why."

// Seed inserts the development fixtures. Notes are inserted one by one so
// their ids follow insertion order.
func Seed(ctx context.Context, db *gorm.DB) error {
	now := time.Now().UTC().UnixMilli()
	notes := []*entity.Note{
		{
			Title:       "1",
			Body:        "222222222222222222222222222222222222222",
			Author:      "aaa",
			PublishedAt: time.Date(2021, 2, 27, 16, 44, 0, 0, time.UTC).UnixMilli(),
		},
		{Title: "a", Body: "c", Author: "d", PublishedAt: now, Permission: entity.PermissionUser},
		{
			Title:       "Admin's secret",
			Body:        adminSecretBody,
			Author:      "d",
			PublishedAt: now,
			Permission:  entity.PermissionAdmin,
			ViewNum:     1,
			CommentNum:  1,
		},
		{Title: "love", Body: "python", Author: "very", PublishedAt: now},
	}

	users := []*entity.User{
		{Username: "1", Password: "1", Permission: entity.PermissionUser},
		{Username: "admin", Password: "admin", Permission: entity.PermissionAdmin},
		{Username: "2", Password: "123456", Permission: entity.PermissionUser},
	}

	comments := []*entity.Comment{
		{BelongTo: 3, Nickname: "niconiconi", Body: "grass (a kind of plant)", PublishedAt: now},
	}

	return db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, note := range notes {
			if err := tx.Create(note).Error; err != nil {
				return err
			}
		}

		if err := tx.Create(users).Error; err != nil {
			return err
		}

		if err := tx.Create(comments).Error; err != nil {
			return err
		}

		log.Infof("seeded %d notes, %d users and %d comments", len(notes), len(users), len(comments))
		return nil
	})
}
