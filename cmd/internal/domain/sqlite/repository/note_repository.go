package repository

import (
	"context"
	"errors"
	"simpleblog/cmd/internal/domain/entity"

	"gorm.io/gorm"
)

type DefaultNoteRepository struct {
	db *gorm.DB
}

func NewNoteRepository(db *gorm.DB) *DefaultNoteRepository {
	return &DefaultNoteRepository{db: db}
}

// FindAllNewestFirst returns every note, most recently inserted first.
func (d *DefaultNoteRepository) FindAllNewestFirst(ctx context.Context) ([]*entity.Note, error) {
	var notes []*entity.Note
	err := d.db.WithContext(ctx).
		Order("id DESC").
		Find(&notes).Error
	if err != nil {
		return nil, err
	}
	return notes, nil
}

func (d *DefaultNoteRepository) FindByID(ctx context.Context, id int) (*entity.Note, error) {
	var note entity.Note
	err := d.db.WithContext(ctx).First(&note, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}

	if err != nil {
		return nil, err
	}
	return &note, nil
}

func (d *DefaultNoteRepository) Save(ctx context.Context, note *entity.Note) error {
	return d.db.WithContext(ctx).Save(note).Error
}

// UpdateContent rewrites the editable columns of a note. Counters and
// permission are left as stored.
func (d *DefaultNoteRepository) UpdateContent(ctx context.Context, id int, title, body, author string, publishedAt int64) error {
	res := d.db.WithContext(ctx).
		Model(&entity.Note{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"title":        title,
			"body":         body,
			"author":       author,
			"published_at": publishedAt,
		})
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}

func (d *DefaultNoteRepository) IncrementViews(ctx context.Context, id int) error {
	return incrementCounter(d.db.WithContext(ctx), id, "view_num")
}

// incrementCounter bumps a note counter in place so concurrent callers
// never lose an update.
func incrementCounter(tx *gorm.DB, noteID int, column string) error {
	res := tx.Model(&entity.Note{}).
		Where("id = ?", noteID).
		UpdateColumn(column, gorm.Expr(column+" + ?", 1))
	if res.Error != nil {
		return res.Error
	}

	if res.RowsAffected == 0 {
		return ErrNoteNotFound
	}
	return nil
}
