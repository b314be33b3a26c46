package collection

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

// GormRemote mem-persist mutasi dispatcher ke PostgreSQL lewat GORM.
// Scope (opsional) menambah WHERE tenant ke setiap query.
type GormRemote[T any] struct {
	DB       *gorm.DB
	Schema   Schema[T]
	IDColumn string // mis. "fatwa_id"
	Scope    func(*gorm.DB) *gorm.DB
}

func (r GormRemote[T]) scoped(db *gorm.DB) *gorm.DB {
	if r.Scope != nil {
		return r.Scope(db)
	}
	return db
}

func (r GormRemote[T]) Create(ctx context.Context, rec T) (T, error) {
	// PK uuid diisi DB (gen_random_uuid) dan dikembalikan via RETURNING
	if err := r.DB.WithContext(ctx).Create(&rec).Error; err != nil {
		return rec, err
	}
	return rec, nil
}

func (r GormRemote[T]) Update(ctx context.Context, id string, rec T) (T, error) {
	var existing T
	q := r.scoped(r.DB.WithContext(ctx)).Where(r.IDColumn+" = ?", id)
	if err := q.First(&existing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return rec, ErrNotFound
		}
		return rec, err
	}

	r.Schema.SetID(&rec, id)
	if err := r.DB.WithContext(ctx).Save(&rec).Error; err != nil {
		return rec, err
	}
	return rec, nil
}

func (r GormRemote[T]) Delete(ctx context.Context, id string) error {
	var zero T
	res := r.scoped(r.DB.WithContext(ctx)).Where(r.IDColumn+" = ?", id).Delete(&zero)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
