package dbutil

import (
	"context"

	"gorm.io/gorm"
)

// UpdateByPK writes values to the row of model's table whose pkColumn equals
// id. A map is used so zero values (an empty address, year 0) are written
// too.
//
// When the UPDATE matches nothing the row is looked up again: if it is gone
// the result is gorm.ErrRecordNotFound, otherwise ErrConcurrencyConflict.
func UpdateByPK(ctx context.Context, db *gorm.DB, model any, pkColumn string, id uint, values map[string]any) error {
	res := db.WithContext(ctx).Model(model).Where(pkColumn+" = ?", id).Updates(values)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected > 0 {
		return nil
	}

	var n int64
	if err := db.WithContext(ctx).Model(model).Where(pkColumn+" = ?", id).Count(&n).Error; err != nil {
		return err
	}
	if n == 0 {
		return gorm.ErrRecordNotFound
	}
	return ErrConcurrencyConflict
}

// DeleteByPK removes one row by primary key. gorm.ErrRecordNotFound means
// there was nothing to delete.
func DeleteByPK(ctx context.Context, db *gorm.DB, model any, pkColumn string, id uint) error {
	res := db.WithContext(ctx).Where(pkColumn+" = ?", id).Delete(model)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
