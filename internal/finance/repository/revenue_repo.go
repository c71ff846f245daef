package repository

import (
	"github.com/bitfantasy/nimo-scm/internal/finance/entity"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type RevenueRepository struct {
	db *gorm.DB
}

func NewRevenueRepository(db *gorm.DB) *RevenueRepository {
	return &RevenueRepository{db: db}
}

// Upsert inserts the record or, when the year already exists, replaces its
// revenue and expenditure.
func (r *RevenueRepository) Upsert(rec *entity.RevenueRecord) error {
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "year"}},
		DoUpdates: clause.AssignmentColumns([]string{"revenue", "expenditure", "updated_at"}),
	}).Create(rec).Error
}

// UpsertAll applies Upsert to every record inside one transaction.
func (r *RevenueRepository) UpsertAll(recs []entity.RevenueRecord) error {
	if len(recs) == 0 {
		return nil
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		for i := range recs {
			if err := tx.Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "year"}},
				DoUpdates: clause.AssignmentColumns([]string{"revenue", "expenditure", "updated_at"}),
			}).Create(&recs[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// GetByYear returns the record stored for a year.
func (r *RevenueRepository) GetByYear(year int) (*entity.RevenueRecord, error) {
	var rec entity.RevenueRecord
	err := r.db.Where("year = ?", year).First(&rec).Error
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListRange returns records with from <= year <= to, year ascending.
// from/to of 0 leave that bound open.
func (r *RevenueRepository) ListRange(from, to int) ([]entity.RevenueRecord, error) {
	query := r.db.Model(&entity.RevenueRecord{})
	if from > 0 {
		query = query.Where("year >= ?", from)
	}
	if to > 0 {
		query = query.Where("year <= ?", to)
	}

	var recs []entity.RevenueRecord
	err := query.Order("year ASC").Find(&recs).Error
	return recs, err
}

// YearBounds returns the dataset's min and max year; ok is false when the
// table is empty.
func (r *RevenueRepository) YearBounds() (min, max int, ok bool, err error) {
	var result struct {
		Min *int
		Max *int
	}
	err = r.db.Model(&entity.RevenueRecord{}).
		Select("MIN(year) as min, MAX(year) as max").
		Scan(&result).Error
	if err != nil || result.Min == nil || result.Max == nil {
		return 0, 0, false, err
	}
	return *result.Min, *result.Max, true, nil
}

func (r *RevenueRepository) Count() (int64, error) {
	var total int64
	err := r.db.Model(&entity.RevenueRecord{}).Count(&total).Error
	return total, err
}
