package sqldb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"loanintake-backend/internal/domain/application"
	"loanintake-backend/internal/storage"

	"gorm.io/gorm"
)

// ApplicationRepository is the structured backend: gorm over SQLite (or
// MySQL via the same dialector-agnostic code). Identity comes from the
// store's auto-increment; the database's own transactionality covers the
// atomicity rules.
type ApplicationRepository struct{ db *gorm.DB }

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{db: db}
}

// Init creates the applications table if missing. Safe to call repeatedly.
func (r *ApplicationRepository) Init(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&application.LoanApplication{})
}

func (r *ApplicationRepository) Create(ctx context.Context, a *application.LoanApplication) error {
	a.ID = 0 // store-assigned, never caller-supplied
	if a.SubmittedAt.IsZero() {
		a.SubmittedAt = time.Now().UTC()
	}
	if a.Status == "" {
		a.Status = application.StatusPending
	}
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}

func (r *ApplicationRepository) List(ctx context.Context) ([]application.LoanApplication, error) {
	out := []application.LoanApplication{}
	err := r.db.WithContext(ctx).Order("id DESC").Find(&out).Error
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id uint64) (*application.LoanApplication, error) {
	var out application.LoanApplication
	res := r.db.WithContext(ctx).Where("id = ?", id).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, application.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

func (r *ApplicationRepository) FindByEmail(ctx context.Context, email string) (*application.LoanApplication, error) {
	var out application.LoanApplication
	res := r.db.WithContext(ctx).Where("LOWER(email) = LOWER(?)", email).First(&out)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return nil, application.ErrNotFound
	}
	if res.Error != nil {
		return nil, res.Error
	}
	return &out, nil
}

// Update merges the patch inside a transaction so the read and the write
// cannot interleave with another mutation.
func (r *ApplicationRepository) Update(ctx context.Context, id uint64, p application.Patch) (*application.LoanApplication, error) {
	var out application.LoanApplication
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ?", id).First(&out)
		if errors.Is(res.Error, gorm.ErrRecordNotFound) {
			return application.ErrNotFound
		}
		if res.Error != nil {
			return res.Error
		}
		p.Apply(&out)
		if err := tx.Save(&out).Error; err != nil {
			return fmt.Errorf("%w: %v", storage.ErrWrite, err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *ApplicationRepository) DeleteByID(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&application.LoanApplication{})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, res.Error)
	}
	// zero rows affected just means the id was already gone
	return nil
}

func (r *ApplicationRepository) ClearPaysheet(ctx context.Context, id uint64) error {
	res := r.db.WithContext(ctx).
		Model(&application.LoanApplication{}).
		Where("id = ?", id).
		Update("paysheet_uri", nil)
	if res.Error != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, res.Error)
	}
	return nil
}

func (r *ApplicationRepository) DeleteAll(ctx context.Context) error {
	if err := r.db.WithContext(ctx).Exec("DELETE FROM applications").Error; err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}
