package sqldb

import (
	"context"
	"errors"
	"fmt"

	"loanintake-backend/internal/storage"

	"gorm.io/gorm"
)

const loggedInSentinel = "true"

// sessionMarker is a tiny key/value row; one row for the logged-in flag and
// one for the remembered username.
type sessionMarker struct {
	Key   string `gorm:"primaryKey;column:key"`
	Value string `gorm:"type:text;not null"`
}

func (sessionMarker) TableName() string { return "session_markers" }

type SessionStore struct{ db *gorm.DB }

func NewSessionStore(db *gorm.DB) *SessionStore { return &SessionStore{db: db} }

func (s *SessionStore) Init(ctx context.Context) error {
	return s.db.WithContext(ctx).AutoMigrate(&sessionMarker{})
}

func (s *SessionStore) Save(ctx context.Context, username string) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []sessionMarker{
			{Key: "loggedIn", Value: loggedInSentinel},
			{Key: "username", Value: username},
		} {
			if err := tx.Save(&m).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, err)
	}
	return nil
}

func (s *SessionStore) Load(ctx context.Context) (string, bool, error) {
	var flag sessionMarker
	res := s.db.WithContext(ctx).Where("key = ?", "loggedIn").First(&flag)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return "", false, nil
	}
	if res.Error != nil {
		return "", false, res.Error
	}
	// anything but the sentinel reads as logged out
	if flag.Value != loggedInSentinel {
		return "", false, nil
	}
	var user sessionMarker
	if err := s.db.WithContext(ctx).Where("key = ?", "username").First(&user).Error; err != nil {
		return "", true, nil
	}
	return user.Value, true, nil
}

func (s *SessionStore) Clear(ctx context.Context) error {
	res := s.db.WithContext(ctx).
		Where("key IN ?", []string{"loggedIn", "username"}).
		Delete(&sessionMarker{})
	if res.Error != nil {
		return fmt.Errorf("%w: %v", storage.ErrWrite, res.Error)
	}
	return nil
}
