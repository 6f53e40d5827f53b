package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/ilmnur/admin-dashboard/internal/model"
	"github.com/ilmnur/admin-dashboard/internal/session"
)

// sessionRow is the single persisted session. Tokens are sealed at rest.
type sessionRow struct {
	ID           int64 `gorm:"primaryKey"`
	UserJSON     string
	AccessToken  []byte
	RefreshToken []byte
	UpdatedAt    time.Time
}

func (sessionRow) TableName() string { return "sessions" }

// the store keeps exactly one session row
const sessionRowID = 1

// SaveSession upserts the persisted session copy.
func (s *Store) SaveSession(st session.State) error {
	userJSON := "null"
	if st.User != nil {
		b, err := json.Marshal(st.User)
		if err != nil {
			return fmt.Errorf("encode session user: %w", err)
		}
		userJSON = string(b)
	}

	access, err := s.sealer.Seal(st.AccessToken)
	if err != nil {
		return fmt.Errorf("seal access token: %w", err)
	}
	refresh, err := s.sealer.Seal(st.RefreshToken)
	if err != nil {
		return fmt.Errorf("seal refresh token: %w", err)
	}

	row := sessionRow{
		ID:           sessionRowID,
		UserJSON:     userJSON,
		AccessToken:  access,
		RefreshToken: refresh,
		UpdatedAt:    time.Now().UTC(),
	}
	return s.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(&row).Error
}

// LoadSession restores the persisted session, reporting false when none is
// stored. An undecryptable row (rotated secret) is treated as absent.
func (s *Store) LoadSession() (session.State, bool, error) {
	var row sessionRow
	err := s.db.First(&row, sessionRowID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return session.State{}, false, nil
	}
	if err != nil {
		return session.State{}, false, err
	}

	access, err := s.sealer.Open(row.AccessToken)
	if err != nil {
		return session.State{}, false, nil
	}
	refresh, err := s.sealer.Open(row.RefreshToken)
	if err != nil {
		return session.State{}, false, nil
	}

	var user *model.User
	if row.UserJSON != "" && row.UserJSON != "null" {
		user = &model.User{}
		if err := json.Unmarshal([]byte(row.UserJSON), user); err != nil {
			return session.State{}, false, fmt.Errorf("decode session user: %w", err)
		}
	}

	return session.State{User: user, AccessToken: access, RefreshToken: refresh}, true, nil
}

// ClearSession removes the persisted session copy.
func (s *Store) ClearSession() error {
	return s.db.Delete(&sessionRow{}, sessionRowID).Error
}
