package postgres

import (
	"context"
	"time"

	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/repository"
	"cinelog/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// sessionRepository implements the domain.SessionRepository interface using GORM.
type sessionRepository struct {
	db *gorm.DB
}

// NewSessionRepository is the constructor for sessionRepository.
func NewSessionRepository(db *gorm.DB) repository.SessionRepository {
	return &sessionRepository{db: db}
}

// Create persists a fresh session with no logins.
func (repo *sessionRepository) Create(ctx context.Context, accountID uuid.UUID) (*entity.Session, error) {
	sessionM := &model.SessionModel{AccountID: accountID}

	if err := repo.db.WithContext(ctx).Create(sessionM).Error; err != nil {
		// The unique account_id index turns a second session into a conflict.
		if isUniqueConstraintViolation(err) {
			return nil, repository.ErrSessionExists
		}

		return nil, errors.Wrap(err, "failed to create session")
	}

	return toSessionDomain(sessionM), nil
}

// FindByAccountID loads the session together with its login history.
func (repo *sessionRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Session, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Preload("Logins", func(db *gorm.DB) *gorm.DB {
			return db.Order("logged_in_at ASC")
		}).
		Where("account_id = ?", accountID).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to find session by account id")
	}

	return toSessionDomain(&sessionM), nil
}

// AppendLogin inserts a new history row carrying the refresh token and
// mirrors it into the last-login snapshot.
func (repo *sessionRepository) AppendLogin(ctx context.Context, accountID uuid.UUID, refreshToken string) error {
	sessionM, err := repo.lockByAccountID(ctx, accountID)
	if err != nil {
		return err
	}

	now := time.Now()

	login := &model.SessionLoginModel{
		SessionID:    sessionM.ID,
		LoggedInAt:   now,
		RefreshToken: refreshToken,
	}
	if err := repo.db.WithContext(ctx).Create(login).Error; err != nil {
		return errors.Wrap(err, "failed to append login history")
	}

	updates := map[string]any{
		"last_logged_in_at":  now,
		"last_logged_out_at": nil,
		"last_refresh_token": refreshToken,
	}
	if err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", sessionM.ID).
		Updates(updates).Error; err != nil {
		return errors.Wrap(err, "failed to update last login snapshot")
	}

	return nil
}

// RotateRefreshToken replaces the refresh token on the last-login snapshot
// and on the most recent history row that still carries one. Rows whose
// token was already cleared by a logout are left alone.
func (repo *sessionRepository) RotateRefreshToken(ctx context.Context, accountID uuid.UUID, refreshToken string) error {
	sessionM, err := repo.lockByAccountID(ctx, accountID)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", sessionM.ID).
		Update("last_refresh_token", refreshToken).Error; err != nil {
		return errors.Wrap(err, "failed to rotate snapshot refresh token")
	}

	subquery := repo.db.
		Model(&model.SessionLoginModel{}).
		Select("id").
		Where("session_id = ? AND refresh_token <> ''", sessionM.ID).
		Order("logged_in_at DESC").
		Limit(1)
	if err := repo.db.WithContext(ctx).
		Model(&model.SessionLoginModel{}).
		Where("id IN (?)", subquery).
		Update("refresh_token", refreshToken).Error; err != nil {
		return errors.Wrap(err, "failed to rotate history refresh token")
	}

	return nil
}

// MarkLoggedOut stamps a logout time on the last-login snapshot and on
// any history row still open.
func (repo *sessionRepository) MarkLoggedOut(ctx context.Context, accountID uuid.UUID) error {
	sessionM, err := repo.lockByAccountID(ctx, accountID)
	if err != nil {
		return err
	}

	now := time.Now()

	if err := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("id = ?", sessionM.ID).
		Updates(map[string]any{
			"last_logged_out_at": now,
			"last_refresh_token": "",
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark snapshot logged out")
	}

	if err := repo.db.WithContext(ctx).
		Model(&model.SessionLoginModel{}).
		Where("session_id = ? AND logged_out_at IS NULL", sessionM.ID).
		Updates(map[string]any{
			"logged_out_at": now,
			"refresh_token": "",
		}).Error; err != nil {
		return errors.Wrap(err, "failed to mark history logged out")
	}

	return nil
}

// StoreOTP overwrites the pending activation code.
func (repo *sessionRepository) StoreOTP(ctx context.Context, accountID uuid.UUID, otp *entity.OTP) error {
	return repo.updateOTP(ctx, accountID, map[string]any{
		"otp_code":       otp.Code,
		"otp_expires_at": otp.ExpiresAt,
	})
}

// StoreResetOTP overwrites the pending password-reset code.
func (repo *sessionRepository) StoreResetOTP(ctx context.Context, accountID uuid.UUID, otp *entity.OTP) error {
	return repo.updateOTP(ctx, accountID, map[string]any{
		"reset_otp_code":       otp.Code,
		"reset_otp_expires_at": otp.ExpiresAt,
	})
}

// ClearOTP removes the pending activation code.
func (repo *sessionRepository) ClearOTP(ctx context.Context, accountID uuid.UUID) error {
	return repo.updateOTP(ctx, accountID, map[string]any{
		"otp_code":       "",
		"otp_expires_at": nil,
	})
}

// ClearResetOTP removes the pending password-reset code.
func (repo *sessionRepository) ClearResetOTP(ctx context.Context, accountID uuid.UUID) error {
	return repo.updateOTP(ctx, accountID, map[string]any{
		"reset_otp_code":       "",
		"reset_otp_expires_at": nil,
	})
}

func (repo *sessionRepository) updateOTP(ctx context.Context, accountID uuid.UUID, updates map[string]any) error {
	result := repo.db.WithContext(ctx).
		Model(&model.SessionModel{}).
		Where("account_id = ?", accountID).
		Updates(updates)
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to update session otp")
	}
	if result.RowsAffected == 0 {
		return repository.ErrSessionNotFound
	}

	return nil
}

// lockByAccountID loads the bare session row for an account under
// FOR UPDATE, so the multi-statement updates that follow run against a
// stable row when called inside a transaction.
func (repo *sessionRepository) lockByAccountID(ctx context.Context, accountID uuid.UUID) (*model.SessionModel, error) {
	var sessionM model.SessionModel
	err := repo.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("account_id = ?", accountID).
		First(&sessionM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSessionNotFound
		}

		return nil, errors.Wrap(err, "failed to load session")
	}

	return &sessionM, nil
}

// toSessionDomain maps the persistence model back to a pure domain entity.
func toSessionDomain(m *model.SessionModel) *entity.Session {
	session := &entity.Session{
		ID:        m.ID,
		AccountID: m.AccountID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}

	if m.LastLoggedInAt != nil {
		session.LastLogin = &entity.LoginRecord{
			LoggedInAt:   *m.LastLoggedInAt,
			LoggedOutAt:  m.LastLoggedOutAt,
			RefreshToken: m.LastRefreshToken,
		}
	}

	if m.OTPCode != "" && m.OTPExpiresAt != nil {
		session.OTP = &entity.OTP{Code: m.OTPCode, ExpiresAt: *m.OTPExpiresAt}
	}
	if m.ResetOTPCode != "" && m.ResetOTPExpiresAt != nil {
		session.ResetOTP = &entity.OTP{Code: m.ResetOTPCode, ExpiresAt: *m.ResetOTPExpiresAt}
	}

	for _, login := range m.Logins {
		session.History = append(session.History, entity.LoginRecord{
			ID:           login.ID,
			LoggedInAt:   login.LoggedInAt,
			LoggedOutAt:  login.LoggedOutAt,
			RefreshToken: login.RefreshToken,
		})
	}

	return session
}
