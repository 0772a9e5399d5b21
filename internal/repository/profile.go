package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/shenikar/sos_alert_system/internal/models"
	"github.com/shenikar/sos_alert_system/internal/service"
)

const contactsCacheTTL = 5 * time.Minute

type ProfileRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewProfileRepository(db *pgxpool.Pool, redisClient *redis.Client) service.ProfileRepository {
	return &ProfileRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// GetProfile возвращает профиль по его UUID
func (r *ProfileRepository) GetProfile(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	profile := &models.Profile{}
	query := `
		SELECT id, name, phone_number, email, wallet_address, created_at, updated_at
		FROM profiles
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&profile.ID,
		&profile.Name,
		&profile.PhoneNumber,
		&profile.Email,
		&profile.WalletAddress,
		&profile.CreatedAt,
		&profile.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("profile %s: %w", id, service.ErrProfileNotFound)
		}
		return nil, fmt.Errorf("failed to get profile by id: %w", err)
	}
	return profile, nil
}

// CreateProfile создает новую запись профиля в бд
func (r *ProfileRepository) CreateProfile(ctx context.Context, profile *models.Profile) error {
	query := `
		INSERT INTO profiles (name, phone_number, email, wallet_address)
		VALUES ($1, $2, $3, $4) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		profile.Name,
		profile.PhoneNumber,
		profile.Email,
		profile.WalletAddress,
	).Scan(&profile.ID, &profile.CreatedAt, &profile.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create profile: %w", err)
	}
	return nil
}

// CreateContact создает новый контакт профиля
func (r *ProfileRepository) CreateContact(ctx context.Context, profileID uuid.UUID, contact *models.Contact) error {
	query := `
		INSERT INTO contacts (profile_id, name, phone_number, email, wallet_address, is_emergency_contact)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		profileID,
		contact.Name,
		contact.PhoneNumber,
		contact.Email,
		contact.WalletAddress,
		contact.IsEmergencyContact,
	).Scan(&contact.ID, &contact.CreatedAt, &contact.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}
	return nil
}

// GetContact возвращает контакт профиля по его UUID
func (r *ProfileRepository) GetContact(ctx context.Context, profileID, contactID uuid.UUID) (*models.Contact, error) {
	contact := &models.Contact{}
	query := `
		SELECT id, name, phone_number, email, wallet_address, is_emergency_contact, created_at, updated_at
		FROM contacts
		WHERE id = $1 AND profile_id = $2;
	`
	err := r.db.QueryRow(ctx, query, contactID, profileID).Scan(
		&contact.ID,
		&contact.Name,
		&contact.PhoneNumber,
		&contact.Email,
		&contact.WalletAddress,
		&contact.IsEmergencyContact,
		&contact.CreatedAt,
		&contact.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("contact %s: %w", contactID, service.ErrContactNotFound)
		}
		return nil, fmt.Errorf("failed to get contact by id: %w", err)
	}
	return contact, nil
}

// UpdateContact обновляет все изменяемые поля контакта
func (r *ProfileRepository) UpdateContact(ctx context.Context, profileID uuid.UUID, contact *models.Contact) error {
	query := `
		UPDATE contacts SET
			name = $1,
			phone_number = $2,
			email = $3,
			wallet_address = $4,
			is_emergency_contact = $5,
			updated_at = NOW()
		WHERE id = $6 AND profile_id = $7;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		contact.Name,
		contact.PhoneNumber,
		contact.Email,
		contact.WalletAddress,
		contact.IsEmergencyContact,
		contact.ID,
		profileID,
	)
	if err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("contact %s not found for update: %w", contact.ID, service.ErrContactNotFound)
	}
	return nil
}

// DeleteContact удаляет контакт. Отсутствие строки не считается ошибкой.
func (r *ProfileRepository) DeleteContact(ctx context.Context, profileID, contactID uuid.UUID) error {
	query := `
		DELETE FROM contacts
		WHERE id = $1 AND profile_id = $2;
	`
	if _, err := r.db.Exec(ctx, query, contactID, profileID); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}
	return nil
}

// ListContacts возвращает контакты профиля в порядке добавления
func (r *ProfileRepository) ListContacts(ctx context.Context, profileID uuid.UUID) ([]*models.Contact, error) {
	query := `
		SELECT id, name, phone_number, email, wallet_address, is_emergency_contact, created_at, updated_at
		FROM contacts
		WHERE profile_id = $1
		ORDER BY created_at ASC;
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer rows.Close()

	contacts := make([]*models.Contact, 0)
	for rows.Next() {
		contact := &models.Contact{}
		err := rows.Scan(
			&contact.ID,
			&contact.Name,
			&contact.PhoneNumber,
			&contact.Email,
			&contact.WalletAddress,
			&contact.IsEmergencyContact,
			&contact.CreatedAt,
			&contact.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan contact row: %w", err)
		}
		contacts = append(contacts, contact)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return contacts, nil
}

// CreateAlert добавляет запись тревоги в историю профиля
func (r *ProfileRepository) CreateAlert(ctx context.Context, profileID uuid.UUID, alert *models.Alert) error {
	query := `
		INSERT INTO alerts (profile_id, triggered_at_ms, latitude, longitude, address, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		profileID,
		alert.Timestamp,
		alert.Location.Latitude,
		alert.Location.Longitude,
		alert.Location.Address,
		alert.Status,
		alert.Notes,
	).Scan(&alert.ID, &alert.CreatedAt, &alert.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create alert: %w", err)
	}
	return nil
}

// GetAlert возвращает тревогу профиля по ее UUID
func (r *ProfileRepository) GetAlert(ctx context.Context, profileID, alertID uuid.UUID) (*models.Alert, error) {
	alert := &models.Alert{}
	query := `
		SELECT
			id,
			triggered_at_ms,
			latitude,
			longitude,
			address,
			status,
			COALESCE(responded_by, '[]'::jsonb),
			notes,
			COALESCE(verification_ref, ''),
			created_at,
			updated_at
		FROM alerts
		WHERE id = $1 AND profile_id = $2;
	`
	err := r.db.QueryRow(ctx, query, alertID, profileID).Scan(
		&alert.ID,
		&alert.Timestamp,
		&alert.Location.Latitude,
		&alert.Location.Longitude,
		&alert.Location.Address,
		&alert.Status,
		&alert.RespondedBy,
		&alert.Notes,
		&alert.VerificationRef,
		&alert.CreatedAt,
		&alert.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("alert %s: %w", alertID, service.ErrAlertNotFound)
		}
		return nil, fmt.Errorf("failed to get alert by id: %w", err)
	}
	return alert, nil
}

// UpdateAlertOutcome обновляет статус, заметки и снимок откликнувшихся.
// Координаты и triggered_at_ms не перезаписываются никогда.
func (r *ProfileRepository) UpdateAlertOutcome(ctx context.Context, profileID uuid.UUID, alert *models.Alert) error {
	query := `
		UPDATE alerts SET
			status = $1,
			notes = $2,
			responded_by = $3,
			updated_at = NOW()
		WHERE id = $4 AND profile_id = $5;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		alert.Status,
		alert.Notes,
		respondedByParam(alert.RespondedBy),
		alert.ID,
		profileID,
	)
	if err != nil {
		return fmt.Errorf("failed to update alert: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found for update: %w", alert.ID, service.ErrAlertNotFound)
	}
	return nil
}

// SetVerificationRef устанавливает ссылку-подтверждение ровно один раз:
// уже заполненное значение не перезаписывается
func (r *ProfileRepository) SetVerificationRef(ctx context.Context, profileID, alertID uuid.UUID, ref string) error {
	query := `
		UPDATE alerts SET
			verification_ref = $1,
			updated_at = NOW()
		WHERE id = $2 AND profile_id = $3 AND verification_ref IS NULL;
	`
	cmdTag, err := r.db.Exec(ctx, query, ref, alertID, profileID)
	if err != nil {
		return fmt.Errorf("failed to set verification ref: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found or already anchored", alertID)
	}
	return nil
}

// ListAlerts возвращает историю тревог профиля, новые первыми
func (r *ProfileRepository) ListAlerts(ctx context.Context, profileID uuid.UUID) ([]*models.Alert, error) {
	query := `
		SELECT
			id,
			triggered_at_ms,
			latitude,
			longitude,
			address,
			status,
			COALESCE(responded_by, '[]'::jsonb),
			notes,
			COALESCE(verification_ref, ''),
			created_at,
			updated_at
		FROM alerts
		WHERE profile_id = $1
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, profileID)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

// ListAlertsByStatus возвращает тревоги с заданным статусом, новые первыми
func (r *ProfileRepository) ListAlertsByStatus(ctx context.Context, profileID uuid.UUID, status models.AlertStatus) ([]*models.Alert, error) {
	query := `
		SELECT
			id,
			triggered_at_ms,
			latitude,
			longitude,
			address,
			status,
			COALESCE(responded_by, '[]'::jsonb),
			notes,
			COALESCE(verification_ref, ''),
			created_at,
			updated_at
		FROM alerts
		WHERE profile_id = $1 AND status = $2
		ORDER BY created_at DESC, id DESC;
	`
	rows, err := r.db.Query(ctx, query, profileID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to list alerts by status: %w", err)
	}
	defer rows.Close()

	return scanAlerts(rows)
}

func scanAlerts(rows pgx.Rows) ([]*models.Alert, error) {
	alerts := make([]*models.Alert, 0)
	for rows.Next() {
		alert := &models.Alert{}
		err := rows.Scan(
			&alert.ID,
			&alert.Timestamp,
			&alert.Location.Latitude,
			&alert.Location.Longitude,
			&alert.Location.Address,
			&alert.Status,
			&alert.RespondedBy,
			&alert.Notes,
			&alert.VerificationRef,
			&alert.CreatedAt,
			&alert.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert row: %w", err)
		}
		alerts = append(alerts, alert)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return alerts, nil
}

// respondedByParam сериализует снимок контактов для jsonb-колонки.
// Пустой снимок хранится как NULL.
func respondedByParam(contacts []models.Contact) any {
	if len(contacts) == 0 {
		return nil
	}
	return contacts
}

// GetContactsFromCache пытается получить контакты профиля из Redis
func (r *ProfileRepository) GetContactsFromCache(ctx context.Context, profileID uuid.UUID) ([]*models.Contact, error) {
	key := contactsCacheKey(profileID)
	val, err := r.redisClient.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get contacts from cache: %w", err)
	}

	contacts := make([]*models.Contact, 0)
	if err := json.Unmarshal(val, &contacts); err != nil {
		return nil, fmt.Errorf("failed to unmarshal contacts from cache: %w", err)
	}
	return contacts, nil
}

// SetContactsCache сохраняет контакты профиля в Redis
func (r *ProfileRepository) SetContactsCache(ctx context.Context, profileID uuid.UUID, contacts []*models.Contact) error {
	val, err := json.Marshal(contacts)
	if err != nil {
		return fmt.Errorf("failed to marshal contacts for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, contactsCacheKey(profileID), val, contactsCacheTTL).Err(); err != nil {
		return fmt.Errorf("failed to set contacts in cache: %w", err)
	}
	return nil
}

// InvalidateContactsCache удаляет контакты профиля из Redis кэша
func (r *ProfileRepository) InvalidateContactsCache(ctx context.Context, profileID uuid.UUID) error {
	if err := r.redisClient.Del(ctx, contactsCacheKey(profileID)).Err(); err != nil {
		return fmt.Errorf("failed to invalidate contacts cache: %w", err)
	}
	return nil
}

func contactsCacheKey(profileID uuid.UUID) string {
	return fmt.Sprintf("contacts:%s", profileID.String())
}
