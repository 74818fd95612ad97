package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"volunteerhub-backend/internal/domain"
	"volunteerhub-backend/internal/repository"
)

type eventRepository struct {
	db *sql.DB
}

func NewEventRepository(db *sql.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = `e.id, e.org_id, e.created_by, e.title, COALESCE(e.description, ''), COALESCE(e.banner_url, ''),
	COALESCE(e.category, ''), COALESCE(e.city, ''), COALESCE(e.address, ''), COALESCE(e.lat::text, ''), COALESCE(e.lng::text, ''),
	e.start_at, e.end_at, COALESCE(e.capacity, 0), e.status, e.created_at, e.updated_at`

func (r *eventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `INSERT INTO events (org_id, created_by, title, description, banner_url, category, city, address, lat, lng,
	                              start_at, end_at, capacity, status, created_at, updated_at)
	          VALUES ($1, $2, $3, NULLIF($4, ''), NULLIF($5, ''), NULLIF($6, ''), NULLIF($7, ''), NULLIF($8, ''),
	                  NULLIF($9, '')::numeric, NULLIF($10, '')::numeric, $11, $12, NULLIF($13, 0), $14, now(), now())
	          RETURNING id, created_at`
	var createdAt time.Time
	err := r.db.QueryRowContext(ctx, query,
		event.OrgID, event.CreatedBy, event.Title, event.Description, event.BannerURL,
		event.Category, event.City, event.Address, event.Lat, event.Lng,
		event.StartAt, event.EndAt, event.Capacity, event.Status).
		Scan(&event.ID, &createdAt)
	if err != nil {
		return err
	}
	event.CreatedOn = createdAt.Format(dateFormat)
	event.UpdatedOn = event.CreatedOn
	return nil
}

func (r *eventRepository) GetWithOrg(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `, o.name, o.status, COALESCE(o.created_by, 0)
	          FROM events e
	          JOIN organizations o ON o.id = e.org_id
	          WHERE e.id = $1`
	event := &domain.Event{}
	var endAt sql.NullTime
	var createdAt, updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&event.ID, &event.OrgID, &event.CreatedBy, &event.Title, &event.Description, &event.BannerURL,
		&event.Category, &event.City, &event.Address, &event.Lat, &event.Lng,
		&event.StartAt, &endAt, &event.Capacity, &event.Status, &createdAt, &updatedAt,
		&event.OrgName, &event.OrgStatus, &event.OrgOwner,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if endAt.Valid {
		event.EndAt = &endAt.Time
	}
	event.CreatedOn = createdAt.Format(dateFormat)
	event.UpdatedOn = updatedAt.Format(dateFormat)
	return event, nil
}

func (r *eventRepository) ListPublished(ctx context.Context, filter domain.EventFilter) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + `, o.name
	          FROM events e
	          JOIN organizations o ON o.id = e.org_id
	          WHERE e.status = 'PUBLISHED' AND o.status = 'ACTIVE'
	            AND ($1 = '' OR e.city ILIKE $1)
	            AND ($2 = '' OR e.title ILIKE '%' || $2 || '%')
	            AND ($3 = 0 OR e.org_id = $3)
	          ORDER BY e.start_at ASC`
	rows, err := r.db.QueryContext(ctx, query, filter.City, filter.Query, filter.OrgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows, true)
}

func (r *eventRepository) ListByOrg(ctx context.Context, orgID int64) ([]domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events e WHERE e.org_id = $1 ORDER BY e.start_at DESC`
	rows, err := r.db.QueryContext(ctx, query, orgID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectEvents(rows, false)
}

func (r *eventRepository) UpdateStatus(ctx context.Context, id int64, status domain.EventStatus) (*domain.Event, error) {
	query := `UPDATE events e SET status = $1, updated_at = now() WHERE id = $2
	          RETURNING ` + eventColumns
	event := &domain.Event{}
	var endAt sql.NullTime
	var createdAt, updatedAt time.Time
	err := r.db.QueryRowContext(ctx, query, status, id).Scan(
		&event.ID, &event.OrgID, &event.CreatedBy, &event.Title, &event.Description, &event.BannerURL,
		&event.Category, &event.City, &event.Address, &event.Lat, &event.Lng,
		&event.StartAt, &endAt, &event.Capacity, &event.Status, &createdAt, &updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	if endAt.Valid {
		event.EndAt = &endAt.Time
	}
	event.CreatedOn = createdAt.Format(dateFormat)
	event.UpdatedOn = updatedAt.Format(dateFormat)
	return event, nil
}

func (r *eventRepository) CompletePastEvents(ctx context.Context, now time.Time) (int64, error) {
	query := `UPDATE events SET status = 'COMPLETED', updated_at = now()
	          WHERE status = 'PUBLISHED' AND COALESCE(end_at, start_at) < $1`
	result, err := r.db.ExecContext(ctx, query, now)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func collectEvents(rows *sql.Rows, withOrgName bool) ([]domain.Event, error) {
	var events []domain.Event
	for rows.Next() {
		var event domain.Event
		var endAt sql.NullTime
		var createdAt, updatedAt time.Time
		dest := []any{
			&event.ID, &event.OrgID, &event.CreatedBy, &event.Title, &event.Description, &event.BannerURL,
			&event.Category, &event.City, &event.Address, &event.Lat, &event.Lng,
			&event.StartAt, &endAt, &event.Capacity, &event.Status, &createdAt, &updatedAt,
		}
		if withOrgName {
			dest = append(dest, &event.OrgName)
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, err
		}
		if endAt.Valid {
			event.EndAt = &endAt.Time
		}
		event.CreatedOn = createdAt.Format(dateFormat)
		event.UpdatedOn = updatedAt.Format(dateFormat)
		events = append(events, event)
	}
	return events, rows.Err()
}
