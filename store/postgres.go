// Copyright (c) 2026 Questboard Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/questboard/questboard/models"
)

// Postgres implements CampaignStore, VoteStore, and VoteAggregator on
// top of a PostgreSQL connection pool.
type Postgres struct {
	db *sqlx.DB
}

// NewPostgres creates a Postgres store backed by db.
func NewPostgres(db *sqlx.DB) *Postgres {
	return &Postgres{db: db}
}

// campaignRow mirrors the campaigns table; nullable columns scan into
// sql.Null* and convert to pointers on the model.
type campaignRow struct {
	ID               string          `db:"id"`
	Slug             string          `db:"slug"`
	Status           string          `db:"status"`
	Title            string          `db:"title"`
	ShortDescription sql.NullString  `db:"short_description"`
	Tags             pq.StringArray  `db:"tags"`
	DurationHours    sql.NullFloat64 `db:"duration_hours"`
	PlayersMin       sql.NullInt64   `db:"players_min"`
	PlayersMax       sql.NullInt64   `db:"players_max"`
	Age              sql.NullString  `db:"age"`
	CoverURL         sql.NullString  `db:"cover_url"`
	CreatedAt        time.Time       `db:"created_at"`
}

func (r campaignRow) toModel() models.Campaign {
	c := models.Campaign{
		ID:               r.ID,
		Slug:             r.Slug,
		Status:           r.Status,
		Title:            r.Title,
		ShortDescription: r.ShortDescription.String,
		Tags:             []string(r.Tags),
		CreatedAt:        r.CreatedAt,
	}
	if r.DurationHours.Valid {
		v := r.DurationHours.Float64
		c.DurationHours = &v
	}
	if r.PlayersMin.Valid {
		v := int(r.PlayersMin.Int64)
		c.PlayersMin = &v
	}
	if r.PlayersMax.Valid {
		v := int(r.PlayersMax.Int64)
		c.PlayersMax = &v
	}
	if r.Age.Valid {
		v := r.Age.String
		c.Age = &v
	}
	if r.CoverURL.Valid {
		v := r.CoverURL.String
		c.CoverURL = &v
	}
	return c
}

const campaignColumns = `id, slug, status, title, short_description, tags,
		duration_hours, players_min, players_max, age, cover_url, created_at`

// escapeLike escapes ILIKE pattern metacharacters so a user query
// matches as a literal substring, the same contract the in-memory
// store implements with plain string containment.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}

// ListCampaigns pushes every filter predicate down to SQL and returns
// the full matching set, unsorted and unpaginated.
func (s *Postgres) ListCampaigns(ctx context.Context, f models.Filters) ([]models.Campaign, error) {
	var (
		conds []string
		args  []interface{}
	)
	arg := func(v interface{}) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if len(f.Statuses) > 0 {
		conds = append(conds, "status = ANY("+arg(pq.Array(f.Statuses))+")")
	} else {
		conds = append(conds, "status = "+arg(models.StatusPublished))
	}
	if q := strings.TrimSpace(f.Query); q != "" {
		p := arg("%" + escapeLike(q) + "%")
		conds = append(conds, "(title ILIKE "+p+" OR short_description ILIKE "+p+")")
	}
	if len(f.Tags) > 0 {
		conds = append(conds, "tags @> "+arg(pq.Array(f.Tags)))
	}
	if f.DurationMin != nil {
		conds = append(conds, "duration_hours >= "+arg(*f.DurationMin))
	}
	if f.DurationMax != nil {
		conds = append(conds, "duration_hours <= "+arg(*f.DurationMax))
	}
	if f.PlayersMin != nil {
		conds = append(conds, "players_min >= "+arg(*f.PlayersMin))
	}
	if f.PlayersMax != nil {
		conds = append(conds, "players_max <= "+arg(*f.PlayersMax))
	}
	if f.Age != "" {
		conds = append(conds, "age = "+arg(f.Age))
	}

	query := `SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE ` + strings.Join(conds, " AND ")

	var rows []campaignRow
	if err := s.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list campaigns: %w", err)
	}

	campaigns := make([]models.Campaign, 0, len(rows))
	for _, r := range rows {
		campaigns = append(campaigns, r.toModel())
	}
	return campaigns, nil
}

// GetPublishedBySlug looks up one published campaign by slug.
func (s *Postgres) GetPublishedBySlug(ctx context.Context, slug string) (*models.Campaign, error) {
	query := `SELECT ` + campaignColumns + `
		FROM campaigns
		WHERE slug = $1 AND status = $2`

	var row campaignRow
	err := s.db.GetContext(ctx, &row, query, slug, models.StatusPublished)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get campaign by slug: %w", err)
	}

	c := row.toModel()
	return &c, nil
}

// PublishedExists reports whether a published campaign with the id exists.
func (s *Postgres) PublishedExists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM campaigns WHERE id = $1 AND status = $2
		)
	`, id, models.StatusPublished)
	if err != nil {
		return false, fmt.Errorf("failed to check campaign existence: %w", err)
	}
	return exists, nil
}

// HasVote reports whether a vote with the fingerprint hash already
// exists for the campaign.
func (s *Postgres) HasVote(ctx context.Context, campaignID, fingerprintHash string) (bool, error) {
	var exists bool
	err := s.db.GetContext(ctx, &exists, `
		SELECT EXISTS(
			SELECT 1 FROM votes WHERE campaign_id = $1 AND fingerprint_hash = $2
		)
	`, campaignID, fingerprintHash)
	if err != nil {
		return false, fmt.Errorf("failed to check existing vote: %w", err)
	}
	return exists, nil
}

// InsertVote records a vote. The UNIQUE (campaign_id,
// fingerprint_hash) index closes the check-then-insert race: a
// concurrent duplicate surfaces here as ErrDuplicateVote instead of a
// second row.
func (s *Postgres) InsertVote(ctx context.Context, v *models.Vote) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO votes (id, campaign_id, fingerprint_hash, ip_hash, user_agent_hash, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, v.ID, v.CampaignID, v.FingerprintHash, v.IPHash, v.UserAgentHash, v.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return ErrDuplicateVote
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// AggregateVotes counts votes from the last 30 days per campaign id.
// The LEFT JOIN guarantees a row for every requested id, so campaigns
// without votes still appear (with zero) in the popularity order.
func (s *Postgres) AggregateVotes(ctx context.Context, ids []string) ([]models.VoteAggregateRow, error) {
	if len(ids) == 0 {
		return []models.VoteAggregateRow{}, nil
	}

	var rows []models.VoteAggregateRow
	err := s.db.SelectContext(ctx, &rows, `
		SELECT c.id AS campaign_id, COUNT(v.id)::int AS votes
		FROM campaigns c
		LEFT JOIN votes v
			ON v.campaign_id = c.id
			AND v.created_at > NOW() - INTERVAL '30 days'
		WHERE c.id = ANY($1)
		GROUP BY c.id
		ORDER BY votes DESC, c.id ASC
	`, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate votes: %w", err)
	}
	return rows, nil
}
