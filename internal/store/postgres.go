package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"aid-appraisal/internal/model"
)

// Postgres persists appraisal records in a single table, with the input
// series stored as JSONB.
type Postgres struct {
	pool *pgxpool.Pool
}

func NewPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("open database pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return &Postgres{pool: pool}, nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}

const schema = `
CREATE TABLE IF NOT EXISTS appraisals (
	id UUID PRIMARY KEY,
	project_name TEXT NOT NULL DEFAULT '',
	appraisal_type TEXT NOT NULL,
	eirr_result DOUBLE PRECISION,
	npv DOUBLE PRECISION,
	benefit_cost_ratio DOUBLE PRECISION,
	verdict TEXT NOT NULL,
	shadow_wage_rate DOUBLE PRECISION NOT NULL,
	shadow_exchange_rate DOUBLE PRECISION NOT NULL,
	standard_conversion_factor DOUBLE PRECISION NOT NULL,
	social_discount_rate DOUBLE PRECISION NOT NULL,
	project_life_years INTEGER NOT NULL,
	construction_years INTEGER NOT NULL,
	cost_data JSONB NOT NULL,
	benefit_data JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// Migrate creates the appraisals table if it does not exist.
func (p *Postgres) Migrate(ctx context.Context) error {
	if _, err := p.pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("create appraisals table: %w", err)
	}
	return nil
}

func (p *Postgres) Save(ctx context.Context, rec *Record) error {
	costJSON, err := json.Marshal(rec.CostData)
	if err != nil {
		return fmt.Errorf("marshal cost_data: %w", err)
	}
	benefitJSON, err := json.Marshal(rec.BenefitData)
	if err != nil {
		return fmt.Errorf("marshal benefit_data: %w", err)
	}

	query := `
		INSERT INTO appraisals (
			id, project_name, appraisal_type,
			eirr_result, npv, benefit_cost_ratio, verdict,
			shadow_wage_rate, shadow_exchange_rate, standard_conversion_factor,
			social_discount_rate, project_life_years, construction_years,
			cost_data, benefit_data, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
	`
	_, err = p.pool.Exec(ctx, query,
		rec.ID, rec.ProjectName, rec.AppraisalType,
		rec.EIRRResult, rec.NPV, rec.BenefitCostRatio, rec.Verdict,
		rec.ShadowWageRate, rec.ShadowExchangeRate, rec.StandardConversionFactor,
		rec.SocialDiscountRate, rec.ProjectLifeYears, rec.ConstructionYears,
		costJSON, benefitJSON, rec.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("save appraisal %s: %w", rec.ID, err)
	}
	return nil
}

func (p *Postgres) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	row := p.pool.QueryRow(ctx, `
		SELECT id, project_name, appraisal_type,
			eirr_result, npv, benefit_cost_ratio, verdict,
			shadow_wage_rate, shadow_exchange_rate, standard_conversion_factor,
			social_discount_rate, project_life_years, construction_years,
			cost_data, benefit_data, created_at
		FROM appraisals WHERE id = $1
	`, id)
	rec, err := scanRecord(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get appraisal %s: %w", id, err)
	}
	return rec, nil
}

func (p *Postgres) List(ctx context.Context, limit int) ([]*Record, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := p.pool.Query(ctx, `
		SELECT id, project_name, appraisal_type,
			eirr_result, npv, benefit_cost_ratio, verdict,
			shadow_wage_rate, shadow_exchange_rate, standard_conversion_factor,
			social_discount_rate, project_life_years, construction_years,
			cost_data, benefit_data, created_at
		FROM appraisals ORDER BY created_at DESC LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("list appraisals: %w", err)
	}
	defer rows.Close()

	var out []*Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("scan appraisal row: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func scanRecord(row pgx.Row) (*Record, error) {
	var rec Record
	var costJSON, benefitJSON []byte
	err := row.Scan(
		&rec.ID, &rec.ProjectName, &rec.AppraisalType,
		&rec.EIRRResult, &rec.NPV, &rec.BenefitCostRatio, &rec.Verdict,
		&rec.ShadowWageRate, &rec.ShadowExchangeRate, &rec.StandardConversionFactor,
		&rec.SocialDiscountRate, &rec.ProjectLifeYears, &rec.ConstructionYears,
		&costJSON, &benefitJSON, &rec.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(costJSON, &rec.CostData); err != nil {
		return nil, fmt.Errorf("unmarshal cost_data: %w", err)
	}
	if err := json.Unmarshal(benefitJSON, &rec.BenefitData); err != nil {
		return nil, fmt.Errorf("unmarshal benefit_data: %w", err)
	}
	if rec.CostData == nil {
		rec.CostData = []model.Entry{}
	}
	if rec.BenefitData == nil {
		rec.BenefitData = []model.Entry{}
	}
	return &rec, nil
}
