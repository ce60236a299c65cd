package catalog

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPackages(ctx context.Context) ([]Package, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, duration_days, meals_per_day, plan_pattern,
		       serves_min, serves_max, price_cents, features, sort_order
		FROM packages
		ORDER BY sort_order
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Package
	for rows.Next() {
		var p Package
		if err := rows.Scan(
			&p.ID, &p.Name, &p.DurationDays, &p.MealsPerDay, &p.PlanPattern,
			&p.ServesMin, &p.ServesMax, &p.PriceCents, &p.Features, &p.SortOrder,
		); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

// SeedIfEmpty loads the launch lineup into a fresh database.
func (r *PostgresRepository) SeedIfEmpty(ctx context.Context) error {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM packages`).Scan(&count); err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	for _, p := range SeedPackages() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO packages (id, name, duration_days, meals_per_day, plan_pattern,
			                      serves_min, serves_max, price_cents, features, sort_order)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		`, p.ID, p.Name, p.DurationDays, p.MealsPerDay, p.PlanPattern,
			p.ServesMin, p.ServesMax, p.PriceCents, p.Features, p.SortOrder)
		if err != nil {
			return err
		}
	}

	for _, m := range SeedMeals() {
		_, err := r.db.Exec(ctx, `
			INSERT INTO meals (id, name, diet_tags, protein_tags, ingredient_tags)
			VALUES ($1, $2, $3, $4, $5)
		`, m.ID, m.Name, m.DietTags, m.ProteinTags, m.IngredientTags)
		if err != nil {
			return err
		}
	}

	return nil
}

func (r *PostgresRepository) ListMeals(ctx context.Context) ([]Meal, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, name, diet_tags, protein_tags, ingredient_tags
		FROM meals
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Meal
	for rows.Next() {
		var m Meal
		if err := rows.Scan(
			&m.ID, &m.Name, &m.DietTags, &m.ProteinTags, &m.IngredientTags,
		); err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}
