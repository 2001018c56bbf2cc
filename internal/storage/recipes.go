package storage

import (
	"database/sql"
	"errors"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

func (r *PostgresRepository) CreateRecipe(rec *domain.Recipe) error {
	return r.DB.QueryRow(`
		INSERT INTO recipes (title, description, ingredients, instructions, prep_time, cook_time, servings)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		rec.Title, rec.Description, rec.Ingredients, rec.Instructions,
		rec.PrepTime, rec.CookTime, rec.Servings).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
}

func (r *PostgresRepository) ListRecipes() ([]domain.Recipe, error) {
	rows, err := r.DB.Query(`
		SELECT id, title, COALESCE(description, ''), COALESCE(ingredients, ''),
		       COALESCE(instructions, ''), COALESCE(prep_time, 0), COALESCE(cook_time, 0),
		       COALESCE(servings, 0), created_at, updated_at
		FROM recipes
		ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var recipes []domain.Recipe
	for rows.Next() {
		var rec domain.Recipe
		if err := rows.Scan(&rec.ID, &rec.Title, &rec.Description, &rec.Ingredients,
			&rec.Instructions, &rec.PrepTime, &rec.CookTime, &rec.Servings,
			&rec.CreatedAt, &rec.UpdatedAt); err != nil {
			continue
		}
		recipes = append(recipes, rec)
	}
	return recipes, nil
}

func (r *PostgresRepository) GetRecipe(id int) (*domain.Recipe, error) {
	var rec domain.Recipe
	err := r.DB.QueryRow(`
		SELECT id, title, COALESCE(description, ''), COALESCE(ingredients, ''),
		       COALESCE(instructions, ''), COALESCE(prep_time, 0), COALESCE(cook_time, 0),
		       COALESCE(servings, 0), created_at, updated_at
		FROM recipes WHERE id = $1`, id).
		Scan(&rec.ID, &rec.Title, &rec.Description, &rec.Ingredients, &rec.Instructions,
			&rec.PrepTime, &rec.CookTime, &rec.Servings, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrRecipeNotFound
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *PostgresRepository) UpdateRecipe(rec *domain.Recipe) error {
	err := r.DB.QueryRow(`
		UPDATE recipes
		SET title = $1, description = $2, ingredients = $3, instructions = $4,
		    prep_time = $5, cook_time = $6, servings = $7, updated_at = NOW()
		WHERE id = $8
		RETURNING id, created_at, updated_at`,
		rec.Title, rec.Description, rec.Ingredients, rec.Instructions,
		rec.PrepTime, rec.CookTime, rec.Servings, rec.ID).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ErrRecipeNotFound
	}
	return err
}

func (r *PostgresRepository) DeleteRecipe(id int) (int64, error) {
	result, err := r.DB.Exec("DELETE FROM recipes WHERE id = $1", id)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
