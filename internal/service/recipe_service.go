package service

import (
	"strings"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

type RecipeService struct {
	repo RecipeRepository
}

func NewRecipeService(repo RecipeRepository) *RecipeService {
	return &RecipeService{repo: repo}
}

func (s *RecipeService) Create(rec *domain.Recipe) error {
	if strings.TrimSpace(rec.Title) == "" {
		return domain.ErrRecipeTitleRequired
	}
	return s.repo.CreateRecipe(rec)
}

func (s *RecipeService) List() ([]domain.Recipe, error) {
	return s.repo.ListRecipes()
}

func (s *RecipeService) Get(id int) (*domain.Recipe, error) {
	return s.repo.GetRecipe(id)
}

func (s *RecipeService) Update(rec *domain.Recipe) error {
	if strings.TrimSpace(rec.Title) == "" {
		return domain.ErrRecipeTitleRequired
	}
	return s.repo.UpdateRecipe(rec)
}

func (s *RecipeService) Delete(id int) (int64, error) {
	return s.repo.DeleteRecipe(id)
}

var _ RecipeServiceInterface = (*RecipeService)(nil)
