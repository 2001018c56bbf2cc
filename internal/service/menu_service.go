package service

import (
	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/notify"
)

type MenuService struct {
	repo     MenuRepository
	notifier Notifier
	orderURL string
}

func NewMenuService(repo MenuRepository, notifier Notifier, orderURL string) *MenuService {
	return &MenuService{repo: repo, notifier: notifier, orderURL: orderURL}
}

func (s *MenuService) Create(menu *domain.Menu) error {
	if menu.Date.IsZero() || len(menu.Items) == 0 {
		return domain.ErrMenuFieldsRequired
	}
	return s.repo.CreateMenu(menu)
}

func (s *MenuService) List() ([]domain.Menu, error) {
	return s.repo.ListMenus()
}

func (s *MenuService) Get(id int) (*domain.Menu, error) {
	return s.repo.GetMenu(id)
}

func (s *MenuService) GetByDate(date string) (*domain.Menu, error) {
	return s.repo.GetMenuByDate(date)
}

func (s *MenuService) Update(menu *domain.Menu) error {
	return s.repo.UpdateMenu(menu)
}

func (s *MenuService) Delete(id int) (int64, error) {
	return s.repo.DeleteMenu(id)
}

// Broadcast formats the menu once and sends it to every number,
// collecting per-number outcomes. A failed send never stops the rest
// of the batch.
func (s *MenuService) Broadcast(id int, numbers []string) ([]domain.BroadcastResult, error) {
	menu, err := s.repo.GetMenu(id)
	if err != nil {
		return nil, err
	}

	message := notify.MenuMessage(menu, s.orderURL)
	results := make([]domain.BroadcastResult, 0, len(numbers))
	for _, number := range numbers {
		result := domain.BroadcastResult{Number: number, Success: true}
		if err := s.notifier.Send(number, message); err != nil {
			result.Success = false
			result.Error = err.Error()
		}
		results = append(results, result)
	}
	return results, nil
}

var _ MenuServiceInterface = (*MenuService)(nil)
