package service

import (
	"errors"

	"github.com/sanjayxseth/mskitchen/internal/domain"
)

type CustomerService struct {
	repo CustomerRepository
}

func NewCustomerService(repo CustomerRepository) *CustomerService {
	return &CustomerService{repo: repo}
}

func (s *CustomerService) Create(c *domain.Customer) error {
	if c.WhatsAppNumber == "" {
		return domain.ErrCustomerRequired
	}
	return s.repo.CreateCustomer(c)
}

func (s *CustomerService) List() ([]domain.Customer, error) {
	return s.repo.ListCustomers()
}

func (s *CustomerService) Get(id int) (*domain.Customer, error) {
	return s.repo.GetCustomer(id)
}

func (s *CustomerService) GetByWhatsApp(number string) (*domain.Customer, error) {
	return s.repo.GetCustomerByWhatsApp(number)
}

// BulkCreate inserts each customer in turn, skipping numbers that
// already exist instead of failing the batch.
func (s *CustomerService) BulkCreate(customers []domain.Customer) (*domain.BulkCreateResult, error) {
	result := &domain.BulkCreateResult{
		Created: []domain.Customer{},
		Skipped: []domain.SkippedCustomer{},
	}
	for _, c := range customers {
		if c.WhatsAppNumber == "" {
			result.Skipped = append(result.Skipped, domain.SkippedCustomer{
				WhatsAppNumber: c.WhatsAppNumber,
				Reason:         "Missing whatsapp number",
			})
			continue
		}
		err := s.repo.CreateCustomer(&c)
		if errors.Is(err, domain.ErrCustomerConflict) {
			result.Skipped = append(result.Skipped, domain.SkippedCustomer{
				WhatsAppNumber: c.WhatsAppNumber,
				Reason:         "Already exists",
			})
			continue
		}
		if err != nil {
			return nil, err
		}
		result.Created = append(result.Created, c)
	}
	return result, nil
}

func (s *CustomerService) Update(c *domain.Customer) error {
	return s.repo.UpdateCustomer(c)
}

func (s *CustomerService) Delete(id int) (int64, error) {
	return s.repo.DeleteCustomer(id)
}

var _ CustomerServiceInterface = (*CustomerService)(nil)
