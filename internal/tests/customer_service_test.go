package tests

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/sanjayxseth/mskitchen/internal/domain"
	"github.com/sanjayxseth/mskitchen/internal/mocks"
	"github.com/sanjayxseth/mskitchen/internal/service"
)

func TestCustomerService_Create_RequiresNumber(t *testing.T) {
	repository := mocks.NewCustomerRepository(t)
	svc := service.NewCustomerService(repository)

	err := svc.Create(&domain.Customer{Name: "Asha"})
	assert.ErrorIs(t, err, domain.ErrCustomerRequired)
}

func TestCustomerService_BulkCreate(t *testing.T) {
	repository := mocks.NewCustomerRepository(t)
	svc := service.NewCustomerService(repository)

	customers := []domain.Customer{
		{WhatsAppNumber: "+911111111111", Name: "Asha"},
		{WhatsAppNumber: "+912222222222", Name: "Ravi"},
		{Name: "No Number"},
	}

	repository.On("CreateCustomer", mock.MatchedBy(func(c *domain.Customer) bool {
		return c.WhatsAppNumber == "+911111111111"
	})).Return(nil).Once()
	repository.On("CreateCustomer", mock.MatchedBy(func(c *domain.Customer) bool {
		return c.WhatsAppNumber == "+912222222222"
	})).Return(domain.ErrCustomerConflict).Once()

	result, err := svc.BulkCreate(customers)
	assert.NoError(t, err)
	assert.Len(t, result.Created, 1)
	assert.Len(t, result.Skipped, 2)
	assert.Equal(t, "Already exists", result.Skipped[0].Reason)
	assert.Equal(t, "Missing whatsapp number", result.Skipped[1].Reason)
}
