package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/flowpro-systems/field_service_app/internal/apperrors"
	"github.com/flowpro-systems/field_service_app/internal/core/domain"
	portssvc "github.com/flowpro-systems/field_service_app/internal/core/ports/services"
	"github.com/flowpro-systems/field_service_app/internal/core/services"
	"github.com/flowpro-systems/field_service_app/internal/dto"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	repo    *MockCustomerRepository
	service portssvc.CustomerSvcFacade
	ctx     context.Context
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.repo = new(MockCustomerRepository)
	s.service = services.NewCustomerService(s.repo)
	s.ctx = context.Background()
}

func TestCustomerServiceTestSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) TestCreateCustomerSetsIdentityAndAudit() {
	var saved domain.Customer
	s.repo.On("SaveCustomer", s.ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(domain.Customer) }).
		Return(nil)

	customer, err := s.service.CreateCustomer(s.ctx, dto.CreateCustomerRequest{
		Name:  "O'Brien & Sons",
		Phone: "0400 111 222",
	}, "user-1")

	s.NoError(err)
	s.NotEmpty(customer.CustomerID)
	s.Equal(saved.CustomerID, customer.CustomerID)
	s.Equal("user-1", saved.CreatedBy)
	s.Equal(saved.CreatedAt, saved.LastUpdatedAt)
}

func (s *CustomerServiceTestSuite) TestUpdateCustomerAppliesOnlyProvidedFields() {
	existing := &domain.Customer{CustomerID: "cust-1", Name: "Acme", Phone: "123", Email: "old@acme.example"}
	s.repo.On("FindCustomerByID", s.ctx, "cust-1").Return(existing, nil)

	var updated domain.Customer
	s.repo.On("UpdateCustomer", s.ctx, mock.AnythingOfType("domain.Customer")).
		Run(func(args mock.Arguments) { updated = args.Get(1).(domain.Customer) }).
		Return(nil)

	newEmail := "new@acme.example"
	_, err := s.service.UpdateCustomer(s.ctx, "cust-1", dto.UpdateCustomerRequest{Email: &newEmail}, "user-2")

	s.NoError(err)
	s.Equal("new@acme.example", updated.Email)
	s.Equal("Acme", updated.Name, "omitted fields keep their stored values")
	s.Equal("user-2", updated.LastUpdatedBy)
}

func (s *CustomerServiceTestSuite) TestUpdateCustomerNotFound() {
	s.repo.On("FindCustomerByID", s.ctx, "ghost").Return(nil, apperrors.ErrNotFound)

	customer, err := s.service.UpdateCustomer(s.ctx, "ghost", dto.UpdateCustomerRequest{}, "user-1")

	s.Nil(customer)
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *CustomerServiceTestSuite) TestDeleteCustomer() {
	s.repo.On("DeleteCustomer", s.ctx, "cust-1").Return(nil)

	s.NoError(s.service.DeleteCustomer(s.ctx, "cust-1", "user-1"))
	s.repo.AssertExpectations(s.T())
}
