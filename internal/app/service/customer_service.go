package service

import (
	"errors"
	"time"

	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/repository"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound  = errors.New("customer not found")
	ErrCustomerHasOrders = errors.New("customer is referenced by one or more orders")
	ErrEmailTaken        = errors.New("email already in use")
	ErrPhoneTaken        = errors.New("phone already in use")
)

type CustomerInput struct {
	FirstName  string
	LastName   string
	Email      string
	Phone      string
	BirthDate  *time.Time
	Membership model.Membership
}

type AddressInput struct {
	Street string
	City   string
}

type CustomerService interface {
	ListCustomers() ([]model.Customer, error)
	GetCustomerByID(id uint) (*model.Customer, error)
	CreateCustomer(input CustomerInput) (*model.Customer, error)
	UpdateCustomer(id uint, input CustomerInput) (*model.Customer, error)
	DeleteCustomer(id uint) error
	ListAddresses(customerID uint) ([]model.Address, error)
	AddAddress(customerID uint, input AddressInput) (*model.Address, error)
}

type customerService struct {
	customerRepo repository.CustomerRepository
	db           *gorm.DB
}

func NewCustomerService(customerRepo repository.CustomerRepository, db *gorm.DB) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		db:           db,
	}
}

func (s *customerService) ListCustomers() ([]model.Customer, error) {
	return s.customerRepo.FindAll()
}

func (s *customerService) GetCustomerByID(id uint) (*model.Customer, error) {
	customer, err := s.customerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, err
	}
	return customer, nil
}

// checkUniqueness pre-checks email and phone so the common duplicate case
// gets a clean error; the unique indexes remain the backstop for races.
func (s *customerService) checkUniqueness(email, phone string, excludeID uint) error {
	if existing, err := s.customerRepo.FindByEmail(email); err == nil && existing.ID != excludeID {
		return ErrEmailTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	if existing, err := s.customerRepo.FindByPhone(phone); err == nil && existing.ID != excludeID {
		return ErrPhoneTaken
	} else if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}
	return nil
}

func (s *customerService) CreateCustomer(input CustomerInput) (*model.Customer, error) {
	logger.Info("Creating customer", map[string]interface{}{
		"email": input.Email,
	})

	if err := s.checkUniqueness(input.Email, input.Phone, 0); err != nil {
		logger.Warn("Customer create rejected: duplicate contact", map[string]interface{}{
			"email": input.Email,
		})
		return nil, err
	}

	membership := input.Membership
	if membership == "" {
		membership = model.MembershipBronze
	}

	customer := &model.Customer{
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Email:      input.Email,
		Phone:      input.Phone,
		BirthDate:  input.BirthDate,
		Membership: membership,
	}
	if err := s.customerRepo.Create(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) UpdateCustomer(id uint, input CustomerInput) (*model.Customer, error) {
	customer, err := s.GetCustomerByID(id)
	if err != nil {
		return nil, err
	}

	if err := s.checkUniqueness(input.Email, input.Phone, id); err != nil {
		return nil, err
	}

	customer.FirstName = input.FirstName
	customer.LastName = input.LastName
	customer.Email = input.Email
	customer.Phone = input.Phone
	customer.BirthDate = input.BirthDate
	if input.Membership != "" {
		customer.Membership = input.Membership
	}

	if err := s.customerRepo.Update(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

// DeleteCustomer rejects while orders reference the customer; addresses
// cascade in the same transaction.
func (s *customerService) DeleteCustomer(id uint) error {
	if _, err := s.GetCustomerByID(id); err != nil {
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		var orders int64
		if err := tx.Model(&model.Order{}).Where("customer_id = ?", id).Count(&orders).Error; err != nil {
			return err
		}
		if orders > 0 {
			logger.Warn("Customer delete rejected: orders reference it", map[string]interface{}{
				"customer_id": id,
				"orders":      orders,
			})
			return ErrCustomerHasOrders
		}

		if err := tx.Where("customer_id = ?", id).Delete(&model.Address{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.Customer{}, id).Error
	})
}

func (s *customerService) ListAddresses(customerID uint) ([]model.Address, error) {
	if _, err := s.GetCustomerByID(customerID); err != nil {
		return nil, err
	}
	var addresses []model.Address
	err := s.db.Where("customer_id = ?", customerID).Order("id ASC").Find(&addresses).Error
	if err != nil {
		return nil, err
	}
	return addresses, nil
}

func (s *customerService) AddAddress(customerID uint, input AddressInput) (*model.Address, error) {
	if _, err := s.GetCustomerByID(customerID); err != nil {
		return nil, err
	}
	address := &model.Address{
		Street:     input.Street,
		City:       input.City,
		CustomerID: customerID,
	}
	if err := s.db.Create(address).Error; err != nil {
		logger.Error("Failed to create address", err, map[string]interface{}{
			"customer_id": customerID,
		})
		return nil, err
	}
	return address, nil
}
