package repository

import (
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/pkg/logger"
	"gorm.io/gorm"
)

type CustomerRepository interface {
	Create(customer *model.Customer) error
	FindAll() ([]model.Customer, error)
	FindByID(id uint) (*model.Customer, error)
	FindByEmail(email string) (*model.Customer, error)
	FindByPhone(phone string) (*model.Customer, error)
	Update(customer *model.Customer) error
	CountOrders(customerID uint) (int64, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(customer *model.Customer) error {
	if err := r.db.Create(customer).Error; err != nil {
		logger.Error("Failed to create customer", err, map[string]interface{}{
			"email": customer.Email,
		})
		return err
	}
	logger.Debug("Customer created", map[string]interface{}{
		"customer_id": customer.ID,
	})
	return nil
}

func (r *customerRepository) FindAll() ([]model.Customer, error) {
	var customers []model.Customer
	err := r.db.Order("last_name ASC, first_name ASC").Find(&customers).Error
	if err != nil {
		logger.Error("Failed to list customers", err, nil)
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) FindByID(id uint) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByEmail(email string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Where("email = ?", email).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindByPhone(phone string) (*model.Customer, error) {
	var customer model.Customer
	if err := r.db.Where("phone = ?", phone).First(&customer).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) Update(customer *model.Customer) error {
	if err := r.db.Save(customer).Error; err != nil {
		logger.Error("Failed to update customer", err, map[string]interface{}{
			"customer_id": customer.ID,
		})
		return err
	}
	return nil
}

func (r *customerRepository) CountOrders(customerID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.Order{}).Where("customer_id = ?", customerID).Count(&count).Error
	return count, err
}
