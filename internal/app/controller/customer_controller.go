package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mstore/storefront-backend/internal/app/model"
	"github.com/mstore/storefront-backend/internal/app/service"
	apperrors "github.com/mstore/storefront-backend/internal/errors"
	"github.com/mstore/storefront-backend/internal/middleware"
)

type CustomerController struct {
	customerService service.CustomerService
}

func NewCustomerController(customerService service.CustomerService) *CustomerController {
	return &CustomerController{
		customerService: customerService,
	}
}

type CustomerRequest struct {
	FirstName  string `json:"first_name" binding:"required,max=255"`
	LastName   string `json:"last_name" binding:"required,max=255"`
	Email      string `json:"email" binding:"required,email,max=255"`
	Phone      string `json:"phone" binding:"required,max=13"`
	BirthDate  string `json:"birth_date" binding:"omitempty,datetime=2006-01-02"`
	Membership string `json:"membership" binding:"omitempty,oneof=bronze silver gold"`
}

type AddressRequest struct {
	Street string `json:"street" binding:"required,max=255"`
	City   string `json:"city" binding:"required,max=255"`
}

func (req *CustomerRequest) toInput() service.CustomerInput {
	input := service.CustomerInput{
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Email:      req.Email,
		Phone:      req.Phone,
		Membership: model.Membership(req.Membership),
	}
	if req.Membership == "" {
		input.Membership = model.MembershipBronze
	}
	if req.BirthDate != "" {
		// format already checked by the binding tag
		birthDate, _ := time.Parse("2006-01-02", req.BirthDate)
		input.BirthDate = &birthDate
	}
	return input
}

// GetCustomers returns all customers
// GET /api/v1/customers
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	customers, err := ctrl.customerService.ListCustomers()
	if err != nil {
		log.Error("Failed to fetch customers", err, nil)
		apperrors.InternalError(c, "failed to fetch customers")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"customers": customers,
		"count":     len(customers),
	})
}

// GetCustomerByID returns a single customer
// GET /api/v1/customers/:id
func (ctrl *CustomerController) GetCustomerByID(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	customer, err := ctrl.customerService.GetCustomerByID(id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "customer not found")
			return
		}
		log.Error("Failed to fetch customer", err, map[string]interface{}{
			"customer_id": id,
		})
		apperrors.InternalError(c, "failed to fetch customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// CreateCustomer creates a new customer
// POST /api/v1/customers
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	customer, err := ctrl.customerService.CreateCustomer(req.toInput())
	if err != nil {
		if respondCustomerUniquenessError(c, err) {
			return
		}
		// the unique indexes catch races the pre-check missed
		switch info := apperrors.ParseError(err, "customer"); info.Code {
		case apperrors.CustomerEmailExists, apperrors.CustomerPhoneExists, apperrors.ResourceAlreadyExists:
			apperrors.Conflict(c, info.Code, info.Message)
			return
		}
		log.Error("Failed to create customer", err, nil)
		apperrors.InternalError(c, "failed to create customer")
		return
	}

	log.Info("Customer created", map[string]interface{}{
		"customer_id": customer.ID,
	})

	c.JSON(http.StatusCreated, gin.H{"customer": customer})
}

// UpdateCustomer updates an existing customer
// PUT /api/v1/customers/:id
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	customer, err := ctrl.customerService.UpdateCustomer(id, req.toInput())
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "customer not found")
			return
		}
		if respondCustomerUniquenessError(c, err) {
			return
		}
		switch info := apperrors.ParseError(err, "customer"); info.Code {
		case apperrors.CustomerEmailExists, apperrors.CustomerPhoneExists, apperrors.ResourceAlreadyExists:
			apperrors.Conflict(c, info.Code, info.Message)
			return
		}
		log.Error("Failed to update customer", err, map[string]interface{}{
			"customer_id": id,
		})
		apperrors.InternalError(c, "failed to update customer")
		return
	}

	c.JSON(http.StatusOK, gin.H{"customer": customer})
}

// DeleteCustomer deletes a customer; refused while orders reference them
// DELETE /api/v1/customers/:id
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := ctrl.customerService.DeleteCustomer(id); err != nil {
		switch {
		case errors.Is(err, service.ErrCustomerNotFound):
			apperrors.NotFound(c, apperrors.ResourceNotFound, "customer not found")
		case errors.Is(err, service.ErrCustomerHasOrders):
			apperrors.Conflict(c, apperrors.CustomerHasOrders, "customer still has orders")
		default:
			log.Error("Failed to delete customer", err, map[string]interface{}{
				"customer_id": id,
			})
			apperrors.InternalError(c, "failed to delete customer")
		}
		return
	}

	log.Info("Customer deleted", map[string]interface{}{
		"customer_id": id,
	})

	c.Status(http.StatusNoContent)
}

// GetAddresses returns all addresses of a customer
// GET /api/v1/customers/:id/addresses
func (ctrl *CustomerController) GetAddresses(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	addresses, err := ctrl.customerService.ListAddresses(id)
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "customer not found")
			return
		}
		log.Error("Failed to fetch addresses", err, map[string]interface{}{
			"customer_id": id,
		})
		apperrors.InternalError(c, "failed to fetch addresses")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"addresses": addresses,
		"count":     len(addresses),
	})
}

// CreateAddress attaches an address to a customer
// POST /api/v1/customers/:id/addresses
func (ctrl *CustomerController) CreateAddress(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req AddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apperrors.RespondWithValidationError(c, apperrors.BindingFieldErrors(err))
		return
	}

	address, err := ctrl.customerService.AddAddress(id, service.AddressInput{
		Street: req.Street,
		City:   req.City,
	})
	if err != nil {
		if errors.Is(err, service.ErrCustomerNotFound) {
			apperrors.NotFound(c, apperrors.ResourceNotFound, "customer not found")
			return
		}
		log.Error("Failed to create address", err, map[string]interface{}{
			"customer_id": id,
		})
		apperrors.InternalError(c, "failed to create address")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"address": address})
}

func respondCustomerUniquenessError(c *gin.Context, err error) bool {
	switch {
	case errors.Is(err, service.ErrEmailTaken):
		apperrors.Conflict(c, apperrors.CustomerEmailExists, "email already in use")
	case errors.Is(err, service.ErrPhoneTaken):
		apperrors.Conflict(c, apperrors.CustomerPhoneExists, "phone already in use")
	default:
		return false
	}
	return true
}
