package customer

import (
	"backoffice/internal/entities"
)

func ToDomain(c *CustomerDB) *entities.Customer {
	if c == nil {
		return nil
	}

	return &entities.Customer{
		ID:            c.ID,
		FullName:      c.FullName,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
		LoyaltyPoints: c.LoyaltyPoints,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
	}
}

func FromDomainModify(customerModify *entities.CustomerModify) *CustomerModifyDB {
	if customerModify == nil {
		return nil
	}
	customerDB := &CustomerModifyDB{}

	if customerModify.ID != nil {
		customerDB.ID = customerModify.ID
	}
	if customerModify.FullName != nil {
		customerDB.FullName = customerModify.FullName
	}
	if customerModify.Phone != nil {
		customerDB.Phone = customerModify.Phone
	}
	if customerModify.Email != nil {
		customerDB.Email = customerModify.Email
	}
	if customerModify.Address != nil {
		customerDB.Address = customerModify.Address
	}
	if customerModify.LoyaltyPoints != nil {
		customerDB.LoyaltyPoints = customerModify.LoyaltyPoints
	}

	return customerDB
}

func ToDomainList(customersDB []CustomerDB) []entities.Customer {
	if len(customersDB) == 0 {
		return []entities.Customer{}
	}

	result := make([]entities.Customer, len(customersDB))
	for i, customerDB := range customersDB {
		result[i] = *ToDomain(&customerDB)
	}
	return result
}
