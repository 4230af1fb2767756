package response

import "fieldservice/internal/domain/entities"

type CustomerResponse struct {
	entities.Customer
	FullName string `json:"full_name"`
}

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{Customer: c, FullName: c.FullName()}
}
