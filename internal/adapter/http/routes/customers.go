package routes

import "github.com/gin-gonic/gin"

const (
	PathCustomers   = "/customers"
	PathTechnicians = "/technicians"
	PathVendors     = "/vendors"
	PathTaxZones    = "/settings/tax-zones"
)

func addCustomerRoutes(rg *gin.RouterGroup, h Handlers) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", h.Customer.CreateCustomer)
		customers.GET("", h.Customer.ListCustomers)
		customers.GET("/:id", h.Customer.GetCustomer)
		customers.PUT("/:id", h.Customer.UpdateCustomer)
	}

	technicians := rg.Group(PathTechnicians)
	{
		technicians.POST("", h.Technician.CreateTechnician)
		technicians.GET("", h.Technician.ListTechnicians)
		technicians.GET("/:id", h.Technician.GetTechnician)
		technicians.PUT("/:id", h.Technician.UpdateTechnician)
	}

	vendors := rg.Group(PathVendors)
	{
		vendors.POST("", h.Vendor.CreateVendor)
		vendors.GET("", h.Vendor.ListVendors)
		vendors.GET("/:id", h.Vendor.GetVendor)
		vendors.PUT("/:id", h.Vendor.UpdateVendor)
	}

	zones := rg.Group(PathTaxZones)
	{
		zones.POST("", h.TaxZone.CreateTaxZone)
		zones.GET("", h.TaxZone.ListTaxZones)
		zones.GET("/:id", h.TaxZone.GetTaxZone)
		zones.PUT("/:id", h.TaxZone.UpdateTaxZone)
	}
}
