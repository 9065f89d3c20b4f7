package customer

import "strings"

type Customer struct {
	CustomerID int64  `json:"CustomerID"`
	Name       string `json:"Name"`
	Age        int    `json:"age"`
	Gender     string `json:"gender"`
	Phone      string `json:"Phone"`
	Address    string `json:"Address"`
}

func NewCustomer(name string, age int, gender, phone, address string) *Customer {
	c := &Customer{
		Name:    name,
		Age:     age,
		Gender:  gender,
		Phone:   phone,
		Address: address,
	}
	c.Normalize()
	return c
}

// Normalize trims surrounding whitespace from every text attribute.
func (c *Customer) Normalize() {
	c.Name = strings.TrimSpace(c.Name)
	c.Gender = strings.TrimSpace(c.Gender)
	c.Phone = strings.TrimSpace(c.Phone)
	c.Address = strings.TrimSpace(c.Address)
}
