package entities

import "time"

// Customer mapeia a tabela oc_customer do OpenCart.
// Only the columns the API actually reads are mapped.
type Customer struct {
	CustomerID      int       `json:"customer_id" gorm:"primaryKey;column:customer_id"`
	CustomerGroupID int       `json:"customer_group_id" gorm:"column:customer_group_id"`
	StoreID         int       `json:"store_id" gorm:"column:store_id"`
	Firstname       string    `json:"firstname" gorm:"column:firstname"`
	Lastname        string    `json:"lastname" gorm:"column:lastname"`
	Email           string    `json:"email" gorm:"column:email"`
	Telephone       string    `json:"telephone" gorm:"column:telephone"`
	Password        string    `json:"-" gorm:"column:password"`
	Salt            string    `json:"-" gorm:"column:salt"`
	Newsletter      bool      `json:"newsletter" gorm:"column:newsletter"`
	AddressID       int       `json:"address_id" gorm:"column:address_id"`
	IP              string    `json:"-" gorm:"column:ip"`
	Status          bool      `json:"status" gorm:"column:status"`
	DateAdded       time.Time `json:"date_added" gorm:"column:date_added"`
}

func (Customer) TableName() string {
	return "oc_customer"
}
