package entities

import "time"

// CartItem mapeia a tabela oc_cart. A row belongs either to a logged-in
// customer (customer_id > 0) or to an anonymous tracking session.
type CartItem struct {
	CartID      int       `json:"cart_id" gorm:"primaryKey;column:cart_id"`
	APIID       int       `json:"api_id" gorm:"column:api_id"`
	CustomerID  int       `json:"customer_id" gorm:"column:customer_id"`
	SessionID   string    `json:"session_id" gorm:"column:session_id"`
	ProductID   int       `json:"product_id" gorm:"column:product_id"`
	RecurringID int       `json:"recurring_id" gorm:"column:recurring_id"`
	Option      string    `json:"option" gorm:"column:option"`
	Quantity    int       `json:"quantity" gorm:"column:quantity"`
	DateAdded   time.Time `json:"date_added" gorm:"column:date_added"`
}

func (CartItem) TableName() string {
	return "oc_cart"
}
