package entities

import "time"

// Order mapeia a tabela oc_order. The legacy table carries dozens of
// denormalized payment/shipping columns; only the ones surfaced by the
// API are mapped here.
type Order struct {
	OrderID          int       `json:"order_id" gorm:"primaryKey;column:order_id"`
	InvoiceNo        int       `json:"invoice_no" gorm:"column:invoice_no"`
	InvoicePrefix    string    `json:"invoice_prefix" gorm:"column:invoice_prefix"`
	StoreID          int       `json:"store_id" gorm:"column:store_id"`
	StoreName        string    `json:"store_name" gorm:"column:store_name"`
	CustomerID       int       `json:"customer_id" gorm:"column:customer_id"`
	Firstname        string    `json:"firstname" gorm:"column:firstname"`
	Lastname         string    `json:"lastname" gorm:"column:lastname"`
	Email            string    `json:"email" gorm:"column:email"`
	Telephone        string    `json:"telephone" gorm:"column:telephone"`
	PaymentMethod    string    `json:"payment_method" gorm:"column:payment_method"`
	PaymentAddress1  string    `json:"payment_address_1" gorm:"column:payment_address_1"`
	PaymentCity      string    `json:"payment_city" gorm:"column:payment_city"`
	PaymentPostcode  string    `json:"payment_postcode" gorm:"column:payment_postcode"`
	PaymentCountry   string    `json:"payment_country" gorm:"column:payment_country"`
	ShippingMethod   string    `json:"shipping_method" gorm:"column:shipping_method"`
	ShippingAddress1 string    `json:"shipping_address_1" gorm:"column:shipping_address_1"`
	ShippingCity     string    `json:"shipping_city" gorm:"column:shipping_city"`
	ShippingPostcode string    `json:"shipping_postcode" gorm:"column:shipping_postcode"`
	ShippingCountry  string    `json:"shipping_country" gorm:"column:shipping_country"`
	Comment          string    `json:"comment" gorm:"column:comment"`
	Total            float64   `json:"total" gorm:"column:total"`
	OrderStatusID    int       `json:"order_status_id" gorm:"column:order_status_id"`
	CurrencyID       int       `json:"currency_id" gorm:"column:currency_id"`
	IP               string    `json:"-" gorm:"column:ip"`
	DateAdded        time.Time `json:"date_added" gorm:"column:date_added"`
	DateModified     time.Time `json:"date_modified" gorm:"column:date_modified"`

	Products []OrderProduct `json:"products,omitempty" gorm:"foreignKey:OrderID;references:OrderID"`
}

func (Order) TableName() string {
	return "oc_order"
}

type OrderProduct struct {
	OrderProductID int     `json:"order_product_id" gorm:"primaryKey;column:order_product_id"`
	OrderID        int     `json:"order_id" gorm:"column:order_id"`
	ProductID      int     `json:"product_id" gorm:"column:product_id"`
	Name           string  `json:"name" gorm:"column:name"`
	Model          string  `json:"model" gorm:"column:model"`
	Quantity       int     `json:"quantity" gorm:"column:quantity"`
	Price          float64 `json:"price" gorm:"column:price"`
	Total          float64 `json:"total" gorm:"column:total"`
	Tax            float64 `json:"tax" gorm:"column:tax"`
	Reward         int     `json:"reward" gorm:"column:reward"`
}

func (OrderProduct) TableName() string {
	return "oc_order_product"
}
