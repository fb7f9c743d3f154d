package entities

import "time"

type Product struct {
	ProductID      int        `json:"product_id" gorm:"primaryKey;column:product_id"`
	Model          string     `json:"model" gorm:"column:model"`
	SKU            string     `json:"sku" gorm:"column:sku"`
	UPC            string     `json:"upc" gorm:"column:upc"`
	EAN            string     `json:"ean" gorm:"column:ean"`
	Location       string     `json:"location" gorm:"column:location"`
	Quantity       int        `json:"quantity" gorm:"column:quantity"`
	StockStatusID  int        `json:"stock_status_id" gorm:"column:stock_status_id"`
	Image          string     `json:"image" gorm:"column:image"`
	ManufacturerID int        `json:"manufacturer_id" gorm:"column:manufacturer_id"`
	Shipping       bool       `json:"shipping" gorm:"column:shipping"`
	Price          float64    `json:"price" gorm:"column:price"`
	Points         int        `json:"points" gorm:"column:points"`
	TaxClassID     int        `json:"tax_class_id" gorm:"column:tax_class_id"`
	DateAvailable  *time.Time `json:"date_available" gorm:"column:date_available"`
	Weight         float64    `json:"weight" gorm:"column:weight"`
	Minimum        int        `json:"minimum" gorm:"column:minimum"`
	SortOrder      int        `json:"sort_order" gorm:"column:sort_order"`
	Status         bool       `json:"status" gorm:"column:status"`
	Viewed         int        `json:"viewed" gorm:"column:viewed"`
	DateAdded      time.Time  `json:"date_added" gorm:"column:date_added"`
	DateModified   time.Time  `json:"date_modified" gorm:"column:date_modified"`

	Descriptions []ProductDescription `json:"descriptions,omitempty" gorm:"foreignKey:ProductID;references:ProductID"`
	Images       []ProductImage       `json:"images,omitempty" gorm:"foreignKey:ProductID;references:ProductID"`
}

func (Product) TableName() string {
	return "oc_product"
}

type ProductDescription struct {
	ProductID       int    `json:"product_id" gorm:"primaryKey;column:product_id"`
	LanguageID      int    `json:"language_id" gorm:"primaryKey;column:language_id"`
	Name            string `json:"name" gorm:"column:name"`
	Description     string `json:"description" gorm:"column:description"`
	Tag             string `json:"tag" gorm:"column:tag"`
	MetaTitle       string `json:"meta_title" gorm:"column:meta_title"`
	MetaDescription string `json:"meta_description" gorm:"column:meta_description"`
	MetaKeyword     string `json:"meta_keyword" gorm:"column:meta_keyword"`
}

func (ProductDescription) TableName() string {
	return "oc_product_description"
}

type ProductImage struct {
	ProductImageID int    `json:"product_image_id" gorm:"primaryKey;column:product_image_id"`
	ProductID      int    `json:"product_id" gorm:"column:product_id"`
	Image          string `json:"image" gorm:"column:image"`
	SortOrder      int    `json:"sort_order" gorm:"column:sort_order"`
}

func (ProductImage) TableName() string {
	return "oc_product_image"
}

type ProductToCategory struct {
	ProductID  int `json:"product_id" gorm:"primaryKey;column:product_id"`
	CategoryID int `json:"category_id" gorm:"primaryKey;column:category_id"`
}

func (ProductToCategory) TableName() string {
	return "oc_product_to_category"
}
