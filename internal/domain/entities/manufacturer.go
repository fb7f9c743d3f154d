package entities

type Manufacturer struct {
	ManufacturerID int    `json:"manufacturer_id" gorm:"primaryKey;column:manufacturer_id"`
	Name           string `json:"name" gorm:"column:name"`
	Image          string `json:"image" gorm:"column:image"`
	SortOrder      int    `json:"sort_order" gorm:"column:sort_order"`
}

func (Manufacturer) TableName() string {
	return "oc_manufacturer"
}
