package entities

type Address struct {
	AddressID  int    `json:"address_id" gorm:"primaryKey;column:address_id"`
	CustomerID int    `json:"customer_id" gorm:"column:customer_id"`
	Firstname  string `json:"firstname" gorm:"column:firstname"`
	Lastname   string `json:"lastname" gorm:"column:lastname"`
	Company    string `json:"company" gorm:"column:company"`
	Address1   string `json:"address_1" gorm:"column:address_1"`
	Address2   string `json:"address_2" gorm:"column:address_2"`
	City       string `json:"city" gorm:"column:city"`
	Postcode   string `json:"postcode" gorm:"column:postcode"`
	CountryID  int    `json:"country_id" gorm:"column:country_id"`
	ZoneID     int    `json:"zone_id" gorm:"column:zone_id"`
}

func (Address) TableName() string {
	return "oc_address"
}
