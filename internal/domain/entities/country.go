package entities

type Country struct {
	CountryID        int    `json:"country_id" gorm:"primaryKey;column:country_id"`
	Name             string `json:"name" gorm:"column:name"`
	ISOCode2         string `json:"iso_code_2" gorm:"column:iso_code_2"`
	ISOCode3         string `json:"iso_code_3" gorm:"column:iso_code_3"`
	AddressFormat    string `json:"address_format" gorm:"column:address_format"`
	PostcodeRequired bool   `json:"postcode_required" gorm:"column:postcode_required"`
	Status           bool   `json:"status" gorm:"column:status"`
}

func (Country) TableName() string {
	return "oc_country"
}
