package entities

type Zone struct {
	ZoneID    int    `json:"zone_id" gorm:"primaryKey;column:zone_id"`
	CountryID int    `json:"country_id" gorm:"column:country_id"`
	Name      string `json:"name" gorm:"column:name"`
	Code      string `json:"code" gorm:"column:code"`
	Status    bool   `json:"status" gorm:"column:status"`
}

func (Zone) TableName() string {
	return "oc_zone"
}
