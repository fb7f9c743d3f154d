package entities

import "time"

// User types attached to sessions and activities.
const (
	UserTypeGuest    = "guest"
	UserTypeCustomer = "customer"
	UserTypeAdmin    = "admin"
)

// Session mapeia a tabela api_session — one row per visiting browser,
// correlated across requests by the session_id cookie. The table belongs
// to the gateway, not to the legacy OpenCart schema.
type Session struct {
	SessionID     string    `json:"session_id" gorm:"primaryKey;column:session_id;size:40"`
	CustomerID    *int      `json:"customer_id" gorm:"column:customer_id;index"`
	UserType      string    `json:"user_type" gorm:"column:user_type;size:20;default:guest"`
	IPAddress     string    `json:"ip_address" gorm:"column:ip_address;size:45"`
	UserAgent     string    `json:"user_agent" gorm:"column:user_agent;type:text"`
	FirstVisit    time.Time `json:"first_visit" gorm:"column:first_visit"`
	LastActivity  time.Time `json:"last_activity" gorm:"column:last_activity"`
	VisitCount    int       `json:"visit_count" gorm:"column:visit_count;default:1"`
	Country       string    `json:"country" gorm:"column:country;size:100"`
	Region        string    `json:"region" gorm:"column:region;size:100"`
	City          string    `json:"city" gorm:"column:city;size:100"`
	DeviceType    string    `json:"device_type" gorm:"column:device_type;size:20"`
	Browser       string    `json:"browser" gorm:"column:browser;size:50"`
	OS            string    `json:"os" gorm:"column:os;size:50"`
	UtmSource     string    `json:"utm_source" gorm:"column:utm_source;size:100"`
	UtmMedium     string    `json:"utm_medium" gorm:"column:utm_medium;size:100"`
	UtmCampaign   string    `json:"utm_campaign" gorm:"column:utm_campaign;size:100"`
	ReferringSite string    `json:"referring_site" gorm:"column:referring_site;size:255"`
}

func (Session) TableName() string {
	return "api_session"
}
