package entities

import "time"

// Event types recorded per tracked request.
const (
	EventPageview       = "pageview"
	EventSearch         = "search"
	EventProductView    = "product_view"
	EventAddToCart      = "add_to_cart"
	EventRemoveFromCart = "remove_from_cart"
	EventUpdateCart     = "update_cart"
)

// UserActivity mapeia a tabela api_user_activity — append-only, one row
// per tracked request.
type UserActivity struct {
	ActivityID  int       `json:"activity_id" gorm:"primaryKey;autoIncrement;column:activity_id"`
	SessionID   string    `json:"session_id" gorm:"column:session_id;size:40;index"`
	CustomerID  *int      `json:"customer_id" gorm:"column:customer_id;index"`
	UserType    string    `json:"user_type" gorm:"column:user_type;size:20;default:guest"`
	IPAddress   string    `json:"ip_address" gorm:"column:ip_address;size:45"`
	UserAgent   string    `json:"user_agent" gorm:"column:user_agent;type:text"`
	URL         string    `json:"url" gorm:"column:url;type:text"`
	Referer     string    `json:"referer" gorm:"column:referer;type:text"`
	PageTitle   string    `json:"page_title" gorm:"column:page_title;size:255"`
	QueryParams string    `json:"query_params" gorm:"column:query_params;type:text"`
	TimeSpent   int       `json:"time_spent" gorm:"column:time_spent"`
	EventType   string    `json:"event_type" gorm:"column:event_type;size:50"`
	EventData   string    `json:"event_data" gorm:"column:event_data;type:text"`
	Country     string    `json:"country" gorm:"column:country;size:100"`
	Region      string    `json:"region" gorm:"column:region;size:100"`
	City        string    `json:"city" gorm:"column:city;size:100"`
	DateAdded   time.Time `json:"date_added" gorm:"column:date_added"`
}

func (UserActivity) TableName() string {
	return "api_user_activity"
}
