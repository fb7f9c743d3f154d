package entities

import "time"

// AdminUser mapeia a tabela oc_user (usuários do painel admin).
type AdminUser struct {
	UserID      int       `json:"user_id" gorm:"primaryKey;column:user_id"`
	UserGroupID int       `json:"user_group_id" gorm:"column:user_group_id"`
	Username    string    `json:"username" gorm:"column:username"`
	Password    string    `json:"-" gorm:"column:password"`
	Salt        string    `json:"-" gorm:"column:salt"`
	Firstname   string    `json:"firstname" gorm:"column:firstname"`
	Lastname    string    `json:"lastname" gorm:"column:lastname"`
	Email       string    `json:"email" gorm:"column:email"`
	Image       string    `json:"image" gorm:"column:image"`
	IP          string    `json:"-" gorm:"column:ip"`
	Status      bool      `json:"status" gorm:"column:status"`
	DateAdded   time.Time `json:"date_added" gorm:"column:date_added"`
}

func (AdminUser) TableName() string {
	return "oc_user"
}
