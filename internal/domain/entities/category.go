package entities

import "time"

type Category struct {
	CategoryID   int       `json:"category_id" gorm:"primaryKey;column:category_id"`
	Image        string    `json:"image" gorm:"column:image"`
	ParentID     int       `json:"parent_id" gorm:"column:parent_id"`
	Top          bool      `json:"top" gorm:"column:top"`
	SortOrder    int       `json:"sort_order" gorm:"column:sort_order"`
	Status       bool      `json:"status" gorm:"column:status"`
	DateAdded    time.Time `json:"date_added" gorm:"column:date_added"`
	DateModified time.Time `json:"date_modified" gorm:"column:date_modified"`

	Descriptions []CategoryDescription `json:"descriptions,omitempty" gorm:"foreignKey:CategoryID;references:CategoryID"`
}

func (Category) TableName() string {
	return "oc_category"
}

type CategoryDescription struct {
	CategoryID      int    `json:"category_id" gorm:"primaryKey;column:category_id"`
	LanguageID      int    `json:"language_id" gorm:"primaryKey;column:language_id"`
	Name            string `json:"name" gorm:"column:name"`
	Description     string `json:"description" gorm:"column:description"`
	MetaTitle       string `json:"meta_title" gorm:"column:meta_title"`
	MetaDescription string `json:"meta_description" gorm:"column:meta_description"`
	MetaKeyword     string `json:"meta_keyword" gorm:"column:meta_keyword"`
}

func (CategoryDescription) TableName() string {
	return "oc_category_description"
}
