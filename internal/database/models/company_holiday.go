package models

import "time"

// CompanyHoliday is a date on which the configured holiday policy applies.
type CompanyHoliday struct {
	BaseModel
	Date time.Time `json:"date" gorm:"type:date;not null;uniqueIndex" validate:"required"`
	Name string    `json:"name" gorm:"size:100;not null" validate:"required,max=100"`
}

// TableName returns the table name for CompanyHoliday
func (CompanyHoliday) TableName() string {
	return "company_holidays"
}
