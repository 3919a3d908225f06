package model

import "time"

type ErrorAndWarning struct {
	ID              int       `json:"id" gorm:"column:Id;type:int(11);AUTO_INCREMENT;primary_key"`
	CreatedDateTime time.Time `json:"created_date_time" gorm:"column:CreatedDateTime;type:datetime"`
	ShipName        string    `json:"ship_name" gorm:"column:ShipName;type:varchar(255)"`
	Message         string    `json:"message" gorm:"column:Message;type:text"`
}

func (m *ErrorAndWarning) TableName() string {
	return "ErrorAndWarningsEntries"
}
