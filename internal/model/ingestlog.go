package model

import (
	"time"

	"gorm.io/datatypes"
)

type IngestLog struct {
	ID         int            `json:"id" gorm:"column:id;type:int(11);AUTO_INCREMENT;primary_key"`
	UUID       string         `json:"uuid" gorm:"column:uuid;type:varchar(36)"`
	ShipName   string         `json:"ship_name" gorm:"column:ship_name;type:varchar(255)"`
	Properties datatypes.JSON `json:"properties" gorm:"column:properties;type:json"`
	CreateDate time.Time      `json:"create_date" gorm:"column:create_date;type:datetime"`
}

func (m *IngestLog) TableName() string {
	return "ingest_log"
}
