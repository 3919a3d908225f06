package resource

import (
	"time"
)

type ErrorAndWarningResource struct {
	ID              int       `json:"id"`
	CreatedDateTime time.Time `json:"created_date_time"`
	ShipName        string    `json:"ship_name"`
	Message         string    `json:"message"`
}

type ListEntriesResource struct {
	Entries []ErrorAndWarningResource `json:"entries"`
}
