package request

// Property keys carried by every error/warning queue message.
const (
	PropertyTime             = "time"
	PropertyShip             = "ship"
	PropertyExceptionMessage = "exceptionmessage"
)

type QueueMessageRequest struct {
	Time             string `json:"time" validate:"required"`
	Ship             string `json:"ship" validate:"required"`
	ExceptionMessage string `json:"exceptionmessage" validate:"required"`
}

func NewQueueMessageRequest(properties map[string]string) QueueMessageRequest {
	return QueueMessageRequest{
		Time:             properties[PropertyTime],
		Ship:             properties[PropertyShip],
		ExceptionMessage: properties[PropertyExceptionMessage],
	}
}

type ListEntriesRequest struct {
	Limit int `json:"limit" query:"limit" validate:"omitempty,min=1,max=100"`
}
