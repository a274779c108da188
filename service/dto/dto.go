package dto

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type Token struct {
	Token string `json:"token"`
}

type Id struct {
	Id uint32 `json:"id"`
}

type UploadResult struct {
	Count int `json:"count"`
}

type NewTemplate struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Template struct {
	Id    uint32 `json:"id"`
	Title string `json:"title"`
	Body  string `json:"body"`
}

type Contact struct {
	Id        uint32   `json:"id"`
	Phone     string   `json:"phone"`
	Name      *string  `json:"name"`
	Amount    *float64 `json:"amount"`
	Sent      bool     `json:"sent"`
	BatchDate string   `json:"batchDate"`
}

type BroadcastRequest struct {
	TemplateId uint32 `json:"templateId"`
}

type SendFailure struct {
	Phone string `json:"phone"`
	Error string `json:"error"`
}

type BroadcastResult struct {
	SuccessCount int           `json:"successCount"`
	FailureCount int           `json:"failureCount"`
	Failures     []SendFailure `json:"failures"`
}

type BroadcastProgress struct {
	Running      bool `json:"running"`
	Total        int  `json:"total"`
	Done         int  `json:"done"`
	SuccessCount int  `json:"successCount"`
	FailureCount int  `json:"failureCount"`
}

//SendEvent is published on the internal event bus once per dispatched recipient
type SendEvent struct {
	OwnerId uint32
	Phone   string
	Ok      bool
	Error   string
}

type SingleSend struct {
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

type SendResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data"`
}

type Error struct {
	Error string `json:"error"`
}
