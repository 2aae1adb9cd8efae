package crmservice

// Customer модель клиента из CRMService
type Customer struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// ErrorResponse модель ошибки от CRMService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
