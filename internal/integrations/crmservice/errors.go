package crmservice

import "errors"

var (
	// ErrCustomerNotFound возвращается, когда клиент не зарегистрирован в CRM
	ErrCustomerNotFound = errors.New("customer not found in crm")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("crmservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("crmservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что CRMService недоступен и бронирование создаётся
	// с именем клиента из запроса, без обогащения из CRM
	ErrServiceDegraded = errors.New("crmservice unavailable: graceful degradation applied")
)
