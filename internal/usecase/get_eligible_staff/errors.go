package get_eligible_staff

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_eligible_staff: invalid input data")

	// ErrSuperseded возвращается, когда за время выполнения запроса пришёл
	// более новый - побеждает последний запрос, устаревший ответ отбрасывается
	ErrSuperseded = errors.New("get_eligible_staff: superseded by a newer request")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_eligible_staff: internal error")
)
