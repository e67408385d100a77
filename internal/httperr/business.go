package httperr

import "errors"

// BusinessError is a domain-rule rejection identified by a stable code
// ("time_conflict", "service_not_found", ...). Handlers map codes to HTTP
// statuses and user-facing messages.
type BusinessError struct {
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrBusiness(code string) error {
	return BusinessError{Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}
