package shared

import "fmt"

var (
	ErrNotImplemented = fmt.Errorf("not implemented")

	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrInvalidCredentials = fmt.Errorf("invalid credentials")
	ErrNotAuthenticated   = fmt.Errorf("not authenticated")
	ErrOAuthCancelled     = fmt.Errorf("authorization cancelled")
	ErrOAuthFailed        = fmt.Errorf("authorization failed")
	ErrProfileSync        = fmt.Errorf("profile sync failed")
	ErrTimeout            = fmt.Errorf("operation timed out")

	// API and resource errors
	ErrUnauthorized       = fmt.Errorf("unauthorized")
	ErrAPIRequest         = fmt.Errorf("API request failed")
	ErrServiceUnavailable = fmt.Errorf("service unavailable")
	ErrNotFound           = fmt.Errorf("resource not found")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
	ErrWeakPassword    = fmt.Errorf("password does not meet requirements")
)
