package rest

import (
	"errors"

	"github.com/dentastore/backoffice-client/pkg/apperror"
)

// FetchError re-signals a transport error as a resource-level fetch error
// with a user-facing message: the backend's own message when the response
// carried one, otherwise a generic connectivity message naming the resource.
// Unauthorized errors pass through untouched so the global 401 handling stays
// visible to callers.
func FetchError(err error, resource string) error {
	if err == nil {
		return nil
	}
	if apperror.IsUnauthorized(err) {
		return err
	}
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		message := appErr.Message
		if appErr.Code == 0 {
			message = ""
		}
		return apperror.NewFetchError(resource, appErr.Code, message)
	}
	return apperror.NewFetchError(resource, 0, "")
}
