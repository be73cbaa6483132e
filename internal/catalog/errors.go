package catalog

import (
	"errors"

	"github.com/aws/smithy-go"
)

// errorMessage prefers the service error code and message over the SDK's
// operation-wrapped string, which buries the code several layers deep.
func errorMessage(err error) string {
	var apiErr smithy.APIError
	if errors.As(err, &apiErr) {
		return apiErr.ErrorCode() + ": " + apiErr.ErrorMessage()
	}
	return err.Error()
}
