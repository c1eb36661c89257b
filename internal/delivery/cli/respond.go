package cli

import (
	"errors"

	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/response"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

// ErrCommandFailed is returned after a failure envelope has been printed, so
// the caller only needs to set the exit code.
var ErrCommandFailed = errors.New("command failed")

func success(cmd *cobra.Command, message string, data interface{}) error {
	return response.Success(cmd.OutOrStdout(), message, data)
}

func successList(cmd *cobra.Command, message string, data interface{}, total int) error {
	return response.SuccessWithMeta(cmd.OutOrStdout(), message, data, &response.Meta{Total: total})
}

// fail prints the envelope for err. fallback is used for unexpected errors.
func fail(cmd *cobra.Command, err error, fallback string) error {
	out := cmd.OutOrStdout()

	var notFound *usecase.NotFoundError
	switch {
	case errors.Is(err, usecase.ErrNotAuthenticated):
		response.Unauthorized(out, "Not logged in")
	case errors.As(err, &notFound):
		response.NotFound(out, notFound.Error())
	case errors.Is(err, usecase.ErrUserNotFound):
		response.NotFound(out, "User not found")
	case errors.Is(err, usecase.ErrDuplicateUsername):
		response.Error(out, "Username already exists", nil)
	case errors.Is(err, usecase.ErrInvalidCredentials):
		response.Error(out, "Invalid username or password", nil)
	case errors.Is(err, usecase.ErrWrongPassword):
		response.Error(out, "Current password is incorrect", nil)
	case errors.Is(err, usecase.ErrMalformedInput):
		response.Error(out, "Invalid data format", err.Error())
	default:
		response.InternalError(out, fallback)
	}
	return ErrCommandFailed
}

func failValidation(cmd *cobra.Command, v *validator.CustomValidator, err error) error {
	response.ValidationError(cmd.OutOrStdout(), v.FormatValidationErrors(err))
	return ErrCommandFailed
}

func failMessage(cmd *cobra.Command, message string) error {
	response.Error(cmd.OutOrStdout(), message, nil)
	return ErrCommandFailed
}

// changedString returns the flag value only when the user set it.
func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil
	}
	return &value
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	value, err := cmd.Flags().GetBool(name)
	if err != nil {
		return nil
	}
	return &value
}
