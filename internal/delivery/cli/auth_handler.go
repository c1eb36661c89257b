package cli

import (
	"medical-tracker/internal/converter"
	"medical-tracker/internal/delivery/dto"
	"medical-tracker/internal/usecase"
	"medical-tracker/pkg/validator"

	"github.com/spf13/cobra"
)

type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validator.CustomValidator
}

func NewAuthHandler(authUsecase usecase.AuthUsecase, validator *validator.CustomValidator) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
	}
}

func (h *AuthHandler) Commands() []*cobra.Command {
	return []*cobra.Command{
		h.registerCmd(),
		h.loginCmd(),
		h.logoutCmd(),
		h.whoamiCmd(),
		h.profileCmd(),
		h.passwordCmd(),
	}
}

func (h *AuthHandler) registerCmd() *cobra.Command {
	var req dto.RegisterRequest
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account and log in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			user, err := h.authUsecase.Register(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to register")
			}
			return success(cmd, "Registration successful", converter.UserToResponse(user))
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "unique username")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	cmd.Flags().StringVar(&req.Email, "email", "", "email address")
	cmd.Flags().StringVar(&req.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&req.LastName, "last-name", "", "last name")
	return cmd
}

func (h *AuthHandler) loginCmd() *cobra.Command {
	var req dto.LoginRequest
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Log in with username and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			user, err := h.authUsecase.Login(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to log in")
			}
			return success(cmd, "Login successful", converter.UserToResponse(user))
		},
	}
	cmd.Flags().StringVar(&req.Username, "username", "", "username")
	cmd.Flags().StringVar(&req.Password, "password", "", "password")
	return cmd
}

func (h *AuthHandler) logoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "End the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.authUsecase.Logout(cmd.Context()); err != nil {
				return fail(cmd, err, "Failed to log out")
			}
			return success(cmd, "Logged out", nil)
		},
	}
}

func (h *AuthHandler) whoamiCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the logged-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := h.authUsecase.CurrentUser(cmd.Context())
			if err != nil {
				return fail(cmd, err, "Failed to get current user")
			}
			return success(cmd, "", converter.UserToResponse(user))
		},
	}
}

func (h *AuthHandler) profileCmd() *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Manage your profile",
	}

	update := &cobra.Command{
		Use:   "update",
		Short: "Update email and name",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			req := dto.UpdateProfileRequest{
				Email:     changedString(cmd, "email"),
				FirstName: changedString(cmd, "first-name"),
				LastName:  changedString(cmd, "last-name"),
			}
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			user, err := h.authUsecase.UpdateProfile(cmd.Context(), &req)
			if err != nil {
				return fail(cmd, err, "Failed to update profile")
			}
			return success(cmd, "Profile updated", converter.UserToResponse(user))
		},
	}
	update.Flags().String("email", "", "email address")
	update.Flags().String("first-name", "", "first name")
	update.Flags().String("last-name", "", "last name")

	profile.AddCommand(update)
	return profile
}

func (h *AuthHandler) passwordCmd() *cobra.Command {
	password := &cobra.Command{
		Use:   "password",
		Short: "Manage your password",
	}

	var req dto.ChangePasswordRequest
	change := &cobra.Command{
		Use:   "change",
		Short: "Change your password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := h.validator.Validate(&req); err != nil {
				return failValidation(cmd, h.validator, err)
			}

			if err := h.authUsecase.ChangePassword(cmd.Context(), &req); err != nil {
				return fail(cmd, err, "Failed to change password")
			}
			return success(cmd, "Password changed", nil)
		},
	}
	change.Flags().StringVar(&req.CurrentPassword, "current", "", "current password")
	change.Flags().StringVar(&req.NewPassword, "new", "", "new password")

	password.AddCommand(change)
	return password
}
