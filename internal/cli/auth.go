package cli

import (
	"github.com/spf13/cobra"

	"github.com/studycare/studycare-client/internal/core/domain"
)

func (c *CLI) authCommands() []*cobra.Command {
	var reg struct {
		email, password, name, role string
	}
	register := &cobra.Command{
		Use:   "register",
		Short: "Create an account and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := c.password(reg.password)
			if err != nil {
				return err
			}
			result, err := c.app.Session.Register(cmd.Context(), domain.RegisterRequest{
				Email:    reg.email,
				Password: pw,
				FullName: reg.name,
				Role:     domain.Role(reg.role),
			})
			if err != nil {
				return err
			}
			return c.print(result.User)
		},
	}
	register.Flags().StringVar(&reg.email, "email", "", "account email")
	register.Flags().StringVar(&reg.password, "password", "", "account password (prompted when omitted)")
	register.Flags().StringVar(&reg.name, "name", "", "full name")
	register.Flags().StringVar(&reg.role, "role", string(domain.RoleStudent), "student, teacher or caregiver")
	_ = register.MarkFlagRequired("email")

	var login struct{ email, password string }
	loginCmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			pw, err := c.password(login.password)
			if err != nil {
				return err
			}
			result, err := c.app.Session.Login(cmd.Context(), domain.LoginRequest{Email: login.email, Password: pw})
			if err != nil {
				return err
			}
			return c.print(result.User)
		},
	}
	loginCmd.Flags().StringVar(&login.email, "email", "", "account email")
	loginCmd.Flags().StringVar(&login.password, "password", "", "account password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("email")

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Forget the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			c.app.Session.Logout(cmd.Context())
			return nil
		},
	}

	whoami := &cobra.Command{
		Use:   "whoami",
		Short: "Show the claims of the stored session token",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			claims, err := c.app.Session.Claims()
			if err != nil {
				return err
			}
			return c.print(claims)
		},
	}

	return []*cobra.Command{register, loginCmd, logout, whoami, c.profileCommand()}
}

func (c *CLI) profileCommand() *cobra.Command {
	profile := &cobra.Command{
		Use:   "profile",
		Short: "Show the signed-in user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.Session.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(user)
		},
	}

	var upd struct {
		name, language string
		simplified     bool
	}
	update := &cobra.Command{
		Use:   "update",
		Short: "Change profile fields; flags left unset are kept",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var req domain.ProfileUpdate
			flags := cmd.Flags()
			if flags.Changed("name") {
				req.FullName = &upd.name
			}
			if flags.Changed("language") {
				req.LanguagePreference = &upd.language
			}
			if flags.Changed("simplified") {
				req.SimplifiedMode = &upd.simplified
			}
			return emit(c, c.app.API.Auth.UpdateProfile(cmd.Context(), req))
		},
	}
	update.Flags().StringVar(&upd.name, "name", "", "full name")
	update.Flags().StringVar(&upd.language, "language", "", "preferred language code")
	update.Flags().BoolVar(&upd.simplified, "simplified", false, "simplified mode")

	toggle := &cobra.Command{
		Use:   "toggle-simplified",
		Short: "Flip simplified mode",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			user, err := c.app.Session.ToggleSimplifiedMode(cmd.Context())
			if err != nil {
				return err
			}
			return c.print(user)
		},
	}

	profile.AddCommand(update, toggle)
	return profile
}
