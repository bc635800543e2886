package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"courierPortal/internal/identity"
	"courierPortal/models"
)

var registerOpts struct {
	name     string
	email    string
	password string
	phone    string
	address  string
	city     string
	pincode  string
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a customer account",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := app.accounts.Register(cmd.Context(), identity.RegisterSpec{
			Name:     registerOpts.name,
			Email:    registerOpts.email,
			Password: registerOpts.password,
			Contact: models.Contact{
				Name:    registerOpts.name,
				Phone:   registerOpts.phone,
				Address: registerOpts.address,
				City:    registerOpts.city,
				Pincode: registerOpts.pincode,
			},
		})
		if err != nil {
			return fail(err)
		}
		color.Green("Registered %s (%s)", u.Name, u.Email)
		return nil
	},
}

var loginOpts struct {
	email    string
	password string
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and persist the session",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := app.accounts.Login(cmd.Context(), loginOpts.email, loginOpts.password)
		if err != nil {
			return fail(err)
		}
		color.Green("Welcome back, %s (%s)", u.Name, u.Role)
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the persisted session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := app.accounts.Logout(); err != nil {
			return fail(err)
		}
		color.Green("Logged out")
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	RunE: func(cmd *cobra.Command, args []string) error {
		u, err := currentUser()
		if err != nil {
			return fail(err)
		}
		fmt.Printf("%s <%s> role=%s\n", u.Name, u.Email, u.Role)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerOpts.name, "name", "", "full name")
	registerCmd.Flags().StringVar(&registerOpts.email, "email", "", "email address")
	registerCmd.Flags().StringVar(&registerOpts.password, "password", "", "password")
	registerCmd.Flags().StringVar(&registerOpts.phone, "phone", "", "phone number")
	registerCmd.Flags().StringVar(&registerOpts.address, "address", "", "street address")
	registerCmd.Flags().StringVar(&registerOpts.city, "city", "", "city")
	registerCmd.Flags().StringVar(&registerOpts.pincode, "pincode", "", "pincode")
	_ = registerCmd.MarkFlagRequired("email")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringVar(&loginOpts.email, "email", "", "email address")
	loginCmd.Flags().StringVar(&loginOpts.password, "password", "", "password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}
