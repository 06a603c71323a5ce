package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"fincalc/service"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage accounts in the configured user store",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account",
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, closeAll, err := openAuth(cmd)
		if err != nil {
			return err
		}
		defer closeAll()

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		user, err := auth.Register(cmd.Context(), username, password)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "registered %s (%s)\n", user.Username, user.ID)
		return nil
	},
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Check credentials and print a session token",
	RunE: func(cmd *cobra.Command, args []string) error {
		auth, closeAll, err := openAuth(cmd)
		if err != nil {
			return err
		}
		defer closeAll()

		username, _ := cmd.Flags().GetString("username")
		password, _ := cmd.Flags().GetString("password")
		token, err := auth.Login(cmd.Context(), username, password)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), token)
		return nil
	},
}

func init() {
	for _, c := range []*cobra.Command{userRegisterCmd, userLoginCmd} {
		c.Flags().String("username", "", "account name")
		c.Flags().String("password", "", "account password")
		_ = c.MarkFlagRequired("username")
		_ = c.MarkFlagRequired("password")
		userCmd.AddCommand(c)
	}
}

func openAuth(cmd *cobra.Command) (*service.AuthService, func(), error) {
	users, closeUsers, err := openUsers(cmd.Context())
	if err != nil {
		return nil, nil, err
	}
	cache, closeCache, err := openCache(cmd.Context())
	if err != nil {
		closeUsers()
		return nil, nil, err
	}
	auth := service.NewAuthService(users, cache, cfg.Auth.SessionTTL, cfg.Auth.BcryptCost)
	return auth, func() {
		closeCache()
		closeUsers()
	}, nil
}
