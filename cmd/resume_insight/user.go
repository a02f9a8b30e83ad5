package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-insight/internal/auth"
	"github.com/jonathan/resume-insight/internal/types"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage user accounts",
}

var userRegisterCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a user account",
	RunE:  runUserRegister,
}

var userLoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and print an authentication token",
	RunE:  runUserLogin,
}

var (
	userName     string
	userPassword string
)

func init() {
	for _, cmd := range []*cobra.Command{userRegisterCmd, userLoginCmd} {
		cmd.Flags().StringVarP(&userName, "username", "u", "", "Username (required)")
		cmd.Flags().StringVarP(&userPassword, "password", "p", "", "Password (required)")
		_ = cmd.MarkFlagRequired("username")
		_ = cmd.MarkFlagRequired("password")
	}

	userCmd.AddCommand(userRegisterCmd)
	userCmd.AddCommand(userLoginCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserRegister(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := types.RegisterRequest{Username: userName, Password: userPassword}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid registration request: %w", err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost, cfg.PasswordPepper)
	if err != nil {
		return err
	}
	hash, err := hasher.Hash(req.Password)
	if err != nil {
		return err
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	existing, err := s.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if existing != nil {
		return fmt.Errorf("username already taken: %s", req.Username)
	}

	user, err := s.CreateUser(ctx, req.Username, hash)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Registered user %s (id: %s)\n", user.Username, user.ID)
	return nil
}

func runUserLogin(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	req := types.LoginRequest{Username: userName, Password: userPassword}
	if err := req.Validate(); err != nil {
		return fmt.Errorf("invalid login request: %w", err)
	}

	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTExpirationHours)
	if err != nil {
		return err
	}
	hasher, err := auth.NewPasswordHasher(cfg.BcryptCost, cfg.PasswordPepper)
	if err != nil {
		return err
	}

	s, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer s.Close()

	user, err := s.GetUserByUsername(ctx, req.Username)
	if err != nil {
		return err
	}
	if user == nil || !hasher.Verify(req.Password, user.PasswordHash) {
		return fmt.Errorf("invalid username or password")
	}

	token, err := tokens.GenerateToken(user.ID)
	if err != nil {
		return err
	}

	resp := types.LoginResponse{UserID: user.ID, Token: token}
	fmt.Fprintf(os.Stdout, "user: %s\ntoken: %s\n", resp.UserID, resp.Token)
	return nil
}
