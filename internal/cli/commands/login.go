package commands

import (
	"BucketShare/internal/config"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"BucketShare/internal/cli/api"
	"BucketShare/internal/cli/auth"
)

type LoginRequest struct {
	EmailOrUsername string `json:"email_or_username"`
	Password        string `json:"password"`
}

type loginCmd struct{}

func (loginCmd) Name() string        { return "login" }
func (loginCmd) Description() string { return "Login and store bearer token" }
func (loginCmd) Usage() string       { return "login <username-or-email> <password>" }

func (loginCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	req := LoginRequest{EmailOrUsername: args[0], Password: args[1]}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/accounts/login"), req, "")
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return errors.New("invalid login or password")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}

	var tr struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(body, &tr); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if tr.AccessToken == "" {
		return errors.New("no token in response")
	}
	if err := auth.SaveToken(cfg.TokenFile, tr.AccessToken); err != nil {
		return fmt.Errorf("saving auth: %w", err)
	}
	fmt.Fprintln(Out, "Logged in successfully")
	return nil
}

func init() { RegisterCmd(loginCmd{}) }
