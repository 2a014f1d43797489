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
)

func postListAction(cfg *config.Config, path string) (*listDTO, error) {
	resp, body, err := api.PostJSON(endpoint(cfg, path), struct{}{}, bearer(cfg))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		var l listDTO
		if err := json.Unmarshal(body, &l); err != nil {
			return nil, fmt.Errorf("decode: %w", err)
		}
		return &l, nil
	case http.StatusNotFound:
		return nil, errors.New("list not found or no access")
	case http.StatusForbidden:
		return nil, errors.New("only the owner can do this")
	case http.StatusUnauthorized:
		return nil, errors.New("not logged in")
	default:
		return nil, fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

type shareCmd struct{}

func (shareCmd) Name() string { return "share" }
func (shareCmd) Description() string {
	return "Выпустить share-токен для списка"
}
func (shareCmd) Usage() string { return "share <list-id>" }

func (shareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	l, err := postListAction(cfg, "/api/bucket-lists/"+args[0]+"/share")
	if err != nil {
		return err
	}
	if l.ShareToken == nil {
		return errors.New("server did not return a token")
	}
	fmt.Fprintf(Out, "Токен списка [%d]: %s\n", l.ID, *l.ShareToken)
	return nil
}

type unshareCmd struct{}

func (unshareCmd) Name() string { return "unshare" }
func (unshareCmd) Description() string {
	return "Отозвать share-токен (допущенные остаются)"
}
func (unshareCmd) Usage() string { return "unshare <list-id>" }

func (unshareCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	l, err := postListAction(cfg, "/api/bucket-lists/"+args[0]+"/unshare")
	if err != nil {
		return err
	}
	fmt.Fprintf(Out, "Список [%d] снова приватный\n", l.ID)
	return nil
}

type redeemCmd struct{}

func (redeemCmd) Name() string { return "redeem" }
func (redeemCmd) Description() string {
	return "Погасить share-токен и стать коллаборатором"
}
func (redeemCmd) Usage() string { return "redeem <token>" }

func (redeemCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/bucket-lists/shared/"+args[0]), bearer(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	switch resp.StatusCode {
	case http.StatusOK:
		var l listDTO
		if err := json.Unmarshal(body, &l); err != nil {
			return fmt.Errorf("decode: %w", err)
		}
		fmt.Fprintf(Out, "Доступ получен: [%d] %s\n", l.ID, l.Title)
		return nil
	case http.StatusNotFound:
		return errors.New("token is not valid anymore")
	case http.StatusUnauthorized:
		return errors.New("not logged in")
	default:
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
}

func init() {
	RegisterCmd(shareCmd{})
	RegisterCmd(unshareCmd{})
	RegisterCmd(redeemCmd{})
}
