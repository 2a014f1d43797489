package commands

import (
	"BucketShare/internal/config"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"BucketShare/internal/cli/api"
)

func printLists(lists []listDTO) {
	if len(lists) == 0 {
		fmt.Fprintln(Out, "Нет списков")
		return
	}
	for _, l := range lists {
		shared := ""
		if l.ShareToken != nil {
			shared = fmt.Sprintf("  shared token=%s", *l.ShareToken)
		}
		fmt.Fprintf(Out, "- [%d] %s%s\n", l.ID, l.Title, shared)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(lists))
}

func fetchLists(cfg *config.Config, path string) ([]listDTO, error) {
	resp, body, err := api.GetJSON(endpoint(cfg, path), bearer(cfg))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("not logged in")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var lists []listDTO
	if err := json.Unmarshal(body, &lists); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return lists, nil
}

type listsCmd struct{}

func (listsCmd) Name() string { return "lists" }
func (listsCmd) Description() string {
	return "Показать собственные списки"
}
func (listsCmd) Usage() string { return "lists" }

func (listsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	lists, err := fetchLists(cfg, "/api/bucket-lists")
	if err != nil {
		return err
	}
	printLists(lists)
	return nil
}

type collaboratedCmd struct{}

func (collaboratedCmd) Name() string { return "collaborated" }
func (collaboratedCmd) Description() string {
	return "Показать списки, куда вы допущены по токену"
}
func (collaboratedCmd) Usage() string { return "collaborated" }

func (collaboratedCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 0 {
		return ErrUsage
	}
	lists, err := fetchLists(cfg, "/api/bucket-lists/collaborated")
	if err != nil {
		return err
	}
	printLists(lists)
	return nil
}

type createCmd struct{}

func (createCmd) Name() string { return "create" }
func (createCmd) Description() string {
	return "Создать новый список"
}
func (createCmd) Usage() string { return "create <title> [description]" }

func (createCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 1 {
		return ErrUsage
	}
	payload := map[string]string{"title": args[0]}
	if len(args) > 1 {
		payload["description"] = strings.Join(args[1:], " ")
	}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/bucket-lists"), payload, bearer(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var l listDTO
	if err := json.Unmarshal(body, &l); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Создан список [%d] %s\n", l.ID, l.Title)
	return nil
}

type showCmd struct{}

func (showCmd) Name() string { return "show" }
func (showCmd) Description() string {
	return "Показать один список"
}
func (showCmd) Usage() string { return "show <list-id>" }

func (showCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/bucket-lists/"+args[0]), bearer(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("list not found or no access")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var l listDTO
	if err := json.Unmarshal(body, &l); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "[%d] %s\n", l.ID, l.Title)
	if l.Description != "" {
		fmt.Fprintf(Out, "  %s\n", l.Description)
	}
	if l.ShareToken != nil {
		fmt.Fprintf(Out, "  shared token=%s\n", *l.ShareToken)
	}
	return nil
}

func init() {
	RegisterCmd(listsCmd{})
	RegisterCmd(collaboratedCmd{})
	RegisterCmd(createCmd{})
	RegisterCmd(showCmd{})
}
