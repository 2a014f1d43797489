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

type itemsCmd struct{}

func (itemsCmd) Name() string { return "items" }
func (itemsCmd) Description() string {
	return "Показать элементы списка"
}
func (itemsCmd) Usage() string { return "items <list-id>" }

func (itemsCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 1 {
		return ErrUsage
	}
	resp, body, err := api.GetJSON(endpoint(cfg, "/api/bucket-lists/"+args[0]+"/items"), bearer(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return errors.New("list not found or no access")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var items []itemDTO
	if err := json.Unmarshal(body, &items); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if len(items) == 0 {
		fmt.Fprintln(Out, "Нет элементов")
		return nil
	}
	for _, it := range items {
		mark := " "
		if it.IsCompleted {
			mark = "x"
		}
		fmt.Fprintf(Out, "- [%s] %d  %s\n", mark, it.ID, it.Content)
	}
	fmt.Fprintf(Out, "Всего: %d\n", len(items))
	return nil
}

type itemAddCmd struct{}

func (itemAddCmd) Name() string { return "item-add" }
func (itemAddCmd) Description() string {
	return "Добавить элемент в список"
}
func (itemAddCmd) Usage() string { return "item-add <list-id> <content>" }

func (itemAddCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) < 2 {
		return ErrUsage
	}
	payload := map[string]string{"content": strings.Join(args[1:], " ")}
	resp, body, err := api.PostJSON(endpoint(cfg, "/api/bucket-lists/"+args[0]+"/items"), payload, bearer(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return errors.New("list not found or no access")
	}
	if resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var it itemDTO
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	fmt.Fprintf(Out, "Добавлен элемент %d\n", it.ID)
	return nil
}

type itemDoneCmd struct{}

func (itemDoneCmd) Name() string { return "item-done" }
func (itemDoneCmd) Description() string {
	return "Переключить флаг выполнения элемента"
}
func (itemDoneCmd) Usage() string { return "item-done <list-id> <item-id>" }

func (itemDoneCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	url := endpoint(cfg, "/api/bucket-lists/"+args[0]+"/items/"+args[1]+"/toggle")
	resp, body, err := api.PutJSON(url, struct{}{}, bearer(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return errors.New("item not found or no access")
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	var it itemDTO
	if err := json.Unmarshal(body, &it); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	state := "не выполнен"
	if it.IsCompleted {
		state = "выполнен"
	}
	fmt.Fprintf(Out, "Элемент %d: %s\n", it.ID, state)
	return nil
}

type itemDelCmd struct{}

func (itemDelCmd) Name() string { return "item-del" }
func (itemDelCmd) Description() string {
	return "Удалить элемент списка"
}
func (itemDelCmd) Usage() string { return "item-del <list-id> <item-id>" }

func (itemDelCmd) Run(ctx context.Context, cfg *config.Config, args []string) error {
	if len(args) != 2 {
		return ErrUsage
	}
	url := endpoint(cfg, "/api/bucket-lists/"+args[0]+"/items/"+args[1])
	resp, body, err := api.Delete(url, bearer(cfg))
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return errors.New("item not found or no access")
	}
	if resp.StatusCode != http.StatusNoContent {
		return fmt.Errorf("server error: %s", strings.TrimSpace(string(body)))
	}
	fmt.Fprintln(Out, "Элемент удалён")
	return nil
}

func init() {
	RegisterCmd(itemsCmd{})
	RegisterCmd(itemAddCmd{})
	RegisterCmd(itemDoneCmd{})
	RegisterCmd(itemDelCmd{})
}
