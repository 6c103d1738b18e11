// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package console_cli

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/omec-project/webconsole-ui/backend/apiclient"
	"github.com/omec-project/webconsole-ui/backend/console"
	"github.com/omec-project/webconsole-ui/backend/factory"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/configapi"
	"github.com/urfave/cli"
)

var backendFlags = []cli.Flag{
	cli.StringFlag{
		Name:   "url",
		Usage:  "webconsole backend url",
		EnvVar: "WEBUI_BACKEND_URL",
	},
	cli.StringFlag{
		Name:  "cfg",
		Usage: "console config file",
	},
}

var formFlags = []cli.Flag{
	cli.StringFlag{
		Name:  "data",
		Usage: "form values as a JSON object",
	},
	cli.StringSliceFlag{
		Name:  "set",
		Usage: "form value as key=value, may be repeated",
	},
}

var listFlags = []cli.Flag{
	cli.IntFlag{
		Name:  "page",
		Usage: "subscriber list page",
		Value: 1,
	},
	cli.StringFlag{
		Name:  "q",
		Usage: "subscriber search text",
	},
	cli.StringFlag{
		Name:  "ue-id",
		Usage: "subscriber ueId filter",
	},
	cli.StringFlag{
		Name:  "plmn-id",
		Usage: "subscriber plmnID filter",
	},
	cli.IntFlag{
		Name:  "limit",
		Usage: "subscriber page size",
	},
}

// appFactory builds the console core for one command. Tests swap it.
var appFactory = console.NewApp

// Commands returns the console actions runnable from a terminal.
func Commands() []cli.Command {
	return []cli.Command{
		{
			Name:   "types",
			Usage:  "list the entity types",
			Action: typesAction,
		},
		{
			Name:      "list",
			Usage:     "print the items of a type",
			ArgsUsage: "<type>",
			Flags:     append(append([]cli.Flag{}, backendFlags...), listFlags...),
			Action:    listAction,
		},
		{
			Name:      "get",
			Usage:     "print the form values of one item",
			ArgsUsage: "<type> <name>",
			Flags:     backendFlags,
			Action:    getAction,
		},
		{
			Name:      "create",
			Usage:     "validate and create an item",
			ArgsUsage: "<type>",
			Flags:     append(append([]cli.Flag{}, backendFlags...), formFlags...),
			Action:    createAction,
		},
		{
			Name:      "update",
			Usage:     "validate and update an item, unset values keep their current value",
			ArgsUsage: "<type> <name>",
			Flags:     append(append([]cli.Flag{}, backendFlags...), formFlags...),
			Action:    updateAction,
		},
		{
			Name:      "delete",
			Usage:     "delete an item",
			ArgsUsage: "<type> <name>",
			Flags:     backendFlags,
			Action:    deleteAction,
		},
		{
			Name:      "admin",
			Usage:     "run a key management action (sync-key, check-k4-life, k4-rotation)",
			ArgsUsage: "<action>",
			Flags:     backendFlags,
			Action:    adminAction,
		},
	}
}

func loadConfig(c *cli.Context) (*factory.Config, error) {
	if path := c.String("cfg"); path != "" {
		absPath, err := filepath.Abs(path)
		if err != nil {
			return nil, err
		}
		if err := factory.InitConfigFactory(absPath); err != nil {
			return nil, err
		}
		cfg := factory.ConsoleConfig
		if url := c.String("url"); url != "" {
			cfg.Configuration.Backend.Url = strings.TrimSuffix(url, "/")
		}
		return &cfg, nil
	}
	url := c.String("url")
	if url == "" {
		return nil, fmt.Errorf("either --url or --cfg is required")
	}
	cfg := factory.NewDefaultConfig(url)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newApp(c *cli.Context) (*console.App, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, cli.NewExitError(err.Error(), 2)
	}
	if cfg.Logger != nil && cfg.Logger.Console != nil {
		logger.SetLogLevelFromString(cfg.Logger.Console.DebugLevel)
	}
	return appFactory(cfg)
}

func args(c *cli.Context, names ...string) ([]string, error) {
	if c.NArg() != len(names) {
		return nil, cli.NewExitError(fmt.Sprintf("usage: %s %s", c.Command.Name, c.Command.ArgsUsage), 2)
	}
	out := make([]string, len(names))
	for i := range names {
		out[i] = c.Args().Get(i)
	}
	return out, nil
}

// formValues merges --data and --set; --set wins on conflicts.
func formValues(c *cli.Context) (configapi.Form, error) {
	form := configapi.Form{}
	if data := c.String("data"); data != "" {
		if err := json.Unmarshal([]byte(data), &form); err != nil {
			return nil, fmt.Errorf("invalid --data: %w", err)
		}
	}
	for _, kv := range c.StringSlice("set") {
		key, value, ok := strings.Cut(kv, "=")
		if !ok || strings.TrimSpace(key) == "" {
			return nil, fmt.Errorf("invalid --set %q, expected key=value", kv)
		}
		form[strings.TrimSpace(key)] = value
	}
	return form, nil
}

func typesAction(c *cli.Context) error {
	for _, typ := range configapi.AllTypes() {
		fmt.Fprintln(c.App.Writer, typ)
	}
	return nil
}

func listAction(c *cli.Context) error {
	a, err := args(c, "type")
	if err != nil {
		return err
	}
	app, err := newApp(c)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if a[0] == configapi.SubscriberType {
		items, err := app.Subscribers.ApplyFilters(ctx, configapi.Filters{
			Q:      c.String("q"),
			UeId:   c.String("ue-id"),
			PlmnID: c.String("plmn-id"),
			Limit:  c.Int("limit"),
		})
		if err == nil && c.Int("page") > 1 {
			items, err = app.Subscribers.GoToPage(ctx, c.Int("page"))
		}
		if err != nil {
			return failure(err)
		}
		meta := app.Subscribers.Meta()
		renderTable(c.App.Writer, app.Subscribers.Render(items))
		fmt.Fprintf(c.App.Writer, "page %d of %d, %d subscribers\n", meta.Page, meta.Pages, meta.Total)
		return nil
	}
	mgr, err := app.Registry.ByType(a[0])
	if err != nil {
		return failure(err)
	}
	items, err := mgr.Load(ctx)
	if err != nil {
		return failure(err)
	}
	renderTable(c.App.Writer, mgr.Render(items))
	return nil
}

func getAction(c *cli.Context) error {
	a, err := args(c, "type", "name")
	if err != nil {
		return err
	}
	app, err := newApp(c)
	if err != nil {
		return err
	}
	state, err := app.Details.ShowDetails(context.Background(), a[0], a[1])
	if err != nil {
		return failure(err)
	}
	fmt.Fprintln(c.App.Writer, state.Title)
	renderForm(c.App.Writer, state.Fields, state.Form)
	return nil
}

func createAction(c *cli.Context) error {
	a, err := args(c, "type")
	if err != nil {
		return err
	}
	form, err := formValues(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	app, err := newApp(c)
	if err != nil {
		return err
	}
	ctx := context.Background()
	if _, err := app.Modal.ShowCreateForm(ctx, a[0]); err != nil {
		return failure(err)
	}
	return save(c, app, form)
}

func updateAction(c *cli.Context) error {
	a, err := args(c, "type", "name")
	if err != nil {
		return err
	}
	changes, err := formValues(c)
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	app, err := newApp(c)
	if err != nil {
		return err
	}
	state, err := app.Modal.EditItem(context.Background(), a[0], a[1])
	if err != nil {
		return failure(err)
	}
	form := configapi.Form{}
	for k, v := range state.Form {
		form[k] = v
	}
	for k, v := range changes {
		form[k] = v
	}
	return save(c, app, form)
}

func save(c *cli.Context, app *console.App, form configapi.Form) error {
	list, err := app.Modal.SaveItem(context.Background(), form)
	if err != nil {
		return failure(err)
	}
	printLastNotification(c, app)
	if list != nil {
		renderTable(c.App.Writer, list.Table)
	}
	return nil
}

func deleteAction(c *cli.Context) error {
	a, err := args(c, "type", "name")
	if err != nil {
		return err
	}
	app, err := newApp(c)
	if err != nil {
		return err
	}
	if _, err := app.Modal.DeleteItem(context.Background(), a[0], a[1]); err != nil {
		return failure(err)
	}
	printLastNotification(c, app)
	return nil
}

func adminAction(c *cli.Context) error {
	a, err := args(c, "action")
	if err != nil {
		return err
	}
	action, err := apiclient.ParseSyncAction(a[0])
	if err != nil {
		return cli.NewExitError(err.Error(), 2)
	}
	app, err := newApp(c)
	if err != nil {
		return err
	}
	result, err := app.RunAdmin(context.Background(), action)
	if err != nil {
		return failure(err)
	}
	printLastNotification(c, app)
	if out := strings.TrimSpace(result.Output); out != "" {
		fmt.Fprintln(c.App.Writer, out)
	}
	return nil
}

func printLastNotification(c *cli.Context, app *console.App) {
	if n, ok := app.Notifier.Last(); ok {
		fmt.Fprintln(c.App.Writer, n.Message)
	}
}

func failure(err error) error {
	logger.CliLog.Debugf("command failed: %v", err)
	return cli.NewExitError(err.Error(), 1)
}
