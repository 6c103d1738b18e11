// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0
//

package main

import (
	"os"

	"github.com/omec-project/webconsole-ui/backend/console_cli"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/backend/webui_service"
	"github.com/urfave/cli"
)

type consoleServer interface {
	Initialize(c *cli.Context) error
	Start() error
}

var WEBUI consoleServer = &webui_service.WEBUI{}

func main() {
	app := newApp()
	logger.AppLog.Infoln(app.Name)
	if err := app.Run(os.Args); err != nil {
		logger.AppLog.Warnf("Error args: %v", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "webui"
	app.Usage = "operator console for the 5G core configuration API"
	app.UsageText = "webui -cfg <console_config_file.yaml>\n   webui <command> [--url <backend> | --cfg <file>] [arguments...]"
	app.Flags = (&webui_service.WEBUI{}).GetCliCmd()
	app.Action = action
	app.Commands = append([]cli.Command{
		{
			Name:   "serve",
			Usage:  "serve the console HTTP API",
			Flags:  (&webui_service.WEBUI{}).GetCliCmd(),
			Action: action,
		},
	}, console_cli.Commands()...)
	return app
}

func action(c *cli.Context) error {
	if err := WEBUI.Initialize(c); err != nil {
		return err
	}
	return WEBUI.Start()
}
