// SPDX-FileCopyrightText: 2022-present Intel Corporation
// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// SPDX-FileCopyrightText: 2019 free5GC.org
// SPDX-FileCopyrightText: 2024 Canonical Ltd
//
// SPDX-License-Identifier: Apache-2.0
//

package webui_service

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/omec-project/util/http2_util"
	utilLogger "github.com/omec-project/util/logger"
	"github.com/omec-project/webconsole-ui/backend/console"
	"github.com/omec-project/webconsole-ui/backend/factory"
	"github.com/omec-project/webconsole-ui/backend/logger"
	"github.com/omec-project/webconsole-ui/backend/metrics"
	"github.com/urfave/cli"
)

type WEBUI struct{}

type (
	// Config information.
	Config struct {
		cfg string
	}
)

var config Config

var webuiCLi = []cli.Flag{
	cli.StringFlag{
		Name:  "cfg",
		Usage: "console config file",
	},
}

func (*WEBUI) GetCliCmd() (flags []cli.Flag) {
	return webuiCLi
}

func (webui *WEBUI) Initialize(c *cli.Context) error {
	config = Config{
		cfg: c.String("cfg"),
	}
	if config.cfg == "" {
		return fmt.Errorf("required flag cfg not set")
	}

	absPath, err := filepath.Abs(config.cfg)
	if err != nil {
		logger.ConfigLog.Errorln(err)
		return err
	}

	if err := factory.InitConfigFactory(absPath); err != nil {
		logger.ConfigLog.Errorln(err)
		return err
	}

	webui.setLogLevel()
	return nil
}

func (webui *WEBUI) setLogLevel() {
	if factory.ConsoleConfig.Logger == nil || factory.ConsoleConfig.Logger.Console == nil {
		logger.InitLog.Warnln("console config without log level setting")
		return
	}
	logger.SetLogLevelFromString(factory.ConsoleConfig.Logger.Console.DebugLevel)
}

// NewRouter builds the console HTTP service on top of app.
func NewRouter(app *console.App) *gin.Engine {
	router := utilLogger.NewGinWithZap(logger.GinLog)
	router.Use(cors.New(cors.Config{
		AllowMethods: []string{"GET", "POST", "OPTIONS", "PUT", "PATCH", "DELETE"},
		AllowHeaders: []string{
			"Origin", "Content-Length", "Content-Type", "User-Agent",
			"Referrer", "Host", "Token", "X-Requested-With",
		},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		AllowAllOrigins:  true,
		MaxAge:           86400,
	}))
	AddConsoleService(router, app)
	AddSwaggerUiService(router)
	return router
}

// Start serves the console until the listener fails.
func (webui *WEBUI) Start() error {
	cfg := &factory.ConsoleConfig
	app, err := console.NewApp(cfg)
	if err != nil {
		return err
	}
	logger.InitLog.Infoln("console server started")

	router := NewRouter(app)

	if m := cfg.Configuration.Metrics; m != nil && m.Enabled {
		go metrics.InitMetrics(m.Addr)
	}

	ws := cfg.Configuration.WebServer
	httpAddr := ws.IP + ":" + strconv.Itoa(ws.PORT)
	logger.InitLog.Infoln("console HTTP addr", httpAddr)
	tlsConfig := cfg.Configuration.TLS
	if cfg.Info.HttpVersion == 2 || tlsConfig != nil {
		server, err := http2_util.NewServer(httpAddr, "", router)
		if server == nil {
			logger.InitLog.Errorln("initialize HTTP-2 server failed:", err)
			return err
		}
		if err != nil {
			logger.InitLog.Warnln("initialize HTTP-2 server:", err)
			return err
		}
		if tlsConfig != nil {
			err = server.ListenAndServeTLS(tlsConfig.PEM, tlsConfig.Key)
		} else {
			err = server.ListenAndServe()
		}
		if err != nil && err != http.ErrServerClosed {
			logger.InitLog.Errorln("HTTP server setup failed:", err)
			return err
		}
		return nil
	}
	err = router.Run(httpAddr)
	logger.InitLog.Infoln("console server stopped")
	return err
}
