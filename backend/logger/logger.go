// SPDX-FileCopyrightText: 2021 Open Networking Foundation <info@opennetworking.org>
// Copyright 2019 free5GC.org
//
// SPDX-License-Identifier: Apache-2.0
//

package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	log         *zap.Logger
	AppLog      *zap.SugaredLogger
	InitLog     *zap.SugaredLogger
	ConsoleLog  *zap.SugaredLogger
	ClientLog   *zap.SugaredLogger
	ConfigLog   *zap.SugaredLogger
	GinLog      *zap.SugaredLogger
	CliLog      *zap.SugaredLogger
	atomicLevel zap.AtomicLevel
)

func init() {
	atomicLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	config := zap.Config{
		Level:            atomicLevel,
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewProductionEncoderConfig(),
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	config.EncoderConfig.LevelKey = "level"
	config.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	config.EncoderConfig.CallerKey = "caller"
	config.EncoderConfig.EncodeCaller = zapcore.ShortCallerEncoder
	config.EncoderConfig.MessageKey = "message"
	config.EncoderConfig.StacktraceKey = ""

	var err error
	log, err = config.Build()
	if err != nil {
		panic(err)
	}

	AppLog = log.Sugar().With("component", "WebUI-Console", "category", "App")
	InitLog = log.Sugar().With("component", "WebUI-Console", "category", "Init")
	ConsoleLog = log.Sugar().With("component", "WebUI-Console", "category", "Console")
	ClientLog = log.Sugar().With("component", "WebUI-Console", "category", "Client")
	ConfigLog = log.Sugar().With("component", "WebUI-Console", "category", "CONFIG")
	GinLog = log.Sugar().With("component", "WebUI-Console", "category", "GIN")
	CliLog = log.Sugar().With("component", "WebUI-Console", "category", "CLI")
}

func GetLogger() *zap.Logger {
	return log
}

// SetLogLevel: set the log level (panic|fatal|error|warn|info|debug)
func SetLogLevel(level zapcore.Level) {
	InitLog.Infoln("set log level:", level)
	atomicLevel.SetLevel(level)
}

// SetLogLevelFromString parses level and applies it; an empty or invalid
// value falls back to info.
func SetLogLevelFromString(level string) {
	if level == "" {
		InitLog.Warnln("console log level not set. Default set to [info] level")
		SetLogLevel(zap.InfoLevel)
		return
	}
	parsed, err := zapcore.ParseLevel(level)
	if err != nil {
		InitLog.Warnf("console log level [%s] is invalid, set to [info] level", level)
		SetLogLevel(zap.InfoLevel)
		return
	}
	SetLogLevel(parsed)
}
