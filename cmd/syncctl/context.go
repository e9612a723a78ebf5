package main

import (
	"log/slog"
	"sync"

	"syncctl/internal/api"
	"syncctl/internal/config"
	"syncctl/internal/logging"
)

type commandContext struct {
	hostFlag    *string
	prefsFlag   *string
	verboseFlag *bool

	prefsOnce sync.Once
	prefs     config.Prefs
	prefsErr  error
}

func newCommandContext(hostFlag, prefsFlag *string, verboseFlag *bool) *commandContext {
	return &commandContext{
		hostFlag:    hostFlag,
		prefsFlag:   prefsFlag,
		verboseFlag: verboseFlag,
	}
}

func (c *commandContext) prefsPath() string {
	if c.prefsFlag == nil {
		return ""
	}
	return *c.prefsFlag
}

func (c *commandContext) ensurePrefs() (config.Prefs, error) {
	c.prefsOnce.Do(func() {
		config.LoadDotEnv()
		c.prefs, c.prefsErr = config.LoadPrefs(c.prefsPath())
	})
	return c.prefs, c.prefsErr
}

func (c *commandContext) logger() *slog.Logger {
	if c.verboseFlag != nil && *c.verboseFlag {
		logger, err := logging.New(logging.Options{Level: "debug"})
		if err == nil {
			return logger
		}
	}
	return logging.NewNop()
}

func (c *commandContext) newClient() (*api.Client, error) {
	prefs, err := c.ensurePrefs()
	if err != nil {
		return nil, err
	}
	key, err := config.ResolveAPIKey(prefs)
	if err != nil {
		return nil, err
	}
	var override string
	if c.hostFlag != nil {
		override = *c.hostFlag
	}
	host := config.ResolveHost(override, prefs)
	return api.New(host, key, api.WithLogger(c.logger()))
}

func (c *commandContext) withClient(fn func(*api.Client) error) error {
	client, err := c.newClient()
	if err != nil {
		return err
	}
	return fn(client)
}
