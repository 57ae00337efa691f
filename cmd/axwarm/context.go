package main

import (
	"strings"
	"sync"

	"axwarm/internal/ax"
	"axwarm/internal/config"
)

type commandContext struct {
	configFlag *string
	binding    ax.Binding

	configOnce sync.Once
	config     *config.Config
	configErr  error
}

func newCommandContext(configFlag *string, binding ax.Binding) *commandContext {
	if binding == nil {
		binding = ax.NewBinding()
	}
	return &commandContext{configFlag: configFlag, binding: binding}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, _, _, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
	})
	return c.config, c.configErr
}
