package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"sync"
	"syscall"

	"log/slog"

	"github.com/google/uuid"

	"dscpctl/internal/config"
	"dscpctl/internal/dscp"
	"dscpctl/internal/ipc"
	"dscpctl/internal/logging"
)

type commandContext struct {
	endpointFlag *string
	configFlag   *string
	verboseFlag  *int

	configOnce sync.Once
	config     *config.Config
	configErr  error

	loggerOnce sync.Once
	logger     *slog.Logger
}

func newCommandContext(endpointFlag, configFlag *string, verboseFlag *int) *commandContext {
	return &commandContext{
		endpointFlag: endpointFlag,
		configFlag:   configFlag,
		verboseFlag:  verboseFlag,
	}
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

func (c *commandContext) endpoint() (string, error) {
	if c.endpointFlag != nil {
		if endpoint := strings.TrimSpace(*c.endpointFlag); endpoint != "" {
			return endpoint, nil
		}
	}
	cfg, err := c.ensureConfig()
	if err != nil {
		return "", err
	}
	return cfg.Endpoint, nil
}

// loggerValue builds the invocation logger once: verbosity flags override
// the configured level, and every record carries a correlation id so one
// run's RPC trace can be grepped out of shared logs.
func (c *commandContext) loggerValue() *slog.Logger {
	c.loggerOnce.Do(func() {
		level := ""
		format := ""
		if cfg, err := c.ensureConfig(); err == nil {
			level = cfg.Logging.Level
			format = cfg.Logging.Format
		}
		if c.verboseFlag != nil && *c.verboseFlag > 0 {
			level = logging.LevelName(logging.VerbosityLevel(*c.verboseFlag))
		}
		logger, err := logging.New(logging.Options{Level: level, Format: format})
		if err != nil {
			logger = logging.NewNop()
		}
		c.logger = logger.With(logging.String("invocation", uuid.NewString()))
	})
	return c.logger
}

// withService dials the control service, runs fn against an orchestrator
// bound to that connection, and closes the connection afterwards. One
// connection serves every RPC of the invocation.
func (c *commandContext) withService(fn func(*dscp.Service) error) error {
	client, err := c.dialClient()
	if err != nil {
		return err
	}
	defer client.Close()
	return fn(dscp.NewService(client, c.loggerValue()))
}

func (c *commandContext) dialClient() (*ipc.Client, error) {
	endpoint, err := c.endpoint()
	if err != nil {
		return nil, err
	}
	client, err := ipc.Dial(endpoint)
	if err != nil {
		return nil, wrapDialError(err, endpoint)
	}
	return client, nil
}

func wrapDialError(err error, endpoint string) error {
	switch {
	case errors.Is(err, syscall.ENOENT) || os.IsNotExist(err):
		return fmt.Errorf("connect to control service: %s not found; check the endpoint or start the service", endpoint)
	case errors.Is(err, syscall.ECONNREFUSED):
		return fmt.Errorf("connect to control service: %s refused the connection; verify the service is running", endpoint)
	default:
		return fmt.Errorf("connect to control service: %w", err)
	}
}
