package config

import (
	"os"
	"sync"

	"lambda-http-adapter/pkg/adapter"
)

// ServerlessConfig holds serverless-specific configuration
type ServerlessConfig struct {
	IsLambda     bool
	FunctionName string
	Region       string
	Stage        string
}

var (
	serverlessConfig *ServerlessConfig
	serverlessOnce   sync.Once
)

// GetServerlessConfig returns the serverless configuration
func GetServerlessConfig() *ServerlessConfig {
	serverlessOnce.Do(func() {
		serverlessConfig = &ServerlessConfig{
			IsLambda:     isRunningInLambda(),
			FunctionName: os.Getenv("AWS_LAMBDA_FUNCTION_NAME"),
			Region:       os.Getenv("AWS_REGION"),
			Stage:        GetEnv("STAGE", "dev"),
		}
	})
	return serverlessConfig
}

// isRunningInLambda detects if the application is running in AWS Lambda
func isRunningInLambda() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// IsServerlessMode returns true if running in serverless mode
func IsServerlessMode() bool {
	return GetServerlessConfig().IsLambda
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdapterSettings translates the loaded configuration into the adapter's
// creation-time settings.
func (c *Config) AdapterSettings() adapter.Config {
	cfg := adapter.Config{
		DisableLogging: !c.Adapter.LogEnabled,
		Timeout:        c.Adapter.Timeout,
		BasePath:       c.Adapter.BasePath,
		BinaryTypes:    c.Adapter.BinaryTypes,
	}
	if c.Adapter.CORS.Enabled {
		cfg.CORS = c.CORSSettings()
	}
	return cfg
}

// CORSSettings maps the loaded CORS fields onto the adapter policy. Unset
// fields keep their zero values so the adapter defaults apply.
func (c *Config) CORSSettings() *adapter.CORSConfig {
	cors := c.Adapter.CORS
	return &adapter.CORSConfig{
		Origin:        cors.Origin,
		Methods:       cors.Methods,
		AllowHeaders:  cors.AllowHeaders,
		ExposeHeaders: cors.ExposeHeaders,
		Credentials:   cors.Credentials,
		MaxAge:        cors.MaxAge,
	}
}
