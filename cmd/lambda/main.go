package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"
	"github.com/sirupsen/logrus"

	"lambda-http-adapter/internal/config"
	"lambda-http-adapter/internal/handlers"
	"lambda-http-adapter/pkg/adapter"
)

var handler adapter.Handler

func init() {
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	logrus.SetFormatter(&logrus.JSONFormatter{})

	sc := config.GetServerlessConfig()
	logrus.WithFields(logrus.Fields{
		"function": sc.FunctionName,
		"region":   sc.Region,
		"stage":    sc.Stage,
		"mode":     config.GetDeploymentMode(),
	}).Info("Cold start")

	router := handlers.NewRouter(cfg)
	handler = adapter.New(router, cfg.AdapterSettings())
}

func main() {
	awslambda.Start(handler)
}
