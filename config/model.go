package config

import (
	"golang.org/x/text/language"
)

const (
	productionEnv = "production"
)

type WebConfig struct {
	AppName string
	Port    string
	Env     string
	Version string
}

type LanguageConfig struct {
	Default   language.Tag
	Languages []language.Tag
}

type MysqlDBConfig struct {
	URL string
}

type QueueConfig struct {
	QueueURL        string
	Region          string
	Endpoint        string
	WaitTimeSeconds int32
	MaxMessages     int32
	VisibilityTO    int32
	Workers         int
}

type LogstashConfig struct {
	Host string
	Port int
}

type OpenSearchConfig struct {
	Addresses []string
	Username  string
	Password  string
	Index     string
}

func (w WebConfig) IsProductionEnv() bool {
	return w.Env == productionEnv
}
