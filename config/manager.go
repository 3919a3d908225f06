package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
	"golang.org/x/text/language"
)

const (
	EnvironmentTypeLocal = "local"
)

var GlobalConfig IConfigureManager

type IConfigureManager interface {
	GetWebConfig() WebConfig
	GetMysqlDBConfig() MysqlDBConfig
	GetQueueConfig() QueueConfig
	GetLanguageConfig() LanguageConfig
	GetLogstashConfig() LogstashConfig
	GetOpenSearchConfig() OpenSearchConfig
}

type configureManager struct {
	Web        WebConfig
	Mysql      MysqlDBConfig
	Queue      QueueConfig
	Language   LanguageConfig
	Logstash   LogstashConfig
	OpenSearch OpenSearchConfig
}

func NewConfigureManager() IConfigureManager {
	configPath := "./"

	if os.Getenv("GO_VAULT_PATH") != "" {
		configPath = os.Getenv("GO_VAULT_PATH")
	}

	viper.SetConfigFile(fmt.Sprintf("%sconfig-%s.json", configPath, os.Getenv("golang_env")))
	viper.SetConfigType("json")

	_ = viper.ReadInConfig()

	GlobalConfig = &configureManager{
		Web:        loadWebConfig(),
		Language:   loadLanguageConfig(),
		Mysql:      loadMysqlDBConfig(),
		Queue:      loadQueueConfig(),
		Logstash:   loadLogstashConfig(),
		OpenSearch: loadOpenSearchConfig(),
	}

	return GlobalConfig
}

func loadWebConfig() WebConfig {
	return WebConfig{
		AppName: viper.GetString("APP_NAME"),
		Port:    viper.GetString("PORT"),
		Env:     viper.GetString("ENV"),
		Version: viper.GetString("VERSION"),
	}
}

func loadLanguageConfig() LanguageConfig {
	return LanguageConfig{
		Default: language.English,
		Languages: []language.Tag{
			language.English,
		},
	}
}

func loadMysqlDBConfig() MysqlDBConfig {
	return MysqlDBConfig{
		URL: viper.GetString("MYSQL_URL"),
	}
}

func loadQueueConfig() QueueConfig {
	return QueueConfig{
		QueueURL:        viper.GetString("QUEUE_URL"),
		Region:          viper.GetString("QUEUE_REGION"),
		Endpoint:        viper.GetString("QUEUE_ENDPOINT"),
		WaitTimeSeconds: viper.GetInt32("QUEUE_WAIT_TIME_SECONDS"),
		MaxMessages:     viper.GetInt32("QUEUE_MAX_MESSAGES"),
		VisibilityTO:    viper.GetInt32("QUEUE_VISIBILITY_TIMEOUT"),
		Workers:         viper.GetInt("QUEUE_WORKERS"),
	}
}

func loadLogstashConfig() LogstashConfig {
	return LogstashConfig{
		Host: viper.GetString("LOGSTASH_HOST"),
		Port: viper.GetInt("LOGSTASH_PORT"),
	}
}

func loadOpenSearchConfig() OpenSearchConfig {
	return OpenSearchConfig{
		Addresses: viper.GetStringSlice("OPENSEARCH_ADDRESSES"),
		Username:  viper.GetString("OPENSEARCH_USERNAME"),
		Password:  viper.GetString("OPENSEARCH_PASSWORD"),
		Index:     viper.GetString("OPENSEARCH_INDEX"),
	}
}

func (c *configureManager) GetWebConfig() WebConfig {
	return c.Web
}

func (c *configureManager) GetLanguageConfig() LanguageConfig {
	return c.Language
}

func (c *configureManager) GetMysqlDBConfig() MysqlDBConfig {
	return c.Mysql
}

func (c *configureManager) GetQueueConfig() QueueConfig {
	return c.Queue
}

func (c *configureManager) GetLogstashConfig() LogstashConfig {
	return c.Logstash
}

func (c *configureManager) GetOpenSearchConfig() OpenSearchConfig {
	return c.OpenSearch
}
