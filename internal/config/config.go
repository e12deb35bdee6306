package config

import (
	"github.com/jinzhu/configor"
	"github.com/sirupsen/logrus"
)

type AppEnv string

const (
	ProductionEnv AppEnv = "production"
	StageEnv      AppEnv = "stage"
	DevelopEnv    AppEnv = "develop"
	LocalEnv      AppEnv = "local"
	TestEnv       AppEnv = "test"
)

type (
	Config struct {
		AppEnv      AppEnv `default:"local"`
		LogLevel    logrus.Level
		HTTP        HTTP
		Database    Database
		Kafka       Kafka
		Auth        Auth
		Queue       Queue
		RateLimit   RateLimit
		WorkerCount int `default:"4"`
	}

	HTTP struct {
		Port int `default:"8080"`
	}

	Database struct {
		Postgres Postgres
		Redis    Redis
	}

	Postgres struct {
		Host     string `default:"localhost"`
		Port     int    `default:"5432"`
		Username string
		Password string
		Database string `default:"clinic"`
	}

	Redis struct {
		Host     string `default:"localhost"`
		Port     int    `default:"6379"`
		Password string
		Database int
	}

	Kafka struct {
		Host string `default:"localhost"`
		Port int    `default:"9092"`
	}

	Auth struct {
		JWTSecret    string `default:"dev_secret_change_me"`
		TokenTTLHour int    `default:"12"`
		SeedUsername string `default:"akshara_reception"`
		SeedPassword string `default:"Akshara@123"`
	}

	Queue struct {
		DefaultAverageConsultMinutes int  `default:"8"`
		AllowParallelConsults        bool `default:"false"`
		AllowReopen                  bool `default:"false"`
	}

	RateLimit struct {
		WindowMinutes int `default:"10"`
		MaxRequests   int `default:"120"`
	}
)

func Load() (*Config, error) {
	var cfg Config
	if err := configor.New(&configor.Config{ENVPrefix: "APP", Silent: true}).Load(&cfg, "config.yml"); err != nil {
		return nil, err
	}

	return &cfg, nil
}
