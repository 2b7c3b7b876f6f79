package config

import (
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type BoostConfig struct {
	Env            string `yaml:"env"`
	HTTPServer     `yaml:"http_server"`
	BoostDB        `yaml:"boost_db"`
	LogConfig      `yaml:"log_config"`
	PaymentService `yaml:"payment-service"`
	KafkaService   `yaml:"kafka-service"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type BoostDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type PaymentService struct {
	Host           string `yaml:"host"`
	Port           string `yaml:"port"`
	TimeoutSeconds int    `yaml:"timeout_seconds" env-default:"30"`
}

type KafkaService struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

func MustLoad() *BoostConfig {

	// Processing env config variable and file
	configPath := os.Getenv("BOOST_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("BOOST_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg BoostConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
