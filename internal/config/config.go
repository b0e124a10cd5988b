package config

import (
	"log"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type DonationConfig struct {
	Env          string `yaml:"env"`
	HTTPServer   `yaml:"http_server"`
	DonationDB   `yaml:"donation_db"`
	LogConfig    `yaml:"log_config"`
	Midtrans     `yaml:"midtrans"`
	Polling      `yaml:"polling"`
	KafkaService `yaml:"kafka-service"`
	CORS         `yaml:"cors"`
}

type HTTPServer struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type DonationDB struct {
	Dsn            string `yaml:"dsn"`
	MigrationsPath string `yaml:"migrations_path"`
}

type LogConfig struct {
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
	LogOutput string `yaml:"log_output"`
}

type Midtrans struct {
	SnapBaseURL     string `yaml:"snap_base_url" env-default:"https://app.sandbox.midtrans.com"`
	CoreAPIBaseURL  string `yaml:"core_api_base_url" env-default:"https://api.sandbox.midtrans.com"`
	ServerKey       string `yaml:"server_key" env:"MIDTRANS_SERVER_KEY"`
	NotificationURL string `yaml:"notification_url"`
	FinishURL       string `yaml:"finish_url"`
}

type Polling struct {
	Interval   time.Duration `yaml:"interval" env-default:"1m"`
	QueryDelay time.Duration `yaml:"query_delay" env-default:"500ms"`
}

type KafkaService struct {
	Host  string `yaml:"host"`
	Port  string `yaml:"port"`
	Topic string `yaml:"topic" env-default:"transaction-events"`
}

type CORS struct {
	AllowedOrigins string `yaml:"allowed_origins"`
}

func MustLoad() *DonationConfig {

	// Processing env config variable and file
	configPath := os.Getenv("DONATION_CONFIG_PATH")

	if configPath == "" {
		log.Fatalf("DONATION_CONFIG_PATH was not found\n")
	}

	if _, err := os.Stat(configPath); err != nil {
		log.Fatalf("failed to find config file: %v\n", err)
	}

	// YAML to struct object
	var cfg DonationConfig
	if err := cleanenv.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	return &cfg
}
