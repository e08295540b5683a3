package config

import (
	"os"
	"path"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	private Private
}

type Public struct {
	Server        Server `yaml:"server"`
	API           API    `yaml:"api"`
	Log           Log    `yaml:"log"`
	SecureCookies bool   `yaml:"secure_cookies"`
}

type Server struct {
	Port                int `yaml:"port" validate:"required"`
	ReadTimeoutSeconds  int `yaml:"read_timeout_seconds"`
	WriteTimeoutSeconds int `yaml:"write_timeout_seconds"`
}

type API struct {
	Origin        string `yaml:"origin" validate:"required,url"`
	RootPath      string `yaml:"root_path"`
	TokenEndpoint string `yaml:"token_endpoint"`
	CookieName    string `yaml:"cookie_name"`
	SessionCookie string `yaml:"session_cookie"`
}

type Log struct {
	Level string `yaml:"level"`
	JSON  bool   `yaml:"json"`
}

type Private struct {
	SessionKey string `yaml:"session_key" validate:"required"`
}

func (c *Config) SessionKey() string {
	return c.private.SessionKey
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file")
	}

	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(output); err != nil {
		panic("config validation failed: " + err.Error())
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
