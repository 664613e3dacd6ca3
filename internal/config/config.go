package config

import (
	"os"
	"path"
	"time"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	LogLevel      string `yaml:"log_level"`
	LogJSON       bool   `yaml:"log_json"`
	SecureCookies bool   `yaml:"secure_cookies"`
	JwtTTLSeconds int    `yaml:"jwt_ttl_seconds"`

	DefaultPageSize int `yaml:"default_page_size"`
	MaxPageSize     int `yaml:"max_page_size"`

	TitleMinLen int `yaml:"title_min_len"`
	TitleMaxLen int `yaml:"title_max_len"`
	// content bounds are policy per community type, not schema
	ContentMinLen         int `yaml:"content_min_len"`
	AcademicContentMaxLen int `yaml:"academic_content_max_len"`
	ChilloutContentMaxLen int `yaml:"chillout_content_max_len"`
	ReplyMinLen           int `yaml:"reply_min_len"`
	AcademicReplyMaxLen   int `yaml:"academic_reply_max_len"`
	ChilloutReplyMaxLen   int `yaml:"chillout_reply_max_len"`
	MaxTags               int `yaml:"max_tags"`

	JoinCodeLen int `yaml:"join_code_len"`
}

type Pg struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	Dbname   string `yaml:"dbname"`
}

type Private struct {
	JwtKey string `yaml:"jwt_key"`
	Pg     Pg     `yaml:"pg"`
}

func (s *Config) JwtKey() string {
	return s.Private.JwtKey
}

func (s *Config) JwtTTL() time.Duration {
	return time.Duration(s.Public.JwtTTLSeconds) * time.Second
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file")
	}

	err = yaml.Unmarshal(configFile, output)
	if err != nil {
		panic("can't unmarshal config file")
	}
}

func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	return &Config{public, private}
}
