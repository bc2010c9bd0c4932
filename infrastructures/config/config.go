package config

import (
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/BurntSushi/toml"
)

var (
	instance *PlacePickConfig
	once     sync.Once
)

type log struct {
	LogRootDir       string `toml:"logRootDir"`       // log root directory
	LogLevel         int    `toml:"logLevel"`         // default log level
	EnableStacktrace bool   `toml:"enableStacktrace"` // print call stacks on error
}

// redis connection settings, one entry per named instance
type redis struct {
	Addr             string   `toml:"addr"`
	User             string   `toml:"user"`
	Password         string   `toml:"password"`
	DB               int      `toml:"db"`
	UseSentinel      bool     `toml:"useSentinel"`
	SentinelAddrs    []string `toml:"sentinelAddrs"`
	MasterName       string   `toml:"masterName"`
	SentinelPassword string   `toml:"sentinelPassword"`

	PoolSize     int `toml:"poolSize"`     // default 10
	MinIdleConns int `toml:"minIdleConns"` // default 0
	MaxRetries   int `toml:"maxRetries"`   // default 3
	DialTimeout  int `toml:"dialTimeout"`  // seconds, default 5
	ReadTimeout  int `toml:"readTimeout"`  // seconds, default 3
	WriteTimeout int `toml:"writeTimeout"` // seconds, default 3
}

// naverConfig holds Naver Local Search credentials and tuning
type naverConfig struct {
	ClientID     string `toml:"clientId"`
	ClientSecret string `toml:"clientSecret"`
	BaseURL      string `toml:"baseUrl"` // default https://openapi.naver.com
	Timeout      int    `toml:"timeout"` // seconds, default 5
	Display      int    `toml:"display"` // results per query, default 5
}

// ocrConfig holds OCR.space settings
type ocrConfig struct {
	APIKey   string `toml:"apiKey"`
	BaseURL  string `toml:"baseUrl"`  // default https://api.ocr.space
	Language string `toml:"language"` // default kor
	Timeout  int    `toml:"timeout"`  // seconds, default 30
}

// weatherConfig holds WeatherAPI settings
type weatherConfig struct {
	APIKey  string `toml:"apiKey"`
	BaseURL string `toml:"baseUrl"` // default https://api.weatherapi.com
	Timeout int    `toml:"timeout"` // seconds, default 5
}

// resolverConfig tunes the place-resolution fan-out
type resolverConfig struct {
	MaxQueries      int `toml:"maxQueries"`      // total query budget per request, default 8
	MaxStrongNames  int `toml:"maxStrongNames"`  // strong names used for planning, default 5
	MaxAreaHints    int `toml:"maxAreaHints"`    // area hints combined per name, default 2
	QueryTimeoutMs  int `toml:"queryTimeoutMs"`  // per-query timeout, default 3000
	CacheTTLSeconds int `toml:"cacheTtlSeconds"` // search result cache TTL, default 600
	ShareTTLSeconds int `toml:"shareTtlSeconds"` // decision share-token TTL, default 1800
}

type mysqlConfig struct {
	DSN             string `toml:"dsn"`
	MaxOpenConns    int    `toml:"maxOpenConns"`
	MaxIdleConns    int    `toml:"maxIdleConns"`
	ConnMaxIdleTime int    `toml:"connMaxIdleTime"` // seconds
	ConnMaxLifetime int    `toml:"connMaxLifetime"` // seconds
}

// KafkaProducerConfig holds librdkafka producer options.
type KafkaProducerConfig struct {
	ClientID              string `toml:"clientId"`
	Acks                  string `toml:"acks"`
	EnableIdempotence     *bool  `toml:"enableIdempotence"`
	MessageSendMaxRetries int    `toml:"messageSendMaxRetries"`
	MessageTimeoutMs      int    `toml:"messageTimeoutMs"`
	LingerMs              int    `toml:"lingerMs"`
	CompressionType       string `toml:"compressionType"`
	Partitioner           string `toml:"partitioner"`
}

// kafkaConfig aggregates the decision-event stream settings.
type kafkaConfig struct {
	Enabled       bool                `toml:"enabled"`
	Brokers       string              `toml:"brokers"`
	DecisionTopic string              `toml:"decisionTopic"`
	Producer      KafkaProducerConfig `toml:"producer"`
}

type serviceEndpointConfig struct {
	HTTPAddr string `toml:"httpAddr"`
}

type servicesConfig struct {
	Server serviceEndpointConfig `toml:"server"`
}

type PlacePickConfig struct {
	Environment   string           `toml:"environment"` // one of [dev, prod, container]
	LogConfig     log              `toml:"log"`
	Redises       map[string]redis `toml:"redises"`
	NaverConfig   naverConfig      `toml:"naver"`
	OCRConfig     ocrConfig        `toml:"ocr"`
	WeatherConfig weatherConfig    `toml:"weather"`
	Resolver      resolverConfig   `toml:"resolver"`
	MySQL         mysqlConfig      `toml:"mysql"`
	Kafka         kafkaConfig      `toml:"kafka"`
	Services      servicesConfig   `toml:"services"`
}

func GetInstance() *PlacePickConfig {
	once.Do(func() {
		var err error
		instance, err = parseConfig(configPath())
		if err != nil {
			panic(err.Error())
		}
	})
	return instance
}

func configPath() string {
	if p := os.Getenv("PLACEPICK_CONFIG"); p != "" {
		return p
	}
	return "/etc/placepick/config.toml"
}

func parseConfig(path string) (*PlacePickConfig, error) {
	if len(path) == 0 {
		return nil, errors.New("config file path is null")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		msg := fmt.Sprintf("read config file met error: %s", err.Error())
		return nil, errors.New(msg)
	}

	conf := &PlacePickConfig{}
	_, err = toml.Decode(string(data), conf)
	if err != nil {
		return nil, err
	}

	conf.setDefaults()

	return conf, nil
}

func (c *PlacePickConfig) setDefaults() {
	if c.NaverConfig.BaseURL == "" {
		c.NaverConfig.BaseURL = "https://openapi.naver.com"
	}
	if c.NaverConfig.Timeout <= 0 {
		c.NaverConfig.Timeout = 5
	}
	if c.NaverConfig.Display <= 0 {
		c.NaverConfig.Display = 5
	}

	if c.OCRConfig.BaseURL == "" {
		c.OCRConfig.BaseURL = "https://api.ocr.space"
	}
	if c.OCRConfig.Language == "" {
		c.OCRConfig.Language = "kor"
	}
	if c.OCRConfig.Timeout <= 0 {
		c.OCRConfig.Timeout = 30
	}

	if c.WeatherConfig.BaseURL == "" {
		c.WeatherConfig.BaseURL = "https://api.weatherapi.com"
	}
	if c.WeatherConfig.Timeout <= 0 {
		c.WeatherConfig.Timeout = 5
	}

	c.Resolver.setDefaults()
	c.Kafka.setDefaults()
}

func (r *resolverConfig) setDefaults() {
	if r.MaxQueries <= 0 {
		r.MaxQueries = 8
	}
	if r.MaxStrongNames <= 0 {
		r.MaxStrongNames = 5
	}
	if r.MaxAreaHints <= 0 {
		r.MaxAreaHints = 2
	}
	if r.QueryTimeoutMs <= 0 {
		r.QueryTimeoutMs = 3000
	}
	if r.CacheTTLSeconds <= 0 {
		r.CacheTTLSeconds = 600
	}
	if r.ShareTTLSeconds <= 0 {
		r.ShareTTLSeconds = 1800
	}
}

func (k *kafkaConfig) setDefaults() {
	if k.Brokers == "" {
		k.Brokers = "127.0.0.1:9092"
	}
	if k.DecisionTopic == "" {
		k.DecisionTopic = "placepick-decisions"
	}
	p := &k.Producer
	if p.ClientID == "" {
		p.ClientID = "placepick-server"
	}
	if p.Acks == "" {
		p.Acks = "all"
	}
	if p.EnableIdempotence == nil {
		v := true
		p.EnableIdempotence = &v
	}
	if p.MessageSendMaxRetries <= 0 {
		p.MessageSendMaxRetries = 10
	}
	if p.MessageTimeoutMs <= 0 {
		p.MessageTimeoutMs = 30000
	}
	if p.LingerMs <= 0 {
		p.LingerMs = 10
	}
	if p.CompressionType == "" {
		p.CompressionType = "lz4"
	}
	if p.Partitioner == "" {
		p.Partitioner = "murmur2_random"
	}
}
