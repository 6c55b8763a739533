package config

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Source     Source     `json:"source" yaml:"source" mapstructure:"source"`
	Render     Render     `json:"render" yaml:"render" mapstructure:"render"`
	Downloader Downloader `json:"downloader" yaml:"downloader" mapstructure:"downloader"`
	Library    Library    `json:"library" yaml:"library" mapstructure:"library"`
	Storage    Storage    `json:"storage" yaml:"storage" mapstructure:"storage"`
	Resolver   Resolver   `json:"resolver" yaml:"resolver" mapstructure:"resolver"`
	Manager    Manager    `json:"manager" yaml:"manager" mapstructure:"manager"`
}

// Source configures the content source site.
type Source struct {
	BaseURL string `json:"baseUrl" yaml:"baseUrl" mapstructure:"baseUrl" validate:"omitempty,url"`
	Quality string `json:"quality" yaml:"quality" mapstructure:"quality" validate:"omitempty,oneof=1080 720 480"`
}

// Render configures the page-rendering agent.
type Render struct {
	Implementation string `json:"implementation" yaml:"implementation" mapstructure:"implementation" validate:"omitempty,oneof=chromedp"`
	Headless       bool   `json:"headless" yaml:"headless" mapstructure:"headless"`
	UserAgent      string `json:"userAgent" yaml:"userAgent" mapstructure:"userAgent"`
}

// Downloader configures the external download manager.
type Downloader struct {
	Implementation string `json:"implementation" yaml:"implementation" mapstructure:"implementation"`
	Scheme         string `json:"scheme" yaml:"scheme" mapstructure:"scheme"`
	Host           string `json:"host" yaml:"host" mapstructure:"host"`
	Port           int    `json:"port" yaml:"port" mapstructure:"port"`
	// DestinationDir is where the manager writes completed transfers.
	DestinationDir string `json:"destinationDir" yaml:"destinationDir" mapstructure:"destinationDir"`
}

// Library holds the organized media roots by content class.
type Library struct {
	SeriesEnglishDir string `json:"seriesEnglish" yaml:"seriesEnglish" mapstructure:"seriesEnglish"`
	SeriesArabicDir  string `json:"seriesArabic" yaml:"seriesArabic" mapstructure:"seriesArabic"`
	MovieEnglishDir  string `json:"movieEnglish" yaml:"movieEnglish" mapstructure:"movieEnglish"`
	MovieArabicDir   string `json:"movieArabic" yaml:"movieArabic" mapstructure:"movieArabic"`
}

// Storage configuration is for the sqlite catalog.
type Storage struct {
	FilePath string `json:"filePath" yaml:"filePath" mapstructure:"filePath"`
}

// Resolver configures the link resolution state machine.
type Resolver struct {
	MaxAttempts int           `json:"maxAttempts" yaml:"maxAttempts" mapstructure:"maxAttempts" validate:"omitempty,gte=1"`
	Concurrency int64         `json:"concurrency" yaml:"concurrency" mapstructure:"concurrency" validate:"omitempty,gte=1"`
	GateCeiling time.Duration `json:"gateCeiling" yaml:"gateCeiling" mapstructure:"gateCeiling"`
	AdDomains   []string      `json:"adDomains" yaml:"adDomains" mapstructure:"adDomains"`
}

// Manager houses the pipeline intervals.
type Manager struct {
	CheckInterval     time.Duration `json:"checkInterval" yaml:"checkInterval" mapstructure:"checkInterval"`
	ReconcileInterval time.Duration `json:"reconcileInterval" yaml:"reconcileInterval" mapstructure:"reconcileInterval"`
}

type ConfigUnmarshaler interface {
	ReadInConfig() error
	Unmarshal(any, ...viper.DecoderConfigOption) error
	ConfigFileUsed() string
}

// New reads a new configuration
func New(cu ConfigUnmarshaler) (Config, error) {
	var c Config

	if cu.ConfigFileUsed() != "" {
		err := cu.ReadInConfig()
		if err != nil {
			return c, err
		}
	}

	if err := cu.Unmarshal(&c); err != nil {
		return c, err
	}

	err := validator.New().Struct(c)
	return c, err
}
