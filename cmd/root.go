package cmd

import (
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/aldesouky/seedarr/pkg/resolver"
	"github.com/aldesouky/seedarr/pkg/source/arabseed"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "seedarr",
	Short: "seedarr cli",
	Long:  `seedarr cli`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "config.yaml", "config file")
}

func initConfig() {
	viper.SetConfigFile(cfgFile)

	viper.SetEnvPrefix("SEEDARR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", ""))
	viper.AutomaticEnv()

	viper.SetDefault("source.baseUrl", arabseed.DefaultBaseURL)
	viper.SetDefault("source.quality", resolver.DefaultQuality)

	viper.SetDefault("render.implementation", "chromedp")
	viper.SetDefault("render.headless", true)

	viper.SetDefault("downloader.implementation", "jdownloader")
	viper.SetDefault("downloader.scheme", "http")
	viper.SetDefault("downloader.host", "localhost")
	viper.SetDefault("downloader.port", 3128)
	viper.SetDefault("downloader.destinationDir", "downloads")

	viper.SetDefault("library.seriesEnglish", "")
	viper.SetDefault("library.seriesArabic", "")
	viper.SetDefault("library.movieEnglish", "")
	viper.SetDefault("library.movieArabic", "")

	viper.SetDefault("storage.filePath", "seedarr.sqlite")

	viper.SetDefault("resolver.maxAttempts", resolver.DefaultMaxAttempts)
	viper.SetDefault("resolver.concurrency", resolver.DefaultConcurrency)

	viper.SetDefault("manager.checkInterval", time.Hour*6)
	viper.SetDefault("manager.reconcileInterval", time.Minute*2)
}
