package util

import (
	"github.com/spf13/viper"
)

// Config stores all configuration of the application.
// The values are read by viper from a config file or environment variable.
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`

	// 输入输出文件
	VendorsFile    string `mapstructure:"VENDORS_FILE"`
	OrdersFile     string `mapstructure:"ORDERS_FILE"`
	LocationsFile  string `mapstructure:"LOCATIONS_FILE"`
	SubmissionFile string `mapstructure:"SUBMISSION_FILE"`

	// 推荐算法配置
	Recommender string `mapstructure:"RECOMMENDER"`  // preference / simple
	WorkerCount int    `mapstructure:"WORKER_COUNT"` // 并发评分协程数

	// 选择策略，为 0 时使用算法自身默认值
	MaxResults    int     `mapstructure:"MAX_RESULTS"`
	MinScore      float64 `mapstructure:"MIN_SCORE"`
	TopScoreRatio float64 `mapstructure:"TOP_SCORE_RATIO"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("app")
	viper.SetConfigType("env")

	viper.AutomaticEnv()

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
