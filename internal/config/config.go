package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Configはアプリ全体の設定
type Config struct {
	Port string `envconfig:"PORT" default:"8080"`

	// SQLiteファイルのパス。再起動しても中身は残る。
	DBPath string `envconfig:"DB_PATH" default:"store.db"`

	// 商品テーブルが空のときだけサンプルデータを投入する
	SeedSampleData bool `envconfig:"SEED_SAMPLE_DATA" default:"true"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Loadは環境変数から設定を読み込む
func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
