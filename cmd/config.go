package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"
)

type Config struct {
	HTTPPort      string
	StorageDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	RedisEnabled  bool
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	StockCacheTTL time.Duration

	LogLevel   string
	BcryptCost int

	LowStockThreshold int
	LowStockSchedule  string
	CacheWarmSchedule string
}

// LoadConfig reads envFile into the process environment when it exists, then
// resolves every setting from RETAILOPS_* variables over the defaults.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", envFile, err)
		}
	}

	v := viper.New()
	v.SetEnvPrefix("RETAILOPS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	cfg := Config{
		HTTPPort:          v.GetString("http_port"),
		StorageDriver:     strings.ToLower(v.GetString("storage_driver")),
		DBHost:            v.GetString("db_host"),
		DBPort:            v.GetString("db_port"),
		DBUser:            v.GetString("db_user"),
		DBPassword:        v.GetString("db_password"),
		DBName:            v.GetString("db_name"),
		DBSslMode:         v.GetString("db_sslmode"),
		RedisEnabled:      v.GetBool("redis_enabled"),
		RedisAddr:         v.GetString("redis_addr"),
		RedisPassword:     v.GetString("redis_password"),
		RedisDB:           v.GetInt("redis_db"),
		StockCacheTTL:     v.GetDuration("stock_cache_ttl"),
		LogLevel:          v.GetString("log_level"),
		BcryptCost:        v.GetInt("bcrypt_cost"),
		LowStockThreshold: v.GetInt("low_stock_threshold"),
		LowStockSchedule:  v.GetString("low_stock_schedule"),
		CacheWarmSchedule: v.GetString("cache_warm_schedule"),
	}
	return cfg, cfg.Validate()
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("http_port", "8080")
	v.SetDefault("storage_driver", StoragePostgres)

	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "retailops")
	v.SetDefault("db_password", "retailops")
	v.SetDefault("db_name", "retailops")
	v.SetDefault("db_sslmode", "disable")

	v.SetDefault("redis_enabled", false)
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("redis_password", "")
	v.SetDefault("redis_db", 0)
	v.SetDefault("stock_cache_ttl", 10*time.Minute)

	v.SetDefault("log_level", "info")
	v.SetDefault("bcrypt_cost", 10)

	v.SetDefault("low_stock_threshold", 10)
	v.SetDefault("low_stock_schedule", "0 * * * * *")
	v.SetDefault("cache_warm_schedule", "0 */5 * * * *")
}

func (c Config) Validate() error {
	var errList []error
	if c.StorageDriver != StorageMemory && c.StorageDriver != StoragePostgres {
		errList = append(errList, fmt.Errorf("storage driver %q: want %s or %s", c.StorageDriver, StoragePostgres, StorageMemory))
	}
	if c.HTTPPort == "" {
		errList = append(errList, errors.New("http port is required"))
	}
	if c.LowStockThreshold < 0 {
		errList = append(errList, fmt.Errorf("low stock threshold %d is negative", c.LowStockThreshold))
	}
	if c.RedisEnabled && c.StockCacheTTL <= 0 {
		errList = append(errList, fmt.Errorf("stock cache ttl %s must be positive", c.StockCacheTTL))
	}
	return errors.Join(errList...)
}
