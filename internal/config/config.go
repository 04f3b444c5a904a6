package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix 环境变量前缀，如 SALESBOARD_SERVER_PORT
const EnvPrefix = "SALESBOARD"

// AppConfig 应用配置
type AppConfig struct {
	Server     ServerConfig      `toml:"server"`
	Data       DataConfig        `toml:"data"`
	Log        LogConfig         `toml:"log"`
	Partitions []PartitionConfig `toml:"partitions" ignored:"true" validate:"len=2,dive"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port" validate:"min=1,max=65535"`
	DevMode bool `toml:"dev_mode" split_words:"true"`
}

// DataConfig 数据目录配置
type DataConfig struct {
	// Dir 分区目录的根目录；相对路径基于配置文件所在目录
	Dir        string   `toml:"dir" validate:"required"`
	DBPath     string   `toml:"db_path" envconfig:"DB_PATH" validate:"required"`
	Extensions []string `toml:"extensions" validate:"min=1,dive,startswith=."`
	MaxFiles   int      `toml:"max_files" split_words:"true" validate:"min=1"`
}

// LogConfig 日志配置
type LogConfig struct {
	Mode string `toml:"mode" validate:"oneof=development production"`
}

// PartitionConfig 品类分区
type PartitionConfig struct {
	Name string `toml:"name" validate:"required"`
	Dir  string `toml:"dir" validate:"required"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	Path       string
	FileExists bool
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    8000,
			DevMode: false,
		},
		Data: DataConfig{
			Dir:        filepath.Join("uploads", "excel-files"),
			DBPath:     "salesboard.db",
			Extensions: []string{".xlsx", ".xlsm"},
			MaxFiles:   5,
		},
		Log: LogConfig{
			Mode: "development",
		},
		Partitions: []PartitionConfig{
			{Name: "lubricants", Dir: "lubricants"},
			{Name: "petroleum", Dir: "petroleum"},
		},
	}
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

// DefaultConfigPath 默认配置文件：可执行文件同目录下的 config.toml
func DefaultConfigPath() string {
	exeDir, err := GetExeDir()
	if err != nil {
		exeDir = "."
	}
	return filepath.Join(exeDir, "config.toml")
}

// LoadConfigWithInfo 依次应用默认值、配置文件、环境变量，然后校验。
// path 为空时使用 DefaultConfigPath；文件不存在时使用默认配置。
func LoadConfigWithInfo(path string) (*AppConfig, LoadConfigInfo, error) {
	if path == "" {
		path = DefaultConfigPath()
	}
	info := LoadConfigInfo{Path: path}
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		info.FileExists = true
		// 切片字段以文件为准，文件未配置时再回落到默认值
		cfg.Data.Extensions = nil
		cfg.Partitions = nil
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, info, fmt.Errorf("failed to parse %s: %w", path, err)
		}
		defaults := DefaultConfig()
		if len(cfg.Data.Extensions) == 0 {
			cfg.Data.Extensions = defaults.Data.Extensions
		}
		if len(cfg.Partitions) == 0 {
			cfg.Partitions = defaults.Partitions
		}
	case os.IsNotExist(err):
	default:
		return nil, info, fmt.Errorf("failed to read %s: %w", path, err)
	}

	// 环境变量覆盖（用于容器 / 本地运行）
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, info, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, info, err
	}
	return cfg, info, nil
}

// Validate 校验配置
func (c *AppConfig) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	seen := make(map[string]bool, len(c.Partitions))
	for _, p := range c.Partitions {
		if seen[p.Name] {
			return fmt.Errorf("invalid config: duplicate partition %q", p.Name)
		}
		seen[p.Name] = true
	}
	return nil
}

// SaveConfig 保存配置到 path
func SaveConfig(path string, cfg *AppConfig) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// EnsureConfigFile 配置文件不存在时写入默认配置，返回是否新建
func EnsureConfigFile(info LoadConfigInfo) (bool, error) {
	if info.FileExists {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(info.Path), 0755); err != nil {
		return false, err
	}
	if err := SaveConfig(info.Path, DefaultConfig()); err != nil {
		return false, fmt.Errorf("failed to write default config %s: %w", info.Path, err)
	}
	return true, nil
}

// ResolvePath 相对路径基于 baseDir 解析
func ResolvePath(baseDir, p string) string {
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// DataDir 分区根目录的绝对路径
func (c *AppConfig) DataDir(baseDir string) string {
	return ResolvePath(baseDir, c.Data.Dir)
}

// DBPath 数据库文件路径
func (c *AppConfig) DBPath(baseDir string) string {
	return ResolvePath(baseDir, c.Data.DBPath)
}

// PartitionDirs 分区名 -> 目录
func (c *AppConfig) PartitionDirs(baseDir string) map[string]string {
	root := c.DataDir(baseDir)
	out := make(map[string]string, len(c.Partitions))
	for _, p := range c.Partitions {
		out[p.Name] = ResolvePath(root, p.Dir)
	}
	return out
}

// EnsureDataDir 确保各分区目录存在
func EnsureDataDir(cfg *AppConfig, baseDir string) (string, error) {
	dataDir := cfg.DataDir(baseDir)
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	for _, dir := range cfg.PartitionDirs(baseDir) {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", err
		}
	}
	return dataDir, nil
}
