package config

import (
	"encoding/base64"
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

// Load 读取配置
// 功能：从配置文件或Base64编码的配置数据中解析配置
// 参数：path-配置文件路径，data-Base64编码的配置数据，path优先
// 返回：解析后的配置
// 说明：使用严格模式解析，未知字段会报错
func Load(path, data string) (Config, error) {
	var file []byte
	var err error
	if path != "" {
		file, err = os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config file load err: %w", err)
		}
	} else if data != "" {
		file, err = base64.StdEncoding.DecodeString(data)
		if err != nil {
			return Config{}, fmt.Errorf("config data load err: %w", err)
		}
	} else {
		return Config{}, fmt.Errorf("config file or config data must be specified")
	}
	return Parse(file)
}

// Parse 解析YAML配置
func Parse(file []byte) (Config, error) {
	var c Config
	if err := yaml.UnmarshalStrict(file, &c); err != nil {
		return Config{}, fmt.Errorf("config parse err: %w", err)
	}
	if c.Tax.Label() == "" {
		return Config{}, fmt.Errorf("config: tax.year must be specified")
	}
	return c, nil
}
