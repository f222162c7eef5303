package config

import (
	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax/germany"
)

// AgentIncome 单个纳税个体的收入配置
type AgentIncome struct {
	ID        int32   `yaml:"id"`                  // 个体ID
	Income    float64 `yaml:"income"`              // 年度收入
	Deduction float64 `yaml:"deduction,omitempty"` // 可扣除金额
}

// Levy 批量征税配置
type Levy struct {
	Redistribution bool          `yaml:"redistribution,omitempty"` // 是否将税收平均返还
	Agents         []AgentIncome `yaml:"agents"`
}

// Config YAML配置文件的根结构
// 功能：定义所得税计算的配置结构
// 说明：Tax为按年度打标签的规则，如 year: "2024"；Levy为空时只做单次计算
type Config struct {
	Tax  germany.Type `yaml:"tax"`            // 所得税规则
	Levy *Levy        `yaml:"levy,omitempty"` // 批量征税
}
