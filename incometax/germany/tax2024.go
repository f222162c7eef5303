// Package germany 德国个人所得税（§ 32a EStG）
package germany

import (
	"math"

	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax"
)

// 2024年度税率表
// https://www.steuertipps.de/gesetze/estg/32a-einkommensteuertarif
var schedule2024 = incometax.MustSchedule(
	incometax.Bracket{
		Name:    "Grundfreibetrag",
		Lower:   0,
		Upper:   11_605,
		Formula: incometax.Allowance{},
	},
	incometax.Bracket{
		Name:  "Untere Progressionszone",
		Lower: 11_605,
		Upper: 17_005,
		Formula: incometax.Progression{
			Start:     11_605,
			Divisor:   10_000,
			Quadratic: 922.98,
			Linear:    1_400,
		},
	},
	incometax.Bracket{
		Name:  "Obere Progressionszone",
		Lower: 17_005,
		Upper: 66_760,
		Formula: incometax.Progression{
			Start:     17_005,
			Divisor:   10_000,
			Quadratic: 181.19,
			Linear:    2_397,
			Offset:    1_025.38,
		},
	},
	incometax.Bracket{
		Name:    "Spitzensteuersatz",
		Lower:   66_760,
		Upper:   277_825,
		Formula: incometax.Proportional{Rate: 0.42, Deduction: 10_602.13},
	},
	incometax.Bracket{
		Name:    "Reichensteuer",
		Lower:   277_825,
		Upper:   math.Inf(1),
		Formula: incometax.Proportional{Rate: 0.45, Deduction: 18_936.88},
	},
)

// IncomeTax2024 2024年度所得税规则
type IncomeTax2024 struct{}

var _ incometax.IncomeTax = IncomeTax2024{}

func (IncomeTax2024) Year() uint32 {
	return 2024
}

// Calculate 计算应缴税额
// 功能：按2024年度五档公式计算税额
// 参数：income-应税收入
// 返回：向下取整后的税额；收入非有限数或为负时返回错误
// 算法说明：
// 1. 收入向下取整到整欧元（"des auf einen vollen Euro-Betrag abgerundeten zu versteuernden Einkommens"）
// 2. 按[下界, 上界)依次查找档位并套用公式
// 3. 税额向下取整到整欧元
func (IncomeTax2024) Calculate(income float64) (float64, error) {
	return schedule2024.Evaluate(income)
}

func (t IncomeTax2024) TaxRefund(incomeBefore, incomeAfter float64) (float64, error) {
	return incometax.Refund(t, incomeBefore, incomeAfter)
}

// Brackets 返回2024年度税率表的副本
func (IncomeTax2024) Brackets() incometax.Schedule {
	return append(incometax.Schedule(nil), schedule2024...)
}
