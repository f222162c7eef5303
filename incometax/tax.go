// Package incometax 所得税计算的统一抽象
// 功能：定义各个年份/地区所得税实现都需要满足的接口，以及基于接口的派生计算
// 说明：所有计算都是纯函数，没有内部状态，可以被多个调用方并发使用
package incometax

import (
	"math"
)

// Calculator 所得税计算规则
// 功能：按某一年份/地区的法定公式，将应税收入换算为应缴税额
type Calculator interface {
	// Year 返回该规则适用的纳税年度
	Year() uint32
	// Calculate 计算指定收入的应缴税额，结果向下取整到整数货币单位
	Calculate(income float64) (float64, error)
}

// IncomeTax 所得税计算接口，各年度/地区的实现都需满足
// 实现可以直接用Refund实现TaxRefund
type IncomeTax interface {
	Calculator
	// TaxRefund 计算调整前后收入对应税额之差，正数为退税，负数为补税
	TaxRefund(incomeBefore, incomeAfter float64) (float64, error)
}

// Refund 计算退税额
// 功能：计算调整前收入（基础收入）与调整后收入（如扣除后）对应税额的差值
// 参数：c-税额计算规则，incomeBefore-调整前收入，incomeAfter-调整后收入
// 返回：正数表示退税，负数表示需要补缴
// 说明：先计算调整前收入，出错时直接返回，不再计算调整后收入
func Refund(c Calculator, incomeBefore, incomeAfter float64) (float64, error) {
	taxBefore, err := c.Calculate(incomeBefore)
	if err != nil {
		return 0, err
	}
	taxAfter, err := c.Calculate(incomeAfter)
	if err != nil {
		return 0, err
	}
	return taxBefore - taxAfter, nil
}

// ValidateIncome 检查收入是否合法
// 功能：依次检查收入是否为有限数、是否非负
// 返回：*IncomeNotFiniteError 或 *NegativeIncomeError，合法时返回nil
// 说明：先检查有限性，因此负无穷返回 *IncomeNotFiniteError
func ValidateIncome(income float64) error {
	if math.IsNaN(income) || math.IsInf(income, 0) {
		return &IncomeNotFiniteError{Income: income}
	}
	if income < 0 {
		return &NegativeIncomeError{Income: income}
	}
	return nil
}

// FloorToUnit 向下取整到整数货币单位
func FloorToUnit(amount float64) float64 {
	return math.Floor(amount)
}
