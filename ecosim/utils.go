package ecosim

import (
	"fmt"
	"math"
)

// taxableIncome 计算扣除后的应税收入
// 扣除额超过收入时应税收入为0；扣除额为负或非有限数时返回错误
// 调用前收入须已通过incometax.ValidateIncome校验
func taxableIncome(income, deduction float64) (float64, error) {
	if math.IsNaN(deduction) || math.IsInf(deduction, 0) || deduction < 0 {
		return 0, fmt.Errorf("invalid deduction %v", deduction)
	}
	if deduction == 0 {
		return income, nil
	}
	return math.Max(income-deduction, 0), nil
}
