package incometax

import (
	"errors"
	"fmt"
)

// ErrInvalidIncome 所有收入校验错误都可以通过errors.Is匹配到该错误
var ErrInvalidIncome = errors.New("invalid income")

// IncomeNotFiniteError 收入为无穷大或NaN
type IncomeNotFiniteError struct {
	Income float64
}

func (e *IncomeNotFiniteError) Error() string {
	return "The provided income was not a finite number"
}

func (e *IncomeNotFiniteError) Is(target error) bool {
	return target == ErrInvalidIncome
}

// NegativeIncomeError 收入为有限的负数
type NegativeIncomeError struct {
	Income float64
}

func (e *NegativeIncomeError) Error() string {
	return "The provided income was negative"
}

func (e *NegativeIncomeError) Is(target error) bool {
	return target == ErrInvalidIncome
}

// UnsupportedYearError 选择了不支持的纳税年度
type UnsupportedYearError struct {
	Label string
}

func (e *UnsupportedYearError) Error() string {
	if e.Label == "" {
		return "no tax year selected"
	}
	return fmt.Sprintf("unsupported tax year %q", e.Label)
}
