package incometax

import (
	"fmt"
	"math"

	"github.com/samber/lo"
)

// Formula 单个税率档位内的计税公式
type Formula interface {
	Apply(income float64) float64
}

// Allowance 免税额档位，税额恒为0
type Allowance struct{}

func (Allowance) Apply(float64) float64 {
	return 0
}

// Progression 累进区档位
// 计算方法：y = (income - Start) / Divisor，tax = (Quadratic*y + Linear)*y + Offset
type Progression struct {
	Start     float64 // 档位起点
	Divisor   float64 // 归一化除数
	Quadratic float64 // 二次项系数
	Linear    float64 // 一次项系数
	Offset    float64 // 档位起点处的基础税额
}

func (p Progression) Apply(income float64) float64 {
	y := (income - p.Start) / p.Divisor
	return (p.Quadratic*y+p.Linear)*y + p.Offset
}

// Proportional 比例区档位
// 计算方法：tax = Rate*income - Deduction
type Proportional struct {
	Rate      float64 // 边际税率
	Deduction float64 // 速算扣除数
}

func (p Proportional) Apply(income float64) float64 {
	return p.Rate*income - p.Deduction
}

// Bracket 税率档位，对收入区间[Lower, Upper)应用Formula
// 最后一个档位的Upper为正无穷
type Bracket struct {
	Name    string
	Lower   float64
	Upper   float64
	Formula Formula
}

// Contains 判断收入是否落在档位内（含下界，不含上界）
func (b Bracket) Contains(income float64) bool {
	return income >= b.Lower && income < b.Upper
}

// Schedule 某一年度的全部税率档位，按下界升序排列
type Schedule []Bracket

// NewSchedule 创建并校验税率表
func NewSchedule(brackets ...Bracket) (Schedule, error) {
	s := Schedule(brackets)
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// MustSchedule 与NewSchedule相同，校验失败时panic，用于包级变量初始化
func MustSchedule(brackets ...Bracket) Schedule {
	s, err := NewSchedule(brackets...)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate 校验税率表
// 功能：检查各档位是否无间隙、无重叠地覆盖[0, +Inf)
// 算法说明：
// 1. 第一个档位下界必须为0
// 2. 每个档位必须满足Lower < Upper，且Upper等于下一个档位的Lower
// 3. 最后一个档位的Upper必须为正无穷
// 4. 每个档位都必须有计税公式
func (s Schedule) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("schedule has no brackets")
	}
	if s[0].Lower != 0 {
		return fmt.Errorf("first bracket %q starts at %v, want 0", s[0].Name, s[0].Lower)
	}
	for i, b := range s {
		if b.Formula == nil {
			return fmt.Errorf("bracket %q has no formula", b.Name)
		}
		if !(b.Lower < b.Upper) {
			return fmt.Errorf("bracket %q is empty: [%v, %v)", b.Name, b.Lower, b.Upper)
		}
		if i+1 < len(s) && b.Upper != s[i+1].Lower {
			return fmt.Errorf("bracket %q ends at %v but %q starts at %v", b.Name, b.Upper, s[i+1].Name, s[i+1].Lower)
		}
	}
	if last := s[len(s)-1]; !math.IsInf(last.Upper, 1) {
		return fmt.Errorf("last bracket %q is bounded above by %v", last.Name, last.Upper)
	}
	return nil
}

// Find 按升序查找收入所在的档位
func (s Schedule) Find(income float64) (Bracket, bool) {
	return lo.Find(s, func(b Bracket) bool {
		return b.Contains(income)
	})
}

// Evaluate 计算应缴税额
// 功能：校验收入后，将收入向下取整到整数货币单位，查找档位并计算税额，结果再向下取整
// 参数：income-应税收入
// 返回：应缴税额或收入校验错误
func (s Schedule) Evaluate(income float64) (float64, error) {
	if err := ValidateIncome(income); err != nil {
		return 0, err
	}
	income = FloorToUnit(income)
	b, ok := s.Find(income)
	if !ok {
		return 0, fmt.Errorf("no bracket covers income %v", income)
	}
	return FloorToUnit(b.Formula.Apply(income)), nil
}
