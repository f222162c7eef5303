package ecosim

import (
	"sync"
)

// Agent 代表经济系统中的纳税个体
type Agent struct {
	id        int32
	income    float64 // 年度应税收入（扣除前）
	deduction float64 // 可扣除金额
	currency  float64 // 持有的货币量
	mu        sync.Mutex
}

// NewAgent 创建新的代理实例
func NewAgent(id int32, income, deduction float64) *Agent {
	return &Agent{
		id:        id,
		income:    income,
		deduction: deduction,
	}
}

// GetID 获取代理ID
func (a *Agent) GetID() int32 {
	return a.id
}

// GetIncome 获取代理的收入
func (a *Agent) GetIncome() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.income
}

// SetIncome 设置代理的收入
func (a *Agent) SetIncome(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.income = value
}

// GetDeduction 获取代理的扣除额
func (a *Agent) GetDeduction() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.deduction
}

// SetDeduction 设置代理的扣除额
func (a *Agent) SetDeduction(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.deduction = value
}

// GetCurrency 获取代理持有的货币量
func (a *Agent) GetCurrency() float64 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.currency
}

// SetCurrency 设置代理持有的货币量
func (a *Agent) SetCurrency(value float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.currency = value
}
