package ecosim

import (
	"fmt"
	"sort"
	"sync"

	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax"
)

// Government 征税的政府，只适用一个年度/地区的税法
type Government struct {
	tax      incometax.IncomeTax
	currency float64
}

// EconomySim 代表经济模拟系统
type EconomySim struct {
	agents map[int32]*Agent
	gov    Government
	log    *logrus.Entry
	mu     sync.Mutex
}

// NewEconomySim 创建新的经济模拟系统实例
// 参数：tax-政府适用的所得税规则，log-日志记录器，为nil时使用默认记录器
func NewEconomySim(tax incometax.IncomeTax, log *logrus.Entry) *EconomySim {
	if log == nil {
		log = logrus.WithField("module", "ecosim")
	}
	return &EconomySim{
		agents: make(map[int32]*Agent),
		gov:    Government{tax: tax},
		log:    log,
	}
}

// AddAgent 添加新代理
func (e *EconomySim) AddAgent(agent *Agent) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.agents[agent.GetID()]; exists {
		return fmt.Errorf("agent %d already exists", agent.GetID())
	}
	e.agents[agent.GetID()] = agent
	return nil
}

// RemoveAgent 移除代理
func (e *EconomySim) RemoveAgent(agentID int32) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, exists := e.agents[agentID]; !exists {
		return fmt.Errorf("agent %d not found", agentID)
	}
	delete(e.agents, agentID)
	return nil
}

// GetAgent 获取代理
func (e *EconomySim) GetAgent(agentID int32) (*Agent, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	agent, exists := e.agents[agentID]
	if !exists {
		return nil, fmt.Errorf("agent %d not found", agentID)
	}
	return agent, nil
}

// GetAgentIDs 获取所有代理ID，升序
func (e *EconomySim) GetAgentIDs() []int32 {
	e.mu.Lock()
	defer e.mu.Unlock()

	ids := lo.Keys(e.agents)
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// GetGovernmentCurrency 获取政府持有的货币量
func (e *EconomySim) GetGovernmentCurrency() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.gov.currency
}

// TaxYear 获取政府适用的纳税年度
func (e *EconomySim) TaxYear() uint32 {
	return e.gov.tax.Year()
}

// agentTax 单个代理的计税结果
type agentTax struct {
	agent  *Agent
	income float64
	tax    float64
	refund float64
}

// assess 计算单个代理扣除后的应缴税额和扣除带来的退税额
func (e *EconomySim) assess(agent *Agent) (agentTax, error) {
	income := agent.GetIncome()
	if err := incometax.ValidateIncome(income); err != nil {
		return agentTax{}, fmt.Errorf("agent %d: %w", agent.GetID(), err)
	}
	taxable, err := taxableIncome(income, agent.GetDeduction())
	if err != nil {
		return agentTax{}, fmt.Errorf("agent %d: %w", agent.GetID(), err)
	}
	refund, err := e.gov.tax.TaxRefund(income, taxable)
	if err != nil {
		return agentTax{}, fmt.Errorf("agent %d: %w", agent.GetID(), err)
	}
	tax, err := e.gov.tax.Calculate(taxable)
	if err != nil {
		return agentTax{}, fmt.Errorf("agent %d: %w", agent.GetID(), err)
	}
	return agentTax{agent: agent, income: income, tax: tax, refund: refund}, nil
}

// assessAll 依次计算指定代理的税额，任一代理出错时整体失败，不修改任何状态
func (e *EconomySim) assessAll(agentIDs []int32) ([]agentTax, error) {
	if dup := lo.FindDuplicates(agentIDs); len(dup) > 0 {
		return nil, fmt.Errorf("duplicate agent IDs %v", dup)
	}
	results := make([]agentTax, 0, len(agentIDs))
	for _, agentID := range agentIDs {
		agent, exists := e.agents[agentID]
		if !exists {
			return nil, fmt.Errorf("agent %d not found", agentID)
		}
		r, err := e.assess(agent)
		if err != nil {
			return nil, err
		}
		results = append(results, r)
	}
	return results, nil
}

// CalculateTaxesDue 计算应缴税额
// 功能：对指定代理按扣除后的收入征税，税后收入计入代理的货币量
// 参数：agentIDs-代理ID列表，enableRedistribution-是否将税收平均返还给这些代理
// 返回：总税额、各代理税后收入（含返还部分）
// 算法说明：
// 1. 先计算所有代理的税额，任一代理出错则不修改任何状态
// 2. 税后收入 = 收入 - 税额，累加到代理货币量
// 3. 开启再分配时，总税额平均分给各代理；否则计入政府货币量
func (e *EconomySim) CalculateTaxesDue(agentIDs []int32, enableRedistribution bool) (float64, []float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	results, err := e.assessAll(agentIDs)
	if err != nil {
		return 0, nil, err
	}

	totalTax := lo.SumBy(results, func(r agentTax) float64 { return r.tax })
	var lumpSum float64
	if enableRedistribution && len(results) > 0 {
		lumpSum = totalTax / float64(len(results))
	} else {
		e.gov.currency += totalTax
	}

	updatedIncomes := lo.Map(results, func(r agentTax, _ int) float64 {
		net := r.income - r.tax + lumpSum
		r.agent.SetCurrency(r.agent.GetCurrency() + net)
		e.log.Debugf("agent %d: income %v, tax %v, net %v", r.agent.GetID(), r.income, r.tax, net)
		return net
	})

	e.log.Infof("year %d: collected %v from %d agents (redistribution: %v)", e.gov.tax.Year(), totalTax, len(results), enableRedistribution)
	return totalTax, updatedIncomes, nil
}

// CalculateRefunds 计算扣除带来的退税额
// 功能：对比每个代理扣除前后收入对应的税额，不修改任何状态
// 返回：按agentIDs顺序的退税额
func (e *EconomySim) CalculateRefunds(agentIDs []int32) ([]float64, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	results, err := e.assessAll(agentIDs)
	if err != nil {
		return nil, err
	}
	return lo.Map(results, func(r agentTax, _ int) float64 { return r.refund }), nil
}
