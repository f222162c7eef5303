package germany

import (
	"encoding/json"

	"github.com/tsinghua-fib-lab/agentsociety-incometax/incometax"
)

// 支持的年度标签，与序列化时的year字段一致
const (
	Label2024 = "2024"
)

// Type 按年度选择所得税规则
// 功能：根据年度标签在运行时选择具体的规则，并将Year、Calculate、TaxRefund转发给它
// 说明：零值Type未选择任何年度，Calculate与TaxRefund返回 *incometax.UnsupportedYearError，Year返回0
// 新增年度时：新增规则类型，在Years与variant中各加一项
type Type struct {
	label string
}

var _ incometax.IncomeTax = Type{}

// TaxType2024 2024年度
var TaxType2024 = Type{label: Label2024}

// Years 返回所有支持的年度标签
func Years() []string {
	return []string{Label2024}
}

// ParseType 根据年度标签创建Type
func ParseType(label string) (Type, error) {
	t := Type{label: label}
	if _, err := t.variant(); err != nil {
		return Type{}, err
	}
	return t, nil
}

// Label 返回年度标签
func (t Type) Label() string {
	return t.label
}

func (t Type) variant() (incometax.IncomeTax, error) {
	switch t.label {
	case Label2024:
		return IncomeTax2024{}, nil
	default:
		return nil, &incometax.UnsupportedYearError{Label: t.label}
	}
}

func (t Type) Year() uint32 {
	v, err := t.variant()
	if err != nil {
		return 0
	}
	return v.Year()
}

func (t Type) Calculate(income float64) (float64, error) {
	v, err := t.variant()
	if err != nil {
		return 0, err
	}
	return v.Calculate(income)
}

func (t Type) TaxRefund(incomeBefore, incomeAfter float64) (float64, error) {
	v, err := t.variant()
	if err != nil {
		return 0, err
	}
	return v.TaxRefund(incomeBefore, incomeAfter)
}

// typeRecord 序列化格式，例如 {"year": "2024"}
type typeRecord struct {
	Year string `yaml:"year" json:"year"`
}

func (t Type) record() (typeRecord, error) {
	if _, err := t.variant(); err != nil {
		return typeRecord{}, err
	}
	return typeRecord{Year: t.label}, nil
}

// MarshalYAML 实现yaml.Marshaler
func (t Type) MarshalYAML() (interface{}, error) {
	return t.record()
}

// UnmarshalYAML 实现yaml.Unmarshaler
func (t *Type) UnmarshalYAML(unmarshal func(interface{}) error) error {
	var r typeRecord
	if err := unmarshal(&r); err != nil {
		return err
	}
	parsed, err := ParseType(r.Year)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// MarshalJSON 实现json.Marshaler
func (t Type) MarshalJSON() ([]byte, error) {
	r, err := t.record()
	if err != nil {
		return nil, err
	}
	return json.Marshal(r)
}

// UnmarshalJSON 实现json.Unmarshaler
func (t *Type) UnmarshalJSON(data []byte) error {
	var r typeRecord
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	parsed, err := ParseType(r.Year)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
