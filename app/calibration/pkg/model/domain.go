package model

import (
	"errors"
	"fmt"
)

// ErrUnknownDomain 领域标签不在封闭集合内
var ErrUnknownDomain = errors.New("unknown domain")

// Domain 战略领域标签，同一时刻只能选中一个
type Domain string

const (
	Corporate  Domain = "Corporate"
	Privacy    Domain = "Privacy"
	Industrial Domain = "Industrial"
	Cyber      Domain = "Cyber"
)

// DefaultDomain 页面初始选中的领域
const DefaultDomain = Corporate

// DomainInfo 领域选择器的展示信息
type DomainInfo struct {
	Name Domain
	Icon string
}

var domains = []DomainInfo{
	{Name: Corporate, Icon: "fa-building"},
	{Name: Privacy, Icon: "fa-user-shield"},
	{Name: Industrial, Icon: "fa-industry"},
	{Name: Cyber, Icon: "fa-microchip"},
}

// Domains 按固定顺序返回全部领域
func Domains() []DomainInfo {
	out := make([]DomainInfo, len(domains))
	copy(out, domains)
	return out
}

// ParseDomain 严格匹配（区分大小写）领域标签
func ParseDomain(s string) (Domain, error) {
	d := Domain(s)
	if !d.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownDomain, s)
	}
	return d, nil
}

// Valid 判断是否属于封闭集合
func (d Domain) Valid() bool {
	for _, info := range domains {
		if info.Name == d {
			return true
		}
	}
	return false
}

func (d Domain) String() string {
	return string(d)
}
