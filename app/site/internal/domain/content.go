package domain

import "strings"

// takeawayMarker 出版物摘要中分隔要点的标记
const takeawayMarker = "KEY TAKEAWAY:"

// Profile 事务所与执业者的基本信息
type Profile struct {
	BusinessName string   `yaml:"business_name"`
	Slogan       string   `yaml:"slogan"`
	ContactEmail string   `yaml:"contact_email"`
	ContactPhone string   `yaml:"contact_phone"`
	Biography    []string `yaml:"biography"`
	Credentials  []Badge  `yaml:"credentials"`
	Pedigree     []Group  `yaml:"pedigree"`
}

// Badge 滚动条中的资历条目
type Badge struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"`
}

// Group 履历矩阵中的一组
type Group struct {
	Label string   `yaml:"label"`
	Items []string `yaml:"items"`
}

// Service 战略服务支柱
type Service struct {
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Icon        string         `yaml:"icon"`
	Tags        []string       `yaml:"tags"`
	Benefits    []string       `yaml:"benefits"`
	Details     ServiceDetails `yaml:"details"`
}

// ServiceDetails 服务详情
type ServiceDetails struct {
	Philosophy        string   `yaml:"philosophy"`
	FocusAreas        []string `yaml:"focus_areas"`
	Methodology       []string `yaml:"methodology"`
	IndustrialContext string   `yaml:"industrial_context"`
}

// Publication 出版物
type Publication struct {
	Title   string `yaml:"title"`
	Outlet  string `yaml:"outlet"`
	Date    string `yaml:"date"`
	Summary string `yaml:"summary"`
	Link    string `yaml:"link"`
}

// Abstract 摘要中要点标记之前的部分
func (p Publication) Abstract() string {
	before, _, _ := strings.Cut(p.Summary, takeawayMarker)
	return strings.TrimSpace(before)
}

// Takeaway 摘要中要点标记之后的部分，没有标记时为空
func (p Publication) Takeaway() string {
	_, after, found := strings.Cut(p.Summary, takeawayMarker)
	if !found {
		return ""
	}
	return strings.TrimSpace(after)
}

// Resource 外部资源链接
type Resource struct {
	Name string `yaml:"name"`
	Link string `yaml:"link"`
	Icon string `yaml:"icon"`
}

// Content 全部静态内容
type Content struct {
	Profile      Profile       `yaml:"profile"`
	Services     []Service     `yaml:"services"`
	Publications []Publication `yaml:"publications"`
	Resources    []Resource    `yaml:"resources"`
}

// MailDraft 联系表单生成的邮件草稿
type MailDraft struct {
	To      string
	Subject string
	Body    string
	Href    string
}
