package briefing

import "strings"

// 模型输出中的三个固定标签，顺序即 Prompt 中要求的顺序
const (
	LabelSynthesis = "EXECUTIVE SYNTHESIS:"
	LabelRisks     = "RISK CLUSTERS:"
	LabelMatrix    = "ADVANTAGE MATRIX:"
)

// Labels 按固定顺序返回三个标签
func Labels() []string {
	return []string{LabelSynthesis, LabelRisks, LabelMatrix}
}

// Briefing 解析后的战略简报，空字符串表示该段缺失
type Briefing struct {
	Synthesis string `json:"synthesis,omitempty"`
	Risks     string `json:"risks,omitempty"`
	Matrix    string `json:"matrix,omitempty"`
}

// Section 简报中实际存在的一段
type Section struct {
	Key   string
	Title string
	Body  string
}

// Parse 按标签切分原始文本。
// 只做结构切分：标签区分大小写，缺失或乱序的标签得到缺失字段，不做修复。
func Parse(raw string) Briefing {
	return Briefing{
		Synthesis: extract(raw, LabelSynthesis, LabelRisks),
		Risks:     extract(raw, LabelRisks, LabelMatrix),
		Matrix:    extract(raw, LabelMatrix, ""),
	}
}

// extract 取 label 第一次出现之后、label 再次出现之前的文本，再截断到 bound 之前
func extract(raw, label, bound string) string {
	_, after, found := strings.Cut(raw, label)
	if !found {
		return ""
	}
	segment, _, _ := strings.Cut(after, label)
	if bound != "" {
		segment, _, _ = strings.Cut(segment, bound)
	}
	return strings.TrimSpace(segment)
}

// Empty 三段均缺失
func (b Briefing) Empty() bool {
	return b.Synthesis == "" && b.Risks == "" && b.Matrix == ""
}

// Sections 按固定顺序返回存在的段落
func (b Briefing) Sections() []Section {
	all := []Section{
		{Key: "synthesis", Title: "Executive Synthesis", Body: b.Synthesis},
		{Key: "risks", Title: "Risk Clusters", Body: b.Risks},
		{Key: "matrix", Title: "Advantage Matrix", Body: b.Matrix},
	}
	out := all[:0]
	for _, s := range all {
		if s.Body != "" {
			out = append(out, s)
		}
	}
	return out
}
