package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/briefing"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
)

func TestBuild(t *testing.T) {
	challenge := "Our ransomware posture is unclear."
	p := Build(model.Cyber, challenge)

	assert.Contains(t, p, `challenge in the "Cyber" domain: "Our ransomware posture is unclear."`)
	assert.Contains(t, p, "Tim J. Harmar")
	assert.Contains(t, p, "Total max 140 words.")

	// 三个标签按固定顺序出现
	last := -1
	for _, label := range briefing.Labels() {
		idx := strings.Index(p, label)
		if assert.GreaterOrEqual(t, idx, 0, "missing label %s", label) {
			assert.Greater(t, idx, last, "label %s out of order", label)
			last = idx
		}
	}
}

func TestBuild_Deterministic(t *testing.T) {
	for _, d := range model.Domains() {
		assert.Equal(t, Build(d.Name, "x"), Build(d.Name, "x"))
		assert.Contains(t, Build(d.Name, "x"), `"`+d.Name.String()+`" domain`)
	}
}

func TestBuild_ChallengeVerbatim(t *testing.T) {
	challenge := "Multi-line\nchallenge with \"quotes\" and %d verbs"
	assert.Contains(t, Build(model.Privacy, challenge), challenge)
}
