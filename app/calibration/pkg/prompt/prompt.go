package prompt

import (
	"fmt"

	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/briefing"
	"github.com/harmar-advisory/strategic_site/app/calibration/pkg/model"
)

// persona 固定的从业者角色描述
const persona = `You are an AI Strategic Assistant for Tim J. Harmar, an interdisciplinary counsel based in Northern Ontario.
Tim's credentials include: JD, dual LLM (Business/Finance), MBA (Finance), M.Eng (Cybersecurity Policy), CAPP certified, CIPP/C professional.
He acted as counsel in the leading Supreme Court of Canada case on anti-SLAPP legislation.`

const promptTpl = `%s

The user has provided a challenge in the "%s" domain: "%s"

Your task:
Create a "Strategic Briefing" analyzing how Tim's integrated framework (Law + Engineering + Finance) addresses this.

STRUCTURE YOUR RESPONSE EXACTLY LIKE THIS (include the labels):
%s [A concise partner-level summary of the strategic approach]
%s [Identify 2-3 specific hidden structural risks found at the nexus of law and technology]
%s [How Tim's integrated approach turns these risks into competitive upside]

Tone: Sophisticated, objective, professional. Total max 140 words.`

// Build 根据领域和挑战描述渲染 Prompt。
// 纯函数，不做校验：调用方负责保证 challenge 去除空白后非空。
func Build(domain model.Domain, challenge string) string {
	return fmt.Sprintf(promptTpl,
		persona,
		domain,
		challenge,
		briefing.LabelSynthesis,
		briefing.LabelRisks,
		briefing.LabelMatrix,
	)
}
