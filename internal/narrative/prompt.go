package narrative

import "fmt"

// systemRole frames the model as the analyst persona.
const systemRole = "You are an elite football tactical analyst covering La Liga."

// promptTemplate pins the model to five markdown sections so the frontend
// can render the breakdown without post-processing. The analysis must stay
// inside the supplied statistics.
const promptTemplate = `You are an expert football analyst. I need a clear, professional, post-match tactical breakdown
based *only* on the provided event-level match statistics. Do not invent any events that are not supported by the stats.

Match Information:
%s %d - %d %s

Structured Match Stats Data (JSON):
%s

Please provide the output formatted cleanly in Markdown, adhering rigidly to the following sections:

## 1. Match Summary
A concise 2-3 sentence overview of the match flow, dominant team (if any), and the final result based on the xG and goals.

## 2. Tactical Structure
Analyze the attacking and defensive numbers (e.g. shot volume, possession indicators like passes, and defensive actions like pressures/tackles) for both teams. Who controlled the tempo?

## 3. Turning Point
Look at the timing of the goals or major flurries of statistical activity (if apparent) to identify when the match shifted.

## 4. Substitution Impact
Examine the substitutions made and infer if they correspond with any shifts in the game's momentum or late goals.

## 5. Why the Result Happened
A concluding bulleted list (3 bullet points max) of the decisive factors according to the data (e.g., Clinical finishing despite low xG, high defensive pressure success, reliance on specific key players). Give a nod to the 'Top Involved Players' if relevant.`

// buildPrompt embeds the score line and serialized stats into the template.
func buildPrompt(statsJSON, homeTeam, awayTeam string, homeScore, awayScore int) string {
	return fmt.Sprintf(promptTemplate, homeTeam, homeScore, awayScore, awayTeam, statsJSON)
}
