package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `readycheck records one wellness check-in per calendar day and turns it into a readiness score.

- record_check_in: five metrics (sleep_quality, stress_level, muscle_soreness, motivation on 1-5; time_available in minutes 0-120). A second check-in on the same day replaces the first.
- has_check_in_today: call before prompting for a new check-in.
- recent_check_ins / readiness_trend: history, newest first and oldest first respectively (default 7).
- Score details: readycheck://docs/scoring
`

const scoringDoc = `# Readiness scoring

score = 100 - 10*stress_level - 10*muscle_soreness + 10*sleep_quality + 10*motivation,
clamped to 0..100. time_available is recorded but does not affect the score.

| Score | Zone | Recommendation |
|---|---|---|
| 80-100 | train_hard | Train hard |
| 50-79 | train_moderate | Train moderate |
| 0-49 | recovery | Focus on recovery |
`

func registerDocResources(server *sdkmcp.Server) {
	const uri = "readycheck://docs/scoring"
	server.AddResource(&sdkmcp.Resource{
		URI:         uri,
		Name:        "scoring",
		Title:       "Readiness scoring",
		Description: "How a check-in becomes a score, zone and recommendation.",
		MIMEType:    "text/markdown",
		Size:        int64(len(scoringDoc)),
	}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
		return &sdkmcp.ReadResourceResult{
			Contents: []*sdkmcp.ResourceContents{{
				URI:      uri,
				MIMEType: "text/markdown",
				Text:     scoringDoc,
			}},
		}, nil
	})
}
