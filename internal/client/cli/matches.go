package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
)

func (a *App) Analyze(ctx context.Context, args []string) error {
	jobID, err := argID(args, 0, "analyze <job-id> <resume-id>")
	if err != nil {
		return a.report(err)
	}
	resumeID, err := argID(args, 1, "analyze <job-id> <resume-id>")
	if err != nil {
		return a.report(err)
	}

	m, err := a.svc.Matches.Analyze(ctx, models.MatchAnalysis{JobID: jobID, ResumeID: resumeID})
	if err != nil {
		return a.report(err)
	}
	a.println(fmt.Sprintf("Match %d: score %.0f%%", m.ID, m.Score*100))
	return nil
}

func (a *App) Recommend(ctx context.Context, args []string) error {
	id, err := argID(args, 0, "recommend <match-id>")
	if err != nil {
		return a.report(err)
	}
	rec, err := a.svc.Matches.Recommendations(ctx, id)
	if err != nil {
		return a.report(err)
	}
	a.println(fmt.Sprintf("Match %d: score %.0f%%", rec.MatchID, rec.Score*100))
	a.printJSON(map[string]any{
		"strengths":       rec.Strengths,
		"gaps":            rec.Gaps,
		"recommendations": rec.Recommendations,
	})
	return nil
}

func (a *App) Dashboard(ctx context.Context) error {
	d, err := a.svc.Analytics.Dashboard(ctx)
	if err != nil {
		return a.report(err)
	}
	a.printJSON(d)

	skills, err := a.svc.Analytics.Skills(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(skills.Skills) > 0 {
		rows := make([]string, 0, len(skills.Skills))
		for _, s := range skills.Skills {
			rows = append(rows, fmt.Sprintf("%s\t%d", s.Skill, s.Count))
		}
		a.table("SKILL\tCOUNT", rows)
	}
	return nil
}
