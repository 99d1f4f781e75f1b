package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
)

// readFile is a test seam for os.ReadFile.
var readFile = os.ReadFile

func (a *App) Profile(ctx context.Context) error {
	p, err := a.svc.Profile.Get(ctx)
	if err != nil {
		return a.report(err)
	}
	a.println("Title:     ", p.Title)
	a.println("Location:  ", p.Location)
	a.println("Experience:", p.ExperienceLevel)
	a.println("Skills:    ", joinOrDash(p.Skills))
	return nil
}

// SetProfile asks for each field; an empty answer keeps the current value.
func (a *App) SetProfile(ctx context.Context) error {
	var upd models.ProfileUpdate

	ask := func(prompt string) (*string, error) {
		v, err := getSimpleText(a.reader, prompt+" (empty to keep)", a.out)
		if err != nil || v == "" {
			return nil, err
		}
		return &v, nil
	}

	var err error
	if upd.Title, err = ask("Title"); err != nil {
		return err
	}
	if upd.Location, err = ask("Location"); err != nil {
		return err
	}
	if upd.ExperienceLevel, err = ask("Experience level (entry, junior, mid, senior, lead, executive)"); err != nil {
		return err
	}
	skills, err := ask("Skills, comma separated")
	if err != nil {
		return err
	}
	if skills != nil {
		upd.Skills = splitList(*skills)
	}

	if _, err := a.svc.Profile.Update(ctx, upd); err != nil {
		return a.report(err)
	}
	a.println("Profile updated")
	return nil
}

func (a *App) Resumes(ctx context.Context) error {
	list, err := a.svc.Resumes.List(ctx)
	if err != nil {
		return a.report(err)
	}
	if len(list) == 0 {
		a.println("No resumes uploaded")
		return nil
	}
	rows := make([]string, 0, len(list))
	for _, r := range list {
		primary := ""
		if r.IsPrimary {
			primary = "primary"
		}
		rows = append(rows, fmt.Sprintf("%d\t%s\t%s\t%s", r.ID, r.Filename, primary, joinOrDash(r.Skills)))
	}
	a.table("ID\tFILE\t\tSKILLS", rows)
	return nil
}

func (a *App) Upload(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return a.report(fmt.Errorf("usage: upload <file>"))
	}
	content, err := readFile(args[0])
	if err != nil {
		return a.report(err)
	}

	res, err := a.svc.Resumes.Upload(ctx, filepath.Base(args[0]), content)
	if err != nil {
		return a.report(err)
	}
	a.println(fmt.Sprintf("Uploaded %s (id %d)", res.Filename, res.ID))
	if len(res.DetectedSkills) > 0 {
		a.println("Detected skills:", joinOrDash(res.DetectedSkills))
	}
	return nil
}
