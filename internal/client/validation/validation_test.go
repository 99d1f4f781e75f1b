package validation

import (
	"testing"

	"github.com/dmitrijs2005/jobmatch/internal/client/models"
	"github.com/dmitrijs2005/jobmatch/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func TestStruct_Login(t *testing.T) {
	require.NoError(t, Struct(models.LoginRequest{Email: "a@b.co", Password: "x"}))

	err := Struct(models.LoginRequest{Email: "nope"})
	require.ErrorIs(t, err, common.ErrorValidation)

	var errs Errors
	require.ErrorAs(t, err, &errs)
	fe, ok := errs.Field("email")
	require.True(t, ok)
	assert.Equal(t, "email", fe.Rule)
	fe, ok = errs.Field("password")
	require.True(t, ok)
	assert.Equal(t, "password: is required", fe.Error())
}

func TestStruct_RegisterPasswordLength(t *testing.T) {
	err := Struct(models.RegisterRequest{Email: "a@b.co", Password: "short", Name: "Ann"})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	require.Len(t, errs, 1)
	assert.Equal(t, "password: must be at least 8 characters", errs[0].Error())

	require.NoError(t, Struct(models.RegisterRequest{Email: "a@b.co", Password: "longenough", Name: "Ann"}))
}

func TestStruct_ProfileUpdate(t *testing.T) {
	require.NoError(t, Struct(models.ProfileUpdate{}))
	require.NoError(t, Struct(models.ProfileUpdate{ExperienceLevel: ptr("senior"), Skills: []string{"go"}}))

	err := Struct(models.ProfileUpdate{ExperienceLevel: ptr("wizard"), Skills: []string{""}})
	var errs Errors
	require.ErrorAs(t, err, &errs)

	_, ok := errs.Field("experience_level")
	assert.True(t, ok)
	_, ok = errs.Field("skills[0]")
	assert.True(t, ok)
}

func TestStruct_JobSearch(t *testing.T) {
	require.NoError(t, Struct(models.JobSearch{Keywords: "go", PerPage: 20}))

	err := Struct(models.JobSearch{PerPage: 101, SalaryMin: 100, SalaryMax: 50, PostedAfter: "yesterday"})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	for _, f := range []string{"per_page", "salary_max", "posted_after"} {
		_, ok := errs.Field(f)
		assert.True(t, ok, f)
	}
}

func TestStruct_MatchAnalysisSources(t *testing.T) {
	require.NoError(t, Struct(models.MatchAnalysis{JobID: 1, ResumeID: 2}))
	require.NoError(t, Struct(models.MatchAnalysis{JobData: map[string]any{"title": "x"}, ResumeID: 2}))

	err := Struct(models.MatchAnalysis{ResumeID: 2})
	var errs Errors
	require.ErrorAs(t, err, &errs)
	fe, ok := errs.Field("job_id")
	require.True(t, ok)
	assert.Equal(t, "required_without", fe.Rule)

	err = Struct(models.MatchAnalysis{JobID: 1, JobData: map[string]any{"a": 1}, ResumeID: 2})
	require.ErrorAs(t, err, &errs)
	fe, ok = errs.Field("job_id")
	require.True(t, ok)
	assert.Equal(t, "excluded_with", fe.Rule)
}

func TestStruct_NotAStruct(t *testing.T) {
	err := Struct(42)
	require.Error(t, err)
	assert.NotErrorIs(t, err, common.ErrorValidation)
}
