package pipeline

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"teaching-export/internal/domain"
	"teaching-export/internal/export"
	"teaching-export/internal/sftpclient"
)

const sampleInput = `[
  {"enrolled_as": "TA", "role_canonical": "TA", "course_code": "CDA3201", "course_name": "Computer Logic Design", "course_level": "Undergraduate", "term": "Fall 18"},
  {"enrolled as": "TA", "role_canonical": "TA", "course_code": "CDA3201", "course_name": "Computer Logic Design cannot be added to the courses menu", "course_level": "Undergraduate", "term": "Spring 2019"},
  {"enrolled_as": "TA", "role_canonical": "TA", "course_code": "CDA3201", "course_name": "Computer Logic Design", "course_level": "Undergraduate", "term": "Fall 18"},
  {"enrolled_as": "TA", "role_canonical": "TA", "course_code": "CIS4930", "course_name": "Wireless Networks", "course_level": "Undergraduate", "term": "Spring 20"},
  {"enrolled_as": "TA", "role_canonical": "TA", "course_code": "Click", "course_name": "Click to remove", "course_title": "EEL6764 Principles of Computer Architecture cannot be added to the courses menu"},
  {"enrolled_as": "Student", "role_canonical": "Student", "course_code": "COP2510", "course_name": "Programming Concepts", "term": "Fall 17"},
  {"enrolled_as": "TA", "role_canonical": "TA", "course_code": "Click", "course_name": "Click to remove", "course_title": "Unknown"}
]`

func writeInput(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "ta_courses_confirmed.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath:    writeInput(t, dir, sampleInput),
		OutputPath:   filepath.Join(dir, "data", "teaching.yaml"),
		Organization: export.DefaultOrganization,
		Changes:      true,
	}
	var stdout bytes.Buffer

	res, err := Run(context.Background(), opts, zaptest.NewLogger(t), &stdout)
	require.NoError(t, err)

	require.Len(t, res.Doc.Teaching, 4)
	assert.Equal(t, "Computer Logic and Design (CDA3201)", res.Doc.Teaching[0].Course)
	assert.Equal(t, "Fall 2018, Spring 2019", res.Doc.Teaching[0].Duration)
	assert.Equal(t, "Wireless and Mobile Computing (CIS4930)", res.Doc.Teaching[1].Course)

	arch := res.Doc.Teaching[2]
	assert.Equal(t, "Principles of Computer Architecture (EEL6764)", arch.Course)
	assert.Equal(t, "Graduate", arch.Level)
	assert.Contains(t, arch.Duration, "Spring 2025")

	assert.Equal(t, domain.RoleResearchMentor, res.Doc.Teaching[3].Role)
	assert.Equal(t, 5, res.Stats.Kept)
	assert.Len(t, res.Added, 4)

	onDisk, err := export.ReadTeachingYAML(opts.OutputPath)
	require.NoError(t, err)
	assert.Equal(t, res.Doc, onDisk)

	console := stdout.String()
	assert.Contains(t, console, "Found 3 unique courses")
	assert.Contains(t, console, "  • Principles of Computer Architecture (EEL6764) - Spring 2025\n")
	assert.NotContains(t, console, "Research Mentor")
}

func TestRunIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath:  writeInput(t, dir, sampleInput),
		OutputPath: filepath.Join(dir, "teaching.yaml"),
		Changes:    true,
	}

	_, err := Run(context.Background(), opts, nil, nil)
	require.NoError(t, err)
	first, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	res, err := Run(context.Background(), opts, nil, nil)
	require.NoError(t, err)
	second, err := os.ReadFile(opts.OutputPath)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
	assert.Empty(t, res.Added)
	assert.Empty(t, res.Changed)
	assert.Empty(t, res.Removed)
	assert.True(t, res.Unchanged)
}

func TestRunWithoutChangesSkipsPreviousOutput(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath:  writeInput(t, dir, sampleInput),
		OutputPath: filepath.Join(dir, "teaching.yaml"),
	}
	// unparseable as YAML; only a read would notice
	require.NoError(t, os.WriteFile(opts.OutputPath, []byte("teaching: [unclosed"), 0o644))

	res, err := Run(context.Background(), opts, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	assert.Nil(t, res.Added)
	assert.False(t, res.Unchanged)
}

func TestRunEmptyInput(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath:  writeInput(t, dir, `[]`),
		OutputPath: filepath.Join(dir, "teaching.yaml"),
	}

	res, err := Run(context.Background(), opts, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	require.Len(t, res.Doc.Teaching, 1)
	assert.Equal(t, domain.RoleResearchMentor, res.Doc.Teaching[0].Role)
}

func TestRunFailureLeavesOutputUntouched(t *testing.T) {
	testCases := []struct {
		name  string
		input *string
	}{
		{"missing input", nil},
		{"malformed json", strPtr(`[{"course_code": `)},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			in := filepath.Join(dir, "missing.json")
			if tc.input != nil {
				in = writeInput(t, dir, *tc.input)
			}
			outPath := filepath.Join(dir, "teaching.yaml")
			require.NoError(t, os.WriteFile(outPath, []byte("previous"), 0o644))

			_, err := Run(context.Background(), Options{InputPath: in, OutputPath: outPath}, zaptest.NewLogger(t), nil)
			require.Error(t, err)

			b, err := os.ReadFile(outPath)
			require.NoError(t, err)
			assert.Equal(t, "previous", string(b))
		})
	}
}

func TestRunBrotliAndPublish(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath:  writeInput(t, dir, sampleInput),
		OutputPath: filepath.Join(dir, "teaching.yaml"),
		Brotli:     true,
		Publish:    &sftpclient.Config{Host: "site.test", Port: 22, RemoteDir: "/data"},
	}

	var uploaded []string
	orig := uploader
	uploader = func(_ context.Context, cfg sftpclient.Config, local, remote string) error {
		assert.Equal(t, "/data", cfg.RemoteDir)
		_, err := os.Stat(local)
		require.NoError(t, err)
		uploaded = append(uploaded, remote)
		return nil
	}
	t.Cleanup(func() { uploader = orig })

	res, err := Run(context.Background(), opts, zaptest.NewLogger(t), nil)
	require.NoError(t, err)

	assert.Equal(t, opts.OutputPath+".br", res.Compressed)
	assert.Equal(t, []string{"teaching.yaml", "teaching.yaml.br"}, uploaded)
	assert.Equal(t, uploaded, res.Uploaded)
}

func TestRunSkipsPublishWhenUnchanged(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath:  writeInput(t, dir, sampleInput),
		OutputPath: filepath.Join(dir, "teaching.yaml"),
		Publish:    &sftpclient.Config{Host: "site.test", Port: 22},
	}

	calls := 0
	orig := uploader
	uploader = func(context.Context, sftpclient.Config, string, string) error {
		calls++
		return nil
	}
	t.Cleanup(func() { uploader = orig })

	_, err := Run(context.Background(), opts, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	assert.Equal(t, 1, calls)

	res, err := Run(context.Background(), opts, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	assert.True(t, res.Unchanged)
	assert.Empty(t, res.Uploaded)
	assert.Equal(t, 1, calls)

	opts.Force = true
	res, err = Run(context.Background(), opts, zaptest.NewLogger(t), nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"teaching.yaml"}, res.Uploaded)
	assert.Equal(t, 2, calls)
}

func TestRunPublishError(t *testing.T) {
	dir := t.TempDir()
	opts := Options{
		InputPath:  writeInput(t, dir, sampleInput),
		OutputPath: filepath.Join(dir, "teaching.yaml"),
		Publish:    &sftpclient.Config{},
	}

	orig := uploader
	uploader = func(context.Context, sftpclient.Config, string, string) error {
		return errors.New("boom")
	}
	t.Cleanup(func() { uploader = orig })

	_, err := Run(context.Background(), opts, nil, nil)
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "pipeline: publish teaching.yaml"))

	// the YAML is still written before publishing
	_, statErr := os.Stat(opts.OutputPath)
	assert.NoError(t, statErr)
}

func strPtr(s string) *string { return &s }
