package commands_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/Krithik-Kesh/Poetry-Checker/internal/cli"
	"github.com/Krithik-Kesh/Poetry-Checker/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCommand executes the root command with testdata-backed dictionary and
// forms, returning stdout and the execution error.
func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config.Reset()

	full := append([]string{
		"--dictionary", "testdata/dictionary_small.txt",
		"--forms", "testdata/forms_small.txt",
		"--output", "text",
	}, args...)

	cmd := cli.NewRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(full)

	err := cmd.Execute()
	return out.String() + errOut.String(), err
}

func TestCheckCompliantHaiku(t *testing.T) {
	out, err := runCommand(t, "check", "testdata/haiku_good.txt", "--form", "Haiku")
	require.NoError(t, err)
	assert.Contains(t, out, "complies with form")
}

func TestCheckSyllableViolations(t *testing.T) {
	out, err := runCommand(t, "check", "testdata/haiku_bad.txt", "--form", "Haiku")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "form violations found")
	assert.Contains(t, out, "SY01")
}

func TestCheckRhymeViolations(t *testing.T) {
	out, err := runCommand(t, "check", "testdata/couplet_bad.txt", "--form", "Couplet")
	require.Error(t, err)
	assert.Contains(t, out, "RH01")
}

func TestCheckCompliantCouplet(t *testing.T) {
	_, err := runCommand(t, "check", "testdata/couplet_good.txt", "--form", "Couplet")
	assert.NoError(t, err)
}

func TestCheckMultiplePoems(t *testing.T) {
	out, err := runCommand(t, "check",
		"testdata/haiku_good.txt", "testdata/haiku_bad.txt", "--form", "Haiku")
	require.Error(t, err)
	assert.Contains(t, out, "haiku_good.txt")
	assert.Contains(t, out, "haiku_bad.txt")
}

func TestCheckUnknownForm(t *testing.T) {
	_, err := runCommand(t, "check", "testdata/haiku_good.txt", "--form", "Sonnet")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown form "Sonnet"`)
}

func TestCheckMissingPoemFile(t *testing.T) {
	_, err := runCommand(t, "check", "testdata/nope.txt", "--form", "Haiku")
	assert.Error(t, err)
}

func TestCheckJSONOutput(t *testing.T) {
	out, err := runCommand(t, "check", "testdata/haiku_bad.txt", "--form", "Haiku", "--format", "json")
	require.Error(t, err)

	var results []struct {
		Path   string `json:"path"`
		Report struct {
			Form        string `json:"form"`
			Diagnostics []struct {
				RuleID string `json:"rule_id"`
				Lines  []int  `json:"lines"`
			} `json:"diagnostics"`
		} `json:"report"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 1)
	assert.Equal(t, "Haiku", results[0].Report.Form)
	assert.NotEmpty(t, results[0].Report.Diagnostics)
}

func TestFormsList(t *testing.T) {
	out, err := runCommand(t, "forms")
	require.NoError(t, err)
	assert.Contains(t, out, "Haiku")
	assert.Contains(t, out, "Couplet")
	assert.Contains(t, out, "5-7-5")
}

func TestFormsShow(t *testing.T) {
	out, err := runCommand(t, "forms", "Couplet")
	require.NoError(t, err)
	assert.Contains(t, out, "Couplet")
	assert.Contains(t, out, "any")

	_, err = runCommand(t, "forms", "Sonnet")
	assert.Error(t, err)
}

func TestFormsJSON(t *testing.T) {
	out, err := runCommand(t, "forms", "--format", "json")
	require.NoError(t, err)

	var infos []struct {
		Name      string   `json:"name"`
		Lines     int      `json:"lines"`
		Syllables []int    `json:"syllables"`
		Rhymes    []string `json:"rhymes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 2)
	assert.Equal(t, "Haiku", infos[0].Name)
	assert.Equal(t, []int{5, 7, 5}, infos[0].Syllables)
}

func TestVersion(t *testing.T) {
	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Poetry-Checker v")
}
