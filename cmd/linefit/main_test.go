package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/YuminosukeSato/linefit/dataset"
	"github.com/YuminosukeSato/linefit/linear"
)

const lineCSV = `x,y
3,13
2,10
1,7
4.3,16.9
3.4,14.2
8.2,28.6
1.1,7.3
4.5,17.5
6.7,24.1
`

func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	cmd := newRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestTrain(t *testing.T) {
	input := writeFile(t, "line.csv", lineCSV)

	stdout, stderr, err := execute(t, "", "train", "--input", input, "--epochs", "2000", "--learning-rate", "0.001")
	require.NoError(t, err)

	d, err := dataset.LoadCSV(strings.NewReader(lineCSV))
	require.NoError(t, err)
	slope, intercept, err := linear.Regression(d, 2000, 0.001)
	require.NoError(t, err)

	assert.Contains(t, stdout, formatFloat(slope))
	assert.Contains(t, stdout, formatFloat(intercept))
	assert.Contains(t, strings.ToLower(stdout), "mean squared error")
	assert.Contains(t, stderr, "Training finished")
}

func TestTrainZeroEpochs(t *testing.T) {
	stdout, _, err := execute(t, lineCSV, "train", "--input", "-", "--epochs", "0")
	require.NoError(t, err)

	rows := tableRows(stdout)
	assert.Equal(t, "0", rows["slope"])
	assert.Equal(t, "0", rows["intercept"])
}

func TestTrainVerbose(t *testing.T) {
	stdout, _, err := execute(t, "x,y\n1,1\n", "train", "--input", "-", "--epochs", "2", "--learning-rate", "0.25", "--verbose")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Epoch: 0\ny = 0.5x + 0.5\nEpoch: 1\ny = 0.5x + 0.5\n")
}

func TestTrainProgressEvery(t *testing.T) {
	stdout, _, err := execute(t, lineCSV, "train", "-i", "-", "-e", "10", "-v", "--progress-every", "5")
	require.NoError(t, err)
	assert.Equal(t, 2, strings.Count(stdout, "Epoch: "))
	assert.Contains(t, stdout, "Epoch: 5\n")
}

func TestTrainDebugLogsProgress(t *testing.T) {
	_, stderr, err := execute(t, lineCSV, "train", "-i", "-", "-e", "3", "--log-level", "debug")
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(stderr, "Epoch completed"))
}

const identityCSV = "1,1\n2,2\n3,3\n4,4\n5,5\n6,6\n7,7\n8,8\n9,9\n10,10\n"

func TestTrainDivergenceWarning(t *testing.T) {
	stdout, stderr, err := execute(t, lineCSV, "train", "-i", "-", "--epochs", "1000", "--learning-rate", "1")
	require.NoError(t, err)
	assert.Contains(t, stderr, "training diverged")
	assert.NotContains(t, stdout, "r2")
}

func TestTrainDivergedValuesAreLogged(t *testing.T) {
	t.Run("console", func(t *testing.T) {
		_, stderr, err := execute(t, identityCSV, "train", "-i", "-", "-e", "1000", "-r", "1",
			"--log-format", "console", "--log-level", "debug", "--progress-every", "999")
		require.NoError(t, err)
		assert.Contains(t, stderr, "model.slope=NaN")
		assert.Contains(t, stderr, "model.intercept=NaN")
		assert.NotContains(t, stderr, "marshaling error")
	})

	t.Run("json", func(t *testing.T) {
		logPath := filepath.Join(t.TempDir(), "linefit.log")
		_, stderr, err := execute(t, identityCSV, "train", "-i", "-", "-e", "1000", "-r", "1",
			"--log-format", "json", "--log-level", "debug", "--progress-every", "999", "--log-path", logPath)
		require.NoError(t, err)

		finished := findRecord(t, stderr, "Training finished")
		assert.Equal(t, "NaN", finished["model.slope"])
		assert.Equal(t, "NaN", finished["model.intercept"])
		assert.Equal(t, "NaN", findRecord(t, stderr, "Epoch completed", "training.epoch", float64(999))["model.slope"])
		assert.NotContains(t, stderr, "!ERROR")

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		assert.Equal(t, "NaN", findRecord(t, string(data), "Training finished")["model.slope"])
	})
}

func TestTrainJSONLogSource(t *testing.T) {
	_, stderr, err := execute(t, lineCSV, "train", "-i", "-", "-e", "10", "--log-format", "json",
		"--log-path", filepath.Join(t.TempDir(), "linefit.log"))
	require.NoError(t, err)

	source, ok := findRecord(t, stderr, "Training finished")["source"].(map[string]any)
	require.True(t, ok, "record has no source")
	assert.True(t, strings.HasSuffix(source["file"].(string), "cmd/linefit/train.go"), "source = %v", source)
}

func TestTrainPlot(t *testing.T) {
	plot := filepath.Join(t.TempDir(), "fit.png")
	_, _, err := execute(t, lineCSV, "train", "-i", "-", "-e", "100", "-r", "0.01", "--plot", plot)
	require.NoError(t, err)

	info, err := os.Stat(plot)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}

func TestTrainConfigFile(t *testing.T) {
	input := writeFile(t, "line.csv", lineCSV)
	config := writeFile(t, "linefit.yaml", "input: "+input+"\nepochs: 0\nlog:\n  level: warn\n")

	stdout, stderr, err := execute(t, "", "train", "--config", config)
	require.NoError(t, err)
	assert.Equal(t, "0", tableRows(stdout)["slope"])
	assert.NotContains(t, stderr, "Training started", "info records are filtered at warn level")
}

func TestTrainFlagOverridesConfig(t *testing.T) {
	config := writeFile(t, "linefit.toml", "epochs = 0\n")

	stdout, _, err := execute(t, lineCSV, "train", "-c", config, "-i", "-", "--epochs", "50", "-r", "0.01")
	require.NoError(t, err)
	assert.NotEqual(t, "0", tableRows(stdout)["slope"])
}

func TestTrainJSONLogFile(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "linefit.log")

	_, stderr, err := execute(t, lineCSV, "train", "-i", "-", "-e", "10", "--log-format", "json", "--log-path", logPath)
	require.NoError(t, err)
	assert.Contains(t, stderr, `"severity":"INFO"`)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Training finished")
	assert.Contains(t, string(data), `"ml.component":"cli"`)
}

func TestTrainErrors(t *testing.T) {
	tests := []struct {
		name  string
		stdin string
		args  []string
		want  string
	}{
		{"missing input", "", []string{"train"}, "input"},
		{"missing file", "", []string{"train", "-i", filepath.Join(t.TempDir(), "none.csv")}, "open"},
		{"malformed csv", "x,y\n1,abc\n", []string{"train", "-i", "-"}, "line 2"},
		{"negative epochs", lineCSV, []string{"train", "-i", "-", "-e", "-1"}, "Epochs"},
		{"zero learning rate", lineCSV, []string{"train", "-i", "-", "-r", "0"}, "LearningRate"},
		{"bad log level", lineCSV, []string{"train", "-i", "-", "--log-level", "loud"}, "Level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := execute(t, tt.stdin, tt.args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestEval(t *testing.T) {
	stdout, _, err := execute(t, "x,y\n1,1\n2,2\n3,4\n4,4\n5,5\n", "eval", "-i", "-", "--slope", "1", "--intercept", "0")
	require.NoError(t, err)

	rows := tableRows(stdout)
	assert.Equal(t, "1", rows["squared error"])
	assert.Equal(t, "0.2", rows["mean squared error"])
	assert.Equal(t, "0.2", rows["mean absolute error"])
}

func TestEvalUndefinedR2(t *testing.T) {
	stdout, stderr, err := execute(t, "x,y\n1,2\n2,2\n", "eval", "-i", "-", "-m", "1")
	require.NoError(t, err)
	assert.Equal(t, "NaN", tableRows(stdout)["r2"])
	assert.Contains(t, stderr, "r2_score")
}

func TestVersion(t *testing.T) {
	stdout, _, err := execute(t, "", "version")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(stdout, "linefit "+version))
}

// findRecord returns the first JSON log line with the given message whose
// fields include the optional key/value pairs.
func findRecord(t *testing.T, out, message string, kv ...any) map[string]any {
	t.Helper()
	for _, line := range strings.Split(out, "\n") {
		var entry map[string]any
		if json.Unmarshal([]byte(line), &entry) != nil {
			continue
		}
		if entry["message"] != message {
			continue
		}
		match := true
		for i := 0; i+1 < len(kv); i += 2 {
			if entry[kv[i].(string)] != kv[i+1] {
				match = false
			}
		}
		if match {
			return entry
		}
	}
	t.Fatalf("no %q record in:\n%s", message, out)
	return nil
}

// tableRows extracts "name -> value" pairs from a rendered two-column table.
func tableRows(out string) map[string]string {
	rows := make(map[string]string)
	for _, line := range strings.Split(out, "\n") {
		cells := strings.FieldsFunc(line, func(r rune) bool {
			return r == '|' || r == '│'
		})
		if len(cells) != 2 {
			continue
		}
		rows[strings.ToLower(strings.TrimSpace(cells[0]))] = strings.TrimSpace(cells[1])
	}
	return rows
}
