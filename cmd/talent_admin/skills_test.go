package main

import (
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSkillsCommand_FlagsValidation(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		errorString string
	}{
		{
			name:        "create requires a name",
			args:        []string{"skills", "create"},
			errorString: "accepts 1 arg",
		},
		{
			name:        "delete requires an id",
			args:        []string{"skills", "delete"},
			errorString: "accepts 1 arg",
		},
		{
			name:        "categories create requires a name",
			args:        []string{"categories", "create"},
			errorString: "accepts 1 arg",
		},
	}

	binaryPath := getBinaryPath(t)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := exec.Command(binaryPath, tt.args...)
			cmd.Env = []string{"PATH=/usr/bin:/bin"}
			output, err := cmd.CombinedOutput()

			assert.Error(t, err)
			assert.Contains(t, string(output), tt.errorString)
		})
	}
}
