package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatActionStatus(t *testing.T) {
	tests := []struct {
		testName string
		action   string
		status   string
		expected string
	}{
		{
			testName: "Success message",
			action:   "build image",
			status:   messageSuccess,
			expected: "Build Image .................. [SUCCESS]",
		},
		{
			testName: "Failed message",
			action:   "push chart",
			status:   messageFailed,
			expected: "Push Chart ................... [FAILED ]",
		},
		{
			testName: "Longer action name",
			action:   "package chart",
			status:   messageSuccess,
			expected: "Package Chart ................ [SUCCESS]",
		},
	}

	for _, test := range tests {
		t.Run(test.testName, func(t *testing.T) {
			found := formatActionStatus(test.action, test.status)
			assert.Equal(t, test.expected, found)
		})
	}
}
