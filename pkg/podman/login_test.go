package podman

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoginCommand(t *testing.T) {
	tests := []struct {
		name         string
		server       string
		username     string
		expectedArgs []string
	}{
		{
			name:     "Standard registry",
			server:   "reg.example.com",
			username: "builder",
			expectedArgs: []string{
				"/usr/bin/podman",
				"login",
				"reg.example.com",
				"--username",
				"builder",
				"--password-stdin",
			},
		},
		{
			name:     "Registry with port",
			server:   "localhost:5000",
			username: "admin",
			expectedArgs: []string{
				"/usr/bin/podman",
				"login",
				"localhost:5000",
				"--username",
				"admin",
				"--password-stdin",
			},
		},
	}

	var buf bytes.Buffer
	password := strings.NewReader("hunter2")

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			cmd := loginCommand(test.server, test.username, password, &buf)

			assert.Equal(t, test.expectedArgs, cmd.Args)
			assert.Equal(t, password, cmd.Stdin)
			assert.Equal(t, &buf, cmd.Stdout)
			assert.Equal(t, &buf, cmd.Stderr)
		})
	}
}
