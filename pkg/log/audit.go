package log

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	lineLength = 40

	messageSuccess = "SUCCESS"
	messageFailed  = "FAILED " // leave the trailing space for consistent lengths
)

// Audit displays a message to the user. This shouldn't be used for debug logging purposes; all
// messages passed in here should be user-readable.
func Audit(message string) {
	fmt.Println(message)
}

func Auditf(format string, args ...any) {
	Audit(fmt.Sprintf(format, args...))
}

func AuditActionSuccessful(action string) {
	Audit(formatActionStatus(action, messageSuccess))
}

func AuditActionFailed(action string) {
	Audit(formatActionStatus(action, messageFailed))
}

func formatActionStatus(action, status string) string {
	// Example output:
	// Build Image ... [STATUS]

	name := cases.Title(language.English).String(action)
	numDots := lineLength - (len(name) + 2 + 9) // 2=spaces before/after dots, 9=status msg + []
	dots := strings.Repeat(".", numDots)

	return fmt.Sprintf("%s %s [%s]", name, dots, status)
}
