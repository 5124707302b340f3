package domain

import (
	"fmt"
	"strings"

	appErrors "incidentdesk/internal/errors"
)

func invalidValueError(kind, raw string, allowed []string) error {
	if strings.TrimSpace(raw) == "" {
		raw = "blank"
	}
	return appErrors.New(
		appErrors.CodeInvalidRequest,
		fmt.Sprintf("invalid %s: %s (want one of %s)", kind, raw, strings.Join(allowed, ", ")),
		nil,
	)
}
