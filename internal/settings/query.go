package settings

import (
	"fmt"

	"github.com/itchyny/gojq"
)

const maskedPassword = "********"

// Masked returns the settings as a generic map with the password hidden.
func (s *Settings) Masked() map[string]any {
	password := ""
	if s.Password != "" {
		password = maskedPassword
	}
	return map[string]any{
		"serverApi": s.ServerAPI,
		"customer":  s.Customer,
		"workflow":  s.Workflow,
		"username":  s.Username,
		"password":  password,
	}
}

// Query evaluates a jq expression against the masked settings.
func (s *Settings) Query(expr string) ([]any, error) {
	query, err := gojq.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid query %q: %w", expr, err)
	}
	iter := query.Run(s.Masked())
	var values []any
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}
