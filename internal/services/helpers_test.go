package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/wellnest/wellnest/internal/validate"
)

func addDays(t *testing.T, date string, n int) string {
	t.Helper()
	d, err := time.Parse(validate.DateLayout, date)
	require.NoError(t, err)
	return d.AddDate(0, 0, n).Format(validate.DateLayout)
}

func intptr(v int) *int       { return &v }
func strptr(s string) *string { return &s }
func boolptr(b bool) *bool    { return &b }
