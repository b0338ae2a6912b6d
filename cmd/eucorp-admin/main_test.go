package main

import (
	"strings"
	"testing"
	"time"

	domainauth "github.com/eucorp/planning/internal/domain/auth"
	"github.com/stretchr/testify/require"
)

func TestValidateSessionClearOptions(t *testing.T) {
	tests := []struct {
		name    string
		opts    sessionClearOptions
		wantErr string
	}{
		{
			name:    "no selector",
			opts:    sessionClearOptions{},
			wantErr: "provide --email, --id, or --all",
		},
		{
			name:    "email and all",
			opts:    sessionClearOptions{Email: "a@b.c", All: true},
			wantErr: "mutually exclusive",
		},
		{
			name: "email only",
			opts: sessionClearOptions{Email: "a@b.c"},
		},
		{
			name: "id only",
			opts: sessionClearOptions{ID: "sess-1"},
		},
		{
			name: "all only",
			opts: sessionClearOptions{All: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateSessionClearOptions(&tt.opts)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestParseSessionClearFlagsRejectsConflictingSelectors(t *testing.T) {
	_, err := parseSessionClearFlags([]string{"--email", "a@b.c", "--id", "sess-1"})
	require.Error(t, err)
}

func TestParseSessionListFlagsRejectsNegativeLimit(t *testing.T) {
	_, err := parseSessionListFlags([]string{"--limit", "-1"})
	require.Error(t, err)
}

func TestIsLikelyRemoteHost(t *testing.T) {
	require.False(t, isLikelyRemoteHost("localhost"))
	require.False(t, isLikelyRemoteHost("127.0.0.1"))
	require.False(t, isLikelyRemoteHost("::1"))
	require.False(t, isLikelyRemoteHost("dev.local"))
	require.False(t, isLikelyRemoteHost(""))
	require.True(t, isLikelyRemoteHost("db.prod.example.com"))
	require.True(t, isLikelyRemoteHost("10.0.0.12"))
}

func TestQuoteIdentifierEscapesQuotes(t *testing.T) {
	require.Equal(t, `"eucorp"`, quoteIdentifier("eucorp"))
	require.Equal(t, `"we""ird"`, quoteIdentifier(`we"ird`))
}

func TestPrintSessionTable(t *testing.T) {
	entries := []sessionEntry{
		{
			Key: "session:abc",
			Session: domainauth.Session{
				ID:        "abc",
				Email:     "maria.santos@eucorp.example",
				Role:      domainauth.RoleAdmin,
				ExpiresAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
			},
			TTL: 90 * time.Minute,
		},
	}

	var sb strings.Builder
	require.NoError(t, printSessionTable(&sb, entries, 3))

	out := sb.String()
	require.Contains(t, out, "maria.santos@eucorp.example")
	require.Contains(t, out, "1h30m0s")
	require.Contains(t, out, "Showing 1 of 3 sessions")
}

func TestPrintSessionTableEmpty(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, printSessionTable(&sb, nil, 0))
	require.Contains(t, sb.String(), "No sessions found")
}

func TestRenderTTL(t *testing.T) {
	require.Equal(t, "none", renderTTL(-1))
	require.Equal(t, "expired", renderTTL(0))
	require.Equal(t, "45s", renderTTL(45*time.Second))
}
