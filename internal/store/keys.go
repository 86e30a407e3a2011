package store

import (
	"net/url"
	"strings"
)

// Key layout. User and question IDs are path-escaped so a free-text
// user ID can never reach into another user's namespace.
const (
	attemptPrefix     = "attempt/"
	ledgerPrefix      = "ledger/"
	streakPrefix      = "streak/"
	certificatePrefix = "certificates/"
	completionPrefix  = "completions/"
)

func esc(s string) string { return url.PathEscape(s) }

// AttemptKey is the key of one (user, question) attempt record.
func AttemptKey(userID, questionID string) string {
	return attemptPrefix + esc(userID) + "/" + esc(questionID)
}

func attemptUserPrefix(userID string) string {
	return attemptPrefix + esc(userID) + "/"
}

// questionFromAttemptKey recovers the question ID from an attempt key.
func questionFromAttemptKey(userID, key string) (string, bool) {
	rest, ok := strings.CutPrefix(key, attemptUserPrefix(userID))
	if !ok {
		return "", false
	}
	qid, err := url.PathUnescape(rest)
	if err != nil {
		return "", false
	}
	return qid, true
}

// LedgerKey is the key of a user's badge ledger.
func LedgerKey(userID string) string { return ledgerPrefix + esc(userID) }

// StreakKey is the key of a user's streak state.
func StreakKey(userID string) string { return streakPrefix + esc(userID) }

// CertificatesKey is the key of a user's certificate list.
func CertificatesKey(userID string) string { return certificatePrefix + esc(userID) }

// CompletionsKey is the key of a user's completed categories.
func CompletionsKey(userID string) string { return completionPrefix + esc(userID) }
