package api

import (
	"botdash/internal/jsonutil"
)

// Direction tells whether a logged message came from a user or from the bot.
type Direction string

const (
	DirectionIncoming Direction = "incoming"
	DirectionOutgoing Direction = "outgoing"
)

// MessageRecord is one logged bot message.
type MessageRecord struct {
	ChatID    jsonutil.ID   `json:"chat_id" yaml:"chat_id"`
	Direction Direction     `json:"direction" yaml:"direction"`
	Text      string        `json:"text" yaml:"text"`
	Timestamp jsonutil.Time `json:"timestamp" yaml:"timestamp"`
}

// SearchRecord is one logged lookup query.
type SearchRecord struct {
	ChatID       jsonutil.ID   `json:"chat_id" yaml:"chat_id"`
	Query        string        `json:"query" yaml:"query"`
	ResultsCount int           `json:"results_count" yaml:"results_count"`
	AttemptsUsed int           `json:"attempts_used,omitempty" yaml:"attempts_used,omitempty"`
	Timestamp    jsonutil.Time `json:"timestamp" yaml:"timestamp"`
}

// HasDeduction reports whether the search consumed paid attempts.
func (s SearchRecord) HasDeduction() bool { return s.AttemptsUsed != 0 }

// TopUser is one row of the most-active ranking; rank is the slice position.
type TopUser struct {
	ID    jsonutil.ID `json:"_id" yaml:"id"`
	Count int         `json:"count" yaml:"count"`
}

// StatsSnapshot is the response of GET /api/stats.
type StatsSnapshot struct {
	TotalMessages  int             `json:"total_messages" yaml:"total_messages"`
	TotalSearches  int             `json:"total_searches" yaml:"total_searches"`
	TotalUsers     int             `json:"total_users" yaml:"total_users"`
	TotalReferrals int             `json:"total_referrals" yaml:"total_referrals"`
	RecentMessages []MessageRecord `json:"recent_messages" yaml:"recent_messages"`
	RecentSearches []SearchRecord  `json:"recent_searches" yaml:"recent_searches"`
	TopUsers       []TopUser       `json:"top_users" yaml:"top_users"`
}

// UserRecord is one registered bot user.
type UserRecord struct {
	UserID         jsonutil.ID   `json:"user_id" yaml:"user_id"`
	Username       string        `json:"username,omitempty" yaml:"username,omitempty"`
	FirstName      string        `json:"first_name,omitempty" yaml:"first_name,omitempty"`
	FreeAttempts   int           `json:"free_attempts" yaml:"free_attempts"`
	TotalSearches  int           `json:"total_searches" yaml:"total_searches"`
	TotalReferrals int           `json:"total_referrals" yaml:"total_referrals"`
	ReferralCode   string        `json:"referral_code" yaml:"referral_code"`
	CreatedAt      jsonutil.Time `json:"created_at" yaml:"created_at"`
}

// UsersResponse is the response of GET /api/users.
type UsersResponse struct {
	Users []UserRecord `json:"users" yaml:"users"`
}

// ReferralRecord is one completed invitation.
type ReferralRecord struct {
	ReferrerID   jsonutil.ID   `json:"referrer_id" yaml:"referrer_id"`
	ReferredID   jsonutil.ID   `json:"referred_id" yaml:"referred_id"`
	ReferralCode string        `json:"referral_code" yaml:"referral_code"`
	Timestamp    jsonutil.Time `json:"timestamp" yaml:"timestamp"`
}

// ReferralsResponse is the response of GET /api/referrals.
type ReferralsResponse struct {
	Referrals []ReferralRecord `json:"referrals" yaml:"referrals"`
}

// StatusSuccess is the status value the backend reports for a completed action.
const StatusSuccess = "success"

// WebhookResult is the response of POST /api/set-webhook.
type WebhookResult struct {
	Status     string `json:"status"`
	WebhookURL string `json:"webhook_url,omitempty"`
	Message    string `json:"message,omitempty"`
}

// OK reports whether the backend registered the webhook.
func (r WebhookResult) OK() bool { return r.Status == StatusSuccess }

// UsersboxApp is the lookup service account info relayed by the backend.
type UsersboxApp struct {
	Balance interface{} `json:"balance,omitempty"`
}

// UsersboxEnvelope is the lookup service's own response, relayed verbatim.
type UsersboxEnvelope struct {
	Status string       `json:"status,omitempty"`
	Data   *UsersboxApp `json:"data,omitempty"`
}

// UsersboxResult is the response of POST /api/test-usersbox.
type UsersboxResult struct {
	Status  string            `json:"status"`
	Data    *UsersboxEnvelope `json:"data,omitempty"`
	Message string            `json:"message,omitempty"`
}

// OK reports whether the lookup service was reachable.
func (r UsersboxResult) OK() bool { return r.Status == StatusSuccess }

// Balance returns the account balance when the lookup service reported one.
func (r UsersboxResult) Balance() (string, bool) {
	if r.Data == nil || r.Data.Data == nil || r.Data.Data.Balance == nil {
		return "", false
	}
	return jsonutil.ToString(r.Data.Data.Balance), true
}
