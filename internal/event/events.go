package event

import "github.com/swipehome/api/internal/domain"

// MatchCreated is published after a match record has been written.
type MatchCreated struct {
	Match domain.Match
}

func (MatchCreated) Name() string { return "match.created" }

// MessageSent is published after a message has been appended to a thread.
type MessageSent struct {
	Match   domain.Match
	Message domain.Message
}

func (MessageSent) Name() string { return "message.sent" }

// ReportFiled is published after a report record has been written.
// AdminID is the administrator inbox the report should be surfaced to.
type ReportFiled struct {
	Report  domain.Report
	AdminID string
}

func (ReportFiled) Name() string { return "report.filed" }
