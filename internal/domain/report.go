package domain

import "time"

type ReportStatus string

const ReportPending ReportStatus = "pending"

// Report is a user-against-user complaint. Filing one also raises a
// notification in the administrator inbox.
type Report struct {
	ID         string       `json:"id"`
	ReporterID string       `json:"reporter_id"`
	ReportedID string       `json:"reported_id"`
	Reason     string       `json:"reason"`
	Status     ReportStatus `json:"status"`
	CreatedAt  time.Time    `json:"created"`
}

type CreateReportRequest struct {
	ReportedID string `json:"reported_id" validate:"required"`
	Reason     string `json:"reason" validate:"required"`
}
