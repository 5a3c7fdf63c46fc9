package models

// IssueType classifies an integrity audit finding.
type IssueType string

const (
	// IssueOrphanResult flags a report, score or enrollment row whose
	// referenced student or enrollment does not exist within the scope.
	IssueOrphanResult IssueType = "orphan-result"
	// IssueDuplicateResult flags more than one row for a key that expects
	// exactly one.
	IssueDuplicateResult IssueType = "duplicate-result"
	// IssueMissingAssignment was emitted by a deprecated audit policy that
	// scanned all active students instead of scope-touching ones. The
	// constant remains so stored findings keep decoding; the current audit
	// never produces it.
	IssueMissingAssignment IssueType = "missing-assignment"
)

// IntegrityIssue is a single human-readable audit finding.
type IntegrityIssue struct {
	Type    IssueType `json:"type"`
	Message string    `json:"message"`
}
