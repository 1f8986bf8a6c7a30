package agreement

import "github.com/heartmarshall/riseflow-agreements/internal/domain"

// AgreementWithSigners is an agreement together with its current assignments.
type AgreementWithSigners struct {
	Agreement   *domain.Agreement
	Assignments []domain.AssignmentDetail
}

// SignResult is returned by Sign.
type SignResult struct {
	Assignment *domain.Assignment
	// AllSigned is true when this signature completed the agreement.
	AllSigned bool
}

// Export is a rendered file ready to be downloaded.
type Export struct {
	Filename    string
	ContentType string
	Body        []byte
}
