package entity

import "time"

// Consultation represents a clinic visit record with its detail lines.
type Consultation struct {
	ID          int64     `json:"id"`
	PatientName string    `json:"patientName"`
	Date        time.Time `json:"date"`
	Reason      string    `json:"reason"`

	Details []ConsultationDetail `json:"details"`
}

// ConsultationDetail is one observation or procedure noted during a visit.
type ConsultationDetail struct {
	ID             int64  `json:"id"`
	ConsultationID int64  `json:"consultationId"`
	Tooth          string `json:"tooth,omitempty"`
	Description    string `json:"description"`
}
