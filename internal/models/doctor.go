package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Credential status values for a doctor's professional documentation.
const (
	CredentialPending  = "pending"
	CredentialVerified = "verified"
	CredentialRejected = "rejected"
)

// ValidCredentialStatus reports whether s is one of the accepted
// credential status literals.
func ValidCredentialStatus(s string) bool {
	return s == CredentialPending || s == CredentialVerified || s == CredentialRejected
}

type Doctor struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID           primitive.ObjectID `bson:"userId,omitempty" json:"userId,omitempty"`
	FullName         string             `bson:"fullName" json:"fullName"`
	Email            string             `bson:"email" json:"email"`
	Phone            string             `bson:"phone" json:"phone"`
	Bio              string             `bson:"bio" json:"bio"`
	SpecialtyID      string             `bson:"specialtyId" json:"specialtyId"`
	CredentialStatus string             `bson:"credentialStatus" json:"credentialStatus"`
	// Approved controls whether the doctor appears in patient-facing
	// search and booking. Independent of CredentialStatus.
	Approved bool `bson:"approved" json:"approved"`
}

// Specialty is read-only reference data from the admin surface's
// perspective.
type Specialty struct {
	ID   string `bson:"_id" json:"id"`
	Name string `bson:"name" json:"name"`
}

// DoctorFilter is the typed form of the doctor list query parameters.
// Zero-value string fields mean "no filter". ApprovalStatus is a
// pointer because absence and false are distinct: nil means the caller
// sent no approvalStatus parameter at all.
type DoctorFilter struct {
	Search           string
	SpecialtyID      string
	CredentialStatus string
	ApprovalStatus   *bool
}
