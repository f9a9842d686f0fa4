package application

import (
	"fmt"
	"strings"
)

const defaultMaxProofBytes = 5 * 1024 * 1024

// ProofLimits bounds what a proof upload may be
type ProofLimits struct {
	MaxBytes     int64
	AllowedTypes []string
}

// DefaultProofLimits accepts PDF, JPEG and PNG files up to 5 MB
func DefaultProofLimits() ProofLimits {
	return ProofLimits{
		MaxBytes:     defaultMaxProofBytes,
		AllowedTypes: []string{"application/pdf", "image/jpeg", "image/png"},
	}
}

// CheckProof validates a selected proof file and returns the message to
// show, or "" when the file is acceptable.
func CheckProof(id FieldID, file *FileRef, limits ProofLimits) string {
	if file == nil || file.Name == "" {
		return missingProofMessage(id)
	}
	if !limits.allows(file.ContentType) {
		return "Invalid file type. Please upload a PDF, JPG, or PNG."
	}
	if limits.MaxBytes > 0 && file.Size > limits.MaxBytes {
		return fmt.Sprintf("File is too large. Maximum size is %s.", formatSize(limits.MaxBytes))
	}
	return ""
}

func (l ProofLimits) allows(contentType string) bool {
	mediaType, _, _ := strings.Cut(contentType, ";")
	mediaType = strings.ToLower(strings.TrimSpace(mediaType))
	for _, t := range l.AllowedTypes {
		if t == mediaType {
			return true
		}
	}
	return false
}

func missingProofMessage(id FieldID) string {
	if id == FieldBankProof {
		return "Bank proof is required."
	}
	return "ID proof is required."
}

func formatSize(n int64) string {
	const mb = 1024 * 1024
	if n%mb == 0 {
		return fmt.Sprintf("%dMB", n/mb)
	}
	return fmt.Sprintf("%dKB", n/1024)
}
