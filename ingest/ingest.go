package ingest

import (
	"strconv"
	"strings"
)

//FormatErr means the uploaded file is not in the expected CSV shape
type FormatErr struct {
	message string
}

func (e *FormatErr) Error() string {
	return e.message
}

func NewFormatError(msg string) *FormatErr {
	return &FormatErr{message: msg}
}

//ValidationErr means a parsed contact violates the phone rules.
//The whole batch is rejected, nothing is ingested partially.
type ValidationErr struct {
	message string
}

func (e *ValidationErr) Error() string {
	return e.message
}

func NewValidationError(msg string) *ValidationErr {
	return &ValidationErr{message: msg}
}

//Candidate is a contact row parsed out of an uploaded CSV
type Candidate struct {
	Phone  string
	Name   string
	Amount *float64
}

//Parse splits raw CSV text into contact candidates. The first line is the
//header row; recognized columns are phone, name and amount, anything else is
//ignored. Only flat CSV is supported: no quoting, a comma always separates
//fields. Rows without a phone value are silently dropped.
func Parse(raw string) ([]Candidate, error) {
	lines := strings.Split(raw, "\n")

	headers := strings.Split(lines[0], ",")
	phoneIdx, nameIdx, amountIdx := -1, -1, -1
	for i, header := range headers {
		switch strings.ToLower(strings.TrimSpace(header)) {
		case "phone":
			phoneIdx = i
		case "name":
			nameIdx = i
		case "amount":
			amountIdx = i
		}
	}

	if phoneIdx == -1 {
		return nil, NewFormatError(`CSV must contain a "phone" column`)
	}

	var candidates []Candidate
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}

		values := strings.Split(line, ",")
		for i := range values {
			values[i] = strings.TrimSpace(values[i])
		}

		var candidate Candidate
		if phoneIdx < len(values) {
			candidate.Phone = values[phoneIdx]
		}
		if nameIdx >= 0 && nameIdx < len(values) {
			candidate.Name = values[nameIdx]
		}
		if amountIdx >= 0 && amountIdx < len(values) {
			if amount, err := strconv.ParseFloat(values[amountIdx], 64); err == nil {
				candidate.Amount = &amount
			}
		}

		if candidate.Phone == "" {
			continue
		}
		candidates = append(candidates, candidate)
	}

	return candidates, nil
}

//ValidatePhones checks every candidate's phone, rejecting the whole batch
//on the first invalid one
func ValidatePhones(candidates []Candidate) error {
	for _, candidate := range candidates {
		if !ValidPhone(candidate.Phone) {
			return NewValidationError("Invalid phone number " + candidate.Phone + ". Please include country code (e.g., +234...)")
		}
	}
	return nil
}

//ValidPhone reports whether phone starts with + and is long enough to carry
//a country code
func ValidPhone(phone string) bool {
	return strings.HasPrefix(phone, "+") && len(phone) >= 10
}
