package model

import (
	"strings"
)

type CrimeType int

const (
	Dacoity CrimeType = iota
	Robbery
	Murder
	SpeedyTrial
	Riot
	WomenChildRepression
	Kidnapping
	PoliceAssault
	Burglary
	Theft
	OtherCases
)

const CrimeTypeCount = int(OtherCases) + 1

var crimeTypeNames = [CrimeTypeCount]string{
	"Dacoity",
	"Robbery",
	"Murder",
	"Speedy Trial",
	"Riot",
	"Women & Child Repression",
	"Kidnapping",
	"Police Assault",
	"Burglary",
	"Theft",
	"Other Cases",
}

// AllCrimeTypes lists the crime types in column order.
var AllCrimeTypes = func() []CrimeType {
	result := make([]CrimeType, CrimeTypeCount)
	for i := range result {
		result[i] = CrimeType(i)
	}
	return result
}()

func (t CrimeType) String() string {
	if !t.Valid() {
		return ""
	}
	return crimeTypeNames[t]
}

func (t CrimeType) Valid() bool {
	return t >= 0 && int(t) < CrimeTypeCount
}

func CrimeTypeNames() []string {
	return append([]string(nil), crimeTypeNames[:]...)
}

// ParseCrimeType matches one of the fixed column names. Surrounding whitespace is
// ignored, case is not.
func ParseCrimeType(label string) (CrimeType, error) {
	label = strings.TrimSpace(label)

	for i, name := range crimeTypeNames {
		if name == label {
			return CrimeType(i), nil
		}
	}

	return -1, &UnknownCrimeTypeError{Label: label}
}
