package protein

import "regexp"

// UniProt accession formats. The standard form covers the original
// Swiss-Prot style IDs; the extended form covers newer six-character
// accessions such as Q8JZQ5.
var (
	accessionStandard = regexp.MustCompile(`^[PQ]\d{5}$`)
	accessionExtended = regexp.MustCompile(`^[OPQ]\d[A-Z0-9]{3}\d$`)
)

// AccessionFormat describes how an accession string matched validation.
type AccessionFormat int

const (
	AccessionInvalid AccessionFormat = iota
	AccessionStandard
	AccessionExtended
)

// ValidateAccession checks an accession string against the known UniProt
// formats. Empty strings are invalid.
func ValidateAccession(acc string) AccessionFormat {
	switch {
	case accessionStandard.MatchString(acc):
		return AccessionStandard
	case accessionExtended.MatchString(acc):
		return AccessionExtended
	default:
		return AccessionInvalid
	}
}

// ValidAccession reports whether the accession matches any accepted format.
func ValidAccession(acc string) bool {
	return ValidateAccession(acc) != AccessionInvalid
}
