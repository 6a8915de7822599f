package sanitizer

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

var defaultRegions = []string{
	"IN",
	"US",
}

// NormalizePhone formats a guest phone into E.164. The raw input is kept
// when no supported region can parse it; phone is an optional free-text
// contact field, not an identity.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	for _, region := range defaultRegions {
		parsed, err := phonenumbers.Parse(phone, region)
		if err != nil {
			continue
		}
		if phonenumbers.IsValidNumber(parsed) {
			return phonenumbers.Format(parsed, phonenumbers.E164)
		}
	}
	return phone
}
