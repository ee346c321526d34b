package notify

import (
	"net/url"
	"strings"

	"github.com/atelierops/atelier-scheduler/internal/httperr"
)

// DeepLink builds a wa.me share link for a phone number and a pre-rendered
// message. The number keeps digits only; anything without digits is rejected.
func DeepLink(phone string, message string) (string, error) {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, phone)

	if digits == "" {
		return "", httperr.ErrBusiness(httperr.CodeInvalidParameter)
	}

	link := "https://wa.me/" + digits
	if message != "" {
		link += "?text=" + url.QueryEscape(message)
	}

	return link, nil
}
