package service

import (
	"net/url"
	"strings"
)

// WhatsAppLinkBuilder builds wa.me click-to-chat URLs. Phone numbers
// are reduced to their digits and prefixed with the configured country
// code when they do not already carry it.
type WhatsAppLinkBuilder struct {
	countryCode string
}

func NewWhatsAppLinkBuilder(countryCode string) *WhatsAppLinkBuilder {
	return &WhatsAppLinkBuilder{countryCode: countryCode}
}

func (b *WhatsAppLinkBuilder) BuildLink(phone, message string) string {
	digits := digitsOnly(phone)
	if !strings.HasPrefix(digits, b.countryCode) {
		digits = b.countryCode + digits
	}

	link := "https://wa.me/" + digits
	if message != "" {
		// wa.me expects %20 for spaces, not the + that QueryEscape emits.
		link += "?text=" + strings.ReplaceAll(url.QueryEscape(message), "+", "%20")
	}
	return link
}

func digitsOnly(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
