package wedding

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// GiftWhatsAppLink builds the outbound wa.me link used to offer a gift to
// the couple. The phone is reduced to digits and given the Brazilian
// country prefix when it does not carry one.
func GiftWhatsAppLink(phone, giftName string, price float64) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if !strings.HasPrefix(digits, "55") && len(digits) <= 11 {
		digits = "55" + digits
	}
	msg := fmt.Sprintf("Olá! Gostaria de lhe presentear com %s do valor de R$ %s", giftName, formatBRL(price))
	return "https://wa.me/" + digits + "?text=" + url.QueryEscape(msg)
}

func formatBRL(v float64) string {
	return strings.Replace(fmt.Sprintf("%.2f", v), ".", ",", 1)
}
