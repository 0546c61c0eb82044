package utils

import (
	"fmt"
	"net/url"
	"strings"
)

// ContactIntent selects which prefilled WhatsApp message a buyer gets.
type ContactIntent string

const (
	IntentInquiry     ContactIntent = "inquiry"
	IntentBuy         ContactIntent = "buy"
	IntentPaymentSent ContactIntent = "payment_sent"
)

// WhatsAppLink builds a wa.me deep link for the given phone. Anything that is
// not a digit is stripped; the stored leading "+" must not reach the URL.
func WhatsAppLink(phone, message string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", digits.String(), url.QueryEscape(message))
}

// ContactMessage renders one of the three buyer-to-seller templates.
func ContactMessage(intent ContactIntent, shopName, productTitle string, price float64) string {
	switch intent {
	case IntentBuy:
		return fmt.Sprintf("Hola! Vi tu producto %q en FeriaDeOfertas (Precio: $%s) y me interesa comprarlo. ¿Está disponible?",
			productTitle, FormatAmount(price))
	case IntentPaymentSent:
		return fmt.Sprintf("Hola! Ya realicé la transferencia por %q ($%s). Te comparto el comprobante por acá.",
			productTitle, FormatAmount(price))
	default:
		return fmt.Sprintf("Hola! Vi tu tienda %q en FeriaDeOfertas y quiero hacerte una consulta.", shopName)
	}
}

// WalletLink returns the wallet app deep link: the custom scheme opens the app
// on phones, the web URL is the desktop fallback.
func WalletLink(mobile bool) string {
	if mobile {
		return "mercadopago://home"
	}
	return "https://www.mercadopago.com.ar"
}

// FormatAmount renders a price with dots as thousands separators, the way
// Argentine buyers read amounts. Fractions are dropped.
func FormatAmount(amount float64) string {
	raw := fmt.Sprintf("%.0f", amount)

	negative := strings.HasPrefix(raw, "-")
	if negative {
		raw = raw[1:]
	}

	var b strings.Builder
	for i, digit := range raw {
		if i > 0 && (len(raw)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(digit)
	}

	if negative {
		return "-" + b.String()
	}
	return b.String()
}
