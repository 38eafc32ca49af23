package create_booking

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/cortate-cl/CTC-BarberService/internal/domain"
)

// buildWhatsAppMessage renders the coordination message the client sends to
// the barber after creating a booking.
func buildWhatsAppMessage(booking *domain.Booking) string {
	var b strings.Builder

	b.WriteString("¡Hola! Quiero confirmar mi reserva:\n\n")
	fmt.Fprintf(&b, "👨‍💼 Barbero: %s\n", booking.BarberName)
	fmt.Fprintf(&b, "✂️ Servicio: %s\n", booking.Service.Name)
	fmt.Fprintf(&b, "💰 Precio: %s\n", domain.FormatCLP(booking.TotalPrice))

	if booking.Type == domain.BookingImmediate {
		b.WriteString("📅 Corte inmediato\n")
	} else if booking.ScheduledDate != nil {
		fmt.Fprintf(&b, "📅 Fecha: %s a las %s\n",
			booking.ScheduledDate.Format(domain.DateFormat), booking.ScheduledTime)
	}

	if booking.ServiceType != domain.ServiceInShop && booking.ClientAddress != nil {
		fmt.Fprintf(&b, "📍 A domicilio: %s\n", *booking.ClientAddress)
	} else if booking.BarberAddress != "" {
		fmt.Fprintf(&b, "📍 En barbería: %s\n", booking.BarberAddress)
	}

	if booking.Notes != nil && *booking.Notes != "" {
		fmt.Fprintf(&b, "📝 Notas: %s\n", *booking.Notes)
	}

	b.WriteString("\n¿Confirmas la disponibilidad? ¡Gracias!")
	return b.String()
}

// whatsAppURL builds a wa.me deep link for a Chilean phone number.
// Returns "" when no usable number is available.
func whatsAppURL(phone, message string) string {
	number := normalizeChileanPhone(phone)
	if number == "" {
		return ""
	}
	return fmt.Sprintf("https://wa.me/%s?text=%s", number, url.QueryEscape(message))
}

// normalizeChileanPhone reduces a phone number to digits and prefixes the
// Chilean country code when it is missing. Mobile numbers are nine digits
// starting with 9; older records sometimes omit the leading 9.
func normalizeChileanPhone(phone string) string {
	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	d := digits.String()

	switch {
	case strings.HasPrefix(d, "56") && len(d) == 11:
		return d
	case len(d) == 9 && strings.HasPrefix(d, "9"):
		return "56" + d
	case len(d) == 8:
		return "569" + d
	default:
		return ""
	}
}
